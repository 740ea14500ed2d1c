package parsers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ersonp/dota2-ontology/internal/domain/entities"
)

// ErrNotConvertible is returned when a value cannot be read as a number.
var ErrNotConvertible = errors.New("value not convertible")

// Value is a raw JSON field whose type varies between records.
// An absent field and an explicit null are both null.
type Value json.RawMessage

// UnmarshalJSON keeps a copy of the raw bytes.
func (v *Value) UnmarshalJSON(data []byte) error {
	*v = append((*v)[:0], data...)
	return nil
}

// MarshalJSON writes the raw bytes back, or null when empty.
func (v Value) MarshalJSON() ([]byte, error) {
	if len(v) == 0 {
		return []byte("null"), nil
	}
	return v, nil
}

func (v Value) trimmed() []byte {
	return bytes.TrimSpace(v)
}

func (v Value) kind() byte {
	b := v.trimmed()
	if len(b) == 0 {
		return 'n'
	}
	switch c := b[0]; {
	case c == '"', c == '[', c == '{', c == 't', c == 'f', c == 'n':
		return c
	default:
		return '0'
	}
}

// IsNull reports whether the field is absent or null.
func (v Value) IsNull() bool {
	return v.kind() == 'n'
}

// Truthy reports whether the value is set and not empty, false or zero.
func (v Value) Truthy() bool {
	switch v.kind() {
	case 'n', 'f':
		return false
	case 't':
		return true
	case '"':
		s, _ := v.AsString()
		return s != ""
	case '0':
		n, ok := v.Number()
		return ok && n != 0
	case '[':
		var items []json.RawMessage
		return json.Unmarshal(v, &items) == nil && len(items) > 0
	case '{':
		var fields map[string]json.RawMessage
		return json.Unmarshal(v, &fields) == nil && len(fields) > 0
	}
	return false
}

// AsString returns the value when it is a JSON string.
func (v Value) AsString() (string, bool) {
	if v.kind() != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", false
	}
	return s, true
}

// Text returns the string value, or "" when the field is not a string.
func (v Value) Text() string {
	s, _ := v.AsString()
	return s
}

// Bool returns the value when it is a JSON boolean.
func (v Value) Bool() (bool, bool) {
	switch v.kind() {
	case 't':
		return true, true
	case 'f':
		return false, true
	}
	return false, false
}

// Number returns the value when it is a JSON number.
func (v Value) Number() (float64, bool) {
	if v.kind() != '0' {
		return 0, false
	}
	n, err := strconv.ParseFloat(string(v.trimmed()), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Strings returns a single string as a one-element list, or the string
// elements of an array. Other elements and types are ignored.
func (v Value) Strings() []string {
	switch v.kind() {
	case '"':
		s, _ := v.AsString()
		return []string{s}
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(v, &items); err != nil {
			return nil
		}
		var result []string
		for _, item := range items {
			if s, ok := Value(item).AsString(); ok {
				result = append(result, s)
			}
		}
		return result
	}
	return nil
}

// Int converts numbers, booleans and numeric strings to an integer.
// Fractional numbers are truncated toward zero; fractional strings fail.
func (v Value) Int() (int64, error) {
	switch v.kind() {
	case '0':
		raw := string(v.trimmed())
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return n, nil
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return 0, fmt.Errorf("%w: %s", ErrNotConvertible, raw)
		}
		return int64(f), nil
	case 't':
		return 1, nil
	case 'f':
		return 0, nil
	case '"':
		s, _ := v.AsString()
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNotConvertible, s)
		}
		return n, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrNotConvertible, string(v.trimmed()))
}

// Float converts numbers, booleans and numeric strings to a float.
func (v Value) Float() (float64, error) {
	switch v.kind() {
	case '0':
		if n, ok := v.Number(); ok {
			return n, nil
		}
	case 't':
		return 1, nil
	case 'f':
		return 0, nil
	case '"':
		s, _ := v.AsString()
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNotConvertible, s)
		}
		return f, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrNotConvertible, string(v.trimmed()))
}

// Literal turns a scalar into a typed literal. Numbers become integers when
// they are written without a fraction or exponent, decimals otherwise.
// Null, arrays and objects yield false.
func (v Value) Literal() (entities.Literal, bool) {
	switch v.kind() {
	case '"':
		s, _ := v.AsString()
		return entities.StringLiteral(s), true
	case 't', 'f':
		b, _ := v.Bool()
		return entities.BoolLiteral(b), true
	case '0':
		raw := string(v.trimmed())
		if !strings.ContainsAny(raw, ".eE") {
			if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
				return entities.IntLiteral(n), true
			}
		}
		f, ok := v.Number()
		if !ok {
			return entities.Literal{}, false
		}
		return entities.FloatLiteral(f), true
	}
	return entities.Literal{}, false
}
