package parsers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Entry is one member of a JSON object.
type Entry[T any] struct {
	Key   string
	Value T
}

// Keyed is a JSON object decoded with its member order preserved.
// A repeated key keeps its first position and its last value.
type Keyed[T any] struct {
	entries []Entry[T]
	index   map[string]int
}

// Entries returns the members in document order.
func (k *Keyed[T]) Entries() []Entry[T] {
	return k.entries
}

// Get returns the value stored under key.
func (k *Keyed[T]) Get(key string) (T, bool) {
	idx, ok := k.index[key]
	if !ok {
		var zero T
		return zero, false
	}
	return k.entries[idx].Value, true
}

// Len returns the number of distinct keys.
func (k *Keyed[T]) Len() int {
	return len(k.entries)
}

func (k *Keyed[T]) put(key string, value T) {
	if k.index == nil {
		k.index = make(map[string]int)
	}
	if idx, ok := k.index[key]; ok {
		k.entries[idx].Value = value
		return
	}
	k.index[key] = len(k.entries)
	k.entries = append(k.entries, Entry[T]{Key: key, Value: value})
}

// DecodeKeyed reads a top-level JSON object whose members all decode into T.
func DecodeKeyed[T any](r io.Reader) (*Keyed[T], error) {
	decoder := json.NewDecoder(r)

	tok, err := decoder.Token()
	if err != nil {
		return nil, fmt.Errorf("reading object start: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected a JSON object, got %v", tok)
	}

	result := &Keyed[T]{index: make(map[string]int)}
	for decoder.More() {
		tok, err := decoder.Token()
		if err != nil {
			return nil, fmt.Errorf("reading key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected a string key, got %v", tok)
		}

		var value T
		if err := decoder.Decode(&value); err != nil {
			return nil, fmt.Errorf("decoding %q: %w", key, err)
		}
		result.put(key, value)
	}

	if _, err := decoder.Token(); err != nil {
		return nil, fmt.Errorf("reading object end: %w", err)
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level object")
	}

	return result, nil
}
