// Package exporters writes extracted facts in the supported output formats.
package exporters

import (
	"fmt"
	"io"
	"strings"

	"github.com/ersonp/dota2-ontology/internal/domain/entities"
	"github.com/ersonp/dota2-ontology/internal/infrastructure/fileio"
)

// Format names an output format.
type Format string

// Supported formats.
const (
	FormatProlog   Format = "prolog"
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
)

// Formats lists the supported formats, default first.
var Formats = []Format{FormatProlog, FormatJSON, FormatCSV, FormatMarkdown}

// WriteFunc writes a fact set to w.
type WriteFunc func(w io.Writer, facts *entities.FactSet) error

// ForFormat returns the writer for a format name.
func ForFormat(format Format) (WriteFunc, error) {
	switch format {
	case FormatProlog:
		return WriteProlog, nil
	case FormatJSON:
		return WriteJSON, nil
	case FormatCSV:
		return WriteCSV, nil
	case FormatMarkdown:
		return WriteMarkdown, nil
	default:
		names := make([]string, len(Formats))
		for i, f := range Formats {
			names[i] = string(f)
		}
		return nil, fmt.Errorf("invalid format %q, valid formats: %s", format, strings.Join(names, ", "))
	}
}

// WriteFile writes facts to path in the given format. An existing file is
// replaced only after the new content was written completely.
func WriteFile(path string, format Format, facts *entities.FactSet) error {
	write, err := ForFormat(format)
	if err != nil {
		return err
	}
	return fileio.WriteAtomic(path, func(w io.Writer) error {
		return write(w, facts)
	})
}
