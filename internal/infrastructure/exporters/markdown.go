package exporters

import (
	"fmt"
	"io"
	"strings"

	"github.com/ersonp/dota2-ontology/internal/domain/entities"
)

// WriteMarkdown writes a summary line and one table per non-empty predicate.
func WriteMarkdown(w io.Writer, facts *entities.FactSet) error {
	if _, err := fmt.Fprintf(w, "# Extracted Facts\n\nTotal: %d facts\n", facts.Len()); err != nil {
		return err
	}

	for _, p := range entities.Predicates {
		sorted := facts.Sorted(p)
		if len(sorted) == 0 {
			continue
		}

		if _, err := fmt.Fprintf(w, "\n## %s (%d)\n\n", p, len(sorted)); err != nil {
			return err
		}
		if _, err := fmt.Fprint(w, "| Subject | Object |\n|---------|--------|\n"); err != nil {
			return err
		}
		for _, f := range sorted {
			if _, err := fmt.Fprintf(w, "| %s | %s |\n", escapeMarkdown(f.Subject), escapeMarkdown(f.Object)); err != nil {
				return err
			}
		}
	}

	return nil
}

func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
