package exporters

import (
	"encoding/csv"
	"io"

	"github.com/ersonp/dota2-ontology/internal/domain/entities"
)

// WriteCSV writes a predicate,subject,object table in section order.
func WriteCSV(w io.Writer, facts *entities.FactSet) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"predicate", "subject", "object"}); err != nil {
		return err
	}

	for _, f := range facts.All() {
		if err := writer.Write([]string{string(f.Predicate), f.Subject, f.Object}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
