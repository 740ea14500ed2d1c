package exporters

import (
	"encoding/json"
	"io"

	"github.com/ersonp/dota2-ontology/internal/domain/entities"
)

type exportFact struct {
	Predicate string `json:"predicate"`
	Subject   string `json:"subject"`
	Object    string `json:"object,omitempty"`
	Clause    string `json:"clause"`
}

// WriteJSON writes the facts as one indented JSON array in section order.
func WriteJSON(w io.Writer, facts *entities.FactSet) error {
	all := facts.All()
	exportFacts := make([]exportFact, 0, len(all))
	for _, f := range all {
		exportFacts = append(exportFacts, exportFact{
			Predicate: string(f.Predicate),
			Subject:   f.Subject,
			Object:    f.Object,
			Clause:    f.String(),
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exportFacts)
}
