package exporters

import (
	"bufio"
	"io"

	"github.com/ersonp/dota2-ontology/internal/domain/entities"
)

type prologSection struct {
	banner    string
	header    string
	predicate entities.Predicate
}

// prologSections is the fixed section order of the fact file.
var prologSections = []prologSection{
	{header: "% === Hero Facts ===", predicate: entities.PredHero},
	{header: "% Property: Primary Attribute (hasPrimaryAttribute)", predicate: entities.PredPrimaryAttribute},
	{header: "% Property: Role (hasRole)", predicate: entities.PredHasRole},
	{header: "% Property: Ability Ownership (hasAbility)", predicate: entities.PredHasAbility},
	{banner: "% === Ability Facts ===", header: "% Property: Ability Type (abilityType)", predicate: entities.PredAbilityType},
	{header: "% Property: Damage Type (damageType)", predicate: entities.PredDamageType},
}

// WriteProlog writes one commented section per predicate, facts sorted,
// each section followed by a blank line.
func WriteProlog(w io.Writer, facts *entities.FactSet) error {
	bw := bufio.NewWriter(w)

	for _, s := range prologSections {
		if s.banner != "" {
			bw.WriteString(s.banner)
			bw.WriteString("\n\n")
		}
		bw.WriteString(s.header)
		bw.WriteString("\n")
		for _, f := range facts.Sorted(s.predicate) {
			bw.WriteString(f.String())
			bw.WriteString("\n")
		}
		bw.WriteString("\n")
	}

	return bw.Flush()
}
