package entities

import "strings"

// HeroPrefix is the internal-name prefix removed from every identifier.
const HeroPrefix = "npc_dota_hero_"

// LocalName reduces a term to the lowercase identifier used in facts.
//
// IRIs keep the part after the last '#', or after the last '/' when there
// is no '#'; the result is lowercased and every occurrence of HeroPrefix is
// removed. Literals are lowercased with spaces turned into underscores.
// Blank nodes are lowercased.
func LocalName(t Term) string {
	switch t.Kind {
	case TermIRI:
		return NormalizeIRI(t.Value)
	case TermLiteral:
		return NormalizeLiteral(t.Value)
	default:
		return strings.ToLower(t.Value)
	}
}

// NormalizeIRI applies the IRI branch of LocalName.
func NormalizeIRI(iri string) string {
	local := iri
	if idx := strings.LastIndex(iri, "#"); idx >= 0 {
		local = iri[idx+1:]
	} else if idx := strings.LastIndex(iri, "/"); idx >= 0 {
		local = iri[idx+1:]
	}
	return strings.ReplaceAll(strings.ToLower(local), HeroPrefix, "")
}

// NormalizeLiteral applies the literal branch of LocalName.
func NormalizeLiteral(value string) string {
	return strings.ReplaceAll(strings.ToLower(value), " ", "_")
}
