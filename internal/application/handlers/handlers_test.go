package handlers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ersonp/dota2-ontology/internal/domain/services"
	"github.com/ersonp/dota2-ontology/internal/infrastructure/parsers"
)

const testNamespace = "http://www.semanticweb.org/dota2-ontology#"

const (
	testHeroes    = `{"1": {"name": "npc_dota_hero_antimage", "localized_name": "Anti-Mage", "primary_attr": "agi", "roles": ["Carry", "Escape"]}}`
	testDetails   = `{"npc_dota_hero_antimage": {"abilities": ["generic_hidden", "antimage_mana_break", "antimage_blink"]}}`
	testItems     = `{"blink": {"dname": "Blink Dagger", "cost": 2250}}`
	testAbilities = `{
		"antimage_mana_break": {"dname": "Mana Break", "behavior": "Passive", "dmg_type": "Physical"},
		"antimage_blink": {"dname": "Blink", "behavior": "Point Target"}
	}`
)

// writeSources writes the four exports into dir.
func writeSources(t *testing.T, dir string) parsers.SourcePaths {
	t.Helper()
	paths := parsers.SourcePaths{
		Heroes:      filepath.Join(dir, "heroes.json"),
		HeroDetails: filepath.Join(dir, "hero_abilities.json"),
		Items:       filepath.Join(dir, "items.json"),
		Abilities:   filepath.Join(dir, "abilities.json"),
	}
	contents := []string{testHeroes, testDetails, testItems, testAbilities}
	for i, p := range paths.All() {
		require.NoError(t, os.WriteFile(p, []byte(contents[i]), 0644))
	}
	return paths
}

func newPopulateHandler() *PopulateHandler {
	return NewPopulateHandler(services.NewPopulateService(zap.NewNop(), ""), nil)
}

func newConvertHandler() *ConvertHandler {
	return NewConvertHandler(services.NewExtractionService(zap.NewNop()), nil)
}

// writeOntology populates an ontology file from the test exports.
func writeOntology(t *testing.T, dir string) string {
	t.Helper()
	output := filepath.Join(dir, "dota2_ontology.owl")
	_, err := newPopulateHandler().Handle(t.Context(), PopulateRequest{
		Namespace: testNamespace,
		Sources:   writeSources(t, dir),
		Output:    output,
	})
	require.NoError(t, err)
	return output
}
