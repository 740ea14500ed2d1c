package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/dota2-ontology/internal/application/handlers"
	"github.com/ersonp/dota2-ontology/internal/domain/entities"
	"github.com/ersonp/dota2-ontology/internal/domain/services"
	"github.com/ersonp/dota2-ontology/internal/infrastructure/config"
)

var testSources = map[string]string{
	config.DefaultHeroesFile: `{
		"1": {"name": "npc_dota_hero_antimage", "localized_name": "Anti-Mage", "primary_attr": "agi", "roles": ["Carry", "Escape"]},
		"2": {"name": "npc_dota_hero_axe", "localized_name": "Axe", "primary_attr": "str", "roles": ["Initiator"]}
	}`,
	config.DefaultHeroDetailsFile: `{"npc_dota_hero_antimage": {"abilities": ["antimage_mana_break", "antimage_blink"]}}`,
	config.DefaultItemsFile:       `{"blink": {"dname": "Blink Dagger", "cost": 2250}}`,
	config.DefaultAbilitiesFile:   `{"antimage_mana_break": {"dname": "Mana Break", "behavior": "Passive", "dmg_type": "Physical"}}`,
}

// workspace writes the data exports into a fresh directory.
func workspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range testSources {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.ExecuteContext(t.Context())
	return out.String(), err
}

func TestPopulateAndConvert(t *testing.T) {
	dir := workspace(t)

	out, err := execute(t, "-C", dir, "populate")
	require.NoError(t, err)
	assert.Contains(t, out, "Heroes:      2")
	assert.FileExists(t, filepath.Join(dir, config.DefaultOntologyFile))

	out, err = execute(t, "-C", dir, "convert")
	require.NoError(t, err)
	assert.Contains(t, out, "Diagnostics:")
	assert.Contains(t, out, fmt.Sprintf("  %-20s %d\n", "has_role", 3))

	data, err := os.ReadFile(filepath.Join(dir, config.DefaultFactsFile))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "% === Hero Facts ===\nhero(antimage).\nhero(axe).\n"))
	assert.Contains(t, string(data), "has_role(axe, initiator).")
}

func TestConvert_MissingOntology(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "-C", dir, "convert")

	require.ErrorIs(t, err, handlers.ErrInputMissing)
}

func TestPopulate_MissingInputs(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "-C", dir, "populate")

	require.ErrorIs(t, err, handlers.ErrInputMissing)
	for _, name := range []string{config.DefaultHeroesFile, config.DefaultHeroDetailsFile, config.DefaultItemsFile, config.DefaultAbilitiesFile} {
		assert.Contains(t, err.Error(), name)
	}
}

func TestBuild_FlagsOverridePaths(t *testing.T) {
	dir := workspace(t)
	facts := filepath.Join(dir, "out", "facts.csv")

	out, err := execute(t, "-C", dir, "build", "--ontology", "custom.owl", "-o", facts, "-f", "csv")

	require.NoError(t, err)
	assert.Contains(t, out, "Ontology saved to "+filepath.Join(dir, "custom.owl"))
	assert.FileExists(t, filepath.Join(dir, "custom.owl"))

	data, err := os.ReadFile(facts)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "predicate,subject,object\n"))
}

func TestBuild_InvalidFormat(t *testing.T) {
	dir := workspace(t)

	_, err := execute(t, "-C", dir, "build", "-f", "turtle")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
	assert.NoFileExists(t, filepath.Join(dir, config.DefaultFactsFile))
}

func TestConfigFileOverridesPaths(t *testing.T) {
	dir := workspace(t)
	cfg := config.Default()
	cfg.Paths.Ontology = "kb/ontology.owl"
	require.NoError(t, config.Write(dir, cfg))

	_, err := execute(t, "-C", dir, "populate")

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "kb", "ontology.owl"))
}

func TestStoreDescribeList(t *testing.T) {
	dir := workspace(t)
	_, err := execute(t, "-C", dir, "populate")
	require.NoError(t, err)

	out, err := execute(t, "-C", dir, "store")
	require.NoError(t, err)
	assert.Contains(t, out, "Entities:")
	assert.FileExists(t, filepath.Join(dir, ".dotakb", "catalog.db"))

	out, err = execute(t, "-C", dir, "describe", "antimage")
	require.NoError(t, err)
	assert.Contains(t, out, "npc_dota_hero_antimage (antimage)")
	assert.Contains(t, out, "Classes: AgilityHero")
	assert.Contains(t, out, "has_primary_attribute -> Agility")

	out, err = execute(t, "-C", dir, "list", "StrengthHero")
	require.NoError(t, err)
	assert.Contains(t, out, "npc_dota_hero_axe")
	assert.NotContains(t, out, "npc_dota_hero_antimage")

	_, err = execute(t, "-C", dir, "describe", "invoker")
	require.ErrorIs(t, err, services.ErrEntityNotFound)
}

func TestInit(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "-C", dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "config.yaml")
	assert.True(t, config.Exists(dir))

	_, err = execute(t, "-C", dir, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already initialized")
}

func TestSearch_InvalidPredicate(t *testing.T) {
	_, err := execute(t, "-C", t.TempDir(), "search", "who carries", "-p", "is_a")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown predicate")
}

func TestIndex_RequiresAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := execute(t, "-C", t.TempDir(), "index")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestPrintSearchResult(t *testing.T) {
	var buf bytes.Buffer
	printSearchResult(&buf, &handlers.QueryResult{})
	assert.Equal(t, "No facts found.\n", buf.String())

	buf.Reset()
	printSearchResult(&buf, &handlers.QueryResult{Facts: []entities.IndexedFact{
		{Fact: entities.Fact{Predicate: entities.PredHasRole, Subject: "antimage", Object: "carry"}, Score: 0.8123},
	}})
	assert.Contains(t, buf.String(), "1. has_role(antimage, carry).  (score 0.812)")
}

func TestDepsPath(t *testing.T) {
	d := &Deps{BaseDir: "/work"}

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"heroes.json", filepath.Join("/work", "heroes.json")},
		{"/data/heroes.json", "/data/heroes.json"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Path(tt.input))
		})
	}
}
