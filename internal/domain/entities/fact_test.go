package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalName(t *testing.T) {
	tests := []struct {
		name     string
		term     Term
		expected string
	}{
		{
			name:     "hero IRI strips prefix",
			term:     IRI(testNamespace + "npc_dota_hero_antimage"),
			expected: "antimage",
		},
		{
			name:     "fragment is lowercased",
			term:     IRI(testNamespace + "Agility"),
			expected: "agility",
		},
		{
			name:     "path segment when no fragment",
			term:     IRI("http://example.org/roles/Carry"),
			expected: "carry",
		},
		{
			name:     "prefix removed in the middle too",
			term:     IRI(testNamespace + "x_npc_dota_hero_y"),
			expected: "x_y",
		},
		{
			name:     "literal spaces become underscores",
			term:     LiteralTerm("Unit Target", "", ""),
			expected: "unit_target",
		},
		{
			name:     "literal keeps hyphen",
			term:     LiteralTerm("Anti-Mage", "", ""),
			expected: "anti-mage",
		},
		{
			name:     "blank node",
			term:     Blank("N1A"),
			expected: "n1a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LocalName(tt.term))
		})
	}
}

func TestLocalName_IdempotentAndCaseInsensitive(t *testing.T) {
	inputs := []string{"npc_dota_hero_antimage", "NPC_DOTA_HERO_ANTIMAGE", "Npc_Dota_Hero_AntiMage"}

	for _, in := range inputs {
		once := NormalizeIRI(testNamespace + in)
		assert.Equal(t, "antimage", once)
		assert.Equal(t, once, NormalizeIRI(testNamespace+once))
		assert.Equal(t, once, NormalizeLiteral(once))
	}
}

func TestFact_String(t *testing.T) {
	assert.Equal(t, "hero(antimage).", Fact{Predicate: PredHero, Subject: "antimage"}.String())
	assert.Equal(t, "has_role(antimage, carry).",
		Fact{Predicate: PredHasRole, Subject: "antimage", Object: "carry"}.String())
}

func TestFactSet_Deduplicates(t *testing.T) {
	set := NewFactSet()
	f := Fact{Predicate: PredHasRole, Subject: "antimage", Object: "carry"}

	assert.True(t, set.Add(f))
	assert.False(t, set.Add(f))
	assert.Equal(t, 1, set.Count(PredHasRole))
	assert.Equal(t, 1, set.Len())
}

func TestFactSet_Sorted(t *testing.T) {
	set := NewFactSet()
	set.Add(Fact{Predicate: PredHasRole, Subject: "axe", Object: "initiator"})
	set.Add(Fact{Predicate: PredHasRole, Subject: "antimage", Object: "escape"})
	set.Add(Fact{Predicate: PredHasRole, Subject: "antimage", Object: "carry"})
	set.Add(Fact{Predicate: PredHero, Subject: "axe"})

	var lines []string
	for _, f := range set.Sorted(PredHasRole) {
		lines = append(lines, f.String())
	}
	assert.Equal(t, []string{
		"has_role(antimage, carry).",
		"has_role(antimage, escape).",
		"has_role(axe, initiator).",
	}, lines)

	all := set.All()
	assert.Len(t, all, 4)
	assert.Equal(t, PredHero, all[0].Predicate)
	assert.Empty(t, set.Sorted(PredDamageType))
}

func TestHeroClassFor(t *testing.T) {
	tests := []struct {
		code     string
		expected Class
	}{
		{code: "str", expected: ClassStrengthHero},
		{code: "agi", expected: ClassAgilityHero},
		{code: "int", expected: ClassIntelligenceHero},
		{code: "all", expected: ClassUniversalHero},
		{code: "", expected: ClassHero},
		{code: "STR", expected: ClassHero},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, HeroClassFor(tt.code))
		})
	}
}

func TestAbilityClassForSlot(t *testing.T) {
	expected := []Class{
		ClassBasicAbility, ClassBasicAbility, ClassBasicAbility, ClassBasicAbility,
		ClassAbility, ClassUltimateAbility, ClassAbility, ClassAbility,
	}
	for slot, class := range expected {
		assert.Equal(t, class, AbilityClassForSlot(slot), "slot %d", slot)
	}
}
