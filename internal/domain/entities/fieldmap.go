package entities

// FieldMapping renames a source JSON key to an ontology property.
type FieldMapping struct {
	Property string
	Source   string
}

// HeroFieldMap lists the hero scalars copied verbatim from heroes.json.
var HeroFieldMap = []FieldMapping{
	{Property: PropHealth, Source: "base_health"},
	{Property: PropHealthRegen, Source: "base_health_regen"},
	{Property: PropMana, Source: "base_mana"},
	{Property: PropManaRegen, Source: "base_mana_regen"},
	{Property: PropArmor, Source: "base_armor"},
	{Property: PropMagicResistance, Source: "base_mr"},
	{Property: PropBaseMinAttackDamage, Source: "base_attack_min"},
	{Property: PropBaseMaxAttackDamage, Source: "base_attack_max"},
	{Property: PropStrengthGain, Source: "str_gain"},
	{Property: PropAgilityGain, Source: "agi_gain"},
	{Property: PropIntelligenceGain, Source: "int_gain"},
	{Property: PropAttackRange, Source: "attack_range"},
	{Property: PropAttackRate, Source: "attack_rate"},
	{Property: PropMovementSpeed, Source: "move_speed"},
	{Property: PropDayVision, Source: "day_vision"},
	{Property: PropNightVision, Source: "night_vision"},
}

// Primary attribute codes used by heroes.json.
const (
	AttrStrength     = "str"
	AttrAgility      = "agi"
	AttrIntelligence = "int"
	AttrUniversal    = "all"
)

// HeroClassFor returns the hero subclass for a primary attribute code.
// Unknown codes fall back to Hero.
func HeroClassFor(code string) Class {
	switch code {
	case AttrStrength:
		return ClassStrengthHero
	case AttrAgility:
		return ClassAgilityHero
	case AttrIntelligence:
		return ClassIntelligenceHero
	case AttrUniversal:
		return ClassUniversalHero
	default:
		return ClassHero
	}
}

// AttributeNameFor returns the PrimaryAttribute individual for a code.
func AttributeNameFor(code string) (string, bool) {
	switch code {
	case AttrStrength:
		return "Strength", true
	case AttrAgility:
		return "Agility", true
	case AttrIntelligence:
		return "Intelligence", true
	case AttrUniversal:
		return "Universal", true
	default:
		return "", false
	}
}

// Ability list entries that are placeholders rather than real abilities.
var (
	ExcludedHeroAbilities = []string{"generic_hidden", "dota_base_ability"}
	ExcludedAbilities     = []string{"dota_base_ability", "dota_empty_ability", "special_bonus_attributes", "generic_hidden"}
)

// AbilityClassForSlot classifies a hero ability by its position in the
// unfiltered ability list: slots 0-3 are basic, slot 5 is the ultimate and
// anything else is a plain Ability.
//
// The rule assumes the standard six-slot layout and misclassifies heroes
// that deviate from it.
func AbilityClassForSlot(slot int) Class {
	switch {
	case slot <= 3:
		return ClassBasicAbility
	case slot == 5:
		return ClassUltimateAbility
	default:
		return ClassAbility
	}
}

// IsExcluded reports whether name appears in list.
func IsExcluded(list []string, name string) bool {
	for _, excluded := range list {
		if excluded == name {
			return true
		}
	}
	return false
}
