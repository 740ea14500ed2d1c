package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ersonp/dota2-ontology/internal/domain/entities"
	"github.com/ersonp/dota2-ontology/internal/infrastructure/parsers"
)

const testNamespace = "http://www.semanticweb.org/dota2-ontology#"

func sourceData(t *testing.T, heroes, details, items, abilities string) *parsers.SourceData {
	t.Helper()
	data, err := parsers.ParseSourceData(
		strings.NewReader(heroes),
		strings.NewReader(details),
		strings.NewReader(items),
		strings.NewReader(abilities),
	)
	require.NoError(t, err)
	return data
}

func populate(t *testing.T, data *parsers.SourceData) (*entities.Ontology, *PopulateResult) {
	t.Helper()
	o := BuildOntology(testNamespace)
	result, err := NewPopulateService(zap.NewNop(), "").Populate(o, data)
	require.NoError(t, err)
	return o, result
}

func individual(t *testing.T, o *entities.Ontology, name string) *entities.Individual {
	t.Helper()
	ind, ok := o.Individual(name)
	require.True(t, ok, "individual %s not found", name)
	return ind
}

func TestBuildOntology_Idempotent(t *testing.T) {
	o := BuildOntology(testNamespace)
	classes := len(o.ClassDefs())
	properties := len(o.PropertyDefs())

	DeclareSchema(o)

	assert.Len(t, o.ClassDefs(), classes)
	assert.Len(t, o.PropertyDefs(), properties)
	assert.Equal(t, BuildOntology(testNamespace).Graph().All(), o.Graph().All())
}

func TestPopulate_HeroClassByPrimaryAttribute(t *testing.T) {
	heroes := `{
		"1": {"name": "npc_dota_hero_axe", "primary_attr": "str"},
		"2": {"name": "npc_dota_hero_antimage", "primary_attr": "agi"},
		"3": {"name": "npc_dota_hero_crystal_maiden", "primary_attr": "int"},
		"4": {"name": "npc_dota_hero_pangolier", "primary_attr": "all"},
		"5": {"name": "npc_dota_hero_mystery", "primary_attr": "luck"}
	}`
	o, result := populate(t, sourceData(t, heroes, `{}`, `{}`, `{}`))

	assert.Equal(t, 5, result.Heroes)

	tests := []struct {
		hero     string
		class    entities.Class
		attrLink []string
	}{
		{hero: "npc_dota_hero_axe", class: entities.ClassStrengthHero, attrLink: []string{"Strength"}},
		{hero: "npc_dota_hero_antimage", class: entities.ClassAgilityHero, attrLink: []string{"Agility"}},
		{hero: "npc_dota_hero_crystal_maiden", class: entities.ClassIntelligenceHero, attrLink: []string{"Intelligence"}},
		{hero: "npc_dota_hero_pangolier", class: entities.ClassUniversalHero, attrLink: []string{"Universal"}},
		{hero: "npc_dota_hero_mystery", class: entities.ClassHero, attrLink: nil},
	}

	for _, tt := range tests {
		t.Run(tt.hero, func(t *testing.T) {
			ind := individual(t, o, tt.hero)
			assert.Equal(t, []entities.Class{tt.class}, ind.Types())
			assert.Equal(t, tt.attrLink, ind.Links(entities.PropHasPrimaryAttribute))
		})
	}

	attr := individual(t, o, "Agility")
	assert.Equal(t, []entities.Class{entities.ClassPrimaryAttribute}, attr.Types())
}

func TestPopulate_HeroScalars(t *testing.T) {
	heroes := `{"1": {
		"name": "npc_dota_hero_antimage",
		"localized_name": "Anti-Mage",
		"primary_attr": "agi",
		"attack_type": "Melee",
		"roles": ["Carry", "Escape", "Nuker"],
		"img": "/apps/dota2/images/heroes/antimage.png",
		"base_health": 120,
		"base_health_regen": null,
		"base_armor": 1,
		"attack_rate": 1.4,
		"agi_gain": 2.8,
		"move_speed": 310
	}}`
	o, _ := populate(t, sourceData(t, heroes, `{}`, `{}`, `{}`))
	hero := individual(t, o, "npc_dota_hero_antimage")

	assert.Equal(t, []entities.Literal{entities.StringLiteral("Anti-Mage")}, hero.Data(entities.PropLocalizedName))
	assert.Equal(t, []entities.Literal{entities.StringLiteral("https://api.opendota.com/apps/dota2/images/heroes/antimage.png")},
		hero.Data(entities.PropImageURL))
	assert.Equal(t, []entities.Literal{entities.IntLiteral(120)}, hero.Data(entities.PropHealth))
	assert.Equal(t, []entities.Literal{entities.FloatLiteral(1.4)}, hero.Data(entities.PropAttackRate))
	assert.Equal(t, []entities.Literal{entities.IntLiteral(310)}, hero.Data(entities.PropMovementSpeed))
	assert.Empty(t, hero.Data(entities.PropHealthRegen), "null fields are skipped")
	assert.Empty(t, hero.Data(entities.PropMana), "absent fields are skipped")

	assert.Equal(t, []string{"Carry", "Escape", "Nuker"}, hero.Links(entities.PropHasRole))
	assert.Equal(t, []string{"Melee"}, hero.Links(entities.PropHasAttackType))
	assert.True(t, individual(t, o, "Melee").HasType(entities.ClassAttackType))
}

func TestPopulate_RoleNamesReplaceSpaces(t *testing.T) {
	heroes := `{"1": {"name": "npc_dota_hero_x", "primary_attr": "str", "roles": ["Hard Support"]}}`
	o, _ := populate(t, sourceData(t, heroes, `{}`, `{}`, `{}`))

	assert.Equal(t, []string{"Hard_Support"}, individual(t, o, "npc_dota_hero_x").Links(entities.PropHasRole))
	assert.True(t, individual(t, o, "Hard_Support").HasType(entities.ClassRole))
}

func TestPopulate_AbilitySlots(t *testing.T) {
	heroes := `{"1": {"name": "npc_dota_hero_antimage", "primary_attr": "agi"}}`
	details := `{"npc_dota_hero_antimage": {
		"abilities": ["generic_hidden", "antimage_mana_break", "antimage_blink",
			"antimage_counterstrike", "antimage_mana_void", "dota_base_ability"]
	}}`
	o, result := populate(t, sourceData(t, heroes, details, `{}`, `{}`))

	hero := individual(t, o, "npc_dota_hero_antimage")
	assert.Equal(t, []string{"antimage_mana_break", "antimage_blink", "antimage_counterstrike", "antimage_mana_void"},
		hero.Links(entities.PropHasAbility))
	assert.Equal(t, 4, result.HeroAbilities)

	_, ok := o.Individual("generic_hidden")
	assert.False(t, ok)
	_, ok = o.Individual("dota_base_ability")
	assert.False(t, ok)

	assert.Equal(t, []entities.Class{entities.ClassBasicAbility}, individual(t, o, "antimage_mana_break").Types())
	assert.Equal(t, []entities.Class{entities.ClassBasicAbility}, individual(t, o, "antimage_counterstrike").Types())
	assert.Equal(t, []entities.Class{entities.ClassAbility}, individual(t, o, "antimage_mana_void").Types(),
		"slot 4 is neither basic nor ultimate")
}

func TestPopulate_UltimateSlot(t *testing.T) {
	heroes := `{"1": {"name": "npc_dota_hero_axe", "primary_attr": "str"}}`
	details := `{"npc_dota_hero_axe": {
		"abilities": ["axe_berserkers_call", "axe_battle_hunger", "axe_counter_helix",
			"generic_hidden", "generic_hidden", "axe_culling_blade"]
	}}`
	o, _ := populate(t, sourceData(t, heroes, details, `{}`, `{}`))

	assert.Equal(t, []entities.Class{entities.ClassUltimateAbility}, individual(t, o, "axe_culling_blade").Types())
	assert.Equal(t, []entities.Class{entities.ClassBasicAbility}, individual(t, o, "axe_counter_helix").Types())
}

func TestPopulate_TalentsAndFacets(t *testing.T) {
	heroes := `{"1": {"name": "npc_dota_hero_antimage", "primary_attr": "agi"}}`
	details := `{"npc_dota_hero_antimage": {
		"abilities": [],
		"talents": [{"name": "special_bonus_unique_antimage", "level": 10}, {"name": "special_bonus_strength_10"}],
		"facets": [{"name": "antimage_magebanes_mirror", "title": "Magebane's Mirror", "description": "Reflects.", "color": "Purple"}]
	}}`
	o, result := populate(t, sourceData(t, heroes, details, `{}`, `{}`))

	assert.Equal(t, 2, result.Talents)
	assert.Equal(t, 1, result.Facets)

	hero := individual(t, o, "npc_dota_hero_antimage")
	assert.Equal(t, []string{"special_bonus_unique_antimage", "special_bonus_strength_10"}, hero.Links(entities.PropHasTalent))
	assert.Equal(t, []string{"antimage_magebanes_mirror"}, hero.Links(entities.PropHasFacet))

	talent := individual(t, o, "special_bonus_unique_antimage")
	assert.Equal(t, []entities.Literal{entities.IntLiteral(10)}, talent.Data(entities.PropRequiredLevel))
	assert.Empty(t, individual(t, o, "special_bonus_strength_10").Data(entities.PropRequiredLevel))

	facet := individual(t, o, "antimage_magebanes_mirror")
	assert.Equal(t, []entities.Literal{entities.StringLiteral("Magebane's Mirror")}, facet.Data(entities.PropFacetTitle))
	assert.Equal(t, []entities.Literal{entities.StringLiteral("Purple")}, facet.Data(entities.PropFacetColor))
}

func TestPopulate_Items(t *testing.T) {
	items := `{
		"blink": {"dname": "Blink Dagger", "qual": "component", "cost": 2250, "cd": 15, "img": "/blink.png",
			"behavior": ["Point Target", "Instant Cast"], "lore": "", "notes": null},
		"arcane_blink": {"dname": "Arcane Blink", "created": true, "cost": 0, "components": ["blink", "mystic_staff", null, ""]},
		"mango": {"dname": "Enchanted Mango", "qual": "consumable", "cd": "0", "behavior": "No Target"},
		"trusty_shovel": {"dname": "Trusty Shovel", "tier": 1, "cd": 0},
		"unknown_tier": {"dname": "Odd", "tier": null}
	}`
	o, result := populate(t, sourceData(t, `{}`, `{}`, items, `{}`))

	assert.Equal(t, 5, result.Items)

	blink := individual(t, o, "blink")
	assert.Equal(t, []entities.Class{entities.ClassComponentItem}, blink.Types())
	assert.Equal(t, []entities.Literal{entities.StringLiteral("Blink Dagger")}, blink.Data(entities.PropDisplayName))
	assert.Equal(t, []entities.Literal{entities.IntLiteral(2250)}, blink.Data(entities.PropCost))
	assert.Equal(t, []entities.Literal{entities.IntLiteral(15)}, blink.Data(entities.PropCooldown))
	assert.Equal(t, []entities.Literal{entities.StringLiteral("https://api.opendota.com/blink.png")}, blink.Data(entities.PropImageURL))
	assert.Empty(t, blink.Data(entities.PropLore))
	assert.Empty(t, blink.Data(entities.PropNotes))
	assert.Equal(t, []string{"Point_Target", "Instant_Cast"}, blink.Links(entities.PropHasBehavior))

	arcane := individual(t, o, "arcane_blink")
	assert.Equal(t, []entities.Class{entities.ClassCraftedItem}, arcane.Types())
	assert.Empty(t, arcane.Data(entities.PropCost), "zero cost is skipped")
	assert.Equal(t, []string{"blink", "mystic_staff"}, arcane.Links(entities.PropRequiresComponent))

	staff := individual(t, o, "mystic_staff")
	assert.Equal(t, []entities.Class{entities.ClassItem}, staff.Types(), "component created on demand")

	mango := individual(t, o, "mango")
	assert.Equal(t, []entities.Class{entities.ClassConsumableItem}, mango.Types())
	assert.Empty(t, mango.Data(entities.PropCooldown), "string cooldowns are not numeric")
	assert.Equal(t, []string{"No_Target"}, mango.Links(entities.PropHasBehavior))

	shovel := individual(t, o, "trusty_shovel")
	assert.Equal(t, []entities.Class{entities.ClassNeutralItem}, shovel.Types())
	assert.Equal(t, []entities.Literal{entities.IntLiteral(1)}, shovel.Data(entities.PropTier))
	assert.Empty(t, shovel.Data(entities.PropCooldown))

	odd := individual(t, o, "unknown_tier")
	assert.Equal(t, []entities.Class{entities.ClassItem}, odd.Types())
	assert.Empty(t, odd.Data(entities.PropTier))
}

func TestPopulate_ComponentDeclaredLaterKeepsItsClass(t *testing.T) {
	items := `{
		"arcane_blink": {"created": true, "components": ["blink"]},
		"blink": {"qual": "component"}
	}`
	o, _ := populate(t, sourceData(t, `{}`, `{}`, items, `{}`))

	assert.Equal(t, []entities.Class{entities.ClassComponentItem}, individual(t, o, "blink").Types())
	assert.Equal(t, 2, o.CountOf(entities.ClassItem))
}

func TestPopulate_Abilities(t *testing.T) {
	heroes := `{"1": {"name": "npc_dota_hero_antimage", "primary_attr": "agi"}}`
	details := `{"npc_dota_hero_antimage": {"abilities": ["antimage_mana_break", "antimage_blink"]}}`
	abilities := `{
		"dota_base_ability": {"dname": "Base"},
		"special_bonus_attributes": {"dname": "Attributes"},
		"antimage_mana_break": {"dname": "Mana Break", "dmg_type": "Physical", "behavior": "Passive", "desc": "Burns mana."},
		"antimage_blink": {"dname": "Blink", "mc": "60", "cd": "12", "behavior": ["Point Target", "Directional"], "img": "/blink.png"},
		"antimage_mana_void": {"dname": "", "mc": "100 / 200 / 300", "cd": 70, "dmg_type": "Magical"},
		"antimage_counterstrike": {"mc": 50, "cd": [12, 10]}
	}`
	o, result := populate(t, sourceData(t, heroes, details, `{}`, abilities))

	assert.Equal(t, 2, result.AbilitiesUpdated)
	assert.Equal(t, 2, result.AbilitiesCreated)

	_, ok := o.Individual("dota_base_ability")
	assert.False(t, ok)
	_, ok = o.Individual("special_bonus_attributes")
	assert.False(t, ok)

	breakAbility := individual(t, o, "antimage_mana_break")
	assert.Equal(t, []entities.Class{entities.ClassBasicAbility}, breakAbility.Types(), "existing class kept")
	assert.Equal(t, []entities.Literal{entities.StringLiteral("Mana Break")}, breakAbility.Data(entities.PropDisplayName))
	assert.Equal(t, []entities.Literal{entities.StringLiteral("Burns mana.")}, breakAbility.Data(entities.PropDescription))
	assert.Equal(t, []string{"Physical"}, breakAbility.Links(entities.PropHasDamageType))
	assert.Equal(t, []string{"Passive"}, breakAbility.Links(entities.PropHasBehavior))
	assert.True(t, individual(t, o, "Physical").HasType(entities.ClassDamageType))
	assert.True(t, individual(t, o, "Passive").HasType(entities.ClassBehavior))

	blink := individual(t, o, "antimage_blink")
	assert.Equal(t, []entities.Literal{entities.IntLiteral(60)}, blink.Data(entities.PropManaCost))
	assert.Equal(t, []entities.Literal{entities.FloatLiteral(12)}, blink.Data(entities.PropCooldown))
	assert.Equal(t, []string{"Point_Target", "Directional"}, blink.Links(entities.PropHasBehavior))

	voidAbility := individual(t, o, "antimage_mana_void")
	assert.Equal(t, []entities.Class{entities.ClassAbility}, voidAbility.Types())
	assert.Empty(t, voidAbility.Data(entities.PropDisplayName), "empty display name skipped")
	assert.Empty(t, voidAbility.Data(entities.PropManaCost))
	assert.Empty(t, voidAbility.Data(entities.PropCooldown), "a failed mana cost skips the cooldown")
	assert.Equal(t, []string{"Magical"}, voidAbility.Links(entities.PropHasDamageType))

	counter := individual(t, o, "antimage_counterstrike")
	assert.Equal(t, []entities.Literal{entities.IntLiteral(50)}, counter.Data(entities.PropManaCost))
	assert.Empty(t, counter.Data(entities.PropCooldown))
}

func TestPopulate_DamageTypeNamesReplaceSpaces(t *testing.T) {
	abilities := `{"x_blast": {"dmg_type": ["Pure", "Hp Removal"]}}`
	o, _ := populate(t, sourceData(t, `{}`, `{}`, `{}`, abilities))

	assert.Equal(t, []string{"Pure", "Hp_Removal"}, individual(t, o, "x_blast").Links(entities.PropHasDamageType))
	assert.True(t, individual(t, o, "Hp_Removal").HasType(entities.ClassDamageType))
}

func TestPopulate_Fixtures(t *testing.T) {
	o, result := populate(t, sourceData(t, `{}`, `{}`, `{}`, `{}`))

	// roshan + 8 creeps + 8 towers + 4 barracks + 2 ancients + 2 fountains
	assert.Equal(t, 25, result.Fixtures)
	assert.Equal(t, 25, result.Individuals)

	roshan := individual(t, o, "roshan_boss")
	assert.Equal(t, []entities.Class{entities.ClassRoshan}, roshan.Types())
	assert.Equal(t, []entities.Literal{entities.IntLiteral(7500)}, roshan.Data(entities.PropHealth))
	assert.Equal(t, []entities.Literal{entities.StringLiteral("Roshan Pit")}, roshan.Data(entities.PropSpawnLocation))

	assert.Equal(t, 4, o.CountOf(entities.ClassLaneCreep))
	assert.Equal(t, 4, o.CountOf(entities.ClassNeutralCreep))
	assert.Equal(t, 8, o.CountOf(entities.ClassTower))
	assert.Equal(t, 4, o.CountOf(entities.ClassBarracks))
	assert.Equal(t, 16, o.CountOf(entities.ClassStructure))

	dragon := individual(t, o, "ancient_black_dragon")
	assert.Equal(t, []entities.Literal{entities.StringLiteral("Ancient Black Dragon")}, dragon.Data(entities.PropDisplayName))
	assert.Equal(t, []entities.Literal{entities.IntLiteral(91)}, dragon.Data(entities.PropGoldBountyMax))

	tower := individual(t, o, "dire_tier_3_tower")
	assert.Equal(t, []entities.Literal{entities.StringLiteral("Dire Tier 3 Tower")}, tower.Data(entities.PropDisplayName))
	assert.Equal(t, []entities.Literal{entities.IntLiteral(175)}, tower.Data(entities.PropGoldBounty))
	assert.Equal(t, []entities.Literal{entities.FloatLiteral(1)}, tower.Data(entities.PropAttackRate))

	melee := individual(t, o, "radiant_melee_barracks")
	assert.Equal(t, []entities.Literal{entities.StringLiteral("Radiant Melee Barracks")}, melee.Data(entities.PropDisplayName))
	assert.Equal(t, []entities.Literal{entities.IntLiteral(2200)}, melee.Data(entities.PropHealth))
	assert.Equal(t, []entities.Literal{entities.IntLiteral(2200)}, individual(t, o, "dire_melee_barracks").Data(entities.PropHealth))
	assert.Equal(t, []entities.Literal{entities.IntLiteral(1300)}, individual(t, o, "radiant_ranged_barracks").Data(entities.PropHealth))
	assert.Equal(t, []entities.Literal{entities.IntLiteral(1300)}, individual(t, o, "dire_ranged_barracks").Data(entities.PropHealth))

	fountain := individual(t, o, "dire_fountain")
	assert.Equal(t, []entities.Literal{entities.IntLiteral(1200)}, fountain.Data(entities.PropTrueSightRadius))
}

func TestPopulate_Errors(t *testing.T) {
	service := NewPopulateService(nil, "")

	_, err := service.Populate(nil, &parsers.SourceData{})
	assert.Error(t, err)

	_, err = service.Populate(BuildOntology(testNamespace), &parsers.SourceData{})
	assert.Error(t, err)
}
