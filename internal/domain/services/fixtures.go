package services

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ersonp/dota2-ontology/internal/domain/entities"
)

var factions = []string{"radiant", "dire"}

type creepFixture struct {
	name       string
	class      entities.Class
	health     int64
	armor      int64
	moveSpeed  int64
	experience int64
	goldMin    int64
	goldMax    int64
	location   string
}

var creepFixtures = []creepFixture{
	{"radiant_melee_creep", entities.ClassLaneCreep, 550, 0, 325, 40, 18, 23, "Radiant Lanes"},
	{"radiant_ranged_creep", entities.ClassLaneCreep, 300, 0, 325, 60, 28, 33, "Radiant Lanes"},
	{"dire_melee_creep", entities.ClassLaneCreep, 550, 0, 325, 40, 18, 23, "Dire Lanes"},
	{"dire_ranged_creep", entities.ClassLaneCreep, 300, 0, 325, 60, 28, 33, "Dire Lanes"},

	{"kobold_soldier", entities.ClassNeutralCreep, 300, 0, 315, 22, 14, 17, "Small Neutral Camp"},
	{"satyr_mindstealer", entities.ClassNeutralCreep, 600, 0, 300, 42, 22, 26, "Medium Neutral Camp"},
	{"centaur_conqueror", entities.ClassNeutralCreep, 950, 2, 325, 62, 58, 68, "Large Neutral Camp"},
	{"ancient_black_dragon", entities.ClassNeutralCreep, 2000, 4, 300, 180, 77, 91, "Ancient Neutral Camp"},
}

type towerFixture struct {
	tier       int64
	health     int64
	armor      int64
	damage     int64 // not modeled in the schema
	attackRng  int64
	gold       int64
	experience int64
}

var towerFixtures = []towerFixture{
	{1, 1800, 12, 100, 700, 125, 0},
	{2, 2000, 14, 120, 700, 150, 0},
	{3, 2000, 14, 120, 700, 175, 0},
	{4, 2000, 20, 150, 700, 200, 0},
}

// barracksHealth gives melee barracks 2200 and ranged barracks 1300 hit
// points. The reference ontology gave all four barracks 1300 because its
// melee check compared against a capitalized type name.
var barracksHealth = map[string]int64{
	"melee":  2200,
	"ranged": 1300,
}

// PopulateFixtures inserts the static non-hero units and structures and
// returns how many individuals it wrote.
func (s *PopulateService) PopulateFixtures(o *entities.Ontology) int {
	title := cases.Title(language.English)
	display := func(name string) entities.Literal {
		return entities.StringLiteral(title.String(strings.ReplaceAll(name, "_", " ")))
	}
	count := 0

	roshan := o.GetOrCreate("roshan_boss", entities.ClassRoshan)
	roshan.AddData(entities.PropDisplayName, entities.StringLiteral("Roshan"))
	roshan.AddData(entities.PropHealth, entities.IntLiteral(7500))
	roshan.AddData(entities.PropArmor, entities.IntLiteral(20))
	roshan.AddData(entities.PropMovementSpeed, entities.IntLiteral(270))
	roshan.AddData(entities.PropExperienceBounty, entities.IntLiteral(225))
	roshan.AddData(entities.PropSpawnLocation, entities.StringLiteral("Roshan Pit"))
	count++

	for _, c := range creepFixtures {
		creep := o.GetOrCreate(c.name, c.class)
		creep.AddData(entities.PropDisplayName, display(c.name))
		creep.AddData(entities.PropHealth, entities.IntLiteral(c.health))
		creep.AddData(entities.PropArmor, entities.IntLiteral(c.armor))
		creep.AddData(entities.PropMovementSpeed, entities.IntLiteral(c.moveSpeed))
		creep.AddData(entities.PropExperienceBounty, entities.IntLiteral(c.experience))
		creep.AddData(entities.PropGoldBountyMin, entities.IntLiteral(c.goldMin))
		creep.AddData(entities.PropGoldBountyMax, entities.IntLiteral(c.goldMax))
		creep.AddData(entities.PropSpawnLocation, entities.StringLiteral(c.location))
		count++
	}

	for _, faction := range factions {
		for _, t := range towerFixtures {
			name := fmt.Sprintf("%s_tier_%d_tower", faction, t.tier)
			tower := o.GetOrCreate(name, entities.ClassTower)
			tower.AddData(entities.PropDisplayName, display(name))
			tower.AddData(entities.PropHealth, entities.IntLiteral(t.health))
			tower.AddData(entities.PropArmor, entities.IntLiteral(t.armor))
			tower.AddData(entities.PropAttackRate, entities.FloatLiteral(1.0))
			tower.AddData(entities.PropAttackRange, entities.IntLiteral(t.attackRng))
			tower.AddData(entities.PropStructureTier, entities.IntLiteral(t.tier))
			tower.AddData(entities.PropGoldBounty, entities.IntLiteral(t.gold))
			tower.AddData(entities.PropExperienceBounty, entities.IntLiteral(t.experience))
			tower.AddData(entities.PropTrueSightRadius, entities.IntLiteral(700))
			count++
		}
	}

	for _, faction := range factions {
		for _, kind := range []string{"melee", "ranged"} {
			name := fmt.Sprintf("%s_%s_barracks", faction, kind)
			barracks := o.GetOrCreate(name, entities.ClassBarracks)
			barracks.AddData(entities.PropDisplayName, display(name))
			barracks.AddData(entities.PropHealth, entities.IntLiteral(barracksHealth[kind]))
			barracks.AddData(entities.PropArmor, entities.IntLiteral(12))
			barracks.AddData(entities.PropHealthRegen, entities.FloatLiteral(5.0))
			barracks.AddData(entities.PropGoldBounty, entities.IntLiteral(150))
			count++
		}
	}

	for _, faction := range factions {
		ancient := o.GetOrCreate(faction+"_ancient", entities.ClassAncient)
		ancient.AddData(entities.PropDisplayName, display(faction+"_ancient"))
		ancient.AddData(entities.PropHealth, entities.IntLiteral(4250))
		ancient.AddData(entities.PropArmor, entities.IntLiteral(18))
		ancient.AddData(entities.PropHealthRegen, entities.FloatLiteral(12.0))
		count++
	}

	for _, faction := range factions {
		fountain := o.GetOrCreate(faction+"_fountain", entities.ClassFountain)
		fountain.AddData(entities.PropDisplayName, display(faction+"_fountain"))
		fountain.AddData(entities.PropHealth, entities.IntLiteral(200000))
		fountain.AddData(entities.PropArmor, entities.IntLiteral(200))
		fountain.AddData(entities.PropAttackRange, entities.IntLiteral(1200))
		fountain.AddData(entities.PropTrueSightRadius, entities.IntLiteral(1200))
		count++
	}

	s.logger.Debug("populated fixtures", zap.Int("individuals", count))
	return count
}
