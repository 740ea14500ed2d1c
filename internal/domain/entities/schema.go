package entities

// Class names an OWL class of the game ontology.
type Class string

// Upper classes.
const (
	ClassDota2Entity    Class = "Dota2Entity"
	ClassAgent          Class = "Agent"
	ClassGameItem       Class = "GameItem"
	ClassAbilityConcept Class = "AbilityConcept"
	ClassGameMechanic   Class = "GameMechanic"
	ClassStructure      Class = "Structure"
)

// Agents.
const (
	ClassHero             Class = "Hero"
	ClassNonHeroUnit      Class = "NonHeroUnit"
	ClassStrengthHero     Class = "StrengthHero"
	ClassAgilityHero      Class = "AgilityHero"
	ClassIntelligenceHero Class = "IntelligenceHero"
	ClassUniversalHero    Class = "UniversalHero"
	ClassCreep            Class = "Creep"
	ClassSummonedUnit     Class = "SummonedUnit"
	ClassRoshan           Class = "Roshan"
	ClassLaneCreep        Class = "LaneCreep"
	ClassNeutralCreep     Class = "NeutralCreep"
)

// Items.
const (
	ClassItem           Class = "Item"
	ClassComponentItem  Class = "ComponentItem"
	ClassCraftedItem    Class = "CraftedItem"
	ClassConsumableItem Class = "ConsumableItem"
	ClassNeutralItem    Class = "NeutralItem"
)

// Ability concepts.
const (
	ClassAbility         Class = "Ability"
	ClassBasicAbility    Class = "BasicAbility"
	ClassUltimateAbility Class = "UltimateAbility"
	ClassTalent          Class = "Talent"
	ClassFacet           Class = "Facet"
)

// Game mechanics.
const (
	ClassRole             Class = "Role"
	ClassAttribute        Class = "Attribute"
	ClassPrimaryAttribute Class = "PrimaryAttribute"
	ClassAttackType       Class = "AttackType"
	ClassDamageType       Class = "DamageType"
	ClassBehavior         Class = "Behavior"
)

// Structures.
const (
	ClassBuilding Class = "Building"
	ClassFountain Class = "Fountain"
	ClassTower    Class = "Tower"
	ClassBarracks Class = "Barracks"
	ClassAncient  Class = "Ancient"
	ClassEffigy   Class = "Effigy"
)

// ClassDef declares a class and its direct parent.
// An empty Parent means the class sits directly under owl:Thing.
type ClassDef struct {
	Name   Class
	Parent Class
}

// Classes is the class hierarchy, parents before children.
var Classes = []ClassDef{
	{Name: ClassDota2Entity},

	{Name: ClassAgent, Parent: ClassDota2Entity},
	{Name: ClassGameItem, Parent: ClassDota2Entity},
	{Name: ClassAbilityConcept, Parent: ClassDota2Entity},
	{Name: ClassGameMechanic, Parent: ClassDota2Entity},
	{Name: ClassStructure, Parent: ClassDota2Entity},

	{Name: ClassHero, Parent: ClassAgent},
	{Name: ClassNonHeroUnit, Parent: ClassAgent},

	{Name: ClassStrengthHero, Parent: ClassHero},
	{Name: ClassAgilityHero, Parent: ClassHero},
	{Name: ClassIntelligenceHero, Parent: ClassHero},
	{Name: ClassUniversalHero, Parent: ClassHero},

	{Name: ClassCreep, Parent: ClassNonHeroUnit},
	{Name: ClassSummonedUnit, Parent: ClassNonHeroUnit},
	{Name: ClassRoshan, Parent: ClassNonHeroUnit},
	{Name: ClassLaneCreep, Parent: ClassCreep},
	{Name: ClassNeutralCreep, Parent: ClassCreep},

	{Name: ClassItem, Parent: ClassGameItem},
	{Name: ClassComponentItem, Parent: ClassItem},
	{Name: ClassCraftedItem, Parent: ClassItem},
	{Name: ClassConsumableItem, Parent: ClassItem},
	{Name: ClassNeutralItem, Parent: ClassItem},

	{Name: ClassAbility, Parent: ClassAbilityConcept},
	{Name: ClassBasicAbility, Parent: ClassAbility},
	{Name: ClassUltimateAbility, Parent: ClassAbility},
	{Name: ClassTalent, Parent: ClassAbilityConcept},
	{Name: ClassFacet, Parent: ClassAbilityConcept},

	{Name: ClassRole, Parent: ClassGameMechanic},
	{Name: ClassAttribute, Parent: ClassGameMechanic},
	{Name: ClassPrimaryAttribute, Parent: ClassAttribute},
	{Name: ClassAttackType, Parent: ClassGameMechanic},
	{Name: ClassDamageType, Parent: ClassGameMechanic},
	{Name: ClassBehavior, Parent: ClassGameMechanic},

	{Name: ClassBuilding, Parent: ClassStructure},
	{Name: ClassFountain, Parent: ClassStructure},
	{Name: ClassTower, Parent: ClassBuilding},
	{Name: ClassBarracks, Parent: ClassBuilding},
	{Name: ClassAncient, Parent: ClassBuilding},
	{Name: ClassEffigy, Parent: ClassBuilding},
}

// DisjointClasses lists groups of pairwise-disjoint classes.
var DisjointClasses = [][]Class{
	{ClassStrengthHero, ClassAgilityHero, ClassIntelligenceHero, ClassUniversalHero},
}

// PropertyKind distinguishes data properties from object properties.
type PropertyKind int

const (
	DataProperty PropertyKind = iota
	ObjectProperty
)

// Data property names.
const (
	PropDisplayName         = "displayName"
	PropDescription         = "description"
	PropImageURL            = "imageURL"
	PropHealth              = "health"
	PropMana                = "mana"
	PropHealthRegen         = "healthRegen"
	PropManaRegen           = "manaRegen"
	PropArmor               = "armor"
	PropMagicResistance     = "magicResistance"
	PropMovementSpeed       = "movementSpeed"
	PropExperienceBounty    = "experienceBounty"
	PropLocalizedName       = "localizedName"
	PropBaseMinAttackDamage = "baseMinAttackDamage"
	PropBaseMaxAttackDamage = "baseMaxAttackDamage"
	PropAttackRange         = "attackRange"
	PropAttackRate          = "attackRate"
	PropStrengthGain        = "strengthGain"
	PropAgilityGain         = "agilityGain"
	PropIntelligenceGain    = "intelligenceGain"
	PropDayVision           = "dayVision"
	PropNightVision         = "nightVision"
	PropCooldown            = "cooldown"
	PropManaCost            = "manaCost"
	PropRequiredLevel       = "requiredLevel"
	PropFacetTitle          = "facetTitle"
	PropFacetDescription    = "facetDescription"
	PropFacetColor          = "facetColor"
	PropCost                = "cost"
	PropLore                = "lore"
	PropNotes               = "notes"
	PropTier                = "tier"
	PropGoldBounty          = "goldBounty"
	PropStructureTier       = "structureTier"
	PropTrueSightRadius     = "trueSightRadius"
	PropGoldBountyMin       = "goldBountyMin"
	PropGoldBountyMax       = "goldBountyMax"
	PropSpawnLocation       = "spawnLocation"
)

// Object property names.
const (
	PropHasAbility          = "hasAbility"
	PropHasTalent           = "hasTalent"
	PropHasFacet            = "hasFacet"
	PropHasRole             = "hasRole"
	PropHasPrimaryAttribute = "hasPrimaryAttribute"
	PropHasAttackType       = "hasAttackType"
	PropHasBehavior         = "hasBehavior"
	PropHasDamageType       = "hasDamageType"
	PropGrantsAbility       = "grantsAbility"
	PropTargetsTeam         = "targetsTeam"
	PropRequiresComponent   = "requiresComponent"
	PropBuildsInto          = "buildsInto"
	PropCounters            = "counters"
	PropSynergizesWith      = "synergizesWith"
)

// PropertyDef declares a data or object property.
// Data properties carry their XSD range in Datatype; object properties
// carry class ranges in Range, or a Datatype when the range is a literal type.
type PropertyDef struct {
	Name      string
	Kind      PropertyKind
	Domain    []Class
	Range     []Class
	Datatype  Datatype
	InverseOf string
}

func dataProp(name string, dt Datatype, domain ...Class) PropertyDef {
	return PropertyDef{Name: name, Kind: DataProperty, Domain: domain, Datatype: dt}
}

func objectProp(name string, domain []Class, rng ...Class) PropertyDef {
	return PropertyDef{Name: name, Kind: ObjectProperty, Domain: domain, Range: rng}
}

// DataProperties is the data property table.
var DataProperties = []PropertyDef{
	dataProp(PropDisplayName, XSDString),
	dataProp(PropDescription, XSDString),
	dataProp(PropImageURL, XSDString),

	dataProp(PropHealth, XSDInteger, ClassAgent, ClassStructure),
	dataProp(PropMana, XSDInteger, ClassAgent),
	dataProp(PropHealthRegen, XSDDecimal, ClassAgent, ClassStructure),
	dataProp(PropManaRegen, XSDDecimal, ClassAgent),
	dataProp(PropArmor, XSDInteger, ClassAgent, ClassStructure),
	dataProp(PropMagicResistance, XSDInteger, ClassAgent),
	dataProp(PropMovementSpeed, XSDInteger, ClassAgent),
	dataProp(PropExperienceBounty, XSDInteger, ClassNonHeroUnit, ClassStructure),

	dataProp(PropLocalizedName, XSDString, ClassHero),
	dataProp(PropBaseMinAttackDamage, XSDInteger, ClassHero),
	dataProp(PropBaseMaxAttackDamage, XSDInteger, ClassHero),
	dataProp(PropAttackRange, XSDInteger, ClassHero, ClassStructure),
	dataProp(PropAttackRate, XSDDecimal, ClassHero, ClassStructure),
	dataProp(PropStrengthGain, XSDDecimal, ClassHero),
	dataProp(PropAgilityGain, XSDDecimal, ClassHero),
	dataProp(PropIntelligenceGain, XSDDecimal, ClassHero),
	dataProp(PropDayVision, XSDInteger, ClassHero),
	dataProp(PropNightVision, XSDInteger, ClassHero),

	dataProp(PropCooldown, XSDDecimal, ClassAbilityConcept),
	dataProp(PropManaCost, XSDInteger, ClassAbilityConcept),
	dataProp(PropRequiredLevel, XSDInteger, ClassTalent),
	dataProp(PropFacetTitle, XSDString, ClassFacet),
	dataProp(PropFacetDescription, XSDString, ClassFacet),
	dataProp(PropFacetColor, XSDString, ClassFacet),

	dataProp(PropCost, XSDInteger, ClassItem),
	dataProp(PropLore, XSDString, ClassItem),
	dataProp(PropNotes, XSDString, ClassItem),
	dataProp(PropTier, XSDInteger, ClassNeutralItem),

	dataProp(PropGoldBounty, XSDInteger, ClassStructure),
	dataProp(PropStructureTier, XSDInteger, ClassTower),
	dataProp(PropTrueSightRadius, XSDInteger, ClassTower, ClassFountain),

	dataProp(PropGoldBountyMin, XSDInteger, ClassCreep),
	dataProp(PropGoldBountyMax, XSDInteger, ClassCreep),
	dataProp(PropSpawnLocation, XSDString, ClassNonHeroUnit),
}

// ObjectProperties is the object property table.
var ObjectProperties = []PropertyDef{
	objectProp(PropHasAbility, []Class{ClassHero}, ClassAbilityConcept),
	objectProp(PropHasTalent, []Class{ClassHero}, ClassTalent),
	objectProp(PropHasFacet, []Class{ClassHero}, ClassFacet),
	objectProp(PropHasRole, []Class{ClassHero}, ClassRole),
	objectProp(PropHasPrimaryAttribute, []Class{ClassHero}, ClassPrimaryAttribute),
	objectProp(PropHasAttackType, []Class{ClassHero}, ClassAttackType),
	objectProp(PropHasBehavior, []Class{ClassAbilityConcept, ClassItem}, ClassBehavior),
	objectProp(PropHasDamageType, []Class{ClassAbilityConcept}, ClassDamageType),
	objectProp(PropGrantsAbility, []Class{ClassItem, ClassFacet}, ClassAbility),
	{Name: PropTargetsTeam, Kind: ObjectProperty, Domain: []Class{ClassAbility}, Datatype: XSDString},
	objectProp(PropRequiresComponent, []Class{ClassCraftedItem}, ClassItem),
	{Name: PropBuildsInto, Kind: ObjectProperty, InverseOf: PropRequiresComponent},
	objectProp(PropCounters, []Class{ClassHero}, ClassHero),
	objectProp(PropSynergizesWith, []Class{ClassHero}, ClassHero),
}
