package services

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/ersonp/dota2-ontology/internal/domain/entities"
	"github.com/ersonp/dota2-ontology/internal/infrastructure/parsers"
)

// DefaultImageHost prefixes the relative image paths of the data exports.
const DefaultImageHost = "https://api.opendota.com"

// PopulateResult counts what a population pass touched.
type PopulateResult struct {
	Heroes           int
	HeroAbilities    int
	Talents          int
	Facets           int
	Items            int
	AbilitiesCreated int
	AbilitiesUpdated int
	Fixtures         int
	Individuals      int
}

// PopulateService turns parsed data exports into ontology individuals.
type PopulateService struct {
	logger    *zap.Logger
	imageHost string
}

// NewPopulateService creates a new populate service.
// An empty imageHost falls back to DefaultImageHost.
func NewPopulateService(logger *zap.Logger, imageHost string) *PopulateService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if imageHost == "" {
		imageHost = DefaultImageHost
	}
	return &PopulateService{
		logger:    logger,
		imageHost: imageHost,
	}
}

// Populate loads heroes, items and abilities from data into o, then adds the
// static unit and structure fixtures. The schema must already be declared.
func (s *PopulateService) Populate(o *entities.Ontology, data *parsers.SourceData) (*PopulateResult, error) {
	if o == nil {
		return nil, errors.New("ontology is required")
	}
	if data == nil || data.Heroes == nil || data.HeroDetails == nil || data.Items == nil || data.Abilities == nil {
		return nil, errors.New("source data is incomplete")
	}

	result := &PopulateResult{}
	s.populateHeroes(o, data, result)
	s.populateItems(o, data, result)
	s.populateAbilities(o, data, result)
	result.Fixtures = s.PopulateFixtures(o)
	result.Individuals = o.Len()

	return result, nil
}

func (s *PopulateService) populateHeroes(o *entities.Ontology, data *parsers.SourceData, result *PopulateResult) {
	for _, entry := range data.Heroes.Entries() {
		raw := entry.Value
		if raw.Name == "" {
			s.logger.Warn("skipping hero without name", zap.String("id", entry.Key))
			continue
		}

		hero := o.GetOrCreate(raw.Name, entities.HeroClassFor(raw.PrimaryAttr))
		result.Heroes++

		s.addLiteral(hero, entities.PropLocalizedName, raw.LocalizedName)
		s.addImage(hero, raw.Img)

		for _, m := range entities.HeroFieldMap {
			s.addLiteral(hero, m.Property, raw.Fields.Field(m.Source))
		}

		for _, role := range raw.Roles {
			s.link(o, hero, entities.PropHasRole, individualName(role), entities.ClassRole)
		}

		if attr, ok := entities.AttributeNameFor(raw.PrimaryAttr); ok {
			s.link(o, hero, entities.PropHasPrimaryAttribute, attr, entities.ClassPrimaryAttribute)
		}

		if raw.AttackType.Truthy() {
			if attackType, ok := raw.AttackType.AsString(); ok {
				s.link(o, hero, entities.PropHasAttackType, individualName(attackType), entities.ClassAttackType)
			}
		}

		details, ok := data.HeroDetails.Get(raw.Name)
		if !ok {
			s.logger.Debug("no ability details for hero", zap.String("hero", raw.Name))
			continue
		}
		s.populateHeroDetails(o, hero, details, result)
	}
}

func (s *PopulateService) populateHeroDetails(o *entities.Ontology, hero *entities.Individual, details parsers.RawHeroDetails, result *PopulateResult) {
	// The slot is the index in the unfiltered list.
	for slot, name := range details.Abilities {
		if entities.IsExcluded(entities.ExcludedHeroAbilities, name) {
			continue
		}
		o.GetOrCreate(name, entities.AbilityClassForSlot(slot))
		hero.AddLink(entities.PropHasAbility, name)
		result.HeroAbilities++
	}

	for _, talent := range details.Talents {
		ind := o.GetOrCreate(talent.Name, entities.ClassTalent)
		s.addLiteral(ind, entities.PropRequiredLevel, talent.Level)
		hero.AddLink(entities.PropHasTalent, talent.Name)
		result.Talents++
	}

	for _, facet := range details.Facets {
		ind := o.GetOrCreate(facet.Name, entities.ClassFacet)
		s.addLiteral(ind, entities.PropFacetTitle, facet.Title)
		s.addLiteral(ind, entities.PropFacetDescription, facet.Description)
		s.addLiteral(ind, entities.PropFacetColor, facet.Color)
		hero.AddLink(entities.PropHasFacet, facet.Name)
		result.Facets++
	}
}

func (s *PopulateService) populateItems(o *entities.Ontology, data *parsers.SourceData, result *PopulateResult) {
	for _, entry := range data.Items.Entries() {
		key, raw := entry.Key, entry.Value

		class := entities.ClassItem
		if raw.Tier.Truthy() {
			class = entities.ClassNeutralItem
		}
		item := o.GetOrCreate(key, class)
		result.Items++

		s.addLiteral(item, entities.PropDisplayName, raw.DisplayName)

		if raw.Created.Truthy() {
			o.Tag(item, entities.ClassCraftedItem)
		}
		qual := raw.Qual.Text()
		if strings.Contains(qual, "component") {
			o.Tag(item, entities.ClassComponentItem)
		}
		if strings.Contains(qual, "consumable") {
			o.Tag(item, entities.ClassConsumableItem)
		}

		if raw.Tier.Truthy() {
			s.addLiteral(item, entities.PropTier, raw.Tier)
		}
		s.addTruthy(item, entities.PropCost, raw.Cost)
		s.addTruthy(item, entities.PropLore, raw.Lore)
		s.addTruthy(item, entities.PropNotes, raw.Notes)
		s.addImage(item, raw.Img)

		if _, isNumber := raw.Cooldown.Number(); isNumber && raw.Cooldown.Truthy() {
			s.addLiteral(item, entities.PropCooldown, raw.Cooldown)
		}

		for _, component := range raw.Components.Strings() {
			if component == "" {
				continue
			}
			if _, exists := o.Individual(component); !exists {
				s.logger.Debug("creating component item on demand",
					zap.String("item", key), zap.String("component", component))
			}
			s.link(o, item, entities.PropRequiresComponent, component, entities.ClassItem)
		}

		s.addBehaviors(o, item, raw.Behavior)
	}
}

func (s *PopulateService) populateAbilities(o *entities.Ontology, data *parsers.SourceData, result *PopulateResult) {
	for _, entry := range data.Abilities.Entries() {
		key, raw := entry.Key, entry.Value
		if entities.IsExcluded(entities.ExcludedAbilities, key) {
			continue
		}

		ability, ok := o.Individual(key)
		if ok {
			result.AbilitiesUpdated++
		} else {
			ability = o.GetOrCreate(key, entities.ClassAbility)
			result.AbilitiesCreated++
		}

		s.addTruthy(ability, entities.PropDisplayName, raw.DisplayName)
		s.addImage(ability, raw.Img)
		s.addLiteral(ability, entities.PropDescription, raw.Description)

		// Damage type names get the same space-to-underscore rule as roles
		// and behaviors so every name stays a valid IRI fragment.
		if raw.DamageType.Truthy() {
			for _, dmg := range raw.DamageType.Strings() {
				s.link(o, ability, entities.PropHasDamageType, individualName(dmg), entities.ClassDamageType)
			}
		}

		if err := s.addCosts(ability, raw); err != nil {
			s.logger.Warn("skipping unconvertible ability costs",
				zap.String("ability", key), zap.Error(err))
		}

		s.addBehaviors(o, ability, raw.Behavior)
	}
}

// addCosts stores mana cost then cooldown. The first value that does not
// convert stops the remaining conversions.
func (s *PopulateService) addCosts(ability *entities.Individual, raw parsers.RawAbility) error {
	if raw.ManaCost.Truthy() {
		n, err := raw.ManaCost.Int()
		if err != nil {
			return err
		}
		ability.AddData(entities.PropManaCost, entities.IntLiteral(n))
	}
	if raw.Cooldown.Truthy() {
		f, err := raw.Cooldown.Float()
		if err != nil {
			return err
		}
		ability.AddData(entities.PropCooldown, entities.FloatLiteral(f))
	}
	return nil
}

func (s *PopulateService) addBehaviors(o *entities.Ontology, ind *entities.Individual, behavior parsers.Value) {
	for _, name := range behavior.Strings() {
		s.link(o, ind, entities.PropHasBehavior, individualName(name), entities.ClassBehavior)
	}
}

// link points ind at the named target through property, creating the target
// with class when it does not exist yet.
func (s *PopulateService) link(o *entities.Ontology, ind *entities.Individual, property, target string, class entities.Class) {
	o.GetOrCreate(target, class)
	ind.AddLink(property, target)
}

// addLiteral stores any scalar value; null and structured values are skipped.
func (s *PopulateService) addLiteral(ind *entities.Individual, property string, v parsers.Value) {
	if lit, ok := v.Literal(); ok {
		ind.AddData(property, lit)
	}
}

// addTruthy stores the value only when it is not empty, false or zero.
func (s *PopulateService) addTruthy(ind *entities.Individual, property string, v parsers.Value) {
	if v.Truthy() {
		s.addLiteral(ind, property, v)
	}
}

func (s *PopulateService) addImage(ind *entities.Individual, img parsers.Value) {
	if path, ok := img.AsString(); ok {
		ind.AddData(entities.PropImageURL, entities.StringLiteral(s.imageHost+path))
	}
}

// individualName turns a display label into an IRI-safe individual name.
func individualName(label string) string {
	return strings.ReplaceAll(label, " ", "_")
}
