package services

import (
	"errors"

	"go.uber.org/zap"

	"github.com/ersonp/dota2-ontology/internal/domain/entities"
)

// ExtractionResult holds the extracted facts and the number of distinct
// abilities that were inspected for type and damage facts.
type ExtractionResult struct {
	Facts     *entities.FactSet
	Abilities int
}

// ExtractionService derives Prolog facts from an ontology graph.
type ExtractionService struct {
	logger *zap.Logger
}

// NewExtractionService creates a new extraction service.
func NewExtractionService(logger *zap.Logger) *ExtractionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExtractionService{logger: logger}
}

// Extract walks the graph in four passes: heroes with their primary
// attribute, roles, hero abilities, and finally the behavior and damage
// type of every ability found in the third pass. Property IRIs are built
// from namespace.
func (s *ExtractionService) Extract(g *entities.Graph, namespace string) (*ExtractionResult, error) {
	if g == nil {
		return nil, errors.New("graph is required")
	}

	facts := entities.NewFactSet()
	addBinary := func(p entities.Predicate, t entities.Triple) {
		facts.Add(entities.Fact{
			Predicate: p,
			Subject:   entities.LocalName(t.Subject),
			Object:    entities.LocalName(t.Object),
		})
	}

	hasPrimary := namespace + entities.PropHasPrimaryAttribute
	hasRole := namespace + entities.PropHasRole
	hasAbility := namespace + entities.PropHasAbility
	hasBehavior := namespace + entities.PropHasBehavior
	hasDamageType := namespace + entities.PropHasDamageType

	var abilities []entities.Term
	seenAbility := make(map[entities.Term]struct{})

	for _, t := range g.Triples(hasPrimary) {
		facts.Add(entities.Fact{Predicate: entities.PredHero, Subject: entities.LocalName(t.Subject)})
		addBinary(entities.PredPrimaryAttribute, t)
	}

	for _, t := range g.Triples(hasRole) {
		addBinary(entities.PredHasRole, t)
	}

	for _, t := range g.Triples(hasAbility) {
		addBinary(entities.PredHasAbility, t)
		if _, ok := seenAbility[t.Object]; !ok {
			seenAbility[t.Object] = struct{}{}
			abilities = append(abilities, t.Object)
		}
	}

	for _, ability := range abilities {
		for _, t := range g.PredicateObjects(ability) {
			switch t.Predicate {
			case hasBehavior:
				addBinary(entities.PredAbilityType, t)
			case hasDamageType:
				addBinary(entities.PredDamageType, t)
			}
		}
	}

	s.logger.Debug("extracted facts",
		zap.Int("triples", g.Len()),
		zap.Int("facts", facts.Len()),
		zap.Int("abilities", len(abilities)))

	return &ExtractionResult{Facts: facts, Abilities: len(abilities)}, nil
}
