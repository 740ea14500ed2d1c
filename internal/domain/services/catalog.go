package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/iancoleman/strcase"
	"go.uber.org/zap"

	"github.com/ersonp/dota2-ontology/internal/domain/entities"
	"github.com/ersonp/dota2-ontology/internal/domain/ports"
)

// ErrEntityNotFound is returned when a catalog lookup has no match.
var ErrEntityNotFound = errors.New("entity not found")

// StoreResult counts the rows written by a catalog store.
type StoreResult struct {
	Entities      int
	Attributes    int
	Relationships int
}

// EntityDetails is an entity with its data values and outgoing links.
type EntityDetails struct {
	Entity        *entities.Entity
	Attributes    []entities.Attribute
	Relationships []entities.Relationship
	Targets       map[string]string // target entity ID -> name
}

// CatalogService copies ontology individuals into the relational catalog
// and answers lookups against it.
type CatalogService struct {
	catalog ports.Catalog
	logger  *zap.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(catalog ports.Catalog, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{
		catalog: catalog,
		logger:  logger,
	}
}

// EntityID returns the stable catalog ID of an individual IRI.
func EntityID(iri string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(iri)).String()
}

// RelationTypeFor converts an object property name to its catalog type,
// e.g. hasPrimaryAttribute -> has_primary_attribute.
func RelationTypeFor(property string) entities.RelationType {
	return entities.RelationType(strcase.ToSnake(property))
}

// Store replaces the catalog contents with the named individuals of g.
// Only classes and properties in namespace are kept.
func (s *CatalogService) Store(ctx context.Context, g *entities.Graph, namespace string) (*StoreResult, error) {
	if g == nil {
		return nil, errors.New("graph is required")
	}

	named := make(map[entities.Term]*entities.Entity)
	var order []entities.Term
	for _, subject := range g.Subjects(entities.RDFType, entities.IRI(entities.OWLNamedIndividual)) {
		if subject.Kind != entities.TermIRI || !strings.HasPrefix(subject.Value, namespace) {
			continue
		}
		if _, ok := named[subject]; ok {
			continue
		}
		name := strings.TrimPrefix(subject.Value, namespace)
		named[subject] = &entities.Entity{
			ID:             EntityID(subject.Value),
			Name:           name,
			NormalizedName: entities.LocalName(subject),
			CreatedAt:      time.Now().UTC(),
		}
		order = append(order, subject)
	}

	list := make([]*entities.Entity, 0, len(order))
	var attributes []entities.Attribute
	var relationships []entities.Relationship

	for _, subject := range order {
		entity := named[subject]
		for _, t := range g.PredicateObjects(subject) {
			if t.Predicate == entities.RDFType {
				if t.Object.Kind == entities.TermIRI && strings.HasPrefix(t.Object.Value, namespace) {
					entity.Classes = append(entity.Classes, entities.Class(strings.TrimPrefix(t.Object.Value, namespace)))
				}
				continue
			}
			if !strings.HasPrefix(t.Predicate, namespace) {
				continue
			}
			property := strings.TrimPrefix(t.Predicate, namespace)

			switch t.Object.Kind {
			case entities.TermLiteral:
				attributes = append(attributes, entities.Attribute{
					EntityID: entity.ID,
					Property: property,
					Value:    t.Object.Value,
					Datatype: entities.Datatype(t.Object.Datatype),
				})
			case entities.TermIRI:
				target, ok := named[t.Object]
				if !ok {
					s.logger.Debug("skipping link to unnamed node",
						zap.String("subject", entity.Name), zap.String("object", t.Object.Value))
					continue
				}
				relationships = append(relationships, entities.Relationship{
					ID:             EntityID(subject.Value + " " + t.Predicate + " " + t.Object.Value),
					SourceEntityID: entity.ID,
					TargetEntityID: target.ID,
					Type:           RelationTypeFor(property),
					Property:       property,
					CreatedAt:      entity.CreatedAt,
				})
			}
		}
		list = append(list, entity)
	}

	if err := s.catalog.Clear(ctx); err != nil {
		return nil, fmt.Errorf("clearing catalog: %w", err)
	}
	if err := s.catalog.SaveEntities(ctx, list); err != nil {
		return nil, fmt.Errorf("saving entities: %w", err)
	}
	if err := s.catalog.SaveAttributes(ctx, attributes); err != nil {
		return nil, fmt.Errorf("saving attributes: %w", err)
	}
	if err := s.catalog.SaveRelationships(ctx, relationships); err != nil {
		return nil, fmt.Errorf("saving relationships: %w", err)
	}

	return &StoreResult{
		Entities:      len(list),
		Attributes:    len(attributes),
		Relationships: len(relationships),
	}, nil
}

// Describe looks up an entity by name and loads its attributes and links.
func (s *CatalogService) Describe(ctx context.Context, name string) (*EntityDetails, error) {
	entity, err := s.catalog.FindEntityByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("finding entity: %w", err)
	}
	if entity == nil {
		return nil, fmt.Errorf("%w: %s", ErrEntityNotFound, name)
	}

	attributes, err := s.catalog.FindAttributes(ctx, entity.ID)
	if err != nil {
		return nil, fmt.Errorf("finding attributes: %w", err)
	}

	relationships, err := s.catalog.FindRelationshipsByEntity(ctx, entity.ID)
	if err != nil {
		return nil, fmt.Errorf("finding relationships: %w", err)
	}

	return &EntityDetails{
		Entity:        entity,
		Attributes:    attributes,
		Relationships: relationships,
		Targets:       s.resolveTargets(ctx, relationships),
	}, nil
}

func (s *CatalogService) resolveTargets(ctx context.Context, relationships []entities.Relationship) map[string]string {
	targets := make(map[string]string, len(relationships))
	for _, rel := range relationships {
		if _, ok := targets[rel.TargetEntityID]; ok {
			continue
		}
		target, err := s.catalog.FindEntityByID(ctx, rel.TargetEntityID)
		if err != nil || target == nil {
			targets[rel.TargetEntityID] = rel.TargetEntityID
			continue
		}
		targets[rel.TargetEntityID] = target.Name
	}
	return targets
}

// ListByClass lists entities asserted with the class.
func (s *CatalogService) ListByClass(ctx context.Context, class entities.Class, limit int) ([]*entities.Entity, error) {
	list, err := s.catalog.ListEntitiesByClass(ctx, class, limit)
	if err != nil {
		return nil, fmt.Errorf("listing %s entities: %w", class, err)
	}
	return list, nil
}

// Stats returns catalog row counts.
func (s *CatalogService) Stats(ctx context.Context) (entities.CatalogStats, error) {
	stats, err := s.catalog.Stats(ctx)
	if err != nil {
		return entities.CatalogStats{}, fmt.Errorf("reading catalog stats: %w", err)
	}
	return stats, nil
}
