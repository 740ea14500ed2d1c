package mocks

import (
	"context"
	"sort"
	"strings"

	"github.com/ersonp/dota2-ontology/internal/domain/entities"
)

// Catalog is an in-memory mock implementation of ports.Catalog.
type Catalog struct {
	Entities      map[string]*entities.Entity
	Attributes    []entities.Attribute
	Relationships []entities.Relationship
	Err           error

	// Call tracking
	ClearCallCount int
}

// NewCatalog creates a new mock Catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		Entities: make(map[string]*entities.Entity),
	}
}

// EnsureSchema returns the configured error.
func (m *Catalog) EnsureSchema(_ context.Context) error {
	return m.Err
}

// Close closes nothing.
func (m *Catalog) Close() error {
	return nil
}

// Clear removes every stored row.
func (m *Catalog) Clear(_ context.Context) error {
	m.ClearCallCount++
	if m.Err != nil {
		return m.Err
	}
	m.Entities = make(map[string]*entities.Entity)
	m.Attributes = nil
	m.Relationships = nil
	return nil
}

// SaveEntities stores entities by ID.
func (m *Catalog) SaveEntities(_ context.Context, list []*entities.Entity) error {
	if m.Err != nil {
		return m.Err
	}
	for _, e := range list {
		m.Entities[e.ID] = e
	}
	return nil
}

// SaveAttributes appends attributes.
func (m *Catalog) SaveAttributes(_ context.Context, attributes []entities.Attribute) error {
	if m.Err != nil {
		return m.Err
	}
	m.Attributes = append(m.Attributes, attributes...)
	return nil
}

// SaveRelationships appends relationships.
func (m *Catalog) SaveRelationships(_ context.Context, relationships []entities.Relationship) error {
	if m.Err != nil {
		return m.Err
	}
	m.Relationships = append(m.Relationships, relationships...)
	return nil
}

// FindEntityByName matches the name or the normalized name, case-insensitively.
func (m *Catalog) FindEntityByName(_ context.Context, name string) (*entities.Entity, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, e := range m.Entities {
		if strings.EqualFold(e.Name, name) || e.NormalizedName == strings.ToLower(name) {
			return e, nil
		}
	}
	return nil, nil
}

// FindEntityByID finds an entity by its ID.
func (m *Catalog) FindEntityByID(_ context.Context, entityID string) (*entities.Entity, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Entities[entityID], nil
}

// ListEntitiesByClass lists entities with the class, sorted by name.
func (m *Catalog) ListEntitiesByClass(_ context.Context, class entities.Class, limit int) ([]*entities.Entity, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var result []*entities.Entity
	for _, e := range m.Entities {
		for _, c := range e.Classes {
			if c == class {
				result = append(result, e)
				break
			}
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// FindAttributes returns the attributes of an entity.
func (m *Catalog) FindAttributes(_ context.Context, entityID string) ([]entities.Attribute, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var result []entities.Attribute
	for _, a := range m.Attributes {
		if a.EntityID == entityID {
			result = append(result, a)
		}
	}
	return result, nil
}

// FindRelationshipsByEntity returns links leaving the entity.
func (m *Catalog) FindRelationshipsByEntity(_ context.Context, entityID string) ([]entities.Relationship, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var result []entities.Relationship
	for _, r := range m.Relationships {
		if r.SourceEntityID == entityID {
			result = append(result, r)
		}
	}
	return result, nil
}

// FindRelationshipsByType returns links of a type.
func (m *Catalog) FindRelationshipsByType(_ context.Context, relType entities.RelationType) ([]entities.Relationship, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var result []entities.Relationship
	for _, r := range m.Relationships {
		if r.Type == relType {
			result = append(result, r)
		}
	}
	return result, nil
}

// Stats counts stored rows.
func (m *Catalog) Stats(_ context.Context) (entities.CatalogStats, error) {
	if m.Err != nil {
		return entities.CatalogStats{}, m.Err
	}
	return entities.CatalogStats{
		Entities:      len(m.Entities),
		Attributes:    len(m.Attributes),
		Relationships: len(m.Relationships),
	}, nil
}
