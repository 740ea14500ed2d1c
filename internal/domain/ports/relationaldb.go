package ports

import (
	"context"

	"github.com/ersonp/dota2-ontology/internal/domain/entities"
)

// Catalog is a relational copy of the ontology's individuals, their data
// values and their links, for SQL-style lookups the graph does not offer.
type Catalog interface {
	// EnsureSchema creates the database schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// Close closes the database connection.
	Close() error

	// Clear removes every stored row.
	Clear(ctx context.Context) error

	// SaveEntities inserts or updates entities in one transaction.
	SaveEntities(ctx context.Context, list []*entities.Entity) error

	// SaveAttributes replaces the stored attributes of the entities they belong to.
	SaveAttributes(ctx context.Context, attributes []entities.Attribute) error

	// SaveRelationships inserts relationships, ignoring ones already stored.
	SaveRelationships(ctx context.Context, relationships []entities.Relationship) error

	// FindEntityByName finds an entity by IRI fragment or by normalized name.
	FindEntityByName(ctx context.Context, name string) (*entities.Entity, error)

	// FindEntityByID finds an entity by its ID.
	FindEntityByID(ctx context.Context, entityID string) (*entities.Entity, error)

	// ListEntitiesByClass lists entities asserted with the class, ordered by name.
	ListEntitiesByClass(ctx context.Context, class entities.Class, limit int) ([]*entities.Entity, error)

	// FindAttributes returns the data values of an entity.
	FindAttributes(ctx context.Context, entityID string) ([]entities.Attribute, error)

	// FindRelationshipsByEntity returns links leaving the entity.
	FindRelationshipsByEntity(ctx context.Context, entityID string) ([]entities.Relationship, error)

	// FindRelationshipsByType returns every link of a type.
	FindRelationshipsByType(ctx context.Context, relType entities.RelationType) ([]entities.Relationship, error)

	// Stats counts stored rows.
	Stats(ctx context.Context) (entities.CatalogStats, error)
}
