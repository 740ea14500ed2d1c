// Package sqlite provides a SQLite implementation of the Catalog interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ersonp/dota2-ontology/internal/domain/entities"
	"github.com/ersonp/dota2-ontology/internal/infrastructure/config"
)

// memoryPath opens a private in-memory database.
const memoryPath = ":memory:"

// Repository implements ports.Catalog using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository creates a new SQLite repository.
func NewRepository(cfg config.SQLiteConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Every connection to :memory: is a separate database.
	if cfg.Path == memoryPath {
		db.SetMaxOpenConns(1)
	}

	// Enable WAL mode for better concurrent read/write performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- Named individuals
	CREATE TABLE IF NOT EXISTS entities (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		normalized_name TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_entities_normalized ON entities(normalized_name);

	-- Asserted classes, in assertion order
	CREATE TABLE IF NOT EXISTS entity_classes (
		entity_id TEXT NOT NULL,
		class TEXT NOT NULL,
		position INTEGER NOT NULL,
		PRIMARY KEY (entity_id, class)
	);
	CREATE INDEX IF NOT EXISTS idx_entity_classes_class ON entity_classes(class);

	-- Data property values
	CREATE TABLE IF NOT EXISTS attributes (
		entity_id TEXT NOT NULL,
		property TEXT NOT NULL,
		value TEXT NOT NULL,
		datatype TEXT NOT NULL,
		position INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_attributes_entity ON attributes(entity_id);

	-- Object property links
	CREATE TABLE IF NOT EXISTS relationships (
		id TEXT PRIMARY KEY,
		source_entity_id TEXT NOT NULL,
		target_entity_id TEXT NOT NULL,
		type TEXT NOT NULL,
		property TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_relationships_source ON relationships(source_entity_id);
	CREATE INDEX IF NOT EXISTS idx_relationships_target ON relationships(target_entity_id);
	CREATE INDEX IF NOT EXISTS idx_relationships_type ON relationships(type);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// Clear removes every stored row.
func (r *Repository) Clear(ctx context.Context) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		for _, table := range []string{"relationships", "attributes", "entity_classes", "entities"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("clearing %s: %w", table, err)
			}
		}
		return nil
	})
}

// SaveEntities inserts or updates entities and replaces their classes.
func (r *Repository) SaveEntities(ctx context.Context, list []*entities.Entity) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		for _, entity := range list {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO entities (id, name, normalized_name, created_at)
				VALUES (?, ?, ?, ?)
				ON CONFLICT(id) DO UPDATE SET
					name = excluded.name,
					normalized_name = excluded.normalized_name
			`, entity.ID, entity.Name, entity.NormalizedName, entity.CreatedAt)
			if err != nil {
				return fmt.Errorf("saving entity %s: %w", entity.Name, err)
			}

			if _, err := tx.ExecContext(ctx, `DELETE FROM entity_classes WHERE entity_id = ?`, entity.ID); err != nil {
				return fmt.Errorf("clearing classes of %s: %w", entity.Name, err)
			}
			for i, class := range entity.Classes {
				_, err := tx.ExecContext(ctx,
					`INSERT OR IGNORE INTO entity_classes (entity_id, class, position) VALUES (?, ?, ?)`,
					entity.ID, string(class), i)
				if err != nil {
					return fmt.Errorf("saving class of %s: %w", entity.Name, err)
				}
			}
		}
		return nil
	})
}

// SaveAttributes replaces the stored attributes of every entity present in
// the list, keeping list order.
func (r *Repository) SaveAttributes(ctx context.Context, attributes []entities.Attribute) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		cleared := make(map[string]bool)
		for i, attr := range attributes {
			if !cleared[attr.EntityID] {
				if _, err := tx.ExecContext(ctx, `DELETE FROM attributes WHERE entity_id = ?`, attr.EntityID); err != nil {
					return fmt.Errorf("clearing attributes: %w", err)
				}
				cleared[attr.EntityID] = true
			}

			_, err := tx.ExecContext(ctx, `
				INSERT INTO attributes (entity_id, property, value, datatype, position)
				VALUES (?, ?, ?, ?, ?)
			`, attr.EntityID, attr.Property, attr.Value, string(attr.Datatype), i)
			if err != nil {
				return fmt.Errorf("saving attribute %s: %w", attr.Property, err)
			}
		}
		return nil
	})
}

// SaveRelationships inserts relationships, ignoring IDs already stored.
func (r *Repository) SaveRelationships(ctx context.Context, relationships []entities.Relationship) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		for _, rel := range relationships {
			_, err := tx.ExecContext(ctx, `
				INSERT OR IGNORE INTO relationships (id, source_entity_id, target_entity_id, type, property, created_at)
				VALUES (?, ?, ?, ?, ?, ?)
			`, rel.ID, rel.SourceEntityID, rel.TargetEntityID, string(rel.Type), rel.Property, rel.CreatedAt)
			if err != nil {
				return fmt.Errorf("saving relationship: %w", err)
			}
		}
		return nil
	})
}

// FindEntityByName finds an entity by its IRI fragment (case-insensitive)
// or by its normalized name.
func (r *Repository) FindEntityByName(ctx context.Context, name string) (*entities.Entity, error) {
	query := `
		SELECT id, name, normalized_name, created_at
		FROM entities
		WHERE lower(name) = lower(?) OR normalized_name = lower(?)
		ORDER BY lower(name) = lower(?) DESC, name ASC
		LIMIT 1
	`
	return r.findEntity(ctx, query, name, name, name)
}

// FindEntityByID finds an entity by its ID.
func (r *Repository) FindEntityByID(ctx context.Context, entityID string) (*entities.Entity, error) {
	query := `
		SELECT id, name, normalized_name, created_at
		FROM entities
		WHERE id = ?
	`
	return r.findEntity(ctx, query, entityID)
}

// ListEntitiesByClass lists entities asserted with the class, ordered by
// name. A non-positive limit lists all of them.
func (r *Repository) ListEntitiesByClass(ctx context.Context, class entities.Class, limit int) ([]*entities.Entity, error) {
	if limit <= 0 {
		limit = -1
	}
	query := `
		SELECT e.id, e.name, e.normalized_name, e.created_at
		FROM entities e
		JOIN entity_classes c ON c.entity_id = e.id
		WHERE c.class = ?
		ORDER BY e.name ASC
		LIMIT ?
	`
	list, err := r.queryEntities(ctx, query, string(class), limit)
	if err != nil {
		return nil, err
	}
	if err := r.loadClasses(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// FindAttributes returns the data values of an entity in stored order.
func (r *Repository) FindAttributes(ctx context.Context, entityID string) ([]entities.Attribute, error) {
	query := `
		SELECT entity_id, property, value, datatype
		FROM attributes
		WHERE entity_id = ?
		ORDER BY position ASC
	`
	rows, err := r.db.QueryContext(ctx, query, entityID)
	if err != nil {
		return nil, fmt.Errorf("querying attributes: %w", err)
	}
	defer rows.Close()

	attributes := make([]entities.Attribute, 0, 16)
	for rows.Next() {
		var attr entities.Attribute
		var datatype string
		if err := rows.Scan(&attr.EntityID, &attr.Property, &attr.Value, &datatype); err != nil {
			return nil, fmt.Errorf("scanning attribute: %w", err)
		}
		attr.Datatype = entities.Datatype(datatype)
		attributes = append(attributes, attr)
	}
	return attributes, rows.Err()
}

// FindRelationshipsByEntity finds the relationships leaving an entity.
func (r *Repository) FindRelationshipsByEntity(ctx context.Context, entityID string) ([]entities.Relationship, error) {
	query := `
		SELECT id, source_entity_id, target_entity_id, type, property, created_at
		FROM relationships
		WHERE source_entity_id = ?
		ORDER BY type ASC, rowid ASC
	`
	return r.queryRelationships(ctx, query, entityID)
}

// FindRelationshipsByType finds all relationships of a given type.
func (r *Repository) FindRelationshipsByType(ctx context.Context, relType entities.RelationType) ([]entities.Relationship, error) {
	query := `
		SELECT id, source_entity_id, target_entity_id, type, property, created_at
		FROM relationships
		WHERE type = ?
		ORDER BY rowid ASC
	`
	return r.queryRelationships(ctx, query, string(relType))
}

// Stats counts stored entities, attributes and relationships.
func (r *Repository) Stats(ctx context.Context) (entities.CatalogStats, error) {
	var stats entities.CatalogStats
	counts := []struct {
		table string
		dest  *int
	}{
		{"entities", &stats.Entities},
		{"attributes", &stats.Attributes},
		{"relationships", &stats.Relationships},
	}
	for _, c := range counts {
		if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+c.table).Scan(c.dest); err != nil {
			return entities.CatalogStats{}, fmt.Errorf("counting %s: %w", c.table, err)
		}
	}
	return stats, nil
}

// withTx runs fn in a transaction, rolling back when it fails.
func (r *Repository) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (r *Repository) findEntity(ctx context.Context, query string, args ...any) (*entities.Entity, error) {
	var entity entities.Entity
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&entity.ID,
		&entity.Name,
		&entity.NormalizedName,
		&entity.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning entity: %w", err)
	}

	list := []*entities.Entity{&entity}
	if err := r.loadClasses(ctx, list); err != nil {
		return nil, err
	}
	return &entity, nil
}

// queryEntities reads every row before returning so later queries can
// reuse the connection.
func (r *Repository) queryEntities(ctx context.Context, query string, args ...any) ([]*entities.Entity, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying entities: %w", err)
	}
	defer rows.Close()

	result := make([]*entities.Entity, 0, 16)
	for rows.Next() {
		var entity entities.Entity
		if err := rows.Scan(
			&entity.ID,
			&entity.Name,
			&entity.NormalizedName,
			&entity.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning entity: %w", err)
		}
		result = append(result, &entity)
	}
	return result, rows.Err()
}

// loadClasses fills the Classes of each entity in a single query.
func (r *Repository) loadClasses(ctx context.Context, list []*entities.Entity) error {
	if len(list) == 0 {
		return nil
	}

	byID := make(map[string]*entities.Entity, len(list))
	placeholders := make([]string, len(list))
	args := make([]any, len(list))
	for i, entity := range list {
		byID[entity.ID] = entity
		placeholders[i] = "?"
		args[i] = entity.ID
	}

	query := fmt.Sprintf(`
		SELECT entity_id, class
		FROM entity_classes
		WHERE entity_id IN (%s)
		ORDER BY entity_id, position
	`, strings.Join(placeholders, ","))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("querying classes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entityID, class string
		if err := rows.Scan(&entityID, &class); err != nil {
			return fmt.Errorf("scanning class: %w", err)
		}
		if entity, ok := byID[entityID]; ok {
			entity.Classes = append(entity.Classes, entities.Class(class))
		}
	}
	return rows.Err()
}

// queryRelationships is a helper to execute relationship queries.
func (r *Repository) queryRelationships(ctx context.Context, query string, args ...any) ([]entities.Relationship, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying relationships: %w", err)
	}
	defer rows.Close()

	relationships := make([]entities.Relationship, 0, 16)
	for rows.Next() {
		var rel entities.Relationship
		var relType string
		if err := rows.Scan(
			&rel.ID,
			&rel.SourceEntityID,
			&rel.TargetEntityID,
			&relType,
			&rel.Property,
			&rel.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning relationship: %w", err)
		}
		rel.Type = entities.RelationType(relType)
		relationships = append(relationships, rel)
	}
	return relationships, rows.Err()
}
