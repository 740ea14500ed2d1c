package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/dota2-ontology/internal/domain/entities"
	"github.com/ersonp/dota2-ontology/internal/infrastructure/config"
)

// setupTestRepo creates an in-memory SQLite repository for testing.
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewRepository(config.SQLiteConfig{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	err = repo.EnsureSchema(context.Background())
	require.NoError(t, err)

	return repo
}

func testEntities() []*entities.Entity {
	now := time.Now().UTC()
	return []*entities.Entity{
		{ID: "e-antimage", Name: "npc_dota_hero_antimage", NormalizedName: "antimage",
			Classes: []entities.Class{"AgilityHero"}, CreatedAt: now},
		{ID: "e-axe", Name: "npc_dota_hero_axe", NormalizedName: "axe",
			Classes: []entities.Class{"StrengthHero"}, CreatedAt: now},
		{ID: "e-agility", Name: "Agility", NormalizedName: "agility",
			Classes: []entities.Class{"Attribute"}, CreatedAt: now},
		{ID: "e-blink", Name: "antimage_blink", NormalizedName: "antimage_blink",
			Classes: []entities.Class{"BasicAbility", "Ability"}, CreatedAt: now},
	}
}

// seed stores the test entities, two attributes and one link.
func seed(t *testing.T, repo *Repository) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, repo.SaveEntities(ctx, testEntities()))
	require.NoError(t, repo.SaveAttributes(ctx, []entities.Attribute{
		{EntityID: "e-antimage", Property: "heroName", Value: "Anti-Mage", Datatype: entities.XSDString},
		{EntityID: "e-antimage", Property: "baseHealth", Value: "120", Datatype: entities.XSDInteger},
	}))
	require.NoError(t, repo.SaveRelationships(ctx, []entities.Relationship{
		{ID: "r-1", SourceEntityID: "e-antimage", TargetEntityID: "e-agility",
			Type: "has_primary_attribute", Property: "hasPrimaryAttribute", CreatedAt: time.Now().UTC()},
		{ID: "r-2", SourceEntityID: "e-antimage", TargetEntityID: "e-blink",
			Type: "has_ability", Property: "hasAbility", CreatedAt: time.Now().UTC()},
	}))
}

func TestNewRepository(t *testing.T) {
	t.Run("success with memory database", func(t *testing.T) {
		repo, err := NewRepository(config.SQLiteConfig{Path: ":memory:"})
		require.NoError(t, err)
		defer repo.Close()
		assert.NotNil(t, repo)
		assert.Equal(t, ":memory:", repo.Path())
	})

	t.Run("error with empty path", func(t *testing.T) {
		_, err := NewRepository(config.SQLiteConfig{Path: ""})
		require.Error(t, err)
	})
}

func TestRepository_EnsureSchema(t *testing.T) {
	repo := setupTestRepo(t)

	tables := []string{"entities", "entity_classes", "attributes", "relationships"}
	for _, table := range tables {
		var count int
		err := repo.db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "table %s should exist", table)
	}
}

func TestRepository_EnsureSchema_Idempotent(t *testing.T) {
	repo := setupTestRepo(t)

	err := repo.EnsureSchema(context.Background())
	require.NoError(t, err)
}

func TestRepository_FindEntityByName(t *testing.T) {
	repo := setupTestRepo(t)
	seed(t, repo)
	ctx := context.Background()

	tests := []struct {
		name   string
		lookup string
		wantID string
	}{
		{"IRI fragment", "npc_dota_hero_antimage", "e-antimage"},
		{"fragment ignores case", "NPC_DOTA_HERO_AXE", "e-axe"},
		{"normalized name", "antimage", "e-antimage"},
		{"normalized name ignores case", "Agility", "e-agility"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entity, err := repo.FindEntityByName(ctx, tt.lookup)
			require.NoError(t, err)
			require.NotNil(t, entity)
			assert.Equal(t, tt.wantID, entity.ID)
		})
	}

	t.Run("classes loaded in order", func(t *testing.T) {
		entity, err := repo.FindEntityByName(ctx, "antimage_blink")
		require.NoError(t, err)
		require.NotNil(t, entity)
		assert.Equal(t, []entities.Class{"BasicAbility", "Ability"}, entity.Classes)
	})

	t.Run("not found", func(t *testing.T) {
		entity, err := repo.FindEntityByName(ctx, "invoker")
		require.NoError(t, err)
		assert.Nil(t, entity)
	})
}

func TestRepository_FindEntityByID(t *testing.T) {
	repo := setupTestRepo(t)
	seed(t, repo)
	ctx := context.Background()

	entity, err := repo.FindEntityByID(ctx, "e-axe")
	require.NoError(t, err)
	require.NotNil(t, entity)
	assert.Equal(t, "npc_dota_hero_axe", entity.Name)
	assert.Equal(t, "axe", entity.NormalizedName)
	assert.Equal(t, []entities.Class{"StrengthHero"}, entity.Classes)

	missing, err := repo.FindEntityByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRepository_SaveEntities_Upsert(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveEntities(ctx, testEntities()))

	updated := testEntities()[0]
	updated.Classes = []entities.Class{"AgilityHero", "Hero"}
	require.NoError(t, repo.SaveEntities(ctx, []*entities.Entity{updated}))

	entity, err := repo.FindEntityByID(ctx, "e-antimage")
	require.NoError(t, err)
	require.NotNil(t, entity)
	assert.Equal(t, []entities.Class{"AgilityHero", "Hero"}, entity.Classes)

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Entities)
}

func TestRepository_ListEntitiesByClass(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, repo.SaveEntities(ctx, []*entities.Entity{
		{ID: "3", Name: "npc_dota_hero_zuus", NormalizedName: "zuus", Classes: []entities.Class{"IntelligenceHero"}, CreatedAt: now},
		{ID: "1", Name: "npc_dota_hero_invoker", NormalizedName: "invoker", Classes: []entities.Class{"IntelligenceHero"}, CreatedAt: now},
		{ID: "2", Name: "npc_dota_hero_lina", NormalizedName: "lina", Classes: []entities.Class{"IntelligenceHero"}, CreatedAt: now},
		{ID: "4", Name: "npc_dota_hero_axe", NormalizedName: "axe", Classes: []entities.Class{"StrengthHero"}, CreatedAt: now},
	}))

	t.Run("ordered by name", func(t *testing.T) {
		list, err := repo.ListEntitiesByClass(ctx, "IntelligenceHero", 0)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "npc_dota_hero_invoker", list[0].Name)
		assert.Equal(t, "npc_dota_hero_lina", list[1].Name)
		assert.Equal(t, "npc_dota_hero_zuus", list[2].Name)
		assert.Equal(t, []entities.Class{"IntelligenceHero"}, list[0].Classes)
	})

	t.Run("limit", func(t *testing.T) {
		list, err := repo.ListEntitiesByClass(ctx, "IntelligenceHero", 2)
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("unknown class", func(t *testing.T) {
		list, err := repo.ListEntitiesByClass(ctx, "Item", 10)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestRepository_Attributes(t *testing.T) {
	repo := setupTestRepo(t)
	seed(t, repo)
	ctx := context.Background()

	attrs, err := repo.FindAttributes(ctx, "e-antimage")
	require.NoError(t, err)
	require.Len(t, attrs, 2)
	assert.Equal(t, "heroName", attrs[0].Property)
	assert.Equal(t, "Anti-Mage", attrs[0].Value)
	assert.Equal(t, entities.XSDString, attrs[0].Datatype)
	assert.Equal(t, "baseHealth", attrs[1].Property)

	t.Run("saving again replaces", func(t *testing.T) {
		require.NoError(t, repo.SaveAttributes(ctx, []entities.Attribute{
			{EntityID: "e-antimage", Property: "baseHealth", Value: "200", Datatype: entities.XSDInteger},
		}))

		attrs, err := repo.FindAttributes(ctx, "e-antimage")
		require.NoError(t, err)
		require.Len(t, attrs, 1)
		assert.Equal(t, "200", attrs[0].Value)
	})

	t.Run("entity without attributes", func(t *testing.T) {
		attrs, err := repo.FindAttributes(ctx, "e-axe")
		require.NoError(t, err)
		assert.Empty(t, attrs)
	})
}

func TestRepository_Relationships(t *testing.T) {
	repo := setupTestRepo(t)
	seed(t, repo)
	ctx := context.Background()

	t.Run("by entity", func(t *testing.T) {
		rels, err := repo.FindRelationshipsByEntity(ctx, "e-antimage")
		require.NoError(t, err)
		require.Len(t, rels, 2)
		assert.Equal(t, entities.RelationType("has_ability"), rels[0].Type)
		assert.Equal(t, "e-blink", rels[0].TargetEntityID)
		assert.Equal(t, "hasAbility", rels[0].Property)
		assert.Equal(t, entities.RelationType("has_primary_attribute"), rels[1].Type)
	})

	t.Run("incoming links are not listed", func(t *testing.T) {
		rels, err := repo.FindRelationshipsByEntity(ctx, "e-agility")
		require.NoError(t, err)
		assert.Empty(t, rels)
	})

	t.Run("by type", func(t *testing.T) {
		rels, err := repo.FindRelationshipsByType(ctx, "has_primary_attribute")
		require.NoError(t, err)
		require.Len(t, rels, 1)
		assert.Equal(t, "r-1", rels[0].ID)
	})

	t.Run("duplicates ignored", func(t *testing.T) {
		require.NoError(t, repo.SaveRelationships(ctx, []entities.Relationship{
			{ID: "r-1", SourceEntityID: "e-axe", TargetEntityID: "e-agility", Type: "other", Property: "other"},
		}))

		rels, err := repo.FindRelationshipsByType(ctx, "has_primary_attribute")
		require.NoError(t, err)
		require.Len(t, rels, 1)
		assert.Equal(t, "e-antimage", rels[0].SourceEntityID)
	})
}

func TestRepository_StatsAndClear(t *testing.T) {
	repo := setupTestRepo(t)
	seed(t, repo)
	ctx := context.Background()

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.CatalogStats{Entities: 4, Attributes: 2, Relationships: 2}, stats)

	require.NoError(t, repo.Clear(ctx))

	stats, err = repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.CatalogStats{}, stats)

	list, err := repo.ListEntitiesByClass(ctx, "AgilityHero", 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRepository_FileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	ctx := context.Background()

	repo, err := NewRepository(config.SQLiteConfig{Path: path})
	require.NoError(t, err)
	require.NoError(t, repo.EnsureSchema(ctx))
	seed(t, repo)
	require.NoError(t, repo.Close())

	reopened, err := NewRepository(config.SQLiteConfig{Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { reopened.Close() })

	entity, err := reopened.FindEntityByName(ctx, "axe")
	require.NoError(t, err)
	require.NotNil(t, entity)
	assert.Equal(t, "e-axe", entity.ID)
}
