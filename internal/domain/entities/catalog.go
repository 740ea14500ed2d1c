package entities

import "time"

// Entity is an ontology individual stored in the relational catalog.
type Entity struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`            // IRI fragment, e.g. "npc_dota_hero_antimage"
	NormalizedName string    `json:"normalized_name"` // fact identifier, e.g. "antimage"
	Classes        []Class   `json:"classes"`
	CreatedAt      time.Time `json:"created_at"`
}

// Attribute is one data property value of an entity.
type Attribute struct {
	EntityID string   `json:"entity_id"`
	Property string   `json:"property"`
	Value    string   `json:"value"`
	Datatype Datatype `json:"datatype"`
}

// RelationType is the snake_case form of an object property name.
type RelationType string

// Relationship is a directed object property link between two entities.
type Relationship struct {
	ID             string       `json:"id"`
	SourceEntityID string       `json:"source_entity_id"`
	TargetEntityID string       `json:"target_entity_id"`
	Type           RelationType `json:"type"`
	Property       string       `json:"property"`
	CreatedAt      time.Time    `json:"created_at"`
}

// CatalogStats summarizes the stored catalog.
type CatalogStats struct {
	Entities      int `json:"entities"`
	Attributes    int `json:"attributes"`
	Relationships int `json:"relationships"`
}
