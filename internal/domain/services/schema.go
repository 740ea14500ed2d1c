package services

import "github.com/ersonp/dota2-ontology/internal/domain/entities"

// BuildOntology returns a fresh ontology holding the game schema.
func BuildOntology(namespace string) *entities.Ontology {
	o := entities.NewOntology(namespace)
	DeclareSchema(o)
	return o
}

// DeclareSchema declares every class, property and disjointness axiom of
// the game schema on o. Declaring into an ontology that already holds the
// schema changes nothing.
func DeclareSchema(o *entities.Ontology) {
	properties := make([]entities.PropertyDef, 0, len(entities.DataProperties)+len(entities.ObjectProperties))
	properties = append(properties, entities.DataProperties...)
	properties = append(properties, entities.ObjectProperties...)

	o.Declare(entities.Classes, properties, entities.DisjointClasses)
}
