// Package entities contains core domain data structures.
package entities

import (
	"fmt"
	"sort"
)

// Predicate is the name of a Prolog fact.
type Predicate string

// Extracted predicates.
const (
	PredHero             Predicate = "hero"
	PredPrimaryAttribute Predicate = "primary_attribute"
	PredHasRole          Predicate = "has_role"
	PredHasAbility       Predicate = "has_ability"
	PredAbilityType      Predicate = "ability_type"
	PredDamageType       Predicate = "damage_type"
)

// Predicates lists every predicate in output section order.
var Predicates = []Predicate{
	PredHero,
	PredPrimaryAttribute,
	PredHasRole,
	PredHasAbility,
	PredAbilityType,
	PredDamageType,
}

// Fact is a ground predicate application. Unary facts leave Object empty.
type Fact struct {
	Predicate Predicate `json:"predicate"`
	Subject   string    `json:"subject"`
	Object    string    `json:"object,omitempty"`
}

// String renders the fact as a Prolog clause, e.g. "has_role(antimage, carry).".
func (f Fact) String() string {
	if f.Object == "" {
		return fmt.Sprintf("%s(%s).", f.Predicate, f.Subject)
	}
	return fmt.Sprintf("%s(%s, %s).", f.Predicate, f.Subject, f.Object)
}

// FactSet groups facts by predicate with set semantics.
type FactSet struct {
	buckets map[Predicate]map[Fact]struct{}
}

// NewFactSet creates an empty fact set.
func NewFactSet() *FactSet {
	return &FactSet{buckets: make(map[Predicate]map[Fact]struct{})}
}

// Add inserts a fact and reports whether it was new.
func (s *FactSet) Add(f Fact) bool {
	bucket, ok := s.buckets[f.Predicate]
	if !ok {
		bucket = make(map[Fact]struct{})
		s.buckets[f.Predicate] = bucket
	}
	if _, exists := bucket[f]; exists {
		return false
	}
	bucket[f] = struct{}{}
	return true
}

// Count returns the number of facts for a predicate.
func (s *FactSet) Count(p Predicate) int {
	return len(s.buckets[p])
}

// Len returns the total number of facts.
func (s *FactSet) Len() int {
	total := 0
	for _, bucket := range s.buckets {
		total += len(bucket)
	}
	return total
}

// Sorted returns the facts of a predicate ordered by their rendered clause.
func (s *FactSet) Sorted(p Predicate) []Fact {
	bucket := s.buckets[p]
	facts := make([]Fact, 0, len(bucket))
	for f := range bucket {
		facts = append(facts, f)
	}
	sort.Slice(facts, func(i, j int) bool {
		return facts[i].String() < facts[j].String()
	})
	return facts
}

// All returns every fact, section by section, each section sorted.
func (s *FactSet) All() []Fact {
	facts := make([]Fact, 0, s.Len())
	for _, p := range Predicates {
		facts = append(facts, s.Sorted(p)...)
	}
	return facts
}

// IndexedFact is a fact stored in the vector index.
type IndexedFact struct {
	ID        string    `json:"id"`
	Fact      Fact      `json:"fact"`
	Embedding []float32 `json:"-"`
	Score     float32   `json:"score,omitempty"`
}
