package mocks

import (
	"context"

	"github.com/ersonp/dota2-ontology/internal/domain/entities"
)

// FactIndex is an in-memory mock implementation of ports.FactIndex.
// Search returns stored facts in insertion order with no ranking.
type FactIndex struct {
	Facts []entities.IndexedFact
	Err   error

	// Call tracking
	SaveBatchCallCount int
	SearchCallCount    int
	LastLimit          int
	LastPredicate      entities.Predicate
}

// SaveBatch upserts facts by ID.
func (m *FactIndex) SaveBatch(ctx context.Context, facts []entities.IndexedFact) error {
	m.SaveBatchCallCount++
	if m.Err != nil {
		return m.Err
	}
	for _, f := range facts {
		replaced := false
		for i := range m.Facts {
			if m.Facts[i].ID == f.ID {
				m.Facts[i] = f
				replaced = true
				break
			}
		}
		if !replaced {
			m.Facts = append(m.Facts, f)
		}
	}
	return nil
}

// Search returns up to limit stored facts.
func (m *FactIndex) Search(ctx context.Context, embedding []float32, limit int) ([]entities.IndexedFact, error) {
	m.SearchCallCount++
	m.LastLimit = limit
	if m.Err != nil {
		return nil, m.Err
	}
	if limit > len(m.Facts) {
		limit = len(m.Facts)
	}
	return m.Facts[:limit], nil
}

// SearchByPredicate returns up to limit stored facts of the predicate.
func (m *FactIndex) SearchByPredicate(ctx context.Context, embedding []float32, predicate entities.Predicate, limit int) ([]entities.IndexedFact, error) {
	m.SearchCallCount++
	m.LastLimit = limit
	m.LastPredicate = predicate
	if m.Err != nil {
		return nil, m.Err
	}
	var result []entities.IndexedFact
	for _, f := range m.Facts {
		if len(result) == limit {
			break
		}
		if f.Fact.Predicate == predicate {
			result = append(result, f)
		}
	}
	return result, nil
}

// Count returns the number of stored facts.
func (m *FactIndex) Count(ctx context.Context) (uint64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return uint64(len(m.Facts)), nil
}
