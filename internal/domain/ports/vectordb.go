package ports

import (
	"context"

	"github.com/ersonp/dota2-ontology/internal/domain/entities"
)

// FactIndex stores embedded facts for semantic search.
type FactIndex interface {
	// SaveBatch upserts facts with their embeddings.
	SaveBatch(ctx context.Context, facts []entities.IndexedFact) error

	// Search returns the facts closest to the embedding.
	Search(ctx context.Context, embedding []float32, limit int) ([]entities.IndexedFact, error)

	// SearchByPredicate is Search restricted to one predicate.
	SearchByPredicate(ctx context.Context, embedding []float32, predicate entities.Predicate, limit int) ([]entities.IndexedFact, error)

	// Count returns the number of stored facts.
	Count(ctx context.Context) (uint64, error)
}
