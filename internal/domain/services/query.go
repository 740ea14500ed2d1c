package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ersonp/dota2-ontology/internal/domain/entities"
	"github.com/ersonp/dota2-ontology/internal/domain/ports"
)

// DefaultSearchLimit is the default number of results to return.
const DefaultSearchLimit = 10

// QueryService handles semantic search over indexed facts.
type QueryService struct {
	embedder ports.Embedder
	index    ports.FactIndex
}

// NewQueryService creates a new query service.
func NewQueryService(embedder ports.Embedder, index ports.FactIndex) *QueryService {
	return &QueryService{
		embedder: embedder,
		index:    index,
	}
}

// Search finds facts semantically similar to the query.
func (s *QueryService) Search(ctx context.Context, query string, limit int) ([]entities.IndexedFact, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	embedding, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("generating query embedding: %w", err)
	}

	facts, err := s.index.Search(ctx, embedding, limit)
	if err != nil {
		return nil, fmt.Errorf("searching facts: %w", err)
	}

	return facts, nil
}

// SearchByPredicate finds facts of one predicate.
func (s *QueryService) SearchByPredicate(ctx context.Context, query string, predicate entities.Predicate, limit int) ([]entities.IndexedFact, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	embedding, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("generating query embedding: %w", err)
	}

	facts, err := s.index.SearchByPredicate(ctx, embedding, predicate, limit)
	if err != nil {
		return nil, fmt.Errorf("searching facts by predicate: %w", err)
	}

	return facts, nil
}

// ParsePredicate validates a predicate name given on the command line.
func ParsePredicate(name string) (entities.Predicate, error) {
	for _, p := range entities.Predicates {
		if string(p) == name {
			return p, nil
		}
	}
	names := make([]string, len(entities.Predicates))
	for i, p := range entities.Predicates {
		names[i] = string(p)
	}
	return "", fmt.Errorf("unknown predicate %q (valid: %s)", name, strings.Join(names, ", "))
}

func humanize(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}
