package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/dota2-ontology/internal/domain/entities"
	"github.com/ersonp/dota2-ontology/internal/domain/services"
)

// QueryHandler handles fact queries.
type QueryHandler struct {
	queryService *services.QueryService
}

// NewQueryHandler creates a new query handler.
func NewQueryHandler(queryService *services.QueryService) *QueryHandler {
	return &QueryHandler{
		queryService: queryService,
	}
}

// QueryResult contains the result of a query.
type QueryResult struct {
	Query string
	Facts []entities.IndexedFact
}

// Handle searches for facts matching the query.
func (h *QueryHandler) Handle(ctx context.Context, query string, limit int) (*QueryResult, error) {
	facts, err := h.queryService.Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("searching facts: %w", err)
	}

	return &QueryResult{
		Query: query,
		Facts: facts,
	}, nil
}

// HandleByPredicate searches for facts of one predicate.
func (h *QueryHandler) HandleByPredicate(ctx context.Context, query string, predicate entities.Predicate, limit int) (*QueryResult, error) {
	facts, err := h.queryService.SearchByPredicate(ctx, query, predicate, limit)
	if err != nil {
		return nil, fmt.Errorf("searching facts by predicate: %w", err)
	}

	return &QueryResult{
		Query: query,
		Facts: facts,
	}, nil
}
