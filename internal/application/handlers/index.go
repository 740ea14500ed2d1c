package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/dota2-ontology/internal/domain/ports"
	"github.com/ersonp/dota2-ontology/internal/domain/services"
	"github.com/ersonp/dota2-ontology/internal/infrastructure/rdfxml"
)

// IndexHandler extracts facts from an ontology file and indexes them.
type IndexHandler struct {
	collections       ports.CollectionManager
	extractionService *services.ExtractionService
	indexService      *services.IndexService
	vectorSize        uint64
}

// NewIndexHandler creates a new index handler.
func NewIndexHandler(
	collections ports.CollectionManager,
	extractionService *services.ExtractionService,
	indexService *services.IndexService,
	vectorSize uint64,
) *IndexHandler {
	return &IndexHandler{
		collections:       collections,
		extractionService: extractionService,
		indexService:      indexService,
		vectorSize:        vectorSize,
	}
}

// IndexRequest configures an index run.
type IndexRequest struct {
	Input       string
	Namespace   string
	DryRun      bool
	BatchSize   int
	Concurrency int
}

// IndexResult contains the result of an index run.
type IndexResult struct {
	*services.IndexResult
	Facts  int
	DryRun bool
}

// Handle embeds every extracted fact and upserts it into the index.
// A dry run embeds without creating the collection or saving.
func (h *IndexHandler) Handle(ctx context.Context, req IndexRequest) (*IndexResult, error) {
	if err := checkInputs(req.Input); err != nil {
		return nil, err
	}

	g, err := rdfxml.ReadFile(req.Input)
	if err != nil {
		return nil, fmt.Errorf("loading ontology: %w", err)
	}

	extracted, err := h.extractionService.Extract(g, req.Namespace)
	if err != nil {
		return nil, fmt.Errorf("extracting facts: %w", err)
	}

	if !req.DryRun {
		if err := h.collections.EnsureCollection(ctx, h.vectorSize); err != nil {
			return nil, fmt.Errorf("ensuring collection: %w", err)
		}
	}

	facts := extracted.Facts.All()
	indexed, err := h.indexService.Index(ctx, facts, services.IndexOptions{
		DryRun:      req.DryRun,
		BatchSize:   req.BatchSize,
		Concurrency: req.Concurrency,
	})
	if err != nil {
		return nil, fmt.Errorf("indexing facts: %w", err)
	}

	return &IndexResult{
		IndexResult: indexed,
		Facts:       len(facts),
		DryRun:      req.DryRun,
	}, nil
}
