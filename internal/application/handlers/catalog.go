package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/dota2-ontology/internal/domain/entities"
	"github.com/ersonp/dota2-ontology/internal/domain/ports"
	"github.com/ersonp/dota2-ontology/internal/domain/services"
	"github.com/ersonp/dota2-ontology/internal/infrastructure/rdfxml"
)

// StoreHandler loads an ontology file into the relational catalog.
type StoreHandler struct {
	catalog        ports.Catalog
	catalogService *services.CatalogService
}

// NewStoreHandler creates a new store handler.
func NewStoreHandler(catalog ports.Catalog, catalogService *services.CatalogService) *StoreHandler {
	return &StoreHandler{
		catalog:        catalog,
		catalogService: catalogService,
	}
}

// StoreResult contains the result of a store run.
type StoreResult struct {
	*services.StoreResult
	Input string
}

// Handle replaces the catalog contents with the individuals of the
// ontology at input.
func (h *StoreHandler) Handle(ctx context.Context, input, namespace string) (*StoreResult, error) {
	if err := checkInputs(input); err != nil {
		return nil, err
	}

	if err := h.catalog.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("preparing catalog: %w", err)
	}

	g, err := rdfxml.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("loading ontology: %w", err)
	}

	stored, err := h.catalogService.Store(ctx, g, namespace)
	if err != nil {
		return nil, fmt.Errorf("storing catalog: %w", err)
	}

	return &StoreResult{
		StoreResult: stored,
		Input:       input,
	}, nil
}

// DescribeHandler looks up one catalog entity.
type DescribeHandler struct {
	catalogService *services.CatalogService
}

// NewDescribeHandler creates a new describe handler.
func NewDescribeHandler(catalogService *services.CatalogService) *DescribeHandler {
	return &DescribeHandler{catalogService: catalogService}
}

// Handle returns the entity with its attributes and links.
func (h *DescribeHandler) Handle(ctx context.Context, name string) (*services.EntityDetails, error) {
	return h.catalogService.Describe(ctx, name)
}

// ListHandler lists catalog entities of a class.
type ListHandler struct {
	catalogService *services.CatalogService
}

// NewListHandler creates a new list handler.
func NewListHandler(catalogService *services.CatalogService) *ListHandler {
	return &ListHandler{catalogService: catalogService}
}

// ListResult contains the listed entities and the catalog totals.
type ListResult struct {
	Class    entities.Class
	Entities []*entities.Entity
	Stats    entities.CatalogStats
}

// Handle lists up to limit entities of class.
func (h *ListHandler) Handle(ctx context.Context, class entities.Class, limit int) (*ListResult, error) {
	list, err := h.catalogService.ListByClass(ctx, class, limit)
	if err != nil {
		return nil, err
	}

	stats, err := h.catalogService.Stats(ctx)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Class:    class,
		Entities: list,
		Stats:    stats,
	}, nil
}
