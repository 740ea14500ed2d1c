package handlers

import (
	"context"
	"fmt"
	"io"

	"github.com/ersonp/dota2-ontology/internal/domain/services"
	"github.com/ersonp/dota2-ontology/internal/infrastructure/parsers"
	"github.com/ersonp/dota2-ontology/internal/infrastructure/rdfxml"
)

// PopulateHandler builds the ontology from the JSON data exports.
type PopulateHandler struct {
	populateService *services.PopulateService
	out             io.Writer
}

// NewPopulateHandler creates a new populate handler. Progress lines go to
// out; nil discards them.
func NewPopulateHandler(populateService *services.PopulateService, out io.Writer) *PopulateHandler {
	return &PopulateHandler{
		populateService: populateService,
		out:             progressWriter(out),
	}
}

// PopulateRequest locates the inputs and the ontology output.
type PopulateRequest struct {
	Namespace string
	Sources   parsers.SourcePaths
	Output    string
}

// PopulateResult contains the result of a populate run.
type PopulateResult struct {
	*services.PopulateResult
	OutputPath string
}

// Handle loads the four exports, populates a fresh ontology and writes it
// as RDF/XML. Nothing is written unless every step succeeds.
func (h *PopulateHandler) Handle(ctx context.Context, req PopulateRequest) (*PopulateResult, error) {
	if err := checkInputs(req.Sources.All()...); err != nil {
		return nil, err
	}

	fmt.Fprintln(h.out, "Loading data files...")
	data, err := parsers.LoadSourceData(req.Sources)
	if err != nil {
		return nil, fmt.Errorf("loading source data: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fmt.Fprintln(h.out, "Populating ontology...")
	o := services.BuildOntology(req.Namespace)
	result, err := h.populateService.Populate(o, data)
	if err != nil {
		return nil, fmt.Errorf("populating ontology: %w", err)
	}

	fmt.Fprintf(h.out, "Saving ontology to %s...\n", req.Output)
	if err := rdfxml.WriteFile(req.Output, o); err != nil {
		return nil, fmt.Errorf("saving ontology: %w", err)
	}

	return &PopulateResult{
		PopulateResult: result,
		OutputPath:     req.Output,
	}, nil
}
