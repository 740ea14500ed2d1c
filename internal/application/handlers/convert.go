package handlers

import (
	"context"
	"fmt"
	"io"

	"github.com/ersonp/dota2-ontology/internal/domain/entities"
	"github.com/ersonp/dota2-ontology/internal/domain/services"
	"github.com/ersonp/dota2-ontology/internal/infrastructure/exporters"
	"github.com/ersonp/dota2-ontology/internal/infrastructure/rdfxml"
)

// ConvertHandler turns an ontology file into a fact file.
type ConvertHandler struct {
	extractionService *services.ExtractionService
	out               io.Writer
}

// NewConvertHandler creates a new convert handler. Progress lines go to
// out; nil discards them.
func NewConvertHandler(extractionService *services.ExtractionService, out io.Writer) *ConvertHandler {
	return &ConvertHandler{
		extractionService: extractionService,
		out:               progressWriter(out),
	}
}

// ConvertRequest locates the ontology and the fact output.
type ConvertRequest struct {
	Namespace string
	Input     string
	Output    string
	Format    exporters.Format // FormatProlog when empty
}

// ConvertResult contains the result of a convert run.
type ConvertResult struct {
	Facts      *entities.FactSet
	Triples    int
	Abilities  int
	Format     exporters.Format
	OutputPath string
}

// Counts returns the number of facts per predicate in section order.
func (r *ConvertResult) Counts() map[entities.Predicate]int {
	counts := make(map[entities.Predicate]int, len(entities.Predicates))
	for _, p := range entities.Predicates {
		counts[p] = r.Facts.Count(p)
	}
	return counts
}

// Handle parses the ontology, extracts the facts and writes them.
func (h *ConvertHandler) Handle(ctx context.Context, req ConvertRequest) (*ConvertResult, error) {
	format := req.Format
	if format == "" {
		format = exporters.FormatProlog
	}
	if _, err := exporters.ForFormat(format); err != nil {
		return nil, err
	}

	if err := checkInputs(req.Input); err != nil {
		return nil, err
	}

	fmt.Fprintf(h.out, "Loading ontology from %s...\n", req.Input)
	g, err := rdfxml.ReadFile(req.Input)
	if err != nil {
		return nil, fmt.Errorf("loading ontology: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fmt.Fprintln(h.out, "Extracting facts...")
	extracted, err := h.extractionService.Extract(g, req.Namespace)
	if err != nil {
		return nil, fmt.Errorf("extracting facts: %w", err)
	}

	fmt.Fprintf(h.out, "Writing %s to %s...\n", format, req.Output)
	if err := exporters.WriteFile(req.Output, format, extracted.Facts); err != nil {
		return nil, fmt.Errorf("writing facts: %w", err)
	}

	return &ConvertResult{
		Facts:      extracted.Facts,
		Triples:    g.Len(),
		Abilities:  extracted.Abilities,
		Format:     format,
		OutputPath: req.Output,
	}, nil
}
