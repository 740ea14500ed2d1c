package handlers

import (
	"context"
	"fmt"
)

// BuildHandler runs populate then convert.
type BuildHandler struct {
	populate *PopulateHandler
	convert  *ConvertHandler
}

// NewBuildHandler creates a new build handler.
func NewBuildHandler(populate *PopulateHandler, convert *ConvertHandler) *BuildHandler {
	return &BuildHandler{
		populate: populate,
		convert:  convert,
	}
}

// BuildResult contains the results of both stages.
type BuildResult struct {
	Populate *PopulateResult
	Convert  *ConvertResult
}

// Handle writes the ontology and converts the file it just wrote. The
// convert input is always the populate output.
func (h *BuildHandler) Handle(ctx context.Context, populateReq PopulateRequest, convertReq ConvertRequest) (*BuildResult, error) {
	populated, err := h.populate.Handle(ctx, populateReq)
	if err != nil {
		return nil, fmt.Errorf("populate stage: %w", err)
	}

	convertReq.Input = populated.OutputPath
	converted, err := h.convert.Handle(ctx, convertReq)
	if err != nil {
		return nil, fmt.Errorf("convert stage: %w", err)
	}

	return &BuildResult{
		Populate: populated,
		Convert:  converted,
	}, nil
}
