package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ersonp/dota2-ontology/internal/domain/entities"
	"github.com/ersonp/dota2-ontology/internal/domain/ports"
)

const (
	// DefaultIndexBatchSize is the number of facts embedded per request.
	DefaultIndexBatchSize = 100
	// DefaultIndexConcurrency bounds the embedding requests in flight.
	DefaultIndexConcurrency = 4
)

// factNamespace seeds the deterministic fact IDs.
var factNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:dota2-ontology:fact"))

// IndexOptions controls indexing behavior.
type IndexOptions struct {
	DryRun      bool // Embed without saving
	BatchSize   int  // Facts per embedding request; DefaultIndexBatchSize when zero
	Concurrency int  // Embedding requests in flight; DefaultIndexConcurrency when zero
}

// IndexResult contains the result of an indexing run.
type IndexResult struct {
	Indexed int
	Batches int
}

// IndexService embeds facts and stores them in the fact index.
type IndexService struct {
	embedder ports.Embedder
	index    ports.FactIndex
	logger   *zap.Logger
}

// NewIndexService creates a new index service.
func NewIndexService(embedder ports.Embedder, index ports.FactIndex, logger *zap.Logger) *IndexService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IndexService{
		embedder: embedder,
		index:    index,
		logger:   logger,
	}
}

// FactID returns the stable point ID of a fact, so re-indexing the same
// fact overwrites it instead of duplicating it.
func FactID(f entities.Fact) string {
	return uuid.NewSHA1(factNamespace, []byte(f.String())).String()
}

// Index embeds facts batch by batch, with up to opts.Concurrency requests
// in flight, then saves the batches in order.
func (s *IndexService) Index(ctx context.Context, facts []entities.Fact, opts IndexOptions) (*IndexResult, error) {
	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultIndexBatchSize
	}
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultIndexConcurrency
	}

	var starts []int
	for start := 0; start < len(facts); start += batchSize {
		starts = append(starts, start)
	}

	embedded := make([][]entities.IndexedFact, len(starts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, start := range starts {
		end := min(start+batchSize, len(facts))
		g.Go(func() error {
			batch, err := s.embed(gctx, facts[start:end])
			if err != nil {
				return fmt.Errorf("embedding facts %d-%d: %w", start, end, err)
			}
			embedded[i] = batch
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &IndexResult{}
	for i, batch := range embedded {
		if !opts.DryRun {
			if err := s.index.SaveBatch(ctx, batch); err != nil {
				return nil, fmt.Errorf("saving facts %d-%d: %w", starts[i], starts[i]+len(batch), err)
			}
		}

		result.Indexed += len(batch)
		result.Batches++
		s.logger.Debug("indexed batch", zap.Int("start", starts[i]), zap.Int("size", len(batch)))
	}

	return result, nil
}

func (s *IndexService) embed(ctx context.Context, facts []entities.Fact) ([]entities.IndexedFact, error) {
	texts := make([]string, len(facts))
	for i := range facts {
		texts[i] = FactText(facts[i])
	}

	embeddings, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, err
	}
	if len(embeddings) != len(facts) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(facts), len(embeddings))
	}

	indexed := make([]entities.IndexedFact, len(facts))
	for i := range facts {
		indexed[i] = entities.IndexedFact{
			ID:        FactID(facts[i]),
			Fact:      facts[i],
			Embedding: embeddings[i],
		}
	}
	return indexed, nil
}

// FactText is the text embedded for a fact: the clause with underscores
// read as spaces, e.g. "has role antimage carry".
func FactText(f entities.Fact) string {
	text := humanize(string(f.Predicate)) + " " + humanize(f.Subject)
	if f.Object != "" {
		text += " " + humanize(f.Object)
	}
	return text
}
