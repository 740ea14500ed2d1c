// Package qdrant provides a FactIndex implementation using Qdrant.
package qdrant

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"

	pb "github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/ersonp/dota2-ontology/internal/domain/entities"
	"github.com/ersonp/dota2-ontology/internal/infrastructure/config"
)

// Payload keys stored with every point.
const (
	payloadPredicate = "predicate"
	payloadSubject   = "subject"
	payloadObject    = "object"
	payloadClause    = "clause"
)

// Repository implements ports.FactIndex and ports.CollectionManager using Qdrant.
type Repository struct {
	client     pb.CollectionsClient
	points     pb.PointsClient
	collection string
	conn       *grpc.ClientConn
}

// NewRepository creates a new Qdrant repository.
func NewRepository(cfg config.QdrantConfig) (*Repository, error) {
	if cfg.Collection == "" {
		return nil, errors.New("qdrant collection is required")
	}

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	conn, err := grpc.NewClient(addr, dialOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("connecting to qdrant: %w", err)
	}

	return &Repository{
		client:     pb.NewCollectionsClient(conn),
		points:     pb.NewPointsClient(conn),
		collection: cfg.Collection,
		conn:       conn,
	}, nil
}

func dialOptions(cfg config.QdrantConfig) []grpc.DialOption {
	creds := insecure.NewCredentials()
	if cfg.UseTLS {
		creds = credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
	}
	opts := []grpc.DialOption{grpc.WithTransportCredentials(creds)}
	if cfg.APIKey != "" {
		opts = append(opts, grpc.WithUnaryInterceptor(apiKeyInterceptor(cfg.APIKey)))
	}
	return opts
}

// apiKeyInterceptor attaches the Qdrant Cloud api-key header to every call.
func apiKeyInterceptor(key string) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		ctx = metadata.AppendToOutgoingContext(ctx, "api-key", key)
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

// Close closes the gRPC connection.
func (r *Repository) Close() error {
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}

// Collection returns the collection name.
func (r *Repository) Collection() string {
	return r.collection
}

// EnsureCollection creates the collection if it doesn't exist.
func (r *Repository) EnsureCollection(ctx context.Context, vectorSize uint64) error {
	_, err := r.client.Get(ctx, &pb.GetCollectionInfoRequest{
		CollectionName: r.collection,
	})
	if err == nil {
		return nil
	}

	_, err = r.client.Create(ctx, &pb.CreateCollection{
		CollectionName: r.collection,
		VectorsConfig: &pb.VectorsConfig{
			Config: &pb.VectorsConfig_Params{
				Params: &pb.VectorParams{
					Size:     vectorSize,
					Distance: pb.Distance_Cosine,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("creating collection: %w", err)
	}

	return nil
}

// DeleteCollection removes the collection and all its points.
func (r *Repository) DeleteCollection(ctx context.Context) error {
	_, err := r.client.Delete(ctx, &pb.DeleteCollection{
		CollectionName: r.collection,
	})
	if err != nil {
		return fmt.Errorf("deleting collection: %w", err)
	}
	return nil
}

// SaveBatch upserts facts. Point IDs come from the facts, so saving the
// same fact twice overwrites it.
func (r *Repository) SaveBatch(ctx context.Context, facts []entities.IndexedFact) error {
	if len(facts) == 0 {
		return nil
	}

	points := make([]*pb.PointStruct, 0, len(facts))
	for _, f := range facts {
		if f.ID == "" {
			return fmt.Errorf("fact %s has no ID", f.Fact)
		}
		points = append(points, toPoint(f))
	}

	_, err := r.points.Upsert(ctx, &pb.UpsertPoints{
		CollectionName: r.collection,
		Points:         points,
	})
	if err != nil {
		return fmt.Errorf("upserting points: %w", err)
	}

	return nil
}

// Search performs a semantic search and returns similar facts.
func (r *Repository) Search(ctx context.Context, embedding []float32, limit int) ([]entities.IndexedFact, error) {
	resp, err := r.points.Search(ctx, searchRequest(r.collection, embedding, nil, limit))
	if err != nil {
		return nil, fmt.Errorf("searching points: %w", err)
	}

	return scoredPointsToFacts(resp.Result), nil
}

// SearchByPredicate performs a semantic search filtered by predicate.
func (r *Repository) SearchByPredicate(ctx context.Context, embedding []float32, predicate entities.Predicate, limit int) ([]entities.IndexedFact, error) {
	resp, err := r.points.Search(ctx, searchRequest(r.collection, embedding, predicateFilter(predicate), limit))
	if err != nil {
		return nil, fmt.Errorf("searching points by predicate: %w", err)
	}

	return scoredPointsToFacts(resp.Result), nil
}

// Count returns the total number of facts.
func (r *Repository) Count(ctx context.Context) (uint64, error) {
	resp, err := r.client.Get(ctx, &pb.GetCollectionInfoRequest{
		CollectionName: r.collection,
	})
	if err != nil {
		return 0, fmt.Errorf("getting collection info: %w", err)
	}

	if resp.Result.PointsCount == nil {
		return 0, nil
	}

	return *resp.Result.PointsCount, nil
}

func toPoint(f entities.IndexedFact) *pb.PointStruct {
	return &pb.PointStruct{
		Id: &pb.PointId{
			PointIdOptions: &pb.PointId_Uuid{
				Uuid: f.ID,
			},
		},
		Vectors: &pb.Vectors{
			VectorsOptions: &pb.Vectors_Vector{
				Vector: &pb.Vector{
					Data: f.Embedding,
				},
			},
		},
		Payload: map[string]*pb.Value{
			payloadPredicate: {Kind: &pb.Value_StringValue{StringValue: string(f.Fact.Predicate)}},
			payloadSubject:   {Kind: &pb.Value_StringValue{StringValue: f.Fact.Subject}},
			payloadObject:    {Kind: &pb.Value_StringValue{StringValue: f.Fact.Object}},
			payloadClause:    {Kind: &pb.Value_StringValue{StringValue: f.Fact.String()}},
		},
	}
}

func searchRequest(collection string, embedding []float32, filter *pb.Filter, limit int) *pb.SearchPoints {
	return &pb.SearchPoints{
		CollectionName: collection,
		Vector:         embedding,
		Limit:          uint64(limit),
		Filter:         filter,
		WithPayload: &pb.WithPayloadSelector{
			SelectorOptions: &pb.WithPayloadSelector_Enable{Enable: true},
		},
	}
}

func predicateFilter(predicate entities.Predicate) *pb.Filter {
	return &pb.Filter{
		Must: []*pb.Condition{
			{
				ConditionOneOf: &pb.Condition_Field{
					Field: &pb.FieldCondition{
						Key: payloadPredicate,
						Match: &pb.Match{
							MatchValue: &pb.Match_Keyword{
								Keyword: string(predicate),
							},
						},
					},
				},
			},
		},
	}
}

// scoredPointsToFacts converts scored points to facts.
func scoredPointsToFacts(points []*pb.ScoredPoint) []entities.IndexedFact {
	facts := make([]entities.IndexedFact, 0, len(points))

	for _, point := range points {
		var embedding []float32
		if vec := point.GetVectors().GetVector(); vec != nil {
			embedding = vec.Data
		}

		facts = append(facts, entities.IndexedFact{
			ID:        point.GetId().GetUuid(),
			Fact:      payloadToFact(point.GetPayload()),
			Embedding: embedding,
			Score:     point.GetScore(),
		})
	}

	return facts
}

func payloadToFact(payload map[string]*pb.Value) entities.Fact {
	return entities.Fact{
		Predicate: entities.Predicate(getStringValue(payload, payloadPredicate)),
		Subject:   getStringValue(payload, payloadSubject),
		Object:    getStringValue(payload, payloadObject),
	}
}

func getStringValue(payload map[string]*pb.Value, key string) string {
	if v, ok := payload[key]; ok {
		return v.GetStringValue()
	}
	return ""
}
