// Package ports defines interfaces for external service communication.
package ports

import "context"

// CollectionManager handles the lifecycle of the fact index collection.
// It is kept apart from FactIndex so that index and search code only sees
// data operations.
type CollectionManager interface {
	// EnsureCollection creates the collection if it doesn't exist.
	EnsureCollection(ctx context.Context, vectorSize uint64) error

	// DeleteCollection removes the collection and all its data.
	DeleteCollection(ctx context.Context) error
}
