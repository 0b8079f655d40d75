// Package catalog defines the read-through store serving parsed catalog
// documents to the resolver
package catalog

//go:generate mockgen -destination=mock/mock_store.go -package=catalogmock github.com/KirkDiggler/rpg-catalog/internal/services/catalog Store

import (
	"context"

	entities "github.com/KirkDiggler/rpg-catalog/internal/entities/catalog"
)

// Store caches parsed catalog documents by normalized path
type Store interface {
	// GetFile returns the document for path, loading it on first access.
	// Returns nil when the document is missing or malformed. Never errors.
	GetFile(ctx context.Context, path string) *entities.Document

	// LoadAll eagerly loads every document the source can list
	// Returns an error only if the source cannot be enumerated
	LoadAll(ctx context.Context) (*LoadAllOutput, error)

	// Invalidate drops one cached path so the next GetFile reloads it
	Invalidate(path string)

	// InvalidateAll drops every cached path
	InvalidateAll()

	// Stats reports cache counters
	Stats() Stats
}

// LoadAllOutput reports the result of an eager load
type LoadAllOutput struct {
	Loaded int
	Failed int
	// Paths lists the documents that loaded successfully
	Paths []string
}

// Stats is a point in time view of the cache
type Stats struct {
	Hits         int64
	Misses       int64
	LoadFailures int64
	CachedFiles  int
	Domains      []string
}
