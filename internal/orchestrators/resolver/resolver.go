// Package resolver turns catalog references into values. Missing catalogs,
// missing items and malformed references never fail a call; they resolve to
// no value and, unless the reference is optional, produce a diagnostic.
package resolver

//go:generate mockgen -destination=mock/mock_resolver.go -package=resolvermock github.com/KirkDiggler/rpg-catalog/internal/orchestrators/resolver Resolver

import (
	"context"

	"github.com/KirkDiggler/rpg-catalog/internal/entities/catalog"
)

// Resolver resolves references of the form
// @domain/path/category:item[filters]?.property
type Resolver interface {
	// Resolve returns the canonical identifier of the referenced item, or the
	// requested property rendered as text. ok is false when nothing resolved.
	Resolve(ctx context.Context, ref string) (value string, ok bool)

	// ResolveAsync runs Resolve and delivers its single result on a buffered
	// channel that is then closed
	ResolveAsync(ctx context.Context, ref string) <-chan Result

	// ResolveToObject returns the referenced item node, or the property node
	// when a property is requested
	ResolveToObject(ctx context.Context, ref string) (*catalog.Node, bool)

	// ResolveAll resolves each distinct reference
	ResolveAll(ctx context.Context, refs []string) map[string]Result
}

// Result is the outcome of one resolution
type Result struct {
	Reference string
	Value     string
	Found     bool
}
