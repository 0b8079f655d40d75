// Package catalog provides the interface for catalog document storage
package catalog

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogmock github.com/KirkDiggler/rpg-catalog/internal/repositories/catalog Repository

import (
	"context"
	"path"
	"strings"

	entities "github.com/KirkDiggler/rpg-catalog/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-catalog/internal/errors"
)

// Repository stores raw catalog documents keyed by slash joined path without
// an extension, e.g. items/weapons/catalog
type Repository interface {
	// Get retrieves one document
	// Returns errors.InvalidArgument for empty or escaping paths
	// Returns errors.NotFound if the document does not exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns every stored document path under a prefix, sorted
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Put stores a document, replacing any existing one
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Put(ctx context.Context, input PutInput) (*PutOutput, error)
}

// GetInput defines the input for getting a document
type GetInput struct {
	Path string
}

// GetOutput defines the output for getting a document
type GetOutput struct {
	Path   string
	Data   []byte
	Format entities.Format
}

// ListInput defines the input for listing documents
type ListInput struct {
	// Prefix limits results to paths starting with it; empty lists all
	Prefix string
}

// ListOutput defines the output for listing documents
type ListOutput struct {
	Paths []string
}

// PutInput defines the input for storing a document
type PutInput struct {
	Path   string
	Data   []byte
	Format entities.Format
}

// PutOutput defines the output for storing a document
type PutOutput struct {
	Path string
}

const errPathEmpty = "path cannot be empty"

// NormalizePath converts p to a store key: forward slashes, no leading ./ or
// /, and no document extension
func NormalizePath(p string) string {
	p = strings.ReplaceAll(strings.TrimSpace(p), "\\", "/")
	for _, ext := range entities.Extensions {
		if strings.HasSuffix(strings.ToLower(p), ext) {
			p = p[:len(p)-len(ext)]
			break
		}
	}
	p = strings.TrimPrefix(p, "./")
	return strings.Trim(p, "/")
}

// CleanPath is NormalizePath followed by path.Clean. It is the key every
// repository stores documents under. Empty input stays empty.
func CleanPath(p string) string {
	normalized := NormalizePath(p)
	if normalized == "" {
		return ""
	}
	return path.Clean(normalized)
}

func validatePath(p string) (string, error) {
	cleaned := CleanPath(p)
	if cleaned == "" {
		return "", errors.InvalidArgument(errPathEmpty)
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", errors.InvalidArgumentf("path %q escapes the catalog root", p)
	}
	return cleaned, nil
}

func formatExt(format entities.Format) string {
	if format == entities.FormatYAML {
		return ".yaml"
	}
	return ".json"
}
