// Package validation scans catalog content for references that do not
// resolve
package validation

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-catalog/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-catalog/internal/errors"
	"github.com/KirkDiggler/rpg-catalog/internal/orchestrators/resolver"
	"github.com/KirkDiggler/rpg-catalog/internal/pkg/reference"
	catalogsvc "github.com/KirkDiggler/rpg-catalog/internal/services/catalog"
)

// Config holds the dependencies for the validator
type Config struct {
	Store    catalogsvc.Store
	Resolver resolver.Resolver
	Logger   *slog.Logger
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.Store == nil {
		vb.RequiredField("Store")
	}
	if c.Resolver == nil {
		vb.RequiredField("Resolver")
	}
	return vb.Build()
}

// Finding is a reference that did not resolve
type Finding struct {
	DocumentPath string
	// JSONPath is the dot joined location of the string within the document
	JSONPath  string
	Reference string
}

// ValidateOutput summarizes a validation run
type ValidateOutput struct {
	Documents int
	// Checked counts the required references that were resolved
	Checked int
	// Skipped counts optional references, which are never reported
	Skipped    int
	Unresolved []Finding
}

// Orchestrator validates catalog content
type Orchestrator struct {
	store    catalogsvc.Store
	resolver resolver.Resolver
	logger   *slog.Logger
}

// New creates a validator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Orchestrator{
		store:    cfg.Store,
		resolver: cfg.Resolver,
		logger:   logger,
	}, nil
}

// Validate loads every document and resolves each string value that is a
// reference
func (o *Orchestrator) Validate(ctx context.Context) (*ValidateOutput, error) {
	loaded, err := o.store.LoadAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalogs")
	}

	out := &ValidateOutput{}
	for _, path := range loaded.Paths {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeCanceled, "validation canceled")
		}

		doc := o.store.GetFile(ctx, path)
		if doc == nil {
			continue
		}
		out.Documents++
		o.validateDocument(ctx, doc, out)
	}

	o.logger.InfoContext(ctx, "catalog validation finished",
		"documents", out.Documents,
		"checked", out.Checked,
		"skipped", out.Skipped,
		"unresolved", len(out.Unresolved),
		"load_failures", loaded.Failed,
	)

	return out, nil
}

func (o *Orchestrator) validateDocument(ctx context.Context, doc *catalog.Document, out *ValidateOutput) {
	doc.Root.Walk(func(path string, node *catalog.Node) {
		raw, ok := node.AsString()
		if !ok {
			return
		}
		ref, ok := reference.Parse(raw)
		if !ok {
			return
		}
		if ref.IsOptional {
			out.Skipped++
			return
		}

		out.Checked++
		if _, found := o.resolver.Resolve(ctx, raw); !found {
			out.Unresolved = append(out.Unresolved, Finding{
				DocumentPath: doc.Path,
				JSONPath:     path,
				Reference:    raw,
			})
		}
	})
}
