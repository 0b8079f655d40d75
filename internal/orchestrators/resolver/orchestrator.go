package resolver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-catalog/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-catalog/internal/errors"
	"github.com/KirkDiggler/rpg-catalog/internal/pkg/diagnostics"
	"github.com/KirkDiggler/rpg-catalog/internal/pkg/reference"
	"github.com/KirkDiggler/rpg-catalog/internal/pkg/selection"
	catalogsvc "github.com/KirkDiggler/rpg-catalog/internal/services/catalog"
)

// Config holds the dependencies for the resolver
type Config struct {
	Store    catalogsvc.Store
	Reporter diagnostics.Reporter
	// Roller drives wildcard selection
	Roller dice.Roller
	Logger *slog.Logger
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
	if c.Reporter == nil {
		vb.RequiredField("Reporter")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	return vb.Build()
}

// Orchestrator implements Resolver over a catalog Store
type Orchestrator struct {
	store    catalogsvc.Store
	reporter diagnostics.Reporter
	selector *selection.Selector
	logger   *slog.Logger
}

var _ Resolver = (*Orchestrator)(nil)

// New creates a resolver
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	selector, err := selection.New(&selection.Config{Roller: cfg.Roller})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create selector")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Orchestrator{
		store:    cfg.Store,
		reporter: cfg.Reporter,
		selector: selector,
		logger:   logger,
	}, nil
}

// Resolve implements Resolver
func (o *Orchestrator) Resolve(ctx context.Context, raw string) (string, bool) {
	m, ok := o.lookup(ctx, raw)
	if !ok {
		return "", false
	}

	id := m.id()
	if m.ref.Property == "" {
		return id, true
	}

	node := m.item.Property(m.ref.Property)
	if node.IsNull() {
		// a broken property path still names the item
		o.logger.DebugContext(ctx, "property missing, using identifier",
			"reference", raw,
			"property", m.ref.Property,
		)
		return id, true
	}
	return node.Text(), true
}

// ResolveAsync implements Resolver
func (o *Orchestrator) ResolveAsync(ctx context.Context, raw string) <-chan Result {
	results := make(chan Result, 1)
	value, found := o.Resolve(ctx, raw)
	results <- Result{Reference: raw, Value: value, Found: found}
	close(results)
	return results
}

// ResolveToObject implements Resolver
func (o *Orchestrator) ResolveToObject(ctx context.Context, raw string) (*catalog.Node, bool) {
	m, ok := o.lookup(ctx, raw)
	if !ok {
		return nil, false
	}

	if m.ref.Property == "" {
		return m.item.Node, true
	}

	node := m.item.Property(m.ref.Property)
	if node.IsNull() {
		o.miss(ctx, m.ref, raw, m.catalogPath, diagnostics.KindItemNotFound,
			fmt.Sprintf("property %q not found on %s", m.ref.Property, m.id()))
		return nil, false
	}
	return node, true
}

// ResolveAll implements Resolver
func (o *Orchestrator) ResolveAll(ctx context.Context, refs []string) map[string]Result {
	results := make(map[string]Result, len(refs))
	for _, raw := range refs {
		if _, done := results[raw]; done {
			continue
		}
		value, found := o.Resolve(ctx, raw)
		results[raw] = Result{Reference: raw, Value: value, Found: found}
	}
	return results
}

// match is a located item
type match struct {
	ref         reference.Reference
	item        *catalog.Item
	catalogPath string
}

func (m match) id() string {
	if m.ref.IsWildcard() {
		return m.ref.IDFor(m.item.Name())
	}
	return m.ref.ID()
}

// lookup parses raw and finds its item. Panics from malformed content are
// recovered and reported.
func (o *Orchestrator) lookup(ctx context.Context, raw string) (m match, ok bool) {
	defer func() {
		if p := recover(); p != nil {
			o.logger.ErrorContext(ctx, "panic during reference resolution", "reference", raw, "panic", p)
			o.reporter.Report(ctx, diagnostics.Diagnostic{
				Kind:      diagnostics.KindResolvePanic,
				Reference: raw,
				Message:   fmt.Sprint(p),
			})
			m, ok = match{}, false
		}
	}()

	ref, parsed := reference.Parse(raw)
	if !parsed {
		o.reporter.Report(ctx, diagnostics.Diagnostic{
			Kind:      diagnostics.KindInvalidSyntax,
			Reference: raw,
			Message:   "reference does not match @domain/path/category:item",
		})
		return match{}, false
	}

	doc, categoryScoped := o.catalogFor(ctx, ref)
	if doc == nil {
		o.miss(ctx, ref, raw, ref.CatalogPath(), diagnostics.KindCatalogNotFound,
			fmt.Sprintf("no catalog at %s or %s", ref.CategoryCatalogPath(), ref.CatalogPath()))
		return match{}, false
	}

	var item *catalog.Item
	if ref.IsWildcard() {
		item = o.pick(ctx, doc, ref, categoryScoped)
		if item == nil {
			o.miss(ctx, ref, raw, doc.Path, diagnostics.KindNoCandidates,
				fmt.Sprintf("no items in %s match [%s]", doc.Path, ref.Filters))
			return match{}, false
		}
	} else {
		category := ref.Category
		if categoryScoped {
			category = ""
		}
		found, exists := doc.FindItem(category, ref.ItemName)
		if !exists && ref.Path == "" && category != "" {
			// single segment references also reach the root items list
			found, exists = doc.FindItem("", ref.ItemName)
		}
		if !exists {
			o.miss(ctx, ref, raw, doc.Path, diagnostics.KindItemNotFound,
				fmt.Sprintf("item %q not found in %s", ref.ItemName, doc.Path))
			return match{}, false
		}
		item = found
	}

	return match{ref: ref, item: item, catalogPath: doc.Path}, true
}

// catalogFor finds the document for ref. A catalog stored in a directory
// named after the category wins; lookups in it ignore the category.
func (o *Orchestrator) catalogFor(ctx context.Context, ref reference.Reference) (*catalog.Document, bool) {
	if doc := o.store.GetFile(ctx, ref.CategoryCatalogPath()); doc != nil {
		return doc, true
	}
	return o.store.GetFile(ctx, ref.CatalogPath()), false
}

// pick draws a weighted random item among those passing the filters
func (o *Orchestrator) pick(ctx context.Context, doc *catalog.Document, ref reference.Reference, categoryScoped bool) *catalog.Item {
	var items []*catalog.Item
	if !categoryScoped {
		items = doc.Items(ref.Category)
	}
	if len(items) == 0 {
		items = doc.AllItems()
	}

	filters := reference.ParseFilters(ref.Filters)
	candidates := items[:0:0]
	for _, item := range items {
		if reference.MatchesAll(filters, item.Node) {
			candidates = append(candidates, item)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	picked, err := selection.Select(o.selector, candidates)
	if err != nil {
		o.logger.WarnContext(ctx, "wildcard selection failed", "reference", ref.String(), "error", err)
		return nil
	}
	return picked
}

// miss reports a failed lookup unless the reference is optional
func (o *Orchestrator) miss(ctx context.Context, ref reference.Reference, raw, catalogPath string, kind diagnostics.Kind, message string) {
	if ref.IsOptional {
		return
	}
	o.reporter.Report(ctx, diagnostics.Diagnostic{
		Kind:        kind,
		Reference:   raw,
		CatalogPath: catalogPath,
		Message:     message,
	})
}
