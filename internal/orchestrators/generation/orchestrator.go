package generation

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-catalog/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-catalog/internal/errors"
	"github.com/KirkDiggler/rpg-catalog/internal/orchestrators/pattern"
	"github.com/KirkDiggler/rpg-catalog/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-catalog/internal/pkg/selection"
	catalogsvc "github.com/KirkDiggler/rpg-catalog/internal/services/catalog"
)

const (
	componentsKey = "components"
	patternsKey   = "patterns"
)

// Config holds the dependencies for the name generator
type Config struct {
	Store       catalogsvc.Store
	Executor    pattern.Executor
	Selector    *selection.Selector
	IDGenerator idgen.Generator
	Logger      *slog.Logger
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
	if c.Executor == nil {
		vb.RequiredField("Executor")
	}
	if c.Selector == nil {
		vb.RequiredField("Selector")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

// GenerateNameInput is the input for GenerateName
type GenerateNameInput struct {
	// NamesPath is the catalog path of the names document,
	// e.g. enemies/goblins/names
	NamesPath string
	// Context is passed to macros in the chosen pattern
	Context string
}

// GenerateNameOutput is the output of GenerateName
type GenerateNameOutput struct {
	ID      string
	Name    string
	Pattern string
}

// Orchestrator generates names
type Orchestrator struct {
	store    catalogsvc.Store
	executor pattern.Executor
	selector *selection.Selector
	idGen    idgen.Generator
	logger   *slog.Logger
}

// New creates a name generator
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
		executor: cfg.Executor,
		selector: cfg.Selector,
		idGen:    cfg.IDGenerator,
		logger:   logger,
	}, nil
}

var _ Generator = (*Orchestrator)(nil)

// GenerateName picks a weighted pattern from the names document and expands
// it against the document's components
func (o *Orchestrator) GenerateName(ctx context.Context, input GenerateNameInput) (*GenerateNameOutput, error) {
	if input.NamesPath == "" {
		return nil, errors.InvalidArgument("names path is required")
	}

	doc := o.store.GetFile(ctx, input.NamesPath)
	if doc == nil {
		return nil, errors.NotFoundf("names document %s not found", input.NamesPath)
	}

	patterns := Patterns(doc.Root)
	if len(patterns) == 0 {
		return nil, errors.FailedPreconditionf("names document %s has no patterns", input.NamesPath)
	}

	chosen, err := selection.SelectOption(o.selector, patterns)
	if err != nil {
		return nil, errors.Wrap(err, "failed to select pattern")
	}

	result, err := o.executor.Execute(ctx, pattern.ExecuteInput{
		Pattern:    chosen.Value,
		Components: Components(doc.Root),
		Context:    input.Context,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to expand pattern %q", chosen.Value)
	}

	o.logger.DebugContext(ctx, "generated name",
		"names_path", input.NamesPath,
		"pattern", chosen.Value,
		"name", result.Result,
	)

	return &GenerateNameOutput{
		ID:      o.idGen.Generate(),
		Name:    result.Result,
		Pattern: chosen.Value,
	}, nil
}

// Patterns reads the weighted patterns of a names document. Entries may be
// plain strings or objects carrying template or pattern.
func Patterns(root *catalog.Node) []selection.Option {
	var options []selection.Option
	for _, entry := range root.Get(patternsKey).Elements() {
		text := textOf(entry, "template", "pattern")
		if text == "" {
			continue
		}
		options = append(options, selection.Option{Value: text, Weight: weightOf(entry)})
	}
	return options
}

// Components reads the component table of a names document. Slot entries may
// be plain strings or objects carrying value or name.
func Components(root *catalog.Node) map[string][]selection.Option {
	components := root.Get(componentsKey)
	table := make(map[string][]selection.Option, components.Len())
	for _, slot := range components.Keys() {
		options := []selection.Option{}
		for _, entry := range components.Get(slot).Elements() {
			text := textOf(entry, "value", "name")
			if text == "" {
				continue
			}
			options = append(options, selection.Option{Value: text, Weight: weightOf(entry)})
		}
		table[slot] = options
	}
	return table
}

func textOf(entry *catalog.Node, keys ...string) string {
	if s, ok := entry.AsString(); ok {
		return s
	}
	for _, key := range keys {
		if s := entry.StringField(key); s != "" {
			return s
		}
	}
	return ""
}

func weightOf(entry *catalog.Node) int {
	for _, key := range []string{"rarityWeight", "weight"} {
		if w, ok := entry.Get(key).AsInt(); ok {
			return w
		}
	}
	return catalog.DefaultWeight
}
