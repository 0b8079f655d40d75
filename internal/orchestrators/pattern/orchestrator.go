package pattern

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/KirkDiggler/rpg-catalog/internal/errors"
	"github.com/KirkDiggler/rpg-catalog/internal/orchestrators/resolver"
	"github.com/KirkDiggler/rpg-catalog/internal/pkg/diagnostics"
	"github.com/KirkDiggler/rpg-catalog/internal/pkg/reference"
	"github.com/KirkDiggler/rpg-catalog/internal/pkg/selection"
)

// ContextPlaceholder is replaced with the generation context in macro
// templates
const ContextPlaceholder = "{context}"

// DefaultMacros maps macro names to the reference they expand to
var DefaultMacros = map[string]string{
	"materialRef": "@items/materials:*[itemTypeTraits.{context}]?.name",
}

var (
	separators = regexp.MustCompile(`\s+|\+`)
	slotToken  = regexp.MustCompile(`^\{(\w+)\}$`)
	macroToken = regexp.MustCompile(`^@(\w+)(?:/(\w+))?$`)
)

// Config holds the dependencies for the executor
type Config struct {
	Selector *selection.Selector
	Resolver resolver.Resolver
	Reporter diagnostics.Reporter
	// Macros defaults to DefaultMacros
	Macros map[string]string
	Logger *slog.Logger
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.Selector == nil {
		vb.RequiredField("Selector")
	}
	if c.Resolver == nil {
		vb.RequiredField("Resolver")
	}
	if c.Reporter == nil {
		vb.RequiredField("Reporter")
	}
	for name, template := range c.Macros {
		if _, ok := reference.Parse(strings.ReplaceAll(template, ContextPlaceholder, "context")); !ok {
			vb.Fieldf("Macros", "template for %s is not a reference: %s", name, template)
		}
	}
	return vb.Build()
}

// ExecuteInput is the input for Execute
type ExecuteInput struct {
	Pattern string
	// Components maps slot names to weighted values
	Components map[string][]selection.Option
	// Context is the default macro context, e.g. weapon or armor
	Context string
}

// ExecuteOutput is the output of Execute
type ExecuteOutput struct {
	Result string
}

// Orchestrator expands patterns
type Orchestrator struct {
	selector *selection.Selector
	resolver resolver.Resolver
	reporter diagnostics.Reporter
	macros   map[string]string
	logger   *slog.Logger
}

// New creates a pattern executor
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	macros := make(map[string]string)
	source := cfg.Macros
	if source == nil {
		source = DefaultMacros
	}
	for name, template := range source {
		macros[strings.ToLower(name)] = template
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Orchestrator{
		selector: cfg.Selector,
		resolver: cfg.Resolver,
		reporter: cfg.Reporter,
		macros:   macros,
		logger:   logger,
	}, nil
}

var _ Executor = (*Orchestrator)(nil)

// Execute expands input.Pattern. Missing slots, empty slots and unresolved
// macros contribute nothing. Only selector failures are returned as errors.
func (o *Orchestrator) Execute(ctx context.Context, input ExecuteInput) (*ExecuteOutput, error) {
	pattern := strings.TrimSpace(input.Pattern)
	if pattern == "" {
		return &ExecuteOutput{}, nil
	}

	tokens := separators.Split(pattern, -1)
	if !hasExpandableToken(tokens) {
		return &ExecuteOutput{Result: pattern}, nil
	}

	fragments := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if token == "" || token == "-" {
			continue
		}

		if m := slotToken.FindStringSubmatch(token); m != nil {
			value, err := o.expandSlot(m[1], input.Components)
			if err != nil {
				return nil, err
			}
			fragments = append(fragments, value)
			continue
		}

		if m := macroToken.FindStringSubmatch(token); m != nil {
			fragments = append(fragments, o.expandMacro(ctx, token, m[1], m[2], input.Context))
			continue
		}

		if strings.HasPrefix(token, "@") {
			// a full reference inline in the pattern
			value, _ := o.resolver.Resolve(ctx, token)
			fragments = append(fragments, value)
			continue
		}

		fragments = append(fragments, token)
	}

	return &ExecuteOutput{Result: strings.Join(strings.Fields(strings.Join(fragments, " ")), " ")}, nil
}

func hasExpandableToken(tokens []string) bool {
	for _, token := range tokens {
		if slotToken.MatchString(token) || strings.HasPrefix(token, "@") {
			return true
		}
	}
	return false
}

func (o *Orchestrator) expandSlot(slot string, components map[string][]selection.Option) (string, error) {
	options, ok := components[slot]
	if !ok || len(options) == 0 {
		return "", nil
	}

	picked, err := selection.SelectOption(o.selector, options)
	if err != nil {
		return "", errors.Wrapf(err, "failed to select component %s", slot)
	}
	return picked.Value, nil
}

func (o *Orchestrator) expandMacro(ctx context.Context, token, name, tokenContext, defaultContext string) string {
	template, ok := o.macros[strings.ToLower(name)]
	if !ok {
		o.reporter.Report(ctx, diagnostics.Diagnostic{
			Kind:      diagnostics.KindUnknownMacro,
			Reference: token,
			Message:   "unknown macro " + name,
		})
		return ""
	}

	genContext := tokenContext
	if genContext == "" {
		genContext = defaultContext
	}
	if genContext == "" && strings.Contains(template, ContextPlaceholder) {
		o.reporter.Report(ctx, diagnostics.Diagnostic{
			Kind:      diagnostics.KindMissingContext,
			Reference: token,
			Message:   "macro " + name + " needs a context",
		})
		return ""
	}

	ref := strings.ReplaceAll(template, ContextPlaceholder, genContext)
	value, found := o.resolver.Resolve(ctx, ref)
	if !found {
		o.logger.DebugContext(ctx, "macro resolved to nothing", "macro", name, "reference", ref)
		return ""
	}
	return value
}
