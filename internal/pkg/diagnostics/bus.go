package diagnostics

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-catalog/internal/errors"
)

// EventReferenceUnresolved is published for every diagnostic
const EventReferenceUnresolved = "catalog.reference.unresolved"

// Event context keys set on published events
const (
	ContextKeyKind        = "kind"
	ContextKeyReference   = "reference"
	ContextKeyCatalogPath = "catalog_path"
	ContextKeyMessage     = "message"
)

// source identifies the publisher on the bus
type source struct {
	id string
}

func (s source) GetID() string   { return s.id }
func (s source) GetType() string { return "catalog_resolver" }

var _ core.Entity = source{}

// BusReporterConfig configures a BusReporter
type BusReporterConfig struct {
	Bus events.EventBus
	// SourceID names the publisher on emitted events
	SourceID string
	Logger   *slog.Logger
}

// Validate checks the config
func (c *BusReporterConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.Bus == nil {
		vb.RequiredField("Bus")
	}
	return vb.Build()
}

// BusReporter publishes diagnostics on an rpg-toolkit event bus so game
// systems can subscribe to content problems
type BusReporter struct {
	bus    events.EventBus
	source source
	logger *slog.Logger
}

// NewBusReporter creates a BusReporter
func NewBusReporter(cfg *BusReporterConfig) (*BusReporter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	id := cfg.SourceID
	if id == "" {
		id = "resolver"
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &BusReporter{
		bus:    cfg.Bus,
		source: source{id: id},
		logger: logger,
	}, nil
}

// Report publishes d. Publish failures are logged and otherwise ignored.
func (r *BusReporter) Report(ctx context.Context, d Diagnostic) {
	event := events.NewGameEvent(EventReferenceUnresolved, r.source, nil)
	event.Context().Set(ContextKeyKind, string(d.Kind))
	event.Context().Set(ContextKeyReference, d.Reference)
	event.Context().Set(ContextKeyCatalogPath, d.CatalogPath)
	event.Context().Set(ContextKeyMessage, d.Message)

	if err := r.bus.Publish(ctx, event); err != nil {
		r.logger.ErrorContext(ctx, "failed to publish diagnostic",
			"reference", d.Reference,
			"error", err,
		)
	}
}
