package diagnostics

import (
	"context"
	"log/slog"
)

// SlogReporter writes each diagnostic as a warn level log line
type SlogReporter struct {
	logger *slog.Logger
}

// NewSlogReporter creates a SlogReporter. A nil logger uses slog.Default.
func NewSlogReporter(logger *slog.Logger) *SlogReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogReporter{logger: logger}
}

// Report logs d
func (r *SlogReporter) Report(ctx context.Context, d Diagnostic) {
	r.logger.WarnContext(ctx, "unresolved catalog reference",
		"kind", string(d.Kind),
		"reference", d.Reference,
		"catalog_path", d.CatalogPath,
		"message", d.Message,
	)
}
