// Package diagnostics carries reports about catalog content that could not be
// resolved. Resolution never fails hard on missing content; a Reporter is how
// callers find out what was skipped.
package diagnostics

//go:generate mockgen -destination=mock/mock_reporter.go -package=diagnosticsmock github.com/KirkDiggler/rpg-catalog/internal/pkg/diagnostics Reporter

import (
	"context"
	"sync"
)

// Kind classifies a diagnostic
type Kind string

// Diagnostic kinds
const (
	KindInvalidSyntax   Kind = "invalid_syntax"
	KindCatalogNotFound Kind = "catalog_not_found"
	KindItemNotFound    Kind = "item_not_found"
	KindNoCandidates    Kind = "no_candidates"
	KindResolvePanic    Kind = "resolve_panic"
	KindUnknownMacro    Kind = "unknown_macro"
	KindMissingContext  Kind = "missing_context"
)

// Diagnostic describes one unresolved reference
type Diagnostic struct {
	Kind        Kind
	Reference   string
	CatalogPath string
	Message     string
}

// Reporter records diagnostics. Implementations must be safe for concurrent
// use.
type Reporter interface {
	Report(ctx context.Context, d Diagnostic)
}

type discard struct{}

func (discard) Report(context.Context, Diagnostic) {}

// Discard drops every diagnostic
var Discard Reporter = discard{}

type multi []Reporter

func (m multi) Report(ctx context.Context, d Diagnostic) {
	for _, r := range m {
		r.Report(ctx, d)
	}
}

// Multi fans a diagnostic out to every non-nil reporter
func Multi(reporters ...Reporter) Reporter {
	var m multi
	for _, r := range reporters {
		if r != nil {
			m = append(m, r)
		}
	}
	return m
}

// Recorder keeps diagnostics in memory
type Recorder struct {
	mu          sync.Mutex
	diagnostics []Diagnostic
}

// NewRecorder creates an empty Recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Report appends d
func (r *Recorder) Report(_ context.Context, d Diagnostic) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.diagnostics = append(r.diagnostics, d)
}

// Diagnostics returns a copy of everything recorded so far
func (r *Recorder) Diagnostics() []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Diagnostic, len(r.diagnostics))
	copy(out, r.diagnostics)
	return out
}

// Reset clears recorded diagnostics
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.diagnostics = nil
}
