// Package v1alpha1 serves catalog resolution and content generation over
// gRPC
package v1alpha1

import (
	"context"
	"encoding/json"

	"github.com/KirkDiggler/rpg-catalog/internal/errors"
	"github.com/KirkDiggler/rpg-catalog/internal/orchestrators/generation"
	"github.com/KirkDiggler/rpg-catalog/internal/orchestrators/pattern"
	"github.com/KirkDiggler/rpg-catalog/internal/orchestrators/resolver"
	"github.com/KirkDiggler/rpg-catalog/internal/pkg/selection"
)

// HandlerConfig holds dependencies for the content handler
type HandlerConfig struct {
	Resolver  resolver.Resolver
	Generator generation.Generator
	Executor  pattern.Executor
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.Resolver == nil {
		vb.RequiredField("Resolver")
	}
	if c.Generator == nil {
		vb.RequiredField("Generator")
	}
	if c.Executor == nil {
		vb.RequiredField("Executor")
	}
	return vb.Build()
}

// Handler implements ContentServiceServer
type Handler struct {
	resolver  resolver.Resolver
	generator generation.Generator
	executor  pattern.Executor
}

var _ ContentServiceServer = (*Handler)(nil)

// NewHandler creates a new content handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		resolver:  cfg.Resolver,
		generator: cfg.Generator,
		executor:  cfg.Executor,
	}, nil
}

// Resolve resolves one reference. An unresolved reference is not an error;
// the response reports found=false.
func (h *Handler) Resolve(ctx context.Context, req *ResolveRequest) (*ResolveResponse, error) {
	if req.Reference == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("reference is required"))
	}

	resp := &ResolveResponse{Reference: req.Reference}
	if !req.AsObject {
		resp.Value, resp.Found = h.resolver.Resolve(ctx, req.Reference)
		return resp, nil
	}

	node, found := h.resolver.ResolveToObject(ctx, req.Reference)
	if !found {
		return resp, nil
	}
	data, err := json.Marshal(node)
	if err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to encode resolved object"))
	}
	resp.Object = data
	resp.Found = true
	return resp, nil
}

// GenerateName draws a name from a names document
func (h *Handler) GenerateName(ctx context.Context, req *GenerateNameRequest) (*GenerateNameResponse, error) {
	if req.NamesPath == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("names_path is required"))
	}

	out, err := h.generator.GenerateName(ctx, generation.GenerateNameInput{
		NamesPath: req.NamesPath,
		Context:   req.Context,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GenerateNameResponse{
		ID:      out.ID,
		Name:    out.Name,
		Pattern: out.Pattern,
	}, nil
}

// Execute expands a pattern against the request's component table
func (h *Handler) Execute(ctx context.Context, req *ExecuteRequest) (*ExecuteResponse, error) {
	components := make(map[string][]selection.Option, len(req.Components))
	for slot, options := range req.Components {
		components[slot] = toOptions(options)
	}

	out, err := h.executor.Execute(ctx, pattern.ExecuteInput{
		Pattern:    req.Pattern,
		Components: components,
		Context:    req.Context,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ExecuteResponse{Result: out.Result}, nil
}

// Probabilities reports the chance of drawing each option
func (h *Handler) Probabilities(_ context.Context, req *ProbabilitiesRequest) (*ProbabilitiesResponse, error) {
	if len(req.Options) == 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("options are required"))
	}

	return &ProbabilitiesResponse{
		Probabilities: selection.OptionProbabilities(toOptions(req.Options)),
	}, nil
}

func toOptions(options []Option) []selection.Option {
	converted := make([]selection.Option, 0, len(options))
	for _, option := range options {
		converted = append(converted, selection.Option{Value: option.Value, Weight: option.Weight})
	}
	return converted
}
