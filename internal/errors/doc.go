// Package errors provides structured errors for the rpg-catalog project.
//
// Every error carries a Code, a human readable message, an optional cause and
// optional metadata. Codes map onto gRPC status codes so the content service
// can hand errors straight back to callers.
//
// # Basic Usage
//
//	err := errors.NotFound("catalog not found")
//	err := errors.InvalidArgumentf("invalid rarity weight: %d", weight)
//
// Adding metadata:
//
//	err := errors.NotFound("catalog not found").
//	    WithMeta("path", "items/weapons/catalog")
//
// Wrapping keeps the original code:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load names file")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // missing catalog content is expected during authoring
//	}
//
// # Layer Guidelines
//
// Repositories return NotFound for absent documents and wrap storage
// failures. Orchestrators validate their Config with a ValidationBuilder and
// return InvalidArgument for caller contract violations. Handlers convert with
// ToGRPCError.
//
// Data availability problems inside reference resolution are never errors;
// they are reported through the diagnostics port and surface as "no value".
package errors
