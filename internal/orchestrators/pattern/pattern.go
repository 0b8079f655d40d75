// Package pattern expands generation templates such as
// "@materialRef/weapon + {base}" into finished strings
package pattern

//go:generate mockgen -destination=mock/mock_executor.go -package=patternmock github.com/KirkDiggler/rpg-catalog/internal/orchestrators/pattern Executor

import "context"

// Executor expands a pattern against a component table
type Executor interface {
	Execute(ctx context.Context, input ExecuteInput) (*ExecuteOutput, error)
}
