// Package generation builds names from names documents. A names document
// holds weighted component slots and weighted patterns over those slots.
package generation

//go:generate mockgen -destination=mock/mock_generator.go -package=generationmock github.com/KirkDiggler/rpg-catalog/internal/orchestrators/generation Generator

import "context"

// Generator produces generated content from names documents
type Generator interface {
	GenerateName(ctx context.Context, input GenerateNameInput) (*GenerateNameOutput, error)
}
