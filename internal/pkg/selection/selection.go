// Package selection picks one candidate from a weighted set. Weight is a
// rarity: a candidate's share of the draw is 100/weight, so higher weights
// come up less often.
package selection

//go:generate mockgen -destination=mock/mock_roller.go -package=selectionmock github.com/KirkDiggler/rpg-toolkit/dice Roller

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-catalog/internal/errors"
)

const (
	// BaseShare is the numerator of the share formula
	BaseShare = 100.0

	// drawResolution is the die size used to draw a uniform value
	drawResolution = 1 << 30
)

// Candidate is anything that can be drawn. Callers must supply Weight >= 1.
type Candidate interface {
	Name() string
	Weight() int
}

// Option is a plain (value, weight) pair as used in component tables
type Option struct {
	Value  string
	Weight int
}

type optionCandidate struct {
	option Option
}

func (o optionCandidate) Name() string { return o.option.Value }
func (o optionCandidate) Weight() int  { return o.option.Weight }

func toCandidates(options []Option) []optionCandidate {
	candidates := make([]optionCandidate, len(options))
	for i, o := range options {
		candidates[i] = optionCandidate{option: o}
	}
	return candidates
}

// Config configures a Selector
type Config struct {
	Roller dice.Roller
}

// Validate checks the config
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	return vb.Build()
}

// Selector draws candidates using an injected roller
type Selector struct {
	roller dice.Roller
}

// New creates a Selector
func New(cfg *Config) (*Selector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Selector{roller: cfg.Roller}, nil
}

// Select draws one item. A single item is returned without rolling. An empty
// slice is an InvalidArgument error.
func Select[T Candidate](s *Selector, items []T) (T, error) {
	var zero T

	switch len(items) {
	case 0:
		return zero, errors.InvalidArgument("cannot select from empty collection")
	case 1:
		return items[0], nil
	}

	total := 0.0
	for _, item := range items {
		total += share(item.Weight())
	}

	r, err := s.draw(total)
	if err != nil {
		return zero, err
	}

	cumulative := 0.0
	for _, item := range items {
		cumulative += share(item.Weight())
		if cumulative >= r {
			return item, nil
		}
	}

	// float accumulation can leave r just above the final sum
	return items[len(items)-1], nil
}

// SelectOption draws one option from a component table slot
func SelectOption(s *Selector, options []Option) (Option, error) {
	picked, err := Select(s, toCandidates(options))
	if err != nil {
		return Option{}, err
	}
	return picked.option, nil
}

// draw returns a uniform value in [0, total)
func (s *Selector) draw(total float64) (float64, error) {
	n, err := s.roller.Roll(drawResolution)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll for weighted selection")
	}
	if n < 1 || n > drawResolution {
		return 0, errors.Internalf("roller returned %d outside 1..%d", n, drawResolution)
	}
	return float64(n-1) / float64(drawResolution) * total, nil
}

// CalculateProbability returns the raw share for a weight, 100/weight
func CalculateProbability(weight int) float64 {
	return share(weight)
}

// Probabilities returns each candidate's chance of being drawn as a
// percentage. Candidates sharing a name are summed.
func Probabilities[T Candidate](items []T) map[string]float64 {
	result := make(map[string]float64, len(items))
	if len(items) == 0 {
		return result
	}

	total := 0.0
	for _, item := range items {
		total += share(item.Weight())
	}
	for _, item := range items {
		result[item.Name()] += share(item.Weight()) / total * 100
	}
	return result
}

// OptionProbabilities is Probabilities for a component table slot
func OptionProbabilities(options []Option) map[string]float64 {
	return Probabilities(toCandidates(options))
}

func share(weight int) float64 {
	if weight < 1 {
		weight = 1
	}
	return BaseShare / float64(weight)
}
