package pattern_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-catalog/internal/errors"
	"github.com/KirkDiggler/rpg-catalog/internal/orchestrators/pattern"
	resolvermock "github.com/KirkDiggler/rpg-catalog/internal/orchestrators/resolver/mock"
	"github.com/KirkDiggler/rpg-catalog/internal/pkg/diagnostics"
	"github.com/KirkDiggler/rpg-catalog/internal/pkg/selection"
	selectionmock "github.com/KirkDiggler/rpg-catalog/internal/pkg/selection/mock"
)

const drawResolution = 1 << 30

type PatternTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRoller   *selectionmock.MockRoller
	mockResolver *resolvermock.MockResolver
	recorder     *diagnostics.Recorder
	executor     *pattern.Orchestrator
	ctx          context.Context
	swords       map[string][]selection.Option
}

func (s *PatternTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRoller = selectionmock.NewMockRoller(s.ctrl)
	s.mockResolver = resolvermock.NewMockResolver(s.ctrl)
	s.recorder = diagnostics.NewRecorder()
	s.ctx = context.Background()

	selector, err := selection.New(&selection.Config{Roller: s.mockRoller})
	s.Require().NoError(err)

	s.executor, err = pattern.New(&pattern.Config{
		Selector: selector,
		Resolver: s.mockResolver,
		Reporter: s.recorder,
	})
	s.Require().NoError(err)

	s.swords = map[string][]selection.Option{
		"prefix": {{Value: "Ancient", Weight: 100}},
		"base":   {{Value: "Sword", Weight: 100}},
	}
}

func (s *PatternTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *PatternTestSuite) execute(patternText string, components map[string][]selection.Option, genContext string) string {
	out, err := s.executor.Execute(s.ctx, pattern.ExecuteInput{
		Pattern:    patternText,
		Components: components,
		Context:    genContext,
	})
	s.Require().NoError(err)
	return out.Result
}

func (s *PatternTestSuite) TestSlotExpansion() {
	testCases := []struct {
		name       string
		pattern    string
		components map[string][]selection.Option
		expected   string
	}{
		{
			name:       "literal only",
			pattern:    "Legendary Sword",
			components: s.swords,
			expected:   "Legendary Sword",
		},
		{
			name:     "literal only is trimmed",
			pattern:  "  Legendary Sword  ",
			expected: "Legendary Sword",
		},
		{
			name:     "literal plus kept without tokens",
			pattern:  "Salt+Pepper",
			expected: "Salt+Pepper",
		},
		{
			name:       "single token",
			pattern:    "{base}",
			components: s.swords,
			expected:   "Sword",
		},
		{
			name:       "plus separator",
			pattern:    "{prefix}+{base}",
			components: s.swords,
			expected:   "Ancient Sword",
		},
		{
			name:       "spaced plus separator",
			pattern:    "{prefix} + {base}",
			components: s.swords,
			expected:   "Ancient Sword",
		},
		{
			name:       "literal between tokens",
			pattern:    "{prefix} Rune {base}",
			components: s.swords,
			expected:   "Ancient Rune Sword",
		},
		{
			name:       "dash literal dropped",
			pattern:    "{prefix} - {base}",
			components: s.swords,
			expected:   "Ancient Sword",
		},
		{
			name:       "missing slot contributes nothing",
			pattern:    "{missing} {base}",
			components: s.swords,
			expected:   "Sword",
		},
		{
			name:       "empty slot list",
			pattern:    "{base}",
			components: map[string][]selection.Option{"base": {}},
			expected:   "",
		},
		{
			name:     "nil table",
			pattern:  "{prefix}+{base}",
			expected: "",
		},
		{
			name:     "empty pattern",
			pattern:  "",
			expected: "",
		},
		{
			name:     "whitespace pattern",
			pattern:  "   ",
			expected: "",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			result := s.execute(tc.pattern, tc.components, "")
			s.Equal(tc.expected, result)
			s.NotContains(result, "Unknown")
			s.NotContains(result, "missing")
		})
	}
	s.Empty(s.recorder.Diagnostics())
}

func (s *PatternTestSuite) TestSlotUsesWeightedSelection() {
	components := map[string][]selection.Option{
		"base": {
			{Value: "Sword", Weight: 1},
			{Value: "Dagger", Weight: 1},
		},
	}

	// top of the range lands on the last option
	s.mockRoller.EXPECT().Roll(drawResolution).Return(drawResolution, nil)

	s.Equal("Dagger", s.execute("{base}", components, ""))
}

func (s *PatternTestSuite) TestSelectorErrorPropagates() {
	components := map[string][]selection.Option{
		"base": {
			{Value: "Sword", Weight: 1},
			{Value: "Dagger", Weight: 1},
		},
	}
	s.mockRoller.EXPECT().Roll(drawResolution).Return(0, errors.Internal("dice jammed"))

	out, err := s.executor.Execute(s.ctx, pattern.ExecuteInput{
		Pattern:    "{base}",
		Components: components,
	})
	s.Error(err)
	s.Nil(out)
	s.Contains(err.Error(), "base")
}

func (s *PatternTestSuite) TestMaterialMacro() {
	testCases := []struct {
		name        string
		pattern     string
		context     string
		expectedRef string
		resolved    string
		found       bool
		expected    string
	}{
		{
			name:        "context from caller",
			pattern:     "@materialRef {base}",
			context:     "weapon",
			expectedRef: "@items/materials:*[itemTypeTraits.weapon]?.name",
			resolved:    "Mithril",
			found:       true,
			expected:    "Mithril Sword",
		},
		{
			name:        "token suffix wins",
			pattern:     "@materialRef/armor+{base}",
			context:     "weapon",
			expectedRef: "@items/materials:*[itemTypeTraits.armor]?.name",
			resolved:    "Iron",
			found:       true,
			expected:    "Iron Sword",
		},
		{
			name:        "macro name is case insensitive",
			pattern:     "@MaterialRef/weapon {base}",
			expectedRef: "@items/materials:*[itemTypeTraits.weapon]?.name",
			resolved:    "Iron",
			found:       true,
			expected:    "Iron Sword",
		},
		{
			name:        "unresolved macro contributes nothing",
			pattern:     "@materialRef/clothing {base}",
			expectedRef: "@items/materials:*[itemTypeTraits.clothing]?.name",
			found:       false,
			expected:    "Sword",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockResolver.EXPECT().Resolve(s.ctx, tc.expectedRef).Return(tc.resolved, tc.found)
			s.Equal(tc.expected, s.execute(tc.pattern, s.swords, tc.context))
		})
	}
	s.Empty(s.recorder.Diagnostics())
}

func (s *PatternTestSuite) TestInlineReference() {
	s.mockResolver.EXPECT().
		Resolve(s.ctx, "@items/weapons/swords:Longsword.damage").
		Return("1d8", true)

	s.Equal("Sword 1d8", s.execute("{base} @items/weapons/swords:Longsword.damage", s.swords, ""))
}

func (s *PatternTestSuite) TestMacroDiagnostics() {
	testCases := []struct {
		name     string
		pattern  string
		context  string
		kind     diagnostics.Kind
		expected string
	}{
		{
			name:     "unknown macro",
			pattern:  "@enemyRef/goblin {base}",
			context:  "weapon",
			kind:     diagnostics.KindUnknownMacro,
			expected: "Sword",
		},
		{
			name:     "missing context",
			pattern:  "@materialRef {base}",
			kind:     diagnostics.KindMissingContext,
			expected: "Sword",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.recorder.Reset()

			s.Equal(tc.expected, s.execute(tc.pattern, s.swords, tc.context))

			got := s.recorder.Diagnostics()
			s.Require().Len(got, 1)
			s.Equal(tc.kind, got[0].Kind)
		})
	}
}

func (s *PatternTestSuite) TestCustomMacros() {
	selector, err := selection.New(&selection.Config{Roller: s.mockRoller})
	s.Require().NoError(err)

	executor, err := pattern.New(&pattern.Config{
		Selector: selector,
		Resolver: s.mockResolver,
		Reporter: s.recorder,
		Macros: map[string]string{
			"classRef": "@classes/{context}:*.name",
		},
	})
	s.Require().NoError(err)

	s.mockResolver.EXPECT().Resolve(s.ctx, "@classes/warrior:*.name").Return("Fighter", true)

	out, err := executor.Execute(s.ctx, pattern.ExecuteInput{Pattern: "Sir @classRef/warrior"})
	s.Require().NoError(err)
	s.Equal("Sir Fighter", out.Result)

	// defaults are replaced, not merged
	out, err = executor.Execute(s.ctx, pattern.ExecuteInput{Pattern: "@materialRef/weapon", Context: "weapon"})
	s.Require().NoError(err)
	s.Equal("", out.Result)
	s.Len(s.recorder.Diagnostics(), 1)
}

func (s *PatternTestSuite) TestConfigValidation() {
	selector, err := selection.New(&selection.Config{Roller: s.mockRoller})
	s.Require().NoError(err)

	testCases := []struct {
		name   string
		config *pattern.Config
	}{
		{name: "nil config"},
		{
			name:   "missing selector",
			config: &pattern.Config{Resolver: s.mockResolver, Reporter: s.recorder},
		},
		{
			name:   "missing resolver",
			config: &pattern.Config{Selector: selector, Reporter: s.recorder},
		},
		{
			name:   "missing reporter",
			config: &pattern.Config{Selector: selector, Resolver: s.mockResolver},
		},
		{
			name: "macro template is not a reference",
			config: &pattern.Config{
				Selector: selector,
				Resolver: s.mockResolver,
				Reporter: s.recorder,
				Macros:   map[string]string{"bad": "not a reference"},
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			executor, err := pattern.New(tc.config)
			s.Error(err)
			s.Nil(executor)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func TestPatternTestSuite(t *testing.T) {
	suite.Run(t, new(PatternTestSuite))
}
