package resolver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	entities "github.com/KirkDiggler/rpg-catalog/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-catalog/internal/errors"
	"github.com/KirkDiggler/rpg-catalog/internal/orchestrators/resolver"
	"github.com/KirkDiggler/rpg-catalog/internal/pkg/diagnostics"
	selectionmock "github.com/KirkDiggler/rpg-catalog/internal/pkg/selection/mock"
	catalogrepo "github.com/KirkDiggler/rpg-catalog/internal/repositories/catalog"
	catalogsvc "github.com/KirkDiggler/rpg-catalog/internal/services/catalog"
	catalogsvcmock "github.com/KirkDiggler/rpg-catalog/internal/services/catalog/mock"
	"github.com/KirkDiggler/rpg-catalog/internal/testutils"
)

const drawResolution = 1 << 30

type ResolverTestSuite struct {
	suite.Suite
	ctx        context.Context
	ctrl       *gomock.Controller
	mockRoller *selectionmock.MockRoller
	recorder   *diagnostics.Recorder
	store      catalogsvc.Store
	resolver   *resolver.Orchestrator
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func (s *ResolverTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockRoller = selectionmock.NewMockRoller(s.ctrl)
	s.recorder = diagnostics.NewRecorder()

	root := testutils.WriteCatalogFixtures(s.T(), testutils.CatalogFixtures)
	repo, err := catalogrepo.NewFilesystem(&catalogrepo.FilesystemConfig{Root: root})
	s.Require().NoError(err)
	s.store, err = catalogsvc.New(&catalogsvc.Config{Repository: repo})
	s.Require().NoError(err)

	s.resolver, err = resolver.New(&resolver.Config{
		Store:    s.store,
		Reporter: s.recorder,
		Roller:   s.mockRoller,
	})
	s.Require().NoError(err)
}

func (s *ResolverTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ResolverTestSuite) TestNewValidation() {
	testCases := []struct {
		name    string
		config  *resolver.Config
		missing string
	}{
		{name: "nil config", config: nil, missing: "config cannot be nil"},
		{name: "missing store", config: &resolver.Config{Reporter: s.recorder, Roller: s.mockRoller}, missing: "Store"},
		{name: "missing reporter", config: &resolver.Config{Store: s.store, Roller: s.mockRoller}, missing: "Reporter"},
		{name: "missing roller", config: &resolver.Config{Store: s.store, Reporter: s.recorder}, missing: "Roller"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			r, err := resolver.New(tc.config)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.missing)
			s.Nil(r)
		})
	}
}

func (s *ResolverTestSuite) TestResolve() {
	testCases := []struct {
		name      string
		ref       string
		wantValue string
		wantFound bool
	}{
		{
			name:      "types shape without path",
			ref:       "@classes/warrior:Fighter",
			wantValue: "warrior:Fighter",
			wantFound: true,
		},
		{
			name:      "types shape by slug",
			ref:       "@classes/cleric:priest",
			wantValue: "cleric:priest",
			wantFound: true,
		},
		{
			name:      "types shape with path",
			ref:       "@items/weapons/swords:Longsword",
			wantValue: "weapons/swords:Longsword",
			wantFound: true,
		},
		{
			name:      "category falls back to other categories",
			ref:       "@items/weapons/swords:Handaxe",
			wantValue: "weapons/swords:Handaxe",
			wantFound: true,
		},
		{
			name:      "scalar property",
			ref:       "@items/weapons/swords:Longsword.damage",
			wantValue: "1d8",
			wantFound: true,
		},
		{
			name:      "nested property",
			ref:       "@classes/warrior:Fighter.stats.hp",
			wantValue: "12",
			wantFound: true,
		},
		{
			name:      "array property renders as json",
			ref:       "@classes/warrior:Fighter.stats.armor",
			wantValue: `["light","heavy"]`,
			wantFound: true,
		},
		{
			name:      "object property renders as json",
			ref:       "@items/weapons/swords:Longsword.traits",
			wantValue: `{"versatile":true}`,
			wantFound: true,
		},
		{
			name:      "missing property falls back to identifier",
			ref:       "@items/weapons/swords:Longsword.traits.fiery",
			wantValue: "weapons/swords:Longsword",
			wantFound: true,
		},
		{
			name:      "null property falls back to identifier",
			ref:       "@classes/cleric:Priest.deity",
			wantValue: "cleric:Priest",
			wantFound: true,
		},
		{
			name:      "category directory catalog",
			ref:       "@items/materials:Mithril.rarityWeight",
			wantValue: "50",
			wantFound: true,
		},
		{
			name:      "yaml catalog identifier",
			ref:       "@items/materials:Iron",
			wantValue: "materials:Iron",
			wantFound: true,
		},
		{
			name:      "missing item",
			ref:       "@classes/warrior:Paladin",
			wantFound: false,
		},
		{
			name:      "missing catalog",
			ref:       "@abilities/active/offensive:Heal",
			wantFound: false,
		},
		{
			name:      "unparseable",
			ref:       "invalid-reference",
			wantFound: false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			value, found := s.resolver.Resolve(s.ctx, tc.ref)
			s.Equal(tc.wantFound, found)
			s.Equal(tc.wantValue, value)
		})
	}
}

func (s *ResolverTestSuite) TestOptionalityOnlyChangesDiagnostics() {
	testCases := []struct {
		name     string
		ref      string
		kind     diagnostics.Kind
		catalog  string
		optional string
	}{
		{
			name:     "missing catalog",
			ref:      "@abilities/active/offensive:NonExistentAbility",
			kind:     diagnostics.KindCatalogNotFound,
			catalog:  "abilities/active/catalog",
			optional: "@abilities/active/offensive:NonExistentAbility?",
		},
		{
			name:     "missing item",
			ref:      "@items/weapons:non-existent-item.damage",
			kind:     diagnostics.KindItemNotFound,
			catalog:  "items/weapons/catalog",
			optional: "@items/weapons:non-existent-item?.damage",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.recorder.Reset()

			value, found := s.resolver.Resolve(s.ctx, tc.optional)
			s.False(found)
			s.Empty(value)
			s.Empty(s.recorder.Diagnostics())

			value, found = s.resolver.Resolve(s.ctx, tc.ref)
			s.False(found)
			s.Empty(value)

			reported := s.recorder.Diagnostics()
			s.Require().Len(reported, 1)
			s.Equal(tc.kind, reported[0].Kind)
			s.Equal(tc.ref, reported[0].Reference)
			s.Equal(tc.catalog, reported[0].CatalogPath)
		})
	}
}

func (s *ResolverTestSuite) TestInvalidSyntaxIsReported() {
	_, found := s.resolver.Resolve(s.ctx, "@")
	s.False(found)

	reported := s.recorder.Diagnostics()
	s.Require().Len(reported, 1)
	s.Equal(diagnostics.KindInvalidSyntax, reported[0].Kind)
}

func (s *ResolverTestSuite) TestWildcardAppliesFiltersAndWeights() {
	// Iron (share 100) and Mithril (share 2) pass the weapon filter; the top
	// of the roll range lands on Mithril
	s.mockRoller.EXPECT().Roll(drawResolution).Return(drawResolution, nil)

	value, found := s.resolver.Resolve(s.ctx, "@items/materials:*[itemTypeTraits.weapon]?.name")
	s.True(found)
	s.Equal("Mithril", value)

	s.mockRoller.EXPECT().Roll(drawResolution).Return(1, nil)

	value, found = s.resolver.Resolve(s.ctx, "@items/materials:*[itemTypeTraits.weapon]")
	s.True(found)
	s.Equal("materials:Iron", value)
}

func (s *ResolverTestSuite) TestWildcardSingleCandidateDoesNotRoll() {
	value, found := s.resolver.Resolve(s.ctx, "@items/materials:*[itemTypeTraits.clothing].name")
	s.True(found)
	s.Equal("Silk", value)
}

func (s *ResolverTestSuite) TestWildcardWithinCategory() {
	// swords only: Longsword and Greatsword
	s.mockRoller.EXPECT().Roll(drawResolution).Return(drawResolution, nil)

	value, found := s.resolver.Resolve(s.ctx, "@items/weapons/swords:*[level>=1]")
	s.True(found)
	s.Equal("weapons/swords:Greatsword", value)
}

func (s *ResolverTestSuite) TestWildcardNoCandidates() {
	_, found := s.resolver.Resolve(s.ctx, "@items/materials:*[itemTypeTraits.jewelry]?.name")
	s.False(found)
	s.Empty(s.recorder.Diagnostics())

	_, found = s.resolver.Resolve(s.ctx, "@items/materials:*[itemTypeTraits.jewelry].name")
	s.False(found)
	reported := s.recorder.Diagnostics()
	s.Require().Len(reported, 1)
	s.Equal(diagnostics.KindNoCandidates, reported[0].Kind)
}

func (s *ResolverTestSuite) TestResolveToObject() {
	node, found := s.resolver.ResolveToObject(s.ctx, "@classes/warrior:Fighter")
	s.Require().True(found)
	s.Equal("Fighter", node.StringField("name"))

	node, found = s.resolver.ResolveToObject(s.ctx, "@classes/warrior:Fighter.stats")
	s.Require().True(found)
	hp, ok := node.Get("hp").AsInt()
	s.True(ok)
	s.Equal(12, hp)

	_, found = s.resolver.ResolveToObject(s.ctx, "@classes/warrior:Fighter.stats.mana")
	s.False(found)
	s.Len(s.recorder.Diagnostics(), 1)

	s.recorder.Reset()
	_, found = s.resolver.ResolveToObject(s.ctx, "@classes/warrior:Fighter?.stats.mana")
	s.False(found)
	s.Empty(s.recorder.Diagnostics())
}

func (s *ResolverTestSuite) TestResolveAsync() {
	result, open := <-s.resolver.ResolveAsync(s.ctx, "@classes/warrior:Fighter")
	s.True(open)
	s.Equal(resolver.Result{Reference: "@classes/warrior:Fighter", Value: "warrior:Fighter", Found: true}, result)

	results := s.resolver.ResolveAsync(s.ctx, "@classes/warrior:Nobody?")
	result = <-results
	s.False(result.Found)
	_, open = <-results
	s.False(open)
}

func (s *ResolverTestSuite) TestResolveAll() {
	results := s.resolver.ResolveAll(s.ctx, []string{
		"@classes/warrior:Fighter",
		"@classes/warrior:Fighter",
		"@classes/warrior:Nobody?",
	})
	s.Len(results, 2)
	s.True(results["@classes/warrior:Fighter"].Found)
	s.False(results["@classes/warrior:Nobody?"].Found)
}

func (s *ResolverTestSuite) TestPanicIsRecovered() {
	mockStore := catalogsvcmock.NewMockStore(s.ctrl)
	mockStore.EXPECT().GetFile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, string) *entities.Document { panic("corrupt cache") },
	)

	r, err := resolver.New(&resolver.Config{Store: mockStore, Reporter: s.recorder, Roller: s.mockRoller})
	s.Require().NoError(err)

	value, found := r.Resolve(s.ctx, "@classes/warrior:Fighter?")
	s.False(found)
	s.Empty(value)

	reported := s.recorder.Diagnostics()
	s.Require().Len(reported, 1)
	s.Equal(diagnostics.KindResolvePanic, reported[0].Kind)
	s.Equal("corrupt cache", reported[0].Message)
}

func (s *ResolverTestSuite) TestCatalogsAreCached() {
	s.resolver.Resolve(s.ctx, "@classes/warrior:Fighter")
	misses := s.store.Stats().Misses

	s.resolver.Resolve(s.ctx, "@classes/warrior:Barbarian")
	s.Equal(misses, s.store.Stats().Misses)
}

func (s *ResolverTestSuite) TestSingleSegmentReachesRootItems() {
	root := testutils.WriteCatalogFixtures(s.T(), map[string]string{
		"classes/catalog.json": `{"items": [{"name": "Priest", "slug": "priest", "deity": "Sun"}]}`,
	})
	repo, err := catalogrepo.NewFilesystem(&catalogrepo.FilesystemConfig{Root: root})
	s.Require().NoError(err)
	store, err := catalogsvc.New(&catalogsvc.Config{Repository: repo})
	s.Require().NoError(err)
	r, err := resolver.New(&resolver.Config{
		Store:    store,
		Reporter: s.recorder,
		Roller:   s.mockRoller,
	})
	s.Require().NoError(err)

	testCases := []struct {
		name      string
		ref       string
		wantValue string
		wantFound bool
	}{
		{name: "root item by name", ref: "@classes/cleric:Priest.deity", wantValue: "Sun", wantFound: true},
		{name: "root item by slug", ref: "@classes/cleric:priest", wantValue: "cleric:priest", wantFound: true},
		{name: "missing root item", ref: "@classes/cleric:Paladin", wantFound: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.recorder.Reset()

			value, found := r.Resolve(s.ctx, tc.ref)
			s.Equal(tc.wantFound, found)
			s.Equal(tc.wantValue, value)
			if tc.wantFound {
				s.Empty(s.recorder.Diagnostics())
				return
			}
			s.Require().Len(s.recorder.Diagnostics(), 1)
			s.Equal(diagnostics.KindItemNotFound, s.recorder.Diagnostics()[0].Kind)
		})
	}
}
