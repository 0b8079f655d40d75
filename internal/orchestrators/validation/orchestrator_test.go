package validation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-catalog/internal/errors"
	"github.com/KirkDiggler/rpg-catalog/internal/orchestrators/resolver"
	resolvermock "github.com/KirkDiggler/rpg-catalog/internal/orchestrators/resolver/mock"
	"github.com/KirkDiggler/rpg-catalog/internal/orchestrators/validation"
	"github.com/KirkDiggler/rpg-catalog/internal/pkg/diagnostics"
	selectionmock "github.com/KirkDiggler/rpg-catalog/internal/pkg/selection/mock"
	catalogrepo "github.com/KirkDiggler/rpg-catalog/internal/repositories/catalog"
	catalogsvc "github.com/KirkDiggler/rpg-catalog/internal/services/catalog"
	catalogsvcmock "github.com/KirkDiggler/rpg-catalog/internal/services/catalog/mock"
	"github.com/KirkDiggler/rpg-catalog/internal/testutils"
)

type ValidationTestSuite struct {
	suite.Suite
	ctx       context.Context
	ctrl      *gomock.Controller
	recorder  *diagnostics.Recorder
	store     catalogsvc.Store
	validator *validation.Orchestrator
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.recorder = diagnostics.NewRecorder()

	root := testutils.WriteCatalogFixtures(s.T(), testutils.CatalogFixtures)
	repo, err := catalogrepo.NewFilesystem(&catalogrepo.FilesystemConfig{Root: root})
	s.Require().NoError(err)
	s.store, err = catalogsvc.New(&catalogsvc.Config{Repository: repo})
	s.Require().NoError(err)

	// fixture references are all named, so nothing rolls
	res, err := resolver.New(&resolver.Config{
		Store:    s.store,
		Reporter: s.recorder,
		Roller:   selectionmock.NewMockRoller(s.ctrl),
	})
	s.Require().NoError(err)

	s.validator, err = validation.New(&validation.Config{Store: s.store, Resolver: res})
	s.Require().NoError(err)
}

func (s *ValidationTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ValidationTestSuite) TestValidateFixtures() {
	out, err := s.validator.Validate(s.ctx)
	s.Require().NoError(err)

	s.Equal(len(testutils.CatalogFixtures), out.Documents)
	s.Equal(4, out.Checked)
	s.Equal(1, out.Skipped)
	s.Equal([]validation.Finding{
		{
			DocumentPath: "quests/catalog",
			JSONPath:     "quest_types.main.items.0.giver",
			Reference:    "@npcs/town:Mayor",
		},
		{
			DocumentPath: "quests/catalog",
			JSONPath:     "quest_types.main.items.0.notes.2",
			Reference:    "@items/weapons/axes:Warhammer",
		},
	}, out.Unresolved)

	kinds := make([]diagnostics.Kind, 0, 2)
	for _, d := range s.recorder.Diagnostics() {
		kinds = append(kinds, d.Kind)
	}
	s.ElementsMatch([]diagnostics.Kind{diagnostics.KindCatalogNotFound, diagnostics.KindItemNotFound}, kinds)
}

func (s *ValidationTestSuite) TestValidateCleanContent() {
	files := map[string]string{
		testutils.ClassesCatalog: testutils.CatalogFixtures[testutils.ClassesCatalog],
		"parties/catalog.json":   `{"items": [{"name": "Heroes", "leader": "@classes/warrior:Barbarian.name"}]}`,
	}
	root := testutils.WriteCatalogFixtures(s.T(), files)
	repo, err := catalogrepo.NewFilesystem(&catalogrepo.FilesystemConfig{Root: root})
	s.Require().NoError(err)
	store, err := catalogsvc.New(&catalogsvc.Config{Repository: repo})
	s.Require().NoError(err)

	mockResolver := resolvermock.NewMockResolver(s.ctrl)
	mockResolver.EXPECT().Resolve(s.ctx, "@classes/warrior:Barbarian.name").Return("Barbarian", true)

	validator, err := validation.New(&validation.Config{Store: store, Resolver: mockResolver})
	s.Require().NoError(err)

	out, err := validator.Validate(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, out.Documents)
	s.Equal(1, out.Checked)
	s.Empty(out.Unresolved)
}

func (s *ValidationTestSuite) TestValidateErrors() {
	s.Run("source cannot be listed", func() {
		mockStore := catalogsvcmock.NewMockStore(s.ctrl)
		mockStore.EXPECT().LoadAll(s.ctx).Return(nil, errors.Internal("disk on fire"))

		validator, err := validation.New(&validation.Config{
			Store:    mockStore,
			Resolver: resolvermock.NewMockResolver(s.ctrl),
		})
		s.Require().NoError(err)

		out, err := validator.Validate(s.ctx)
		s.Require().Error(err)
		s.True(errors.IsInternal(err))
		s.Nil(out)
	})

	s.Run("canceled", func() {
		ctx, cancel := context.WithCancel(s.ctx)
		mockStore := catalogsvcmock.NewMockStore(s.ctrl)
		mockStore.EXPECT().LoadAll(ctx).DoAndReturn(func(context.Context) (*catalogsvc.LoadAllOutput, error) {
			cancel()
			return &catalogsvc.LoadAllOutput{Loaded: 1, Paths: []string{"classes/catalog"}}, nil
		})

		validator, err := validation.New(&validation.Config{
			Store:    mockStore,
			Resolver: resolvermock.NewMockResolver(s.ctrl),
		})
		s.Require().NoError(err)

		out, err := validator.Validate(ctx)
		s.Require().Error(err)
		s.Equal(errors.CodeCanceled, errors.GetCode(err))
		s.Nil(out)
	})
}

func (s *ValidationTestSuite) TestNewValidation() {
	testCases := []struct {
		name    string
		config  *validation.Config
		missing string
	}{
		{name: "nil config", missing: "config cannot be nil"},
		{name: "missing store", config: &validation.Config{Resolver: resolvermock.NewMockResolver(s.ctrl)}, missing: "Store"},
		{name: "missing resolver", config: &validation.Config{Store: s.store}, missing: "Resolver"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			v, err := validation.New(tc.config)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.missing)
			s.Nil(v)
		})
	}
}
