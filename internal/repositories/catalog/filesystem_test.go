package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	entities "github.com/KirkDiggler/rpg-catalog/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-catalog/internal/errors"
	"github.com/KirkDiggler/rpg-catalog/internal/repositories/catalog"
	"github.com/KirkDiggler/rpg-catalog/internal/testutils"
)

type FilesystemTestSuite struct {
	suite.Suite
	ctx  context.Context
	root string
	repo catalog.Repository
}

func TestFilesystemSuite(t *testing.T) {
	suite.Run(t, new(FilesystemTestSuite))
}

func (s *FilesystemTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.root = testutils.WriteCatalogFixtures(s.T(), testutils.CatalogFixtures)

	repo, err := catalog.NewFilesystem(&catalog.FilesystemConfig{Root: s.root})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *FilesystemTestSuite) TestNewFilesystem() {
	testCases := []struct {
		name    string
		config  *catalog.FilesystemConfig
		wantErr bool
		errMsg  string
	}{
		{name: "valid", config: &catalog.FilesystemConfig{Root: s.root}},
		{name: "nil config", config: nil, wantErr: true, errMsg: "config cannot be nil"},
		{name: "empty root", config: &catalog.FilesystemConfig{Root: " "}, wantErr: true, errMsg: "root cannot be empty"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := catalog.NewFilesystem(tc.config)
			if tc.wantErr {
				s.Error(err)
				s.Contains(err.Error(), tc.errMsg)
				s.Nil(repo)
				return
			}
			s.NoError(err)
			s.NotNil(repo)
		})
	}
}

func (s *FilesystemTestSuite) TestGet() {
	testCases := []struct {
		name       string
		path       string
		wantPath   string
		wantFormat entities.Format
		wantCode   errors.Code
	}{
		{name: "json by key", path: "classes/catalog", wantPath: "classes/catalog", wantFormat: entities.FormatJSON},
		{name: "json with extension", path: "classes/catalog.json", wantPath: "classes/catalog", wantFormat: entities.FormatJSON},
		{name: "yaml fallback", path: "items/materials/catalog", wantPath: "items/materials/catalog", wantFormat: entities.FormatYAML},
		{name: "backslashes", path: `items\weapons\catalog`, wantPath: "items/weapons/catalog", wantFormat: entities.FormatJSON},
		{name: "missing", path: "nope/catalog", wantCode: errors.CodeNotFound},
		{name: "empty", path: "", wantCode: errors.CodeInvalidArgument},
		{name: "escaping", path: "../secrets", wantCode: errors.CodeInvalidArgument},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.repo.Get(s.ctx, catalog.GetInput{Path: tc.path})
			if tc.wantCode != "" {
				s.Require().Error(err)
				s.Equal(tc.wantCode, errors.GetCode(err))
				return
			}
			s.Require().NoError(err)
			s.Equal(tc.wantPath, out.Path)
			s.Equal(tc.wantFormat, out.Format)
			s.NotEmpty(out.Data)
		})
	}
}

func (s *FilesystemTestSuite) TestList() {
	out, err := s.repo.List(s.ctx, catalog.ListInput{})
	s.Require().NoError(err)
	s.Equal([]string{
		"classes/catalog",
		"enemies/goblins/names",
		"items/materials/catalog",
		"items/weapons/catalog",
		"quests/catalog",
	}, out.Paths)

	out, err = s.repo.List(s.ctx, catalog.ListInput{Prefix: "items/"})
	s.Require().NoError(err)
	s.Equal([]string{"items/materials/catalog", "items/weapons/catalog"}, out.Paths)
}

func (s *FilesystemTestSuite) TestListIgnoresOtherFiles() {
	s.Require().NoError(os.WriteFile(filepath.Join(s.root, "README.md"), []byte("# content"), 0o644))

	out, err := s.repo.List(s.ctx, catalog.ListInput{})
	s.Require().NoError(err)
	s.NotContains(out.Paths, "README")
	s.Len(out.Paths, 5)
}

func (s *FilesystemTestSuite) TestListMissingRoot() {
	repo, err := catalog.NewFilesystem(&catalog.FilesystemConfig{Root: filepath.Join(s.root, "missing")})
	s.Require().NoError(err)

	_, err = repo.List(s.ctx, catalog.ListInput{})
	s.True(errors.IsNotFound(err))
}

func (s *FilesystemTestSuite) TestPutThenGet() {
	_, err := s.repo.Put(s.ctx, catalog.PutInput{
		Path:   "spells/fire/catalog",
		Data:   []byte("items:\n  - name: Fireball\n"),
		Format: entities.FormatYAML,
	})
	s.Require().NoError(err)

	_, statErr := os.Stat(filepath.Join(s.root, "spells", "fire", "catalog.yaml"))
	s.NoError(statErr)

	out, err := s.repo.Get(s.ctx, catalog.GetInput{Path: "spells/fire/catalog"})
	s.Require().NoError(err)
	s.Equal(entities.FormatYAML, out.Format)
}

func (s *FilesystemTestSuite) TestPutValidation() {
	_, err := s.repo.Put(s.ctx, catalog.PutInput{Path: "x/catalog"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Put(s.ctx, catalog.PutInput{Data: []byte("{}")})
	s.True(errors.IsInvalidArgument(err))
}

func (s *FilesystemTestSuite) TestNormalizePath() {
	s.Equal("items/weapons/catalog", catalog.NormalizePath("./items/weapons/catalog.JSON"))
	s.Equal("items/weapons/catalog", catalog.NormalizePath(`\items\weapons\catalog.yml`))
	s.Equal("classes/catalog", catalog.NormalizePath(" classes/catalog "))
}

func (s *FilesystemTestSuite) TestCleanPath() {
	s.Equal("items/weapons/catalog", catalog.CleanPath("items//weapons/catalog"))
	s.Equal("items/weapons/catalog", catalog.CleanPath("./items/armor/../weapons/catalog.json"))
	s.Equal("", catalog.CleanPath("  "))
}
