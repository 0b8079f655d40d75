package catalog

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	entities "github.com/KirkDiggler/rpg-catalog/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-catalog/internal/errors"
)

// FilesystemConfig contains configuration for the filesystem repository
type FilesystemConfig struct {
	// Root is the directory holding catalog files
	Root string
}

// Validate validates the FilesystemConfig
func (cfg *FilesystemConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if strings.TrimSpace(cfg.Root) == "" {
		return errors.InvalidArgument("root cannot be empty")
	}
	return nil
}

type filesystemRepository struct {
	root string
}

// NewFilesystem creates a repository reading <root>/<path>.json, falling back
// to .yaml and .yml
func NewFilesystem(cfg *FilesystemConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &filesystemRepository{root: filepath.Clean(cfg.Root)}, nil
}

func (r *filesystemRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	p, err := validatePath(input.Path)
	if err != nil {
		return nil, err
	}

	base := filepath.Join(r.root, filepath.FromSlash(p))
	for _, ext := range entities.Extensions {
		data, err := os.ReadFile(base + ext)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrapf(err, "failed to read catalog %s", p)
		}
		return &GetOutput{
			Path:   p,
			Data:   data,
			Format: entities.FormatFromExt(ext),
		}, nil
	}

	return nil, errors.NotFoundf("catalog %s not found", p)
}

func (r *filesystemRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	prefix := NormalizePath(input.Prefix)
	seen := make(map[string]struct{})

	err := filepath.WalkDir(r.root, func(file string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isDocument(file) {
			return nil
		}

		rel, err := filepath.Rel(r.root, file)
		if err != nil {
			return err
		}
		key := NormalizePath(filepath.ToSlash(rel))
		if prefix != "" && !strings.HasPrefix(key, prefix) {
			return nil
		}
		seen[key] = struct{}{}
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("catalog root %s not found", r.root)
		}
		return nil, errors.Wrapf(err, "failed to walk catalog root %s", r.root)
	}

	paths := make([]string, 0, len(seen))
	for key := range seen {
		paths = append(paths, key)
	}
	sort.Strings(paths)

	return &ListOutput{Paths: paths}, nil
}

func (r *filesystemRepository) Put(_ context.Context, input PutInput) (*PutOutput, error) {
	p, err := validatePath(input.Path)
	if err != nil {
		return nil, err
	}
	if len(input.Data) == 0 {
		return nil, errors.InvalidArgument("data cannot be empty")
	}

	file := filepath.Join(r.root, filepath.FromSlash(p)) + formatExt(input.Format)
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create directory for %s", p)
	}
	if err := os.WriteFile(file, input.Data, 0o644); err != nil {
		return nil, errors.Wrapf(err, "failed to write catalog %s", p)
	}

	return &PutOutput{Path: p}, nil
}

func isDocument(file string) bool {
	ext := strings.ToLower(filepath.Ext(file))
	for _, candidate := range entities.Extensions {
		if ext == candidate {
			return true
		}
	}
	return false
}
