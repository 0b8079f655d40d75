package catalog

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"

	entities "github.com/KirkDiggler/rpg-catalog/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-catalog/internal/errors"
	"github.com/KirkDiggler/rpg-catalog/internal/pkg/clock"
	catalogrepo "github.com/KirkDiggler/rpg-catalog/internal/repositories/catalog"
)

// Config configures the cached store
type Config struct {
	Repository catalogrepo.Repository
	Clock      clock.Clock
	Logger     *slog.Logger
}

// Validate checks the config
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	return vb.Build()
}

// entry is a cached lookup. A nil doc records a missing or malformed file so
// repeated lookups do not go back to the source.
type entry struct {
	doc *entities.Document
}

type cachedStore struct {
	repo   catalogrepo.Repository
	clock  clock.Clock
	logger *slog.Logger

	cache sync.Map // normalized path -> *entry

	hits         atomic.Int64
	misses       atomic.Int64
	loadFailures atomic.Int64
}

// New creates a read-through Store over a repository
func New(cfg *Config) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &cachedStore{
		repo:   cfg.Repository,
		clock:  clk,
		logger: logger,
	}, nil
}

func (s *cachedStore) GetFile(ctx context.Context, path string) *entities.Document {
	key := catalogrepo.CleanPath(path)
	if key == "" {
		return nil
	}

	if cached, ok := s.cache.Load(key); ok {
		s.hits.Add(1)
		return cached.(*entry).doc
	}

	s.misses.Add(1)
	doc, cacheable := s.load(ctx, key)
	if cacheable {
		s.cache.Store(key, &entry{doc: doc})
	}
	return doc
}

// load reads and parses one document. cacheable is false for source errors
// that may be transient.
func (s *cachedStore) load(ctx context.Context, key string) (doc *entities.Document, cacheable bool) {
	out, err := s.repo.Get(ctx, catalogrepo.GetInput{Path: key})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, true
		}
		s.loadFailures.Add(1)
		s.logger.WarnContext(ctx, "failed to read catalog", "path", key, "error", err)
		return nil, false
	}

	doc, err = entities.ParseDocument(key, out.Data, out.Format, s.clock.Now())
	if err != nil {
		s.loadFailures.Add(1)
		s.logger.WarnContext(ctx, "malformed catalog", "path", key, "format", string(out.Format), "error", err)
		return nil, true
	}

	s.logger.DebugContext(ctx, "loaded catalog", "path", key, "domain", doc.Domain)
	return doc, true
}

func (s *cachedStore) LoadAll(ctx context.Context) (*LoadAllOutput, error) {
	list, err := s.repo.List(ctx, catalogrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list catalogs")
	}

	out := &LoadAllOutput{}
	for _, path := range list.Paths {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeCanceled, "load interrupted")
		}

		key := catalogrepo.CleanPath(path)
		doc, cacheable := s.load(ctx, key)
		if cacheable {
			s.cache.Store(key, &entry{doc: doc})
		}
		if doc == nil {
			out.Failed++
			continue
		}
		out.Loaded++
		out.Paths = append(out.Paths, key)
	}

	s.logger.InfoContext(ctx, "catalogs loaded", "loaded", out.Loaded, "failed", out.Failed)
	return out, nil
}

func (s *cachedStore) Invalidate(path string) {
	s.cache.Delete(catalogrepo.CleanPath(path))
}

func (s *cachedStore) InvalidateAll() {
	s.cache.Range(func(key, _ any) bool {
		s.cache.Delete(key)
		return true
	})
}

func (s *cachedStore) Stats() Stats {
	stats := Stats{
		Hits:         s.hits.Load(),
		Misses:       s.misses.Load(),
		LoadFailures: s.loadFailures.Load(),
	}

	domains := make(map[string]struct{})
	s.cache.Range(func(_, value any) bool {
		if doc := value.(*entry).doc; doc != nil {
			stats.CachedFiles++
			domains[doc.Domain] = struct{}{}
		}
		return true
	})

	stats.Domains = make([]string, 0, len(domains))
	for domain := range domains {
		stats.Domains = append(stats.Domains, domain)
	}
	sort.Strings(stats.Domains)
	return stats
}
