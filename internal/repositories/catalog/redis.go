package catalog

import (
	"context"
	"sort"
	"strings"

	redis "github.com/redis/go-redis/v9"

	entities "github.com/KirkDiggler/rpg-catalog/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-catalog/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-catalog/internal/redis"
)

const (
	defaultKeyPrefix = "catalog:"

	docKeySegment = "doc:"
	indexKey      = "index"

	fieldData   = "data"
	fieldFormat = "format"
)

// RedisConfig contains configuration for the Redis catalog repository
type RedisConfig struct {
	Client redisclient.Client
	// KeyPrefix defaults to "catalog:"
	KeyPrefix string
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	prefix string
}

// NewRedis creates a Redis backed catalog repository. Each document is a hash
// at <prefix>doc:<path> and <prefix>index is a set of every stored path.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &redisRepository{
		client: cfg.Client,
		prefix: prefix,
	}, nil
}

func (r *redisRepository) docKey(p string) string {
	return r.prefix + docKeySegment + p
}

func (r *redisRepository) indexKey() string {
	return r.prefix + indexKey
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	p, err := validatePath(input.Path)
	if err != nil {
		return nil, err
	}

	fields, err := r.client.HGetAll(ctx, r.docKey(p)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("catalog %s not found", p)
		}
		return nil, errors.Wrapf(err, "failed to get catalog %s", p)
	}

	data, ok := fields[fieldData]
	if !ok {
		return nil, errors.NotFoundf("catalog %s not found", p)
	}

	format := entities.Format(fields[fieldFormat])
	if format == "" {
		format = entities.FormatJSON
	}

	return &GetOutput{
		Path:   p,
		Data:   []byte(data),
		Format: format,
	}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	members, err := r.client.SMembers(ctx, r.indexKey()).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list catalogs")
	}

	prefix := NormalizePath(input.Prefix)
	paths := make([]string, 0, len(members))
	for _, member := range members {
		if prefix != "" && !strings.HasPrefix(member, prefix) {
			continue
		}
		paths = append(paths, member)
	}
	sort.Strings(paths)

	return &ListOutput{Paths: paths}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	p, err := validatePath(input.Path)
	if err != nil {
		return nil, err
	}
	if len(input.Data) == 0 {
		return nil, errors.InvalidArgument("data cannot be empty")
	}

	format := input.Format
	if format == "" {
		format = entities.FormatJSON
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, r.docKey(p), fieldData, input.Data, fieldFormat, string(format))
		pipe.SAdd(ctx, r.indexKey(), p)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store catalog %s", p)
	}

	return &PutOutput{Path: p}, nil
}
