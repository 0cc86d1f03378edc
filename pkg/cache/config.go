package cache

import (
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/pmkol/collections-x/pkg/cache/mem_cache"
	"github.com/pmkol/collections-x/pkg/cache/redis_cache"
)

type Args struct {
	Size            int    `yaml:"size"`
	TTL             int    `yaml:"ttl"`              // in seconds
	CleanerInterval int    `yaml:"cleaner_interval"` // in seconds
	Redis           string `yaml:"redis"`            // redis url, empty means in-memory backend
	RedisTimeout    int    `yaml:"redis_timeout"`    // in milliseconds
}

func (a *Args) Init() {
	if a.Size <= 0 {
		a.Size = 1024
	}
	if a.TTL <= 0 {
		a.TTL = 300
	}
	if a.CleanerInterval <= 0 {
		a.CleanerInterval = 60
	}
}

// ParseArgs unmarshals yaml-encoded Args and applies defaults.
func ParseArgs(b []byte) (*Args, error) {
	args := new(Args)
	if err := yaml.Unmarshal(b, args); err != nil {
		return nil, fmt.Errorf("failed to parse args, %w", err)
	}
	args.Init()
	return args, nil
}

// NewBackend builds the Backend described by args: a redis backend if
// args.Redis is set, an in-memory one otherwise. A nil logger disables
// backend logging.
func NewBackend(args *Args, logger *zap.Logger) (Backend, error) {
	args.Init()

	if len(args.Redis) > 0 {
		opt, err := redis.ParseURL(args.Redis)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url, %w", err)
		}
		opt.MaxRetries = -1
		r := redis.NewClient(opt)
		rc, err := redis_cache.NewRedisCache(redis_cache.RedisCacheOpts{
			Client:        r,
			ClientCloser:  r,
			ClientTimeout: time.Duration(args.RedisTimeout) * time.Millisecond,
			Logger:        logger,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to init redis cache, %w", err)
		}
		return rc, nil
	}

	return mem_cache.NewMemCache(args.Size, time.Duration(args.CleanerInterval)*time.Second), nil
}
