// Package cache provides a byte-value TTL cache behind a pluggable
// Backend, with a loader front that deduplicates concurrent misses.
package cache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/singleflight"
)

type Backend interface {
	// Get returns the cached value.
	// Returns:
	//   v: stored bytes, owned by the backend; callers must not modify
	//   storedTime: Unix timestamp in SECONDS when the entry was stored
	//   ok: false if not found or expired
	Get(key string) (v []byte, storedTime int64, ok bool)

	// Store caches v until expire, a Unix timestamp in NANOSECONDS.
	// Backends copy v.
	Store(key string, v []byte, expire int64)

	Len() int

	io.Closer
}

type Opts struct {
	// Backend cannot be nil.
	Backend Backend

	// TTL is how long loaded values stay valid. Default is 5 minutes.
	TTL time.Duration

	// MetricsReg registers hit_total, miss_total and load_error_total.
	// Callers usually wrap it with prometheus.WrapRegistererWithPrefix.
	// Optional.
	MetricsReg prometheus.Registerer
}

func (opts *Opts) Init() error {
	if opts.Backend == nil {
		return errors.New("nil backend")
	}
	if opts.TTL <= 0 {
		opts.TTL = time.Minute * 5
	}
	return nil
}

// Cache wraps a Backend with a load-through Get. Concurrent misses on
// the same key share a single loader call.
type Cache struct {
	opts   Opts
	loadSF singleflight.Group

	hitTotal     prometheus.Counter
	missTotal    prometheus.Counter
	loadErrTotal prometheus.Counter
}

func New(opts Opts) (*Cache, error) {
	if err := opts.Init(); err != nil {
		return nil, err
	}

	c := &Cache{
		opts: opts,
		hitTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hit_total",
			Help: "Total number of backend hits",
		}),
		missTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "miss_total",
			Help: "Total number of backend misses",
		}),
		loadErrTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "load_error_total",
			Help: "Total number of loader errors",
		}),
	}

	if reg := opts.MetricsReg; reg != nil {
		for _, collector := range []prometheus.Collector{c.hitTotal, c.missTotal, c.loadErrTotal} {
			if err := reg.Register(collector); err != nil {
				return nil, fmt.Errorf("failed to register metrics, %w", err)
			}
		}
	}

	return c, nil
}

// Get returns the value for key, calling load on a miss and storing the
// result. The returned slice is the caller's to keep.
func (c *Cache) Get(ctx context.Context, key string, load func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	if v, _, ok := c.opts.Backend.Get(key); ok {
		c.hitTotal.Inc()
		b := make([]byte, len(v))
		copy(b, v)
		return b, nil
	}
	c.missTotal.Inc()

	resChan := c.loadSF.DoChan(key, func() (interface{}, error) {
		v, err := load(ctx)
		if err != nil {
			return nil, err
		}
		c.opts.Backend.Store(key, v, time.Now().Add(c.opts.TTL).UnixNano())
		return v, nil
	})

	select {
	case res := <-resChan:
		if res.Err != nil {
			c.loadErrTotal.Inc()
			return nil, res.Err
		}
		v := res.Val.([]byte)
		if res.Shared {
			b := make([]byte, len(v))
			copy(b, v)
			return b, nil
		}
		return v, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Store caches v for the cache's TTL without going through a loader.
func (c *Cache) Store(key string, v []byte) {
	c.opts.Backend.Store(key, v, time.Now().Add(c.opts.TTL).UnixNano())
}

func (c *Cache) Len() int {
	return c.opts.Backend.Len()
}

func (c *Cache) Close() error {
	return c.opts.Backend.Close()
}
