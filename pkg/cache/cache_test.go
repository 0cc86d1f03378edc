package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pmkol/collections-x/pkg/cache/mem_cache"
)

func newTestCache(t *testing.T, reg prometheus.Registerer) *Cache {
	t.Helper()
	c, err := New(Opts{
		Backend:    mem_cache.NewMemCache(1024, 0),
		TTL:        time.Minute,
		MetricsReg: reg,
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func Test_cache_loadThrough(t *testing.T) {
	c := newTestCache(t, nil)

	loads := 0
	load := func(_ context.Context) ([]byte, error) {
		loads++
		return []byte("v"), nil
	}

	for i := 0; i < 3; i++ {
		v, err := c.Get(context.Background(), "k", load)
		if err != nil {
			t.Fatal(err)
		}
		if string(v) != "v" {
			t.Fatalf("got %q", v)
		}
	}
	if loads != 1 {
		t.Fatalf("want 1 load, got %d", loads)
	}
	if c.Len() != 1 {
		t.Fatalf("want 1 entry, got %d", c.Len())
	}
}

func Test_cache_loadDedup(t *testing.T) {
	c := newTestCache(t, nil)

	var loads int32
	load := func(_ context.Context) ([]byte, error) {
		atomic.AddInt32(&loads, 1)
		time.Sleep(time.Millisecond * 50)
		return []byte("v"), nil
	}

	wg := sync.WaitGroup{}
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := c.Get(context.Background(), "k", load)
			if err != nil || string(v) != "v" {
				t.Errorf("got %q, %v", v, err)
			}
		}()
	}
	wg.Wait()

	if n := atomic.LoadInt32(&loads); n != 1 {
		t.Fatalf("want 1 shared load, got %d", n)
	}
}

func Test_cache_loadError(t *testing.T) {
	c := newTestCache(t, nil)

	wantErr := errors.New("load failed")
	_, err := c.Get(context.Background(), "k", func(_ context.Context) ([]byte, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("got %v", err)
	}
	if c.Len() != 0 {
		t.Fatal("failed load was stored")
	}
}

func Test_cache_ctxCancel(t *testing.T) {
	c := newTestCache(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Get(ctx, "k", func(_ context.Context) ([]byte, error) {
		time.Sleep(time.Second)
		return []byte("v"), nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v", err)
	}
}

func Test_cache_metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := newTestCache(t, reg)

	load := func(_ context.Context) ([]byte, error) { return []byte("v"), nil }
	c.Get(context.Background(), "k", load) // miss
	c.Get(context.Background(), "k", load) // hit

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	got := map[string]float64{}
	for _, mf := range mfs {
		got[mf.GetName()] = mf.GetMetric()[0].GetCounter().GetValue()
	}
	if got["hit_total"] != 1 || got["miss_total"] != 1 {
		t.Fatalf("unexpected counters %v", got)
	}

	// Registering the same names twice must fail.
	if _, err := New(Opts{Backend: mem_cache.NewMemCache(16, 0), MetricsReg: reg}); err == nil {
		t.Fatal("duplicate registration did not fail")
	}
}

func Test_cache_nilBackend(t *testing.T) {
	if _, err := New(Opts{}); err == nil {
		t.Fatal("nil backend accepted")
	}
}

func Test_parseArgs(t *testing.T) {
	args, err := ParseArgs([]byte("size: 4096\nttl: 10\nredis_timeout: 20\n"))
	if err != nil {
		t.Fatal(err)
	}
	if args.Size != 4096 || args.TTL != 10 || args.RedisTimeout != 20 {
		t.Fatalf("unexpected args %+v", args)
	}
	if args.CleanerInterval != 60 {
		t.Fatalf("default cleaner interval not applied: %d", args.CleanerInterval)
	}

	if _, err := ParseArgs([]byte("size: [")); err == nil {
		t.Fatal("invalid yaml accepted")
	}
}

func Test_newBackend(t *testing.T) {
	b, err := NewBackend(&Args{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()
	if _, ok := b.(*mem_cache.MemCache); !ok {
		t.Fatalf("unexpected backend %T", b)
	}

	if _, err := NewBackend(&Args{Redis: "://bad"}, nil); err == nil {
		t.Fatal("invalid redis url accepted")
	}
}
