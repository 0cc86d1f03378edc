package mem_cache

import (
	"sync/atomic"
	"time"

	"github.com/pmkol/collections-x/pkg/concurrent_lru"
)

const (
	shardNum               = 64
	defaultCleanerInterval = time.Minute
)

// MemCache is an in-memory TTL cache over a sharded LRU. Capacity
// overflow evicts least recently used entries, the cleaner goroutine
// drops expired ones.
type MemCache struct {
	closed           uint32
	closeCleanerChan chan struct{}
	lru              *concurrent_lru.ShardedLRU[string, *elem]
}

type elem struct {
	v          []byte
	storedTime int64 // Unix second
	expire     int64 // Unix nano
}

func NewMemCache(size int, cleanerInterval time.Duration) *MemCache {
	sizePerShard := size / shardNum
	if sizePerShard < 16 {
		sizePerShard = 16
	}
	c := &MemCache{
		closeCleanerChan: make(chan struct{}),
		lru:              concurrent_lru.NewShardedLRU[string, *elem](shardNum, sizePerShard, nil),
	}

	if cleanerInterval > 0 {
		go c.startCleaner(cleanerInterval)
	}
	return c
}

func (c *MemCache) isClosed() bool {
	return atomic.LoadUint32(&c.closed) != 0
}

func (c *MemCache) Close() error {
	if atomic.CompareAndSwapUint32(&c.closed, 0, 1) {
		close(c.closeCleanerChan)
	}
	return nil
}

func (c *MemCache) Get(key string) (v []byte, storedTime int64, ok bool) {
	if c.isClosed() {
		return nil, 0, false
	}

	e, found := c.lru.Get(key)
	if !found {
		return nil, 0, false
	}

	if time.Now().UnixNano() > e.expire {
		return nil, 0, false
	}
	return e.v, e.storedTime, true
}

func (c *MemCache) Store(key string, v []byte, expire int64) {
	if c.isClosed() {
		return
	}
	if expire <= time.Now().UnixNano() {
		return
	}

	// Copy so the backend owns the memory.
	buf := make([]byte, len(v))
	copy(buf, v)

	c.lru.Add(key, &elem{
		v:          buf,
		storedTime: time.Now().Unix(),
		expire:     expire,
	})
}

func (c *MemCache) startCleaner(interval time.Duration) {
	if interval <= 0 {
		interval = defaultCleanerInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.closeCleanerChan:
			return
		case <-ticker.C:
			now := time.Now().UnixNano()
			c.lru.Clean(func(_ string, e *elem) bool {
				return e.expire <= now
			})
		}
	}
}

func (c *MemCache) Len() int {
	return c.lru.Len()
}
