package concurrent_lru

import (
	"hash/maphash"
	"sync"

	"github.com/pmkol/collections-x/pkg/lru"
)

type ShardedLRU[K comparable, V any] struct {
	seed maphash.Seed
	l    []*ConcurrentLRU[K, V]
	mask uint64 // shardNum - 1 (shardNum must be power of 2)
}

func NewShardedLRU[K comparable, V any](
	shardNum, maxSizePerShard int,
	onEvict func(key K, v V),
) *ShardedLRU[K, V] {

	if shardNum <= 0 || shardNum&(shardNum-1) != 0 {
		panic("shardNum must be a power of 2 and > 0")
	}

	cl := &ShardedLRU[K, V]{
		seed: maphash.MakeSeed(),
		l:    make([]*ConcurrentLRU[K, V], shardNum),
		mask: uint64(shardNum - 1),
	}

	for i := range cl.l {
		cl.l[i] = &ConcurrentLRU[K, V]{
			lru: lru.NewLRU[K, V](maxSizePerShard, onEvict),
		}
	}

	return cl
}

func (c *ShardedLRU[K, V]) getShard(key K) *ConcurrentLRU[K, V] {
	h := maphash.Comparable(c.seed, key)
	return c.l[int(h&c.mask)]
}

func (c *ShardedLRU[K, V]) Add(key K, v V) {
	c.getShard(key).Add(key, v)
}

func (c *ShardedLRU[K, V]) Del(key K) {
	c.getShard(key).Del(key)
}

func (c *ShardedLRU[K, V]) Get(key K) (v V, ok bool) {
	return c.getShard(key).Get(key)
}

func (c *ShardedLRU[K, V]) Clean(f func(key K, v V) bool) (removed int) {
	for _, shard := range c.l {
		removed += shard.Clean(f)
	}
	return
}

func (c *ShardedLRU[K, V]) Len() int {
	sum := 0
	for _, shard := range c.l {
		sum += shard.Len()
	}
	return sum
}

// -----------------------------

type ConcurrentLRU[K comparable, V any] struct {
	sync.Mutex
	lru *lru.LRU[K, V]
}

func NewConcurrentLRU[K comparable, V any](
	maxSize int,
	onEvict func(key K, v V),
) *ConcurrentLRU[K, V] {
	return &ConcurrentLRU[K, V]{
		lru: lru.NewLRU[K, V](maxSize, onEvict),
	}
}

func (c *ConcurrentLRU[K, V]) Add(key K, v V) {
	c.Lock()
	c.lru.Add(key, v)
	c.Unlock()
}

func (c *ConcurrentLRU[K, V]) Del(key K) {
	c.Lock()
	c.lru.Del(key)
	c.Unlock()
}

func (c *ConcurrentLRU[K, V]) Get(key K) (v V, ok bool) {
	c.Lock()
	v, ok = c.lru.Get(key)
	c.Unlock()
	return
}

func (c *ConcurrentLRU[K, V]) Clean(f func(key K, v V) bool) (removed int) {
	c.Lock()
	removed = c.lru.Clean(f)
	c.Unlock()
	return
}

func (c *ConcurrentLRU[K, V]) Len() int {
	c.Lock()
	n := c.lru.Len()
	c.Unlock()
	return n
}
