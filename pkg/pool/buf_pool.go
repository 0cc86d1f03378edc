package pool

import (
	"fmt"
	"math/bits"
	"sync"
)

// defaultBufPool has 1 << 30 (1GB) max buffer size.
var defaultBufPool = newBufPool(30)

// GetBuf returns a *Buffer with at least size bytes of capacity, sliced
// to size. The caller MUST call Release after use.
func GetBuf(size int) *Buffer {
	return defaultBufPool.get(size)
}

type Buffer struct {
	b []byte
	p *sync.Pool
}

func (buf *Buffer) Bytes() []byte {
	return buf.b
}

func (buf *Buffer) Len() int {
	return len(buf.b)
}

// Release returns the underlying memory to the pool.
// After calling Release, the caller MUST NOT access the buffer.
func (buf *Buffer) Release() {
	if buf.p != nil {
		buf.p.Put(buf.b[:cap(buf.b)])
	}
}

// bufPool keeps one sync.Pool per power-of-2 size class.
type bufPool struct {
	maxLen int
	pools  []sync.Pool
}

func newBufPool(maxBitsLen int) *bufPool {
	p := &bufPool{
		maxLen: 1 << maxBitsLen,
		pools:  make([]sync.Pool, maxBitsLen+1),
	}
	for i := range p.pools {
		c := 1 << i
		p.pools[i].New = func() interface{} {
			return make([]byte, c)
		}
	}
	return p
}

func (p *bufPool) get(size int) *Buffer {
	if size < 0 {
		panic(fmt.Sprintf("invalid buffer size: %d", size))
	}
	if size == 0 || size > p.maxLen {
		// Out of pooled range, plain allocation.
		return &Buffer{b: make([]byte, size)}
	}

	i := shard(size)
	b := p.pools[i].Get().([]byte)
	return &Buffer{b: b[:size], p: &p.pools[i]}
}

// shard returns the index of the smallest size class holding size bytes.
func shard(size int) int {
	return bits.Len(uint(size - 1))
}
