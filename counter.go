package hashset

import (
	"sync/atomic"
	"unsafe"
)

// counterStripe is one shard of a striped size counter. Padding it to
// a cache line keeps concurrent increments to different stripes from
// bouncing the same cache line between cores.
type counterStripe struct {
	//lint:ignore U1000 prevents false sharing
	pad [(CacheLineSize - unsafe.Sizeof(struct{ c int64 }{})%CacheLineSize) % CacheLineSize]byte
	c   int64
}

// stripedCounter tracks the number of elements in a set as a small
// array of independently-updated counters, one per stripe, so that
// writers touching different stripes never contend on the same word.
// Size() sums every shard; this is a snapshot, not a linearized
// quantity, matching spec.md's open question about Size's weak
// synchronization in the striped and refinable variants.
type stripedCounter struct {
	shards []counterStripe
}

func newStripedCounter(n int) *stripedCounter {
	return &stripedCounter{shards: make([]counterStripe, n)}
}

func (c *stripedCounter) add(shard int, delta int64) {
	atomic.AddInt64(&c.shards[shard%len(c.shards)].c, delta)
}

func (c *stripedCounter) sum() int64 {
	var total int64
	for i := range c.shards {
		total += atomic.LoadInt64(&c.shards[i].c)
	}
	return total
}
