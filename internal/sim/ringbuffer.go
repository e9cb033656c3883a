package sim

import "sync/atomic"

const cacheLineSize = 64

// padding keeps head/tail on separate cache lines, preventing false sharing
// between the producer and the consumer.
type padding [cacheLineSize]byte

// RingBuffer is a single-producer/single-consumer lock-free ring, the
// realization of section 5's input contract: an external collector pushes
// InputSnapshot values, the tick loop drains to the most recent one and
// discards any backlog, since only the latest input matters to a fixed-rate
// simulation.
type RingBuffer[T any] struct {
	_pad0 padding
	head  uint64
	_pad1 padding
	tail  uint64
	_pad2 padding
	mask  uint64
	data  []T
}

// NewRingBuffer returns a ring sized to the next power of two >= capacity.
func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	size := 1
	for size < capacity {
		size <<= 1
	}
	return &RingBuffer[T]{
		mask: uint64(size - 1),
		data: make([]T, size),
	}
}

// TryPush is producer-only: push one value, reporting false if full.
func (r *RingBuffer[T]) TryPush(item T) bool {
	head := atomic.LoadUint64(&r.head)
	tail := atomic.LoadUint64(&r.tail)
	if head-tail > r.mask {
		return false
	}
	r.data[head&r.mask] = item
	atomic.StoreUint64(&r.head, head+1)
	return true
}

// TryPop is consumer-only: pop the oldest value, reporting false if empty.
func (r *RingBuffer[T]) TryPop() (T, bool) {
	var zero T
	tail := atomic.LoadUint64(&r.tail)
	head := atomic.LoadUint64(&r.head)
	if tail >= head {
		return zero, false
	}
	item := r.data[tail&r.mask]
	atomic.StoreUint64(&r.tail, tail+1)
	return item, true
}

// DrainLatest discards every buffered value except the most recent, which
// is what the tick loop wants from an input ring: this tick's sample, not a
// queued backlog of stale ones.
func (r *RingBuffer[T]) DrainLatest() (T, bool) {
	var latest T
	var ok bool
	for {
		v, has := r.TryPop()
		if !has {
			break
		}
		latest, ok = v, true
	}
	return latest, ok
}

// Len returns the approximate number of buffered values.
func (r *RingBuffer[T]) Len() int {
	head := atomic.LoadUint64(&r.head)
	tail := atomic.LoadUint64(&r.tail)
	if head < tail {
		return 0
	}
	return int(head - tail)
}
