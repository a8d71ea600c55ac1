package engine

import (
	"sync"
	"time"
)

// FrameTimingBuffer is a ring buffer of recent painted frame durations.
type FrameTimingBuffer struct {
	mu       sync.RWMutex
	samples  []time.Duration
	index    int
	capacity int
	count    int
}

// NewFrameTimingBuffer creates a buffer holding up to capacity samples.
func NewFrameTimingBuffer(capacity int) *FrameTimingBuffer {
	if capacity <= 0 {
		capacity = 60
	}
	return &FrameTimingBuffer{
		samples:  make([]time.Duration, capacity),
		capacity: capacity,
	}
}

// Add records a frame duration, overwriting the oldest when full.
func (b *FrameTimingBuffer) Add(duration time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.samples[b.index] = duration
	b.index = (b.index + 1) % b.capacity
	if b.count < b.capacity {
		b.count++
	}
}

// Samples returns a copy of the samples, oldest first.
func (b *FrameTimingBuffer) Samples() []time.Duration {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.count == 0 {
		return nil
	}
	result := make([]time.Duration, b.count)
	if b.count < b.capacity {
		copy(result, b.samples[:b.count])
	} else {
		// Full: the oldest sample sits at index.
		copy(result, b.samples[b.index:])
		copy(result[b.capacity-b.index:], b.samples[:b.index])
	}
	return result
}

// Count returns the number of samples held.
func (b *FrameTimingBuffer) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.count
}

// Average returns the mean of the held samples, or zero when empty.
func (b *FrameTimingBuffer) Average() time.Duration {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.count == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range b.samples[:b.count] {
		total += d
	}
	return total / time.Duration(b.count)
}
