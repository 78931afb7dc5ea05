// Package history keeps a sliding window of recent temperature values
// with running min/peak bookkeeping, backing the dashboard sparkline.
package history

import "math"

// Buffer stores a bounded window of temperature values.
type Buffer struct {
	values []float64
	max    int
	min    float64
	peak   float64
}

// NewBuffer creates a buffer holding at most capacity values.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{
		values: make([]float64, 0, capacity),
		max:    capacity,
		min:    math.MaxFloat64,
		peak:   -math.MaxFloat64,
	}
}

// Push appends a value, evicting the oldest when full.
func (b *Buffer) Push(v float64) {
	if len(b.values) >= b.max {
		copy(b.values, b.values[1:])
		b.values[len(b.values)-1] = v
	} else {
		b.values = append(b.values, v)
	}

	if v < b.min {
		b.min = v
	}
	if v > b.peak {
		b.peak = v
	}
}

// Values returns the stored window, oldest first. The returned slice is
// the buffer's own backing storage; callers must not mutate it.
func (b *Buffer) Values() []float64 {
	return b.values
}

// Len returns the number of stored values.
func (b *Buffer) Len() int {
	return len(b.values)
}

// Min returns the lowest value ever pushed, including evicted ones.
func (b *Buffer) Min() float64 {
	return b.min
}

// Peak returns the highest value ever pushed, including evicted ones.
func (b *Buffer) Peak() float64 {
	return b.peak
}
