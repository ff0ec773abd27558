// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import "fmt"

// Options configures buffer creation.
type Options struct {
	// Requested capacity in elements (Fifo) or slots (Ring)
	capacity int

	// Bytes per element, Fifo only
	elemSize int

	// Storage source for owned Fifo buffers
	allocator Allocator
}

// Builder creates buffers with fluent configuration.
//
// Example:
//
//	// 64 four-byte samples backed by an anonymous mapping
//	f, err := spsc.New(100).ElemSize(4).Allocator(spsc.MmapAllocator{}).BuildFifo()
//	// f.Cap() == 64
//
//	// Ring of 1024 slots, 1023 usable
//	r, err := spsc.BuildRing[Request](spsc.New(1024))
type Builder struct {
	opts Options
}

// New creates a builder with the given capacity.
//
// For a Fifo the capacity is a hint and rounds down to a power of 2.
// For a Ring the capacity must already be a power of 2.
// Invalid values are reported by the Build functions, never by New.
func New(capacity int) *Builder {
	return &Builder{opts: Options{capacity: capacity, elemSize: 1}}
}

// ElemSize sets the number of bytes per Fifo element. The default is 1.
func (b *Builder) ElemSize(n int) *Builder {
	b.opts.elemSize = n
	return b
}

// Allocator sets the storage source for the Fifo buffer.
// The default is HeapAllocator.
func (b *Builder) Allocator(a Allocator) *Builder {
	b.opts.allocator = a
	return b
}

// BuildFifo creates a Fifo owning storage obtained from the configured
// Allocator. See [Fifo.Alloc] for the rounding and error rules.
func (b *Builder) BuildFifo() (*Fifo, error) {
	f := &Fifo{}
	if _, err := f.alloc(b.opts.capacity, b.opts.elemSize, b.opts.allocator); err != nil {
		return nil, err
	}
	return f, nil
}

// BuildRing creates a Ring with the builder's capacity.
// Returns ErrInvalidConfig if the capacity is not a power of 2 >= 2.
// ElemSize and Allocator do not apply to rings and are ignored.
func BuildRing[T any](b *Builder) (*Ring[T], error) {
	return NewRing[T](b.opts.capacity)
}

// maxCapacity bounds element and slot counts to half of the 32-bit index
// range, so the distance between producer and consumer cursors never
// becomes ambiguous.
const maxCapacity uint64 = 1 << 31

// isPow2 reports whether n is a power of 2.
func isPow2(n uint64) bool {
	return n != 0 && n&(n-1) == 0
}

// roundDownPow2 rounds n down to the previous power of 2.
// Returns 0 for n == 0.
func roundDownPow2(n uint64) uint64 {
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n - n>>1
}

// fifoCapacity converts a requested element count into the effective
// power-of-2 capacity, clamped to maxCapacity.
func fifoCapacity(n int) (uint64, error) {
	if n < 2 {
		return 0, fmt.Errorf("%w: capacity %d rounds below 2", ErrInvalidConfig, n)
	}
	c := roundDownPow2(uint64(n))
	if c > maxCapacity {
		c = maxCapacity
	}
	return c, nil
}
