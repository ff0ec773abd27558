// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import (
	"fmt"
	"math"

	"code.hybscloud.com/atomix"
	"golang.org/x/sys/cpu"
)

// Fifo is a single-producer single-consumer circular byte buffer holding
// a power-of-2 number of fixed-size elements.
//
// The producer copies whole elements in with Put and the consumer copies
// them out with Get or Peek. A transfer moves as many elements as fit or
// are available, possibly zero, and never blocks.
//
// Cursors are free-running counters. in-out is the number of stored
// elements and never exceeds Cap. The producer publishes in with a release
// store after the payload copy, and the consumer acquires in before copying
// out. out is published and acquired the same way in the other direction,
// so the producer never overwrites bytes the consumer is still reading.
//
// The zero value is an unusable Fifo with capacity 0; initialize it with
// Init or Alloc, or use NewFifo, AllocFifo or Builder.BuildFifo.
type Fifo struct {
	_         cpu.CacheLinePad
	in        atomix.Uint64 // Producer writes here
	_         cpu.CacheLinePad
	cachedOut uint64 // Producer's cached view of out
	_         cpu.CacheLinePad
	out       atomix.Uint64 // Consumer reads from here
	_         cpu.CacheLinePad
	cachedIn  uint64 // Consumer's cached view of in
	_         cpu.CacheLinePad
	data      []byte // size*esize bytes
	mem       []byte // slice returned by allocator, nil for borrowed storage
	size      uint64 // capacity in elements, 0 if unusable
	mask      uint64
	esize     uint64
	allocator Allocator // nil for borrowed storage
}

// NewFifo creates a Fifo over caller-owned storage. See [Fifo.Init].
func NewFifo(buf []byte, elemSize int) (*Fifo, error) {
	f := &Fifo{}
	if _, err := f.Init(buf, elemSize); err != nil {
		return nil, err
	}
	return f, nil
}

// AllocFifo creates a Fifo owning heap storage. See [Fifo.Alloc].
func AllocFifo(capacity, elemSize int) (*Fifo, error) {
	f := &Fifo{}
	if _, err := f.Alloc(capacity, elemSize); err != nil {
		return nil, err
	}
	return f, nil
}

// Init prepares f to use buf as its storage. The caller keeps ownership
// of buf, which must outlive f and must not be touched while f is in use.
//
// The capacity is len(buf)/elemSize elements rounded down to a power of 2;
// trailing bytes of buf are left unused. Init returns the effective
// capacity, or ErrInvalidConfig if it would be below 2, in which case f
// is left with capacity 0.
//
// Init must only be called on a zero or freed Fifo.
func (f *Fifo) Init(buf []byte, elemSize int) (int, error) {
	f.reset()
	if elemSize <= 0 {
		return 0, fmt.Errorf("%w: element size %d", ErrInvalidConfig, elemSize)
	}
	n, err := fifoCapacity(len(buf) / elemSize)
	if err != nil {
		return 0, err
	}
	f.setStorage(buf[:n*uint64(elemSize)], n, uint64(elemSize), nil)
	return int(n), nil
}

// Alloc prepares f with capacity elements of owned heap storage.
//
// capacity rounds down to a power of 2. Alloc returns the effective
// capacity, ErrInvalidConfig if it would be below 2, or ErrAllocFailed
// if the storage cannot be obtained. On error f is left with capacity 0.
//
// Alloc must only be called on a zero or freed Fifo. Release the storage
// with Free.
func (f *Fifo) Alloc(capacity, elemSize int) (int, error) {
	return f.alloc(capacity, elemSize, nil)
}

func (f *Fifo) alloc(capacity, elemSize int, a Allocator) (int, error) {
	f.reset()
	if elemSize <= 0 {
		return 0, fmt.Errorf("%w: element size %d", ErrInvalidConfig, elemSize)
	}
	n, err := fifoCapacity(capacity)
	if err != nil {
		return 0, err
	}
	if uint64(elemSize) > math.MaxInt/n {
		return 0, fmt.Errorf("%w: %d elements of %d bytes overflow", ErrAllocFailed, n, elemSize)
	}
	if a == nil {
		a = HeapAllocator{}
	}
	want := int(n) * elemSize
	mem, err := a.Alloc(want)
	if err != nil {
		return 0, err
	}
	if len(mem) < want {
		err = fmt.Errorf("%w: allocator returned %d of %d bytes", ErrAllocFailed, len(mem), want)
		if ferr := a.Free(mem); ferr != nil {
			err = fmt.Errorf("%w; free: %w", err, ferr)
		}
		return 0, err
	}
	f.setStorage(mem[:want], n, uint64(elemSize), a)
	f.mem = mem
	return int(n), nil
}

// Free releases storage obtained by Alloc and leaves f with capacity 0.
// Borrowed storage from Init is not touched. Calling Free on a freed or
// zero Fifo does nothing.
//
// Free must not run concurrently with any other method.
func (f *Fifo) Free() error {
	var err error
	if f.allocator != nil && f.mem != nil {
		err = f.allocator.Free(f.mem)
	}
	f.reset()
	return err
}

func (f *Fifo) setStorage(buf []byte, n, esize uint64, a Allocator) {
	f.data = buf
	f.size = n
	f.mask = n - 1
	f.esize = esize
	f.allocator = a
}

func (f *Fifo) reset() {
	f.in.StoreRelaxed(0)
	f.out.StoreRelaxed(0)
	f.cachedIn, f.cachedOut = 0, 0
	f.data, f.mem = nil, nil
	f.size, f.mask, f.esize = 0, 0, 0
	f.allocator = nil
}

// Cap returns the capacity in elements. 0 means f is unusable.
func (f *Fifo) Cap() int {
	return int(f.size)
}

// ElemSize returns the number of bytes per element.
func (f *Fifo) ElemSize() int {
	return int(f.esize)
}

// Owned reports whether f releases its storage on Free.
func (f *Fifo) Owned() bool {
	return f.allocator != nil
}

// Len returns the number of stored elements.
// The value may be stale by the time it is used when called by the producer.
func (f *Fifo) Len() int {
	return int(f.used())
}

// Unused returns the number of free element slots.
// The value may be stale by the time it is used when called by the consumer.
func (f *Fifo) Unused() int {
	return int(f.size - f.used())
}

// IsEmpty reports whether no elements are stored.
func (f *Fifo) IsEmpty() bool {
	return f.used() == 0
}

// IsFull reports whether no free slots remain.
func (f *Fifo) IsFull() bool {
	return f.used() == f.size
}

// used loads out before in so that in-out cannot underflow. The producer
// may advance in between the two loads, so the result is clamped to size.
func (f *Fifo) used() uint64 {
	out := f.out.LoadAcquire()
	in := f.in.LoadAcquire()
	return min(in-out, f.size)
}

// Put copies whole elements from src into f (producer only).
// It transfers min(len(src)/ElemSize(), Unused()) elements and returns
// that count; 0 means f is full or src holds less than one element.
func (f *Fifo) Put(src []byte) int {
	if f.size == 0 {
		return 0
	}
	n := uint64(len(src)) / f.esize
	in := f.in.LoadRelaxed()
	if free := f.size - (in - f.cachedOut); n > free {
		f.cachedOut = f.out.LoadAcquire()
		n = min(n, f.size-(in-f.cachedOut))
	}
	if n == 0 {
		return 0
	}

	f.copyRange(src, n, in, intoBuffer)
	f.in.StoreRelease(in + n)
	return int(n)
}

// Peek copies whole elements from f into dst without consuming them
// (consumer only). It transfers min(len(dst)/ElemSize(), Len()) elements
// and returns that count.
func (f *Fifo) Peek(dst []byte) int {
	n, _ := f.peek(dst)
	return int(n)
}

// Get copies whole elements from f into dst and consumes them
// (consumer only). It transfers min(len(dst)/ElemSize(), Len()) elements
// and returns that count; 0 means f is empty or dst is shorter than one
// element.
func (f *Fifo) Get(dst []byte) int {
	n, out := f.peek(dst)
	if n > 0 {
		f.out.StoreRelease(out + n)
	}
	return int(n)
}

func (f *Fifo) peek(dst []byte) (n, out uint64) {
	if f.size == 0 {
		return 0, 0
	}
	n = uint64(len(dst)) / f.esize
	out = f.out.LoadRelaxed()
	if n > f.cachedIn-out {
		f.cachedIn = f.in.LoadAcquire()
		n = min(n, f.cachedIn-out)
	}
	if n > 0 {
		f.copyRange(dst, n, out, outOfBuffer)
	}
	return n, out
}

// Skip consumes up to count elements without copying them
// (consumer only). Returns the number of elements discarded.
func (f *Fifo) Skip(count int) int {
	if f.size == 0 || count <= 0 {
		return 0
	}
	n := uint64(count)
	out := f.out.LoadRelaxed()
	if n > f.cachedIn-out {
		f.cachedIn = f.in.LoadAcquire()
		n = min(n, f.cachedIn-out)
	}
	if n > 0 {
		f.out.StoreRelease(out + n)
	}
	return int(n)
}

// ResetOut discards every element currently visible to the consumer
// (consumer only). Safe while the producer keeps writing.
func (f *Fifo) ResetOut() {
	f.cachedIn = f.in.LoadAcquire()
	f.out.StoreRelease(f.cachedIn)
}

// Reset empties f and rewinds both cursors to 0.
// Neither the producer nor the consumer may be active during Reset.
func (f *Fifo) Reset() {
	f.in.StoreRelaxed(0)
	f.out.StoreRelaxed(0)
	f.cachedIn, f.cachedOut = 0, 0
}

type direction bool

const (
	intoBuffer  direction = true
	outOfBuffer direction = false
)

// copyRange copies n elements between p and the logical range of f that
// starts at cursor off. When the range crosses the end of f.data the copy
// is split in two, the remainder continuing from byte 0.
func (f *Fifo) copyRange(p []byte, n, off uint64, dir direction) {
	size := f.size * f.esize
	off = (off & f.mask) * f.esize
	n *= f.esize
	l := min(n, size-off)

	if dir == intoBuffer {
		copy(f.data[off:off+l], p[:l])
		copy(f.data[:n-l], p[l:n])
		return
	}
	copy(p[:l], f.data[off:off+l])
	copy(p[l:n], f.data[:n-l])
}
