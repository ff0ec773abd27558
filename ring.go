// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import (
	"fmt"

	"code.hybscloud.com/atomix"
	"golang.org/x/sys/cpu"
)

// Ring is a single-producer single-consumer queue of references.
//
// Ring moves pointers, never the values behind them: the producer hands
// over *T and the consumer receives the same pointer. One slot stays
// reserved so that head == tail means empty and head+1 == tail (mod
// capacity) means full; a Ring of capacity n holds at most n-1 elements.
//
// head and tail are masked slot indices. The producer stores the slot and
// then publishes head with a release store; the consumer acquires head
// before reading the slot. tail is published and acquired the same way so
// a slot is never overwritten before the consumer is done with it. Each
// side caches its view of the opposite index and reloads it only when the
// cached view says full or empty.
//
// Memory: capacity pointer slots plus a fixed padded header
type Ring[T any] struct {
	_          cpu.CacheLinePad
	head       atomix.Uint64 // Producer writes here
	_          cpu.CacheLinePad
	cachedTail uint64 // Producer's cached view of tail
	_          cpu.CacheLinePad
	tail       atomix.Uint64 // Consumer reads from here
	_          cpu.CacheLinePad
	cachedHead uint64 // Consumer's cached view of head
	_          cpu.CacheLinePad
	slots      []*T
	size       uint64
	mask       uint64
}

// NewRing creates a Ring with capacity slots.
// Returns ErrInvalidConfig unless capacity is a power of 2 in [2, 1<<31].
func NewRing[T any](capacity int) (*Ring[T], error) {
	if capacity < 2 || uint64(capacity) > maxCapacity || !isPow2(uint64(capacity)) {
		return nil, fmt.Errorf("%w: ring capacity %d is not a power of 2 in [2, %d]", ErrInvalidConfig, capacity, maxCapacity)
	}

	n := uint64(capacity)
	return &Ring[T]{
		slots: make([]*T, n),
		size:  n,
		mask:  n - 1,
	}, nil
}

// Destroy releases the slot storage. The Ring stays safe to call but
// reports itself full and empty with capacity 0.
//
// Destroy must not run concurrently with any other method.
func (q *Ring[T]) Destroy() {
	q.head.StoreRelaxed(0)
	q.tail.StoreRelaxed(0)
	q.cachedHead, q.cachedTail = 0, 0
	q.slots = nil
	q.size, q.mask = 0, 0
}

// Enqueue stores elem in the next free slot (producer only).
// Returns ErrWouldBlock and changes nothing if the ring is full.
func (q *Ring[T]) Enqueue(elem *T) error {
	head := q.head.LoadRelaxed()
	next := (head + 1) & q.mask
	if next == q.cachedTail {
		q.cachedTail = q.tail.LoadAcquire()
		if next == q.cachedTail {
			return ErrWouldBlock
		}
	}

	q.slots[head] = elem
	q.head.StoreRelease(next)
	return nil
}

// Dequeue removes and returns the oldest reference (consumer only).
// Returns (nil, ErrWouldBlock) and changes nothing if the ring is empty.
func (q *Ring[T]) Dequeue() (*T, error) {
	tail := q.tail.LoadRelaxed()
	if tail == q.cachedHead {
		q.cachedHead = q.head.LoadAcquire()
		if tail == q.cachedHead {
			return nil, ErrWouldBlock
		}
	}

	elem := q.slots[tail]
	q.slots[tail] = nil
	q.tail.StoreRelease((tail + 1) & q.mask)
	return elem, nil
}

// Peek returns the oldest reference without removing it.
// Returns (nil, ErrWouldBlock) if the ring is empty.
//
// Peek only loads the indices and never updates either side's cached view,
// so it does not disturb the producer or consumer hot path. Called by the
// producer, the returned reference may already have been dequeued.
func (q *Ring[T]) Peek() (*T, error) {
	tail := q.tail.LoadAcquire()
	if tail == q.head.LoadAcquire() {
		return nil, ErrWouldBlock
	}
	return q.slots[tail], nil
}

// Len returns the number of stored references, in [0, Cap()-1].
func (q *Ring[T]) Len() int {
	tail := q.tail.LoadAcquire()
	head := q.head.LoadAcquire()
	if head >= tail {
		return int(head - tail)
	}
	return int(q.size - tail + head)
}

// IsEmpty reports whether the ring holds no references.
func (q *Ring[T]) IsEmpty() bool {
	return q.head.LoadAcquire() == q.tail.LoadAcquire()
}

// IsFull reports whether every usable slot is occupied.
func (q *Ring[T]) IsFull() bool {
	return (q.head.LoadAcquire()+1)&q.mask == q.tail.LoadAcquire()
}

// Cap returns the number of slots. Usable capacity is Cap()-1.
func (q *Ring[T]) Cap() int {
	return int(q.size)
}
