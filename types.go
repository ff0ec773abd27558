// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

// FifoProducer is the producer end of a Fifo.
//
// Hand a FifoProducer to the one goroutine that writes, and a FifoConsumer
// to the one goroutine that reads, so that neither side can reach the
// other's operations.
//
// Example:
//
//	f, _ := spsc.AllocFifo(4096, 1)
//	go produce(f) // func produce(p spsc.FifoProducer)
//	go consume(f) // func consume(c spsc.FifoConsumer)
type FifoProducer interface {
	// Put copies whole elements into the buffer and returns the count.
	// Returns 0 when the buffer is full.
	Put(src []byte) int

	// Unused returns the number of free element slots.
	Unused() int

	// Cap returns the capacity in elements.
	Cap() int
}

// FifoConsumer is the consumer end of a Fifo.
type FifoConsumer interface {
	// Get copies and consumes whole elements, returning the count.
	// Returns 0 when the buffer is empty.
	Get(dst []byte) int

	// Peek copies whole elements without consuming them.
	Peek(dst []byte) int

	// Skip consumes up to count elements without copying.
	Skip(count int) int

	// Len returns the number of stored elements.
	Len() int
}

// RingProducer is the producer end of a Ring.
type RingProducer[T any] interface {
	// Enqueue stores a reference.
	// Returns ErrWouldBlock if the ring is full.
	Enqueue(elem *T) error

	// IsFull reports whether every usable slot is occupied.
	IsFull() bool
}

// RingConsumer is the consumer end of a Ring.
type RingConsumer[T any] interface {
	// Dequeue removes the oldest reference.
	// Returns (nil, ErrWouldBlock) if the ring is empty.
	Dequeue() (*T, error)

	// Peek returns the oldest reference without removing it.
	// Returns (nil, ErrWouldBlock) if the ring is empty.
	Peek() (*T, error)

	// IsEmpty reports whether the ring holds no references.
	IsEmpty() bool
}

var (
	_ FifoProducer           = (*Fifo)(nil)
	_ FifoConsumer           = (*Fifo)(nil)
	_ RingProducer[struct{}] = (*Ring[struct{}])(nil)
	_ RingConsumer[struct{}] = (*Ring[struct{}])(nil)
)
