// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package spsc provides bounded lock-free buffers for exactly one producer
// and one consumer goroutine.
//
// Two independent primitives are offered:
//
//   - Fifo: a circular byte buffer of fixed-size elements with batched,
//     copying transfers that wrap around the end of the storage
//   - Ring: a circular queue of *T references with single-item
//     Enqueue/Dequeue and no payload copying
//
// # Quick Start
//
//	// 4-byte elements, capacity hint 100 → 64 elements (256 bytes)
//	f, err := spsc.AllocFifo(100, 4)
//	if err != nil {
//	    return err
//	}
//	defer f.Free()
//
//	n := f.Put(samples) // producer: whole elements copied in
//	m := f.Get(out)     // consumer: whole elements copied out
//
//	// 8 slots, 7 usable
//	r, err := spsc.NewRing[Request](8)
//	if err := r.Enqueue(req); spsc.IsWouldBlock(err) {
//	    // Ring is full - handle backpressure
//	}
//	req, err := r.Dequeue()
//	if spsc.IsWouldBlock(err) {
//	    // Ring is empty - try again later
//	}
//
// # Storage
//
// A Fifo either borrows caller storage or owns storage from an
// [Allocator]:
//
//	buf := make([]byte, 4096)
//	f, _ := spsc.NewFifo(buf, 16)      // borrowed; Free leaves buf alone
//	g, _ := spsc.AllocFifo(256, 16)    // owned; heap
//	h, _ := spsc.New(256).ElemSize(16).Allocator(spsc.MmapAllocator{}).BuildFifo()
//
// Fifo capacities round down to a power of 2 and the effective capacity is
// returned by Init, Alloc and Cap. Ring capacities must already be a power
// of 2; the ring does not round.
//
// # Transfers
//
// Nothing blocks. Put, Get and Peek move as many whole elements as fit or
// are available and return the count, including 0. Enqueue, Dequeue and
// Peek on a Ring return [ErrWouldBlock] for full and empty, and a nil
// error otherwise. Callers that need to wait layer it on top:
//
//	backoff := iox.Backoff{}
//	for f.Put(frame) == 0 {
//	    backoff.Wait()
//	}
//	backoff.Reset()
//
// The Fifo also implements [io.Writer] and [io.Reader], reporting zero
// progress as ErrWouldBlock instead of waiting.
//
// # Errors
//
// Construction fails with [ErrInvalidConfig] when the capacity would be
// below 2 (or, for a Ring, is not a power of 2) and with [ErrAllocFailed]
// when storage cannot be obtained. Errors are wrapped with detail; test
// them with errors.Is. Transfers never fail.
//
// # Thread Safety
//
// Exactly one goroutine may call producer operations (Put, Write,
// Enqueue) and exactly one goroutine may call consumer operations (Get,
// Peek, Read, Skip, ResetOut, Dequeue, Ring.Peek). The two may be the same
// goroutine. Multiple producers or multiple consumers must be serialized
// by the caller. [FifoProducer], [FifoConsumer], [RingProducer] and
// [RingConsumer] narrow a buffer to one side.
//
// Ring.Peek writes no shared state. The producer may call it as a hint,
// but only the consumer can rely on the returned reference still being
// queued.
//
// The only synchronization is a release store of each cursor by its owner
// and an acquire load by the other side: payload bytes written before a
// cursor is published are visible to whoever observes the new cursor.
// There are no locks and no compare-and-swap.
//
// # Race Detection
//
// The race detector cannot observe ordering established through atomix
// acquire/release operations on the cursors, and may report false
// positives on the payload bytes and slots. Concurrent tests are skipped
// when [RaceEnabled] is true.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic cursors with
// explicit memory ordering, [code.hybscloud.com/iox] for semantic errors,
// and [golang.org/x/sys] for cache-line padding and mapped storage.
package spsc
