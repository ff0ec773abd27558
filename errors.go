// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// For Ring.Enqueue: the ring is full (backpressure)
// For Ring.Dequeue and Ring.Peek: the ring is empty (the empty-sentinel)
// For Fifo.Write and Fifo.Read: no whole element could be transferred
//
// ErrWouldBlock is a control flow signal, not a failure. The caller should
// retry the operation later (with backoff or yield) rather than propagating
// the error.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// ErrInvalidConfig is returned by constructors when the requested geometry
// cannot produce a usable buffer: the capacity rounds down below 2, a ring
// capacity is not a power of two, or the element size is not positive.
// The structure is left with zero capacity.
var ErrInvalidConfig = errors.New("spsc: invalid configuration")

// ErrAllocFailed is returned when storage for an owned buffer cannot be
// obtained from the Allocator. The structure is left with zero capacity.
var ErrAllocFailed = errors.New("spsc: allocation failed")

// ErrPartialElement is returned by Fifo.Write and Fifo.Read when the byte
// slice is shorter than one element, or ends in a fragment of an element
// after every whole element has been transferred.
var ErrPartialElement = errors.New("spsc: partial element")

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil, ErrWouldBlock, or ErrMore.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
