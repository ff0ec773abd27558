// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import "fmt"

// Allocator supplies owned storage for a Fifo.
//
// Alloc returns a slice of at least size bytes or an error wrapping
// ErrAllocFailed. A Fifo uses only the first size bytes. Free receives
// the same slice Alloc returned, once, including a slice the Fifo
// rejected for being too short.
type Allocator interface {
	Alloc(size int) ([]byte, error)
	Free(b []byte) error
}

// HeapAllocator allocates Fifo storage on the Go heap.
// Free is a no-op; the garbage collector reclaims the slice.
type HeapAllocator struct{}

// Alloc returns a zeroed slice of size bytes.
// Sizes the runtime refuses to allocate are reported as ErrAllocFailed.
func (HeapAllocator) Alloc(size int) (b []byte, err error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: size %d", ErrAllocFailed, size)
	}
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, fmt.Errorf("%w: %d bytes: %v", ErrAllocFailed, size, r)
		}
	}()
	return make([]byte, size), nil
}

// Free releases nothing.
func (HeapAllocator) Free([]byte) error {
	return nil
}
