// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import (
	"fmt"
	"io"
)

var (
	_ io.Writer = (*Fifo)(nil)
	_ io.Reader = (*Fifo)(nil)
)

// Write implements [io.Writer] over whole elements (producer only).
//
// Write never blocks. It returns len(p) and nil when every byte fits.
// When f fills up first it returns the bytes written so far with
// ErrWouldBlock. When p ends in a fragment shorter than one element it
// returns the bytes of the whole elements written with ErrPartialElement.
func (f *Fifo) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if f.size == 0 {
		return 0, fmt.Errorf("%w: fifo has no storage", ErrInvalidConfig)
	}
	whole := len(p) - len(p)%int(f.esize)
	n := f.Put(p) * int(f.esize)
	switch {
	case n == len(p):
		return n, nil
	case n < whole:
		return n, ErrWouldBlock
	default:
		return n, ErrPartialElement
	}
}

// Read implements [io.Reader] over whole elements (consumer only).
//
// Read never blocks. It returns the bytes of the whole elements copied
// into p. When nothing is stored it returns 0 and ErrWouldBlock; when p is
// shorter than one element it returns 0 and ErrPartialElement.
func (f *Fifo) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if f.size == 0 {
		return 0, fmt.Errorf("%w: fifo has no storage", ErrInvalidConfig)
	}
	if len(p) < int(f.esize) {
		return 0, ErrPartialElement
	}
	n := f.Get(p)
	if n == 0 {
		return 0, ErrWouldBlock
	}
	return n * int(f.esize), nil
}
