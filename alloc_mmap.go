// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux || darwin

package spsc

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// MmapAllocator backs Fifo storage with an anonymous private mapping
// outside the Go heap. The mapping is page aligned and zero filled, and
// is returned to the kernel by Free.
type MmapAllocator struct{}

// Alloc maps size bytes of read-write anonymous memory.
func (MmapAllocator) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: size %d", ErrAllocFailed, size)
	}
	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %d bytes: %w", ErrAllocFailed, size, err)
	}
	return b, nil
}

// Free unmaps b. b must be the slice returned by Alloc.
func (MmapAllocator) Free(b []byte) error {
	return unix.Munmap(b)
}
