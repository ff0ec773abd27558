// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc_test

import (
	"encoding/binary"
	"errors"
	"fmt"

	"code.hybscloud.com/spsc"
)

// ExampleAllocFifo demonstrates capacity rounding and saturating writes.
func ExampleAllocFifo() {
	// 4-byte elements, capacity hint 100
	f, err := spsc.AllocFifo(100, 4)
	if err != nil {
		panic(err)
	}
	defer f.Free()
	fmt.Println("capacity:", f.Cap())

	src := make([]byte, 4*80)
	for i := range 80 {
		binary.LittleEndian.PutUint32(src[4*i:], uint32(i))
	}
	fmt.Println("first write:", f.Put(src[:4*50]))
	fmt.Println("second write:", f.Put(src[4*50:]))

	dst := make([]byte, 4*64)
	n := f.Get(dst)
	fmt.Println("read:", n, "last:", binary.LittleEndian.Uint32(dst[4*(n-1):]))

	// Output:
	// capacity: 64
	// first write: 50
	// second write: 14
	// read: 64 last: 63
}

// ExampleNewFifo demonstrates a Fifo over caller-owned storage.
func ExampleNewFifo() {
	storage := make([]byte, 20)
	f, err := spsc.NewFifo(storage, 1)
	if err != nil {
		panic(err)
	}

	f.Put([]byte("hello, ring"))
	head := make([]byte, 5)
	f.Peek(head)
	fmt.Printf("peek: %s (len %d)\n", head, f.Len())
	f.Skip(7)
	rest := make([]byte, 16)
	n := f.Get(rest)
	fmt.Printf("get: %s, capacity %d\n", rest[:n], f.Cap())

	// Output:
	// peek: hello (len 11)
	// get: ring, capacity 16
}

// ExampleNewRing demonstrates reference passing and the reserved slot.
func ExampleNewRing() {
	type Task struct{ Name string }

	q, err := spsc.NewRing[Task](4)
	if err != nil {
		panic(err)
	}

	for _, name := range []string{"parse", "plan", "exec", "report"} {
		if err := q.Enqueue(&Task{Name: name}); errors.Is(err, spsc.ErrWouldBlock) {
			fmt.Println("full, rejected:", name)
		}
	}
	fmt.Println("len:", q.Len(), "cap:", q.Cap())

	for {
		task, err := q.Dequeue()
		if spsc.IsWouldBlock(err) {
			break
		}
		fmt.Println(task.Name)
	}

	// Output:
	// full, rejected: report
	// len: 3 cap: 4
	// parse
	// plan
	// exec
}

// ExampleFifo_Write demonstrates the io.Writer adapter.
func ExampleFifo_Write() {
	f, _ := spsc.AllocFifo(8, 1)

	n, err := fmt.Fprint(f, "0123456789")
	fmt.Println(n, spsc.IsWouldBlock(err))

	buf := make([]byte, 16)
	n, err = f.Read(buf)
	fmt.Println(string(buf[:n]), err)

	// Output:
	// 8 true
	// 01234567 <nil>
}
