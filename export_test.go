// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

var RoundDownPow2 = roundDownPow2

// SeedFifoCursors moves both cursors of an empty Fifo to pos.
func SeedFifoCursors(f *Fifo, pos uint64) {
	f.in.StoreRelaxed(pos)
	f.out.StoreRelaxed(pos)
	f.cachedIn, f.cachedOut = pos, pos
}

// FifoCursors returns the raw in and out cursors.
func FifoCursors(f *Fifo) (in, out uint64) {
	return f.in.LoadRelaxed(), f.out.LoadRelaxed()
}

// RingIndices returns the raw head and tail indices.
func RingIndices[T any](q *Ring[T]) (head, tail uint64) {
	return q.head.LoadRelaxed(), q.tail.LoadRelaxed()
}

// RingSlot returns the reference held in slot i.
func RingSlot[T any](q *Ring[T], i int) *T {
	return q.slots[i]
}

// RingCaches returns the producer's cached tail and the consumer's cached head.
func RingCaches[T any](q *Ring[T]) (cachedTail, cachedHead uint64) {
	return q.cachedTail, q.cachedHead
}
