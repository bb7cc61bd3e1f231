// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import "code.hybscloud.com/atomix"

// SlotVersion is a multi-producer multi-consumer bounded queue coordinated by
// a version stamp on every slot.
//
// A stamp encodes whether its slot is writable for a given tail position or
// readable for a given head position:
//   - Coordination is local to the slot; there is no global commit order to wait on
//   - A stalled goroutine blocks reuse of its own slot only
//   - Each operation is a single attempt: no spinning, no retry
//
// This is the default protocol selected by Build.
//
// Memory: n slots (16+ bytes per slot)
type SlotVersion[T any] struct {
	_      pad
	tail   atomix.Uint64 // Producer index
	_      pad
	head   atomix.Uint64 // Consumer index
	_      pad
	buffer []slotVersionSlot[T]
	r      ring
}

type slotVersionSlot[T any] struct {
	version atomix.Uint64
	data    T
	_       padShort // Pad to cache line
}

// NewSlotVersion creates a new slot-version MPMC queue holding exactly
// capacity elements.
// Panics if capacity < 1.
func NewSlotVersion[T any](capacity int) *SlotVersion[T] {
	return newSlotVersion[T](newRing(capacity))
}

func newSlotVersion[T any](r ring) *SlotVersion[T] {
	q := &SlotVersion[T]{
		buffer: make([]slotVersionSlot[T], r.n),
		r:      r,
	}

	for i := uint64(0); i < r.n; i++ {
		q.buffer[i].version.StoreRelaxed(r.writable(i))
	}

	return q
}

// Enqueue adds an element to the queue.
// Returns ErrWouldBlock if the queue is full or another producer won the
// race for the slot.
func (q *SlotVersion[T]) Enqueue(elem *T) error {
	tail := q.tail.LoadRelaxed()
	slot := &q.buffer[q.r.index(tail)]
	if slot.version.LoadAcquire() != q.r.writable(tail) {
		return ErrWouldBlock
	}

	if !q.tail.CompareAndSwapRelaxed(tail, q.r.next(tail)) {
		return ErrWouldBlock
	}

	slot.data = *elem
	slot.version.StoreRelease(q.r.readable(tail))
	return nil
}

// Dequeue removes and returns an element from the queue.
// Returns (zero-value, ErrWouldBlock) if the queue is empty or another
// consumer won the race for the slot.
func (q *SlotVersion[T]) Dequeue() (T, error) {
	head := q.head.LoadRelaxed()
	slot := &q.buffer[q.r.index(head)]
	if slot.version.LoadAcquire() != q.r.readable(head) {
		var zero T
		return zero, ErrWouldBlock
	}

	if !q.head.CompareAndSwapRelaxed(head, q.r.next(head)) {
		var zero T
		return zero, ErrWouldBlock
	}

	elem := slot.data
	var zero T
	slot.data = zero
	slot.version.StoreRelease(q.r.writable(q.r.add(head, q.r.n)))
	return elem, nil
}

// Cap returns the queue capacity.
func (q *SlotVersion[T]) Cap() int {
	return int(q.r.n)
}
