// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// IndexPair is a multi-producer multi-consumer bounded queue coordinated by
// two pairs of queue-level counters.
//
// Each side owns a reserve counter, advanced by CAS to claim a position, and
// a commit counter, advanced in strict reservation order to publish it.
// Slots carry no metadata: a producer may write a slot once head commit has
// moved past its previous occupant, and a consumer may read it once tail
// commit has moved past it.
//
// Liveness: commits are serialized by a bounded spin. A goroutine that is
// descheduled between reserving and committing holds back the visibility of
// every later reservation on its side until it resumes. Later goroutines
// keep reserving (up to capacity) but spin in commit. Prefer SlotVersion
// when goroutines may be preempted for long periods.
//
// Memory: n slots of T
type IndexPair[T any] struct {
	_           pad
	headReserve atomix.Uint64 // Consumer claims
	_           pad
	headCommit  atomix.Uint64 // Consumer publishes
	_           pad
	tailReserve atomix.Uint64 // Producer claims
	_           pad
	tailCommit  atomix.Uint64 // Producer publishes
	_           pad
	buffer      []T
	r           ring
}

// NewIndexPair creates a new index-pair MPMC queue holding exactly capacity
// elements.
// Panics if capacity < 1.
func NewIndexPair[T any](capacity int) *IndexPair[T] {
	return newIndexPair[T](newRing(capacity))
}

func newIndexPair[T any](r ring) *IndexPair[T] {
	return &IndexPair[T]{
		buffer: make([]T, r.n),
		r:      r,
	}
}

// Enqueue adds an element to the queue.
// Returns ErrWouldBlock if the queue is full or another producer won the
// reservation race.
func (q *IndexPair[T]) Enqueue(elem *T) error {
	tail := q.tailReserve.LoadRelaxed()
	// Acquire pairs with the consumer's commit: its read of the slot we are
	// about to overwrite happens before our write.
	head := q.headCommit.LoadAcquire()
	if q.r.distance(head, tail) >= q.r.n {
		return ErrWouldBlock
	}

	if !q.tailReserve.CompareAndSwapAcqRel(tail, q.r.next(tail)) {
		return ErrWouldBlock
	}

	q.buffer[q.r.index(tail)] = *elem

	sw := spin.Wait{}
	// Acquire keeps earlier producers' slot writes ordered before our
	// release, so one commit publishes every position below it.
	for q.tailCommit.LoadAcquire() != tail {
		sw.Once()
	}
	q.tailCommit.StoreRelease(q.r.next(tail))
	return nil
}

// Dequeue removes and returns an element from the queue.
// Returns (zero-value, ErrWouldBlock) if the queue is empty or another
// consumer won the reservation race.
func (q *IndexPair[T]) Dequeue() (T, error) {
	// head must be read before tail: tail commit never falls behind a head
	// reservation observed earlier, so head != tail means an element exists.
	head := q.headReserve.LoadAcquire()
	tail := q.tailCommit.LoadAcquire()
	if head == tail {
		var zero T
		return zero, ErrWouldBlock
	}

	if !q.headReserve.CompareAndSwapAcqRel(head, q.r.next(head)) {
		var zero T
		return zero, ErrWouldBlock
	}

	i := q.r.index(head)
	elem := q.buffer[i]
	var zero T
	q.buffer[i] = zero

	sw := spin.Wait{}
	for q.headCommit.LoadAcquire() != head {
		sw.Once()
	}
	q.headCommit.StoreRelease(q.r.next(head))
	return elem, nil
}

// Cap returns the queue capacity.
func (q *IndexPair[T]) Cap() int {
	return int(q.r.n)
}
