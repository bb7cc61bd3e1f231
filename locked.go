// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import "sync"

// Locked is a bounded FIFO queue guarded by a single mutex.
//
// Locked is the reference baseline for IndexPair and SlotVersion: same
// interface, same capacity rules, no lock-free coordination. Enqueue and
// Dequeue never lose a race; they return ErrWouldBlock only when the queue
// is full or empty.
type Locked[T any] struct {
	mu     sync.Mutex
	head   uint64
	tail   uint64
	buffer []T
	r      ring
}

// NewLocked creates a new mutex-guarded queue holding exactly capacity
// elements.
// Panics if capacity < 1.
func NewLocked[T any](capacity int) *Locked[T] {
	return newLocked[T](newRing(capacity))
}

func newLocked[T any](r ring) *Locked[T] {
	return &Locked[T]{
		buffer: make([]T, r.n),
		r:      r,
	}
}

// Enqueue adds an element to the queue.
// Returns ErrWouldBlock if the queue is full.
func (q *Locked[T]) Enqueue(elem *T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.r.distance(q.head, q.tail) == q.r.n {
		return ErrWouldBlock
	}
	q.buffer[q.r.index(q.tail)] = *elem
	q.tail = q.r.next(q.tail)
	return nil
}

// Dequeue removes and returns an element from the queue.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *Locked[T]) Dequeue() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var zero T
	if q.head == q.tail {
		return zero, ErrWouldBlock
	}
	i := q.r.index(q.head)
	elem := q.buffer[i]
	q.buffer[i] = zero
	q.head = q.r.next(q.head)
	return elem, nil
}

// Cap returns the queue capacity.
func (q *Locked[T]) Cap() int {
	return int(q.r.n)
}
