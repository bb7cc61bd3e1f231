// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

// Queue is the combined producer-consumer interface for a bounded FIFO queue.
//
// IndexPair, SlotVersion and Locked all implement Queue and are
// interchangeable: the same operation sequence yields the same results on
// each of them when run from a single goroutine.
//
// The interface intentionally excludes length because accurate counts in
// lock-free algorithms require expensive cross-core synchronization.
//
// Example:
//
//	q := ringq.NewSlotVersion[int](1000)
//
//	val := 42
//	if err := q.Enqueue(&val); err != nil {
//	    // Full, or lost a race: retry later
//	}
//
//	elem, err := q.Dequeue()
//	if err == nil {
//	    fmt.Println(elem)
//	}
type Queue[T any] interface {
	Producer[T]
	Consumer[T]
	Cap() int
}

// Producer is the interface for enqueueing elements.
//
// The element is passed by pointer to avoid copying large structs. The queue
// stores a copy of the pointed-to value, so the original can be modified
// after Enqueue returns.
type Producer[T any] interface {
	// Enqueue adds an element to the queue (non-blocking).
	// Returns nil on success, ErrWouldBlock if the queue is full or the
	// caller lost a reservation race. Both cases mean "retry later".
	Enqueue(elem *T) error
}

// Consumer is the interface for dequeueing elements.
//
// The element is returned by value. The vacated slot is cleared to allow
// garbage collection of referenced objects.
type Consumer[T any] interface {
	// Dequeue removes and returns an element from the queue (non-blocking).
	// Returns (zero-value, ErrWouldBlock) if the queue is empty or the
	// caller lost a reservation race.
	Dequeue() (T, error)
}

var (
	_ Queue[int] = (*IndexPair[int])(nil)
	_ Queue[int] = (*SlotVersion[int])(nil)
	_ Queue[int] = (*Locked[int])(nil)
)
