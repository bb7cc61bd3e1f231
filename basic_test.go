// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/ringq"
)

// queueCase names a queue constructor so every test can run against all
// protocols.
type queueCase struct {
	name     string
	lockFree bool
	new      func(capacity int) ringq.Queue[int]
	laps     func(capacity, laps int) ringq.Queue[int]
}

var queueCases = []queueCase{
	{
		name:     "SlotVersion",
		lockFree: true,
		new:      func(n int) ringq.Queue[int] { return ringq.NewSlotVersion[int](n) },
		laps:     func(n, l int) ringq.Queue[int] { return ringq.NewSlotVersionLaps[int](n, l) },
	},
	{
		name:     "IndexPair",
		lockFree: true,
		new:      func(n int) ringq.Queue[int] { return ringq.NewIndexPair[int](n) },
		laps:     func(n, l int) ringq.Queue[int] { return ringq.NewIndexPairLaps[int](n, l) },
	},
	{
		name: "Locked",
		new:  func(n int) ringq.Queue[int] { return ringq.NewLocked[int](n) },
		laps: func(n, l int) ringq.Queue[int] { return ringq.NewLockedLaps[int](n, l) },
	},
}

// fill enqueues first, first+1, ... until the queue reports full, and
// returns how many succeeded.
func fill(t *testing.T, q ringq.Queue[int], first int) int {
	t.Helper()
	n := 0
	for {
		v := first + n
		if err := q.Enqueue(&v); err != nil {
			if !errors.Is(err, ringq.ErrWouldBlock) {
				t.Fatalf("Enqueue(%d): unexpected error %v", v, err)
			}
			return n
		}
		n++
		if n > q.Cap() {
			t.Fatalf("Enqueue: accepted %d elements, capacity %d", n, q.Cap())
		}
	}
}

// =============================================================================
// Basic Operations
// =============================================================================

// TestBasicScenario runs the capacity-4 walk-through: four enqueues succeed,
// the fifth fails, four dequeues return 0..3 in order, the fifth fails, and
// the queue accepts and returns a new element afterwards.
func TestBasicScenario(t *testing.T) {
	for _, tc := range queueCases {
		t.Run(tc.name, func(t *testing.T) {
			q := tc.new(4)

			if q.Cap() != 4 {
				t.Fatalf("Cap: got %d, want 4", q.Cap())
			}

			for i := range 4 {
				v := i
				if err := q.Enqueue(&v); err != nil {
					t.Fatalf("Enqueue(%d): %v", i, err)
				}
			}

			v := 4
			if err := q.Enqueue(&v); !errors.Is(err, ringq.ErrWouldBlock) {
				t.Fatalf("Enqueue on full: got %v, want ErrWouldBlock", err)
			}

			for i := range 4 {
				val, err := q.Dequeue()
				if err != nil {
					t.Fatalf("Dequeue(%d): %v", i, err)
				}
				if val != i {
					t.Fatalf("Dequeue(%d): got %d, want %d", i, val, i)
				}
			}

			if _, err := q.Dequeue(); !errors.Is(err, ringq.ErrWouldBlock) {
				t.Fatalf("Dequeue on empty: got %v, want ErrWouldBlock", err)
			}

			if err := q.Enqueue(&v); err != nil {
				t.Fatalf("Enqueue(4) after drain: %v", err)
			}
			val, err := q.Dequeue()
			if err != nil {
				t.Fatalf("Dequeue after drain: %v", err)
			}
			if val != 4 {
				t.Fatalf("Dequeue after drain: got %d, want 4", val)
			}
		})
	}
}

// TestCapacityOne verifies the degenerate single-slot queue.
func TestCapacityOne(t *testing.T) {
	for _, tc := range queueCases {
		t.Run(tc.name, func(t *testing.T) {
			q := tc.new(1)

			if q.Cap() != 1 {
				t.Fatalf("Cap: got %d, want 1", q.Cap())
			}

			// Empty before any enqueue
			if _, err := q.Dequeue(); !errors.Is(err, ringq.ErrWouldBlock) {
				t.Fatalf("Dequeue on fresh queue: got %v, want ErrWouldBlock", err)
			}

			for round := range 100 {
				v := round
				if err := q.Enqueue(&v); err != nil {
					t.Fatalf("round %d: Enqueue: %v", round, err)
				}
				w := -1
				if err := q.Enqueue(&w); !errors.Is(err, ringq.ErrWouldBlock) {
					t.Fatalf("round %d: Enqueue on full: got %v, want ErrWouldBlock", round, err)
				}
				val, err := q.Dequeue()
				if err != nil {
					t.Fatalf("round %d: Dequeue: %v", round, err)
				}
				if val != round {
					t.Fatalf("round %d: got %d, want %d", round, val, round)
				}
				if _, err := q.Dequeue(); !errors.Is(err, ringq.ErrWouldBlock) {
					t.Fatalf("round %d: Dequeue on empty: got %v, want ErrWouldBlock", round, err)
				}
			}
		})
	}
}

// TestConstructorPanics verifies invalid capacities fail at construction.
func TestConstructorPanics(t *testing.T) {
	for _, tc := range queueCases {
		for _, n := range []int{0, -1} {
			t.Run(tc.name, func(t *testing.T) {
				defer func() {
					if recover() == nil {
						t.Fatalf("capacity %d: expected panic", n)
					}
				}()
				tc.new(n)
			})
		}
	}
}

// TestExactCapacity verifies capacities are not rounded to powers of 2.
func TestExactCapacity(t *testing.T) {
	for _, tc := range queueCases {
		t.Run(tc.name, func(t *testing.T) {
			for _, n := range []int{1, 2, 3, 5, 7, 12, 100} {
				q := tc.new(n)
				if q.Cap() != n {
					t.Fatalf("Cap: got %d, want %d", q.Cap(), n)
				}
				if got := fill(t, q, 0); got != n {
					t.Fatalf("capacity %d: accepted %d elements", n, got)
				}
				for i := range n {
					val, err := q.Dequeue()
					if err != nil {
						t.Fatalf("capacity %d: Dequeue(%d): %v", n, i, err)
					}
					if val != i {
						t.Fatalf("capacity %d: Dequeue(%d): got %d", n, i, val)
					}
				}
			}
		})
	}
}

// TestInterleaved cycles partial fills and drains over a non-power-of-2
// capacity so slots are reused at every offset.
func TestInterleaved(t *testing.T) {
	for _, tc := range queueCases {
		t.Run(tc.name, func(t *testing.T) {
			q := tc.new(5)
			next, want := 0, 0

			for round := range 200 {
				burst := round%5 + 1
				for range burst {
					v := next
					if err := q.Enqueue(&v); err != nil {
						t.Fatalf("round %d: Enqueue(%d): %v", round, v, err)
					}
					next++
				}
				for range burst {
					val, err := q.Dequeue()
					if err != nil {
						t.Fatalf("round %d: Dequeue: %v", round, err)
					}
					if val != want {
						t.Fatalf("round %d: got %d, want %d", round, val, want)
					}
					want++
				}
			}
		})
	}
}

// TestEnqueueCopies verifies the queue stores a copy of the element.
func TestEnqueueCopies(t *testing.T) {
	for _, tc := range queueCases {
		t.Run(tc.name, func(t *testing.T) {
			q := tc.new(2)
			v := 7
			if err := q.Enqueue(&v); err != nil {
				t.Fatalf("Enqueue: %v", err)
			}
			v = 8
			val, err := q.Dequeue()
			if err != nil {
				t.Fatalf("Dequeue: %v", err)
			}
			if val != 7 {
				t.Fatalf("Dequeue: got %d, want 7", val)
			}
		})
	}
}

// TestPointerRoundTrip verifies pointer elements come back unchanged.
func TestPointerRoundTrip(t *testing.T) {
	queues := map[string]ringq.Queue[*int]{
		"SlotVersion": ringq.NewSlotVersion[*int](1),
		"IndexPair":   ringq.NewIndexPair[*int](1),
		"Locked":      ringq.NewLocked[*int](1),
	}
	for name, q := range queues {
		t.Run(name, func(t *testing.T) {
			v := new(int)
			if err := q.Enqueue(&v); err != nil {
				t.Fatalf("Enqueue: %v", err)
			}
			got, err := q.Dequeue()
			if err != nil || got != v {
				t.Fatalf("Dequeue: got (%p, %v), want (%p, nil)", got, err, v)
			}
			got, err = q.Dequeue()
			if got != nil || !errors.Is(err, ringq.ErrWouldBlock) {
				t.Fatalf("Dequeue on empty: got (%p, %v), want (nil, ErrWouldBlock)", got, err)
			}
		})
	}
}

// TestNoAllocs verifies Enqueue and Dequeue do not allocate.
func TestNoAllocs(t *testing.T) {
	for _, tc := range queueCases {
		t.Run(tc.name, func(t *testing.T) {
			q := tc.new(8)
			v := 42
			allocs := testing.AllocsPerRun(1000, func() {
				q.Enqueue(&v)
				q.Dequeue()
				q.Dequeue() // empty
			})
			if allocs != 0 {
				t.Fatalf("AllocsPerRun: got %v, want 0", allocs)
			}
		})
	}
}

// =============================================================================
// Error Classification
// =============================================================================

func TestErrorClassification(t *testing.T) {
	q := ringq.NewSlotVersion[int](1)
	_, err := q.Dequeue()

	if !ringq.IsWouldBlock(err) {
		t.Fatalf("IsWouldBlock(%v): got false, want true", err)
	}
	if !ringq.IsSemantic(err) {
		t.Fatalf("IsSemantic(%v): got false, want true", err)
	}
	if !ringq.IsNonFailure(err) {
		t.Fatalf("IsNonFailure(%v): got false, want true", err)
	}
	if !ringq.IsNonFailure(nil) {
		t.Fatal("IsNonFailure(nil): got false, want true")
	}
	if ringq.IsWouldBlock(errors.New("boom")) {
		t.Fatal("IsWouldBlock(other): got true, want false")
	}
}
