// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ringq provides bounded lock-free multi-producer multi-consumer
// FIFO queues over a fixed ring of slots.
//
// Two lock-free protocols implement the same contract, plus a mutex
// baseline:
//
//   - SlotVersion: a version stamp per slot (default, recommended)
//   - IndexPair: reserve/commit counter pairs with an ordered commit spin
//   - Locked: a single mutex, for validation and comparison
//
// # Quick Start
//
//	q := ringq.NewSlotVersion[Event](1000)
//	q := ringq.NewIndexPair[*Request](64)
//
// Builder API selects the protocol:
//
//	q := ringq.Build[Event](ringq.New(1000))              // → SlotVersion
//	q := ringq.Build[Event](ringq.New(1000).IndexPair())  // → IndexPair
//	q := ringq.Build[Event](ringq.New(1000).Locked())     // → Locked
//
// # Basic Usage
//
//	q := ringq.NewSlotVersion[int](4)
//
//	value := 42
//	err := q.Enqueue(&value)
//	if ringq.IsWouldBlock(err) {
//	    // Full, or lost a race to another producer
//	}
//
//	elem, err := q.Dequeue()
//	if ringq.IsWouldBlock(err) {
//	    // Empty, or lost a race to another consumer
//	}
//
// Every operation is a single attempt. Contention is reported the same way
// as a full or empty queue, so callers that need progress retry in a loop:
//
//	backoff := iox.Backoff{}
//	for q.Enqueue(&item) != nil {
//	    backoff.Wait()
//	}
//	backoff.Reset()
//
// # Ordering
//
// All queues preserve a single global FIFO order: the element enqueued at
// the k-th reserved position is the element returned by the k-th reserved
// dequeue, across all producers and consumers combined. No per-producer
// guarantee beyond that is made.
//
// # Capacity
//
// Capacity is exact and any positive value is accepted, including 1:
//
//	q := ringq.NewSlotVersion[int](3)  // Cap() == 3
//	q := ringq.NewIndexPair[int](1)    // Cap() == 1
//
// Panics if capacity < 1. All storage is allocated at construction;
// Enqueue and Dequeue do not allocate.
//
// # Protocols
//
// IndexPair keeps four queue-level counters. Producers claim a position by
// CAS on the tail reserve counter, write the slot, then wait until the tail
// commit counter reaches their position before publishing it. Consumers do
// the same on the head side. Commits therefore happen strictly in
// reservation order. The wait is bounded by the number of reservations in
// flight, but a goroutine descheduled between reserve and commit delays
// every later commit on its side.
//
// SlotVersion keeps a head and a tail counter and a stamp per slot. A
// producer may write a slot only when its stamp marks it writable for the
// current tail; a consumer may read it only when its stamp marks it readable
// for the current head. No goroutine ever waits on another: a stalled
// goroutine blocks reuse of its own slot only.
//
// # Counter Width
//
// Positions are 64-bit counters that wrap at the largest multiple of the
// capacity not exceeding 2^63, so slot indexing stays continuous across the
// wrap for any capacity. SlotVersion stamps use two values per position
// (even: writable, odd: readable) and wrap at twice that point.
//
// # Race Detection
//
// Slot values are plain memory published through atomix acquire/release
// operations, which Go's race detector does not observe. Concurrent tests
// are excluded under the detector via [RaceEnabled].
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit memory
// ordering, [code.hybscloud.com/spin] for the commit spin, and
// [golang.org/x/sys/cpu] for cache line padding.
package ringq
