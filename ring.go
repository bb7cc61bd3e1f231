// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import "golang.org/x/sys/cpu"

// maxSpan bounds the position space. Positions stay below 2^63 so that the
// doubled stamp space of SlotVersion fits in 64 bits.
const maxSpan = 1 << 63

// ring holds the position arithmetic shared by every queue in this package.
//
// Positions are monotonic counters that wrap to zero at span, the largest
// multiple of n not exceeding 2^63. Since span is a multiple of n, pos%n is
// continuous across the wrap and capacities need not be powers of two.
type ring struct {
	n    uint64 // capacity
	span uint64 // wrap point, multiple of n, >= 2n
}

func newRing(capacity int) ring {
	if capacity < 1 {
		panic("ringq: capacity must be >= 1")
	}
	n := uint64(capacity)
	return ring{n: n, span: (maxSpan / n) * n}
}

// newRingLaps creates a ring that wraps after laps full passes.
// Used by tests to reach the wrap point quickly.
func newRingLaps(capacity, laps int) ring {
	r := newRing(capacity)
	if laps < 2 {
		panic("ringq: laps must be >= 2")
	}
	if uint64(laps) < r.span/r.n {
		r.span = uint64(laps) * r.n
	}
	return r
}

// index maps a position to its physical slot.
func (r *ring) index(pos uint64) uint64 {
	return pos % r.n
}

// next returns the position following pos.
func (r *ring) next(pos uint64) uint64 {
	pos++
	if pos == r.span {
		return 0
	}
	return pos
}

// add returns pos advanced by d, d < span.
func (r *ring) add(pos, d uint64) uint64 {
	if pos >= r.span-d {
		return pos - (r.span - d)
	}
	return pos + d
}

// distance returns how far to is ahead of from, in [0, span).
// A stale from that overtook to reads as a distance close to span.
func (r *ring) distance(from, to uint64) uint64 {
	if to >= from {
		return to - from
	}
	return r.span - from + to
}

// Slot-version stamps use two units per position: even stamps mark a slot
// writable, odd stamps mark it readable. The readable stamp of pos is one
// below the writable stamp of pos+n, the value a dequeue re-arms the slot
// with. Stamps wrap modulo 2*span; for span == 2^63 that is the natural
// uint64 wrap.

// writable returns the stamp a slot carries when free for an enqueue at pos.
func (r *ring) writable(pos uint64) uint64 {
	return pos << 1
}

// readable returns the stamp a slot carries once the value enqueued at pos
// is published.
func (r *ring) readable(pos uint64) uint64 {
	w := r.writable(r.add(pos, r.n))
	if w == 0 {
		return r.span<<1 - 1
	}
	return w - 1
}

// pad separates independently written counters onto their own cache lines.
type pad = cpu.CacheLinePad

// padShort fills the cache line after an 8-byte field.
type padShort [64 - 8]byte
