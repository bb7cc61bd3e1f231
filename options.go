// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

// Protocol identifies the coordination scheme of a queue.
type Protocol uint8

const (
	// ProtocolSlotVersion coordinates through a version stamp per slot.
	ProtocolSlotVersion Protocol = iota
	// ProtocolIndexPair coordinates through reserve/commit counter pairs.
	ProtocolIndexPair
	// ProtocolLocked guards the ring with a mutex.
	ProtocolLocked
)

func (p Protocol) String() string {
	switch p {
	case ProtocolSlotVersion:
		return "slot-version"
	case ProtocolIndexPair:
		return "index-pair"
	case ProtocolLocked:
		return "locked"
	default:
		return "unknown"
	}
}

// Options configures queue creation and protocol selection.
type Options struct {
	protocol Protocol
	capacity int
}

// Builder creates queues with fluent configuration.
//
// Example:
//
//	// Slot-version queue (default)
//	q := ringq.Build[Event](ringq.New(1000))
//
//	// Index-pair queue with concrete type
//	q := ringq.BuildIndexPair[Event](ringq.New(1000).IndexPair())
//
//	// Mutex baseline for comparison
//	q := ringq.Build[Event](ringq.New(1000).Locked())
type Builder struct {
	opts Options
}

// New creates a queue builder with the given capacity.
//
// Capacity is exact; it is not rounded to a power of 2.
//
// Panics if capacity < 1.
func New(capacity int) *Builder {
	if capacity < 1 {
		panic("ringq: capacity must be >= 1")
	}
	return &Builder{opts: Options{capacity: capacity}}
}

// SlotVersion selects the slot-version protocol. This is the default.
func (b *Builder) SlotVersion() *Builder {
	b.opts.protocol = ProtocolSlotVersion
	return b
}

// IndexPair selects the index-pair protocol.
//
// Trade-off: no per-slot stamp, but commits are serialized and a stalled
// goroutine delays every later commit on its side.
func (b *Builder) IndexPair() *Builder {
	b.opts.protocol = ProtocolIndexPair
	return b
}

// Locked selects the mutex-guarded reference queue.
func (b *Builder) Locked() *Builder {
	b.opts.protocol = ProtocolLocked
	return b
}

// Protocol reports the selected protocol.
func (b *Builder) Protocol() Protocol {
	return b.opts.protocol
}

// Capacity reports the configured capacity.
func (b *Builder) Capacity() int {
	return b.opts.capacity
}

// Build creates a Queue[T] using the selected protocol.
//
// For concrete return types, use:
//   - BuildSlotVersion[T](b) → *SlotVersion[T]
//   - BuildIndexPair[T](b) → *IndexPair[T]
//   - BuildLocked[T](b) → *Locked[T]
func Build[T any](b *Builder) Queue[T] {
	switch b.opts.protocol {
	case ProtocolIndexPair:
		return NewIndexPair[T](b.opts.capacity)
	case ProtocolLocked:
		return NewLocked[T](b.opts.capacity)
	default:
		return NewSlotVersion[T](b.opts.capacity)
	}
}

// BuildSlotVersion creates a slot-version queue with compile-time type safety.
// Panics if another protocol is selected.
func BuildSlotVersion[T any](b *Builder) *SlotVersion[T] {
	if b.opts.protocol != ProtocolSlotVersion {
		panic("ringq: BuildSlotVersion requires SlotVersion()")
	}
	return NewSlotVersion[T](b.opts.capacity)
}

// BuildIndexPair creates an index-pair queue with compile-time type safety.
// Panics if another protocol is selected.
func BuildIndexPair[T any](b *Builder) *IndexPair[T] {
	if b.opts.protocol != ProtocolIndexPair {
		panic("ringq: BuildIndexPair requires IndexPair()")
	}
	return NewIndexPair[T](b.opts.capacity)
}

// BuildLocked creates a mutex-guarded queue with compile-time type safety.
// Panics if another protocol is selected.
func BuildLocked[T any](b *Builder) *Locked[T] {
	if b.opts.protocol != ProtocolLocked {
		panic("ringq: BuildLocked requires Locked()")
	}
	return NewLocked[T](b.opts.capacity)
}
