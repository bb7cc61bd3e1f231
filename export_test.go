// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

// Constructors with a short wrap point, so tests can drive positions and
// stamps across the wrap without 2^63 operations.

func NewIndexPairLaps[T any](capacity, laps int) *IndexPair[T] {
	return newIndexPair[T](newRingLaps(capacity, laps))
}

func NewSlotVersionLaps[T any](capacity, laps int) *SlotVersion[T] {
	return newSlotVersion[T](newRingLaps(capacity, laps))
}

func NewLockedLaps[T any](capacity, laps int) *Locked[T] {
	return newLocked[T](newRingLaps(capacity, laps))
}
