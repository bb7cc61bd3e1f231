// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import "code.hybscloud.com/iox"

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// For Enqueue: the queue is full, or believed full from a stale snapshot,
// or another producer claimed the same position first.
// For Dequeue: the queue is empty, or another consumer claimed the same
// position first.
//
// The queues do not report which of these occurred. ErrWouldBlock is a
// control flow signal, not a failure: retry the operation, typically with
// [iox.Backoff].
//
// This is an alias for [iox.ErrWouldBlock].
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err is nil or a control flow signal.
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
