// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package ringq

// RaceEnabled is true when the race detector is active.
// Tests skip concurrent runs under the detector: slot values are published
// through atomix stamps and counters, which the detector cannot see.
const RaceEnabled = true
