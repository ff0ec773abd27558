// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package spsc

// RaceEnabled is true when the race detector is active.
// Tests use it to skip concurrent producer/consumer runs, which the
// detector reports as races on the payload bytes and slots because it
// cannot see the ordering established by the atomix cursors.
const RaceEnabled = true
