// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !deadlock

// Package sync supplies the mutual exclusion lock used by the channel
// cores. Building with the deadlock tag swaps in a deadlock-detecting
// implementation.
package sync

import "sync"

// A Mutex is a mutual exclusion lock.
type Mutex struct {
	sync.Mutex
}
