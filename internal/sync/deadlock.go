// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build deadlock

package sync

import deadlock "github.com/sasha-s/go-deadlock"

// A Mutex is a mutual exclusion lock that reports lock-order
// inversions and long-held locks.
type Mutex struct {
	deadlock.Mutex
}
