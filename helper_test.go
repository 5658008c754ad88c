// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chans_test

import (
	"code.hybscloud.com/chans"
)

// sendChars sends 'A' through last, inclusive, on out.
// Used by the select tests as a steady event source.
func sendChars(out chans.OutChan[byte], last byte) {
	for ch := byte('A'); ch <= last; ch++ {
		out.Send(ch)
	}
}

// recvN receives n values from in and returns them in arrival order.
func recvN[T any](in chans.InChan[T], n int) []T {
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, in.Recv())
	}
	return out
}
