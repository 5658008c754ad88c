// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chans

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// chanHandler implements kont.Handler for channel effects.
// Waits past the iox.ErrWouldBlock boundary, converting non-blocking
// dispatch into blocking evaluation for Exec and Run.
type chanHandler[R any] struct{}

// Dispatch implements kont.Handler via structural interface assertion.
func (chanHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	cop, ok := op.(chanDispatcher)
	if !ok {
		panic("chans: unhandled effect in chanHandler")
	}
	return dispatchWait(cop), true
}

// dispatchWait blocks until DispatchChan succeeds, backing off on
// iox.ErrWouldBlock with iox.Backoff.
func dispatchWait(cop chanDispatcher) kont.Resumed {
	var bo iox.Backoff
	for {
		v, err := cop.DispatchChan()
		if err == nil {
			return v
		}
		bo.Wait()
	}
}

// Exec runs a channel protocol on the calling goroutine, blocking at
// each operation until the channel can make progress. Operations carry
// their endpoints, so no endpoint argument is needed.
func Exec[R any](protocol kont.Eff[R]) R {
	h := chanHandler[R]{}
	return kont.Handle(protocol, h)
}

// Run evaluates two channel protocols on two guarded goroutines and
// returns both results once both have completed. A protocol operates on
// whichever endpoints its operations were bound to; the two protocols
// typically share the two ends of one or more channels.
func Run[A, B any](a kont.Eff[A], b kont.Eff[B]) (A, B) {
	var (
		resultA A
		resultB B
	)
	ga := Go(func() { resultA = Exec(a) })
	gb := Go(func() { resultB = Exec(b) })
	ga.Join()
	gb.Join()
	return resultA, resultB
}
