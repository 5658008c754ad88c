// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chans

import (
	"code.hybscloud.com/kont"
)

// chanErrorHandler handles both channel and error effects.
// Channel ops wait on ErrWouldBlock via iox.Backoff. Error ops
// short-circuit on Throw.
type chanErrorHandler[E, A any] struct {
	errCtx *kont.ErrorContext[E]
}

// Dispatch implements kont.Handler for the composed Channel+Error
// handler. Dispatch order: Channel → Error.
func (h chanErrorHandler[E, A]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	if cop, ok := op.(chanDispatcher); ok {
		return dispatchWait(cop), true
	}
	if eop, ok := op.(interface {
		DispatchError(ctx *kont.ErrorContext[E]) (kont.Resumed, bool)
	}); ok {
		v, _ := eop.DispatchError(h.errCtx)
		if h.errCtx.HasErr {
			return kont.Left[E, A](h.errCtx.Err), false
		}
		return v, true
	}
	panic("chans: unhandled effect in chanErrorHandler")
}

// ExecError runs a channel protocol with error handling on the calling
// goroutine. Returns Either[E, R] — Right on success, Left on Throw.
// Blocks on iox.ErrWouldBlock via adaptive backoff.
func ExecError[E, R any](protocol kont.Eff[R]) kont.Either[E, R] {
	wrapped := kont.Map[kont.Resumed, R, kont.Either[E, R]](protocol, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	var errCtx kont.ErrorContext[E]
	h := chanErrorHandler[E, R]{errCtx: &errCtx}
	return kont.Handle(wrapped, h)
}

// RunError evaluates two channel protocols with error handling on two
// guarded goroutines and returns both results as Either values.
func RunError[E, A, B any](a kont.Eff[A], b kont.Eff[B]) (kont.Either[E, A], kont.Either[E, B]) {
	var (
		resultA kont.Either[E, A]
		resultB kont.Either[E, B]
	)
	ga := Go(func() { resultA = ExecError[E](a) })
	gb := Go(func() { resultB = ExecError[E](b) })
	ga.Join()
	gb.Join()
	return resultA, resultB
}
