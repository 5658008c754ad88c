// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chans

import (
	"code.hybscloud.com/kont"
)

// SendOp is the effect operation for sending a value of type T on the
// bound endpoint. Perform(SendOp[T]{Ch: out, Value: v}) delivers v.
type SendOp[T any] struct {
	kont.Phantom[struct{}]
	Ch    OutChan[T]
	Value T
}

// DispatchChan handles SendOp on the channel. Non-blocking: returns
// iox.ErrWouldBlock while the buffer is full or a sender is in flight.
func (s SendOp[T]) DispatchChan() (kont.Resumed, error) {
	if err := s.Ch.c.trySend(s.Value); err != nil {
		return nil, err
	}
	return struct{}{}, nil
}

// RecvOp is the effect operation for receiving a value of type T from
// the bound endpoint. Perform(RecvOp[T]{Ch: in}) yields the value.
type RecvOp[T any] struct {
	kont.Phantom[T]
	Ch InChan[T]
}

// DispatchChan handles RecvOp on the channel. Non-blocking: returns
// iox.ErrWouldBlock while the buffer is empty.
func (r RecvOp[T]) DispatchChan() (kont.Resumed, error) {
	v, err := r.Ch.c.tryRecv()
	if err != nil {
		return nil, err
	}
	return v, nil
}

// chanDispatcher is the structural interface for channel operations.
// DispatchChan is non-blocking: it returns iox.ErrWouldBlock at the
// boundary when the channel cannot make progress.
type chanDispatcher interface {
	DispatchChan() (kont.Resumed, error)
}
