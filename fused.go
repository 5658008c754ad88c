// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chans

import (
	"code.hybscloud.com/kont"
)

// SendThen sends v on out and then continues with next.
// Fuses Perform(SendOp[T]{...}) + Then.
func SendThen[T, B any](out OutChan[T], v T, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(SendOp[T]{Ch: out, Value: v}), next)
}

// RecvBind receives a value from in and passes it to f.
// Fuses Perform(RecvOp[T]{...}) + Bind.
func RecvBind[T, B any](in InChan[T], f func(T) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(RecvOp[T]{Ch: in}), f)
}

// Done completes a protocol with the result a. Channels have no close
// operation, so a protocol simply finishes.
func Done[A any](a A) kont.Eff[A] {
	return kont.Pure(a)
}
