// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chans

import "fmt"

// Chan is a bidirectional, first-class channel of T values. A Chan is a
// cheap handle onto a shared core: copies and assignments alias the same
// channel, and two handles compare equal with == iff they reference the
// same core. The zero Chan is not usable; construct with New.
//
// Chans cannot be nil and cannot be closed. Sending and receiving stay
// legal for the entire lifetime of the last endpoint, and the core is
// reclaimed when the last endpoint is dropped.
type Chan[T any] struct {
	c *core[T]
}

// New creates a channel with the given buffer capacity.
// Capacity 0 gives a synchronous channel: send returns only after a
// receiver has taken the value. Capacity N > 0 gives an asynchronous
// channel that holds up to N values between a send and a matching
// receive. Negative capacity panics.
func New[T any](capacity int) Chan[T] {
	return Chan[T]{c: newCore[T](capacity)}
}

// Send delivers v on the channel, blocking per the channel's capacity.
func (c Chan[T]) Send(v T) { c.c.send(v) }

// Recv returns the next value from the channel, blocking until one is
// available.
func (c Chan[T]) Recv() T { return c.c.dequeue() }

// RecvInto receives the next value into the caller-provided slot.
func (c Chan[T]) RecvInto(out *T) { *out = c.c.dequeue() }

// RecvPtr receives the next value and returns it as a fresh allocation,
// transferring ownership to the caller.
func (c Chan[T]) RecvPtr() *T {
	v := c.c.dequeue()
	return &v
}

// In returns the receive-only view of the channel.
func (c Chan[T]) In() InChan[T] { return InChan[T]{c: c.c} }

// Out returns the send-only view of the channel.
func (c Chan[T]) Out() OutChan[T] { return OutChan[T]{c: c.c} }

// Cap returns the channel's buffer capacity.
func (c Chan[T]) Cap() int { return c.c.capacity }

// Serial returns the serial number assigned to this channel.
func (c Chan[T]) Serial() Serial { return c.c.serial }

func (c Chan[T]) String() string {
	return fmt.Sprintf("chan#%d(cap=%d)", c.c.serial, c.c.capacity)
}

func (c Chan[T]) recvCore() *core[T] { return c.c }
func (c Chan[T]) sendCore() *core[T] { return c.c }

// InChan is the receive-only view of a channel. The direction
// restriction is a compile-time capability: an InChan is constructed
// from a Chan and cannot be converted back.
type InChan[T any] struct {
	c *core[T]
}

// Recv returns the next value from the channel, blocking until one is
// available.
func (c InChan[T]) Recv() T { return c.c.dequeue() }

// RecvInto receives the next value into the caller-provided slot.
func (c InChan[T]) RecvInto(out *T) { *out = c.c.dequeue() }

// RecvPtr receives the next value and returns it as a fresh allocation.
func (c InChan[T]) RecvPtr() *T {
	v := c.c.dequeue()
	return &v
}

// Cap returns the channel's buffer capacity.
func (c InChan[T]) Cap() int { return c.c.capacity }

// Serial returns the serial number assigned to this channel.
func (c InChan[T]) Serial() Serial { return c.c.serial }

func (c InChan[T]) String() string {
	return fmt.Sprintf("chan#%d(cap=%d)<-", c.c.serial, c.c.capacity)
}

func (c InChan[T]) recvCore() *core[T] { return c.c }

// OutChan is the send-only view of a channel. Constructed from a Chan;
// not convertible back.
type OutChan[T any] struct {
	c *core[T]
}

// Send delivers v on the channel, blocking per the channel's capacity.
func (c OutChan[T]) Send(v T) { c.c.send(v) }

// Cap returns the channel's buffer capacity.
func (c OutChan[T]) Cap() int { return c.c.capacity }

// Serial returns the serial number assigned to this channel.
func (c OutChan[T]) Serial() Serial { return c.c.serial }

func (c OutChan[T]) String() string {
	return fmt.Sprintf("chan#%d(cap=%d)->", c.c.serial, c.c.capacity)
}

func (c OutChan[T]) sendCore() *core[T] { return c.c }

// RecvEndpoint is any endpoint a receive case can bind to: Chan or
// InChan of the same element type. The interface is sealed.
type RecvEndpoint[T any] interface {
	recvCore() *core[T]
}

// SendEndpoint is any endpoint a send case can bind to: Chan or
// OutChan of the same element type. The interface is sealed.
type SendEndpoint[T any] interface {
	sendCore() *core[T]
}
