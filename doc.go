// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package chans provides typed, first-class channels between
// preemptively scheduled goroutines, in the channel-and-select style of
// the Go language itself — but as library values with an explicit
// synchronization engine.
//
// Unlike native Go channels, a [Chan] cannot be nil and cannot be
// closed: sending and receiving stay legal for the whole lifetime of
// the last endpoint. Producers arrange a sentinel value to unwind
// consumers.
//
// # Architecture
//
//   - Core: each channel is a mutex plus three condition variables over
//     a bounded FIFO. Capacity 0 is a rendezvous (a send returns only
//     once its value has been consumed), capacity N bounded asynchrony.
//     Build with the deadlock tag to swap in a deadlock-detecting mutex.
//   - Endpoints: [Chan] is bidirectional; [InChan] and [OutChan] are
//     direction-restricted views sharing the same core. Endpoints are
//     cheaply copyable and compare equal iff they alias one core.
//   - Select: [NewSelect] multiplexes over [Recv], [RecvOnly],
//     [RecvFunc], [Send], and [SendOnly] cases; [Select.Wait] blocks
//     until one case fires, [Select.WaitFor] bounds the wait, and
//     [Select.TryOnce] never suspends. Selects coordinate with channel
//     cores through registered sticky notifiers.
//   - Non-blocking boundary: the select scan and the protocol
//     dispatchers use non-blocking primitives that return
//     [code.hybscloud.com/iox.ErrWouldBlock] on backpressure.
//
// # Protocol world
//
// Channel programs can also be written as [code.hybscloud.com/kont]
// effect protocols: [SendOp] and [RecvOp] operations carry their
// endpoints, [SendThen]/[RecvBind]/[Done] compose them, [Loop] builds
// recursive protocols, and [Exec], [Run], [ExecError], [RunError]
// evaluate them with blocking semantics.
//
// # Example
//
//	c := chans.New[int](0)
//	g := chans.Go(func() { c.Send(42) })
//	defer g.Join()
//	v := c.Recv() // rendezvous: 42
//
// Binding both ends of one channel into a single select is unsupported;
// the behavior of such a select is undefined.
package chans
