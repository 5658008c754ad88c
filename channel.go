// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chans

import (
	"sync"

	"code.hybscloud.com/iox"
	"github.com/petermattis/goid"

	csync "code.hybscloud.com/chans/internal/sync"
)

// entry is one buffered element tagged with the goroutine that sent it.
// The sender id backs the self-delivery check in dequeueLocked.
type entry[T any] struct {
	sender int64
	value  T
}

// core is the shared synchronization state behind every endpoint view of
// one channel. capacity 0 gives rendezvous semantics, capacity N bounded
// asynchrony.
//
// Invariants (whenever mu is not held by the current goroutine):
//
//   - len(buf) <= capacity+1
//   - sendDone == false implies exactly one sender has enqueued its
//     value and not yet finished waiting on sendEnd for its dequeue
//   - at most one sender at a time observes sendDone == true while
//     enqueueing
type core[T any] struct {
	mu csync.Mutex

	// sendBegin releases a sender into the enqueue step, sendEnd
	// acknowledges that an enqueued value has been dequeued, recvCV
	// reports a non-empty buffer.
	sendBegin *sync.Cond
	sendEnd   *sync.Cond
	recvCV    *sync.Cond

	buf      []entry[T]
	sendDone bool
	capacity int

	// waiters are the notification handles of selects currently
	// registered on this channel.
	waiters []*notifier

	serial Serial
}

func newCore[T any](capacity int) *core[T] {
	if capacity < 0 {
		panic("chans: negative channel capacity")
	}
	c := &core[T]{
		sendDone: true,
		capacity: capacity,
		serial:   nextSerial(),
	}
	c.sendBegin = sync.NewCond(&c.mu)
	c.sendEnd = sync.NewCond(&c.mu)
	c.recvCV = sync.NewCond(&c.mu)
	return c
}

// isFull reports whether the buffer holds more than capacity elements.
// During a rendezvous the buffer momentarily carries the in-flight
// element, so full means capacity+1.
func (c *core[T]) isFull() bool {
	return len(c.buf) > c.capacity
}

// send delivers v, blocking until the buffer has room and, at capacity 0,
// until a receiver has taken v.
func (c *core[T]) send(v T) {
	gid := goid.Get()

	c.mu.Lock()
	for c.isFull() || !c.sendDone {
		c.sendBegin.Wait()
	}
	c.buf = append(c.buf, entry[T]{sender: gid, value: v})
	c.sendDone = false
	ws := c.snapshotWaitersLocked()
	c.mu.Unlock()

	// Unlock before signaling; otherwise the woken receiver would
	// immediately block on the mutex again.
	c.recvCV.Signal()
	wakeAll(ws)

	c.mu.Lock()
	// Checking isFull alone is enough: sendDone == false keeps every
	// other sender parked at the enqueue gate, so only a receiver can
	// drain the buffer while we did not own the lock.
	for c.isFull() {
		c.sendEnd.Wait()
	}
	c.sendDone = true
	ws = c.snapshotWaitersLocked()
	c.mu.Unlock()

	// See the scenario described in ackSend.
	c.sendBegin.Signal()
	wakeAll(ws)
}

// trySend is the non-blocking send used by selects and the protocol
// dispatchers. It enqueues without awaiting dequeue acknowledgment and
// returns iox.ErrWouldBlock when the buffer is full or a sender is still
// in flight.
func (c *core[T]) trySend(v T) error {
	c.mu.Lock()
	if c.isFull() || !c.sendDone {
		c.mu.Unlock()
		return iox.ErrWouldBlock
	}
	// Sender id 0 marks a detached enqueue: no sender blocks on this
	// entry, so the self-delivery check does not apply to it.
	c.buf = append(c.buf, entry[T]{value: v})
	ws := c.snapshotWaitersLocked()
	c.mu.Unlock()

	c.recvCV.Signal()
	wakeAll(ws)
	return nil
}

// dequeue blocks until the buffer is non-empty, removes the front
// element, and returns it.
func (c *core[T]) dequeue() T {
	c.mu.Lock()
	for len(c.buf) == 0 {
		c.recvCV.Wait()
	}
	v := c.dequeueLocked()
	inFlight := !c.sendDone
	ws := c.snapshotWaitersLocked()
	c.mu.Unlock()

	c.ackSend(inFlight)
	wakeAll(ws)
	return v
}

// ackSend releases the correct sender after a dequeue. With two senders
// s and s' serialized on this core, s' blocked awaiting acknowledgment
// on sendEnd must be released before s may observe sendDone == true, so
// an in-flight sender is always targeted first. With no sender in
// flight, nobody waits on sendEnd; a sender parked at the enqueue gate
// behind a select-enqueued value waits on sendBegin instead.
func (c *core[T]) ackSend(inFlight bool) {
	if inFlight {
		c.sendEnd.Signal()
	} else {
		c.sendBegin.Signal()
	}
}

// tryRecv is the non-blocking receive used by selects and the protocol
// dispatchers. Returns iox.ErrWouldBlock when the buffer is empty.
func (c *core[T]) tryRecv() (T, error) {
	c.mu.Lock()
	if len(c.buf) == 0 {
		c.mu.Unlock()
		var zero T
		return zero, iox.ErrWouldBlock
	}
	v := c.dequeueLocked()
	inFlight := !c.sendDone
	ws := c.snapshotWaitersLocked()
	c.mu.Unlock()

	c.ackSend(inFlight)
	wakeAll(ws)
	return v, nil
}

// dequeueLocked removes and returns the front element. The caller holds
// mu and has checked that the buffer is non-empty.
func (c *core[T]) dequeueLocked() T {
	e := c.buf[0]
	// A goroutine never takes the value it is itself still sending:
	// that sender is blocked, not receiving. Holds whenever the send
	// was waiting on a full buffer.
	if c.isFull() && e.sender == goid.Get() {
		panic("chans: goroutine receiving its own in-flight send")
	}

	n := copy(c.buf, c.buf[1:])
	var zero entry[T]
	c.buf[n] = zero
	c.buf = c.buf[:n]

	if c.isFull() {
		panic("chans: buffer exceeds capacity after dequeue")
	}
	return e.value
}

// register adds a select's notification handle to this channel.
// Every subsequent state transition signals the handle.
func (c *core[T]) register(n *notifier) {
	c.mu.Lock()
	c.waiters = append(c.waiters, n)
	c.mu.Unlock()
}

// deregister removes a previously registered handle. Idempotent: a
// handle that was already removed, or never registered, is a no-op.
func (c *core[T]) deregister(n *notifier) {
	c.mu.Lock()
	for i, w := range c.waiters {
		if w == n {
			last := len(c.waiters) - 1
			c.waiters[i] = c.waiters[last]
			c.waiters[last] = nil
			c.waiters = c.waiters[:last]
			break
		}
	}
	c.mu.Unlock()
}

// snapshotWaitersLocked copies the registered handles so they can be
// signaled after mu is released.
func (c *core[T]) snapshotWaitersLocked() []*notifier {
	if len(c.waiters) == 0 {
		return nil
	}
	return append([]*notifier(nil), c.waiters...)
}
