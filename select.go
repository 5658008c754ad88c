// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chans

import "time"

// notifier is a select's shared wake-up signal: a sticky capacity-1
// channel. signal never blocks and coalesces with a pending signal, so
// a state transition racing with a scan is never lost.
type notifier struct {
	ch chan struct{}
}

func newNotifier() *notifier {
	return &notifier{ch: make(chan struct{}, 1)}
}

func (n *notifier) signal() {
	select {
	case n.ch <- struct{}{}:
	default:
	}
}

func wakeAll(ws []*notifier) {
	for _, w := range ws {
		w.signal()
	}
}

// waitable is the registration surface a case exposes to its select,
// erasing the case's element type.
type waitable interface {
	register(*notifier)
	deregister(*notifier)
}

// Case is one send or receive candidate of a select. Construct with
// RecvOnly, Recv, RecvFunc, SendOnly, or Send. The interface is sealed.
type Case interface {
	// state returns the channel core the case is bound to.
	state() waitable
	// fire attempts the case's data transfer; on success it runs the
	// case's callback and reports true. Never blocks.
	fire() bool
}

type recvCase[T any] struct {
	c   *core[T]
	out *T
	cb  func()
	cbv func(T)
}

func (rc recvCase[T]) state() waitable { return rc.c }

func (rc recvCase[T]) fire() bool {
	v, err := rc.c.tryRecv()
	if err != nil {
		return false
	}
	if rc.out != nil {
		*rc.out = v
	}
	if rc.cb != nil {
		rc.cb()
	}
	if rc.cbv != nil {
		rc.cbv(v)
	}
	return true
}

type sendCase[T any] struct {
	c  *core[T]
	v  T
	cb func()
}

func (sc sendCase[T]) state() waitable { return sc.c }

func (sc sendCase[T]) fire() bool {
	if sc.c.trySend(sc.v) != nil {
		return false
	}
	if sc.cb != nil {
		sc.cb()
	}
	return true
}

// RecvOnly is a receive case that stores the received value in out.
func RecvOnly[T any](ep RecvEndpoint[T], out *T) Case {
	return recvCase[T]{c: ep.recvCore(), out: out}
}

// Recv is a receive case that stores the received value in out and then
// invokes cb.
func Recv[T any](ep RecvEndpoint[T], out *T, cb func()) Case {
	return recvCase[T]{c: ep.recvCore(), out: out, cb: cb}
}

// RecvFunc is a receive case that invokes cb with the received value.
func RecvFunc[T any](ep RecvEndpoint[T], cb func(T)) Case {
	return recvCase[T]{c: ep.recvCore(), cbv: cb}
}

// SendOnly is a send case that delivers v when the endpoint can accept
// a send.
func SendOnly[T any](ep SendEndpoint[T], v T) Case {
	return sendCase[T]{c: ep.sendCore(), v: v}
}

// Send is a send case that delivers v and then invokes cb.
func Send[T any](ep SendEndpoint[T], v T, cb func()) Case {
	return sendCase[T]{c: ep.sendCore(), v: v, cb: cb}
}

// Select multiplexes over a set of send and receive cases and fires
// exactly one that is ready. A Select is an ephemeral, single-goroutine
// builder: populate it with NewSelect and Add, then consume it with
// exactly one of Wait, WaitFor, or TryOnce.
//
// Cases are attempted in the order they were added. Binding both ends
// of the same channel into one Select is unsupported and its behavior
// is undefined.
type Select struct {
	cases []Case
	done  bool
}

// NewSelect creates a select over the given cases.
func NewSelect(cases ...Case) *Select {
	return &Select{cases: cases}
}

// Add appends more cases and returns the builder.
func (s *Select) Add(cases ...Case) *Select {
	if s.done {
		panic("chans: select already consumed")
	}
	s.cases = append(s.cases, cases...)
	return s
}

// consume moves the builder out of the building state. Each Select is
// single-shot.
func (s *Select) consume() {
	if s.done {
		panic("chans: select already consumed")
	}
	s.done = true
}

// Wait blocks the calling goroutine until one case has fired, then
// returns. A Wait with no cases would block forever and panics instead.
func (s *Select) Wait() {
	s.wait(nil)
}

// WaitFor behaves like Wait but gives up once d has elapsed without any
// case firing, reporting whether a case fired. The duration is a
// monotonic interval; WaitFor never returns early without firing.
func (s *Select) WaitFor(d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	return s.wait(t.C)
}

func (s *Select) wait(timeout <-chan time.Time) bool {
	s.consume()
	if len(s.cases) == 0 {
		panic("chans: wait on a select with no cases")
	}

	// Registration + notify-any: register first, then scan, so a state
	// transition concurrent with the scan leaves a sticky signal and
	// the rescan observes it.
	n := newNotifier()
	for _, cs := range s.cases {
		cs.state().register(n)
	}
	defer func() {
		for _, cs := range s.cases {
			cs.state().deregister(n)
		}
	}()

	for {
		for _, cs := range s.cases {
			if cs.fire() {
				return true
			}
		}
		select {
		case <-n.ch:
		case <-timeout:
			return false
		}
	}
}

// TryOnce inspects each case once, in order, and fires the first ready
// one. Reports whether a case fired. Never blocks.
func (s *Select) TryOnce() bool {
	s.consume()
	for _, cs := range s.cases {
		if cs.fire() {
			return true
		}
	}
	return false
}
