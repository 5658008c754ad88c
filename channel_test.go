// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chans_test

import (
	"testing"

	"code.hybscloud.com/chans"
)

func TestSenderReceiver(t *testing.T) {
	c := chans.New[byte](0)

	var gotA, gotB byte
	a := chans.Go(func() {
		c.Send('A')
		gotA = c.Recv()
	})
	b := chans.Go(func() {
		gotB = c.Recv()
		c.Send('B')
	})
	a.Join()
	b.Join()

	if gotA != 'B' {
		t.Fatalf("thread a received %q, want %q", gotA, 'B')
	}
	if gotB != 'A' {
		t.Fatalf("thread b received %q, want %q", gotB, 'A')
	}
}

func TestChannel(t *testing.T) {
	c := chans.New[int](0)

	var got int
	done := false
	f := chans.Go(func() { c.Send(7) })
	g := chans.Go(func() {
		got = c.Recv()
		done = true
	})
	f.Join()
	g.Join()

	if !done {
		t.Fatal("receiver did not finish")
	}
	if got != 7 {
		t.Fatalf("received %d, want 7", got)
	}
}

func TestDirectedChannel(t *testing.T) {
	c := chans.New[int](0)
	out := c.Out()
	in := c.In()

	var got int
	f := chans.Go(func() { out.Send(7) })
	g := chans.Go(func() { got = in.Recv() })
	f.Join()
	g.Join()

	if got != 7 {
		t.Fatalf("received %d, want 7", got)
	}
}

func TestMultipleSendersReceivers(t *testing.T) {
	c := chans.New[byte](0)

	sa := chans.Go(func() { c.Send('A') })
	sb := chans.Go(func() { c.Send('B') })

	var ra, rb byte
	ga := chans.Go(func() { ra = c.Recv() })
	gb := chans.Go(func() { rb = c.Recv() })

	sa.Join()
	sb.Join()
	ga.Join()
	gb.Join()

	if !(ra == 'A' || ra == 'B') || !(rb == 'A' || rb == 'B') {
		t.Fatalf("received %q and %q, want 'A' and 'B' in some order", ra, rb)
	}
	if ra == rb {
		t.Fatalf("both receivers got %q, want distinct values", ra)
	}
}

func TestCopy(t *testing.T) {
	c := chans.New[int](0)
	d := c
	if c != d {
		t.Fatalf("copy %v not equal to original %v", d, c)
	}
}

func TestAssignment(t *testing.T) {
	c := chans.New[int](0)
	d := chans.New[int](0)

	if c == d {
		t.Fatalf("distinct channels %v and %v compare equal", c, d)
	}
	d = c
	if c != d {
		t.Fatalf("assigned channel %v not equal to %v", d, c)
	}
}

func TestDirectionalCast(t *testing.T) {
	c := chans.New[int](0)
	d := c.In()
	e := c.Out()

	if d != c.In() {
		t.Fatalf("receive views of one channel differ: %v vs %v", d, c.In())
	}
	if e != c.Out() {
		t.Fatalf("send views of one channel differ: %v vs %v", e, c.Out())
	}

	other := chans.New[int](0)
	if d == other.In() {
		t.Fatal("receive views of distinct channels compare equal")
	}
	if e == other.Out() {
		t.Fatal("send views of distinct channels compare equal")
	}
}

func TestHigherOrderChannel(t *testing.T) {
	c := chans.New[chans.Chan[bool]](0)
	done := chans.New[bool](0)

	f := chans.Go(func() {
		inner := c.Recv()
		inner.Send(true)
	})
	defer f.Join()

	c.Send(done)
	if got := done.Recv(); !got {
		t.Fatalf("received %v through forwarded channel, want true", got)
	}
}

func TestHigherOrderChannelWithCast(t *testing.T) {
	c := chans.New[chans.Chan[bool]](0)
	done := chans.New[bool](0)

	f := chans.Go(func() {
		inner := c.Recv().Out()
		inner.Send(true)
	})
	defer f.Join()

	c.Send(done)
	if got := done.Recv(); !got {
		t.Fatalf("received %v through forwarded channel, want true", got)
	}
}

func TestRecvInto(t *testing.T) {
	c := chans.New[int](0)
	f := chans.Go(func() { c.Send(7) })
	defer f.Join()

	var got int
	c.RecvInto(&got)
	if got != 7 {
		t.Fatalf("received %d, want 7", got)
	}
}

func TestRecvPtr(t *testing.T) {
	c := chans.New[int](0)
	f := chans.Go(func() { c.Send(7) })
	defer f.Join()

	got := c.RecvPtr()
	if got == nil || *got != 7 {
		t.Fatalf("received %v, want pointer to 7", got)
	}
}

func TestInterThreadAsynchronousChannel(t *testing.T) {
	c := chans.New[byte](3)

	// nonblocking, the buffer has room for all three
	c.Send('A')
	c.Send('B')
	c.Send('C')

	var got [3]byte
	f := chans.Go(func() {
		got[0] = c.Recv()
		got[1] = c.Recv()
		got[2] = c.Recv()
	})
	f.Join()

	if got != [3]byte{'A', 'B', 'C'} {
		t.Fatalf("received %q, want \"ABC\"", got[:])
	}
}

func TestIntraThreadAsynchronousChannel(t *testing.T) {
	c := chans.New[byte](3)

	c.Send('A')
	c.Send('B')
	c.Send('C')

	if a := c.Recv(); a != 'A' {
		t.Fatalf("first receive %q, want 'A'", a)
	}
	if b := c.Recv(); b != 'B' {
		t.Fatalf("second receive %q, want 'B'", b)
	}
	if cc := c.Recv(); cc != 'C' {
		t.Fatalf("third receive %q, want 'C'", cc)
	}
}

func TestFIFOOrder(t *testing.T) {
	const n = 100
	for _, capacity := range []int{0, 1, 3, 16} {
		c := chans.New[int](capacity)
		f := chans.Go(func() {
			for i := 0; i < n; i++ {
				c.Send(i)
			}
		})
		for i := 0; i < n; i++ {
			if got := c.Recv(); got != i {
				t.Fatalf("cap %d: receive %d returned %d, want %d", capacity, i, got, i)
			}
		}
		f.Join()
	}
}

func TestNegativeCapacityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("New with negative capacity did not panic")
		}
	}()
	chans.New[int](-1)
}
