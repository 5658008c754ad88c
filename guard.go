// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chans

// Guard tracks a goroutine spawned with Go and joins it on demand.
// Deferring Join when the guard is created ensures the surrounding
// scope cannot return while the goroutine is still running.
//
//	g := chans.Go(worker)
//	defer g.Join()
//
// A Guard has no interaction with channel state.
type Guard struct {
	done chan struct{}
}

// Go runs fn on a new goroutine and returns its guard.
func Go(fn func()) *Guard {
	g := &Guard{done: make(chan struct{})}
	go func() {
		defer close(g.done)
		fn()
	}()
	return g
}

// Join blocks until the guarded goroutine has returned. Idempotent:
// joining an already-finished goroutine returns immediately.
func (g *Guard) Join() {
	<-g.done
}
