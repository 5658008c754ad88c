// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command sieve runs the classical inefficient concurrent prime sieve
// over a daisy-chain of filter goroutines, emitting one prime per line.
package main

import (
	"fmt"

	"code.hybscloud.com/chans"
)

const limit = 94321

// generate sends the sequence 2, 3, 4, ..., limit to c.
func generate(c chans.OutChan[uint]) {
	for i := uint(2); i <= limit; i++ {
		c.Send(i)
	}
}

// filter copies n from in to out iff n is not divisible by prime,
// until the sequence passes limit.
func filter(in chans.InChan[uint], out chans.OutChan[uint], prime uint) {
	for {
		n := in.Recv()
		if n%prime != 0 {
			out.Send(n)
		}
		if n >= limit {
			return
		}
	}
}

// sieve daisy-chains filter goroutines, forwarding each prime to primes.
func sieve(primes chans.OutChan[uint]) {
	c := chans.New[uint](0)
	guards := []*chans.Guard{chans.Go(func() { generate(c.Out()) })}

	for {
		prime := c.Recv()
		primes.Send(prime)
		if prime >= limit {
			break
		}

		next := chans.New[uint](0)
		in, out := c.In(), next.Out()
		guards = append(guards, chans.Go(func() { filter(in, out, prime) }))
		c = next
	}

	for _, g := range guards {
		g.Join()
	}
}

func main() {
	primes := chans.New[uint](0)
	g := chans.Go(func() { sieve(primes.Out()) })
	defer g.Join()

	for {
		p := primes.Recv()
		fmt.Println(p)
		if p >= limit {
			return
		}
	}
}
