// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command event simulates slow event waiting: 100 channels with 10
// listener goroutines each, either blocking in Select.Wait or polling
// with Select.TryOnce. The producer broadcasts a message one character
// at a time and finally the '!' sentinel to unwind the listeners.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"code.hybscloud.com/chans"
)

const (
	threadCount  = 10
	channelCount = 100
)

var log = logrus.New()

// listenWait consumes events with a blocking select.
func listenWait(c chans.InChan[byte]) {
	log.Info("starting wait listener")
	exit := false
	for !exit {
		chans.NewSelect(chans.RecvFunc(c, func(ch byte) {
			if ch == '!' {
				exit = true
			}
			log.WithField("event", string(ch)).Info("received")
		})).Wait()
	}
	log.Info("exiting wait listener")
}

// listenTryOnce polls for events with a non-blocking select.
func listenTryOnce(c chans.InChan[byte]) {
	log.Info("starting try_once listener")
	exit := false
	for !exit {
		chans.NewSelect(chans.RecvFunc(c, func(ch byte) {
			if ch == '!' {
				exit = true
			}
			log.WithField("event", string(ch)).Info("received")
		})).TryOnce()
		time.Sleep(50 * time.Millisecond)
	}
	log.Info("exiting try_once listener")
}

func usage() {
	fmt.Println("Specify either 'wait' or 'try_once'")
	os.Exit(1)
}

func main() {
	if len(os.Args) != 2 {
		usage()
	}
	mode := os.Args[1]
	if mode != "wait" && mode != "try_once" {
		usage()
	}

	var listeners []*chans.Guard
	var channels []chans.Chan[byte]

	for c := 0; c < channelCount; c++ {
		events := chans.New[byte](0)
		channels = append(channels, events)
		for i := 0; i < threadCount; i++ {
			in := events.In()
			if mode == "wait" {
				listeners = append(listeners, chans.Go(func() { listenWait(in) }))
			} else {
				listeners = append(listeners, chans.Go(func() { listenTryOnce(in) }))
			}
		}
	}

	for _, ch := range []byte("Hello World") {
		for _, events := range channels {
			events.Send(ch)
		}
		time.Sleep(3 * time.Second)
	}
	for _, events := range channels {
		for i := 0; i < threadCount; i++ {
			events.Send('!')
		}
	}
	for _, g := range listeners {
		g.Join()
	}
}
