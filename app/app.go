// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"sync"

	"droidglue.org/app/internal/log"
	"droidglue.org/io/pointer"
)

const errNotInitialized = "app: not initialized; android_main has not run"

var mainFunc func()

// theOptions is written once during android_main, before the entry
// goroutine starts, and read freely afterwards.
var theOptions = defaultOptions()

// Register records the entry function run on its own goroutine when the
// host calls android_main. It must be called before the host does,
// typically from an init function in the program's main package.
func Register(entry func()) {
	if entry == nil {
		panic("app: Register with nil entry")
	}
	if mainFunc != nil {
		panic("app: Register called twice")
	}
	mainFunc = entry
}

// Subscribe returns a fresh endpoint receiving every pointer event
// published after it returns, and a cancel function that marks the
// endpoint for pruning. A non-positive buffer selects the configured
// default capacity. Delivery is best effort: events published while
// the buffer is full are dropped for this endpoint only.
func Subscribe(buffer int) (<-chan pointer.Event, func()) {
	if buffer <= 0 {
		buffer = theOptions.EventBuffer
	}
	ch := make(chan pointer.Event, buffer)
	return ch, currentRegistry().subscribe(ch)
}

// SubscribeChan registers a caller-owned channel as an endpoint. The
// same channel may be registered more than once; it then receives every
// event once per registration.
func SubscribeChan(ch chan<- pointer.Event) (cancel func()) {
	return currentRegistry().subscribe(ch)
}

// SubscribeUnbounded returns an endpoint backed by an unbounded FIFO,
// for consumers that cannot afford to drop events. The returned channel
// is unbuffered; a pump goroutine drains the registry side so a slow
// receiver never stalls the poll thread.
func SubscribeUnbounded() (<-chan pointer.Event, func()) {
	in := make(chan pointer.Event, pumpBuffer)
	out := make(chan pointer.Event)
	cancelReg := currentRegistry().subscribe(in)
	done := make(chan struct{})
	go pump(in, out, done)
	var once sync.Once
	return out, func() {
		once.Do(func() {
			cancelReg()
			close(done)
		})
	}
}

// WriteLog writes a single line to the platform log.
func WriteLog(msg string) {
	log.Write(msg)
}
