// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"github.com/eapache/queue"

	"droidglue.org/io/pointer"
)

// pumpBuffer is the capacity of the registry-facing channel of an
// unbounded endpoint. The pump drains it continuously; the buffer only
// absorbs scheduling jitter between the poll thread and the pump.
const pumpBuffer = 64

// pump moves events from in to out through an unbounded FIFO, so a
// slow receiver on out never causes in to fill up. It returns when
// done is closed.
func pump(in <-chan pointer.Event, out chan<- pointer.Event, done <-chan struct{}) {
	q := queue.New()
	for {
		var send chan<- pointer.Event
		var next pointer.Event
		if q.Length() > 0 {
			send = out
			next = q.Peek().(pointer.Event)
		}
		select {
		case ev := <-in:
			q.Add(ev)
		case send <- next:
			q.Remove()
		case <-done:
			return
		}
	}
}
