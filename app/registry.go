// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"sync"

	"golang.org/x/exp/slices"

	"droidglue.org/io/pointer"
)

// endpoint is one subscriber's sending side. done is closed by the
// subscriber's cancel function; a done endpoint is pruned on the next
// publish.
type endpoint struct {
	events chan<- pointer.Event
	done   chan struct{}
}

func (e *endpoint) dead() bool {
	select {
	case <-e.done:
		return true
	default:
		return false
	}
}

// registry fans pointer events out to subscribers. Its address is
// stashed in the android_app userData slot so the input callback can
// reach it; subscribe runs on whatever goroutine the user calls it
// from, publish only on the poll thread.
type registry struct {
	mu        sync.Mutex
	endpoints []*endpoint
}

func (r *registry) subscribe(ch chan<- pointer.Event) (cancel func()) {
	e := &endpoint{events: ch, done: make(chan struct{})}
	r.mu.Lock()
	r.endpoints = append(r.endpoints, e)
	r.mu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() { close(e.done) })
	}
}

// publish delivers ev to every live endpoint in subscription order.
// Delivery is best effort: a full endpoint misses this event, a
// cancelled endpoint is pruned, and neither stops delivery to the rest.
func (r *registry) publish(ev pointer.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pruned := false
	for _, e := range r.endpoints {
		if e.dead() {
			pruned = true
			continue
		}
		select {
		case e.events <- ev:
		default:
		}
	}
	if pruned {
		r.endpoints = slices.DeleteFunc(r.endpoints, (*endpoint).dead)
	}
}

func (r *registry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.endpoints)
}
