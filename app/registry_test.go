// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"
	"testing"

	"droidglue.org/io/pointer"
)

func TestPublishFanOut(t *testing.T) {
	r := new(registry)
	const n = 5
	var chans []chan pointer.Event
	for i := 0; i < n; i++ {
		ch := make(chan pointer.Event, 1)
		chans = append(chans, ch)
		r.subscribe(ch)
	}
	ev := pointer.Event{Kind: pointer.Move, Position: image.Pt(3, 4)}
	r.publish(ev)
	for i, ch := range chans {
		got := recvOne(t, ch)
		if got != ev {
			t.Errorf("endpoint %d: got %+v, want %+v", i, got, ev)
		}
		select {
		case extra := <-ch:
			t.Errorf("endpoint %d: unexpected second event %+v", i, extra)
		default:
		}
	}
}

func TestPublishBeforeSubscribe(t *testing.T) {
	r := new(registry)
	r.publish(pointer.Event{Kind: pointer.Press})
	ch := make(chan pointer.Event, 1)
	r.subscribe(ch)
	select {
	case ev := <-ch:
		t.Errorf("received event %+v published before subscribing", ev)
	default:
	}
}

func TestPublishDuplicateEndpoint(t *testing.T) {
	r := new(registry)
	ch := make(chan pointer.Event, 2)
	r.subscribe(ch)
	r.subscribe(ch)
	r.publish(pointer.Event{Kind: pointer.Release})
	if got := len(ch); got != 2 {
		t.Errorf("channel subscribed twice received %d events, want 2", got)
	}
}

func TestPublishSkipsFullEndpoint(t *testing.T) {
	r := new(registry)
	full := make(chan pointer.Event) // unbuffered, nobody receiving
	ok := make(chan pointer.Event, 1)
	r.subscribe(full)
	r.subscribe(ok)
	ev := pointer.Event{Kind: pointer.Move, Position: image.Pt(1, 2)}
	r.publish(ev)
	if got := recvOne(t, ok); got != ev {
		t.Errorf("endpoint after full one got %+v, want %+v", got, ev)
	}
}

func TestCancelPrunes(t *testing.T) {
	r := new(registry)
	dead := make(chan pointer.Event, 1)
	live := make(chan pointer.Event, 1)
	cancel := r.subscribe(dead)
	r.subscribe(live)
	cancel()
	cancel() // idempotent
	ev := pointer.Event{Kind: pointer.Move, Position: image.Pt(7, 8)}
	r.publish(ev)
	select {
	case got := <-dead:
		t.Errorf("cancelled endpoint received %+v", got)
	default:
	}
	if got := recvOne(t, live); got != ev {
		t.Errorf("live endpoint got %+v, want %+v", got, ev)
	}
	if got := r.len(); got != 1 {
		t.Errorf("registry has %d endpoints after prune, want 1", got)
	}
}

func recvOne(t *testing.T, ch <-chan pointer.Event) pointer.Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	default:
		t.Fatal("no event received")
		return pointer.Event{}
	}
}
