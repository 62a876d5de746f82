// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"
	"testing"

	"droidglue.org/io/pointer"
)

func TestTranslatePress(t *testing.T) {
	for _, action := range []int32{actionDown, actionPointerDown} {
		for _, p := range []image.Point{{X: 10, Y: 20}, {X: 0, Y: 0}, {X: -5, Y: -40}} {
			events := translateMotion(action, samplerAt(t, p))
			assertEvents(t, events,
				pointer.Event{Kind: pointer.Move, Position: p},
				pointer.Event{Kind: pointer.Press},
			)
		}
	}
}

func TestTranslateRelease(t *testing.T) {
	for _, action := range []int32{actionUp, actionOutside, actionCancel, actionPointerUp} {
		events := translateMotion(action, func() image.Point {
			t.Fatalf("action %d: position sampled for a release", action)
			return image.Point{}
		})
		assertEvents(t, events, pointer.Event{Kind: pointer.Release})
	}
}

func TestTranslateMove(t *testing.T) {
	p := image.Pt(120, 240)
	events := translateMotion(actionMove, samplerAt(t, p))
	assertEvents(t, events, pointer.Event{Kind: pointer.Move, Position: p})
}

func TestTranslateUnknownAction(t *testing.T) {
	// Unrecognized codes fall through to plain motion.
	p := image.Pt(1, 1)
	events := translateMotion(12, samplerAt(t, p))
	assertEvents(t, events, pointer.Event{Kind: pointer.Move, Position: p})
}

func TestTranslateMasksActionCode(t *testing.T) {
	// A real POINTER_DOWN carries the pointer index in the high bits.
	const action = 0x0105
	events := translateMotion(action, samplerAt(t, image.Pt(9, 9)))
	if len(events) != 2 || events[1].Kind != pointer.Press {
		t.Errorf("masked action %#x not classified as press: %+v", action, events)
	}
}

func samplerAt(t *testing.T, p image.Point) func() image.Point {
	t.Helper()
	called := false
	return func() image.Point {
		if called {
			t.Error("position sampled more than once")
		}
		called = true
		return p
	}
}

func assertEvents(t *testing.T, got []pointer.Event, want ...pointer.Event) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("got %d events (%+v), want %d (%+v)", len(got), got, len(want), want)
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}
