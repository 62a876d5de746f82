// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer contains the portable pointer events delivered to
// subscribers of the bridge.
package pointer

import (
	"fmt"
	"image"
)

// Event is a pointer event. Events are plain values; they own no
// native resources and may be copied freely.
type Event struct {
	Kind Kind
	// Position is the location of the primary pointer in device
	// pixels. It is only meaningful for Move events.
	Position image.Point
}

// Kind of an Event.
type Kind uint8

const (
	// Press of the primary pointer.
	Press Kind = iota
	// Release of the primary pointer.
	Release
	// Move of the primary pointer.
	Move
)

func (k Kind) String() string {
	switch k {
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Move:
		return "Move"
	default:
		return fmt.Sprintf("pointer.Kind(%d)", uint8(k))
	}
}
