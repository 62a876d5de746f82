// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"

	"droidglue.org/io/pointer"
)

// Motion event action codes, mirroring android/input.h. The NDK values
// are stable ABI; keeping them here lets the classifier run without
// cgo.
const (
	actionMask        = 0xff
	actionDown        = 0
	actionUp          = 1
	actionMove        = 2
	actionCancel      = 3
	actionOutside     = 4
	actionPointerDown = 5
	actionPointerUp   = 6
)

// translateMotion classifies a masked motion action into the portable
// events to publish, in order. sample reports the primary pointer's
// position in device pixels; it is consulted only for actions that
// carry a position, never for releases.
//
// A press is translated to a Move followed by a Press so a consumer
// always has a known position before the press arrives.
func translateMotion(action int32, sample func() image.Point) []pointer.Event {
	switch action & actionMask {
	case actionUp, actionOutside, actionCancel, actionPointerUp:
		return []pointer.Event{{Kind: pointer.Release}}
	case actionDown, actionPointerDown:
		p := sample()
		return []pointer.Event{
			{Kind: pointer.Move, Position: p},
			{Kind: pointer.Press},
		}
	default:
		return []pointer.Event{{Kind: pointer.Move, Position: sample()}}
	}
}
