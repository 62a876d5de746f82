// SPDX-License-Identifier: Unlicense OR MIT

package main

// A minimal bridge program: logs every touch and the greeting asset.
// Build with gomobile or a c-shared toolchain targeting Android; main
// never runs, the NativeActivity glue drives the process through
// android_main.

import (
	"fmt"

	"droidglue.org/app"
	"droidglue.org/io/pointer"
)

func init() {
	app.Register(run)
}

func main() {}

func run() {
	if greeting, err := app.LoadAsset("greeting.txt"); err == nil {
		app.WriteLog(string(greeting))
	}
	events, cancel := app.Subscribe(0)
	defer cancel()
	app.WriteLog(fmt.Sprintf("window ready: %v", app.NativeWindow()))
	for e := range events {
		switch e.Kind {
		case pointer.Press:
			app.WriteLog("pressed")
		case pointer.Release:
			app.WriteLog("released")
		case pointer.Move:
			app.WriteLog(fmt.Sprintf("moved to %d,%d", e.Position.X, e.Position.Y))
		}
	}
}
