// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app bridges Android's NativeActivity main loop to a Go entry
function.

The package is built into a c-shared library loaded by a NativeActivity
backed by the NDK's android_native_app_glue. The glue calls the exported
android_main on its own thread; app takes that thread over for the
native event loop and runs the registered entry function on an
independent goroutine.

# Entry point

The program's main package registers its entry function from an init
function and leaves main empty; in c-shared mode main never runs:

	func init() { app.Register(run) }

	func main() {}

	func run() {
		events, cancel := app.Subscribe(0)
		defer cancel()
		for e := range events {
			...
		}
	}

# Threads

The Android looper is thread-affine, so only the thread android_main was
called on touches it. The entry function runs elsewhere and talks to the
platform through Subscribe, NativeWindow and LoadAsset, all safe to call
from any goroutine once android_main has run. Calling them earlier is a
programming error and panics.

# Configuration

An optional bundled asset named droidglue.yaml tunes the bridge; see
Options.
*/
package app
