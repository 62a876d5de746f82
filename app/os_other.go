// SPDX-License-Identifier: Unlicense OR MIT

//go:build !android

package app

import "unsafe"

// The bridge only comes up on Android. Off-platform every accessor
// reports the uninitialized state, the same as calling it before
// android_main has run.

func currentRegistry() *registry {
	panic(errNotInitialized)
}

// NativeWindow returns the native window handle, blocking until the
// platform has created one. Off Android it always panics.
func NativeWindow() unsafe.Pointer {
	panic(errNotInitialized)
}

// LoadAsset returns the full contents of the named bundled asset. Off
// Android it always panics.
func LoadAsset(name string) ([]byte, error) {
	panic(errNotInitialized)
}
