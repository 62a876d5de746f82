// SPDX-License-Identifier: Unlicense OR MIT

package app

/*
#cgo CFLAGS: -Werror
#cgo LDFLAGS: -landroid -llog

#include <stdlib.h>
#include <android/input.h>
#include <android/looper.h>
#include <android/native_window.h>
#include <android/asset_manager.h>
#include "os_android.h"
*/
import "C"

import (
	"fmt"
	"image"
	"runtime"
	"runtime/cgo"
	"runtime/debug"
	"unsafe"

	"droidglue.org/app/internal/log"
)

// theApp is written once by android_main, before callbacks are
// installed or the entry goroutine starts, and read without further
// synchronization afterwards.
var theApp *C.struct_android_app

//export android_main
func android_main(app *C.struct_android_app) {
	if mainFunc == nil {
		panic("app: no entry registered; call app.Register from an init function")
	}
	bridgeMain(app, mainFunc)
}

// bridgeMain wires the registry into app, starts entry on its own
// goroutine and polls the looper forever on the calling thread.
func bridgeMain(app *C.struct_android_app, entry func()) {
	// The looper is thread-local; polling must stay on the thread
	// the host called android_main on.
	runtime.LockOSThread()

	log.Write("entering android_main")

	theApp = app

	reg := new(registry)
	C.glue_set_user_data(app, C.uintptr_t(cgo.NewHandle(reg)))
	C.glue_install_callbacks(app)

	opts, err := loadOptions(assetManagerFor(app))
	if err != nil {
		log.Write(err.Error())
		panic(err)
	}
	theOptions = opts
	log.SetTag(opts.LogTag)

	go runEntry(entry)

	for {
		var events C.int
		var source *C.struct_android_poll_source
		// -1 blocks until a source is ready.
		C.ALooper_pollAll(-1, nil, &events, (*unsafe.Pointer)(unsafe.Pointer(&source)))
		if source != nil {
			C.glue_process_source(app, source)
		}
	}
}

// runEntry runs the user entry to completion. A normal return leaves
// the poll loop running; a panic is logged with its stack and then
// re-raised, taking the process down.
func runEntry(entry func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Write(fmt.Sprintf("panic: %v\n\n%s", r, debug.Stack()))
			panic(r)
		}
	}()
	entry()
}

//export glue_onAppCmd
func glue_onAppCmd(app *C.struct_android_app, cmd C.int32_t) {
	switch cmd {
	case C.APP_CMD_INIT_WINDOW:
		theWindow.set(unsafe.Pointer(app.window))
	case C.APP_CMD_TERM_WINDOW:
		theWindow.clear()
	case C.APP_CMD_SAVE_STATE:
		// No state is saved across lifecycle transitions.
	case C.APP_CMD_GAINED_FOCUS:
	case C.APP_CMD_LOST_FOCUS:
	}
}

//export glue_onInputEvent
func glue_onInputEvent(app *C.struct_android_app, e *C.AInputEvent) C.int32_t {
	action := int32(C.AMotionEvent_getAction(e))
	events := translateMotion(action, func() image.Point {
		x := C.AMotionEvent_getX(e, 0)
		y := C.AMotionEvent_getY(e, 0)
		return image.Pt(int(x), int(y))
	})
	reg := registryFor(app)
	for _, ev := range events {
		reg.publish(ev)
	}
	// 0 leaves the event available for default handling.
	return 0
}

func registryFor(app *C.struct_android_app) *registry {
	h := cgo.Handle(C.glue_get_user_data(app))
	return h.Value().(*registry)
}

func currentApp() *C.struct_android_app {
	if theApp == nil {
		panic(errNotInitialized)
	}
	return theApp
}

func currentRegistry() *registry {
	return registryFor(currentApp())
}

// NativeWindow returns the ANativeWindow handle, blocking until the
// platform has created one. It panics if called before android_main.
func NativeWindow() unsafe.Pointer {
	app := currentApp()
	if win := unsafe.Pointer(app.window); win != nil {
		return win
	}
	return theWindow.wait()
}

// LoadAsset returns the full contents of the named bundled asset. It
// panics if called before android_main.
func LoadAsset(name string) ([]byte, error) {
	return loadAsset(assetManagerFor(currentApp()), name)
}

func assetManagerFor(app *C.struct_android_app) assetManager {
	return nativeAssetManager{mgr: app.activity.assetManager}
}

type nativeAssetManager struct {
	mgr *C.AAssetManager
}

func (m nativeAssetManager) open(name string) asset {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	a := C.AAssetManager_open(m.mgr, cname, C.AASSET_MODE_STREAMING)
	if a == nil {
		return nil
	}
	return nativeAsset{asset: a}
}

type nativeAsset struct {
	asset *C.AAsset
}

func (a nativeAsset) buffer() []byte {
	n := C.AAsset_getLength(a.asset)
	buf := C.AAsset_getBuffer(a.asset)
	if buf == nil {
		return nil
	}
	return unsafe.Slice((*byte)(buf), int(n))
}

func (a nativeAsset) close() {
	C.AAsset_close(a.asset)
}
