// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"sync"
	"unsafe"
)

// windowState tracks the native window handle across its lifecycle.
// The command dispatcher sets it on INIT_WINDOW and clears it on
// TERM_WINDOW from the poll thread; wait blocks the caller until a
// window exists.
type windowState struct {
	mu   sync.Mutex
	cond *sync.Cond
	win  unsafe.Pointer
}

// theWindow is shared between the command dispatcher and NativeWindow.
var theWindow = newWindowState()

func newWindowState() *windowState {
	w := new(windowState)
	w.cond = sync.NewCond(&w.mu)
	return w
}

func (w *windowState) set(win unsafe.Pointer) {
	w.mu.Lock()
	w.win = win
	w.mu.Unlock()
	w.cond.Broadcast()
}

func (w *windowState) clear() {
	w.set(nil)
}

// wait blocks until a native window exists and returns it.
func (w *windowState) wait() unsafe.Pointer {
	w.mu.Lock()
	defer w.mu.Unlock()
	for w.win == nil {
		w.cond.Wait()
	}
	return w.win
}
