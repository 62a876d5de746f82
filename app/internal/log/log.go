// SPDX-License-Identifier: Unlicense OR MIT

// Package log writes single lines to the platform log. On Android the
// process's stdout and stderr are redirected there as well, so plain
// fmt and log output from the user goroutine ends up in logcat.
package log

import "sync"

var (
	mu  sync.Mutex
	tag = "droidglue"
)

// SetTag replaces the log tag used for subsequent writes. An empty
// tag is ignored.
func SetTag(t string) {
	if t == "" {
		return
	}
	mu.Lock()
	tag = t
	mu.Unlock()
}

func currentTag() string {
	mu.Lock()
	defer mu.Unlock()
	return tag
}
