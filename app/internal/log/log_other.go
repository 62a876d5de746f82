// SPDX-License-Identifier: Unlicense OR MIT

//go:build !android

package log

import (
	"fmt"
	"os"
)

// Write falls back to stderr when no platform log is available.
func Write(msg string) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", currentTag(), msg)
}
