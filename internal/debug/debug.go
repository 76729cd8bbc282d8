// Package debug gates diagnostic output behind the SDEPTH_DEBUG
// environment variable. The numeric core uses it to expose intermediate
// quantities (truncation bound, accumulated log-miss) without cluttering
// normal output.
package debug

import (
	"fmt"
	"os"
)

var enabled = os.Getenv("SDEPTH_DEBUG") != ""

func Enabled() bool {
	return enabled
}

// Logf writes to stderr when debugging is enabled.
func Logf(format string, args ...interface{}) {
	if enabled {
		fmt.Fprintf(os.Stderr, "sdepth: "+format, args...)
	}
}

// Printf writes to stdout when debugging is enabled.
func Printf(format string, args ...interface{}) {
	if enabled {
		fmt.Printf(format, args...)
	}
}
