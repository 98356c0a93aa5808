// Package logger gates debug output behind the --verbose flag.
// Everything else logs through the standard log package directly.
package logger

import (
	"log"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
)

// SetVerbose enables or disables debug logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if debug logging is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// Debugf logs through the standard logger when verbose mode is on.
func Debugf(format string, args ...any) {
	if IsVerbose() {
		log.Printf(format, args...)
	}
}
