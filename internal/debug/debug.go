// Package debug provides optional file-based debug logging.
//
// When the VEX_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise, logging is a no-op.
package debug

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	mu   sync.Mutex
	file *os.File
	once sync.Once
)

// open lazily opens the debug log file named by VEX_DEBUG.
func open() {
	path := os.Getenv("VEX_DEBUG")
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	file = f
}

// Logf appends a formatted message to the debug log, if enabled.
func Logf(format string, args ...any) {
	once.Do(open)
	if file == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(file, "%s %s\n", time.Now().Format("15:04:05.000"), fmt.Sprintf(format, args...))
}

// Enabled reports whether debug logging is active.
func Enabled() bool {
	once.Do(open)
	return file != nil
}
