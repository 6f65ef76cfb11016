package debug

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	mu     sync.Mutex
	logger *log.Logger
	closer io.Closer
)

// Enable starts writing the debug log to path, truncating it.
func Enable(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	EnableWriter(f)
	mu.Lock()
	closer = f
	mu.Unlock()

	Log("debug logging enabled (%s)", path)
	return nil
}

// EnableWriter starts writing the debug log to w.
func EnableWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = log.New(w, "", log.Ltime|log.Lmicroseconds)
}

// Close stops logging and closes the log file, if any.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if closer != nil {
		_ = closer.Close()
		closer = nil
	}
	logger = nil
}

// IsEnabled reports whether debug logging is on.
func IsEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return logger != nil
}

// Log writes a message if debug logging is on.
func Log(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		return
	}
	logger.Printf(format, args...)
}

// Timed logs how long an operation took. Usage:
//
//	defer debug.Timed("load tasks")()
func Timed(name string) func() {
	if !IsEnabled() {
		return func() {}
	}

	start := time.Now()
	return func() {
		Log("%s took %v", name, time.Since(start))
	}
}
