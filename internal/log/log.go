// Package log provides centralized debug logging.
//
// The language server owns stdout, so log lines go to a file chosen at
// startup. Logging is disabled until SetOutput is called with a writer.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	out io.Writer
	mu  sync.Mutex
)

// SetOutput sets the log destination. Pass nil to disable logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// OpenFile opens (appending) path and routes logging to it.
// The caller owns the returned file.
func OpenFile(path string) (*os.File, error) {
	// #nosec G304 - path comes from trusted configuration
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	SetOutput(f)
	return f, nil
}

// Enabled returns true if logging is enabled.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return out != nil
}

func write(prefix, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if out == nil {
		return
	}
	fmt.Fprintf(out, "%s %s"+format+"\n",
		append([]any{time.Now().Format("15:04:05.000"), prefix}, args...)...)
}

// Debug writes an untagged log line.
func Debug(format string, args ...any) {
	write("", format, args...)
}

// Server writes a server-prefixed log message.
func Server(format string, args ...any) {
	write("[server] ", format, args...)
}

// Refresh writes a refresh-prefixed log message.
func Refresh(format string, args ...any) {
	write("[refresh] ", format, args...)
}

// Complete writes a completion-prefixed log message.
func Complete(format string, args ...any) {
	write("[complete] ", format, args...)
}

// Config writes a config-prefixed log message.
func Config(format string, args ...any) {
	write("[config] ", format, args...)
}
