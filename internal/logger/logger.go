package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is the session log file, relative to the working directory.
const DefaultPath = "logs/platformer.txt"

// Logger keeps timestamped lines in memory and, when it has a path, appends each
// one to that file.
type Logger struct {
	mu    sync.Mutex
	path  string
	lines []string
	now   func() time.Time
}

// New returns a Logger that appends to path. An empty path keeps lines in memory only.
// The parent directory is created on a best-effort basis.
func New(path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path, lines: make([]string, 0), now: time.Now}
}

// Log records a line prefixed with [timestamp]. File write failures are ignored.
func (l *Logger) Log(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	stamped := "[" + l.now().Format("2006-01-02 15:04:05") + "] " + line
	l.lines = append(l.lines, stamped)

	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf formats according to a format specifier and logs the result.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
