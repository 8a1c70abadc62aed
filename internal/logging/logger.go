// Package logging provides the leveled console logger used across the tool.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/backmassage/mediasweep/internal/config"
	"github.com/backmassage/mediasweep/internal/term"
)

// Logger provides leveled, optionally colored logging. Errors go to stderr,
// everything else to stdout.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	errOut  io.Writer
	verbose bool
}

// New configures terminal styles from cfg and returns a logger writing to
// stdout/stderr.
func New(cfg *config.Config) *Logger {
	term.Configure(cfg.ColorMode)
	return &Logger{
		out:     os.Stdout,
		errOut:  os.Stderr,
		verbose: cfg.Verbose,
	}
}

// NewWithWriters is New with injected sinks, for tests.
func NewWithWriters(out, errOut io.Writer, verbose bool) *Logger {
	return &Logger{out: out, errOut: errOut, verbose: verbose}
}

func (l *Logger) line(w io.Writer, level string, style lipgloss.Style, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(w, ts+" "+style.Render("["+level+"]")+" "+text+"\n")
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...interface{}) {
	l.line(l.out, "INFO", term.Info, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level.
func (l *Logger) Success(format string, args ...interface{}) {
	l.line(l.out, "SUCCESS", term.Success, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line(l.out, "WARN", term.Warning, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level, to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line(l.errOut, "ERROR", term.Error, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level only when verbose; no-op otherwise.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.line(l.out, "DEBUG", term.Debug, fmt.Sprintf(format, args...))
}
