// Package runlog appends a human-readable record of each destructive run to
// a log file inside the scanned library. The file accumulates across runs so
// the library keeps its own deletion history next to the media it tracked.
package runlog

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/afero"
)

const timestampLayout = "2006-Jan-02 15:04:05"

// Appender writes run records. The zero value is not usable; construct one
// with New.
type Appender struct {
	fs  afero.Fs
	now func() time.Time
}

// New returns an Appender writing through fs with wall-clock timestamps.
func New(fs afero.Fs) *Appender {
	return &Appender{fs: fs, now: time.Now}
}

// NewWithClock is New with an injected clock, for tests.
func NewWithClock(fs afero.Fs, now func() time.Time) *Appender {
	return &Appender{fs: fs, now: now}
}

// AppendRun records one run: a "<label> - <timestamp>" header, each item
// indented on its own line, and a trailing blank line. An empty item list
// writes nothing at all, so runs that found no work leave no trace.
func (a *Appender) AppendRun(path, label string, items []string) error {
	if len(items) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString(label)
	b.WriteString(" - ")
	b.WriteString(a.now().Format(timestampLayout))
	b.WriteString("\n")
	for _, item := range items {
		b.WriteString("    ")
		b.WriteString(item)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	f, err := a.fs.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(b.String()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
