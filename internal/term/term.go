// Package term provides terminal detection and the shared output styles.
//
// Styles are package-level variables because multiple packages (logging,
// display) need them for output formatting. [Configure] sets them once
// during startup; when colors are disabled every style is an unstyled
// [lipgloss.Style], so rendering passes text through unchanged.
package term

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/backmassage/mediasweep/internal/config"
)

// Output styles. Unstyled when colors are disabled.
var (
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Debug   lipgloss.Style
	Accent  lipgloss.Style
	Subtle  lipgloss.Style
)

var enabled bool

// Configure resolves the color mode and sets the package-level styles. Call
// once during startup (from [logging.New]).
func Configure(mode config.ColorMode) {
	enabled = resolve(mode)
	if enabled {
		Error = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
		Success = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
		Warning = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
		Info = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
		Debug = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
		Accent = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
		Subtle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	} else {
		plain := lipgloss.NewStyle()
		Error, Success, Warning, Info = plain, plain, plain, plain
		Debug, Accent, Subtle = plain, plain, plain
	}
}

// Enabled reports whether colored output is currently active.
func Enabled() bool { return enabled }

// resolve determines whether colors should be enabled based on the configured
// mode, TTY detection, and the NO_COLOR env var (https://no-color.org).
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY (character device).
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
