// Package config holds runtime configuration: the cleanup mode, the scanned
// root, per-mode heuristic profiles, and display settings. Profiles carry
// the size thresholds and recognized extension sets as data so the engine
// never hard-codes them at use sites.
package config

import (
	"errors"

	"github.com/backmassage/mediasweep/internal/sizes"
)

// Mode selects which threshold, classification predicate, and normalization
// rules apply. Fixed for the lifetime of one run; never mixed within a run.
type Mode string

const (
	ModeTV     Mode = "tv"
	ModeMovies Mode = "movies"
	ModeMusic  Mode = "music"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// LogFileName is the run log written into the scanned root on non-preview
// runs. Append-only, human-readable, never parsed back.
const LogFileName = "cleanLog.log"

// Config holds all runtime settings for one run. It is populated by
// [DefaultConfig], optionally adjusted by [LoadOverrides], and then by CLI
// flags before being passed to the pipeline.
type Config struct {
	Mode     Mode
	RootPath string

	// Preview computes the candidate set but performs no logging and no
	// deletion.
	Preview bool

	// Per-mode heuristic profiles, keyed by Mode.
	Profiles map[Mode]Profile

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode
}

// DefaultConfig returns a Config with the stock per-mode profiles:
// Movies/TV consider 100 MB the primary-asset cutoff, Music 500 KB.
func DefaultConfig() Config {
	return Config{
		ColorMode: ColorAuto,
		Profiles: map[Mode]Profile{
			ModeTV: {
				Threshold:  100 * 1024 * 1024,
				Unit:       sizes.UnitMegabytes,
				Extensions: videoExtensions,
			},
			ModeMovies: {
				Threshold: 100 * 1024 * 1024,
				Unit:      sizes.UnitMegabytes,
			},
			ModeMusic: {
				Threshold:  500 * 1024,
				Unit:       sizes.UnitKilobytes,
				Extensions: audioExtensions,
			},
		},
	}
}

// Profile returns the heuristic profile for the configured mode.
func (c *Config) Profile() Profile {
	return c.Profiles[c.Mode]
}

// Validate checks that enum fields hold valid values. The root path is not
// validated here: empty and missing paths must flow into the pipeline so
// they fail with the proper structured reason before any filesystem access.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeTV, ModeMovies, ModeMusic:
		// valid
	default:
		return errors.New("invalid mode (use 'tv', 'movies' or 'music')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if _, ok := c.Profiles[c.Mode]; !ok {
		return errors.New("no profile configured for mode " + string(c.Mode))
	}
	return nil
}
