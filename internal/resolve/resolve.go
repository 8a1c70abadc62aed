package resolve

import (
	"github.com/backmassage/mediasweep/internal/config"
	"github.com/backmassage/mediasweep/internal/fsio"
	"github.com/backmassage/mediasweep/internal/outcome"
)

// Resolver computes the deletion candidates for a set of leaf directories.
type Resolver func(fsio.Filesystem, []fsio.DirEntry, config.Profile) outcome.Outcome[[]Candidate]

// ForMode returns the resolver for mode. Modes are validated by config, so
// an unknown mode here is a programming error.
func ForMode(mode config.Mode) Resolver {
	switch mode {
	case config.ModeTV:
		return TV
	case config.ModeMusic:
		return Music
	default:
		return Movies
	}
}

// DeletesDirectories reports whether mode's candidates are whole
// directories (Movies/Music) rather than individual files (TV).
func DeletesDirectories(mode config.Mode) bool {
	return mode != config.ModeTV
}
