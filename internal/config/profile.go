package config

import (
	"path/filepath"
	"strings"

	"github.com/backmassage/mediasweep/internal/sizes"
)

// Recognized video extensions for the TV profile (lowercase, leading dot).
var videoExtensions = []string{
	".avi", ".flv", ".mkv", ".mp4", ".mpeg", ".mpg", ".wmv", ".3gp",
}

// Recognized audio extensions for the Music profile.
var audioExtensions = []string{
	".mp3", ".m4a", ".flac", ".wav", ".wma", ".aac", ".aiff", ".m4b", ".m4p", ".ogg",
}

// Profile is the per-mode heuristic configuration: the size cutoff that
// marks a file (or folder total) as primary media, the unit the comparison
// happens in, and the extension set that marks a file as primary regardless
// of size.
type Profile struct {
	Threshold  sizes.Bytes
	Unit       sizes.Unit
	Extensions []string
}

// Exceeds reports whether b is strictly above the threshold when both are
// expressed in the profile's unit (truncating).
func (p Profile) Exceeds(b sizes.Bytes) bool {
	return b.In(p.Unit) > p.Threshold.In(p.Unit)
}

// Below reports whether b is strictly under the threshold when both are
// expressed in the profile's unit (truncating).
func (p Profile) Below(b sizes.Bytes) bool {
	return b.In(p.Unit) < p.Threshold.In(p.Unit)
}

// Recognized reports whether name carries one of the profile's media
// extensions. Extension matching is case-insensitive.
func (p Profile) Recognized(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range p.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}
