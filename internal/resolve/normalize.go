package resolve

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Trailing release-group or year tag: whitespace, an opening paren, a run of
// word characters, dots, commas, hyphens and spaces, and an optional closing
// paren (torrent leftovers sometimes never close it).
var trailingTag = regexp.MustCompile(`\s\([\w., -]*\)?$`)

// NormalizeBaseName reduces an extra file's name to the base its main
// counterpart would contain. Strips, in order: the extension, one trailing
// ".en" locale suffix, one trailing "-thumb" suffix, and one trailing
// parenthesized tag. Each step applies exactly once in this fixed order;
// there is no re-check after a strip.
func NormalizeBaseName(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	base = strings.TrimSuffix(base, ".en")
	base = strings.TrimSuffix(base, "-thumb")
	base = trailingTag.ReplaceAllString(base, "")
	return base
}
