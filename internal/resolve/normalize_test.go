package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeBaseName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain extra", "Show.S01E01.nfo", "Show.S01E01"},
		{"locale subtitle", "Show.S01E01.en.srt", "Show.S01E01"},
		{"thumbnail suffix", "Show.S01E01-thumb.jpg", "Show.S01E01"},
		{"parenthesized tag", "Show.S01E01 (2019).nfo", "Show.S01E01"},
		{"unclosed tag", "Show.S01E01 (ReleaseGroup.nfo", "Show.S01E01"},
		{"tag with dots and hyphens", "Movie (Rip-1080p, x264).nfo", "Movie"},
		{"stacked thumb then locale", "Show.S01E01-thumb.en.jpg", "Show.S01E01"},
		{"inner parens untouched", "Show (US).S01E01.nfo", "Show (US).S01E01"},
		{"no suffixes", "cover.jpg", "cover"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeBaseName(tt.in))
		})
	}
}

func TestNormalizeBaseName_SingleApplication(t *testing.T) {
	// Each strip runs once in a fixed order and never re-checks: a name
	// ending in ".en" again after the first strip keeps the second one.
	assert.Equal(t, "Show.en", NormalizeBaseName("Show.en.en.srt"))
}
