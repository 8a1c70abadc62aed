// Package display renders the banner and user-facing listings.
package display

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/backmassage/mediasweep/internal/sizes"
)

// Size returns a human-readable rendering of b ("1.5 MiB", "512 B").
func Size(b sizes.Bytes) string {
	if b < 0 {
		return "-" + humanize.IBytes(uint64(-b))
	}
	return humanize.IBytes(uint64(b))
}

// ListItem formats one candidate line for console output.
func ListItem(path string, size sizes.Bytes) string {
	return fmt.Sprintf("    %s (%s)", path, Size(size))
}
