package resolve

import (
	"strings"

	"github.com/backmassage/mediasweep/internal/config"
	"github.com/backmassage/mediasweep/internal/fsio"
	"github.com/backmassage/mediasweep/internal/sizes"
)

// Candidate is one deletion candidate: a file path (TV) or a leaf directory
// path (Movies/Music), with its size at listing time for reporting.
type Candidate struct {
	Path string
	Size sizes.Bytes
}

// Files named with this prefix (folder.jpg, folder.png, …) are default
// artwork reused by library managers; they are never classified and never
// deleted. The prefix match is case-sensitive.
const reusableArtworkPrefix = "folder"

// partition splits a leaf directory's files into main media and extras. A
// file is main when its size exceeds the profile threshold or its extension
// is recognized; either condition suffices.
func partition(files []fsio.FileEntry, p config.Profile) (mains, extras []fsio.FileEntry) {
	for _, f := range files {
		if strings.HasPrefix(f.Name, reusableArtworkPrefix) {
			continue
		}
		if p.Exceeds(f.Size) || p.Recognized(f.Name) {
			mains = append(mains, f)
		} else {
			extras = append(extras, f)
		}
	}
	return mains, extras
}
