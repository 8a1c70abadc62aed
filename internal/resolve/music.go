package resolve

import (
	"github.com/backmassage/mediasweep/internal/config"
	"github.com/backmassage/mediasweep/internal/fsio"
	"github.com/backmassage/mediasweep/internal/outcome"
	"github.com/backmassage/mediasweep/internal/sizes"
)

// Music marks whole leaf directories that hold zero main audio files: the
// tracks were removed and only art and metadata remain. Unlike TV, no
// individual file is ever a candidate in this mode.
func Music(fsys fsio.Filesystem, leaves []fsio.DirEntry, p config.Profile) outcome.Outcome[[]Candidate] {
	var candidates []Candidate
	for _, leaf := range leaves {
		files, err := fsys.ListFiles(leaf.Path)
		if err != nil {
			return outcome.Fault[[]Candidate](err)
		}
		mains, _ := partition(files, p)
		if len(mains) > 0 {
			continue
		}
		var total sizes.Bytes
		for _, f := range files {
			total += f.Size
		}
		candidates = append(candidates, Candidate{Path: leaf.Path, Size: total})
	}
	if len(candidates) == 0 {
		return outcome.Failure[[]Candidate](outcome.SubdirectoriesBelowThresholdDoNotExist)
	}
	return outcome.Success(candidates)
}
