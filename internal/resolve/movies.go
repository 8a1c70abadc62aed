package resolve

import (
	"github.com/backmassage/mediasweep/internal/config"
	"github.com/backmassage/mediasweep/internal/fsio"
	"github.com/backmassage/mediasweep/internal/outcome"
	"github.com/backmassage/mediasweep/internal/scan"
)

// Movies marks whole leaf directories whose top-level total size sits
// strictly under the threshold: once the primary movie file is removed,
// only small leftover artwork and metadata push the total below the cutoff.
// No per-file classification happens in this mode.
func Movies(fsys fsio.Filesystem, leaves []fsio.DirEntry, p config.Profile) outcome.Outcome[[]Candidate] {
	var candidates []Candidate
	for _, leaf := range leaves {
		total, err := scan.DirectorySize(fsys, leaf.Path)
		if err != nil {
			return outcome.Fault[[]Candidate](err)
		}
		if p.Below(total) {
			candidates = append(candidates, Candidate{Path: leaf.Path, Size: total})
		}
	}
	if len(candidates) == 0 {
		return outcome.Failure[[]Candidate](outcome.SubdirectoriesBelowThresholdDoNotExist)
	}
	return outcome.Success(candidates)
}
