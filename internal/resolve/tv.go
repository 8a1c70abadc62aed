package resolve

import (
	"strings"

	"github.com/backmassage/mediasweep/internal/config"
	"github.com/backmassage/mediasweep/internal/fsio"
	"github.com/backmassage/mediasweep/internal/outcome"
)

// TV walks each leaf directory and marks extra files whose main video is
// gone. An extra is an orphan when no main file's name contains its
// normalized base name; a directory with no main files at all orphans every
// remaining extra. Finding no orphans anywhere fails with FilesNotFound.
func TV(fsys fsio.Filesystem, leaves []fsio.DirEntry, p config.Profile) outcome.Outcome[[]Candidate] {
	var orphans []Candidate
	for _, leaf := range leaves {
		files, err := fsys.ListFiles(leaf.Path)
		if err != nil {
			return outcome.Fault[[]Candidate](err)
		}
		mains, extras := partition(files, p)
		for _, extra := range extras {
			if hasSurvivingMain(extra, mains) {
				continue
			}
			orphans = append(orphans, Candidate{Path: extra.Path, Size: extra.Size})
		}
	}
	if len(orphans) == 0 {
		return outcome.Failure[[]Candidate](outcome.FilesNotFound)
	}
	return outcome.Success(orphans)
}

// hasSurvivingMain reports whether some main file still covers extra. With
// no mains present there is nothing to protect and every extra is orphaned.
func hasSurvivingMain(extra fsio.FileEntry, mains []fsio.FileEntry) bool {
	if len(mains) == 0 {
		return false
	}
	base := NormalizeBaseName(extra.Name)
	for _, m := range mains {
		if strings.Contains(m.Name, base) {
			return true
		}
	}
	return false
}
