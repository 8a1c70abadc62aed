// Package scan is the directory classifier: path validation, subdirectory
// enumeration, leaf-node detection, and folder sizing. Stages report
// failures through the outcome railway; OS-level errors become faults.
package scan

import (
	"strings"

	"github.com/backmassage/mediasweep/internal/fsio"
	"github.com/backmassage/mediasweep/internal/outcome"
	"github.com/backmassage/mediasweep/internal/sizes"
)

// PathExists validates the scanned root before anything touches the
// filesystem: an empty or whitespace-only path fails without any I/O, a
// missing directory fails with DirectoryNotFound, and a valid path passes
// through unchanged.
func PathExists(fsys fsio.Filesystem, path string) outcome.Outcome[string] {
	if strings.TrimSpace(path) == "" {
		return outcome.Failure[string](outcome.PathNameCannotBeEmpty)
	}
	ok, err := fsys.PathIsDirectory(path)
	if err != nil {
		return outcome.Fault[string](err)
	}
	if !ok {
		return outcome.Failure[string](outcome.DirectoryNotFound)
	}
	return outcome.Success(path)
}

// ListDirectories enumerates immediate or all-depth subdirectories of path.
// A directory with no subdirectories at all fails the run with
// SubdirectoriesDoNotExist.
func ListDirectories(fsys fsio.Filesystem, path string, recursive bool) outcome.Outcome[[]fsio.DirEntry] {
	dirs, err := fsys.ListSubdirectories(path, recursive)
	if err != nil {
		return outcome.Fault[[]fsio.DirEntry](err)
	}
	if len(dirs) == 0 {
		return outcome.Failure[[]fsio.DirEntry](outcome.SubdirectoriesDoNotExist)
	}
	return outcome.Success(dirs)
}

// IsLeafNode reports whether path has zero subdirectories once special
// dot-directories are excluded. A folder containing only a ".thumbnails"
// subfolder still counts as a leaf.
func IsLeafNode(fsys fsio.Filesystem, path string) (bool, error) {
	subs, err := fsys.ListSubdirectories(path, false)
	if err != nil {
		return false, err
	}
	for _, d := range subs {
		if !isSpecial(d.Name) {
			return false, nil
		}
	}
	return true, nil
}

// FilterLeafDirectories keeps the leaf nodes of dirs. Dot-directories are
// dropped from the input set itself so a ".thumbnails" entry is never
// classified, let alone deleted. An empty result fails with
// NoLeafNodesFound.
func FilterLeafDirectories(fsys fsio.Filesystem, dirs []fsio.DirEntry) outcome.Outcome[[]fsio.DirEntry] {
	var leaves []fsio.DirEntry
	for _, d := range dirs {
		if isSpecial(d.Name) {
			continue
		}
		leaf, err := IsLeafNode(fsys, d.Path)
		if err != nil {
			return outcome.Fault[[]fsio.DirEntry](err)
		}
		if leaf {
			leaves = append(leaves, d)
		}
	}
	if len(leaves) == 0 {
		return outcome.Failure[[]fsio.DirEntry](outcome.NoLeafNodesFound)
	}
	return outcome.Success(leaves)
}

// DirectorySize sums the immediate file lengths of path. Subdirectories do
// not contribute; leaf directories are the unit of interest.
func DirectorySize(fsys fsio.Filesystem, path string) (sizes.Bytes, error) {
	files, err := fsys.ListFiles(path)
	if err != nil {
		return 0, err
	}
	var total sizes.Bytes
	for _, f := range files {
		total += f.Size
	}
	return total, nil
}

// isSpecial reports whether a directory name marks a special folder that is
// invisible to leaf detection (dotfile convention).
func isSpecial(name string) bool {
	return strings.HasPrefix(name, ".")
}
