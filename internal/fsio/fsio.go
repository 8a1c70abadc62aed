// Package fsio is the filesystem collaborator the engine calls through a
// narrow interface. The production implementation sits on afero's OS
// filesystem; tests substitute an in-memory one.
package fsio

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"

	"github.com/backmassage/mediasweep/internal/sizes"
)

// DirEntry names one directory.
type DirEntry struct {
	Name string
	Path string
}

// FileEntry is an immutable snapshot of one file taken at listing time.
type FileEntry struct {
	Name string
	Path string
	Size sizes.Bytes
}

// Filesystem is everything the engine needs from the operating system.
// All calls are synchronous; any error is OS-level and fatal for the run.
type Filesystem interface {
	PathIsDirectory(path string) (bool, error)
	ListSubdirectories(path string, recursive bool) ([]DirEntry, error)
	ListFiles(path string) ([]FileEntry, error)
	DeleteFile(path string) error
	DeleteDirectoryRecursive(path string) error
}

type aferoFilesystem struct {
	fs afero.Fs
}

// New wraps an afero filesystem as a Filesystem collaborator.
func New(fs afero.Fs) Filesystem {
	return &aferoFilesystem{fs: fs}
}

// NewOS returns the production collaborator over the real filesystem.
func NewOS() Filesystem {
	return New(afero.NewOsFs())
}

func (a *aferoFilesystem) PathIsDirectory(path string) (bool, error) {
	info, err := a.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

// ListSubdirectories enumerates immediate subdirectories, or every
// directory at any depth below path when recursive is set. The result is
// sorted by path for deterministic processing order; path itself is never
// included.
func (a *aferoFilesystem) ListSubdirectories(path string, recursive bool) ([]DirEntry, error) {
	if !recursive {
		infos, err := afero.ReadDir(a.fs, path)
		if err != nil {
			return nil, err
		}
		var dirs []DirEntry
		for _, info := range infos {
			if !info.IsDir() {
				continue
			}
			dirs = append(dirs, DirEntry{Name: info.Name(), Path: filepath.Join(path, info.Name())})
		}
		return dirs, nil
	}

	var dirs []DirEntry
	err := afero.Walk(a.fs, path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() || p == path {
			return nil
		}
		dirs = append(dirs, DirEntry{Name: info.Name(), Path: p})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(dirs, func(i, j int) bool { return dirs[i].Path < dirs[j].Path })
	return dirs, nil
}

// ListFiles snapshots the immediate files of path (subdirectories are not
// descended into). Sizes may go stale if the tree changes under the run.
func (a *aferoFilesystem) ListFiles(path string) ([]FileEntry, error) {
	infos, err := afero.ReadDir(a.fs, path)
	if err != nil {
		return nil, err
	}
	var files []FileEntry
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		files = append(files, FileEntry{
			Name: info.Name(),
			Path: filepath.Join(path, info.Name()),
			Size: sizes.Bytes(info.Size()),
		})
	}
	return files, nil
}

func (a *aferoFilesystem) DeleteFile(path string) error {
	return a.fs.Remove(path)
}

func (a *aferoFilesystem) DeleteDirectoryRecursive(path string) error {
	return a.fs.RemoveAll(path)
}
