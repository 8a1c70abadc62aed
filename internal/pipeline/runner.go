// Package pipeline orchestrates one cleanup run: validate the root, walk its
// subdirectories, keep the leaves, resolve deletion candidates for the
// configured mode, and (unless previewing) record and delete them. Every
// stage is chained on the outcome railway, so the first failure ends the run
// and side effects only ever observe a final success.
package pipeline

import (
	"path/filepath"

	"github.com/backmassage/mediasweep/internal/config"
	"github.com/backmassage/mediasweep/internal/display"
	"github.com/backmassage/mediasweep/internal/fsio"
	"github.com/backmassage/mediasweep/internal/logging"
	"github.com/backmassage/mediasweep/internal/outcome"
	"github.com/backmassage/mediasweep/internal/resolve"
	"github.com/backmassage/mediasweep/internal/runlog"
	"github.com/backmassage/mediasweep/internal/scan"
	"github.com/backmassage/mediasweep/internal/sizes"
)

// Runner wires one run's collaborators together.
type Runner struct {
	cfg    *config.Config
	log    *logging.Logger
	fsys   fsio.Filesystem
	runlog *runlog.Appender
}

// New returns a Runner over the given collaborators.
func New(cfg *config.Config, log *logging.Logger, fsys fsio.Filesystem, appender *runlog.Appender) *Runner {
	return &Runner{cfg: cfg, log: log, fsys: fsys, runlog: appender}
}

// Run executes the cleanup pipeline and returns its stats. Criteria-miss
// failures (nothing to clean) come back as silent failures; structural
// failures and OS faults carry a message for the CLI to surface.
func (r *Runner) Run() outcome.Outcome[RunStats] {
	profile := r.cfg.Profile()
	resolver := resolve.ForMode(r.cfg.Mode)

	root := scan.PathExists(r.fsys, r.cfg.RootPath)
	dirs := outcome.Bind(root, func(path string) outcome.Outcome[[]fsio.DirEntry] {
		return scan.ListDirectories(r.fsys, path, true)
	})
	leaves := outcome.Bind(dirs, func(all []fsio.DirEntry) outcome.Outcome[[]fsio.DirEntry] {
		return scan.FilterLeafDirectories(r.fsys, all)
	})
	candidates := outcome.Bind(leaves, func(ls []fsio.DirEntry) outcome.Outcome[[]resolve.Candidate] {
		return resolver(r.fsys, ls, profile)
	})

	candidates = candidates.
		SuccessTee(r.report).
		FailureTee(func(reason outcome.Reason, err error) {
			if err != nil {
				r.log.Debug("pipeline fault: %v", err)
				return
			}
			r.log.Debug("pipeline stopped: %s", reason)
		})

	if r.cfg.Preview {
		return outcome.Map(candidates, func(cs []resolve.Candidate) RunStats {
			return RunStats{Candidates: len(cs), Bytes: totalSize(cs)}
		})
	}

	var commitErr error
	candidates = candidates.SuccessTee(func(cs []resolve.Candidate) {
		commitErr = r.commit(cs)
	})
	if commitErr != nil {
		return outcome.Fault[RunStats](commitErr)
	}
	return outcome.Map(candidates, func(cs []resolve.Candidate) RunStats {
		return RunStats{Candidates: len(cs), Deleted: len(cs), Bytes: totalSize(cs)}
	})
}

// report lists the candidate set before anything destructive happens.
func (r *Runner) report(cs []resolve.Candidate) {
	verb := "Deleting"
	if r.cfg.Preview {
		verb = "Would delete"
	}
	noun := "files"
	if resolve.DeletesDirectories(r.cfg.Mode) {
		noun = "directories"
	}
	r.log.Info("%s %d %s (%s):", verb, len(cs), noun, display.Size(totalSize(cs)))
	for _, c := range cs {
		r.log.Info("%s", display.ListItem(c.Path, c.Size))
	}
}

// commit appends the run log inside the scanned root, then deletes every
// candidate. The first deletion error aborts the run; candidates already
// deleted stay deleted and stay logged.
func (r *Runner) commit(cs []resolve.Candidate) error {
	label := "Deleted files"
	if resolve.DeletesDirectories(r.cfg.Mode) {
		label = "Deleted directories"
	}
	logPath := filepath.Join(r.cfg.RootPath, config.LogFileName)
	items := make([]string, 0, len(cs))
	for _, c := range cs {
		items = append(items, c.Path)
	}
	if err := r.runlog.AppendRun(logPath, label, items); err != nil {
		return err
	}

	for _, c := range cs {
		var err error
		if resolve.DeletesDirectories(r.cfg.Mode) {
			err = r.fsys.DeleteDirectoryRecursive(c.Path)
		} else {
			err = r.fsys.DeleteFile(c.Path)
		}
		if err != nil {
			return err
		}
		r.log.Success("Removed %s", c.Path)
	}
	return nil
}

func totalSize(cs []resolve.Candidate) (total sizes.Bytes) {
	for _, c := range cs {
		total += c.Size
	}
	return total
}
