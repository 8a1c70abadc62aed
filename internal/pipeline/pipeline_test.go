package pipeline

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/mediasweep/internal/config"
	"github.com/backmassage/mediasweep/internal/fsio"
	"github.com/backmassage/mediasweep/internal/logging"
	"github.com/backmassage/mediasweep/internal/outcome"
	"github.com/backmassage/mediasweep/internal/runlog"
	"github.com/backmassage/mediasweep/internal/sizes"
)

// Small thresholds keep memfs fixtures tiny; the heuristics only ever see
// the profile, never the production defaults.
func testConfig(mode config.Mode, root string) *config.Config {
	return &config.Config{
		Mode:      mode,
		RootPath:  root,
		ColorMode: config.ColorNever,
		Profiles: map[config.Mode]config.Profile{
			config.ModeTV: {
				Threshold:  10 * 1024,
				Unit:       sizes.UnitKilobytes,
				Extensions: []string{".mkv", ".mp4"},
			},
			config.ModeMovies: {
				Threshold: 10 * 1024,
				Unit:      sizes.UnitKilobytes,
			},
			config.ModeMusic: {
				Threshold:  10 * 1024,
				Unit:       sizes.UnitKilobytes,
				Extensions: []string{".mp3", ".flac"},
			},
		},
	}
}

func newRunner(t *testing.T, cfg *config.Config, mem afero.Fs) *Runner {
	t.Helper()
	log := logging.NewWithWriters(&bytes.Buffer{}, &bytes.Buffer{}, false)
	clock := func() time.Time { return time.Date(2024, time.March, 5, 14, 30, 9, 0, time.UTC) }
	return New(cfg, log, fsio.New(mem), runlog.NewWithClock(mem, clock))
}

func writeFile(t *testing.T, mem afero.Fs, path string, size int) {
	t.Helper()
	require.NoError(t, afero.WriteFile(mem, path, make([]byte, size), 0o644))
}

// tvLibrary builds a root with one orphaned extra and one covered extra.
func tvLibrary(t *testing.T) afero.Fs {
	t.Helper()
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/lib/Show", 0o755))
	writeFile(t, mem, "/lib/Show/Show.S01E01.mkv", 100)
	writeFile(t, mem, "/lib/Show/Show.S01E01.en.srt", 10)    // covered
	writeFile(t, mem, "/lib/Show/Show.S01E02-thumb.jpg", 10) // orphaned
	return mem
}

func TestRun_PreviewHasNoSideEffects(t *testing.T) {
	mem := tvLibrary(t)
	cfg := testConfig(config.ModeTV, "/lib")
	cfg.Preview = true

	out := newRunner(t, cfg, mem).Run()
	require.False(t, out.Failed())
	assert.Equal(t, 1, out.Value().Candidates)
	assert.Equal(t, 0, out.Value().Deleted)
	assert.Equal(t, sizes.Bytes(10), out.Value().Bytes)

	exists, err := afero.Exists(mem, "/lib/Show/Show.S01E02-thumb.jpg")
	require.NoError(t, err)
	assert.True(t, exists, "preview must not delete")

	logged, err := afero.Exists(mem, "/lib/cleanLog.log")
	require.NoError(t, err)
	assert.False(t, logged, "preview must not write the run log")
}

func TestRun_DeleteRemovesCandidatesAndLogs(t *testing.T) {
	mem := tvLibrary(t)
	cfg := testConfig(config.ModeTV, "/lib")

	out := newRunner(t, cfg, mem).Run()
	require.False(t, out.Failed())
	assert.Equal(t, 1, out.Value().Deleted)

	gone, err := afero.Exists(mem, "/lib/Show/Show.S01E02-thumb.jpg")
	require.NoError(t, err)
	assert.False(t, gone, "orphan must be deleted")

	kept, err := afero.Exists(mem, "/lib/Show/Show.S01E01.mkv")
	require.NoError(t, err)
	assert.True(t, kept, "main files are never candidates")

	content, err := afero.ReadFile(mem, "/lib/cleanLog.log")
	require.NoError(t, err)
	assert.Contains(t, string(content), "Deleted files - ")
	assert.Contains(t, string(content), "    /lib/Show/Show.S01E02-thumb.jpg\n")
}

func TestRun_PreviewMatchesDeletion(t *testing.T) {
	cfg := testConfig(config.ModeTV, "/lib")

	previewCfg := *cfg
	previewCfg.Preview = true
	preview := newRunner(t, &previewCfg, tvLibrary(t)).Run()
	deletion := newRunner(t, cfg, tvLibrary(t)).Run()

	require.False(t, preview.Failed())
	require.False(t, deletion.Failed())
	assert.Equal(t, preview.Value().Candidates, deletion.Value().Candidates)
	assert.Equal(t, preview.Value().Bytes, deletion.Value().Bytes)
}

func TestRun_SecondRunFindsNothing(t *testing.T) {
	mem := tvLibrary(t)
	cfg := testConfig(config.ModeTV, "/lib")
	r := newRunner(t, cfg, mem)

	first := r.Run()
	require.False(t, first.Failed())

	second := r.Run()
	require.True(t, second.Failed(), "a cleaned library has nothing left to clean")
	assert.Equal(t, outcome.FilesNotFound, second.Reason())
	assert.Empty(t, second.FailureMessage(), "criteria-miss failures are silent")
}

func TestRun_EmptyPathFailsBeforeIO(t *testing.T) {
	cfg := testConfig(config.ModeTV, "   ")
	out := newRunner(t, cfg, afero.NewMemMapFs()).Run()

	require.True(t, out.Failed())
	assert.Equal(t, "path name cannot be empty", out.FailureMessage())
}

func TestRun_MissingRootFails(t *testing.T) {
	cfg := testConfig(config.ModeTV, "/nowhere")
	out := newRunner(t, cfg, afero.NewMemMapFs()).Run()

	require.True(t, out.Failed())
	assert.Equal(t, "directory not found", out.FailureMessage())
}

func TestRun_MoviesDeletesWholeDirectories(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/lib/Gone Movie", 0o755))
	require.NoError(t, mem.MkdirAll("/lib/Kept Movie", 0o755))
	writeFile(t, mem, "/lib/Gone Movie/poster.jpg", 1024)
	writeFile(t, mem, "/lib/Kept Movie/film.mkv", 20*1024)

	cfg := testConfig(config.ModeMovies, "/lib")
	out := newRunner(t, cfg, mem).Run()
	require.False(t, out.Failed())
	assert.Equal(t, 1, out.Value().Deleted)

	gone, err := afero.DirExists(mem, "/lib/Gone Movie")
	require.NoError(t, err)
	assert.False(t, gone)

	kept, err := afero.DirExists(mem, "/lib/Kept Movie")
	require.NoError(t, err)
	assert.True(t, kept)

	content, err := afero.ReadFile(mem, "/lib/cleanLog.log")
	require.NoError(t, err)
	assert.Contains(t, string(content), "Deleted directories - ")
}

func TestRun_MusicRemovesTracklessAlbums(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/lib/Artist/Empty Album", 0o755))
	require.NoError(t, mem.MkdirAll("/lib/Artist/Full Album", 0o755))
	writeFile(t, mem, "/lib/Artist/Empty Album/cover.jpg", 100)
	writeFile(t, mem, "/lib/Artist/Full Album/track01.mp3", 100)

	cfg := testConfig(config.ModeMusic, "/lib")
	out := newRunner(t, cfg, mem).Run()
	require.False(t, out.Failed())

	gone, err := afero.DirExists(mem, "/lib/Artist/Empty Album")
	require.NoError(t, err)
	assert.False(t, gone)

	kept, err := afero.DirExists(mem, "/lib/Artist/Full Album")
	require.NoError(t, err)
	assert.True(t, kept)
}
