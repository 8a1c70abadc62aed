package runlog

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, time.March, 5, 14, 30, 9, 0, time.UTC)
}

func TestAppendRun(t *testing.T) {
	fs := afero.NewMemMapFs()
	a := NewWithClock(fs, fixedClock)

	err := a.AppendRun("/lib/cleanLog.log", "Deleted files", []string{
		"/lib/Show/episode.nfo",
		"/lib/Show/episode-thumb.jpg",
	})
	require.NoError(t, err)

	got, err := afero.ReadFile(fs, "/lib/cleanLog.log")
	require.NoError(t, err)
	want := "Deleted files - 2024-Mar-05 14:30:09\n" +
		"    /lib/Show/episode.nfo\n" +
		"    /lib/Show/episode-thumb.jpg\n" +
		"\n"
	assert.Equal(t, want, string(got))
}

func TestAppendRun_AccumulatesAcrossRuns(t *testing.T) {
	fs := afero.NewMemMapFs()
	a := NewWithClock(fs, fixedClock)

	require.NoError(t, a.AppendRun("/lib/cleanLog.log", "Deleted files", []string{"one"}))
	require.NoError(t, a.AppendRun("/lib/cleanLog.log", "Deleted directories", []string{"two"}))

	got, err := afero.ReadFile(fs, "/lib/cleanLog.log")
	require.NoError(t, err)
	assert.Contains(t, string(got), "Deleted files - ")
	assert.Contains(t, string(got), "Deleted directories - ")
	assert.Less(t,
		strings.Index(string(got), "Deleted files"),
		strings.Index(string(got), "Deleted directories"),
		"records append in run order")
}

func TestAppendRun_EmptyItemsWritesNothing(t *testing.T) {
	fs := afero.NewMemMapFs()
	a := NewWithClock(fs, fixedClock)

	require.NoError(t, a.AppendRun("/lib/cleanLog.log", "Deleted files", nil))

	exists, err := afero.Exists(fs, "/lib/cleanLog.log")
	require.NoError(t, err)
	assert.False(t, exists, "an empty run must not create the log file")
}
