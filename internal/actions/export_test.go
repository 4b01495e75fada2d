package actions

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"plex-playlist-download/internal/filesystem"
	"plex-playlist-download/internal/plex"
)

// fakeDownloader writes the configured files for each item title.
type fakeDownloader struct {
	files  map[string][]string
	failOn string
}

func (f *fakeDownloader) DownloadItem(item plex.Metadata, dest filesystem.FileSystem) (plex.DownloadResult, error) {
	if item.Title == f.failOn {
		return plex.DownloadResult{}, errors.New("download failed")
	}
	names := f.files[item.Title]
	for _, name := range names {
		file, err := dest.FileWriter(name)
		if err != nil {
			return plex.DownloadResult{}, err
		}
		if _, err := file.Write([]byte(item.Title)); err != nil {
			return plex.DownloadResult{}, err
		}
		if err := file.Close(); err != nil {
			return plex.DownloadResult{}, err
		}
	}
	return plex.DownloadResult{Primary: names[0], Auxiliary: names[1:]}, nil
}

func listDir(t *testing.T, dir string) []string {
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name()
	}
	return names
}

func TestExportItemsRenamesSequentially(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Road Trip")
	downloader := &fakeDownloader{files: map[string][]string{
		"one":   {"first song.mp3"},
		"two":   {"second song.flac"},
		"three": {"third song.mp3"},
	}}
	items := []plex.Metadata{{Title: "one"}, {Title: "two"}, {Title: "three"}}

	count, err := ExportItems(downloader, items, filesystem.NewFileSystem(dir), false)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, []string{"001.mp3", "002.flac", "003.mp3"}, listDir(t, dir))
}

func TestExportItemsKeepsOriginalNames(t *testing.T) {
	dir := t.TempDir()
	downloader := &fakeDownloader{files: map[string][]string{
		"one": {"first song.mp3"},
		"two": {"second song.mp3"},
	}}
	items := []plex.Metadata{{Title: "one"}, {Title: "two"}}

	count, err := ExportItems(downloader, items, filesystem.NewFileSystem(dir), true)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, []string{"first song.mp3", "second song.mp3"}, listDir(t, dir))
}

func TestExportItemsOnlyNumbersThePrimaryFile(t *testing.T) {
	dir := t.TempDir()
	downloader := &fakeDownloader{files: map[string][]string{
		"movie": {"movie pt1.mkv", "movie pt2.mkv"},
		"short": {"short.mkv"},
	}}
	items := []plex.Metadata{{Title: "movie"}, {Title: "short"}}

	count, err := ExportItems(downloader, items, filesystem.NewFileSystem(dir), false)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	// the auxiliary file keeps its name and does not advance the counter
	assert.Equal(t, []string{"001.mkv", "002.mkv", "movie pt2.mkv"}, listDir(t, dir))
}

func TestExportItemsAbortsOnFailure(t *testing.T) {
	dir := t.TempDir()
	downloader := &fakeDownloader{
		files: map[string][]string{
			"one":   {"a.mp3"},
			"three": {"c.mp3"},
		},
		failOn: "two",
	}
	items := []plex.Metadata{{Title: "one"}, {Title: "two"}, {Title: "three"}}

	count, err := ExportItems(downloader, items, filesystem.NewFileSystem(dir), false)
	assert.Error(t, err)
	assert.Equal(t, 1, count)
	// already exported files stay in place
	assert.Equal(t, []string{"001.mp3"}, listDir(t, dir))
}

func TestExportItemsCreatesDestination(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "dest")
	downloader := &fakeDownloader{files: map[string][]string{"one": {"a.mp3"}}}

	_, err := ExportItems(downloader, []plex.Metadata{{Title: "one"}}, filesystem.NewFileSystem(dir), false)
	require.NoError(t, err)
	assert.DirExists(t, dir)
}
