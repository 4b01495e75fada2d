package actions

import (
	"fmt"
	"path"

	"plex-playlist-download/internal/filesystem"
	"plex-playlist-download/internal/logger"
	"plex-playlist-download/internal/plex"
)

// ItemDownloader materializes one playlist item into a destination.
type ItemDownloader interface {
	DownloadItem(item plex.Metadata, dest filesystem.FileSystem) (plex.DownloadResult, error)
}

// ExportItems downloads items into dest in the supplied order and
// returns how many files were written. Unless keepOriginalNames is set,
// the primary file of each item is renamed to a zero-padded sequence
// number keeping its extension; auxiliary files stay under their
// original names and do not advance the counter. Sequence numbers past
// 999 simply widen the field. The first failing item aborts the export;
// files already written stay in place.
func ExportItems(downloader ItemDownloader, items []plex.Metadata, dest filesystem.FileSystem, keepOriginalNames bool) (int, error) {
	if err := dest.Mkdir(); err != nil {
		return 0, fmt.Errorf("creating %s: %w", dest.GetPath(), err)
	}

	written := 0
	seq := 0
	for _, item := range items {
		result, err := downloader.DownloadItem(item, dest)
		if err != nil {
			return written, err
		}
		written += 1 + len(result.Auxiliary)

		if keepOriginalNames {
			continue
		}

		seq++
		newName := fmt.Sprintf("%03d%s", seq, path.Ext(result.Primary))
		if err := dest.Rename(result.Primary, newName); err != nil {
			return written, fmt.Errorf("renaming %s: %w", result.Primary, err)
		}
		logger.LogVerbose(result.Primary, " -> ", newName)
	}
	return written, nil
}
