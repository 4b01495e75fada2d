package plex

import (
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jrudio/go-plex-client"
	"plex-playlist-download/internal/filesystem"
	"plex-playlist-download/internal/logger"
)

// DownloadResult lists the files one playlist item produced. An item may
// expand to several files (multi-part movies, extra media versions); the
// primary file is the first part the server reports and is the only one
// the exporter renames.
type DownloadResult struct {
	Primary   string
	Auxiliary []string
}

// DownloadItem fetches every media part of item into dest under its
// original filename. Files are written one at a time, in server order.
func (p *Server) DownloadItem(item Metadata, dest filesystem.FileSystem) (DownloadResult, error) {
	var files []string
	for _, media := range item.Media {
		for _, part := range media.Part {
			name := path.Base(part.File)
			if err := p.downloadPart(part, dest, name); err != nil {
				return DownloadResult{}, err
			}
			files = append(files, name)
		}
	}
	if len(files) == 0 {
		return DownloadResult{}, fmt.Errorf("%w: no downloadable media for %q", ErrNotFound, item.Title)
	}
	return DownloadResult{Primary: files[0], Auxiliary: files[1:]}, nil
}

func (p *Server) downloadPart(part plex.Part, dest filesystem.FileSystem, name string) error {
	args := make(map[string]string)
	args["download"] = "1"

	query := fmt.Sprintf("%s%s%s", p.URL, part.Key, joinArgs(args))

	resp, err := p.http("GET", query)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnreachable, err.Error())
	}

	//goland:noinspection GoUnhandledErrorResult
	defer resp.Body.Close()

	if resp.Status == plex.ErrorInvalidToken || resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", ErrUnauthorized, resp.Status)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s", ErrUnreachable, resp.Status)
	}

	file, err := dest.FileWriter(name)
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}

	size := uint64(0)
	if resp.ContentLength > 0 {
		size = uint64(resp.ContentLength)
	}
	written, err := copyWithProgress(file, resp.Body, size)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}

	logger.LogInfof("%s: %s\n", name, humanize.Bytes(written))
	return nil
}

func copyWithProgress(w io.Writer, r io.Reader, size uint64) (uint64, error) {
	buff := make([]byte, 1024*1024)
	written := uint64(0)
	start := time.Now()
	showBar := size > 0 && logger.LogLevel != "WARN" && logger.LogLevel != "ERROR"

	for {
		n, readErr := r.Read(buff)
		if n > 0 {
			if _, err := w.Write(buff[:n]); err != nil {
				return written, err
			}
			written += uint64(n)
			if showBar {
				progress := float64(written) / float64(size)
				if progress > 1 {
					// servers may send more than their Content-Length claims
					progress = 1
				}
				bar := strings.Repeat("#", int(progress*50))
				remaining := remainingTime(time.Since(start), written, size)
				fmt.Printf("\r[%-50s]%3d%% %s copied, %s remaining         ", bar, int(progress*100), humanize.Bytes(written), remaining.Round(time.Second).String())
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return written, readErr
		}
	}
	if showBar {
		fmt.Printf("\r%s\r", strings.Repeat(" ", 100))
	}
	return written, nil
}

// remainingTime estimates time left at the observed rate. Returns zero
// once written reaches size so an understated Content-Length cannot
// underflow the estimate.
func remainingTime(elapsed time.Duration, written uint64, size uint64) time.Duration {
	if written == 0 || written >= size {
		return 0
	}
	return time.Duration((float64(elapsed) / float64(written)) * float64(size-written))
}
