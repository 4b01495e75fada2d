package filesystem

import (
	"io"
	"os"
	"path"
	"path/filepath"
	"plex-playlist-download/internal/logger"
)

type LocalFileSystem struct {
	Path string
}

func NewLocalFileSystem(dir string) FileSystem {
	return &LocalFileSystem{Path: dir}
}

func (f *LocalFileSystem) GetPath() string {
	return f.Path
}

func (f *LocalFileSystem) Mkdir() error {
	logger.LogVerbose("Creating directory ", f.Path)
	return os.MkdirAll(f.Path, 0755)
}

func (f *LocalFileSystem) FileWriter(filename string) (io.WriteCloser, error) {
	absPath := filepath.Join(f.Path, path.Clean(filename))
	logger.LogVerbose("Writing file ", absPath)
	return os.Create(absPath)
}

func (f *LocalFileSystem) Rename(oldname string, newname string) error {
	logger.LogVerbose("Renaming ", oldname, " to ", newname)
	return os.Rename(filepath.Join(f.Path, oldname), filepath.Join(f.Path, newname))
}
