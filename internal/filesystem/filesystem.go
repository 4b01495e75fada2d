package filesystem

import (
	"io"
	"strings"
)

// FileSystem is a destination for exported media files. Paths passed to
// its methods are relative to the destination directory.
type FileSystem interface {
	GetPath() string
	Mkdir() error
	FileWriter(filename string) (io.WriteCloser, error)
	Rename(oldname string, newname string) error
}

func NewFileSystem(base string) FileSystem {
	if strings.HasPrefix(base, "smb://") || strings.HasPrefix(base, "//") {
		return NewSmbFileSystem(base)
	}
	return NewLocalFileSystem(base)
}
