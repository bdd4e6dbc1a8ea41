package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FileSystem defines the methods for file system operations.
type FileSystem interface {
	IsNotExist(err error) bool
	Stat(name string) (fs.FileInfo, error)
	Abs(path string) (string, error)
	EvalSymlinks(path string) (string, error)
}

// OSFileSystem implements FileSystem using the os package.
type OSFileSystem struct{}

func NewFileSystem() FileSystem {
	return OSFileSystem{}
}

func (OSFileSystem) Abs(path string) (string, error) {
	return filepath.Abs(path)
}

func (OSFileSystem) EvalSymlinks(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}

func (OSFileSystem) IsNotExist(err error) bool {
	return os.IsNotExist(err)
}

func (OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}
