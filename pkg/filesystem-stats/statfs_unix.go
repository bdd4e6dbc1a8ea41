//go:build linux || darwin || freebsd

package filesystemstats

import "golang.org/x/sys/unix"

// FilesystemStatter provides an interface for getting filesystem statistics.
// This interface allows for easier mocking in tests.
type FilesystemStatter interface {
	// Statfs returns filesystem statistics for the given path.
	Statfs(path string, stat *unix.Statfs_t) error
}

// UnixFilesystemStatter implements FilesystemStatter using the real unix.Statfs system call.
type UnixFilesystemStatter struct{}

// Statfs calls the unix.Statfs system call.
func (u *UnixFilesystemStatter) Statfs(path string, stat *unix.Statfs_t) error {
	return unix.Statfs(path, stat)
}

// NewFilesystemStatter creates a new FilesystemStatter using the real unix.Statfs.
func NewFilesystemStatter() FilesystemStatter {
	return &UnixFilesystemStatter{}
}

type statfsReader struct {
	statter FilesystemStatter
}

var _ Reader = &statfsReader{}

// NewReader returns the Reader for the running platform.
func NewReader() Reader {
	return NewStatfsReader(NewFilesystemStatter())
}

// NewStatfsReader returns a Reader backed by the given statter.
func NewStatfsReader(statter FilesystemStatter) Reader {
	return &statfsReader{statter: statter}
}

func (r *statfsReader) StatSpace(path string) (SpaceStats, error) {
	var statfs unix.Statfs_t
	// See http://man7.org/linux/man-pages/man2/statfs.2.html for details.
	if err := r.statter.Statfs(path, &statfs); err != nil {
		return SpaceStats{}, &StatError{Path: path, Err: err}
	}
	return fromStatfs(&statfs), nil
}
