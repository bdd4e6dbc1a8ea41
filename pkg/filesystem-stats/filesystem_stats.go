package filesystemstats

import "fmt"

// SpaceStats holds the space and inode counters of one mounted filesystem.
// Pseudo filesystems commonly report zeros everywhere.
type SpaceStats struct {
	BlockSize       uint64
	BlocksTotal     uint64
	BlocksFree      uint64
	BlocksAvailable uint64
	InodesTotal     uint64
	InodesFree      uint64
}

// TotalBytes is the size of the filesystem.
func (s SpaceStats) TotalBytes() uint64 {
	return s.BlocksTotal * s.BlockSize
}

// UsedBytes counts everything that is not free, reserved blocks included.
func (s SpaceStats) UsedBytes() uint64 {
	total := s.TotalBytes()
	free := s.BlocksFree * s.BlockSize
	if free > total {
		return 0
	}
	return total - free
}

// AvailableBytes is the space usable by unprivileged users.
func (s SpaceStats) AvailableBytes() uint64 {
	return s.BlocksAvailable * s.BlockSize
}

func (s SpaceStats) InodesUsed() uint64 {
	if s.InodesFree > s.InodesTotal {
		return 0
	}
	return s.InodesTotal - s.InodesFree
}

// Reader returns live space statistics for a mount point.
type Reader interface {
	StatSpace(path string) (SpaceStats, error)
}

// StatError reports a failed statistics call for a single path.
type StatError struct {
	Path string
	Err  error
}

func (e *StatError) Error() string {
	return fmt.Sprintf("failed to get stats for %s: %v", e.Path, e.Err)
}

func (e *StatError) Unwrap() error {
	return e.Err
}
