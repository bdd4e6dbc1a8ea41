//go:build !linux && !darwin && !freebsd

package filesystemstats

import "github.com/shirou/gopsutil/v3/disk"

// usageReader reads statistics through gopsutil. Block counts are expressed
// in bytes (BlockSize 1) because not every platform exposes a block size.
type usageReader struct{}

var _ Reader = usageReader{}

// NewReader returns the Reader for the running platform.
func NewReader() Reader {
	return usageReader{}
}

func (usageReader) StatSpace(path string) (SpaceStats, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return SpaceStats{}, &StatError{Path: path, Err: err}
	}
	free := uint64(0)
	if usage.Used <= usage.Total {
		free = usage.Total - usage.Used
	}
	return SpaceStats{
		BlockSize:       1,
		BlocksTotal:     usage.Total,
		BlocksFree:      free,
		BlocksAvailable: usage.Free,
		InodesTotal:     usage.InodesTotal,
		InodesFree:      usage.InodesFree,
	}, nil
}
