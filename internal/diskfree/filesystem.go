package diskfree

import (
	filesystemstats "github.com/djedi/ddf/pkg/filesystem-stats"
	"github.com/djedi/ddf/pkg/hwinfo"
	mountmanager "github.com/djedi/ddf/pkg/mount-manager"
)

// Filesystem is the displayable record of one mounted filesystem. Records
// are rebuilt on every listing and never modified afterwards.
type Filesystem struct {
	Device     string `json:"device"`
	MountPoint string `json:"mountPoint"`
	FsType     string `json:"fsType"`

	TotalBytes     uint64 `json:"totalBytes"`
	UsedBytes      uint64 `json:"usedBytes"`
	AvailableBytes uint64 `json:"availableBytes"`
	// UsageRatio is UsedBytes/TotalBytes in [0, 1], 0 when TotalBytes is 0.
	UsageRatio float64 `json:"usageRatio"`

	InodesTotal uint64 `json:"inodesTotal"`
	InodesUsed  uint64 `json:"inodesUsed"`
	InodesFree  uint64 `json:"inodesFree"`

	Remote bool              `json:"remote"`
	Dummy  bool              `json:"dummy"`
	Drive  *hwinfo.DriveInfo `json:"drive,omitempty"`
}

// NewFilesystem combines a mount table entry with its space statistics.
func NewFilesystem(entry mountmanager.MountEntry, stats filesystemstats.SpaceStats) Filesystem {
	total := stats.TotalBytes()
	used := stats.UsedBytes()
	return Filesystem{
		Device:         entry.Device,
		MountPoint:     entry.MountPoint,
		FsType:         entry.FsType,
		TotalBytes:     total,
		UsedBytes:      used,
		AvailableBytes: stats.AvailableBytes(),
		UsageRatio:     usageRatio(used, total),
		InodesTotal:    stats.InodesTotal,
		InodesUsed:     stats.InodesUsed(),
		InodesFree:     stats.InodesFree,
		Remote:         isRemote(entry),
		Dummy:          isDummy(entry.FsType),
	}
}

// InodeUsageRatio is InodesUsed/InodesTotal, 0 for filesystems without inodes.
func (f Filesystem) InodeUsageRatio() float64 {
	return usageRatio(f.InodesUsed, f.InodesTotal)
}

func usageRatio(used, total uint64) float64 {
	if total == 0 {
		return 0
	}
	ratio := float64(used) / float64(total)
	if ratio > 1 {
		return 1
	}
	return ratio
}
