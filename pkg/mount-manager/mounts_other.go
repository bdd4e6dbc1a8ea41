//go:build !linux && !darwin && !freebsd && !openbsd

package mountmanager

import (
	"context"

	"github.com/shirou/gopsutil/v3/disk"

	"github.com/djedi/ddf/pkg/logger"
)

// partitionLister enumerates volumes through gopsutil on platforms without
// a dedicated mount table reader (Windows, NetBSD, Solaris, ...).
type partitionLister struct{}

var _ Lister = partitionLister{}

// NewLister returns the Lister for the running platform.
func NewLister() Lister {
	return partitionLister{}
}

func (partitionLister) List(ctx context.Context) ([]MountEntry, error) {
	partitions, err := disk.PartitionsWithContext(ctx, true)
	if err != nil {
		return nil, enumerationError("partitions", err)
	}
	entries := make([]MountEntry, 0, len(partitions))
	for _, p := range partitions {
		entries = append(entries, MountEntry{
			Device:     p.Device,
			MountPoint: p.Mountpoint,
			FsType:     p.Fstype,
		})
	}
	logger.GetLogger(ctx).V(4).Info("Read mount table", "source", "partitions", "entries", len(entries))
	return Dedup(entries), nil
}
