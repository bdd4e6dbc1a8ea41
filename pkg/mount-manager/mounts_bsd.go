//go:build darwin || freebsd || openbsd

package mountmanager

import (
	"context"

	"github.com/moby/sys/mountinfo"

	"github.com/djedi/ddf/pkg/logger"
)

// getmntinfoLister reads the mount table with getmntinfo(3).
type getmntinfoLister struct{}

var _ Lister = getmntinfoLister{}

// NewLister returns the Lister for the running platform.
func NewLister() Lister {
	return getmntinfoLister{}
}

func (getmntinfoLister) List(ctx context.Context) ([]MountEntry, error) {
	infos, err := mountinfo.GetMounts(nil)
	if err != nil {
		return nil, enumerationError("getmntinfo", err)
	}
	entries := make([]MountEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, MountEntry{
			Device:     info.Source,
			MountPoint: info.Mountpoint,
			FsType:     info.FSType,
		})
	}
	logger.GetLogger(ctx).V(4).Info("Read mount table", "source", "getmntinfo", "entries", len(entries))
	return Dedup(entries), nil
}
