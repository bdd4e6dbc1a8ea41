//go:build linux

package mountmanager

import (
	"context"

	"k8s.io/mount-utils"

	"github.com/djedi/ddf/pkg/logger"
)

const (
	// procMountInfoPath lists the mounts of the calling process' namespace.
	// See "man 5 proc" for the format.
	procMountInfoPath = "/proc/self/mountinfo"

	// mtabPath is read when mountinfo is unavailable, e.g. in some chroots.
	mtabPath = "/etc/mtab"
)

// procLister reads the Linux mount table from procfs.
type procLister struct {
	mountInfoPath string
	mtabPath      string
}

var _ Lister = &procLister{}

// NewLister returns the Lister for the running platform.
func NewLister() Lister {
	return &procLister{
		mountInfoPath: procMountInfoPath,
		mtabPath:      mtabPath,
	}
}

func (l *procLister) List(ctx context.Context) ([]MountEntry, error) {
	log := logger.GetLogger(ctx)

	infos, err := mount.ParseMountInfo(l.mountInfoPath)
	if err == nil {
		entries := make([]MountEntry, 0, len(infos))
		for _, info := range infos {
			entries = append(entries, MountEntry{
				Device:     unescapeOctal(info.Source),
				MountPoint: unescapeOctal(info.MountPoint),
				FsType:     info.FsType,
			})
		}
		log.V(4).Info("Read mount table", "source", l.mountInfoPath, "entries", len(entries))
		return Dedup(entries), nil
	}
	log.V(2).Info("Cannot read mountinfo, falling back to mtab", "path", l.mountInfoPath, "mtab", l.mtabPath, "error", err.Error())

	mountPoints, err := mount.ListProcMounts(l.mtabPath)
	if err != nil {
		return nil, enumerationError(l.mtabPath, err)
	}
	entries := make([]MountEntry, 0, len(mountPoints))
	for _, mp := range mountPoints {
		entries = append(entries, MountEntry{
			Device:     unescapeOctal(mp.Device),
			MountPoint: unescapeOctal(mp.Path),
			FsType:     mp.Type,
		})
	}
	log.V(4).Info("Read mount table", "source", l.mtabPath, "entries", len(entries))
	return Dedup(entries), nil
}
