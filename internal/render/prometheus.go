package render

import (
	"io"

	"github.com/djedi/ddf/internal/diskfree"
	"github.com/djedi/ddf/pkg/metrics"
)

func renderPrometheus(w io.Writer, records []diskfree.Filesystem) error {
	samples := make([]metrics.FilesystemSample, 0, len(records))
	for _, r := range records {
		samples = append(samples, metrics.FilesystemSample{
			Device:      r.Device,
			MountPoint:  r.MountPoint,
			FsType:      r.FsType,
			SizeBytes:   r.TotalBytes,
			UsedBytes:   r.UsedBytes,
			AvailBytes:  r.AvailableBytes,
			UsageRatio:  r.UsageRatio,
			InodesTotal: r.InodesTotal,
			InodesFree:  r.InodesFree,
		})
	}
	metrics.ObserveFilesystems(samples)
	return metrics.WriteText(w)
}
