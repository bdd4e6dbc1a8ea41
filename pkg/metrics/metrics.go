package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Constants representing success or failure states as strings for the metrics labels.
const (
	Completed = "true"  // Represents successful operation
	Failed    = "false" // Represents failed operation
)

// Registry holds every ddf collector. The process-wide default registry is
// left alone so the prometheus output only carries ddf series.
var Registry = prometheus.NewRegistry()

var filesystemLabels = []string{"device", "mountpoint", "fstype"}

var (
	// StatTotal counts the statfs calls made while building a listing.
	// It uses a label "functionStatus" to differentiate between successful and failed calls.
	StatTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ddf_stat_calls_total",
			Help: "Total number of filesystem statistics calls"},
		[]string{"functionStatus"},
	)

	// StatDuration tracks the duration of statfs calls.
	StatDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ddf_stat_duration_seconds",
			Help:    "Duration of filesystem statistics calls",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"functionStatus"},
	)

	FilesystemSize = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ddf_filesystem_size_bytes",
			Help: "Filesystem size in bytes",
		},
		filesystemLabels,
	)

	FilesystemUsed = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ddf_filesystem_used_bytes",
			Help: "Filesystem space in use in bytes",
		},
		filesystemLabels,
	)

	FilesystemAvail = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ddf_filesystem_avail_bytes",
			Help: "Filesystem space available to unprivileged users in bytes",
		},
		filesystemLabels,
	)

	FilesystemUsage = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ddf_filesystem_usage_ratio",
			Help: "Used bytes divided by size, 0 for filesystems without capacity",
		},
		filesystemLabels,
	)

	FilesystemFiles = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ddf_filesystem_files",
			Help: "Filesystem total inodes",
		},
		filesystemLabels,
	)

	FilesystemFilesFree = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ddf_filesystem_files_free",
			Help: "Filesystem free inodes",
		},
		filesystemLabels,
	)
)

// The init function registers all the defined Prometheus metrics.
func init() {
	Registry.MustRegister(StatTotal)
	Registry.MustRegister(StatDuration)
	Registry.MustRegister(FilesystemSize)
	Registry.MustRegister(FilesystemUsed)
	Registry.MustRegister(FilesystemAvail)
	Registry.MustRegister(FilesystemUsage)
	Registry.MustRegister(FilesystemFiles)
	Registry.MustRegister(FilesystemFilesFree)
}

// RecordMetrics function is a helper to encapsulate metrics storage across function calls.
// It increments the total counter and observes the duration of the operation.
func RecordMetrics(total *prometheus.CounterVec, duration *prometheus.HistogramVec, functionStatus string, start time.Time) {
	total.WithLabelValues(functionStatus).Inc()                                   // Increment the total metric for the operation
	duration.WithLabelValues(functionStatus).Observe(time.Since(start).Seconds()) // Record the duration of the operation
}

// FilesystemSample is one row of the filesystem gauges.
type FilesystemSample struct {
	Device      string
	MountPoint  string
	FsType      string
	SizeBytes   uint64
	UsedBytes   uint64
	AvailBytes  uint64
	UsageRatio  float64
	InodesTotal uint64
	InodesFree  uint64
}

// ObserveFilesystems replaces the content of the filesystem gauges with samples.
func ObserveFilesystems(samples []FilesystemSample) {
	for _, g := range []*prometheus.GaugeVec{FilesystemSize, FilesystemUsed, FilesystemAvail, FilesystemUsage, FilesystemFiles, FilesystemFilesFree} {
		g.Reset()
	}
	for _, s := range samples {
		labels := prometheus.Labels{"device": s.Device, "mountpoint": s.MountPoint, "fstype": s.FsType}
		FilesystemSize.With(labels).Set(float64(s.SizeBytes))
		FilesystemUsed.With(labels).Set(float64(s.UsedBytes))
		FilesystemAvail.With(labels).Set(float64(s.AvailBytes))
		FilesystemUsage.With(labels).Set(s.UsageRatio)
		FilesystemFiles.With(labels).Set(float64(s.InodesTotal))
		FilesystemFilesFree.With(labels).Set(float64(s.InodesFree))
	}
}

// WriteText writes every registered metric to w in the prometheus text
// exposition format.
func WriteText(w io.Writer) error {
	families, err := Registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("failed to encode metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
