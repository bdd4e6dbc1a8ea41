package diskfree

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/djedi/ddf/pkg/filesystem"
	filesystemstats "github.com/djedi/ddf/pkg/filesystem-stats"
	"github.com/djedi/ddf/pkg/logger"
	"github.com/djedi/ddf/pkg/metrics"
	mountmanager "github.com/djedi/ddf/pkg/mount-manager"
)

// Options tune how a listing is built.
type Options struct {
	// LocalOnly drops network filesystems from a full listing.
	LocalOnly bool
	// Workers bounds concurrent statistics calls. Values below 2 stat the
	// mounts one after another.
	Workers int
	// Annotator, when set, attaches drive details to every record.
	Annotator Annotator
}

// Collect reads the mount table through lister and builds the listing.
// Failing to read the mount table is fatal; every other problem is not.
func Collect(ctx context.Context, lister mountmanager.Lister, reader filesystemstats.Reader, fsys filesystem.FileSystem, requested []string, rules []ExclusionRule, opts Options) ([]Filesystem, error) {
	log, ctx, done := logger.GetLogger(ctx).WithMethod(ctx, "Collect")
	defer done()

	ctx, span := metrics.StartSpan(ctx, "Collect", nil)
	defer span.End()

	mounts, err := lister.List(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	log.V(2).Info("Enumerated mounts", "count", len(mounts))

	return BuildFilesystemList(ctx, reader, fsys, mounts, requested, rules, opts)
}

// BuildFilesystemList turns mount entries into records, in enumeration order.
//
// Entries whose statistics cannot be read are dropped. With requested
// arguments, only the filesystems they resolve to are returned and exclusion
// rules are ignored; arguments that resolve to nothing, or to a filesystem
// whose statistics cannot be read, are reported through the returned
// *multierror.Error of *PathNotFoundError, alongside the records that did
// resolve.
func BuildFilesystemList(ctx context.Context, reader filesystemstats.Reader, fsys filesystem.FileSystem, mounts []mountmanager.MountEntry, requested []string, rules []ExclusionRule, opts Options) ([]Filesystem, error) {
	log, ctx, done := logger.GetLogger(ctx).WithMethod(ctx, "BuildFilesystemList")
	defer done()

	results, err := statAll(ctx, reader, mounts, opts.Workers)
	if err != nil {
		return nil, err
	}

	records := make([]Filesystem, 0, len(mounts))
	var selected []bool
	var notFound error
	if len(requested) > 0 {
		selected, notFound = resolveRequested(ctx, fsys, mounts, results, requested)
	}
	for i, res := range results {
		if res.record == nil || (selected != nil && !selected[i]) {
			continue
		}
		if opts.Annotator != nil {
			res.record.Drive = opts.Annotator.Annotate(res.record.Device)
		}
		records = append(records, *res.record)
	}

	if len(requested) > 0 {
		log.V(2).Info("Selected requested filesystems", "requested", len(requested), "selected", len(records))
		return records, notFound
	}

	out := make([]Filesystem, 0, len(records))
	for _, r := range records {
		if Excluded(r, rules) {
			log.V(5).Info("Excluded filesystem", "mountpoint", r.MountPoint, "fstype", r.FsType)
			continue
		}
		if opts.LocalOnly && r.Remote {
			log.V(5).Info("Skipped remote filesystem", "mountpoint", r.MountPoint, "device", r.Device)
			continue
		}
		out = append(out, r)
	}
	log.V(2).Info("Built filesystem list", "mounts", len(mounts), "listed", len(out))
	return out, nil
}

// statResult holds the record of one mount, or why it has none.
type statResult struct {
	record *Filesystem
	err    error
}

// statAll stats every mount, concurrently when workers > 1, and returns one
// result per mount in the order of mounts.
func statAll(ctx context.Context, reader filesystemstats.Reader, mounts []mountmanager.MountEntry, workers int) ([]statResult, error) {
	results := make([]statResult, len(mounts))

	if workers <= 1 {
		for i, entry := range mounts {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i] = stat(ctx, reader, entry)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(workers)
		for i, entry := range mounts {
			g.Go(func() error {
				if ctx.Err() != nil {
					return nil
				}
				results[i] = stat(ctx, reader, entry)
				return nil
			})
		}
		_ = g.Wait()
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	return results, nil
}

func stat(ctx context.Context, reader filesystemstats.Reader, entry mountmanager.MountEntry) statResult {
	log := logger.GetLogger(ctx)
	functionStartTime := time.Now()
	params := map[string]string{
		"device":     entry.Device,
		"mountpoint": entry.MountPoint,
		"fstype":     entry.FsType,
	}

	stats, err := reader.StatSpace(entry.MountPoint)
	if err != nil {
		metrics.RecordMetrics(metrics.StatTotal, metrics.StatDuration, metrics.Failed, functionStartTime)
		metrics.TraceFunctionData(ctx, "StatSpace", params, metrics.TracingError, err)
		log.V(2).Info("Skipping filesystem without statistics", "mountpoint", entry.MountPoint, "error", err.Error())
		return statResult{err: err}
	}
	metrics.RecordMetrics(metrics.StatTotal, metrics.StatDuration, metrics.Completed, functionStartTime)
	metrics.TraceFunctionData(ctx, "StatSpace", params, metrics.TracingSubfunction, nil)

	fs := NewFilesystem(entry, stats)
	return statResult{record: &fs}
}
