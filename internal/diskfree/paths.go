package diskfree

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/djedi/ddf/pkg/filesystem"
	"github.com/djedi/ddf/pkg/logger"
	mountmanager "github.com/djedi/ddf/pkg/mount-manager"
)

// canonicalPath makes p absolute and resolves every symlink in it.
func canonicalPath(fsys filesystem.FileSystem, p string) (string, error) {
	abs, err := fsys.Abs(p)
	if err != nil {
		return "", err
	}
	resolved, err := fsys.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}
	return filepath.Clean(resolved), nil
}

// containsPath reports whether p is mountPoint itself or lies below it.
// "/snap" does not contain "/snapshot".
func containsPath(mountPoint, p string) bool {
	if mountPoint == "" || !strings.HasPrefix(p, mountPoint) {
		return false
	}
	if len(p) == len(mountPoint) || strings.HasSuffix(mountPoint, string(filepath.Separator)) {
		return true
	}
	return p[len(mountPoint)] == filepath.Separator
}

// mostSpecific returns the index of the mount with the longest mount point
// containing p, or -1. Of several filesystems stacked on the same mount point
// the last one mounted is the visible one.
func mostSpecific(mounts []mountmanager.MountEntry, p string) int {
	best := -1
	for i, m := range mounts {
		if !containsPath(m.MountPoint, p) {
			continue
		}
		if best < 0 || len(m.MountPoint) >= len(mounts[best].MountPoint) {
			best = i
		}
	}
	return best
}

func deviceIndex(mounts []mountmanager.MountEntry, device string) int {
	for i, m := range mounts {
		if m.Device == device {
			return i
		}
	}
	return -1
}

// looksLikeDevice reports whether arg may name a device rather than a file
// relative to the working directory. Bare names such as "tmpfs" are paths.
func looksLikeDevice(arg string) bool {
	return filepath.IsAbs(arg) || strings.HasPrefix(arg, "//") || strings.Contains(arg, ":/")
}

// resolveRequested maps every requested argument to a mount and returns which
// mounts were selected, indexed like mounts. Device names select the first
// filesystem mounted from that device, anything else is treated as a path.
// An argument whose filesystem has no statistics is reported, never
// replaced by the filesystem underneath it.
func resolveRequested(ctx context.Context, fsys filesystem.FileSystem, mounts []mountmanager.MountEntry, results []statResult, requested []string) ([]bool, error) {
	log := logger.GetLogger(ctx)

	var errs *multierror.Error
	selected := make([]bool, len(mounts))
	for _, arg := range requested {
		i := -1
		if looksLikeDevice(arg) {
			i = deviceIndex(mounts, arg)
		}
		if i < 0 {
			p, err := canonicalPath(fsys, arg)
			if err != nil {
				errs = multierror.Append(errs, &PathNotFoundError{Path: arg, Err: err})
				continue
			}
			// /dev/disk/by-label/root and friends resolve to the device node.
			if i = deviceIndex(mounts, p); i < 0 {
				i = mostSpecific(mounts, p)
			}
			if i < 0 {
				errs = multierror.Append(errs, &PathNotFoundError{Path: arg, Err: errNoMatchingMount})
				continue
			}
		}
		if results[i].record == nil {
			errs = multierror.Append(errs, &PathNotFoundError{Path: arg, Err: results[i].err})
			continue
		}
		log.V(4).Info("Resolved argument", "arg", arg, "mountpoint", mounts[i].MountPoint)
		selected[i] = true
	}
	return selected, errs.ErrorOrNil()
}
