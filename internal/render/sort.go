package render

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/djedi/ddf/internal/diskfree"
)

// SortKey names the column a listing is ordered by.
type SortKey string

const (
	SortNone   SortKey = "none"
	SortMount  SortKey = "mount"
	SortDevice SortKey = "device"
	SortType   SortKey = "type"
	SortSize   SortKey = "size"
	SortUsed   SortKey = "used"
	SortAvail  SortKey = "avail"
	SortUsage  SortKey = "usage"
)

// SortKeys lists the accepted keys, for flag help and completion.
var SortKeys = []SortKey{SortNone, SortMount, SortDevice, SortType, SortSize, SortUsed, SortAvail, SortUsage}

func ParseSortKey(s string) (SortKey, error) {
	key := SortKey(strings.ToLower(s))
	if slices.Contains(SortKeys, key) {
		return key, nil
	}
	return "", fmt.Errorf("unknown sort key %q, expected one of %v", s, SortKeys)
}

func compareBy(key SortKey) func(a, b diskfree.Filesystem) int {
	switch key {
	case SortMount:
		return func(a, b diskfree.Filesystem) int { return cmp.Compare(a.MountPoint, b.MountPoint) }
	case SortDevice:
		return func(a, b diskfree.Filesystem) int { return cmp.Compare(a.Device, b.Device) }
	case SortType:
		return func(a, b diskfree.Filesystem) int { return cmp.Compare(a.FsType, b.FsType) }
	case SortSize:
		return func(a, b diskfree.Filesystem) int { return cmp.Compare(a.TotalBytes, b.TotalBytes) }
	case SortUsed:
		return func(a, b diskfree.Filesystem) int { return cmp.Compare(a.UsedBytes, b.UsedBytes) }
	case SortAvail:
		return func(a, b diskfree.Filesystem) int { return cmp.Compare(a.AvailableBytes, b.AvailableBytes) }
	case SortUsage:
		return func(a, b diskfree.Filesystem) int { return cmp.Compare(a.UsageRatio, b.UsageRatio) }
	default:
		return nil
	}
}

// Sort returns a sorted copy of records. Ties keep enumeration order, also
// when reversed. SortNone with reverse flips enumeration order.
func Sort(records []diskfree.Filesystem, key SortKey, reverse bool) []diskfree.Filesystem {
	out := slices.Clone(records)
	compare := compareBy(key)
	if compare == nil {
		if reverse {
			slices.Reverse(out)
		}
		return out
	}
	if reverse {
		asc := compare
		compare = func(a, b diskfree.Filesystem) int { return asc(b, a) }
	}
	slices.SortStableFunc(out, compare)
	return out
}
