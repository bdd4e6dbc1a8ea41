package diskfree

import (
	"fmt"
	"strings"
)

// ExclusionKind selects how an ExclusionRule matches a filesystem.
type ExclusionKind int

const (
	// FsTypeEquals matches filesystems whose type equals the rule value.
	FsTypeEquals ExclusionKind = iota
	// MountPointPrefix matches mount points starting with the rule value.
	// The comparison is a plain string prefix: "/snap" also matches "/snapshot".
	MountPointPrefix
)

func (k ExclusionKind) String() string {
	switch k {
	case FsTypeEquals:
		return "fstype"
	case MountPointPrefix:
		return "mount_dir_starts_with"
	default:
		return fmt.Sprintf("ExclusionKind(%d)", int(k))
	}
}

// ExclusionRule hides matching filesystems from a full listing.
type ExclusionRule struct {
	Kind  ExclusionKind
	Value string
}

func ExcludeFsType(fsType string) ExclusionRule {
	return ExclusionRule{Kind: FsTypeEquals, Value: fsType}
}

func ExcludeMountPointPrefix(prefix string) ExclusionRule {
	return ExclusionRule{Kind: MountPointPrefix, Value: prefix}
}

// Matches reports whether f is hidden by the rule.
func (r ExclusionRule) Matches(f Filesystem) bool {
	switch r.Kind {
	case FsTypeEquals:
		return f.FsType == r.Value
	case MountPointPrefix:
		return strings.HasPrefix(f.MountPoint, r.Value)
	default:
		return false
	}
}

func (r ExclusionRule) String() string {
	return fmt.Sprintf("%s=%q", r.Kind, r.Value)
}

// Excluded reports whether any of rules matches f.
func Excluded(f Filesystem, rules []ExclusionRule) bool {
	for _, r := range rules {
		if r.Matches(f) {
			return true
		}
	}
	return false
}
