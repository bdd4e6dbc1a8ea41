package mountmanager

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEnumeration is wrapped by every error a Lister returns when the mount
// table of the host cannot be read at all.
var ErrEnumeration = errors.New("cannot read mount table")

// MountEntry is one record of the OS mount table.
type MountEntry struct {
	Device     string
	MountPoint string
	FsType     string
}

// Lister enumerates the currently mounted filesystems.
//
// Implementations return entries in the order the OS reports them, with
// repeated (Device, MountPoint) pairs removed. Pseudo filesystems are passed
// through untouched.
type Lister interface {
	List(ctx context.Context) ([]MountEntry, error)
}

// Dedup drops entries whose (Device, MountPoint) pair was already seen,
// keeping the first occurrence and the original order.
func Dedup(entries []MountEntry) []MountEntry {
	type key struct {
		device     string
		mountPoint string
	}
	seen := make(map[key]struct{}, len(entries))
	deduped := make([]MountEntry, 0, len(entries))
	for _, entry := range entries {
		k := key{device: entry.Device, mountPoint: entry.MountPoint}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		deduped = append(deduped, entry)
	}
	return deduped
}

func enumerationError(source string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrEnumeration, source, err)
}

// unescapeOctal decodes the \NNN sequences the kernel uses for whitespace
// and backslashes in mount table fields.
func unescapeOctal(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+3 < len(s) {
			if v, err := strconv.ParseUint(s[i+1:i+4], 8, 8); err == nil {
				b.WriteByte(byte(v))
				i += 3
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
