package filesystemstats

import "golang.org/x/sys/unix"

//nolint:unconvert // field widths differ between architectures
func fromStatfs(st *unix.Statfs_t) SpaceStats {
	return SpaceStats{
		BlockSize:       uint64(st.Bsize),
		BlocksTotal:     uint64(st.Blocks),
		BlocksFree:      uint64(st.Bfree),
		BlocksAvailable: uint64(st.Bavail),
		InodesTotal:     uint64(st.Files),
		InodesFree:      uint64(st.Ffree),
	}
}
