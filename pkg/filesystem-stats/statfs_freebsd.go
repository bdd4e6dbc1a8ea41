package filesystemstats

import "golang.org/x/sys/unix"

// FreeBSD reports f_bavail and f_ffree as signed values; they go negative
// once the reserved area is in use.
func fromStatfs(st *unix.Statfs_t) SpaceStats {
	return SpaceStats{
		BlockSize:       st.Bsize,
		BlocksTotal:     st.Blocks,
		BlocksFree:      st.Bfree,
		BlocksAvailable: nonNegative(st.Bavail),
		InodesTotal:     st.Files,
		InodesFree:      nonNegative(st.Ffree),
	}
}

func nonNegative(v int64) uint64 {
	if v < 0 {
		return 0
	}
	return uint64(v)
}
