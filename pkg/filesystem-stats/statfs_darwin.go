package filesystemstats

import "golang.org/x/sys/unix"

func fromStatfs(st *unix.Statfs_t) SpaceStats {
	return SpaceStats{
		BlockSize:       uint64(st.Bsize),
		BlocksTotal:     st.Blocks,
		BlocksFree:      st.Bfree,
		BlocksAvailable: st.Bavail,
		InodesTotal:     st.Files,
		InodesFree:      st.Ffree,
	}
}
