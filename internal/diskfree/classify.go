package diskfree

import (
	"strings"

	mountmanager "github.com/djedi/ddf/pkg/mount-manager"
)

var remoteFsTypes = map[string]struct{}{
	"nfs":        {},
	"nfs4":       {},
	"cifs":       {},
	"smbfs":      {},
	"smb3":       {},
	"sshfs":      {},
	"afs":        {},
	"ncpfs":      {},
	"9p":         {},
	"fuse.sshfs": {},
	"ceph":       {},
	"glusterfs":  {},
}

var dummyFsTypes = map[string]struct{}{
	"autofs":      {},
	"proc":        {},
	"subfs":       {},
	"debugfs":     {},
	"devpts":      {},
	"fusectl":     {},
	"mqueue":      {},
	"rpc_pipefs":  {},
	"sysfs":       {},
	"devfs":       {},
	"kernfs":      {},
	"ignore":      {},
	"none":        {},
	"tmpfs":       {},
	"devtmpfs":    {},
	"cgroup":      {},
	"cgroup2":     {},
	"tracefs":     {},
	"securityfs":  {},
	"pstore":      {},
	"bpf":         {},
	"configfs":    {},
	"nsfs":        {},
	"binfmt_misc": {},
	"hugetlbfs":   {},
	"efivarfs":    {},
}

// isRemote follows the mount source conventions of NFS (host:/export) and
// SMB (//host/share) plus a list of network filesystem types.
func isRemote(entry mountmanager.MountEntry) bool {
	if strings.Contains(entry.Device, ":/") || strings.HasPrefix(entry.Device, "//") {
		return true
	}
	_, ok := remoteFsTypes[entry.FsType]
	return ok
}

func isDummy(fsType string) bool {
	_, ok := dummyFsTypes[fsType]
	return ok
}
