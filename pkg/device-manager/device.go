/*
Copyright 2018 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at
    http://www.apache.org/licenses/LICENSE-2.0
Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package devicemanager

import (
	"fmt"
	"path"
	"strings"

	klog "k8s.io/klog/v2"

	filesystem "github.com/djedi/ddf/pkg/filesystem"
)

const devPath = "/dev/"

// DeviceUtils are a collection of methods that act on the block devices
// backing mounted filesystems
type DeviceUtils interface {
	// BlockDeviceName returns the kernel name ("sda1", "nvme0n1p2", "dm-0")
	// of the block device behind a mount source, or an empty string when the
	// source is not a device node (tmpfs, NFS exports, overlay...).
	BlockDeviceName(source string) string
}

type deviceUtils struct {
	fs filesystem.FileSystem
}

var _ DeviceUtils = &deviceUtils{}

func NewDeviceUtils(fs filesystem.FileSystem) *deviceUtils {
	return &deviceUtils{fs: fs}
}

func (m *deviceUtils) BlockDeviceName(source string) string {
	if !strings.HasPrefix(source, devPath) {
		return ""
	}

	exists, err := pathExists(source, m.fs)
	if err != nil {
		klog.V(5).Infof("BlockDeviceName: stat %q: %v", source, err)
		return ""
	}
	if !exists {
		// Stale mount table entry, or a container without the host /dev.
		return ""
	}

	// /dev/mapper/*, /dev/disk/by-*/* and /dev/root are symlinks.
	drive, err := m.fs.EvalSymlinks(source)
	if err != nil {
		klog.V(5).Infof("BlockDeviceName: %v", fmt.Errorf("eval symlinks %q: %w", source, err))
		return path.Base(source)
	}
	klog.V(5).Infof("BlockDeviceName: source=%q resolved=%q", source, drive)

	return path.Base(drive)
}

// PathExists returns true if the specified path exists.
func pathExists(devicePath string, fs filesystem.FileSystem) (bool, error) {
	_, err := fs.Stat(devicePath)
	if err == nil {
		return true, nil
	}
	if fs.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
