package diskfree

import (
	devicemanager "github.com/djedi/ddf/pkg/device-manager"
	"github.com/djedi/ddf/pkg/hwinfo"
)

// Annotator attaches hardware details to the filesystem mounted from device.
type Annotator interface {
	Annotate(device string) *hwinfo.DriveInfo
}

// DriveAnnotator resolves mount sources to kernel block device names and
// looks them up in a drive inventory.
type DriveAnnotator struct {
	devices devicemanager.DeviceUtils
	drives  hwinfo.DriveIndex
}

var _ Annotator = &DriveAnnotator{}

func NewDriveAnnotator(devices devicemanager.DeviceUtils, drives hwinfo.DriveIndex) *DriveAnnotator {
	return &DriveAnnotator{devices: devices, drives: drives}
}

func (a *DriveAnnotator) Annotate(device string) *hwinfo.DriveInfo {
	return a.drives.Lookup(a.devices.BlockDeviceName(device))
}
