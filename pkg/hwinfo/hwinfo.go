package hwinfo

import (
	"fmt"

	"github.com/jaypipes/ghw"
)

type HardwareInfo interface {
	Block() (*ghw.BlockInfo, error)
}

type hwInfo struct{}

func (h *hwInfo) Block() (*ghw.BlockInfo, error) {
	return ghw.Block()
}

func NewHardwareInfo() HardwareInfo {
	return &hwInfo{}
}

// DriveInfo describes the physical drive a block device belongs to.
type DriveInfo struct {
	Disk       string `json:"disk"`
	DriveType  string `json:"driveType"`
	Controller string `json:"controller,omitempty"`
	Model      string `json:"model,omitempty"`
	Removable  bool   `json:"removable"`
}

// DriveIndex maps kernel block device names, disks and their partitions
// alike, to the drive they live on.
type DriveIndex map[string]*DriveInfo

// NewDriveIndex builds a DriveIndex from the block inventory of hw.
func NewDriveIndex(hw HardwareInfo) (DriveIndex, error) {
	block, err := hw.Block()
	if err != nil {
		return nil, fmt.Errorf("failed to read block device inventory: %w", err)
	}

	index := DriveIndex{}
	if block == nil {
		return index, nil
	}
	for _, disk := range block.Disks {
		if disk == nil {
			continue
		}
		info := &DriveInfo{
			Disk:       disk.Name,
			DriveType:  disk.DriveType.String(),
			Controller: disk.StorageController.String(),
			Model:      disk.Model,
			Removable:  disk.IsRemovable,
		}
		index[disk.Name] = info
		for _, part := range disk.Partitions {
			if part != nil {
				index[part.Name] = info
			}
		}
	}
	return index, nil
}

// Lookup returns the drive behind the named block device, or nil.
func (d DriveIndex) Lookup(name string) *DriveInfo {
	if name == "" {
		return nil
	}
	return d[name]
}
