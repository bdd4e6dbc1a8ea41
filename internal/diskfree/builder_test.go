package diskfree

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/djedi/ddf/mocks"
	filesystemstats "github.com/djedi/ddf/pkg/filesystem-stats"
	"github.com/djedi/ddf/pkg/hwinfo"
	mountmanager "github.com/djedi/ddf/pkg/mount-manager"
)

var testMounts = []mountmanager.MountEntry{
	{Device: "/dev/sda2", MountPoint: "/", FsType: "ext4"},
	{Device: "proc", MountPoint: "/proc", FsType: "proc"},
	{Device: "tmpfs", MountPoint: "/run", FsType: "tmpfs"},
	{Device: "/dev/sda1", MountPoint: "/boot", FsType: "vfat"},
	{Device: "/dev/loop3", MountPoint: "/snap/core/1", FsType: "squashfs"},
	{Device: "/dev/sdb1", MountPoint: "/snapshot", FsType: "xfs"},
	{Device: "fileserver:/export", MountPoint: "/mnt/nfs", FsType: "nfs4"},
	{Device: "/dev/sdc1", MountPoint: "/mnt/stale", FsType: "ext4"},
}

var testStats = map[string]filesystemstats.SpaceStats{
	"/":            {BlockSize: 4096, BlocksTotal: 1000, BlocksFree: 400, BlocksAvailable: 350, InodesTotal: 100, InodesFree: 60},
	"/proc":        {BlockSize: 4096},
	"/run":         {BlockSize: 4096, BlocksTotal: 100, BlocksFree: 99, BlocksAvailable: 99},
	"/boot":        {BlockSize: 512, BlocksTotal: 2000, BlocksFree: 1000, BlocksAvailable: 1000},
	"/snap/core/1": {BlockSize: 4096, BlocksTotal: 10, BlocksFree: 0},
	"/snapshot":    {BlockSize: 4096, BlocksTotal: 500, BlocksFree: 50, BlocksAvailable: 50},
	"/mnt/nfs":     {BlockSize: 1024, BlocksTotal: 800, BlocksFree: 200, BlocksAvailable: 200},
}

func newStatReader(ctrl *gomock.Controller, stats map[string]filesystemstats.SpaceStats) *mocks.MockReader {
	reader := mocks.NewMockReader(ctrl)
	reader.EXPECT().StatSpace(gomock.Any()).DoAndReturn(func(path string) (filesystemstats.SpaceStats, error) {
		s, ok := stats[path]
		if !ok {
			return filesystemstats.SpaceStats{}, &filesystemstats.StatError{Path: path, Err: os.ErrPermission}
		}
		return s, nil
	}).AnyTimes()
	return reader
}

// newPathFS resolves paths to themselves, or through links; paths listed
// in missing do not exist.
func newPathFS(ctrl *gomock.Controller, links map[string]string, missing ...string) *mocks.MockFileSystem {
	fsys := mocks.NewMockFileSystem(ctrl)
	fsys.EXPECT().Abs(gomock.Any()).DoAndReturn(func(path string) (string, error) {
		if len(path) > 0 && path[0] == '/' {
			return path, nil
		}
		return "/home/user/" + path, nil
	}).AnyTimes()
	fsys.EXPECT().EvalSymlinks(gomock.Any()).DoAndReturn(func(path string) (string, error) {
		for _, m := range missing {
			if m == path {
				return "", fmt.Errorf("lstat %s: %w", path, os.ErrNotExist)
			}
		}
		if target, ok := links[path]; ok {
			return target, nil
		}
		return path, nil
	}).AnyTimes()
	return fsys
}

func mountPoints(records []Filesystem) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.MountPoint)
	}
	return out
}

type wantPathErr struct {
	path string
	is   error
}

func TestBuildFilesystemList(t *testing.T) {
	tests := []struct {
		name      string
		requested []string
		rules     []ExclusionRule
		opts      Options
		want      []string
		wantErrs  []wantPathErr
	}{
		{
			name: "full listing keeps order and drops unreadable mounts",
			want: []string{"/", "/proc", "/run", "/boot", "/snap/core/1", "/snapshot", "/mnt/nfs"},
		},
		{
			name:  "fstype rule",
			rules: []ExclusionRule{ExcludeFsType("tmpfs")},
			want:  []string{"/", "/proc", "/boot", "/snap/core/1", "/snapshot", "/mnt/nfs"},
		},
		{
			name:  "mount point prefix rule",
			rules: []ExclusionRule{ExcludeMountPointPrefix("/snap/")},
			want:  []string{"/", "/proc", "/run", "/boot", "/snapshot", "/mnt/nfs"},
		},
		{
			name:  "rules are or'ed",
			rules: []ExclusionRule{ExcludeFsType("proc"), ExcludeFsType("tmpfs"), ExcludeMountPointPrefix("/snap")},
			want:  []string{"/", "/boot", "/mnt/nfs"},
		},
		{
			name: "local only",
			opts: Options{LocalOnly: true},
			want: []string{"/", "/proc", "/run", "/boot", "/snap/core/1", "/snapshot"},
		},
		{
			name:      "requested path wins over exclusion",
			requested: []string{"/"},
			rules:     []ExclusionRule{ExcludeMountPointPrefix("/")},
			want:      []string{"/"},
		},
		{
			name:      "requested remote path ignores local only",
			requested: []string{"/mnt/nfs/docs"},
			opts:      Options{LocalOnly: true},
			want:      []string{"/mnt/nfs"},
		},
		{
			name:      "most specific mount point",
			requested: []string{"/boot/efi"},
			want:      []string{"/boot"},
		},
		{
			name:      "output follows enumeration order and lists each filesystem once",
			requested: []string{"/boot", "/etc/passwd", "/", "/boot/grub"},
			want:      []string{"/", "/boot"},
		},
		{
			name:      "device name",
			requested: []string{"/dev/sda1"},
			want:      []string{"/boot"},
		},
		{
			name:      "relative path",
			requested: []string{"notes.txt"},
			want:      []string{"/"},
		},
		{
			name:      "symlinked device",
			requested: []string{"/dev/disk/by-label/boot"},
			want:      []string{"/boot"},
		},
		{
			name:      "missing path does not stop the others",
			requested: []string{"/nope", "/snapshot/a"},
			want:      []string{"/snapshot"},
			wantErrs:  []wantPathErr{{"/nope", os.ErrNotExist}},
		},
		{
			name:      "path on an unreadable mount is not reported as the parent filesystem",
			requested: []string{"/mnt/stale/data", "/also/missing"},
			want:      []string{},
			wantErrs:  []wantPathErr{{"/mnt/stale/data", os.ErrPermission}, {"/also/missing", os.ErrNotExist}},
		},
		{
			name:      "unreadable mount point itself",
			requested: []string{"/mnt/stale", "/boot"},
			want:      []string{"/boot"},
			wantErrs:  []wantPathErr{{"/mnt/stale", os.ErrPermission}},
		},
		{
			name:      "device of an unreadable mount",
			requested: []string{"/dev/sdc1"},
			want:      []string{},
			wantErrs:  []wantPathErr{{"/dev/sdc1", os.ErrPermission}},
		},
		{
			name:      "bare name is a path even when a device has that name",
			requested: []string{"tmpfs"},
			want:      []string{"/"},
		},
		{
			name:      "remote device name",
			requested: []string{"fileserver:/export"},
			want:      []string{"/mnt/nfs"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := newStatReader(ctrl, testStats)
			fsys := newPathFS(ctrl, map[string]string{"/dev/disk/by-label/boot": "/dev/sda1"}, "/nope", "/also/missing")

			got, err := BuildFilesystemList(context.Background(), reader, fsys, testMounts, tt.requested, tt.rules, tt.opts)
			assert.Equal(t, tt.want, mountPoints(got))

			if len(tt.wantErrs) == 0 {
				require.NoError(t, err)
				return
			}
			var merr *multierror.Error
			require.True(t, errors.As(err, &merr))
			require.Len(t, merr.Errors, len(tt.wantErrs))
			for i, want := range tt.wantErrs {
				var notFound *PathNotFoundError
				require.True(t, errors.As(merr.Errors[i], &notFound))
				assert.Equal(t, want.path, notFound.Path)
				assert.ErrorIs(t, notFound, want.is)
			}
		})
	}
}

func TestBuildFilesystemList_NoMatchingMount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mounts := []mountmanager.MountEntry{{Device: "/dev/sda1", MountPoint: "/boot", FsType: "vfat"}}
	reader := newStatReader(ctrl, testStats)
	fsys := newPathFS(ctrl, nil)

	got, err := BuildFilesystemList(context.Background(), reader, fsys, mounts, []string{"/etc"}, nil, Options{})
	assert.Empty(t, got)
	assert.NotNil(t, got)

	var notFound *PathNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "/etc", notFound.Path)
	assert.ErrorIs(t, err, errNoMatchingMount)
}

func TestBuildFilesystemList_StatErrorOnRequestedPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mounts := []mountmanager.MountEntry{
		{Device: "/dev/sda2", MountPoint: "/", FsType: "ext4"},
		{Device: "/dev/sdc1", MountPoint: "/mnt/stale", FsType: "ext4"},
	}
	reader := newStatReader(ctrl, testStats)

	for _, workers := range []int{1, 4} {
		got, err := BuildFilesystemList(context.Background(), reader, newPathFS(ctrl, nil), mounts, []string{"/mnt/stale/data"}, nil, Options{Workers: workers})
		assert.Empty(t, got, "workers=%d", workers)

		var notFound *PathNotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, "/mnt/stale/data", notFound.Path)

		var statErr *filesystemstats.StatError
		require.True(t, errors.As(err, &statErr))
		assert.Equal(t, "/mnt/stale", statErr.Path)
	}
}

func TestBuildFilesystemList_ZeroCapacity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := newStatReader(ctrl, testStats)
	got, err := BuildFilesystemList(context.Background(), reader, newPathFS(ctrl, nil), testMounts[1:2], nil, nil, Options{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "/proc", got[0].MountPoint)
	assert.Zero(t, got[0].TotalBytes)
	assert.Zero(t, got[0].UsageRatio)
}

func TestBuildFilesystemList_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	got, err := BuildFilesystemList(context.Background(), mocks.NewMockReader(ctrl), mocks.NewMockFileSystem(ctrl), nil, nil, nil, Options{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBuildFilesystemList_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := newStatReader(ctrl, testStats)
	fsys := newPathFS(ctrl, nil)
	rules := []ExclusionRule{ExcludeFsType("tmpfs")}

	first, err := BuildFilesystemList(context.Background(), reader, fsys, testMounts, nil, rules, Options{})
	require.NoError(t, err)
	second, err := BuildFilesystemList(context.Background(), reader, fsys, testMounts, nil, rules, Options{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuildFilesystemList_Parallel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := newStatReader(ctrl, testStats)
	fsys := newPathFS(ctrl, nil)

	sequential, err := BuildFilesystemList(context.Background(), reader, fsys, testMounts, nil, nil, Options{})
	require.NoError(t, err)

	for _, workers := range []int{2, 4, 16} {
		parallel, err := BuildFilesystemList(context.Background(), reader, fsys, testMounts, nil, nil, Options{Workers: workers})
		require.NoError(t, err)
		assert.Equal(t, sequential, parallel, "workers=%d", workers)
	}
}

func TestBuildFilesystemList_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		got, err := BuildFilesystemList(ctx, mocks.NewMockReader(ctrl), mocks.NewMockFileSystem(ctrl), testMounts, nil, nil, Options{Workers: workers})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, got)
	}
}

func TestBuildFilesystemList_Annotator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	devices := mocks.NewMockDeviceUtils(ctrl)
	devices.EXPECT().BlockDeviceName("/dev/sda2").Return("sda2")
	devices.EXPECT().BlockDeviceName("/dev/sda1").Return("sda1")
	devices.EXPECT().BlockDeviceName(gomock.Any()).Return("").AnyTimes()

	disk := &hwinfo.DriveInfo{Disk: "sda", DriveType: "SSD"}
	annotator := NewDriveAnnotator(devices, hwinfo.DriveIndex{"sda": disk, "sda1": disk, "sda2": disk})

	got, err := BuildFilesystemList(context.Background(), newStatReader(ctrl, testStats), newPathFS(ctrl, nil), testMounts[:4], nil, nil, Options{Annotator: annotator})
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Same(t, disk, got[0].Drive)
	assert.Nil(t, got[1].Drive)
	assert.Nil(t, got[2].Drive)
	assert.Same(t, disk, got[3].Drive)
}

func TestCollect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lister := mocks.NewMockLister(ctrl)
	lister.EXPECT().List(gomock.Any()).Return(testMounts, nil)

	got, err := Collect(context.Background(), lister, newStatReader(ctrl, testStats), newPathFS(ctrl, nil), nil, []ExclusionRule{ExcludeFsType("proc")}, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"/", "/run", "/boot", "/snap/core/1", "/snapshot", "/mnt/nfs"}, mountPoints(got))
}

func TestCollect_EnumerationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	listErr := fmt.Errorf("%w: /proc/self/mountinfo: %w", mountmanager.ErrEnumeration, os.ErrPermission)
	lister := mocks.NewMockLister(ctrl)
	lister.EXPECT().List(gomock.Any()).Return(nil, listErr)

	got, err := Collect(context.Background(), lister, mocks.NewMockReader(ctrl), mocks.NewMockFileSystem(ctrl), nil, nil, Options{})
	assert.ErrorIs(t, err, mountmanager.ErrEnumeration)
	assert.Nil(t, got)
}
