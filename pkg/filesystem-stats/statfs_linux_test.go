package filesystemstats_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/sys/unix"

	"github.com/djedi/ddf/mocks"
	filesystemstats "github.com/djedi/ddf/pkg/filesystem-stats"
)

func TestStatfsReader_StatSpace(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		setup   func(m *mocks.MockFilesystemStatter)
		want    filesystemstats.SpaceStats
		wantErr error
	}{
		{
			name: "converts statfs fields",
			path: "/",
			setup: func(m *mocks.MockFilesystemStatter) {
				m.EXPECT().Statfs("/", gomock.Any()).DoAndReturn(func(_ string, st *unix.Statfs_t) error {
					st.Bsize = 4096
					st.Blocks = 1000
					st.Bfree = 400
					st.Bavail = 350
					st.Files = 64
					st.Ffree = 16
					return nil
				})
			},
			want: filesystemstats.SpaceStats{
				BlockSize:       4096,
				BlocksTotal:     1000,
				BlocksFree:      400,
				BlocksAvailable: 350,
				InodesTotal:     64,
				InodesFree:      16,
			},
		},
		{
			name: "zero counters from pseudo filesystem",
			path: "/proc",
			setup: func(m *mocks.MockFilesystemStatter) {
				m.EXPECT().Statfs("/proc", gomock.Any()).DoAndReturn(func(_ string, st *unix.Statfs_t) error {
					st.Bsize = 4096
					return nil
				})
			},
			want: filesystemstats.SpaceStats{BlockSize: 4096},
		},
		{
			name: "statfs failure",
			path: "/mnt/stale",
			setup: func(m *mocks.MockFilesystemStatter) {
				m.EXPECT().Statfs("/mnt/stale", gomock.Any()).Return(unix.ESTALE)
			},
			wantErr: unix.ESTALE,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			statter := mocks.NewMockFilesystemStatter(ctrl)
			tt.setup(statter)

			got, err := filesystemstats.NewStatfsReader(statter).StatSpace(tt.path)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)

				var statErr *filesystemstats.StatError
				require.True(t, errors.As(err, &statErr))
				assert.Equal(t, tt.path, statErr.Path)
				assert.Equal(t, filesystemstats.SpaceStats{}, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewReader_RootFilesystem(t *testing.T) {
	stats, err := filesystemstats.NewReader().StatSpace("/")
	require.NoError(t, err)
	assert.NotZero(t, stats.BlockSize)
	assert.LessOrEqual(t, stats.UsedBytes(), stats.TotalBytes())
}
