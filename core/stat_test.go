package multivolume

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/multivolume/core/internal/platform"
	"github.com/meigma/multivolume/core/testutil"
)

func TestStat(t *testing.T) {
	t.Parallel()

	base := testutil.WriteVolumes(t, t.TempDir(), "archive.7z",
		testutil.Payload(10, 1), testutil.Payload(10, 2), testutil.Payload(4, 3))
	mtime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(testutil.VolumePath(base, 0), mtime, mtime))

	s, err := Open(base, ModeRead)
	require.NoError(t, err)
	defer s.Close()

	info, err := s.Stat()
	require.NoError(t, err)
	assert.Equal(t, "archive.7z", info.Name())
	assert.Equal(t, int64(24), info.Size())
	assert.False(t, info.IsDir())
	assert.True(t, info.ModTime().Equal(mtime))

	first, err := os.Stat(testutil.VolumePath(base, 0))
	require.NoError(t, err)
	assert.Equal(t, first.Mode(), info.Mode())

	sys, ok := info.Sys().(*SysInfo)
	require.True(t, ok)
	assert.Equal(t, platform.DeviceID(first), sys.Device)
	assert.Zero(t, sys.Inode)
	assert.Equal(t, 3, sys.Volumes)
}

func TestStat_WriteModeReportsWrittenBytes(t *testing.T) {
	t.Parallel()

	base := filepath.Join(t.TempDir(), "w")
	s, err := Open(base, ModeWriteTruncate, WithVolumeSize(10))
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Write(testutil.Payload(13, 4))
	require.NoError(t, err)

	info, err := s.Stat()
	require.NoError(t, err)
	assert.Equal(t, int64(13), info.Size())
	assert.Equal(t, int64(20), s.Size())
}
