package multivolume

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/meigma/multivolume/core/internal/platform"
)

// SysInfo is returned by the Sys method of the FileInfo from Stream.Stat.
type SysInfo struct {
	// Device identifies the device holding the first volume.
	Device uint64

	// Inode is always zero: the stream spans several files.
	Inode uint64

	// Volumes is the number of volumes in the stream.
	Volumes int
}

// Stat describes the stream as a single file: its size is the sum of all
// volume sizes on disk, its mode and modification time are those of the
// first volume.
func (s *Stream) Stat() (fs.FileInfo, error) {
	if s.closed {
		return nil, ErrClosed
	}
	info := &streamInfo{
		name: filepath.Base(s.base),
		sys:  &SysInfo{Volumes: len(s.volumes)},
	}
	for i, v := range s.volumes {
		vi, err := v.file.Stat()
		if err != nil {
			return nil, fmt.Errorf("stat volume %s: %w", v.path, err)
		}
		info.size += vi.Size()
		if i == 0 {
			info.mode = vi.Mode()
			info.modTime = vi.ModTime()
			info.sys.Device = platform.DeviceID(vi)
		}
	}
	return info, nil
}

type streamInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	sys     *SysInfo
}

func (i *streamInfo) Name() string       { return i.name }
func (i *streamInfo) Size() int64        { return i.size }
func (i *streamInfo) Mode() fs.FileMode  { return i.mode }
func (i *streamInfo) ModTime() time.Time { return i.modTime }
func (i *streamInfo) IsDir() bool        { return false }
func (i *streamInfo) Sys() any           { return i.sys }

var _ fs.FileInfo = (*streamInfo)(nil)
