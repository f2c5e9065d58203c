package multivolume

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/meigma/multivolume/core/internal/naming"
)

// openRead discovers the volume set and builds the boundary table from the
// sizes of the files on disk.
func (s *Stream) openRead() error {
	paths, err := naming.Discover(s.cfg.fsys, s.base, s.cfg.scheme)
	if errors.Is(err, fs.ErrNotExist) || err == nil && len(paths) == 0 {
		return fmt.Errorf("%w: %s", ErrNoVolumes, s.base)
	}
	if err != nil {
		return err
	}
	for i, path := range paths {
		v, err := s.openExisting(i, path, os.O_RDONLY)
		if err != nil {
			return err
		}
		if err := s.addVolume(v); err != nil {
			_ = v.file.Close()
			return err
		}
	}
	return nil
}

// openWrite creates the first volume. The boundary table is seeded with the
// configured capacity; further volumes are added as writes need them.
func (s *Stream) openWrite() error {
	v, err := s.createVolume(0)
	if err != nil {
		return err
	}
	if err := s.addVolume(v); err != nil {
		_ = v.file.Close()
		return err
	}
	if s.mode == ModeWriteTruncate && s.cfg.removeStale {
		return s.removeStale()
	}
	return nil
}

// openAppend reopens an existing set for writing after its last byte.
//
// Every volume but the last is opened read-only. Boundaries come from the
// actual file sizes since the last volume of a previous run may be short;
// the last volume then keeps the configured capacity so it is filled up
// before a new volume is created. Without an existing first volume append
// behaves like a fresh write.
func (s *Stream) openAppend() error {
	first, err := s.cfg.scheme.Path(s.base, 0)
	if err != nil {
		return err
	}
	if _, err := s.cfg.fsys.Stat(first); errors.Is(err, fs.ErrNotExist) {
		return s.openWrite()
	} else if err != nil {
		return fmt.Errorf("stat volume %s: %w", first, err)
	}

	paths, err := naming.Discover(s.cfg.fsys, s.base, s.cfg.scheme)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return s.openWrite()
	}
	for i, path := range paths {
		last := i == len(paths)-1
		flag := os.O_RDONLY
		if last {
			flag = os.O_WRONLY
		}
		v, err := s.openExisting(i, path, flag)
		if err != nil {
			return err
		}
		if last {
			v.writable = true
			v.size = max(v.size, s.cfg.volumeSize)
			if _, err := v.file.Seek(v.end, io.SeekStart); err != nil {
				_ = v.file.Close()
				return fmt.Errorf("seek volume %s: %w", path, err)
			}
			v.pos = v.end
		}
		if err := s.addVolume(v); err != nil {
			_ = v.file.Close()
			return err
		}
	}
	n := len(s.volumes)
	s.pos = s.bounds[n-1] + s.volumes[n-1].end
	return nil
}

// openExisting opens volume i at path and records its size on disk.
func (s *Stream) openExisting(i int, path string, flag int) (*volume, error) {
	f, err := s.cfg.fsys.OpenFile(path, flag, 0)
	if err != nil {
		return nil, fmt.Errorf("open volume %s: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("stat volume %s: %w", path, err)
	}
	return &volume{
		index: i,
		path:  path,
		size:  info.Size(),
		end:   info.Size(),
		file:  f,
	}, nil
}

// removeStale deletes the volumes after the first one left behind by an
// earlier, longer set. It stops at the first index with no file.
func (s *Stream) removeStale() error {
	for i := 1; ; i++ {
		path, err := s.cfg.scheme.Path(s.base, i)
		if err != nil {
			return nil //nolint:nilerr // no further volume can exist past the suffix width
		}
		if err := s.cfg.fsys.Remove(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return fmt.Errorf("remove stale volume %s: %w", path, err)
		}
		s.log.Info("stale volume removed", "path", path)
	}
}
