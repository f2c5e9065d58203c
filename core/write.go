package multivolume

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/meigma/multivolume/core/internal/sizing"
)

// Write writes all of p at the current position, creating new volumes
// whenever the current one reaches its capacity. A single call may span
// any number of volumes.
//
// If Write fails the stream is left in an undefined state and should be
// closed.
func (s *Stream) Write(p []byte) (int, error) {
	if err := s.checkWrite(); err != nil {
		return 0, err
	}
	written := 0
	for written < len(p) {
		i, ok, err := s.current()
		for err == nil && !ok {
			if err = s.grow(); err == nil {
				i, ok, err = s.current()
			}
		}
		if err != nil {
			return written, err
		}

		v := s.volumes[i]
		chunk := p[written:]
		if room := v.size - v.pos; int64(len(chunk)) > room {
			chunk = chunk[:room]
		}
		n, err := v.file.Write(chunk)
		v.pos += int64(n)
		v.end = max(v.end, v.pos)
		s.pos += int64(n)
		written += n
		if err != nil {
			return written, fmt.Errorf("write volume %s: %w", v.path, err)
		}
		if n < len(chunk) {
			return written, fmt.Errorf("write volume %s: %w", v.path, io.ErrShortWrite)
		}
	}
	return written, nil
}

// grow creates the next volume. The current last volume is first extended
// to its full capacity so that every volume but the last occupies exactly
// its declared size, even when the position was moved past unwritten space.
func (s *Stream) grow() error {
	last := s.volumes[len(s.volumes)-1]
	if last.end < last.size {
		if err := last.file.Truncate(last.size); err != nil {
			return fmt.Errorf("extend volume %s: %w", last.path, err)
		}
		last.end = last.size
	}
	v, err := s.createVolume(len(s.volumes))
	if err != nil {
		return err
	}
	if err := s.addVolume(v); err != nil {
		_ = v.file.Close()
		return err
	}
	return nil
}

// createVolume opens a new, empty volume file for index i with the
// configured capacity.
func (s *Stream) createVolume(i int) (*volume, error) {
	path, err := s.cfg.scheme.Path(s.base, i)
	if err != nil {
		return nil, fmt.Errorf("create volume %d of %s: %w", i, s.base, err)
	}
	flag := os.O_WRONLY | os.O_CREATE
	if s.mode == ModeWriteExclusive {
		flag |= os.O_EXCL
	} else {
		flag |= os.O_TRUNC
	}
	f, err := s.cfg.fsys.OpenFile(path, flag, s.cfg.perm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("%w: %s", ErrAlreadyExists, path)
		}
		return nil, fmt.Errorf("create volume %s: %w", path, err)
	}
	s.log.Debug("volume created",
		"index", i,
		"path", path,
		"capacity", sizing.Format(s.cfg.volumeSize),
	)
	return &volume{
		index:    i,
		path:     path,
		size:     s.cfg.volumeSize,
		file:     f,
		writable: true,
	}, nil
}
