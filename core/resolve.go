package multivolume

import (
	"fmt"
	"io"
	"sort"

	"github.com/meigma/multivolume/core/internal/sizing"
)

// addVolume appends v and extends the boundary table by its declared size.
func (s *Stream) addVolume(v *volume) error {
	end, err := sizing.Add(s.Size(), v.size)
	if err != nil {
		return fmt.Errorf("add volume %s: %w", v.path, err)
	}
	s.volumes = append(s.volumes, v)
	s.bounds = append(s.bounds, end)
	return nil
}

// locate returns the volume i with bounds[i] <= off < bounds[i+1].
// Empty volumes never contain an offset and are skipped.
func (s *Stream) locate(off int64) (int, bool) {
	n := len(s.volumes)
	if off < 0 || off >= s.bounds[n] {
		return 0, false
	}
	i := sort.Search(n, func(i int) bool { return s.bounds[i+1] > off })
	return i, i < n
}

// current resolves the logical position to a volume and positions that
// volume's file at the matching offset.
//
// At the end of a read stream the last volume is returned so a read there
// reports EOF. ok is false when a write stream's position lies at or past
// its final boundary; the write path grows the set in that case.
func (s *Stream) current() (i int, ok bool, err error) {
	if s.pos < 0 {
		return 0, false, fmt.Errorf("%w: %d", ErrOutOfRange, s.pos)
	}
	i, ok = s.locate(s.pos)
	if !ok {
		if s.mode != ModeRead {
			return 0, false, nil
		}
		if s.pos > s.Size() {
			return 0, false, fmt.Errorf("%w: %d past end %d", ErrOutOfRange, s.pos, s.Size())
		}
		i = len(s.volumes) - 1
	}
	if err := s.seekVolume(i, s.pos-s.bounds[i]); err != nil {
		return 0, false, err
	}
	return i, true, nil
}

// seekVolume moves volume i's file to off unless it is already there.
func (s *Stream) seekVolume(i int, off int64) error {
	v := s.volumes[i]
	if v.pos == off {
		return nil
	}
	if _, err := v.file.Seek(off, io.SeekStart); err != nil {
		return fmt.Errorf("seek volume %s: %w", v.path, err)
	}
	v.pos = off
	return nil
}
