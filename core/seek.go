package multivolume

import (
	"fmt"
	"io"
	"math"
)

// Seek sets the logical position for the next Read or Write and returns it.
//
// io.SeekEnd is relative to the final boundary, which in the write modes is
// the capacity of the volumes created so far rather than the data written.
// Positions past the end are accepted; reading there fails with
// ErrOutOfRange and writing there creates the missing volumes.
// Append streams are not seekable.
func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	if s.closed {
		return 0, ErrClosed
	}
	if s.mode == ModeAppend {
		return 0, ErrNotSeekable
	}

	var origin int64
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		origin = s.pos
	case io.SeekEnd:
		origin = s.Size()
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidWhence, whence)
	}
	if offset > 0 && origin > math.MaxInt64-offset {
		return 0, fmt.Errorf("%w: offset overflow", ErrOutOfRange)
	}
	target := origin + offset
	if target < 0 {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, target)
	}

	s.pos = target
	if i, ok := s.locate(target); ok {
		if err := s.seekVolume(i, target-s.bounds[i]); err != nil {
			return 0, err
		}
	}
	return target, nil
}
