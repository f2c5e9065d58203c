package multivolume

import (
	"fmt"
	"io"
)

// Read reads up to len(p) bytes from the current volume.
//
// A read never spans two volumes: near the end of a volume it returns fewer
// bytes than requested and the next call continues in the following volume.
// Use Fill or io.ReadFull to fill a buffer across volume boundaries.
// Read returns io.EOF at the end of the stream.
func (s *Stream) Read(p []byte) (int, error) {
	if err := s.checkRead(); err != nil {
		return 0, err
	}
	if len(p) == 0 {
		return 0, nil
	}
	i, _, err := s.current()
	if err != nil {
		return 0, err
	}
	if s.pos == s.Size() {
		return 0, io.EOF
	}

	v := s.volumes[i]
	if rest := s.bounds[i+1] - s.pos; int64(len(p)) > rest {
		p = p[:rest]
	}
	n, err := v.file.Read(p)
	v.pos += int64(n)
	s.pos += int64(n)
	switch {
	case n > 0:
		return n, nil
	case err == nil || err == io.EOF:
		// The file is shorter than when the stream was opened.
		return 0, fmt.Errorf("read volume %s: %w", v.path, io.ErrUnexpectedEOF)
	default:
		return 0, fmt.Errorf("read volume %s: %w", v.path, err)
	}
}

// Fill reads until p is full or the stream ends, crossing as many volume
// boundaries as needed. It returns the number of bytes read; n < len(p)
// only at the end of the stream. io.EOF is returned only when nothing was
// read.
func (s *Stream) Fill(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		m, err := s.Read(p[n:])
		n += m
		if err == io.EOF {
			if n == 0 {
				return 0, io.EOF
			}
			return n, nil
		}
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// ReadAt reads len(p) bytes at logical offset off without moving the
// stream position. It implements io.ReaderAt.
func (s *Stream) ReadAt(p []byte, off int64) (int, error) {
	if err := s.checkRead(); err != nil {
		return 0, err
	}
	if off < 0 {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, off)
	}
	n := 0
	for n < len(p) {
		i, ok := s.locate(off)
		if !ok {
			return n, io.EOF
		}
		v := s.volumes[i]
		want := int64(len(p) - n)
		if rest := s.bounds[i+1] - off; want > rest {
			want = rest
		}
		m, err := v.file.ReadAt(p[n:n+int(want)], off-s.bounds[i])
		n += m
		off += int64(m)
		if int64(m) < want {
			if err == nil || err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return n, fmt.Errorf("read volume %s: %w", v.path, err)
		}
	}
	return n, nil
}

// WriteTo writes the rest of the stream to w. It implements io.WriterTo.
func (s *Stream) WriteTo(w io.Writer) (int64, error) {
	if err := s.checkRead(); err != nil {
		return 0, err
	}
	buf := make([]byte, 32<<10)
	var total int64
	for {
		n, err := s.Read(buf)
		if n > 0 {
			m, werr := w.Write(buf[:n])
			total += int64(m)
			if werr != nil {
				return total, werr
			}
			if m < n {
				return total, io.ErrShortWrite
			}
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}
