package multivolume

import (
	"errors"
	"fmt"
	"io"

	mvcore "github.com/meigma/multivolume/core"
)

// Create opens a fresh volume set for writing, replacing existing volumes.
func Create(base string, opts ...Option) (*Stream, error) {
	return mvcore.Open(base, ModeWriteTruncate, opts...)
}

// Append opens a volume set for writing at its end, creating it when absent.
func Append(base string, opts ...Option) (*Stream, error) {
	return mvcore.Open(base, ModeAppend, opts...)
}

// Split copies r into a new volume set named base and returns the number of
// bytes written. Existing volumes are replaced.
func Split(r io.Reader, base string, opts ...Option) (n int64, err error) {
	s, err := Create(base, opts...)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := s.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close %s: %w", base, cerr))
		}
	}()

	n, err = io.Copy(s, r)
	if err != nil {
		return n, fmt.Errorf("split %s: %w", base, err)
	}
	return n, nil
}

// Join copies the whole volume set named base to w and returns the number of
// bytes written.
func Join(base string, w io.Writer, opts ...Option) (n int64, err error) {
	s, err := OpenRead(base, opts...)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := s.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close %s: %w", base, cerr))
		}
	}()

	n, err = s.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("join %s: %w", base, err)
	}
	return n, nil
}

// OpenRead opens an existing volume set for reading.
func OpenRead(base string, opts ...Option) (*Stream, error) {
	return mvcore.Open(base, ModeRead, opts...)
}
