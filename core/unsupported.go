package multivolume

import "fmt"

// ReadLine is not supported: a stream carries binary volume data.
func (s *Stream) ReadLine() ([]byte, error) {
	return nil, fmt.Errorf("%w: ReadLine", ErrUnimplemented)
}

// ReadLines is not supported.
func (s *Stream) ReadLines() ([][]byte, error) {
	return nil, fmt.Errorf("%w: ReadLines", ErrUnimplemented)
}

// ReadAll is not supported; use io.Copy or WriteTo to consume the stream.
func (s *Stream) ReadAll() ([]byte, error) {
	return nil, fmt.Errorf("%w: ReadAll", ErrUnimplemented)
}

// WriteLines is not supported.
func (s *Stream) WriteLines(lines [][]byte) error {
	return fmt.Errorf("%w: WriteLines", ErrUnimplemented)
}

// Truncate is not supported.
func (s *Stream) Truncate(size int64) error {
	return fmt.Errorf("%w: Truncate", ErrUnimplemented)
}
