package multivolume

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/meigma/multivolume/core/vfs"
)

// volume is one physical file of the set.
type volume struct {
	index    int
	path     string
	size     int64 // declared size: capacity in write modes, file size in read mode
	end      int64 // bytes known to be occupied in the file
	pos      int64 // current offset of file
	file     vfs.File
	writable bool
}

// Stream is a multi-volume file opened in one Mode.
//
// bounds has one entry per volume plus a final sentinel; bounds[i] is the
// logical offset at which volume i begins and bounds[len(volumes)] is the
// end of all known data (read mode) or capacity (write modes).
type Stream struct {
	base    string
	mode    Mode
	cfg     config
	log     *slog.Logger
	volumes []*volume
	bounds  []int64
	pos     int64
	closed  bool
}

// VolumeInfo describes one volume of a stream.
type VolumeInfo struct {
	Index  int
	Path   string
	Offset int64 // logical offset of the first byte
	Size   int64 // declared size
}

// Open opens the volume set named base in the given mode.
//
// In ModeRead the volumes <base>.<suffix> are discovered on disk. The write
// modes create (or truncate) the first volume; ModeAppend reopens an existing
// set and positions the stream at its end.
func Open(base string, mode Mode, opts ...Option) (*Stream, error) {
	if !mode.valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMode, mode)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.volumeSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVolumeSize, cfg.volumeSize)
	}
	if err := cfg.scheme.Validate(); err != nil {
		return nil, err
	}

	s := &Stream{
		base:   base,
		mode:   mode,
		cfg:    cfg,
		log:    cfg.logger,
		bounds: []int64{0},
	}
	if s.log == nil {
		s.log = slog.New(slog.DiscardHandler)
	}

	var err error
	switch mode {
	case ModeRead:
		err = s.openRead()
	case ModeWriteTruncate, ModeWriteExclusive:
		err = s.openWrite()
	case ModeAppend:
		err = s.openAppend()
	}
	if err != nil {
		_ = s.Close()
		return nil, err
	}

	s.log.Debug("stream opened",
		"base", base,
		"mode", mode.String(),
		"volumes", len(s.volumes),
		"position", s.pos,
	)
	return s, nil
}

// With opens a stream, passes it to fn and closes it on every return path.
// The close error is joined with fn's error.
func With(base string, mode Mode, fn func(*Stream) error, opts ...Option) (err error) {
	s, err := Open(base, mode, opts...)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, s.Close())
	}()
	return fn(s)
}

// Name returns the base name of the volume set.
func (s *Stream) Name() string {
	return s.base
}

// Mode returns the mode the stream was opened in.
func (s *Stream) Mode() Mode {
	return s.mode
}

// Tell returns the current logical position.
func (s *Stream) Tell() int64 {
	return s.pos
}

// Size returns the final boundary: the total data length in read mode, the
// capacity of all volumes created so far in the write modes.
func (s *Stream) Size() int64 {
	return s.bounds[len(s.bounds)-1]
}

// Volumes returns a snapshot of the stream's volumes in index order.
func (s *Stream) Volumes() []VolumeInfo {
	out := make([]VolumeInfo, len(s.volumes))
	for i, v := range s.volumes {
		out[i] = VolumeInfo{
			Index:  v.index,
			Path:   v.path,
			Offset: s.bounds[i],
			Size:   v.size,
		}
	}
	return out
}

// Readable reports whether Read may be called.
func (s *Stream) Readable() bool {
	return !s.closed && s.mode == ModeRead
}

// Writable reports whether Write may be called.
func (s *Stream) Writable() bool {
	return !s.closed && s.mode != ModeRead
}

// Seekable reports whether Seek may be called.
func (s *Stream) Seekable() bool {
	return !s.closed && s.mode != ModeAppend
}

// Closed reports whether Close has been called.
func (s *Stream) Closed() bool {
	return s.closed
}

// Fd returns an invalid descriptor: a stream spans several files and has
// no single one.
func (s *Stream) Fd() uintptr {
	return ^uintptr(0)
}

// IsTerminal reports false; volumes are regular files.
func (s *Stream) IsTerminal() bool {
	return false
}

// Flush commits written volumes to stable storage. It is a no-op on read
// streams and on closed streams.
func (s *Stream) Flush() error {
	if s.closed {
		return nil
	}
	var errs []error
	for _, v := range s.volumes {
		if !v.writable {
			continue
		}
		if err := v.file.Sync(); err != nil {
			errs = append(errs, fmt.Errorf("sync volume %s: %w", v.path, err))
		}
	}
	return errors.Join(errs...)
}

// Close closes every volume. It attempts all volumes even when some fail
// and reports the failures together. Calling Close again is a no-op.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	var errs []error
	for _, v := range s.volumes {
		if err := v.file.Close(); err != nil {
			s.log.Warn("close volume failed", "path", v.path, "error", err)
			errs = append(errs, fmt.Errorf("close volume %s: %w", v.path, err))
		}
	}
	return errors.Join(errs...)
}

func (s *Stream) checkRead() error {
	if s.closed {
		return ErrClosed
	}
	if s.mode != ModeRead {
		return ErrNotReadable
	}
	return nil
}

func (s *Stream) checkWrite() error {
	if s.closed {
		return ErrClosed
	}
	if s.mode == ModeRead {
		return ErrNotWritable
	}
	return nil
}

// Interface compliance.
var (
	_ io.ReadWriteSeeker = (*Stream)(nil)
	_ io.ReaderAt        = (*Stream)(nil)
	_ io.WriterTo        = (*Stream)(nil)
	_ io.Closer          = (*Stream)(nil)
)
