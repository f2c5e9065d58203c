package multivolume

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/meigma/multivolume/core/internal/naming"
)

// Sentinel errors re-exported from internal/naming.
var (
	// ErrNamingOverflow is returned when the next volume index cannot be
	// represented with the configured suffix width.
	ErrNamingOverflow = naming.ErrOverflow

	// ErrVolumeGap is returned when a volume is missing from an existing set.
	ErrVolumeGap = naming.ErrGap

	// ErrInvalidNaming is returned for an unusable naming configuration.
	ErrInvalidNaming = naming.ErrInvalid
)

var (
	// ErrUnsupportedMode is returned for an unrecognized mode.
	ErrUnsupportedMode = errors.New("multivolume: unsupported mode")

	// ErrAlreadyExists is returned by exclusive writes when a volume exists.
	ErrAlreadyExists = fmt.Errorf("multivolume: volume already exists: %w", fs.ErrExist)

	// ErrNoVolumes is returned when reading a set that has no volumes.
	ErrNoVolumes = fmt.Errorf("multivolume: no volumes found: %w", fs.ErrNotExist)

	// ErrNotSeekable is returned by Seek on append streams.
	ErrNotSeekable = errors.New("multivolume: stream is not seekable")

	// ErrOutOfRange is returned for negative positions and for reads past
	// the end of the stream.
	ErrOutOfRange = errors.New("multivolume: position out of range")

	// ErrInvalidWhence is returned by Seek for an unknown origin.
	ErrInvalidWhence = errors.New("multivolume: invalid whence")

	// ErrUnimplemented is returned by operations the stream does not support.
	ErrUnimplemented = errors.New("multivolume: not supported")

	// ErrNotReadable is returned when reading a stream opened for writing.
	ErrNotReadable = errors.New("multivolume: stream not opened for reading")

	// ErrNotWritable is returned when writing a stream opened for reading.
	ErrNotWritable = errors.New("multivolume: stream not opened for writing")

	// ErrInvalidVolumeSize is returned for a non-positive volume capacity.
	ErrInvalidVolumeSize = errors.New("multivolume: volume size must be positive")

	// ErrClosed is returned by operations on a closed stream.
	ErrClosed = fs.ErrClosed
)
