package multivolume

import mvcore "github.com/meigma/multivolume/core"

// Errors re-exported from core.
var (
	// ErrUnsupportedMode is returned for an unrecognized mode.
	ErrUnsupportedMode = mvcore.ErrUnsupportedMode

	// ErrAlreadyExists is returned by exclusive writes when a volume exists.
	ErrAlreadyExists = mvcore.ErrAlreadyExists

	// ErrNoVolumes is returned when reading a set that has no volumes.
	ErrNoVolumes = mvcore.ErrNoVolumes

	// ErrVolumeGap is returned when a volume is missing from an existing set.
	ErrVolumeGap = mvcore.ErrVolumeGap

	// ErrNotSeekable is returned by Seek on append streams.
	ErrNotSeekable = mvcore.ErrNotSeekable

	// ErrOutOfRange is returned for negative positions and reads past the end.
	ErrOutOfRange = mvcore.ErrOutOfRange

	// ErrInvalidWhence is returned by Seek for an unknown origin.
	ErrInvalidWhence = mvcore.ErrInvalidWhence

	// ErrNamingOverflow is returned when a volume index exceeds the suffix width.
	ErrNamingOverflow = mvcore.ErrNamingOverflow

	// ErrInvalidNaming is returned for an unusable naming configuration.
	ErrInvalidNaming = mvcore.ErrInvalidNaming

	// ErrInvalidVolumeSize is returned for a non-positive volume capacity.
	ErrInvalidVolumeSize = mvcore.ErrInvalidVolumeSize

	// ErrUnimplemented is returned by operations the stream does not support.
	ErrUnimplemented = mvcore.ErrUnimplemented

	// ErrNotReadable is returned when reading a stream opened for writing.
	ErrNotReadable = mvcore.ErrNotReadable

	// ErrNotWritable is returned when writing a stream opened for reading.
	ErrNotWritable = mvcore.ErrNotWritable

	// ErrClosed is returned by operations on a closed stream.
	ErrClosed = mvcore.ErrClosed
)
