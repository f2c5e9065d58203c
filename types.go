package multivolume

import mvcore "github.com/meigma/multivolume/core"

// --- Re-exports from core ---

// Stream is a multi-volume file opened in one Mode.
type Stream = mvcore.Stream

// Mode selects how a Stream opens its volume set.
type Mode = mvcore.Mode

// Option configures a Stream.
type Option = mvcore.Option

// VolumeInfo describes one volume of a stream.
type VolumeInfo = mvcore.VolumeInfo

// SysInfo is returned by the Sys method of the FileInfo from Stream.Stat.
type SysInfo = mvcore.SysInfo

// Suffix selects the digits used in volume file suffixes.
type Suffix = mvcore.Suffix

// Mode constants.
const (
	ModeRead           = mvcore.ModeRead
	ModeWriteTruncate  = mvcore.ModeWriteTruncate
	ModeWriteExclusive = mvcore.ModeWriteExclusive
	ModeAppend         = mvcore.ModeAppend
)

// Suffix constants.
const (
	SuffixDecimal = mvcore.SuffixDecimal
	SuffixHex     = mvcore.SuffixHex
)

// Defaults re-exported from core.
const (
	DefaultVolumeSize = mvcore.DefaultVolumeSize
	DefaultDigits     = mvcore.DefaultDigits
	DefaultStartIndex = mvcore.DefaultStartIndex
)

// Options re-exported from core.
var (
	WithVolumeSize  = mvcore.WithVolumeSize
	WithDigits      = mvcore.WithDigits
	WithStartIndex  = mvcore.WithStartIndex
	WithSuffix      = mvcore.WithSuffix
	WithHexSuffix   = mvcore.WithHexSuffix
	WithPerm        = mvcore.WithPerm
	WithFileSystem  = mvcore.WithFileSystem
	WithLogger      = mvcore.WithLogger
	WithRemoveStale = mvcore.WithRemoveStale
	ParseMode       = mvcore.ParseMode
	ParseSize       = mvcore.ParseSize
)

// Open opens the volume set named base in the given mode.
// See [mvcore.Open].
func Open(base string, mode Mode, opts ...Option) (*Stream, error) {
	return mvcore.Open(base, mode, opts...)
}

// With opens a stream, passes it to fn and closes it on every return path.
func With(base string, mode Mode, fn func(*Stream) error, opts ...Option) error {
	return mvcore.With(base, mode, fn, opts...)
}
