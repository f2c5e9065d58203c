package multivolume

import (
	"io/fs"
	"log/slog"

	"github.com/meigma/multivolume/core/internal/naming"
	"github.com/meigma/multivolume/core/internal/sizing"
	"github.com/meigma/multivolume/core/vfs"
)

// DefaultVolumeSize is the volume capacity used when WithVolumeSize is not set (10 MiB).
const DefaultVolumeSize = 10 << 20

// Default naming scheme: four decimal digits starting at 1 (".0001").
const (
	DefaultDigits     = 4
	DefaultStartIndex = 1
)

const defaultPerm fs.FileMode = 0o644

// Suffix selects the digits used in volume file suffixes.
type Suffix = naming.Alphabet

// Suffix constants.
const (
	SuffixDecimal = naming.Decimal
	SuffixHex     = naming.Hex
)

// Option configures a Stream.
type Option func(*config)

type config struct {
	volumeSize  int64
	scheme      naming.Scheme
	perm        fs.FileMode
	fsys        vfs.FileSystem
	logger      *slog.Logger
	removeStale bool
}

func defaultConfig() config {
	return config{
		volumeSize: DefaultVolumeSize,
		scheme: naming.Scheme{
			Digits:   DefaultDigits,
			Start:    DefaultStartIndex,
			Alphabet: naming.Decimal,
		},
		perm: defaultPerm,
		fsys: vfs.Local{},
	}
}

// WithVolumeSize sets the capacity of each volume in write modes.
// Read mode ignores it.
func WithVolumeSize(n int64) Option {
	return func(c *config) {
		c.volumeSize = n
	}
}

// WithDigits sets the width of the volume suffix (default 4).
func WithDigits(n int) Option {
	return func(c *config) {
		c.scheme.Digits = n
	}
}

// WithStartIndex sets the suffix value of the first volume (default 1).
func WithStartIndex(n int) Option {
	return func(c *config) {
		c.scheme.Start = n
	}
}

// WithSuffix selects decimal or hexadecimal suffixes.
func WithSuffix(s Suffix) Option {
	return func(c *config) {
		c.scheme.Alphabet = s
	}
}

// WithHexSuffix is shorthand for WithSuffix(SuffixHex).
func WithHexSuffix() Option {
	return WithSuffix(SuffixHex)
}

// WithPerm sets the permission bits of created volumes (default 0644).
func WithPerm(mode fs.FileMode) Option {
	return func(c *config) {
		c.perm = mode
	}
}

// WithFileSystem replaces the file system volumes are opened on.
// Nil restores the local file system.
func WithFileSystem(fsys vfs.FileSystem) Option {
	return func(c *config) {
		if fsys == nil {
			fsys = vfs.Local{}
		}
		c.fsys = fsys
	}
}

// WithLogger sets a logger for the stream.
// If nil, a discard logger is used (default behavior).
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithRemoveStale controls whether ModeWriteTruncate deletes volumes of a
// previous, longer set that follow the first one.
//
// By default they are left on disk untouched. A later read of the base
// name would then see the new first volume followed by the old tail.
func WithRemoveStale(enabled bool) Option {
	return func(c *config) {
		c.removeStale = enabled
	}
}

// ParseSize parses a human-readable byte count such as "10MiB", "650m" or
// "4096" for use with WithVolumeSize.
func ParseSize(s string) (int64, error) {
	return sizing.Parse(s)
}
