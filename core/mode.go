package multivolume

import "fmt"

// Mode selects how a Stream opens its volume set.
type Mode uint8

const (
	ModeRead Mode = iota
	ModeWriteTruncate
	ModeWriteExclusive
	ModeAppend
)

func (m Mode) String() string {
	switch m {
	case ModeRead:
		return "read"
	case ModeWriteTruncate:
		return "write-truncate"
	case ModeWriteExclusive:
		return "write-exclusive"
	case ModeAppend:
		return "append"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// valid reports whether m is one of the defined modes.
func (m Mode) valid() bool {
	return m <= ModeAppend
}

// ParseMode maps a file-mode string to a Mode.
//
// The text ("t") and binary ("b") variants are accepted and treated alike:
// "r", "rb", "rt", "w", "wb", "wt", "x", "xb", "xt", "a", "ab", "at".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "r", "rb", "rt":
		return ModeRead, nil
	case "w", "wb", "wt":
		return ModeWriteTruncate, nil
	case "x", "xb", "xt":
		return ModeWriteExclusive, nil
	case "a", "ab", "at":
		return ModeAppend, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedMode, s)
	}
}
