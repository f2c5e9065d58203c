// Package naming builds and parses volume file names of the form
// <base>.<suffix>, where suffix is a fixed-width decimal or hex counter.
package naming

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/meigma/multivolume/core/vfs"
)

var (
	// ErrOverflow is returned when a volume index does not fit the suffix width.
	ErrOverflow = errors.New("volume index exceeds suffix width")

	// ErrInvalid is returned for an unusable naming scheme.
	ErrInvalid = errors.New("invalid naming scheme")

	// ErrGap is returned when discovery finds a hole in the volume sequence.
	ErrGap = errors.New("missing volume in sequence")
)

// Alphabet selects the digits used for suffixes.
type Alphabet uint8

const (
	Decimal Alphabet = iota
	Hex
)

func (a Alphabet) String() string {
	switch a {
	case Decimal:
		return "decimal"
	case Hex:
		return "hex"
	default:
		return fmt.Sprintf("Alphabet(%d)", uint8(a))
	}
}

func (a Alphabet) radix() int {
	if a == Hex {
		return 16
	}
	return 10
}

// Scheme is a volume naming configuration.
type Scheme struct {
	Digits   int
	Start    int
	Alphabet Alphabet
}

// Validate reports whether the scheme can name at least its first volume.
func (s Scheme) Validate() error {
	if s.Digits < 1 {
		return fmt.Errorf("%w: digits must be >= 1, got %d", ErrInvalid, s.Digits)
	}
	if s.Start < 0 {
		return fmt.Errorf("%w: start index must be >= 0, got %d", ErrInvalid, s.Start)
	}
	if s.Alphabet != Decimal && s.Alphabet != Hex {
		return fmt.Errorf("%w: unknown alphabet %s", ErrInvalid, s.Alphabet)
	}
	if _, err := s.Suffix(0); err != nil {
		return err
	}
	return nil
}

// Max returns the largest suffix value representable, saturating at math.MaxInt.
func (s Scheme) Max() int {
	radix := s.Alphabet.radix()
	limit := 1
	for range s.Digits {
		if limit > math.MaxInt/radix {
			return math.MaxInt
		}
		limit *= radix
	}
	return limit - 1
}

// Suffix formats the suffix of the volume at 0-based index i.
func (s Scheme) Suffix(i int) (string, error) {
	if i < 0 || s.Start > math.MaxInt-i {
		return "", fmt.Errorf("%w: index %d", ErrOverflow, i)
	}
	v := s.Start + i
	if v > s.Max() {
		return "", fmt.Errorf("%w: %d does not fit %d %s digits", ErrOverflow, v, s.Digits, s.Alphabet)
	}
	if s.Alphabet == Hex {
		return fmt.Sprintf("%0*x", s.Digits, v), nil
	}
	return fmt.Sprintf("%0*d", s.Digits, v), nil
}

// Path returns the file name of the volume at 0-based index i.
func (s Scheme) Path(base string, i int) (string, error) {
	suffix, err := s.Suffix(i)
	if err != nil {
		return "", err
	}
	return base + "." + suffix, nil
}

// Parse returns the 0-based index encoded by suffix.
func (s Scheme) Parse(suffix string) (int, bool) {
	if len(suffix) != s.Digits {
		return 0, false
	}
	for _, c := range suffix {
		if !s.isDigit(c) {
			return 0, false
		}
	}
	v, err := strconv.ParseInt(suffix, s.Alphabet.radix(), 64)
	if err != nil || v > int64(math.MaxInt) {
		return 0, false
	}
	i := int(v) - s.Start
	if i < 0 {
		return 0, false
	}
	return i, true
}

func (s Scheme) isDigit(c rune) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case s.Alphabet == Hex && (c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'):
		return true
	default:
		return false
	}
}

// Discover lists the existing volumes of base in index order.
//
// It returns nil when no volume exists. A missing index between the first
// volume and the last one found is reported as ErrGap.
func Discover(fsys vfs.FileSystem, base string, s Scheme) ([]string, error) {
	dir, name := filepath.Split(base)
	if dir == "" {
		dir = "."
	}
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list volumes of %s: %w", base, err)
	}

	type found struct {
		index int
		path  string
	}
	var vols []found
	prefix := name + "."
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), prefix) {
			continue
		}
		i, ok := s.Parse(strings.TrimPrefix(e.Name(), prefix))
		if !ok {
			continue
		}
		vols = append(vols, found{index: i, path: base + e.Name()[len(name):]})
	}
	slices.SortFunc(vols, func(a, b found) int { return a.index - b.index })

	paths := make([]string, 0, len(vols))
	for n, v := range vols {
		if v.index != n {
			want, _ := s.Path(base, n)
			return nil, fmt.Errorf("%w: %s", ErrGap, want)
		}
		paths = append(paths, v.path)
	}
	if len(paths) == 0 {
		return nil, nil
	}
	return paths, nil
}
