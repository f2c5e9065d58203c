// Package sizing provides overflow-checked offset arithmetic and size parsing.
package sizing

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// ErrOverflow is returned when an offset or size does not fit in int64.
var ErrOverflow = errors.New("size overflow")

// Add returns a+b for non-negative a and b, or ErrOverflow.
func Add(a, b int64) (int64, error) {
	if a < 0 || b < 0 || a > math.MaxInt64-b {
		return 0, ErrOverflow
	}
	return a + b, nil
}

// ToInt64 converts a uint64 to int64, returning ErrOverflow if it doesn't fit.
func ToInt64(size uint64) (int64, error) {
	if size > uint64(math.MaxInt64) {
		return 0, ErrOverflow
	}
	return int64(size), nil
}

// Parse reads a byte count such as "4096", "10MiB", "1m" or "1.5 GB".
//
// Single-letter units follow archiver conventions and are binary: "k",
// "m" and "g" mean KiB, MiB and GiB.
func Parse(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if n := len(s); n > 0 {
		switch s[n-1] {
		case 'k', 'm', 'g', 't':
			if n == 1 || !isUnitLetter(s[n-2]) {
				s += "ib"
			}
		}
	}
	v, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("parse size %q: %w", s, err)
	}
	return ToInt64(v)
}

func isUnitLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// Format renders n using binary units, e.g. "10 MiB".
func Format(n int64) string {
	if n < 0 {
		return fmt.Sprintf("%d B", n)
	}
	return humanize.IBytes(uint64(n))
}
