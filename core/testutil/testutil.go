// Package testutil provides fixtures for tests of multi-volume streams.
//
// Helpers assume the default naming scheme: four decimal digits starting
// at 1 (<base>.0001, <base>.0002, ...).
package testutil

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"math/rand" //nolint:gosec // reproducible test data
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// VolumePath returns the default name of the 0-based volume i of base.
func VolumePath(base string, i int) string {
	return fmt.Sprintf("%s.%04d", base, i+1)
}

// Payload returns n pseudo-random bytes determined by seed.
func Payload(n int, seed int64) []byte {
	data := make([]byte, n)
	rand.New(rand.NewSource(seed)).Read(data) //nolint:gosec // reproducible test data
	return data
}

// Split cuts data into consecutive chunks of at most n bytes.
func Split(data []byte, n int) [][]byte {
	var parts [][]byte
	for len(data) > n {
		parts = append(parts, data[:n])
		data = data[n:]
	}
	return append(parts, data)
}

// WriteVolumes writes parts as the volumes of dir/name and returns the base path.
func WriteVolumes(t testing.TB, dir, name string, parts ...[]byte) string {
	t.Helper()
	base := filepath.Join(dir, name)
	for i, part := range parts {
		require.NoError(t, os.WriteFile(VolumePath(base, i), part, 0o644))
	}
	return base
}

// VolumeSizes returns the on-disk sizes of the consecutive volumes of base.
func VolumeSizes(t testing.TB, base string) []int64 {
	t.Helper()
	var sizes []int64
	for i := 0; ; i++ {
		info, err := os.Stat(VolumePath(base, i))
		if errors.Is(err, fs.ErrNotExist) {
			return sizes
		}
		require.NoError(t, err)
		sizes = append(sizes, info.Size())
	}
}

// ReadVolumes concatenates the consecutive volumes of base.
func ReadVolumes(t testing.TB, base string) []byte {
	t.Helper()
	var buf bytes.Buffer
	for i := range VolumeSizes(t, base) {
		data, err := os.ReadFile(VolumePath(base, i))
		require.NoError(t, err)
		buf.Write(data)
	}
	return buf.Bytes()
}

// ExpectedSizes returns the volume sizes a fresh write of total bytes with
// the given capacity must produce.
func ExpectedSizes(total, capacity int64) []int64 {
	if total == 0 {
		return []int64{0}
	}
	var sizes []int64
	for total > capacity {
		sizes = append(sizes, capacity)
		total -= capacity
	}
	return append(sizes, total)
}
