package sizing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	t.Parallel()

	got, err := Add(10, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(30), got)

	_, err = Add(math.MaxInt64, 1)
	require.ErrorIs(t, err, ErrOverflow)

	_, err = Add(-1, 1)
	require.ErrorIs(t, err, ErrOverflow)
}

func TestToInt64(t *testing.T) {
	t.Parallel()

	got, err := ToInt64(42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)

	_, err = ToInt64(math.MaxUint64)
	require.ErrorIs(t, err, ErrOverflow)
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want int64
	}{
		{"4096", 4096},
		{"10MiB", 10 << 20},
		{"10m", 10 << 20},
		{"1k", 1 << 10},
		{"2g", 2 << 30},
		{"1 MB", 1_000_000},
		{" 512 KiB ", 512 << 10},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := Parse("lots")
	require.Error(t, err)
}

func TestFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "10 MiB", Format(10<<20))
	assert.Equal(t, "1.0 KiB", Format(1024))
}
