package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseIntDefault(t *testing.T) {
	cases := []struct {
		in   string
		def  int
		want int
	}{
		{"", 10, 10},
		{"3", 10, 3},
		{"abc", 10, 10},
		{"0", 10, 10},
		{"-5", 1, 1},
		{"2.5", 10, 10},
		{"1000", 10, 1000},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, ParseIntDefault(tc.in, tc.def), "input %q", tc.in)
	}
}

func TestOffset(t *testing.T) {
	require.Equal(t, 0, Offset(1, 10))
	require.Equal(t, 10, Offset(2, 10))
	require.Equal(t, 2, Offset(3, 1))
}

func TestTotalPages(t *testing.T) {
	require.Equal(t, 0, TotalPages(0, 10))
	require.Equal(t, 1, TotalPages(1, 10))
	require.Equal(t, 1, TotalPages(10, 10))
	require.Equal(t, 2, TotalPages(11, 10))
	require.Equal(t, 3, TotalPages(3, 1))

	// totalPages == ceil(total/limit) for all valid page sizes
	for limit := 1; limit <= 25; limit++ {
		for total := int64(0); total <= 100; total++ {
			want := int((total + int64(limit) - 1) / int64(limit))
			require.Equal(t, want, TotalPages(total, limit))
		}
	}
}
