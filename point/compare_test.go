package point_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paretopath/point"
)

func TestComponentwise(t *testing.T) {
	cases := []struct {
		name             string
		a, b             point.Point
		eps              float64
		lessEq, less, eq bool
	}{
		{"equal", point.Of(1, 2), point.Of(1, 2), 0, true, false, true},
		{"strictly smaller", point.Of(1, 1), point.Of(2, 2), 0, true, true, false},
		{"smaller in one", point.Of(1, 2), point.Of(2, 2), 0, true, false, false},
		{"incomparable", point.Of(1, 3), point.Of(2, 2), 0, false, false, false},
		{"within eps", point.Of(1.05, 2), point.Of(1, 2), 0.1, true, false, true},
		{"strict needs margin", point.Of(0.95, 1.95), point.Of(1, 2), 0.1, true, false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.lessEq, point.LessEq(tc.a, tc.b, tc.eps))
			require.Equal(t, tc.less, point.Less(tc.a, tc.b, tc.eps))
			require.Equal(t, tc.eq, point.Equal(tc.a, tc.b, tc.eps))
		})
	}
}

func TestDominates(t *testing.T) {
	require.True(t, point.Dominates(point.Of(1, 10), point.Of(2, 20), 0))
	require.True(t, point.Dominates(point.Of(1, 10), point.Of(1, 11), 0))
	require.False(t, point.Dominates(point.Of(1, 10), point.Of(1, 10), 0), "equality is not domination")
	require.False(t, point.Dominates(point.Of(1, 10), point.Of(10, 1), 0))
	require.False(t, point.Dominates(point.Of(1, 10), point.Of(1, 10.05), 0.1), "difference inside eps")

	require.True(t, point.Comparable(point.Of(1, 1), point.Of(1, 2), 0))
	require.False(t, point.Comparable(point.Of(1, 3), point.Of(2, 2), 0))
}

func TestLexicographic(t *testing.T) {
	require.True(t, point.LexLess(point.Of(1, 9), point.Of(2, 0), 0))
	require.True(t, point.LexLess(point.Of(1, 1), point.Of(1, 2), 0))
	require.False(t, point.LexLess(point.Of(1, 2), point.Of(1, 2), 0))
	require.True(t, point.LexLessEq(point.Of(1, 2), point.Of(1, 2), 0))
	require.Equal(t, 0, point.Compare(point.Of(1, 2), point.Of(1.01, 2), 0.1))

	pts := []point.Point{point.Of(3, 1), point.Of(1, 5), point.Of(1, 2), point.Of(2, 2)}
	slices.SortFunc(pts, func(a, b point.Point) int { return point.Compare(a, b, 0) })
	require.Equal(t, []point.Point{point.Of(1, 2), point.Of(1, 5), point.Of(2, 2), point.Of(3, 1)}, pts)
}
