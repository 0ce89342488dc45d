package window

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMeasureClampsInputs(t *testing.T) {
	g := Measure(0, -1, 0, -3)

	require.Equal(t, 1, g.RowHeight)
	require.Equal(t, 0, g.RowGap)
	require.Equal(t, 1, g.ViewportHeight)
	require.Equal(t, 0, g.Overscan)
}

func TestSpawnableBand(t *testing.T) {
	g := Measure(2, 1, 12, 2) // step 3

	require.Equal(t, 3, g.Step())
	require.Equal(t, -6, g.SpawnableTop())
	require.Equal(t, 18, g.SpawnableBottom())
}

func TestFitsIsInclusiveAtBothBounds(t *testing.T) {
	g := Measure(1, 0, 3, 1) // band [-1, 4]

	cases := []struct {
		name string
		y    int
		want bool
	}{
		{"above band", -2, false},
		{"exactly top bound", -1, true},
		{"inside", 2, true},
		{"exactly bottom bound", 4, true},
		{"below band", 5, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, g.Fits(tc.y))
		})
	}
}

func TestRowY(t *testing.T) {
	g := Measure(2, 1, 12, 0)
	require.Equal(t, 0, g.RowY(0))
	require.Equal(t, 9, g.RowY(3))
}
