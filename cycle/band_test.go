package cycle

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamgrid/grid"
)

func steps(pairs ...any) []grid.Step {
	out := make([]grid.Step, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, grid.Step{At: pairs[i].(grid.Coordinate), Dir: grid.MustDirection(pairs[i+1].(string))})
	}
	return out
}

// TestBottomBand_N2 pins the literal bottom band of the 2×2 board.
func TestBottomBand_N2(t *testing.T) {
	got := appendBottomBand(nil, 2)
	want := steps(
		grid.At(0, 1), "S",
		grid.At(0, 0), "E",
		grid.At(1, 0), "N",
		grid.At(1, 1), "N",
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("appendBottomBand(2) mismatch (-want +got):\n%s", diff)
	}
}

// TestBottomBand_ExitRule checks that only the final block turns North.
func TestBottomBand_ExitRule(t *testing.T) {
	const n = 8
	got := appendBottomBand(nil, n)
	require.Len(t, got, 2*n)
	for b := 0; b < n/2; b++ {
		exit := got[b*blockCells+3].Dir
		if b == n/2-1 {
			require.Equal(t, grid.North, exit, "final block")
		} else {
			require.Equal(t, grid.East, exit, "block %d", b)
		}
	}
	require.Equal(t, grid.At(n-1, 2), got[len(got)-1].Next())
}

// TestTopBand_Mirror checks the top band runs right to left and exits South at x=0.
func TestTopBand_Mirror(t *testing.T) {
	const n = 6
	got := appendTopBand(nil, n)
	require.Len(t, got, 2*n)
	require.Equal(t, grid.Step{At: grid.At(n-1, n-2), Dir: grid.North}, got[0])
	last := got[len(got)-1]
	require.Equal(t, grid.Step{At: grid.At(0, n-2), Dir: grid.South}, last)
	for i := 0; i+1 < len(got); i++ {
		require.Equal(t, got[i+1].At, got[i].Next(), "step %d", i)
	}
}

// TestRemainderCap checks the U-sweep rows and its hand-off into the top band.
func TestRemainderCap(t *testing.T) {
	cases := []struct {
		n    int
		want bool
	}{
		{2, false}, {4, false}, {6, true}, {8, false}, {10, true}, {12, false}, {14, true},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, needsRemainderCap(tc.n), "n=%d", tc.n)
	}

	const n = 10
	got := appendRemainderCap(nil, n)
	require.Len(t, got, 2*(n-2))
	require.Equal(t, grid.At(n-1, n-4), got[0].At)
	require.Equal(t, grid.Step{At: grid.At(2, n-4), Dir: grid.North}, got[n-3])
	require.Equal(t, grid.Step{At: grid.At(n-1, n-3), Dir: grid.North}, got[len(got)-1])
	require.Equal(t, grid.At(n-1, n-2), got[len(got)-1].Next())
}

// TestLeftConnector checks the connector ends on the bottom band's first cell.
func TestLeftConnector(t *testing.T) {
	require.Empty(t, appendLeftConnector(nil, 2))
	require.Empty(t, appendLeftConnector(nil, 4))

	got := appendLeftConnector(nil, 10)
	require.Len(t, got, 2*(10-4))
	require.Equal(t, grid.At(0, 7), got[0].At)
	require.Equal(t, grid.At(0, 1), got[len(got)-1].Next())
}
