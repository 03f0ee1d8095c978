package polysplit_test

import (
	"testing"

	"github.com/katalvlaran/polysplit/geom"
	"gonum.org/v1/gonum/floats"
)

// pts converts literal (x,y) pairs into geom.Euclidean2D points, matching
// the tuple-literal fixtures carried over from the upstream test suite.
func pts(xy ...[2]float64) []geom.Euclidean2D {
	out := make([]geom.Euclidean2D, len(xy))
	for i, p := range xy {
		out[i] = geom.Euclidean2D{X: p[0], Y: p[1]}
	}

	return out
}

// requireSubPolylinesEqual compares two [][]geom.Euclidean2D within an
// absolute tolerance, since expected fixtures carry long float64 literals
// derived from the same arithmetic Split performs.
func requireSubPolylinesEqual(t *testing.T, want, got [][]geom.Euclidean2D) {
	t.Helper()

	const tol = 1e-9

	if len(want) != len(got) {
		t.Fatalf("sub-polyline count = %d, want %d (got=%v)", len(got), len(want), got)
	}

	for i := range want {
		if len(want[i]) != len(got[i]) {
			t.Fatalf("sub-polyline %d has %d points, want %d (got=%v, want=%v)", i, len(got[i]), len(want[i]), got[i], want[i])
		}
		for j := range want[i] {
			if !floats.EqualWithinAbs(got[i][j].X, want[i][j].X, tol) || !floats.EqualWithinAbs(got[i][j].Y, want[i][j].Y, tol) {
				t.Fatalf("sub-polyline %d point %d = %+v, want %+v", i, j, got[i][j], want[i][j])
			}
		}
	}
}
