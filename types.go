package polysplit

import "github.com/katalvlaran/polysplit/geom"

// CutPoint is a candidate anchor location along the polyline: the
// (0-based) segment it lies on, its tri-state classification, and its
// actual location in point space.
//
// Invariants maintained by the catalog builder (catalog.go):
//
//   - SegmentIndex is in [0, len(polyline)-1).
//   - An Interior CutRatio always has 0 < Frac < 1.
//   - At most one Begin entry exists for the whole catalog, and it is
//     attached to SegmentIndex == 0.
//   - At most one End entry exists per segment.
//   - The catalog is sorted by (SegmentIndex asc, CutRatio asc).
type CutPoint[P any] struct {
	SegmentIndex int
	CutRatio     geom.CutRatio
	Point        P
}

// vertex is one node of the implicit layered DAG: it belongs to layer
// (the index of the reference point it was computed for) and refers back
// into the catalog via cutPointIndex. distanceToRef is the distance from
// that reference point to catalog[cutPointIndex].Point.
type vertex struct {
	layer         int
	cutPointIndex int
	distanceToRef float64
}

// layerRange is the half-open range of vertex indices belonging to one
// layer. Exactly len(points) ranges exist; none are empty on success.
type layerRange struct {
	start, end int
}
