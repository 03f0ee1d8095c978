package polysplit

import "github.com/katalvlaran/polysplit/geom"

// assemble reconstructs the m-1 sub-polylines from the chosen anchor path
// (spec.md §4.5). Each anchor's CutRatio tag controls whether its point is
// appended: an End anchor already coincides with the polyline vertex that
// the interior-vertex loop will append, and a Begin anchor coincides with
// the one it would otherwise duplicate at the start of the next segment.
func assemble[P any](polyline []P, catalog []CutPoint[P], path []int, vertices []vertex) [][]P {
	result := make([][]P, 0, len(path)-1)

	cur := catalog[vertices[path[0]].cutPointIndex]
	for _, idx := range path[1:] {
		next := catalog[vertices[idx].cutPointIndex]

		sub := make([]P, 0, next.SegmentIndex-cur.SegmentIndex+2)
		if cur.CutRatio.Kind != geom.End {
			sub = append(sub, cur.Point)
		}

		for s := cur.SegmentIndex; s < next.SegmentIndex; s++ {
			sub = append(sub, polyline[s+1])
		}

		if next.CutRatio.Kind != geom.Begin {
			sub = append(sub, next.Point)
		}

		if len(sub) == 1 {
			sub = append(sub, sub[0])
		}

		result = append(result, sub)
		cur = next
	}

	return result
}
