package polysplit

import (
	"sort"

	"github.com/katalvlaran/polysplit/geom"
)

// buildCatalog enumerates candidate anchor locations along every segment
// of polyline, by projecting every reference point in points onto every
// segment. It implements spec.md §4.2:
//
//   - Interior projections are always emitted.
//   - A Begin projection is emitted at most once for the whole catalog,
//     and only for segment 0 — a Begin hit on a later segment coincides
//     with the previous segment's End and would double-count.
//   - An End projection is emitted at most once per segment.
//
// The result is sorted by (SegmentIndex asc, CutRatio asc).
func buildCatalog[P any](metric geom.Metric[P], polyline, points []P, opts Options) []CutPoint[P] {
	segmentsLen := len(polyline) - 1
	catalog := make([]CutPoint[P], 0, segmentsLen+len(points))

	for s := 0; s < segmentsLen; s++ {
		a, b := polyline[s], polyline[s+1]
		startAdded := false
		endAdded := false

		for _, q := range points {
			proj := metric.DistanceToSegment(q, a, b)
			if opts.HasThreshold && proj.Distance > opts.Threshold {
				continue
			}

			switch proj.CutRatio.Kind {
			case geom.Begin:
				if s != 0 || startAdded {
					continue
				}
				startAdded = true
			case geom.End:
				if endAdded {
					continue
				}
				endAdded = true
			}

			catalog = append(catalog, CutPoint[P]{
				SegmentIndex: s,
				CutRatio:     proj.CutRatio,
				Point:        proj.CutPoint,
			})
		}
	}

	sort.SliceStable(catalog, func(i, j int) bool {
		if catalog[i].SegmentIndex != catalog[j].SegmentIndex {
			return catalog[i].SegmentIndex < catalog[j].SegmentIndex
		}

		return catalog[i].CutRatio.Less(catalog[j].CutRatio)
	})

	return catalog
}
