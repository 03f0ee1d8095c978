package polysplit

import "github.com/katalvlaran/polysplit/geom"

// buildLayers constructs the layered reachability graph (spec.md §4.3):
// for each reference point (one layer), it scans the catalog for entries
// within the configured threshold and records them as vertices.
//
// The scan uses a monotone forward cursor (lastReachable) across layers:
// since layers advance along the polyline and the catalog is sorted by
// segment, a cut point well before the first reachable one for layer k is
// infeasible for every later layer too (under the triangle inequality and
// a well-behaved metric). Catalog entries before the cursor are never
// admitted to the layer; every such entry lies behind all vertices of the
// previous layer, so the search's monotonicity filter would reject it
// anyway and the chosen path is unaffected.
func buildLayers[P any](metric geom.Metric[P], catalog []CutPoint[P], points []P, opts Options) ([]vertex, []layerRange, error) {
	vertices := make([]vertex, 0, len(catalog))
	layers := make([]layerRange, len(points))

	lastReachable := 0
	for k, q := range points {
		startPos := len(vertices)
		firstMatch := -1

		for i := lastReachable; i < len(catalog); i++ {
			d := metric.DistanceToPoint(q, catalog[i].Point)
			if opts.HasThreshold && d > opts.Threshold {
				continue
			}

			if firstMatch < 0 {
				firstMatch = i
			}

			vertices = append(vertices, vertex{
				layer:         k,
				cutPointIndex: i,
				distanceToRef: d,
			})
		}

		endPos := len(vertices)
		if startPos == endPos {
			return nil, nil, newError(PointFarAway, ErrPointFarAway, k)
		}

		layers[k] = layerRange{start: startPos, end: endPos}

		if firstMatch >= 0 {
			lastReachable = firstMatch
		}
	}

	return vertices, layers, nil
}
