package polysplit

import "github.com/katalvlaran/polysplit/geom"

// Split partitions polyline into len(points)-1 consecutive sub-polylines
// anchored at points, per the algorithm documented in doc.go.
//
// Preconditions: len(polyline) >= 2 and len(points) >= 2; violations
// return ErrInvalidPolyline / ErrInvalidPoints. On success, len(result) ==
// len(points)-1, every sub-polyline has at least 2 points, and consecutive
// sub-polylines share their meeting anchor.
func Split[P any](metric geom.Metric[P], polyline, points []P, opts ...Option) ([][]P, error) {
	if len(polyline) < 2 {
		return nil, newError(InvalidPolyline, ErrInvalidPolyline, -1)
	}
	if len(points) < 2 {
		return nil, newError(InvalidPoints, ErrInvalidPoints, -1)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	catalog := buildCatalog(metric, polyline, points, cfg)

	vertices, layers, err := buildLayers(metric, catalog, points, cfg)
	if err != nil {
		return nil, err
	}

	path, err := shortestPath(vertices, layers)
	if err != nil {
		return nil, err
	}

	return assemble(polyline, catalog, path, vertices), nil
}
