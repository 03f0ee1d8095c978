package geom

// Projection bundles the result of projecting a point onto a segment: the
// cut-ratio tag, the actual closest point on the segment, and the distance
// from the projected point to the segment.
type Projection[P any] struct {
	CutRatio CutRatio
	CutPoint P
	Distance float64
}

// Metric is the capability the polysplit core engine is polymorphic over.
// A metric value for point type P implements it and is passed to Split:
// Euclidean (over Euclidean2D points, this package) is the default
// collaborator; geodesic, taxicab, or any other metric plugs in unchanged
// as long as it honors the projection contract below.
//
// DistanceToPoint must be a metric: d(x,x)=0, symmetric, and must satisfy
// the triangle inequality. DistanceToSegment must return the closest-point
// projection of p onto segment [a,b]:
//
//   - If a and b are degenerate (coincide, within an implementation-defined
//     epsilon), return Begin with CutPoint=a.
//   - Otherwise compute the unclamped scalar projection t of (p-a) onto
//     (b-a). If t<=0, return Begin with CutPoint=a; if t>=1, return End
//     with CutPoint=b; otherwise return Interior(t) with
//     CutPoint=a+t*(b-a).
//
// Both methods are pure functions; a Metric implementation holds no shared
// state and is safe for concurrent use.
type Metric[P any] interface {
	DistanceToPoint(a, b P) float64
	DistanceToSegment(p, a, b P) Projection[P]
}
