package geom

import "math"

// degenerateSegmentEpsilon is the squared-length threshold below which a
// segment is treated as a single point. Mirrors the upstream Rust
// implementation's 1e-9 constant.
const degenerateSegmentEpsilon = 1e-9

// Euclidean2D is a point in the Cartesian plane, the point type of the
// default Metric collaborator (Euclidean): copyable, comparable by value,
// and carries no state beyond its coordinates.
type Euclidean2D struct {
	X, Y float64
}

// Euclidean is the zero-value-safe Metric[Euclidean2D] implementation.
// Use it directly: geom.Euclidean{}.DistanceToPoint(...), or pass it to
// polysplit.Split as the Metric argument.
type Euclidean struct{}

// DistanceToPoint returns the straight-line distance between a and b.
func (Euclidean) DistanceToPoint(a, b Euclidean2D) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceToSegment returns the closest-point projection of p onto segment
// [a,b], per the contract documented on Metric.
func (e Euclidean) DistanceToSegment(p, a, b Euclidean2D) Projection[Euclidean2D] {
	vx := b.X - a.X
	vy := b.Y - a.Y

	if vx*vx+vy*vy < degenerateSegmentEpsilon {
		return Projection[Euclidean2D]{
			CutRatio: BeginRatio(),
			CutPoint: a,
			Distance: e.DistanceToPoint(p, a),
		}
	}

	ux := p.X - a.X
	uy := p.Y - a.Y

	t := (ux*vx + uy*vy) / (vx*vx + vy*vy)

	switch {
	case t <= 0:
		return Projection[Euclidean2D]{
			CutRatio: BeginRatio(),
			CutPoint: a,
			Distance: e.DistanceToPoint(p, a),
		}
	case t >= 1:
		return Projection[Euclidean2D]{
			CutRatio: EndRatio(),
			CutPoint: b,
			Distance: e.DistanceToPoint(p, b),
		}
	default:
		cut := Euclidean2D{X: a.X + t*vx, Y: a.Y + t*vy}

		return Projection[Euclidean2D]{
			CutRatio: InteriorRatio(t),
			CutPoint: cut,
			Distance: e.DistanceToPoint(p, cut),
		}
	}
}
