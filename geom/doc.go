// Package geom defines the metric capability that polysplit's core engine
// is polymorphic over, and provides a Euclidean ℝ² implementation as the
// default collaborator.
//
// A point type P participates in the split algorithm through a value
// implementing Metric[P]: point-to-point distance and closest-point
// projection onto a segment. Neither method carries any shared state — both are pure
// functions of their arguments.
//
// CutRatio classifies where a projection landed on its segment (Begin,
// Interior(f), or End). The distinction between Begin/End and
// Interior(0)/Interior(1) is load-bearing: the catalog deduplication rule
// and the segment assembler both branch on it, so it is kept as a tagged
// variant rather than collapsed to a bare float64.
package geom
