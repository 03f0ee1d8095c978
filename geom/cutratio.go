package geom

// CutKind tags where a projection landed on its segment.
type CutKind int

const (
	// Begin means the projection fell on the segment's start vertex.
	Begin CutKind = iota
	// Interior means the projection fell strictly inside the segment.
	Interior
	// End means the projection fell on the segment's end vertex.
	End
)

// String renders a CutKind for debugging and test failure messages.
func (k CutKind) String() string {
	switch k {
	case Begin:
		return "Begin"
	case Interior:
		return "Interior"
	case End:
		return "End"
	default:
		return "CutKind(?)"
	}
}

// CutRatio is the tri-state classifier of a projection onto a segment:
// the segment's start, its end, or an interior point at normalised
// parameter Frac (0 < Frac < 1). Begin/End are kept distinct from
// Interior(0)/Interior(1) on purpose — the catalog deduplication rule
// (package polysplit) and the segment assembler both branch on the tag,
// not the fraction.
type CutRatio struct {
	Kind CutKind
	Frac float64 // meaningful only when Kind == Interior
}

// BeginRatio constructs the Begin case.
func BeginRatio() CutRatio { return CutRatio{Kind: Begin} }

// EndRatio constructs the End case.
func EndRatio() CutRatio { return CutRatio{Kind: End} }

// InteriorRatio constructs the Interior(f) case. Callers must ensure
// 0 < f < 1; this package does not validate it since it is always derived
// from a clamped projection (see Euclidean.DistanceToSegment).
func InteriorRatio(f float64) CutRatio { return CutRatio{Kind: Interior, Frac: f} }

// Compare orders CutRatio values: Begin < Interior(f) < End, and within
// Interior, ascending by Frac. Returns <0, 0, or >0 like strings.Compare.
func (c CutRatio) Compare(other CutRatio) int {
	if c.Kind != other.Kind {
		return int(c.Kind) - int(other.Kind)
	}
	if c.Kind != Interior {
		return 0
	}
	switch {
	case c.Frac < other.Frac:
		return -1
	case c.Frac > other.Frac:
		return 1
	default:
		return 0
	}
}

// Less reports whether c sorts strictly before other.
func (c CutRatio) Less(other CutRatio) bool { return c.Compare(other) < 0 }
