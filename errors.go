package polysplit

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Split. Match with errors.Is against these
// values, or inspect Error.Kind / Error.PointIndex for context.
var (
	// ErrInvalidPolyline indicates the polyline has fewer than 2 points.
	ErrInvalidPolyline = errors.New("polysplit: polyline has not enough points")

	// ErrInvalidPoints indicates fewer than 2 reference points were given.
	ErrInvalidPoints = errors.New("polysplit: number of reference points is not enough")

	// ErrPointFarAway indicates some reference point has no catalog entry
	// within the configured threshold.
	ErrPointFarAway = errors.New("polysplit: reference point has no reachable cut point within threshold")

	// ErrCannotSplit indicates the layered DAG has no monotone path
	// reaching the final reference point.
	ErrCannotSplit = errors.New("polysplit: no monotone path reaches the final reference point")
)

// ErrorKind tags the failure category of an Error, mirroring the upstream
// PolySplitErrorKind.
type ErrorKind int

const (
	// InvalidPolyline: len(polyline) < 2.
	InvalidPolyline ErrorKind = iota
	// InvalidPoints: len(points) < 2.
	InvalidPoints
	// PointFarAway: a reference point has no catalog entry within threshold.
	PointFarAway
	// CannotSplit: the monotone search found no path to the last layer.
	CannotSplit
)

// String renders the ErrorKind name for debugging and test failure output.
func (k ErrorKind) String() string {
	switch k {
	case InvalidPolyline:
		return "InvalidPolyline"
	case InvalidPoints:
		return "InvalidPoints"
	case PointFarAway:
		return "PointFarAway"
	case CannotSplit:
		return "CannotSplit"
	default:
		return "ErrorKind(?)"
	}
}

// Error wraps one of the sentinel errors above with its Kind and, when
// applicable, the offending reference-point index (PointIndex is -1 when
// not applicable — InvalidPolyline, InvalidPoints, and CannotSplit never
// pin down a single point).
type Error struct {
	Kind       ErrorKind
	PointIndex int
	sentinel   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.PointIndex >= 0 {
		return fmt.Sprintf("%s: point index %d", e.sentinel, e.PointIndex)
	}

	return e.sentinel.Error()
}

// Unwrap exposes the sentinel so errors.Is(err, polysplit.ErrPointFarAway)
// and friends work without inspecting Kind directly.
func (e *Error) Unwrap() error { return e.sentinel }

func newError(kind ErrorKind, sentinel error, pointIndex int) *Error {
	return &Error{Kind: kind, PointIndex: pointIndex, sentinel: sentinel}
}
