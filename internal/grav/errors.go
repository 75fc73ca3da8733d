package grav

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors for forward computations. All of them abort the call before
// any numerical work starts.
var (
	// ErrUnknownField indicates a field tag outside the supported set.
	ErrUnknownField = errors.New("grav: unknown gravitational field")

	// ErrInvalidGeometry indicates prisms with inverted boundaries.
	ErrInvalidGeometry = errors.New("grav: invalid prism geometry")

	// ErrDensityMismatch indicates densities and prisms of different lengths.
	ErrDensityMismatch = errors.New("grav: density count does not match prism count")

	// ErrPointsMismatch indicates coordinate slices of different lengths.
	ErrPointsMismatch = errors.New("grav: observation coordinate slices differ in length")

	// ErrNoProgressSink indicates progress reporting was requested without
	// attaching a sink.
	ErrNoProgressSink = errors.New("grav: progress reporting requested without a sink")

	// ErrSingularPoint indicates an observation point on a tensor-field
	// singularity, raised only by the strict scan.
	ErrSingularPoint = errors.New("grav: observation point on a singular point of a prism")
)

// GeometryError reports every prism with inverted boundaries, grouped by the
// constraint it violates. A prism can appear in more than one group.
type GeometryError struct {
	BadWestEast   []int // indices where west > east
	BadSouthNorth []int // indices where south > north
	BadBottomTop  []int // indices where bottom > top
	Prisms        []Prism
}

func (e *GeometryError) Error() string {
	var b strings.Builder
	b.WriteString("invalid prism boundaries:")
	e.group(&b, "west > east", e.BadWestEast)
	e.group(&b, "south > north", e.BadSouthNorth)
	e.group(&b, "bottom > top", e.BadBottomTop)
	return b.String()
}

func (e *GeometryError) group(b *strings.Builder, constraint string, idx []int) {
	if len(idx) == 0 {
		return
	}
	fmt.Fprintf(b, "\n  %s:", constraint)
	for _, i := range idx {
		p := e.Prisms[i]
		fmt.Fprintf(b, "\n    prism %d: [%g, %g, %g, %g, %g, %g]",
			i, p.West, p.East, p.South, p.North, p.Bottom, p.Top)
	}
}

func (e *GeometryError) Unwrap() error { return ErrInvalidGeometry }

// SingularPointError carries the location of the first singularity found by
// a strict scan.
type SingularPointError struct {
	Field Field
	Point int
	Prism int
}

func (e *SingularPointError) Error() string {
	return fmt.Sprintf("observation point %d lies on a singular point of prism %d for field %s",
		e.Point, e.Prism, e.Field)
}

func (e *SingularPointError) Unwrap() error { return ErrSingularPoint }
