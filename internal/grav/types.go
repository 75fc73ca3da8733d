package grav

import (
	"fmt"

	"github.com/aprato/gravbox/internal/kernel"
)

// Prism is a right-rectangular volume carrying a density contrast. Bounds
// are in meters; valid prisms satisfy West <= East, South <= North and
// Bottom <= Top.
type Prism = kernel.Prism

// Points holds the observation coordinates as three equal-length slices, in
// meters. Upward increases away from the reference surface, so positive and
// negative values sit above and below it.
type Points struct {
	Easting  []float64
	Northing []float64
	Upward   []float64
}

// Len returns the number of observation points.
func (p Points) Len() int { return len(p.Easting) }

func (p Points) consistent() bool {
	return len(p.Northing) == len(p.Easting) && len(p.Upward) == len(p.Easting)
}

// At returns the coordinates of point i.
func (p Points) At(i int) (easting, northing, upward float64) {
	return p.Easting[i], p.Northing[i], p.Upward[i]
}

// ProgressSink receives one increment per completed observation point.
// Implementations must tolerate concurrent calls from multiple workers.
type ProgressSink interface {
	Add(n int)
}

// Warning is a non-fatal advisory raised during a forward computation. The
// computation still completes; values at the reported location are
// unreliable.
type Warning struct {
	Field Field
	Point int // index of the first observation point found on a singularity
	Prism int // index of the prism owning that singularity
}

func (w Warning) String() string {
	return fmt.Sprintf("observation point %d lies on a singular point of prism %d for field %s",
		w.Point, w.Prism, w.Field)
}
