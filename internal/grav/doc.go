// Package grav computes gravitational fields of right-rectangular prism
// models on sets of observation points.
//
// The entry point is [Forward], which evaluates one of ten field components
// (potential, the three acceleration components, the six gravity-gradient
// tensor components) for every observation point as an ordered sum of
// per-prism closed-form contributions:
//
//	points := grav.Points{
//		Easting:  []float64{-40, 0, 40},
//		Northing: []float64{0, 0, 0},
//		Upward:   []float64{30, 30, 30},
//	}
//	prisms := []grav.Prism{{West: -34, East: 5, South: -18, North: 14, Bottom: -345, Top: -146}}
//	gz, err := grav.Forward(points, prisms, []float64{2670}, grav.GZ, grav.DefaultConfig())
//
// Results are returned in conventional geophysical units: mGal for the
// acceleration components, Eötvös for tensor components, J/kg for the
// potential. The vertical coordinate points upward, but g_z, g_ez and g_nz
// follow the downward convention so that positive density contrasts produce
// positive anomalies.
//
// # Concurrency
//
// The loop over observation points is data parallel: workers share the
// read-only model and each writes a disjoint slice of the output, so the
// serial and parallel paths return bit-for-bit identical arrays. A Forward
// call is safe to run concurrently with others.
package grav
