package grav

import "github.com/aprato/gravbox/internal/kernel"

// Field selects which gravitational quantity a forward computation returns.
type Field string

// The ten supported field tags.
const (
	Potential Field = "potential" // gravitational potential, J/kg
	GE        Field = "g_e"       // eastward acceleration, mGal
	GN        Field = "g_n"       // northward acceleration, mGal
	GZ        Field = "g_z"       // downward acceleration, mGal
	GEE       Field = "g_ee"      // tensor diagonal, Eötvös
	GNN       Field = "g_nn"      // tensor diagonal, Eötvös
	GZZ       Field = "g_zz"      // tensor diagonal, Eötvös
	GEN       Field = "g_en"      // tensor non-diagonal, Eötvös
	GEZ       Field = "g_ez"      // tensor non-diagonal, Eötvös
	GNZ       Field = "g_nz"      // tensor non-diagonal, Eötvös
)

// edgeCheck reports whether a point lies on a prism edge of one orientation.
type edgeCheck func(easting, northing, upward float64, p kernel.Prism) bool

// fieldSpec is the static metadata of one field tag: its analytic kernel,
// post-processing rules, and the edge orientations on which its closed form
// is undefined. The table is never mutated after package initialization and
// may be read from any number of goroutines.
type fieldSpec struct {
	kernel kernel.Func
	negate bool    // kernels use the upward convention, these fields the downward one
	scale  float64 // SI to conventional unit
	unit   string
	edges  []edgeCheck // non-empty only for tensor components
}

const (
	siToMGal   = 1e5
	siToEotvos = 1e9
)

var fields = map[Field]fieldSpec{
	Potential: {kernel: kernel.Potential, scale: 1, unit: "J/kg"},
	GE:        {kernel: kernel.E, scale: siToMGal, unit: "mGal"},
	GN:        {kernel: kernel.N, scale: siToMGal, unit: "mGal"},
	GZ:        {kernel: kernel.Up, negate: true, scale: siToMGal, unit: "mGal"},
	GEE: {kernel: kernel.EE, scale: siToEotvos, unit: "Eotvos",
		edges: []edgeCheck{kernel.OnNorthingEdge, kernel.OnUpwardEdge}},
	GNN: {kernel: kernel.NN, scale: siToEotvos, unit: "Eotvos",
		edges: []edgeCheck{kernel.OnEastingEdge, kernel.OnUpwardEdge}},
	GZZ: {kernel: kernel.UU, scale: siToEotvos, unit: "Eotvos",
		edges: []edgeCheck{kernel.OnEastingEdge, kernel.OnNorthingEdge}},
	GEN: {kernel: kernel.EN, scale: siToEotvos, unit: "Eotvos",
		edges: []edgeCheck{kernel.OnUpwardEdge}},
	GEZ: {kernel: kernel.EU, negate: true, scale: siToEotvos, unit: "Eotvos",
		edges: []edgeCheck{kernel.OnNorthingEdge}},
	GNZ: {kernel: kernel.NU, negate: true, scale: siToEotvos, unit: "Eotvos",
		edges: []edgeCheck{kernel.OnEastingEdge}},
}

// fieldOrder fixes the listing order for Fields and the CLI.
var fieldOrder = []Field{Potential, GE, GN, GZ, GEE, GNN, GZZ, GEN, GEZ, GNZ}

// Fields returns all supported field tags in a fixed order.
func Fields() []Field {
	out := make([]Field, len(fieldOrder))
	copy(out, fieldOrder)
	return out
}

// Valid reports whether f is a supported field tag.
func (f Field) Valid() bool {
	_, ok := fields[f]
	return ok
}

// Unit returns the conventional unit of the field ("mGal", "Eotvos" or
// "J/kg"), or the empty string for unknown tags.
func (f Field) Unit() string { return fields[f].unit }

// Tensor reports whether f is a gravity-gradient tensor component. Only
// tensor components have singular points.
func (f Field) Tensor() bool { return len(fields[f].edges) > 0 }
