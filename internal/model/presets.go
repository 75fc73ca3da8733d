package model

// Presets are bundled example models, usable via `gravbox compute --preset`.
var Presets = map[string]*Document{
	"worked-example": Default(),
	"basin": {
		Name:      "basin",
		Field:     "g_z",
		Prisms:    [][]float64{{-134, -5, -45, 45, -200, -50}, {5, 134, -45, 45, -180, -30}},
		Densities: []float64{-300, 300},
		Grid: &Grid{
			West: -250, East: 250, South: -250, North: 250,
			Spacing: 10, Height: 50,
		},
	},
	"tensor-profile": {
		Name:      "tensor-profile",
		Field:     "g_zz",
		Prisms:    [][]float64{{-50, 50, -50, 50, -400, -100}},
		Densities: []float64{500},
		Points: &PointList{
			Easting:  profile(-200, 200, 81),
			Northing: constant(0, 81),
			Upward:   constant(30, 81),
		},
	},
}

// ListPresets returns the preset names in no particular order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}

func profile(from, to float64, n int) []float64 {
	out := make([]float64, n)
	step := (to - from) / float64(n-1)
	for i := range out {
		out[i] = from + float64(i)*step
	}
	return out
}

func constant(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
