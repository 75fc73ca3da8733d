package grav

// CheckPrisms validates the boundary ordering of every prism. On failure it
// returns a *GeometryError enumerating all offending prisms grouped by the
// violated constraint, never just the first one.
func CheckPrisms(prisms []Prism) error {
	var geo *GeometryError
	bad := func() *GeometryError {
		if geo == nil {
			geo = &GeometryError{Prisms: prisms}
		}
		return geo
	}
	for i, p := range prisms {
		if p.West > p.East {
			g := bad()
			g.BadWestEast = append(g.BadWestEast, i)
		}
		if p.South > p.North {
			g := bad()
			g.BadSouthNorth = append(g.BadSouthNorth, i)
		}
		if p.Bottom > p.Top {
			g := bad()
			g.BadBottomTop = append(g.BadBottomTop, i)
		}
	}
	if geo != nil {
		return geo
	}
	return nil
}

// isNull reports whether a validated prism has zero extent on any axis.
func isNull(p Prism) bool {
	return p.West == p.East || p.South == p.North || p.Bottom == p.Top
}

// DiscardNullPrisms returns copies of prisms and densities without the null
// entries: prisms with zero volume or exactly zero density. Such prisms have
// no physical effect but feed degenerate terms to the closed-form kernels.
// The relative order of the survivors is preserved. Prisms must already be
// validated.
func DiscardNullPrisms(prisms []Prism, densities []float64) ([]Prism, []float64) {
	kept := make([]Prism, 0, len(prisms))
	keptDensity := make([]float64, 0, len(densities))
	for i, p := range prisms {
		if isNull(p) || densities[i] == 0 {
			continue
		}
		kept = append(kept, p)
		keptDensity = append(keptDensity, densities[i])
	}
	return kept, keptDensity
}
