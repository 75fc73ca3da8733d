package grav

import (
	"errors"
	"testing"
)

var unitCube = Prism{West: 0, East: 2, South: 0, North: 2, Bottom: 0, Top: 2}

func pointAt(e, n, u float64) Points {
	return Points{Easting: []float64{e}, Northing: []float64{n}, Upward: []float64{u}}
}

func tensorFields() []Field {
	return []Field{GEE, GNN, GZZ, GEN, GEZ, GNZ}
}

func TestVertexIsSingularForEveryTensorField(t *testing.T) {
	vertex := pointAt(0, 2, 2)
	for _, field := range tensorFields() {
		if _, _, found := AnySingularPoint(vertex, []Prism{unitCube}, field); !found {
			t.Errorf("%s: vertex not reported as singular", field)
		}
	}
}

func TestInteriorPointIsNeverSingular(t *testing.T) {
	interior := pointAt(1, 1, 1)
	for _, field := range Fields() {
		if _, _, found := AnySingularPoint(interior, []Prism{unitCube}, field); found {
			t.Errorf("%s: interior point reported as singular", field)
		}
	}
}

func TestScalarFieldsHaveNoSingularPoints(t *testing.T) {
	vertex := pointAt(0, 0, 0)
	for _, field := range []Field{Potential, GE, GN, GZ} {
		if _, _, found := AnySingularPoint(vertex, []Prism{unitCube}, field); found {
			t.Errorf("%s: scan reported a singularity for a non-tensor field", field)
		}
	}
}

func TestEdgeSingularityPerField(t *testing.T) {
	// Midpoints of edges running along each axis; vertices excluded so each
	// point sits on exactly one edge orientation.
	eastingEdge := pointAt(1, 0, 0)
	northingEdge := pointAt(0, 1, 0)
	upwardEdge := pointAt(0, 0, 1)

	tests := []struct {
		field    Field
		easting  bool // singular on edges along the easting axis
		northing bool
		upward   bool
	}{
		{GEE, false, true, true},
		{GNN, true, false, true},
		{GZZ, true, true, false},
		{GEN, false, false, true},
		{GEZ, false, true, false},
		{GNZ, true, false, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.field), func(t *testing.T) {
			if _, _, found := AnySingularPoint(eastingEdge, []Prism{unitCube}, tt.field); found != tt.easting {
				t.Errorf("easting edge: singular = %v, want %v", found, tt.easting)
			}
			if _, _, found := AnySingularPoint(northingEdge, []Prism{unitCube}, tt.field); found != tt.northing {
				t.Errorf("northing edge: singular = %v, want %v", found, tt.northing)
			}
			if _, _, found := AnySingularPoint(upwardEdge, []Prism{unitCube}, tt.field); found != tt.upward {
				t.Errorf("upward edge: singular = %v, want %v", found, tt.upward)
			}
		})
	}
}

func TestScanReportsFirstHit(t *testing.T) {
	points := Points{
		Easting:  []float64{10, 0, 1},
		Northing: []float64{10, 0, 0},
		Upward:   []float64{10, 0, 0},
	}
	l, m, found := AnySingularPoint(points, []Prism{unitCube}, GZZ)
	if !found {
		t.Fatal("no singularity found")
	}
	if l != 1 || m != 0 {
		t.Errorf("first hit at point %d, prism %d; want point 1, prism 0", l, m)
	}
}

func TestForwardWarnsOnSingularPoint(t *testing.T) {
	for _, field := range tensorFields() {
		var warnings []Warning
		cfg := DefaultConfig()
		cfg.OnWarning = func(w Warning) { warnings = append(warnings, w) }

		if _, err := Forward(pointAt(0, 0, 0), []Prism{unitCube}, []float64{1000}, field, cfg); err != nil {
			t.Fatalf("%s: Forward: %v", field, err)
		}
		if len(warnings) != 1 {
			t.Errorf("%s: got %d warnings, want 1 aggregate warning", field, len(warnings))
			continue
		}
		if warnings[0].Field != field {
			t.Errorf("warning field = %s, want %s", warnings[0].Field, field)
		}
	}
}

func TestForwardNoWarningInside(t *testing.T) {
	var warnings []Warning
	cfg := DefaultConfig()
	cfg.OnWarning = func(w Warning) { warnings = append(warnings, w) }

	if _, err := Forward(pointAt(1, 1, 1), []Prism{unitCube}, []float64{1000}, GZZ, cfg); err != nil {
		t.Fatalf("Forward: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("got %d warnings for an interior point, want none", len(warnings))
	}
}

func TestSkipChecksDisablesScan(t *testing.T) {
	var warnings []Warning
	cfg := DefaultConfig()
	cfg.SkipChecks = true
	cfg.OnWarning = func(w Warning) { warnings = append(warnings, w) }

	if _, err := Forward(pointAt(0, 0, 0), []Prism{unitCube}, []float64{1000}, GZZ, cfg); err != nil {
		t.Fatalf("Forward: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("scan ran despite SkipChecks: %d warnings", len(warnings))
	}
}

func TestCheckSingularPointsStrict(t *testing.T) {
	err := CheckSingularPoints(pointAt(0, 0, 0), []Prism{unitCube}, GZZ)
	if !errors.Is(err, ErrSingularPoint) {
		t.Fatalf("err = %v, want ErrSingularPoint", err)
	}
	var sp *SingularPointError
	if !errors.As(err, &sp) {
		t.Fatalf("err = %v, want *SingularPointError", err)
	}
	if sp.Point != 0 || sp.Prism != 0 {
		t.Errorf("error locates point %d, prism %d; want 0, 0", sp.Point, sp.Prism)
	}

	if err := CheckSingularPoints(pointAt(1, 1, 1), []Prism{unitCube}, GZZ); err != nil {
		t.Errorf("interior point: err = %v, want nil", err)
	}
}
