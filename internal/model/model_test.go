package model

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aprato/gravbox/internal/grav"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.yaml")
	doc := Default()
	if err := Save(path, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(doc, loaded); diff != "" {
		t.Errorf("round trip (-saved +loaded):\n%s", diff)
	}
}

func TestLoadRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
	}{
		{"unknown field", Document{Field: "g_xx", Prisms: [][]float64{{0, 1, 0, 1, 0, 1}}, Densities: []float64{1},
			Points: &PointList{Easting: []float64{0}, Northing: []float64{0}, Upward: []float64{0}}}},
		{"short prism row", Document{Field: "g_z", Prisms: [][]float64{{0, 1, 0, 1}}, Densities: []float64{1},
			Points: &PointList{Easting: []float64{0}, Northing: []float64{0}, Upward: []float64{0}}}},
		{"density mismatch", Document{Field: "g_z", Prisms: [][]float64{{0, 1, 0, 1, 0, 1}}, Densities: []float64{1, 2},
			Points: &PointList{Easting: []float64{0}, Northing: []float64{0}, Upward: []float64{0}}}},
		{"ragged points", Document{Field: "g_z", Prisms: [][]float64{{0, 1, 0, 1, 0, 1}}, Densities: []float64{1},
			Points: &PointList{Easting: []float64{0, 1}, Northing: []float64{0}, Upward: []float64{0}}}},
		{"neither points nor grid", Document{Field: "g_z", Prisms: [][]float64{{0, 1, 0, 1, 0, 1}}, Densities: []float64{1}}},
		{"both points and grid", Document{Field: "g_z", Prisms: [][]float64{{0, 1, 0, 1, 0, 1}}, Densities: []float64{1},
			Points: &PointList{Easting: []float64{0}, Northing: []float64{0}, Upward: []float64{0}},
			Grid:   &Grid{West: 0, East: 1, South: 0, North: 1, Spacing: 1}}},
		{"zero spacing", Document{Field: "g_z", Prisms: [][]float64{{0, 1, 0, 1, 0, 1}}, Densities: []float64{1},
			Grid: &Grid{West: 0, East: 1, South: 0, North: 1, Spacing: 0}}},
		{"inverted grid", Document{Field: "g_z", Prisms: [][]float64{{0, 1, 0, 1, 0, 1}}, Densities: []float64{1},
			Grid: &Grid{West: 1, East: 0, South: 0, North: 1, Spacing: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.doc.Validate(); err == nil {
				t.Error("Validate accepted a bad document")
			}
		})
	}
}

func TestValidateUnknownFieldError(t *testing.T) {
	doc := Default()
	doc.Field = "g_xx"
	if err := doc.Validate(); !errors.Is(err, grav.ErrUnknownField) {
		t.Errorf("err = %v, want ErrUnknownField", err)
	}
}

func TestGridExpand(t *testing.T) {
	g := &Grid{West: 0, East: 20, South: 0, North: 10, Spacing: 10, Height: 30}
	pts := g.Expand()

	want := grav.Points{
		Easting:  []float64{0, 10, 20, 0, 10, 20},
		Northing: []float64{0, 0, 0, 10, 10, 10},
		Upward:   []float64{30, 30, 30, 30, 30, 30},
	}
	if diff := cmp.Diff(want, pts); diff != "" {
		t.Errorf("grid expansion (-want +got):\n%s", diff)
	}

	rows, cols := g.shape()
	if rows != 2 || cols != 3 {
		t.Errorf("shape = %dx%d, want 2x3", rows, cols)
	}
}

func TestGridShapeFloatNoise(t *testing.T) {
	// (1.0-0)/0.1 divides to just under 10 in floating point; truncation
	// would lose the last row and column.
	g := &Grid{West: 0, East: 1, South: 0, North: 1, Spacing: 0.1}
	rows, cols := g.shape()
	if rows != 11 || cols != 11 {
		t.Errorf("shape = %dx%d, want 11x11", rows, cols)
	}
	if pts := g.Expand(); pts.Len() != 121 {
		t.Errorf("Expand returned %d points, want 121", pts.Len())
	}
}

func TestPrismModelConversion(t *testing.T) {
	doc := Default()
	prisms, densities := doc.PrismModel()
	want := []grav.Prism{{West: -34, East: 5, South: -18, North: 14, Bottom: -345, Top: -146}}
	if diff := cmp.Diff(want, prisms); diff != "" {
		t.Errorf("prisms (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{2670}, densities); diff != "" {
		t.Errorf("densities (-want +got):\n%s", diff)
	}
}

func TestPresetsAreValid(t *testing.T) {
	for name, doc := range Presets {
		if err := doc.Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestPresetModelsCompute(t *testing.T) {
	doc := Presets["tensor-profile"]
	prisms, densities := doc.PrismModel()
	result, err := grav.Forward(doc.ObservationPoints(), prisms, densities, doc.FieldTag(), grav.DefaultConfig())
	if err != nil {
		t.Fatalf("Forward: %v", err)
	}
	if len(result) != 81 {
		t.Errorf("got %d values, want 81", len(result))
	}
}
