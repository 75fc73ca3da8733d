// Package model reads and writes prism model documents: YAML files
// describing a set of prisms with densities, the field to compute, and the
// observation points, either listed explicitly or generated from a regular
// grid.
package model

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aprato/gravbox/internal/grav"
)

// Document is one forward-model description. Exactly one of Points and Grid
// must be set.
type Document struct {
	Name      string      `yaml:"name,omitempty"`
	Field     string      `yaml:"field"`
	Prisms    [][]float64 `yaml:"prisms"`
	Densities []float64   `yaml:"densities"`
	Points    *PointList  `yaml:"points,omitempty"`
	Grid      *Grid       `yaml:"grid,omitempty"`
}

// PointList holds explicit observation coordinates, meters.
type PointList struct {
	Easting  []float64 `yaml:"easting"`
	Northing []float64 `yaml:"northing"`
	Upward   []float64 `yaml:"upward"`
}

// Grid describes a regular observation grid at constant height. Points are
// generated northing-major: all eastings of the southernmost row first.
type Grid struct {
	West    float64 `yaml:"west"`
	East    float64 `yaml:"east"`
	South   float64 `yaml:"south"`
	North   float64 `yaml:"north"`
	Spacing float64 `yaml:"spacing"`
	Height  float64 `yaml:"height"`
}

// Default returns the worked single-prism example: a buried block observed
// along a short easting profile 30 m above the surface.
func Default() *Document {
	return &Document{
		Name:      "worked-example",
		Field:     string(grav.GZ),
		Prisms:    [][]float64{{-34, 5, -18, 14, -345, -146}},
		Densities: []float64{2670},
		Points: &PointList{
			Easting:  []float64{-40, 0, 40},
			Northing: []float64{0, 0, 0},
			Upward:   []float64{30, 30, 30},
		},
	}
}

// Load reads and validates a model document.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc := &Document{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Save writes the document as YAML.
func Save(path string, doc *Document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the document structure. Geometry and singularity checks
// belong to the engine; this only rejects documents the engine cannot even
// be called with.
func (d *Document) Validate() error {
	if !grav.Field(d.Field).Valid() {
		return fmt.Errorf("%w: %q", grav.ErrUnknownField, d.Field)
	}
	for i, row := range d.Prisms {
		if len(row) != 6 {
			return fmt.Errorf("prism %d: want 6 boundaries (west, east, south, north, bottom, top), got %d", i, len(row))
		}
	}
	if len(d.Densities) != len(d.Prisms) {
		return fmt.Errorf("%w: %d densities for %d prisms",
			grav.ErrDensityMismatch, len(d.Densities), len(d.Prisms))
	}
	if (d.Points == nil) == (d.Grid == nil) {
		return errors.New("model needs exactly one of points and grid")
	}
	if d.Points != nil {
		if len(d.Points.Northing) != len(d.Points.Easting) || len(d.Points.Upward) != len(d.Points.Easting) {
			return fmt.Errorf("%w: easting %d, northing %d, upward %d", grav.ErrPointsMismatch,
				len(d.Points.Easting), len(d.Points.Northing), len(d.Points.Upward))
		}
	}
	if d.Grid != nil {
		if d.Grid.Spacing <= 0 {
			return fmt.Errorf("grid spacing must be positive, got %g", d.Grid.Spacing)
		}
		if d.Grid.West > d.Grid.East || d.Grid.South > d.Grid.North {
			return errors.New("grid extents are inverted")
		}
	}
	return nil
}

// FieldTag returns the document's field as an engine tag.
func (d *Document) FieldTag() grav.Field { return grav.Field(d.Field) }

// PrismModel converts the document's prism rows and densities to engine
// types.
func (d *Document) PrismModel() ([]grav.Prism, []float64) {
	prisms := make([]grav.Prism, len(d.Prisms))
	for i, row := range d.Prisms {
		prisms[i] = grav.Prism{
			West: row[0], East: row[1],
			South: row[2], North: row[3],
			Bottom: row[4], Top: row[5],
		}
	}
	densities := make([]float64, len(d.Densities))
	copy(densities, d.Densities)
	return prisms, densities
}

// ObservationPoints returns the observation coordinates, expanding the grid
// block if the document uses one.
func (d *Document) ObservationPoints() grav.Points {
	if d.Points != nil {
		return grav.Points{
			Easting:  d.Points.Easting,
			Northing: d.Points.Northing,
			Upward:   d.Points.Upward,
		}
	}
	return d.Grid.Expand()
}

// Shape returns the number of grid rows and columns, or (1, n) for explicit
// point lists, which plot as a single profile.
func (d *Document) Shape() (rows, cols int) {
	if d.Grid != nil {
		return d.Grid.shape()
	}
	return 1, len(d.Points.Easting)
}

// shape rounds the extent/spacing ratios so float noise (an extent of 1.0 at
// spacing 0.1 divides to 9.999...) cannot drop the last row or column.
func (g *Grid) shape() (rows, cols int) {
	cols = int(math.Round((g.East-g.West)/g.Spacing)) + 1
	rows = int(math.Round((g.North-g.South)/g.Spacing)) + 1
	return rows, cols
}

// Expand generates the flattened observation points of the grid,
// northing-major.
func (g *Grid) Expand() grav.Points {
	rows, cols := g.shape()
	n := rows * cols
	pts := grav.Points{
		Easting:  make([]float64, 0, n),
		Northing: make([]float64, 0, n),
		Upward:   make([]float64, 0, n),
	}
	for j := 0; j < rows; j++ {
		northing := g.South + float64(j)*g.Spacing
		for i := 0; i < cols; i++ {
			pts.Easting = append(pts.Easting, g.West+float64(i)*g.Spacing)
			pts.Northing = append(pts.Northing, northing)
			pts.Upward = append(pts.Upward, g.Height)
		}
	}
	return pts
}
