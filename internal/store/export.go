package store

import (
	"encoding/json"
	"io"

	"github.com/aprato/gravbox/internal/grav"
)

// ExportData bundles a run for machine consumption.
type ExportData struct {
	Meta     RunMetadata `json:"meta"`
	Easting  []float64   `json:"easting"`
	Northing []float64   `json:"northing"`
	Upward   []float64   `json:"upward"`
	Values   []float64   `json:"values"`
}

// ExportJSON writes a full run (metadata plus per-point values) as indented
// JSON.
func ExportJSON(w io.Writer, meta RunMetadata, points grav.Points, values []float64) error {
	data := ExportData{
		Meta:     meta,
		Easting:  points.Easting,
		Northing: points.Northing,
		Upward:   points.Upward,
		Values:   values,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
