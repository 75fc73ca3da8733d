// Package export renders gridded forward-model results to SVG.
package export

import (
	"fmt"
	"math"
	"strings"
)

// HeatmapSVG renders a gridded result as an SVG cell map. Values must be
// flattened northing-major with rows*cols entries; the first row is drawn at
// the bottom so northing grows upward like on a map. The color ramp is
// diverging and symmetric around zero, which is the natural reference for
// anomaly fields.
func HeatmapSVG(values []float64, rows, cols int, unit string, cell float64) (string, error) {
	if rows*cols != len(values) {
		return "", fmt.Errorf("grid shape %dx%d does not match %d values", rows, cols, len(values))
	}
	if cell <= 0 {
		cell = 8
	}

	maxAbs := 0.0
	for _, v := range values {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs == 0 {
		maxAbs = 1
	}

	legend := 28.0
	width := float64(cols) * cell
	height := float64(rows)*cell + legend

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, width, height, width, height))

	for j := 0; j < rows; j++ {
		y := float64(rows-1-j) * cell
		for i := 0; i < cols; i++ {
			v := values[j*cols+i]
			sb.WriteString(fmt.Sprintf("<rect x=\"%.1f\" y=\"%.1f\" width=\"%.1f\" height=\"%.1f\" fill=\"%s\"/>\n",
				float64(i)*cell, y, cell, cell, divergingColor(v/maxAbs)))
		}
	}

	sb.WriteString(fmt.Sprintf(`<text x="4" y="%.0f" font-family="monospace" font-size="12" fill="#333333">-%.4g .. +%.4g %s</text>
`, height-10, maxAbs, maxAbs, unit))
	sb.WriteString("</svg>\n")
	return sb.String(), nil
}

// divergingColor maps t in [-1, 1] to a blue-white-red ramp.
func divergingColor(t float64) string {
	if t < -1 {
		t = -1
	}
	if t > 1 {
		t = 1
	}
	var r, g, b int
	if t < 0 {
		// white toward blue
		f := -t
		r = lerp(255, 33, f)
		g = lerp(255, 102, f)
		b = lerp(255, 172, f)
	} else {
		// white toward red
		r = lerp(255, 178, t)
		g = lerp(255, 24, t)
		b = lerp(255, 43, t)
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func lerp(from, to int, f float64) int {
	return from + int(math.Round(f*float64(to-from)))
}
