package kernel

// OnEastingEdge reports whether the point lies on one of the four prism
// edges parallel to the easting axis. Bounds are inclusive, so every prism
// vertex is on an edge of all three orientations.
func OnEastingEdge(easting, northing, upward float64, p Prism) bool {
	return p.West <= easting && easting <= p.East &&
		(northing == p.South || northing == p.North) &&
		(upward == p.Bottom || upward == p.Top)
}

// OnNorthingEdge reports whether the point lies on one of the four prism
// edges parallel to the northing axis.
func OnNorthingEdge(easting, northing, upward float64, p Prism) bool {
	return p.South <= northing && northing <= p.North &&
		(easting == p.West || easting == p.East) &&
		(upward == p.Bottom || upward == p.Top)
}

// OnUpwardEdge reports whether the point lies on one of the four prism
// edges parallel to the upward axis.
func OnUpwardEdge(easting, northing, upward float64, p Prism) bool {
	return p.Bottom <= upward && upward <= p.Top &&
		(easting == p.West || easting == p.East) &&
		(northing == p.South || northing == p.North)
}
