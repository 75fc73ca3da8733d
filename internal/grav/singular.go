package grav

// AnySingularPoint scans all observation points against all prisms for a
// location where the analytic formula of field is undefined: every prism
// vertex, the edges not aligned with a diagonal component's own axis, and
// for a non-diagonal component the edges aligned with the third axis. It
// short-circuits on the first hit and returns its point and prism indices.
//
// Scalar and first-derivative fields have no singular points, so the scan
// always reports false for them.
func AnySingularPoint(points Points, prisms []Prism, field Field) (point, prism int, found bool) {
	checks := fields[field].edges
	if len(checks) == 0 {
		return 0, 0, false
	}
	for l := 0; l < points.Len(); l++ {
		e, n, u := points.At(l)
		for m := range prisms {
			for _, onEdge := range checks {
				if onEdge(e, n, u, prisms[m]) {
					return l, m, true
				}
			}
		}
	}
	return 0, 0, false
}

// CheckSingularPoints is the strict variant of the scan: it returns a
// *SingularPointError for the first singular observation point instead of
// warning. Used by callers that prefer to reject a model outright.
func CheckSingularPoints(points Points, prisms []Prism, field Field) error {
	if l, m, found := AnySingularPoint(points, prisms, field); found {
		return &SingularPointError{Field: field, Point: l, Prism: m}
	}
	return nil
}

// warnSingularPoints runs the scan and forwards a single aggregate Warning
// to onWarning. The computation is expected to proceed regardless; values at
// the reported location are produced by the kernels but unreliable.
func warnSingularPoints(points Points, prisms []Prism, field Field, onWarning func(Warning)) {
	if onWarning == nil {
		return
	}
	if l, m, found := AnySingularPoint(points, prisms, field); found {
		onWarning(Warning{Field: field, Point: l, Prism: m})
	}
}
