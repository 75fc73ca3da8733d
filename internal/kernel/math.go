package kernel

import "math"

// safeAtan2 evaluates the modified arctangent of y/x proposed by Fukushima
// (2020, eq. 12). Unlike math.Atan2 it returns atan(y/x) with explicit
// branches at x == 0, which keeps the vertex sums consistent with Poisson's
// equation for points inside the prism.
func safeAtan2(y, x float64) float64 {
	if x != 0 {
		return math.Atan(y / x)
	}
	switch {
	case y > 0:
		return math.Pi / 2
	case y < 0:
		return -math.Pi / 2
	}
	return 0
}

// safeLog evaluates log(x + r) where r = sqrt(x^2 + y^2 + z^2).
//
// Two fixes over the plain logarithm: the degenerate rays where r == 0 or
// the point lies on the negative x axis (x + r == 0) return zero, since the
// factors multiplying the logarithm in the prism formulas vanish there; and
// for x < 0 the argument is rewritten as (y^2 + z^2)/(r - x), which avoids
// the catastrophic cancellation of x + r near that axis.
func safeLog(x, y, z, r float64) float64 {
	if r == 0 {
		return 0
	}
	if x < 0 {
		d := y*y + z*z
		if d == 0 {
			return 0
		}
		return math.Log(d / (r - x))
	}
	return math.Log(x + r)
}
