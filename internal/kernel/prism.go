package kernel

import "math"

// Gravitational constant in m^3 kg^-1 s^-2.
const GravitationalConst = 6.673e-11

// Prism is a right-rectangular volume bounded by six planes, in meters.
// Valid prisms satisfy West <= East, South <= North and Bottom <= Top.
type Prism struct {
	West   float64
	East   float64
	South  float64
	North  float64
	Bottom float64
	Top    float64
}

// Func evaluates the contribution of a single prism with the given density
// (kg/m^3) to one field component at the point (easting, northing, upward),
// in SI units with the upward convention.
type Func func(easting, northing, upward float64, p Prism, density float64) float64

// vertexSum evaluates f on the coordinates of the observation point shifted
// to each of the eight prism vertices, with the alternating signs of the
// triple definite integral.
func vertexSum(easting, northing, upward float64, p Prism, f func(x, y, z, r float64) float64) float64 {
	xs := [2]float64{p.East - easting, p.West - easting}
	ys := [2]float64{p.North - northing, p.South - northing}
	zs := [2]float64{p.Top - upward, p.Bottom - upward}

	var sum float64
	for i, x := range xs {
		for j, y := range ys {
			for k, z := range zs {
				r := math.Sqrt(x*x + y*y + z*z)
				if (i+j+k)%2 == 0 {
					sum += f(x, y, z, r)
				} else {
					sum -= f(x, y, z, r)
				}
			}
		}
	}
	return sum
}

// Potential returns the gravitational potential of the prism in J/kg.
func Potential(easting, northing, upward float64, p Prism, density float64) float64 {
	sum := vertexSum(easting, northing, upward, p, func(x, y, z, r float64) float64 {
		return x*y*safeLog(z, x, y, r) +
			y*z*safeLog(x, y, z, r) +
			x*z*safeLog(y, x, z, r) -
			0.5*x*x*safeAtan2(y*z, x*r) -
			0.5*y*y*safeAtan2(x*z, y*r) -
			0.5*z*z*safeAtan2(x*y, z*r)
	})
	return GravitationalConst * density * sum
}

// E returns the easting component of the gravitational acceleration in m/s^2.
func E(easting, northing, upward float64, p Prism, density float64) float64 {
	sum := vertexSum(easting, northing, upward, p, func(x, y, z, r float64) float64 {
		return -(y*safeLog(z, x, y, r) + z*safeLog(y, x, z, r) - x*safeAtan2(y*z, x*r))
	})
	return GravitationalConst * density * sum
}

// N returns the northing component of the gravitational acceleration in m/s^2.
func N(easting, northing, upward float64, p Prism, density float64) float64 {
	sum := vertexSum(easting, northing, upward, p, func(x, y, z, r float64) float64 {
		return -(x*safeLog(z, x, y, r) + z*safeLog(x, y, z, r) - y*safeAtan2(x*z, y*r))
	})
	return GravitationalConst * density * sum
}

// Up returns the upward component of the gravitational acceleration in
// m/s^2. Note the sign: below a positive density contrast this component is
// positive, above it negative.
func Up(easting, northing, upward float64, p Prism, density float64) float64 {
	sum := vertexSum(easting, northing, upward, p, func(x, y, z, r float64) float64 {
		return -(x*safeLog(y, x, z, r) + y*safeLog(x, y, z, r) - z*safeAtan2(x*y, z*r))
	})
	return GravitationalConst * density * sum
}

// EE returns the easting-easting tensor component in 1/s^2.
func EE(easting, northing, upward float64, p Prism, density float64) float64 {
	sum := vertexSum(easting, northing, upward, p, func(x, y, z, r float64) float64 {
		return -safeAtan2(y*z, x*r)
	})
	return GravitationalConst * density * sum
}

// NN returns the northing-northing tensor component in 1/s^2.
func NN(easting, northing, upward float64, p Prism, density float64) float64 {
	sum := vertexSum(easting, northing, upward, p, func(x, y, z, r float64) float64 {
		return -safeAtan2(x*z, y*r)
	})
	return GravitationalConst * density * sum
}

// UU returns the upward-upward tensor component in 1/s^2.
func UU(easting, northing, upward float64, p Prism, density float64) float64 {
	sum := vertexSum(easting, northing, upward, p, func(x, y, z, r float64) float64 {
		return -safeAtan2(x*y, z*r)
	})
	return GravitationalConst * density * sum
}

// EN returns the easting-northing tensor component in 1/s^2.
func EN(easting, northing, upward float64, p Prism, density float64) float64 {
	sum := vertexSum(easting, northing, upward, p, func(x, y, z, r float64) float64 {
		return safeLog(z, x, y, r)
	})
	return GravitationalConst * density * sum
}

// EU returns the easting-upward tensor component in 1/s^2.
func EU(easting, northing, upward float64, p Prism, density float64) float64 {
	sum := vertexSum(easting, northing, upward, p, func(x, y, z, r float64) float64 {
		return safeLog(y, x, z, r)
	})
	return GravitationalConst * density * sum
}

// NU returns the northing-upward tensor component in 1/s^2.
func NU(easting, northing, upward float64, p Prism, density float64) float64 {
	sum := vertexSum(easting, northing, upward, p, func(x, y, z, r float64) float64 {
		return safeLog(x, y, z, r)
	})
	return GravitationalConst * density * sum
}
