// Package kernel implements the closed-form solutions for the gravitational
// potential, acceleration and gravity-gradient tensor of a homogeneous
// right-rectangular prism in Cartesian coordinates.
//
// The solutions follow Nagy et al. (2000, 2002) and are valid on the entire
// domain, inside and outside the prism. Two modified transcendental
// functions keep the formulas finite on their removable singularities: the
// arctangent of Fukushima (2020, eq. 12), which makes the potential satisfy
// Poisson's equation inside the prism, and a logarithm that is rewritten for
// negative arguments and clamped to zero on the degenerate rays where the
// term it multiplies vanishes.
//
// All kernels return the field in SI units with the vertical axis pointing
// upward. Sign conventions for "downward" fields and conversion to mGal or
// Eötvös are the caller's concern.
//
// Tensor components are genuinely undefined on prism vertices and on some
// prism edges; there the kernels still return a finite number, but that
// number carries no physical meaning. Use the edge predicates in this
// package to detect such points.
package kernel
