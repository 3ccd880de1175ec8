package ecc

import "errors"

// Error kinds for the curve boundary, per spec.md §7. These are
// deliberately coarse: this package only fully specifies affine
// short-Weierstrass arithmetic, so anything else is rejected at the
// boundary rather than partially supported.
var (
	// ErrPointsCoordMismatch is returned when an operation is given a
	// point that is not in affine coordinates, which includes two points
	// stored in different coordinate systems.
	ErrPointsCoordMismatch = errors.New("ecc: points use different coordinate systems")

	// ErrPointsExpressionMismatch names the case of two points belonging
	// to curves of different expressions. Every operand is first checked
	// to be short-Weierstrass, so a mixed pair (e.g. one short-Weierstrass,
	// one Montgomery) is reported as ErrCurveUnsupportedExpression and no
	// current operation returns this error.
	ErrPointsExpressionMismatch = errors.New("ecc: points use different curve expressions")

	// ErrCurveUnsupportedExpression is returned for any curve expression
	// other than short-Weierstrass; only it is fully specified.
	ErrCurveUnsupportedExpression = errors.New("ecc: curve expression not supported")

	// ErrInvalidPoint is returned by ScalarMul (and so BaseScalarMul) when
	// the point does not satisfy the curve's defining equation. Sum,
	// Double and Inverse do not check this, and no operation checks which
	// curve a point's Curve field names.
	ErrInvalidPoint = errors.New("ecc: invalid point")
)
