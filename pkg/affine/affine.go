// Package affine provides secp256k1 group arithmetic in affine coordinates.
//
// Points are immutable values. The point at infinity is represented by
// (0, 0) and recognised by its zero y coordinate. Construct points from
// untrusted coordinates with PointFromRawChecked or Curve.ParsePoint; the
// group operations do not re-validate their inputs.
//
// All functions and methods are pure and safe for concurrent use.
package affine

import (
	"io"

	"github.com/smallyu/go-affine-secp256k1/internal/crypto/curves"
	"github.com/smallyu/go-affine-secp256k1/internal/crypto/field"
)

type (
	// FieldElement is an element of the secp256k1 base field.
	FieldElement = field.Element

	// Scalar is an integer modulo the group order.
	Scalar = field.Scalar

	// Multiplier is anything that decomposes into 256 bits, least-significant
	// first. Both Scalar and FieldElement are Multipliers.
	Multiplier = curves.Scalar

	// Point is an affine curve point or the identity.
	Point = curves.Point

	// Curve is the secp256k1 parameter set and group law.
	Curve = curves.Curve

	// EllipticCurve adapts a Curve to crypto/elliptic.
	EllipticCurve = curves.EllipticCurve
)

// NewCurve returns the secp256k1 curve descriptor.
func NewCurve() Curve {
	return curves.NewSecp256k1()
}

// NewFieldElement interprets b as a big-endian integer of at most 32 bytes and
// reports whether it is a canonical field element.
func NewFieldElement(b []byte) (FieldElement, bool) {
	return field.NewElementFromBytes(b)
}

// NewFieldElementFromUint returns the field element n.
func NewFieldElementFromUint(n uint16) FieldElement {
	return field.NewElementFromUint(n)
}

// NewScalar interprets b as a big-endian integer of at most 32 bytes and
// reports whether it is less than the group order.
func NewScalar(b []byte) (Scalar, bool) {
	return field.NewScalarFromBytes(b)
}

// NewScalarFromUint returns the scalar n.
func NewScalarFromUint(n uint32) Scalar {
	return field.NewScalarFromUint(n)
}

// RandomScalar returns a uniformly random non-zero scalar read from r.
func RandomScalar(r io.Reader) (Scalar, error) {
	return field.RandomScalar(r)
}

// PointFromRawUnchecked returns (x, y) without validation.
func PointFromRawUnchecked(x, y FieldElement) Point {
	return curves.NewPointUnchecked(x, y)
}

// PointFromRawChecked returns (x, y) and true only if it lies on secp256k1.
func PointFromRawChecked(x, y FieldElement) (Point, bool) {
	return curves.NewPointChecked(x, y)
}

// Identity returns the point at infinity.
func Identity() Point {
	return curves.Identity()
}
