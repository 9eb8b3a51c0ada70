package curves

import (
	"fmt"

	"github.com/smallyu/go-affine-secp256k1/internal/crypto/field"
)

// Point is an affine point on secp256k1.
//
// The identity (point at infinity) is encoded as (0, 0). Any point whose y
// coordinate is zero is treated as the identity; no point of the prime-order
// secp256k1 group has y = 0, so the two never collide for curve points.
type Point struct {
	x, y field.Element
}

// NewPointUnchecked returns (x, y) without checking curve membership.
// It must only be used for coordinates that are already known to be valid.
func NewPointUnchecked(x, y field.Element) Point {
	return Point{x: x, y: y}
}

// NewPointChecked returns (x, y) and true if it satisfies y² = x³ + 7.
// It is the constructor to use for untrusted coordinates.
func NewPointChecked(x, y field.Element) (Point, bool) {
	p := Point{x: x, y: y}
	if !secp256k1Curve.Contains(p) {
		return Point{}, false
	}
	return p, true
}

// Identity returns the point at infinity.
func Identity() Point {
	return Point{}
}

// X returns the x coordinate.
func (p Point) X() field.Element {
	return p.x
}

// Y returns the y coordinate.
func (p Point) Y() field.Element {
	return p.y
}

// Equal reports whether both coordinates of p and q are equal.
func (p Point) Equal(q Point) bool {
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

// IsIdentity reports whether p is the point at infinity.
func (p Point) IsIdentity() bool {
	return p.y.IsZero()
}

// Negate returns (x, -y). The identity negates to itself.
func (p Point) Negate() Point {
	return Point{x: p.x, y: p.y.Neg()}
}

func (p Point) String() string {
	if p.IsIdentity() {
		return "identity"
	}
	return fmt.Sprintf("(%s, %s)", p.x, p.y)
}
