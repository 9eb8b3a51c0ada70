package curves

import (
	"github.com/smallyu/go-affine-secp256k1/internal/crypto/field"
)

var (
	two   = field.NewElementFromUint(2)
	three = field.NewElementFromUint(3)
)

// Add returns p + q.
//
// The cases are exclusive and checked in order: either operand is the
// identity, q is the inverse of p, p equals q, and finally two points with
// distinct x coordinates. Only the last two divide, and neither divides by
// zero when p and q are on the curve. Points are not re-validated here, so
// off-curve input yields meaningless output.
func (c Curve) Add(p, q Point) Point {
	switch {
	case p.IsIdentity():
		return q
	case q.IsIdentity():
		return p
	case p.x.Equal(q.x) && p.y.Equal(q.y.Neg()):
		return Identity()
	case p.Equal(q):
		return c.Double(p)
	}

	// λ = (y2 - y1) / (x2 - x1)
	lambda := q.y.Sub(p.y).Mul(q.x.Sub(p.x).Inverse())
	x3 := lambda.Square().Sub(p.x).Sub(q.x)
	y3 := lambda.Mul(p.x.Sub(x3)).Sub(p.y)
	return Point{x: x3, y: y3}
}

// Double returns 2p using the tangent line at p.
func (c Curve) Double(p Point) Point {
	if p.IsIdentity() {
		return Identity()
	}

	// λ = (3x² + a) / 2y
	lambda := three.Mul(p.x.Square()).Add(c.a).Mul(two.Mul(p.y).Inverse())
	x3 := lambda.Square().Sub(p.x).Sub(p.x)
	y3 := lambda.Mul(p.x.Sub(x3)).Sub(p.y)
	return Point{x: x3, y: y3}
}

// Sub returns p - q.
func (c Curve) Sub(p, q Point) Point {
	return c.Add(p, q.Negate())
}
