// Package curves implements the secp256k1 group law in affine coordinates on
// top of the field package.
package curves

import (
	"crypto/elliptic"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-affine-secp256k1/internal/crypto/field"
)

// Curve parameters taken from SEC 2 section 2.4.1.
var (
	curveA = field.Zero()
	curveB = field.NewElementFromUint(7)
	genX   = field.MustElementFromHex("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	genY   = field.MustElementFromHex("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")
)

var secp256k1Curve = NewSecp256k1()

// Curve describes a short Weierstrass curve y² = x³ + ax + b together with its
// generator. It is immutable and safe for concurrent use.
type Curve struct {
	a, b field.Element
	gen  Point
}

// NewSecp256k1 returns the secp256k1 curve descriptor.
func NewSecp256k1() Curve {
	return Curve{
		a:   curveA,
		b:   curveB,
		gen: NewPointUnchecked(genX, genY),
	}
}

// A returns the curve coefficient a.
func (c Curve) A() field.Element {
	return c.a
}

// B returns the curve coefficient b.
func (c Curve) B() field.Element {
	return c.b
}

// Generator returns the base point G.
func (c Curve) Generator() Point {
	return c.gen
}

// Params returns the standard library description of the curve, including the
// field prime and group order.
func (c Curve) Params() *elliptic.CurveParams {
	return secp256k1.S256().Params()
}

// Contains reports whether p satisfies the curve equation.
// The identity encoding (0, 0) is not on the curve.
func (c Curve) Contains(p Point) bool {
	return p.y.Square().Equal(c.rhs(p.x))
}

// rhs evaluates x³ + ax + b.
func (c Curve) rhs(x field.Element) field.Element {
	return x.Square().Mul(x).Add(c.a.Mul(x)).Add(c.b)
}
