package curves

import (
	"crypto/elliptic"
	"math/big"

	"github.com/smallyu/go-affine-secp256k1/internal/crypto/field"
)

// EllipticCurve exposes a Curve through the crypto/elliptic Curve interface.
// As in crypto/elliptic, (0, 0) stands for the point at infinity.
type EllipticCurve struct {
	curve Curve
}

var _ elliptic.Curve = (*EllipticCurve)(nil)

// Elliptic returns an adaptor implementing elliptic.Curve on top of c.
func (c Curve) Elliptic() *EllipticCurve {
	return &EllipticCurve{curve: c}
}

func (e *EllipticCurve) Params() *elliptic.CurveParams {
	return e.curve.Params()
}

// IsOnCurve reports whether (x, y) is a canonical point on the curve.
func (e *EllipticCurve) IsOnCurve(x, y *big.Int) bool {
	p := e.Params().P
	if x.Sign() < 0 || x.Cmp(p) >= 0 || y.Sign() < 0 || y.Cmp(p) >= 0 {
		return false
	}
	return e.curve.Contains(e.toPoint(x, y))
}

func (e *EllipticCurve) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	return fromPoint(e.curve.Add(e.toPoint(x1, y1), e.toPoint(x2, y2)))
}

func (e *EllipticCurve) Double(x1, y1 *big.Int) (*big.Int, *big.Int) {
	return fromPoint(e.curve.Double(e.toPoint(x1, y1)))
}

// ScalarMult returns k*(x, y) where k is a big-endian integer.
func (e *EllipticCurve) ScalarMult(x, y *big.Int, k []byte) (*big.Int, *big.Int) {
	return fromPoint(e.curve.VarBase(e.toPoint(x, y), e.toScalar(k)))
}

// ScalarBaseMult returns k*G where k is a big-endian integer.
func (e *EllipticCurve) ScalarBaseMult(k []byte) (*big.Int, *big.Int) {
	return fromPoint(e.curve.FixedBase(e.toScalar(k)))
}

// toPoint reduces the coordinates modulo p; it does not check membership.
func (e *EllipticCurve) toPoint(x, y *big.Int) Point {
	return NewPointUnchecked(e.toElement(x), e.toElement(y))
}

func (e *EllipticCurve) toElement(v *big.Int) field.Element {
	var buf [field.ByteLen]byte
	new(big.Int).Mod(v, e.Params().P).FillBytes(buf[:])
	el, _ := field.NewElementFromBytes(buf[:])
	return el
}

// toScalar reduces k modulo the group order, which leaves k*P unchanged.
func (e *EllipticCurve) toScalar(k []byte) field.Scalar {
	var buf [field.ByteLen]byte
	kk := new(big.Int).SetBytes(k)
	kk.Mod(kk, e.Params().N).FillBytes(buf[:])
	s, _ := field.NewScalarFromBytes(buf[:])
	return s
}

func fromPoint(p Point) (*big.Int, *big.Int) {
	x, y := p.x.Bytes(), p.y.Bytes()
	return new(big.Int).SetBytes(x[:]), new(big.Int).SetBytes(y[:])
}
