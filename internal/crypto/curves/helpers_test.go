package curves

import (
	"crypto/rand"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-affine-secp256k1/internal/crypto/field"
)

// Multiples of G, computed independently.
var (
	twoG = NewPointUnchecked(
		field.MustElementFromHex("c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5"),
		field.MustElementFromHex("1ae168fea63dc339a3c58419466ceaeef7f632653266d0e1236431a950cfe52a"),
	)
	threeG = NewPointUnchecked(
		field.MustElementFromHex("f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9"),
		field.MustElementFromHex("388f7b0f632de8140fe337e62a37f3566500a99934c2231b6cb9fd7584b8e672"),
	)
	fiveG = NewPointUnchecked(
		field.MustElementFromHex("2f8bde4d1a07209355b4a7250a5c5128e88b84bddc619ab7cba8d569b240efe4"),
		field.MustElementFromHex("d8ac222636e5e3d6d4dba9dda6c9c426f788271bab0d6840dca87d3aa6ac62d6"),
	)
)

func randomScalar(t testing.TB) field.Scalar {
	t.Helper()
	k, err := field.RandomScalar(rand.Reader)
	require.NoError(t, err)
	return k
}

// randomPoint returns k*G for a random k.
func randomPoint(t testing.TB, c Curve) Point {
	t.Helper()
	return c.FixedBase(randomScalar(t))
}

// dcrdBaseMult computes k*G with the dcrd Jacobian implementation.
func dcrdBaseMult(k field.Scalar) Point {
	var s secp256k1.ModNScalar
	b := k.Bytes()
	s.SetBytes(&b)

	var r secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&s, &r)
	r.ToAffine()

	x, _ := field.NewElementFromBytes(r.X.Bytes()[:])
	y, _ := field.NewElementFromBytes(r.Y.Bytes()[:])
	return NewPointUnchecked(x, y)
}
