package benchmark

import (
	"crypto/rand"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-affine-secp256k1/pkg/affine"
)

// setupPoints returns n random multiples of G.
func setupPoints(b *testing.B, c affine.Curve, n int) []affine.Point {
	points := make([]affine.Point, n)
	for i := range points {
		k, err := affine.RandomScalar(rand.Reader)
		if err != nil {
			b.Fatal(err)
		}
		points[i] = c.FixedBase(k)
	}
	return points
}

// BenchmarkAdd benchmarks generic two-point addition.
func BenchmarkAdd(b *testing.B) {
	c := affine.NewCurve()
	pts := setupPoints(b, c, 2)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		c.Add(pts[0], pts[1])
	}
}

// BenchmarkDouble benchmarks point doubling.
func BenchmarkDouble(b *testing.B) {
	c := affine.NewCurve()
	pts := setupPoints(b, c, 1)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		c.Double(pts[0])
	}
}

// BenchmarkFixedBase benchmarks k*G with a random k.
func BenchmarkFixedBase(b *testing.B) {
	c := affine.NewCurve()
	k, err := affine.RandomScalar(rand.Reader)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		c.FixedBase(k)
	}
}

// BenchmarkFixedBaseSmallScalar shows that cost does not depend on the
// magnitude of k.
func BenchmarkFixedBaseSmallScalar(b *testing.B) {
	c := affine.NewCurve()
	k := affine.NewScalarFromUint(1)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		c.FixedBase(k)
	}
}

// BenchmarkVarBase benchmarks k*P for a random point P.
func BenchmarkVarBase(b *testing.B) {
	c := affine.NewCurve()
	pts := setupPoints(b, c, 1)
	k, err := affine.RandomScalar(rand.Reader)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		c.VarBase(pts[0], k)
	}
}

// BenchmarkJacobianBaseMult is the dcrd Jacobian baseline for comparison.
func BenchmarkJacobianBaseMult(b *testing.B) {
	k, err := affine.RandomScalar(rand.Reader)
	if err != nil {
		b.Fatal(err)
	}
	kb := k.Bytes()
	var s secp256k1.ModNScalar
	s.SetBytes(&kb)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		var r secp256k1.JacobianPoint
		secp256k1.ScalarBaseMultNonConst(&s, &r)
		r.ToAffine()
	}
}
