package curves

import (
	"github.com/smallyu/go-affine-secp256k1/internal/crypto/field"
)

// Scalar is a 256-bit multiplier. Bits must be least-significant first.
// Both field.Scalar and field.Element satisfy it.
type Scalar interface {
	Bits() [field.BitLen]bool
}

// FixedBase returns k*G.
func (c Curve) FixedBase(k Scalar) Point {
	return c.VarBase(c.gen, k)
}

// VarBase returns k*base by double-and-add.
//
// The loop always runs field.BitLen times and doubles the running base on
// every iteration, so the sequence of group operations depends only on which
// bits are set, never on the magnitude of k.
func (c Curve) VarBase(base Point, k Scalar) Point {
	bits := k.Bits()
	acc := Identity()
	for i := 0; i < field.BitLen; i++ {
		if bits[i] {
			acc = c.Add(acc, base)
		}
		base = c.Add(base, base)
	}
	return acc
}
