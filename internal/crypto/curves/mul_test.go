package curves

import (
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-affine-secp256k1/internal/crypto/field"
)

func scalar(n uint32) field.Scalar {
	return field.NewScalarFromUint(n)
}

func TestVarBaseSmallScalars(t *testing.T) {
	c := NewSecp256k1()
	g := c.Generator()

	assert.True(t, c.VarBase(g, scalar(0)).IsIdentity())
	assert.True(t, c.VarBase(g, scalar(1)).Equal(g))
	assert.True(t, c.VarBase(g, scalar(2)).Equal(c.Add(g, g)))
	assert.True(t, c.VarBase(g, scalar(3)).Equal(threeG))

	five := Identity()
	for i := 0; i < 5; i++ {
		five = c.Add(five, g)
	}
	assert.True(t, five.Equal(fiveG))
	assert.True(t, c.VarBase(g, scalar(5)).Equal(five))
}

func TestVarBaseIdentity(t *testing.T) {
	c := NewSecp256k1()

	assert.True(t, c.VarBase(Identity(), scalar(0)).IsIdentity())
	assert.True(t, c.VarBase(Identity(), scalar(12345)).IsIdentity())
	assert.True(t, c.VarBase(Identity(), randomScalar(t)).IsIdentity())

	p := randomPoint(t, c)
	assert.True(t, c.VarBase(p, scalar(0)).IsIdentity())
	assert.True(t, c.VarBase(p, scalar(1)).Equal(p))
}

func TestFixedBase(t *testing.T) {
	c := NewSecp256k1()

	assert.True(t, c.FixedBase(scalar(0)).IsIdentity())
	assert.True(t, c.FixedBase(scalar(1)).Equal(c.Generator()))
	assert.True(t, c.FixedBase(scalar(2)).Equal(c.Add(c.Generator(), c.Generator())))
	assert.True(t, c.FixedBase(scalar(2)).Equal(c.Double(c.Generator())))
	assert.True(t, c.FixedBase(scalar(5)).Equal(fiveG))
}

func TestFixedBaseGroupOrder(t *testing.T) {
	c := NewSecp256k1()
	n := secp256k1.S256().N

	// n*G does not fit in a field.Scalar, so use the base field element n.
	nElem, ok := field.NewElementFromBytes(n.Bytes())
	require.True(t, ok)
	assert.True(t, c.FixedBase(nElem).IsIdentity())

	nm1 := scalar(1).Neg()
	assert.True(t, c.FixedBase(nm1).Equal(c.Generator().Negate()))

	np1, ok := field.NewElementFromBytes(new(big.Int).Add(n, big.NewInt(1)).Bytes())
	require.True(t, ok)
	assert.True(t, c.FixedBase(np1).Equal(c.Generator()))
}

func TestFixedBaseMatchesDcrd(t *testing.T) {
	c := NewSecp256k1()

	for i := 0; i < 4; i++ {
		k := randomScalar(t)
		assert.True(t, c.FixedBase(k).Equal(dcrdBaseMult(k)), "k = %s", k)
	}
}

func TestScalarMulDistributes(t *testing.T) {
	c := NewSecp256k1()
	a, b := randomScalar(t), randomScalar(t)
	p := randomPoint(t, c)

	// (a+b)P = aP + bP
	assert.True(t, c.VarBase(p, a.Add(b)).Equal(c.Add(c.VarBase(p, a), c.VarBase(p, b))))

	// a(bG) = (ab)G
	assert.True(t, c.VarBase(c.FixedBase(b), a).Equal(c.FixedBase(a.Mul(b))))

	// (-a)P = -(aP)
	assert.True(t, c.VarBase(p, a.Neg()).Equal(c.VarBase(p, a).Negate()))
}

func TestVarBaseWithFieldElementScalar(t *testing.T) {
	c := NewSecp256k1()
	k := field.NewElementFromUint(5)
	assert.True(t, c.VarBase(c.Generator(), k).Equal(fiveG))
}
