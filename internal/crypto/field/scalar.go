package field

import (
	"fmt"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Scalar is an integer modulo the secp256k1 group order n.
type Scalar struct {
	v secp256k1.ModNScalar
}

// NewScalarFromUint returns the scalar n.
func NewScalarFromUint(n uint32) Scalar {
	var s Scalar
	s.v.SetInt(n)
	return s
}

// NewScalarFromBytes interprets b as a big-endian integer of at most 32 bytes.
// It returns false if b is too long or encodes a value >= n.
func NewScalarFromBytes(b []byte) (Scalar, bool) {
	if len(b) > ByteLen {
		return Scalar{}, false
	}
	var s Scalar
	if overflow := s.v.SetByteSlice(b); overflow {
		return Scalar{}, false
	}
	return s, true
}

// Equal reports whether s and o are the same scalar.
func (s Scalar) Equal(o Scalar) bool {
	return s.v.Equals(&o.v)
}

// IsZero reports whether s is zero.
func (s Scalar) IsZero() bool {
	return s.v.IsZero()
}

// Add returns s + o mod n.
func (s Scalar) Add(o Scalar) Scalar {
	var r Scalar
	r.v.Add2(&s.v, &o.v)
	return r
}

// Mul returns s * o mod n.
func (s Scalar) Mul(o Scalar) Scalar {
	var r Scalar
	r.v.Mul2(&s.v, &o.v)
	return r
}

// Neg returns -s mod n.
func (s Scalar) Neg() Scalar {
	var r Scalar
	r.v.NegateVal(&s.v)
	return r
}

// Bytes returns the 32-byte big-endian encoding of s.
func (s Scalar) Bytes() [ByteLen]byte {
	return s.v.Bytes()
}

// Bits returns the binary expansion of s, least-significant bit first.
func (s Scalar) Bits() [BitLen]bool {
	return bitsOf(s.Bytes())
}

func (s Scalar) String() string {
	return s.v.String()
}

// RandomScalar draws a uniformly random non-zero scalar from r by rejection
// sampling.
func RandomScalar(r io.Reader) (Scalar, error) {
	var buf [ByteLen]byte
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return Scalar{}, fmt.Errorf("field: reading random scalar: %w", err)
		}
		s, ok := NewScalarFromBytes(buf[:])
		if ok && !s.IsZero() {
			return s, nil
		}
	}
}
