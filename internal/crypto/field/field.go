// Package field adapts the secp256k1 prime-field arithmetic of
// github.com/decred/dcrd/dcrec/secp256k1/v4 to immutable value types.
//
// Element works modulo the field prime p and is used for point coordinates.
// Scalar works modulo the group order n. Both decompose into BitLen bits with
// Bits, least-significant bit first.
package field

import (
	"encoding/hex"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	// ByteLen is the length of the big-endian encoding of an element.
	ByteLen = 32

	// BitLen is the number of bits produced by Bits.
	BitLen = 256
)

// Element is an element of the secp256k1 base field.
// The wrapped value is always normalized, which Equals, IsOdd and Bytes of
// the underlying FieldVal rely on.
type Element struct {
	v secp256k1.FieldVal
}

// Zero returns the additive identity.
func Zero() Element {
	return Element{}
}

// One returns the multiplicative identity.
func One() Element {
	return NewElementFromUint(1)
}

// NewElementFromUint returns the element n.
func NewElementFromUint(n uint16) Element {
	var e Element
	e.v.SetInt(n)
	return e
}

// NewElementFromBytes interprets b as a big-endian integer of at most 32 bytes.
// It returns false if b is too long or encodes a value >= p.
func NewElementFromBytes(b []byte) (Element, bool) {
	if len(b) > ByteLen {
		return Element{}, false
	}
	var e Element
	if overflow := e.v.SetByteSlice(b); overflow {
		return Element{}, false
	}
	e.v.Normalize()
	return e, true
}

// MustElementFromHex parses a big-endian hex string and panics if it is not a
// canonical field element. It is meant for constants.
func MustElementFromHex(s string) Element {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(fmt.Sprintf("field: invalid hex %q: %v", s, err))
	}
	e, ok := NewElementFromBytes(b)
	if !ok {
		panic(fmt.Sprintf("field: %q is not a canonical field element", s))
	}
	return e
}

// Equal reports whether e and o are the same element.
func (e Element) Equal(o Element) bool {
	return e.v.Equals(&o.v)
}

// IsZero reports whether e is zero.
func (e Element) IsZero() bool {
	return e.v.IsZero()
}

// IsOdd reports whether the canonical integer value of e is odd.
func (e Element) IsOdd() bool {
	return e.v.IsOdd()
}

// Neg returns -e.
func (e Element) Neg() Element {
	var r Element
	r.v.NegateVal(&e.v, 1).Normalize()
	return r
}

// Add returns e + o.
func (e Element) Add(o Element) Element {
	var r Element
	r.v.Add2(&e.v, &o.v).Normalize()
	return r
}

// Sub returns e - o.
func (e Element) Sub(o Element) Element {
	var r Element
	r.v.NegateVal(&o.v, 1).Add(&e.v).Normalize()
	return r
}

// Mul returns e * o.
func (e Element) Mul(o Element) Element {
	var r Element
	r.v.Mul2(&e.v, &o.v).Normalize()
	return r
}

// Square returns e².
func (e Element) Square() Element {
	var r Element
	r.v.SquareVal(&e.v).Normalize()
	return r
}

// Inverse returns the multiplicative inverse of e.
//
// Inverting zero is a programming error and panics.
func (e Element) Inverse() Element {
	if e.IsZero() {
		panic("field: inverse of zero")
	}
	var r Element
	r.v.Set(&e.v).Inverse().Normalize()
	return r
}

// Sqrt returns a square root of e and whether one exists.
func (e Element) Sqrt() (Element, bool) {
	var r Element
	if !r.v.SquareRootVal(&e.v) {
		return Element{}, false
	}
	r.v.Normalize()
	return r, true
}

// Bytes returns the 32-byte big-endian encoding of e.
func (e Element) Bytes() [ByteLen]byte {
	return *e.v.Bytes()
}

// Bits returns the binary expansion of e, least-significant bit first.
func (e Element) Bits() [BitLen]bool {
	return bitsOf(e.Bytes())
}

func (e Element) String() string {
	return e.v.String()
}

// bitsOf expands a big-endian encoding into bits, least-significant first.
func bitsOf(b [ByteLen]byte) [BitLen]bool {
	var bits [BitLen]bool
	for i := 0; i < BitLen; i++ {
		bits[i] = (b[ByteLen-1-i/8]>>(i%8))&1 == 1
	}
	return bits
}
