package curves

import (
	"fmt"

	"github.com/smallyu/go-affine-secp256k1/internal/crypto/field"
)

const (
	// IdentityLen is the length of the encoded point at infinity.
	IdentityLen = 1

	// CompressedLen is the length of a compressed point.
	CompressedLen = 33

	// UncompressedLen is the length of an uncompressed point.
	UncompressedLen = 65

	formatIdentity       byte = 0x00
	formatCompressedEven byte = 0x02
	formatCompressedOdd  byte = 0x03
	formatUncompressed   byte = 0x04
)

// SerializeUncompressed encodes p as 0x04 || x || y, or a single 0x00 byte for
// the identity.
func (p Point) SerializeUncompressed() []byte {
	if p.IsIdentity() {
		return []byte{formatIdentity}
	}
	x, y := p.x.Bytes(), p.y.Bytes()
	b := make([]byte, 0, UncompressedLen)
	b = append(b, formatUncompressed)
	b = append(b, x[:]...)
	return append(b, y[:]...)
}

// SerializeCompressed encodes p as 0x02 or 0x03 (parity of y) || x, or a
// single 0x00 byte for the identity.
func (p Point) SerializeCompressed() []byte {
	if p.IsIdentity() {
		return []byte{formatIdentity}
	}
	format := formatCompressedEven
	if p.y.IsOdd() {
		format = formatCompressedOdd
	}
	x := p.x.Bytes()
	b := make([]byte, 0, CompressedLen)
	b = append(b, format)
	return append(b, x[:]...)
}

// ParsePoint decodes a point in any of the forms produced by
// SerializeCompressed and SerializeUncompressed. The result is always either
// the identity or a point on c.
func (c Curve) ParsePoint(b []byte) (Point, error) {
	switch len(b) {
	case IdentityLen:
		if b[0] != formatIdentity {
			str := fmt.Sprintf("malformed identity: format byte %#x", b[0])
			return Point{}, pointError(ErrPointInvalidFormat, str)
		}
		return Identity(), nil

	case CompressedLen:
		format := b[0]
		if format != formatCompressedEven && format != formatCompressedOdd {
			str := fmt.Sprintf("malformed compressed point: format byte %#x",
				format)
			return Point{}, pointError(ErrPointInvalidFormat, str)
		}
		x, ok := field.NewElementFromBytes(b[1:33])
		if !ok {
			return Point{}, pointError(ErrPointXTooBig,
				"x coordinate is not less than the field prime")
		}
		y, ok := c.rhs(x).Sqrt()
		if !ok {
			str := fmt.Sprintf("no point on the curve has x = %s", x)
			return Point{}, pointError(ErrPointNotOnCurve, str)
		}
		if y.IsOdd() != (format == formatCompressedOdd) {
			y = y.Neg()
		}
		return Point{x: x, y: y}, nil

	case UncompressedLen:
		if b[0] != formatUncompressed {
			str := fmt.Sprintf("malformed uncompressed point: format byte %#x",
				b[0])
			return Point{}, pointError(ErrPointInvalidFormat, str)
		}
		x, ok := field.NewElementFromBytes(b[1:33])
		if !ok {
			return Point{}, pointError(ErrPointXTooBig,
				"x coordinate is not less than the field prime")
		}
		y, ok := field.NewElementFromBytes(b[33:65])
		if !ok {
			return Point{}, pointError(ErrPointYTooBig,
				"y coordinate is not less than the field prime")
		}
		p := Point{x: x, y: y}
		if !c.Contains(p) {
			str := fmt.Sprintf("point %s is not on the curve", p)
			return Point{}, pointError(ErrPointNotOnCurve, str)
		}
		return p, nil
	}

	str := fmt.Sprintf("malformed point: invalid length %d", len(b))
	return Point{}, pointError(ErrPointInvalidLen, str)
}
