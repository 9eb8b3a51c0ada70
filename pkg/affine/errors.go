package affine

import "github.com/smallyu/go-affine-secp256k1/internal/crypto/curves"

type (
	// ErrorKind identifies a kind of point decoding error.
	ErrorKind = curves.ErrorKind

	// Error describes a point decoding failure and wraps its ErrorKind.
	Error = curves.Error
)

// Errors returned by Curve.ParsePoint. Match them with errors.Is.
const (
	ErrPointInvalidLen    = curves.ErrPointInvalidLen
	ErrPointInvalidFormat = curves.ErrPointInvalidFormat
	ErrPointXTooBig       = curves.ErrPointXTooBig
	ErrPointYTooBig       = curves.ErrPointYTooBig
	ErrPointNotOnCurve    = curves.ErrPointNotOnCurve
)
