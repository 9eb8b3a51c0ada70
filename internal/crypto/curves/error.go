package curves

// ErrorKind identifies a kind of error. It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrPointInvalidLen is returned when an encoded point is not one of the
	// identity, compressed or uncompressed lengths.
	ErrPointInvalidLen = ErrorKind("ErrPointInvalidLen")

	// ErrPointInvalidFormat is returned when the format byte of an encoded
	// point does not match its length.
	ErrPointInvalidFormat = ErrorKind("ErrPointInvalidFormat")

	// ErrPointXTooBig is returned when the x coordinate of an encoded point
	// is greater than or equal to the field prime.
	ErrPointXTooBig = ErrorKind("ErrPointXTooBig")

	// ErrPointYTooBig is returned when the y coordinate of an encoded point
	// is greater than or equal to the field prime.
	ErrPointYTooBig = ErrorKind("ErrPointYTooBig")

	// ErrPointNotOnCurve is returned when the coordinates of an encoded point
	// do not satisfy the curve equation.
	ErrPointNotOnCurve = ErrorKind("ErrPointNotOnCurve")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to point decoding. It has full support for
// errors.Is and errors.As, so the caller can ascertain the specific reason for
// the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// pointError creates an Error given a set of arguments.
func pointError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
