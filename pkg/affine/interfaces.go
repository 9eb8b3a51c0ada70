package affine

// Group is the set of group operations offered by Curve. Code that only needs
// the group law can depend on this interface instead of the concrete curve.
type Group interface {
	// Generator returns the base point G.
	Generator() Point

	// Contains reports whether p satisfies the curve equation.
	Contains(p Point) bool

	// Add returns p + q under the group law.
	Add(p, q Point) Point

	// Double returns p + p.
	Double(p Point) Point

	// Sub returns p - q.
	Sub(p, q Point) Point

	// FixedBase returns k*G.
	FixedBase(k Multiplier) Point

	// VarBase returns k*base.
	VarBase(base Point, k Multiplier) Point

	// ParsePoint decodes a SEC 1 encoded point and validates it.
	ParsePoint(b []byte) (Point, error)
}

var _ Group = Curve{}
