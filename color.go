package mono

// Color is a binary pixel value. Black maps to a cleared bit, White to a
// set bit. How a panel displays a set bit (light-on-dark or dark-on-light)
// is a property of the hardware, not of this package.
type Color uint8

const (
	// Black clears the destination bit.
	Black Color = 0

	// White sets the destination bit.
	White Color = 1
)

// String returns the color name.
func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// RasterOp selects how a source bit (derived from a Color) combines with
// the destination bit when plotting.
type RasterOp uint8

const (
	// OpCopy writes the source bit unconditionally.
	OpCopy RasterOp = iota

	// OpXOR flips the destination bit when the source bit is set.
	OpXOR

	// OpAND clears the destination bit when the source bit is cleared.
	OpAND

	// OpOR sets the destination bit when the source bit is set.
	OpOR
)

// String returns the raster op name.
func (op RasterOp) String() string {
	switch op {
	case OpCopy:
		return "copy"
	case OpXOR:
		return "xor"
	case OpAND:
		return "and"
	case OpOR:
		return "or"
	default:
		return "unknown"
	}
}
