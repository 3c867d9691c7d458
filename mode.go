package sr

import "fmt"

// FillMode selects whether polygons are filled or outlined.
type FillMode uint8

const (
	// FillSolid fills the interior, edges included.
	FillSolid FillMode = iota

	// FillWireFrame draws only the edges with 1-pixel lines.
	FillWireFrame
)

// String returns the mode name.
func (m FillMode) String() string {
	switch m {
	case FillSolid:
		return "Solid"
	case FillWireFrame:
		return "WireFrame"
	default:
		return fmt.Sprintf("FillMode(%d)", uint8(m))
	}
}

// AddressMode selects how texel coordinates outside an image are resolved.
type AddressMode uint8

const (
	// AddressWrap tiles the image periodically, negative coordinates
	// included.
	AddressWrap AddressMode = iota

	// AddressMirror tiles the image, flipping every other tile.
	AddressMirror

	// AddressClamp repeats the edge texels.
	AddressClamp
)

// String returns the mode name.
func (m AddressMode) String() string {
	switch m {
	case AddressWrap:
		return "Wrap"
	case AddressMirror:
		return "Mirror"
	case AddressClamp:
		return "Clamp"
	default:
		return fmt.Sprintf("AddressMode(%d)", uint8(m))
	}
}
