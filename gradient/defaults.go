package gradient

import (
	"slices"
)

// Built-in theme tables used when theme does not configure a section.
var (
	defaultDirections = Table{
		{"t", "to top"},
		{"tr", "to top right"},
		{"r", "to right"},
		{"br", "to bottom right"},
		{"b", "to bottom"},
		{"bl", "to bottom left"},
		{"l", "to left"},
		{"tl", "to top left"},
	}
	defaultShapes               = Table{{"default", "ellipse"}}
	defaultRadialSizes          = Table{{"default", "closest-side"}}
	defaultRepeatingRadialSizes = Table{{"default", "farthest-corner"}}
	defaultPositions            = Table{
		{"default", "center"},
		{"t", "top"},
		{"tr", "top right"},
		{"r", "right"},
		{"br", "bottom right"},
		{"b", "bottom"},
		{"bl", "bottom left"},
		{"l", "left"},
		{"tl", "top left"},
	}
	defaultVariants = []string{"responsive"}
)

// CSS intrinsic defaults of gradient functions. Values equal to these are
// left out of generated declarations.
const (
	cssDefaultShape = "ellipse"
	cssDefaultSize  = "farthest-corner"
)

var (
	cssDefaultDirections = []string{"to bottom", "180deg", "0.5turn", "200grad", "3.1416rad"}
	cssDefaultPositions  = []string{"center", "center center", "50%", "50% 50%", "center 50%", "50% center"}
)

// IsDefaultDirection reports whether linear gradient direction is equivalent
// to the one gradient function uses when direction is omitted.
func IsDefaultDirection(direction string) bool {
	return slices.Contains(cssDefaultDirections, direction)
}

// IsDefaultShape reports whether radial gradient shape could be omitted.
func IsDefaultShape(shape string) bool {
	return shape == cssDefaultShape
}

// IsDefaultSize reports whether radial gradient size matches family's
// intrinsic size and could be omitted.
func IsDefaultSize(size, intrinsic string) bool {
	return size == intrinsic
}

// IsDefaultPosition reports whether radial gradient position is one of the
// spellings of center.
func IsDefaultPosition(position string) bool {
	return slices.Contains(cssDefaultPositions, position)
}
