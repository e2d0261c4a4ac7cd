// Package common keeps enums shared by configuration and generator.
package common

//go:generate go tool go-enum --marshal --names

// Gradient family of border-image utilities.
// ENUM(linear, radial, repeating-linear, repeating-radial)
type Family int

// Section returns name of the theme and variants section configuring family.
func (f Family) Section() string {
	switch f {
	case FamilyLinear:
		return "linearBorderGradients"
	case FamilyRadial:
		return "radialBorderGradients"
	case FamilyRepeatingLinear:
		return "repeatingLinearBorderGradients"
	case FamilyRepeatingRadial:
		return "repeatingRadialBorderGradients"
	default:
		// this should never happen
		panic("unsupported gradient family requested")
	}
}

func (f Family) Radial() bool {
	return f == FamilyRadial || f == FamilyRepeatingRadial
}

func (f Family) Repeating() bool {
	return f == FamilyRepeatingLinear || f == FamilyRepeatingRadial
}

// Families returns all gradient families in generation order.
func Families() []Family {
	return []Family{FamilyLinear, FamilyRadial, FamilyRepeatingLinear, FamilyRepeatingRadial}
}
