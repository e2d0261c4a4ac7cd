// Package gradient expands theme tables into border-image gradient utilities.
package gradient

// Entry is a single named value of a theme table: key is used to build class
// name, value is put into gradient function arguments.
type Entry struct {
	Key   string
	Value string
}

// Table is an ordered set of entries (directions, shapes, sizes, positions or
// lengths). Order of entries determines order of generated rules.
type Table []Entry

// Swatch is a named color entry: either single color or explicit list of
// color stops. Stops may carry position suffix ("#fff 55%") and are never
// looked into.
type Swatch struct {
	Key   string
	Stops []string
}

// Palette is an ordered set of color entries.
type Palette []Swatch

// length is an optional axis of repeating families.
type length struct {
	Entry
	present bool
}

// suffix returns class name segment for the length.
func (l length) suffix() string {
	if !l.present || l.Key == "" {
		return ""
	}
	return "-" + l.Key
}

// lengthAxis returns single absent length for non-repeating families so both
// kinds could be enumerated the same way.
func lengthAxis(repeating bool, lengths Table) []length {
	if !repeating {
		return []length{{}}
	}
	out := make([]length, 0, len(lengths))
	for _, e := range lengths {
		out = append(out, length{Entry: e, present: true})
	}
	return out
}
