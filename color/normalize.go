package color

import (
	"slices"
	"strings"
)

// Global CSS keywords which cannot be given an alpha channel, entries using
// any of them cannot be turned into gradients.
var reservedKeywords = []string{"inherit", "initial", "unset", "revert"}

// IsReserved reports whether value is one of the global CSS keywords.
func IsReserved(value string) bool {
	return slices.Contains(reservedKeywords, value)
}

// Transparent returns zero-alpha counterpart of the color in rgba() notation,
// or "transparent" keyword when value could not be parsed as color literal.
func Transparent(value string) string {
	c, err := Parse(value)
	if err != nil {
		return "transparent"
	}
	return c.WithAlpha(0).String()
}

// Normalize turns color entry into gradient color stops. Single color is
// expanded into two stops with synthesized transparent stop placed first or
// last depending on transparentFirst. Lists of two and more stops are
// returned as is. Entries mentioning reserved keyword anywhere or having blank
// stops are rejected.
func Normalize(stops []string, transparentFirst bool) ([]string, bool) {
	if len(stops) == 0 || slices.ContainsFunc(stops, IsReserved) || slices.ContainsFunc(stops, isBlank) {
		return nil, false
	}
	if len(stops) > 1 {
		return slices.Clone(stops), true
	}

	c, t := stops[0], Transparent(stops[0])
	if transparentFirst {
		return []string{t, c}, true
	}
	return []string{c, t}, true
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}
