package gradient

import (
	"strings"
)

// Property is the only declaration utilities carry.
const Property = "border-image"

// gradientValue assembles gradient function call. Empty prefix means the
// first argument is omitted altogether.
func gradientValue(fn, prefix string, stops []string, l length, slice string) string {
	var b strings.Builder
	if l.present {
		b.WriteString("repeating-")
	}
	b.WriteString(fn)
	b.WriteByte('(')
	if len(prefix) > 0 {
		b.WriteString(prefix)
		b.WriteString(", ")
	}
	b.WriteString(strings.Join(stops, ", "))
	if l.present && len(l.Value) > 0 {
		b.WriteByte(' ')
		b.WriteString(l.Value)
	}
	b.WriteByte(')')
	if len(slice) > 0 {
		b.WriteByte(' ')
		b.WriteString(slice)
	}
	return b.String()
}
