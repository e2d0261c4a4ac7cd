package css

import (
	"strconv"
	"strings"
)

// EscapeClass escapes class name so it could be used in a class selector
// after ".". Serialization follows CSSOM rules for identifiers.
func EscapeClass(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)

	if name == "-" {
		return `\-`
	}

	for i, r := range []rune(name) {
		switch {
		case r == 0:
			b.WriteRune('�')
		case r < 0x20 || r == 0x7F:
			hexEscape(&b, r)
		case r >= '0' && r <= '9' && (i == 0 || (i == 1 && name[0] == '-')):
			hexEscape(&b, r)
		case r >= 0x80 || r == '-' || r == '_' ||
			(r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			b.WriteRune(r)
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}

func hexEscape(b *strings.Builder, r rune) {
	b.WriteByte('\\')
	b.WriteString(strconv.FormatInt(int64(r), 16))
	b.WriteByte(' ')
}
