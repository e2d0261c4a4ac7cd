package gradient

import (
	"strings"
)

const defaultKey = "default"

// radialClass returns unescaped class name of radial utility, axes keyed
// "default" do not contribute segments.
func radialClass(shapeKey, sizeKey, positionKey, colorKey string, l length) string {
	var b strings.Builder
	b.WriteString("border-radial")
	for _, k := range []string{shapeKey, sizeKey, positionKey} {
		if k != defaultKey {
			b.WriteByte('-')
			b.WriteString(k)
		}
	}
	b.WriteByte('-')
	b.WriteString(colorKey)
	b.WriteString(l.suffix())
	return b.String()
}

// radialPrefix returns first argument of radial gradient function leaving
// out everything matching CSS defaults.
func radialPrefix(shape, size, position, intrinsicSize string) string {
	parts := make([]string, 0, 3)
	if !IsDefaultShape(shape) {
		parts = append(parts, shape)
	}
	if !IsDefaultSize(size, intrinsicSize) {
		parts = append(parts, size)
	}
	if !IsDefaultPosition(position) {
		parts = append(parts, "at "+position)
	}
	return strings.Join(parts, " ")
}

// radialValue returns border-image value of radial utility.
func radialValue(shape, size, position string, stops []string, l length, opts FamilyOptions) string {
	return gradientValue("radial-gradient", radialPrefix(shape, size, position, opts.IntrinsicSize), stops, l, opts.Slice)
}

// expandRadial enumerates lengths x colors x positions x sizes x shapes.
func expandRadial(c *collector, shapes, sizes, positions Table, swatches []Swatch, lengths []length, opts FamilyOptions) {
	for idx := range odometer(len(lengths), len(swatches), len(positions), len(sizes), len(shapes)) {
		l, s, p, sz, sh := lengths[idx[0]], swatches[idx[1]], positions[idx[2]], sizes[idx[3]], shapes[idx[4]]
		c.add(Utility{
			Class:    radialClass(sh.Key, sz.Key, p.Key, s.Key, l),
			Property: Property,
			Value:    radialValue(sh.Value, sz.Value, p.Value, s.Stops, l, opts),
		})
	}
}
