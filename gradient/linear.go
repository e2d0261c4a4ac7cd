package gradient

// linearClass returns unescaped class name of linear utility.
func linearClass(directionKey, colorKey string, l length) string {
	return "border-gradient-" + directionKey + "-" + colorKey + l.suffix()
}

// linearValue returns border-image value of linear utility, default
// direction is elided.
func linearValue(direction string, stops []string, l length, opts FamilyOptions) string {
	prefix := direction
	if IsDefaultDirection(direction) {
		prefix = ""
	}
	return gradientValue("linear-gradient", prefix, stops, l, opts.Slice)
}

// expandLinear enumerates lengths x colors x directions.
func expandLinear(c *collector, directions Table, swatches []Swatch, lengths []length, opts FamilyOptions) {
	for idx := range odometer(len(lengths), len(swatches), len(directions)) {
		l, s, d := lengths[idx[0]], swatches[idx[1]], directions[idx[2]]
		c.add(Utility{
			Class:    linearClass(d.Key, s.Key, l),
			Property: Property,
			Value:    linearValue(d.Value, s.Stops, l, opts),
		})
	}
}
