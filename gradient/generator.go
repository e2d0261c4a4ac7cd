package gradient

import (
	"slices"

	"go.uber.org/zap"

	"bgc/color"
	"bgc/common"
)

// Resolver gives read-only access to theme by dotted path (for example
// "linearBorderGradients.directions"). Returning false means path is not
// configured and built-in default should be used, configured but empty
// table disables family.
type Resolver interface {
	Table(path string) (Table, bool)
	Palette(path string) (Palette, bool)
	Variants(section string) ([]string, bool)
}

// Utility is a single generated rule: unescaped class name without leading
// dot and its declaration.
type Utility struct {
	Class    string
	Property string
	Value    string
}

// Batch holds utilities of a single gradient family together with variants
// host should apply to them.
type Batch struct {
	Family    common.Family
	Utilities []Utility
	Variants  []string
}

// FamilyOptions controls output formatting of a single family.
type FamilyOptions struct {
	// Slice, when not empty, is appended to gradient as border-image-slice.
	Slice string
	// IntrinsicSize is radial gradient size omitted from declarations.
	IntrinsicSize string
}

type Options struct {
	Linear          FamilyOptions
	Radial          FamilyOptions
	RepeatingLinear FamilyOptions
	RepeatingRadial FamilyOptions
}

// DefaultOptions returns options producing minimal CSS.
func DefaultOptions() Options {
	return Options{
		Radial:          FamilyOptions{IntrinsicSize: cssDefaultSize},
		RepeatingRadial: FamilyOptions{IntrinsicSize: cssDefaultSize},
	}
}

// For returns options of requested family.
func (o Options) For(f common.Family) FamilyOptions {
	switch f {
	case common.FamilyLinear:
		return o.Linear
	case common.FamilyRadial:
		return o.Radial
	case common.FamilyRepeatingLinear:
		return o.RepeatingLinear
	case common.FamilyRepeatingRadial:
		return o.RepeatingRadial
	default:
		// this should never happen
		panic("unsupported gradient family requested")
	}
}

// Generator expands theme into utilities. It keeps no state between calls
// and could be used concurrently.
type Generator struct {
	log  *zap.Logger
	opts Options
}

func NewGenerator(log *zap.Logger, opts Options) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{log: log.Named("generator"), opts: opts}
}

// Generate produces batches for all gradient families in fixed order.
// Families which are not fully configured result in empty batches.
func (g *Generator) Generate(r Resolver) []Batch {
	batches := make([]Batch, 0, len(common.Families()))
	for _, f := range common.Families() {
		batches = append(batches, g.Family(f, r))
	}
	return batches
}

// Family produces batch for a single gradient family.
func (g *Generator) Family(f common.Family, r Resolver) Batch {
	section := f.Section()
	opts := g.opts.For(f)

	var lengths []length
	if f.Repeating() {
		lengths = lengthAxis(true, table(r, section+".lengths", nil))
	} else {
		lengths = lengthAxis(false, nil)
	}

	palette, _ := r.Palette(section + ".colors")
	c := newCollector(g.log, f)

	if f.Radial() {
		sizes := defaultRadialSizes
		if f.Repeating() {
			sizes = defaultRepeatingRadialSizes
		}
		expandRadial(c,
			table(r, section+".shapes", defaultShapes),
			table(r, section+".sizes", sizes),
			table(r, section+".positions", defaultPositions),
			g.swatches(f, palette, false),
			lengths, opts)
	} else {
		expandLinear(c,
			table(r, section+".directions", defaultDirections),
			g.swatches(f, palette, true),
			lengths, opts)
	}

	variants, ok := r.Variants(section)
	if !ok {
		variants = defaultVariants
	}

	g.log.Debug("Expanded gradient family", zap.Stringer("family", f), zap.Int("utilities", len(c.items)), zap.Strings("variants", variants))
	return Batch{Family: f, Utilities: c.items, Variants: slices.Clone(variants)}
}

// swatches normalizes palette dropping rejected entries.
func (g *Generator) swatches(f common.Family, palette Palette, transparentFirst bool) []Swatch {
	out := make([]Swatch, 0, len(palette))
	for _, s := range palette {
		stops, ok := color.Normalize(s.Stops, transparentFirst)
		if !ok {
			g.log.Debug("Skipping color entry", zap.Stringer("family", f), zap.String("color", s.Key), zap.Strings("stops", s.Stops))
			continue
		}
		out = append(out, Swatch{Key: s.Key, Stops: stops})
	}
	return out
}

func table(r Resolver, path string, def Table) Table {
	if t, ok := r.Table(path); ok {
		return t
	}
	return slices.Clone(def)
}

// collector keeps utilities in generation order with unique class names.
type collector struct {
	log    *zap.Logger
	family common.Family
	items  []Utility
	index  map[string]int
}

func newCollector(log *zap.Logger, f common.Family) *collector {
	return &collector{log: log, family: f, index: make(map[string]int)}
}

// add appends utility, when class was already generated the later
// declaration replaces earlier one keeping its position.
func (c *collector) add(u Utility) {
	if i, exists := c.index[u.Class]; exists {
		c.log.Warn("Duplicate utility class, replacing earlier declaration",
			zap.Stringer("family", c.family), zap.String("class", u.Class),
			zap.String("was", c.items[i].Value), zap.String("now", u.Value))
		c.items[i] = u
		return
	}
	c.index[u.Class] = len(c.items)
	c.items = append(c.items, u)
}
