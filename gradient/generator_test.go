package gradient

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"bgc/common"
)

type fakeTheme struct {
	tables   map[string]Table
	palettes map[string]Palette
	variants map[string][]string
}

func (f *fakeTheme) Table(path string) (Table, bool) {
	t, ok := f.tables[path]
	return t, ok
}

func (f *fakeTheme) Palette(path string) (Palette, bool) {
	p, ok := f.palettes[path]
	return p, ok
}

func (f *fakeTheme) Variants(section string) ([]string, bool) {
	v, ok := f.variants[section]
	return v, ok
}

func newFakeTheme() *fakeTheme {
	return &fakeTheme{
		tables:   make(map[string]Table),
		palettes: make(map[string]Palette),
		variants: make(map[string][]string),
	}
}

func single(key, value string) Swatch {
	return Swatch{Key: key, Stops: []string{value}}
}

type rule struct {
	class string
	value string
}

func rules(b Batch) []rule {
	out := make([]rule, 0, len(b.Utilities))
	for _, u := range b.Utilities {
		if u.Property != Property {
			panic("unexpected property " + u.Property)
		}
		out = append(out, rule{u.Class, u.Value})
	}
	return out
}

func checkRules(t *testing.T, b Batch, want []rule) {
	t.Helper()
	got := rules(b)
	if !slices.Equal(got, want) {
		var sb strings.Builder
		for _, r := range got {
			fmt.Fprintf(&sb, "  %s: %s\n", r.class, r.value)
		}
		t.Errorf("%s utilities mismatch, got %d:\n%swant %d: %v", b.Family, len(got), sb.String(), len(want), want)
	}
}

func newTestGenerator(t *testing.T) *Generator {
	return NewGenerator(zaptest.NewLogger(t), DefaultOptions())
}

func TestGenerate_NoOutputByDefault(t *testing.T) {
	batches := newTestGenerator(t).Generate(newFakeTheme())

	if len(batches) != 4 {
		t.Fatalf("Generate() returned %d batches, want 4", len(batches))
	}
	for i, b := range batches {
		if b.Family != common.Families()[i] {
			t.Errorf("batch[%d] family = %s, want %s", i, b.Family, common.Families()[i])
		}
		if len(b.Utilities) != 0 {
			t.Errorf("batch[%s] has %d utilities, want none", b.Family, len(b.Utilities))
		}
		if !slices.Equal(b.Variants, []string{"responsive"}) {
			t.Errorf("batch[%s] variants = %v, want [responsive]", b.Family, b.Variants)
		}
	}
}

func TestGenerate_SingleLinearUtility(t *testing.T) {
	th := newFakeTheme()
	th.tables["linearBorderGradients.directions"] = Table{{"t", "to top"}}
	th.palettes["linearBorderGradients.colors"] = Palette{single("red", "#f00")}

	b := newTestGenerator(t).Family(common.FamilyLinear, th)
	checkRules(t, b, []rule{
		{"border-gradient-t-red", "linear-gradient(to top, rgba(255, 0, 0, 0), #f00)"},
	})
}

func TestGenerate_LinearDefaultDirections(t *testing.T) {
	th := newFakeTheme()
	th.palettes["linearBorderGradients.colors"] = Palette{single("red", "#f00")}

	b := newTestGenerator(t).Family(common.FamilyLinear, th)
	checkRules(t, b, []rule{
		{"border-gradient-t-red", "linear-gradient(to top, rgba(255, 0, 0, 0), #f00)"},
		{"border-gradient-tr-red", "linear-gradient(to top right, rgba(255, 0, 0, 0), #f00)"},
		{"border-gradient-r-red", "linear-gradient(to right, rgba(255, 0, 0, 0), #f00)"},
		{"border-gradient-br-red", "linear-gradient(to bottom right, rgba(255, 0, 0, 0), #f00)"},
		{"border-gradient-b-red", "linear-gradient(rgba(255, 0, 0, 0), #f00)"},
		{"border-gradient-bl-red", "linear-gradient(to bottom left, rgba(255, 0, 0, 0), #f00)"},
		{"border-gradient-l-red", "linear-gradient(to left, rgba(255, 0, 0, 0), #f00)"},
		{"border-gradient-tl-red", "linear-gradient(to top left, rgba(255, 0, 0, 0), #f00)"},
	})
}

func TestGenerate_RadialDefaults(t *testing.T) {
	th := newFakeTheme()
	th.palettes["radialBorderGradients.colors"] = Palette{single("red", "#f00")}

	b := newTestGenerator(t).Family(common.FamilyRadial, th)
	checkRules(t, b, []rule{
		{"border-radial-red", "radial-gradient(closest-side, #f00, rgba(255, 0, 0, 0))"},
		{"border-radial-t-red", "radial-gradient(closest-side at top, #f00, rgba(255, 0, 0, 0))"},
		{"border-radial-tr-red", "radial-gradient(closest-side at top right, #f00, rgba(255, 0, 0, 0))"},
		{"border-radial-r-red", "radial-gradient(closest-side at right, #f00, rgba(255, 0, 0, 0))"},
		{"border-radial-br-red", "radial-gradient(closest-side at bottom right, #f00, rgba(255, 0, 0, 0))"},
		{"border-radial-b-red", "radial-gradient(closest-side at bottom, #f00, rgba(255, 0, 0, 0))"},
		{"border-radial-bl-red", "radial-gradient(closest-side at bottom left, #f00, rgba(255, 0, 0, 0))"},
		{"border-radial-l-red", "radial-gradient(closest-side at left, #f00, rgba(255, 0, 0, 0))"},
		{"border-radial-tl-red", "radial-gradient(closest-side at top left, #f00, rgba(255, 0, 0, 0))"},
	})
}

func TestGenerate_RadialIntrinsicSizeOption(t *testing.T) {
	th := newFakeTheme()
	th.tables["radialBorderGradients.positions"] = Table{{"default", "center"}}
	th.palettes["radialBorderGradients.colors"] = Palette{single("red", "#f00")}

	opts := DefaultOptions()
	opts.Radial.IntrinsicSize = "closest-side"
	b := NewGenerator(zaptest.NewLogger(t), opts).Family(common.FamilyRadial, th)
	checkRules(t, b, []rule{
		{"border-radial-red", "radial-gradient(#f00, rgba(255, 0, 0, 0))"},
	})

	th.tables["radialBorderGradients.shapes"] = Table{{"default", "circle"}}
	b = NewGenerator(zaptest.NewLogger(t), opts).Family(common.FamilyRadial, th)
	checkRules(t, b, []rule{
		{"border-radial-red", "radial-gradient(circle, #f00, rgba(255, 0, 0, 0))"},
	})
}

func TestGenerate_NoOutputWithoutDirectionsOrPositions(t *testing.T) {
	th := newFakeTheme()
	colors := Palette{single("red", "#f00"), single("green", "#0f0"), single("blue", "#00f")}
	for _, f := range common.Families() {
		th.palettes[f.Section()+".colors"] = colors
		th.tables[f.Section()+".lengths"] = Table{{"sm", "10px"}}
	}
	th.tables["linearBorderGradients.directions"] = Table{}
	th.tables["repeatingLinearBorderGradients.directions"] = Table{}
	th.tables["radialBorderGradients.positions"] = Table{}
	th.tables["repeatingRadialBorderGradients.positions"] = Table{}

	for _, b := range newTestGenerator(t).Generate(th) {
		if len(b.Utilities) != 0 {
			t.Errorf("batch[%s] has %d utilities, want none", b.Family, len(b.Utilities))
		}
	}
}

func TestGenerate_NoOutputWithoutColors(t *testing.T) {
	th := newFakeTheme()
	th.tables["linearBorderGradients.directions"] = Table{{"t", "to top"}, {"r", "to right"}}
	th.palettes["linearBorderGradients.colors"] = Palette{}
	th.tables["radialBorderGradients.positions"] = Table{{"default", "center"}, {"t", "top"}}
	th.palettes["radialBorderGradients.colors"] = Palette{}

	for _, b := range newTestGenerator(t).Generate(th) {
		if len(b.Utilities) != 0 {
			t.Errorf("batch[%s] has %d utilities, want none", b.Family, len(b.Utilities))
		}
	}
}

func TestGenerate_RepeatingNeedsLengths(t *testing.T) {
	th := newFakeTheme()
	th.palettes["repeatingLinearBorderGradients.colors"] = Palette{single("red", "#f00")}
	th.palettes["repeatingRadialBorderGradients.colors"] = Palette{single("red", "#f00")}

	g := newTestGenerator(t)
	for _, f := range []common.Family{common.FamilyRepeatingLinear, common.FamilyRepeatingRadial} {
		if b := g.Family(f, th); len(b.Utilities) != 0 {
			t.Errorf("batch[%s] has %d utilities without lengths, want none", f, len(b.Utilities))
		}
	}

	th.tables["repeatingLinearBorderGradients.lengths"] = Table{}
	if b := g.Family(common.FamilyRepeatingLinear, th); len(b.Utilities) != 0 {
		t.Errorf("empty lengths produced %d utilities, want none", len(b.Utilities))
	}
}

func TestGenerate_MultipleColors(t *testing.T) {
	th := newFakeTheme()
	colors := Palette{
		{Key: "red-green", Stops: []string{"#f00", "#0f0"}},
		{Key: "red-green-blue", Stops: []string{"#f00", "#0f0", "#00f"}},
	}
	th.tables["linearBorderGradients.directions"] = Table{{"to-bottom", "to bottom"}}
	th.palettes["linearBorderGradients.colors"] = colors
	th.tables["radialBorderGradients.positions"] = Table{{"default", "center"}}
	th.palettes["radialBorderGradients.colors"] = colors

	batches := newTestGenerator(t).Generate(th)
	checkRules(t, batches[0], []rule{
		{"border-gradient-to-bottom-red-green", "linear-gradient(#f00, #0f0)"},
		{"border-gradient-to-bottom-red-green-blue", "linear-gradient(#f00, #0f0, #00f)"},
	})
	checkRules(t, batches[1], []rule{
		{"border-radial-red-green", "radial-gradient(closest-side, #f00, #0f0)"},
		{"border-radial-red-green-blue", "radial-gradient(closest-side, #f00, #0f0, #00f)"},
	})
}

func TestGenerate_ColorKeywords(t *testing.T) {
	th := newFakeTheme()
	colors := Palette{
		single("white", "white"),
		single("black", "black"),
		single("transparent", "transparent"),
		single("current", "currentColor"),
		single("inherit", "inherit"),
		single("initial", "initial"),
		single("unset", "unset"),
		{Key: "mixed", Stops: []string{"#f00", "revert"}},
	}
	th.tables["linearBorderGradients.directions"] = Table{{"t", "to top"}}
	th.palettes["linearBorderGradients.colors"] = colors
	th.tables["radialBorderGradients.positions"] = Table{{"t", "top"}}
	th.palettes["radialBorderGradients.colors"] = colors

	batches := newTestGenerator(t).Generate(th)
	checkRules(t, batches[0], []rule{
		{"border-gradient-t-white", "linear-gradient(to top, rgba(255, 255, 255, 0), white)"},
		{"border-gradient-t-black", "linear-gradient(to top, rgba(0, 0, 0, 0), black)"},
		{"border-gradient-t-transparent", "linear-gradient(to top, rgba(0, 0, 0, 0), transparent)"},
		{"border-gradient-t-current", "linear-gradient(to top, transparent, currentColor)"},
	})
	checkRules(t, batches[1], []rule{
		{"border-radial-t-white", "radial-gradient(closest-side at top, white, rgba(255, 255, 255, 0))"},
		{"border-radial-t-black", "radial-gradient(closest-side at top, black, rgba(0, 0, 0, 0))"},
		{"border-radial-t-transparent", "radial-gradient(closest-side at top, transparent, rgba(0, 0, 0, 0))"},
		{"border-radial-t-current", "radial-gradient(closest-side at top, currentColor, transparent)"},
	})
}

func TestGenerate_RadialShapesAndSizes(t *testing.T) {
	th := newFakeTheme()
	th.tables["radialBorderGradients.shapes"] = Table{{"default", "circle"}, {"ellipse", "ellipse"}}
	th.tables["radialBorderGradients.sizes"] = Table{{"default", "closest-side"}, {"cover", "farthest-corner"}}
	th.tables["radialBorderGradients.positions"] = Table{{"default", "center"}, {"tr", "top right"}}
	th.palettes["radialBorderGradients.colors"] = Palette{
		single("red", "#f00"),
		{Key: "green-blue", Stops: []string{"#0f0", "#00f"}},
	}

	b := newTestGenerator(t).Family(common.FamilyRadial, th)
	checkRules(t, b, []rule{
		{"border-radial-red", "radial-gradient(circle closest-side, #f00, rgba(255, 0, 0, 0))"},
		{"border-radial-ellipse-red", "radial-gradient(closest-side, #f00, rgba(255, 0, 0, 0))"},
		{"border-radial-cover-red", "radial-gradient(circle, #f00, rgba(255, 0, 0, 0))"},
		{"border-radial-ellipse-cover-red", "radial-gradient(#f00, rgba(255, 0, 0, 0))"},
		{"border-radial-tr-red", "radial-gradient(circle closest-side at top right, #f00, rgba(255, 0, 0, 0))"},
		{"border-radial-ellipse-tr-red", "radial-gradient(closest-side at top right, #f00, rgba(255, 0, 0, 0))"},
		{"border-radial-cover-tr-red", "radial-gradient(circle at top right, #f00, rgba(255, 0, 0, 0))"},
		{"border-radial-ellipse-cover-tr-red", "radial-gradient(at top right, #f00, rgba(255, 0, 0, 0))"},
		{"border-radial-green-blue", "radial-gradient(circle closest-side, #0f0, #00f)"},
		{"border-radial-ellipse-green-blue", "radial-gradient(closest-side, #0f0, #00f)"},
		{"border-radial-cover-green-blue", "radial-gradient(circle, #0f0, #00f)"},
		{"border-radial-ellipse-cover-green-blue", "radial-gradient(#0f0, #00f)"},
		{"border-radial-tr-green-blue", "radial-gradient(circle closest-side at top right, #0f0, #00f)"},
		{"border-radial-ellipse-tr-green-blue", "radial-gradient(closest-side at top right, #0f0, #00f)"},
		{"border-radial-cover-tr-green-blue", "radial-gradient(circle at top right, #0f0, #00f)"},
		{"border-radial-ellipse-cover-tr-green-blue", "radial-gradient(at top right, #0f0, #00f)"},
	})
}

func TestGenerate_Lengths(t *testing.T) {
	th := newFakeTheme()
	th.tables["repeatingLinearBorderGradients.directions"] = Table{{"t", "to top"}}
	th.palettes["repeatingLinearBorderGradients.colors"] = Palette{single("red", "#f00"), single("blue", "#00f")}
	th.tables["repeatingLinearBorderGradients.lengths"] = Table{{"sm", "25px"}, {"md", "50px"}}
	th.tables["repeatingRadialBorderGradients.positions"] = Table{{"default", "center"}}
	th.palettes["repeatingRadialBorderGradients.colors"] = Palette{single("red", "#f00")}
	th.tables["repeatingRadialBorderGradients.lengths"] = Table{{"sm", "10px"}, {"md", "20px"}}

	batches := newTestGenerator(t).Generate(th)
	checkRules(t, batches[2], []rule{
		{"border-gradient-t-red-sm", "repeating-linear-gradient(to top, rgba(255, 0, 0, 0), #f00 25px)"},
		{"border-gradient-t-blue-sm", "repeating-linear-gradient(to top, rgba(0, 0, 255, 0), #00f 25px)"},
		{"border-gradient-t-red-md", "repeating-linear-gradient(to top, rgba(255, 0, 0, 0), #f00 50px)"},
		{"border-gradient-t-blue-md", "repeating-linear-gradient(to top, rgba(0, 0, 255, 0), #00f 50px)"},
	})
	checkRules(t, batches[3], []rule{
		{"border-radial-red-sm", "repeating-radial-gradient(#f00, rgba(255, 0, 0, 0) 10px)"},
		{"border-radial-red-md", "repeating-radial-gradient(#f00, rgba(255, 0, 0, 0) 20px)"},
	})
}

func TestGenerate_ColorStopsPassThrough(t *testing.T) {
	th := newFakeTheme()
	stops := []string{"#000", "#000 45%", "#fff 55%", "#fff"}
	repeating := []string{"#000", "#000 10px", "#fff 10px", "#fff 20px"}
	th.tables["linearBorderGradients.directions"] = Table{{"r", "to right"}}
	th.palettes["linearBorderGradients.colors"] = Palette{{Key: "custom", Stops: stops}}
	th.tables["radialBorderGradients.positions"] = Table{{"default", "center"}}
	th.palettes["radialBorderGradients.colors"] = Palette{{Key: "custom", Stops: stops}}
	th.tables["repeatingLinearBorderGradients.directions"] = Table{{"r", "to right"}}
	th.palettes["repeatingLinearBorderGradients.colors"] = Palette{{Key: "custom", Stops: repeating}}
	th.tables["repeatingLinearBorderGradients.lengths"] = Table{{"repeating", ""}}
	th.tables["repeatingRadialBorderGradients.positions"] = Table{{"default", "center"}}
	th.palettes["repeatingRadialBorderGradients.colors"] = Palette{{Key: "custom", Stops: repeating}}
	th.tables["repeatingRadialBorderGradients.lengths"] = Table{{"repeating", ""}}

	batches := newTestGenerator(t).Generate(th)
	checkRules(t, batches[0], []rule{{"border-gradient-r-custom", "linear-gradient(to right, #000, #000 45%, #fff 55%, #fff)"}})
	checkRules(t, batches[1], []rule{{"border-radial-custom", "radial-gradient(closest-side, #000, #000 45%, #fff 55%, #fff)"}})
	checkRules(t, batches[2], []rule{{"border-gradient-r-custom-repeating", "repeating-linear-gradient(to right, #000, #000 10px, #fff 10px, #fff 20px)"}})
	checkRules(t, batches[3], []rule{{"border-radial-custom-repeating", "repeating-radial-gradient(#000, #000 10px, #fff 10px, #fff 20px)"}})
}

func TestGenerate_KeyUniqueness(t *testing.T) {
	th := newFakeTheme()
	var (
		dirs    Table
		palette Palette
	)
	for i := range 5 {
		dirs = append(dirs, Entry{fmt.Sprintf("d%d", i), fmt.Sprintf("%ddeg", i*10)})
	}
	for i := range 7 {
		palette = append(palette, single(fmt.Sprintf("c%d", i), "#abcdef"))
	}
	th.tables["linearBorderGradients.directions"] = dirs
	th.palettes["linearBorderGradients.colors"] = palette

	b := newTestGenerator(t).Family(common.FamilyLinear, th)
	if len(b.Utilities) != 35 {
		t.Fatalf("got %d utilities, want 35", len(b.Utilities))
	}
	seen := make(map[string]bool)
	for _, u := range b.Utilities {
		if seen[u.Class] {
			t.Errorf("class %s generated twice", u.Class)
		}
		seen[u.Class] = true
	}
}

func TestGenerate_CollisionIsReported(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)

	th := newFakeTheme()
	th.tables["linearBorderGradients.directions"] = Table{{"t", "to top"}, {"t-a", "to right"}}
	th.palettes["linearBorderGradients.colors"] = Palette{single("a-b", "#f00"), single("b", "#00f")}

	b := NewGenerator(zap.New(core), DefaultOptions()).Family(common.FamilyLinear, th)
	// (b, t-a) collides with (a-b, t) and takes its place
	checkRules(t, b, []rule{
		{"border-gradient-t-a-b", "linear-gradient(to right, rgba(0, 0, 255, 0), #00f)"},
		{"border-gradient-t-a-a-b", "linear-gradient(to right, rgba(255, 0, 0, 0), #f00)"},
		{"border-gradient-t-b", "linear-gradient(to top, rgba(0, 0, 255, 0), #00f)"},
	})
	if n := logs.FilterMessage("Duplicate utility class, replacing earlier declaration").Len(); n != 1 {
		t.Errorf("got %d collision warnings, want 1", n)
	}
}

func TestGenerate_Slice(t *testing.T) {
	th := newFakeTheme()
	th.tables["linearBorderGradients.directions"] = Table{{"b", "to bottom"}}
	th.palettes["linearBorderGradients.colors"] = Palette{single("red", "#f00")}

	opts := DefaultOptions()
	opts.Linear.Slice = "1"
	b := NewGenerator(zaptest.NewLogger(t), opts).Family(common.FamilyLinear, th)
	checkRules(t, b, []rule{{"border-gradient-b-red", "linear-gradient(rgba(255, 0, 0, 0), #f00) 1"}})
}

func TestGenerate_Variants(t *testing.T) {
	th := newFakeTheme()
	th.variants["linearBorderGradients"] = []string{"hover", "active"}
	th.variants["radialBorderGradients"] = []string{}

	batches := newTestGenerator(t).Generate(th)
	if !slices.Equal(batches[0].Variants, []string{"hover", "active"}) {
		t.Errorf("linear variants = %v", batches[0].Variants)
	}
	if len(batches[1].Variants) != 0 {
		t.Errorf("radial variants = %v, want explicitly empty list kept", batches[1].Variants)
	}
	if !slices.Equal(batches[2].Variants, []string{"responsive"}) {
		t.Errorf("repeating linear variants = %v, want default", batches[2].Variants)
	}
}

func TestDump(t *testing.T) {
	b := Batch{
		Family: common.FamilyLinear,
		Utilities: []Utility{
			{Class: "border-gradient-t-red-10", Property: Property, Value: "v10"},
			{Class: "border-gradient-t-red-9", Property: Property, Value: "v9"},
		},
		Variants: []string{"hover"},
	}

	sorted := Dump([]Batch{b}, true)
	if i, j := strings.Index(sorted, "red-9"), strings.Index(sorted, "red-10"); i < 0 || j < 0 || i > j {
		t.Errorf("Dump(sorted) is not in natural order:\n%s", sorted)
	}
	unsorted := Dump([]Batch{b}, false)
	if i, j := strings.Index(unsorted, "red-9"), strings.Index(unsorted, "red-10"); i < j {
		t.Errorf("Dump(unsorted) changed generation order:\n%s", unsorted)
	}
	if !strings.HasPrefix(sorted, `Family[linear] variants["hover"] utilities[2]`) {
		t.Errorf("Dump() header:\n%s", sorted)
	}
}
