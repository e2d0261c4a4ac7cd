package gradient

import (
	"slices"
	"sort"

	"github.com/maruel/natural"

	"bgc/utils/debug"
)

// Dump returns readable tree of generated batches. When sorted is set
// utilities are listed in natural class name order rather than in generation
// order. It exists solely for manual inspection.
func Dump(batches []Batch, sorted bool) string {
	tw := debug.NewTreeWriter()
	for _, b := range batches {
		tw.Line(0, "Family[%s] variants%q utilities[%d]", b.Family, b.Variants, len(b.Utilities))

		items := b.Utilities
		if sorted {
			items = slices.Clone(items)
			sort.SliceStable(items, func(i, j int) bool {
				return natural.Less(items[i].Class, items[j].Class)
			})
		}
		for _, u := range items {
			tw.Line(1, "%s", u.Class)
			tw.Field(2, u.Property, u.Value)
		}
	}
	return tw.String()
}
