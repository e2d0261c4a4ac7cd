// Package render turns generated utility batches into a stylesheet applying
// variants, responsive screens, class prefix and selector escaping.
package render

import (
	"slices"

	"go.uber.org/zap"

	"bgc/css"
	"bgc/gradient"
)

const responsive = "responsive"

// Screen is a responsive breakpoint.
type Screen struct {
	Name  string
	Query string
}

// Settings control how utilities are turned into rules.
type Settings struct {
	Prefix    string
	Separator string
	Important bool
	Screens   []Screen
}

// variant describes how a state variant changes selector of a utility.
type variant struct {
	name     string
	ancestor string
	pseudo   string
}

var stateVariants = map[string]variant{
	"hover":         {name: "hover", pseudo: ":hover"},
	"focus":         {name: "focus", pseudo: ":focus"},
	"active":        {name: "active", pseudo: ":active"},
	"visited":       {name: "visited", pseudo: ":visited"},
	"disabled":      {name: "disabled", pseudo: ":disabled"},
	"checked":       {name: "checked", pseudo: ":checked"},
	"focus-within":  {name: "focus-within", pseudo: ":focus-within"},
	"focus-visible": {name: "focus-visible", pseudo: ":focus-visible"},
	"first":         {name: "first", pseudo: ":first-child"},
	"last":          {name: "last", pseudo: ":last-child"},
	"odd":           {name: "odd", pseudo: ":nth-child(odd)"},
	"even":          {name: "even", pseudo: ":nth-child(even)"},
	"group-hover":   {name: "group-hover", ancestor: ".group:hover "},
	"group-focus":   {name: "group-focus", ancestor: ".group:focus "},
}

// IsKnownVariant reports whether variant name could be rendered.
func IsKnownVariant(name string) bool {
	_, ok := stateVariants[name]
	return ok || name == responsive
}

type Renderer struct {
	log      *zap.Logger
	settings Settings
}

func New(log *zap.Logger, settings Settings) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	if len(settings.Separator) == 0 {
		settings.Separator = ":"
	}
	return &Renderer{log: log.Named("render"), settings: settings}
}

// Render builds stylesheet out of batches. Every batch contributes its base
// rules followed by rules for each state variant in listed order. Batches
// with "responsive" variant are repeated for every screen in @media blocks
// placed after all other rules.
func (r *Renderer) Render(batches []gradient.Batch) *css.Stylesheet {
	sheet := &css.Stylesheet{}

	type pending struct {
		batch    gradient.Batch
		variants []variant
	}
	var responsiveBatches []pending

	for _, b := range batches {
		if len(b.Utilities) == 0 {
			r.log.Debug("Nothing to render", zap.Stringer("family", b.Family))
			continue
		}

		variants := r.variants(b)
		for _, rule := range r.rules(b, variants, "") {
			sheet.AddRule(rule)
		}
		if slices.Contains(b.Variants, responsive) {
			responsiveBatches = append(responsiveBatches, pending{batch: b, variants: variants})
		}
		r.log.Debug("Rendered batch", zap.Stringer("family", b.Family), zap.Int("utilities", len(b.Utilities)), zap.Int("variants", len(variants)))
	}

	if len(responsiveBatches) == 0 {
		return sheet
	}
	for _, s := range r.settings.Screens {
		mb := css.MediaBlock{Query: s.Query}
		for _, p := range responsiveBatches {
			mb.Rules = append(mb.Rules, r.rules(p.batch, p.variants, s.Name)...)
		}
		sheet.AddMediaBlock(mb)
	}
	return sheet
}

// variants returns state variants of the batch in order skipping unknown ones.
func (r *Renderer) variants(b gradient.Batch) []variant {
	out := make([]variant, 0, len(b.Variants))
	for _, name := range b.Variants {
		if name == responsive {
			continue
		}
		if !IsKnownVariant(name) {
			r.log.Warn("Unknown variant, ignoring", zap.Stringer("family", b.Family), zap.String("variant", name))
			continue
		}
		out = append(out, stateVariants[name])
	}
	return out
}

// rules returns base rules of the batch followed by rules for every variant.
func (r *Renderer) rules(b gradient.Batch, variants []variant, screen string) []css.Rule {
	out := make([]css.Rule, 0, len(b.Utilities)*(len(variants)+1))
	for _, v := range append([]variant{{}}, variants...) {
		for _, u := range b.Utilities {
			out = append(out, r.rule(u, v, screen))
		}
	}
	return out
}

func (r *Renderer) rule(u gradient.Utility, v variant, screen string) css.Rule {
	class := r.settings.Prefix + u.Class
	if v.name != "" {
		class = v.name + r.settings.Separator + class
	}
	if screen != "" {
		class = screen + r.settings.Separator + class
	}

	value := u.Value
	if r.settings.Important {
		value += " !important"
	}
	return css.Rule{
		Selector:     v.ancestor + "." + css.EscapeClass(class) + v.pseudo,
		Declarations: []css.Declaration{{Property: u.Property, Value: value}},
	}
}
