// Package css models generated stylesheets and writes them out.
package css

import (
	"fmt"
	"io"
	"strings"
)

// Declaration is a single "property: value" pair.
type Declaration struct {
	Property string
	Value    string
}

// Rule represents a single CSS rule (selector + declarations). Declarations
// are written in the order they were added.
type Rule struct {
	Selector     string
	Declarations []Declaration
}

// MediaBlock represents a @media block with its query and nested rules.
type MediaBlock struct {
	Query string // condition without "@media", e.g. "(min-width: 640px)"
	Rules []Rule
}

// StylesheetItem is a single top-level item in a stylesheet.
// Exactly one of Rule, MediaBlock, or Comment is non-nil.
type StylesheetItem struct {
	Rule       *Rule
	MediaBlock *MediaBlock
	Comment    *string
}

// Stylesheet is an ordered list of top-level items.
type Stylesheet struct {
	Items []StylesheetItem
}

func (s *Stylesheet) AddRule(r Rule) {
	s.Items = append(s.Items, StylesheetItem{Rule: &r})
}

func (s *Stylesheet) AddMediaBlock(mb MediaBlock) {
	s.Items = append(s.Items, StylesheetItem{MediaBlock: &mb})
}

func (s *Stylesheet) AddComment(text string) {
	s.Items = append(s.Items, StylesheetItem{Comment: &text})
}

// Rules returns all top-level rules in order.
func (s *Stylesheet) Rules() []Rule {
	var rules []Rule
	for _, item := range s.Items {
		if item.Rule != nil {
			rules = append(rules, *item.Rule)
		}
	}
	return rules
}

// MediaBlocks returns all @media blocks in order.
func (s *Stylesheet) MediaBlocks() []MediaBlock {
	var blocks []MediaBlock
	for _, item := range s.Items {
		if item.MediaBlock != nil {
			blocks = append(blocks, *item.MediaBlock)
		}
	}
	return blocks
}

// Empty reports whether stylesheet has no rules, comments do not count.
func (s *Stylesheet) Empty() bool {
	for _, item := range s.Items {
		if item.Rule != nil || (item.MediaBlock != nil && len(item.MediaBlock.Rules) > 0) {
			return false
		}
	}
	return true
}

// WriteTo writes the stylesheet to w in order, implementing io.WriterTo.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, item := range s.Items {
		var n int
		var err error

		switch {
		case item.Comment != nil:
			n, err = writeComment(w, *item.Comment)
		case item.MediaBlock != nil:
			n, err = writeMediaBlock(w, item.MediaBlock)
		case item.Rule != nil:
			n, err = writeRule(w, item.Rule, "")
		}

		total += int64(n)
		if err != nil {
			return total, err
		}

		// Add blank line between items (except after last)
		if i < len(s.Items)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// writeRule writes a single CSS rule to w prefixing every line with indent.
func writeRule(w io.Writer, rule *Rule, indent string) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s%s {\n", indent, rule.Selector)
	total += n
	if err != nil {
		return total, err
	}
	for _, d := range rule.Declarations {
		n, err = fmt.Fprintf(w, "%s  %s: %s;\n", indent, d.Property, d.Value)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprintf(w, "%s}\n", indent)
	total += n
	return total, err
}

// writeMediaBlock writes an @media block to w.
func writeMediaBlock(w io.Writer, mb *MediaBlock) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "@media %s {\n", mb.Query)
	total += n
	if err != nil {
		return total, err
	}

	for i := range mb.Rules {
		n, err = writeRule(w, &mb.Rules[i], "  ")
		total += n
		if err != nil {
			return total, err
		}

		// Blank line between rules in a media block (except after last)
		if i < len(mb.Rules)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += n
			if err != nil {
				return total, err
			}
		}
	}

	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}

// writeComment writes a block comment, every line of text is kept.
func writeComment(w io.Writer, text string) (int, error) {
	// comment cannot be terminated from inside
	text = strings.ReplaceAll(text, "*/", "* /")
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) == 1 {
		return fmt.Fprintf(w, "/* %s */\n", lines[0])
	}

	var total int
	n, err := fmt.Fprint(w, "/*\n")
	total += n
	if err != nil {
		return total, err
	}
	for _, l := range lines {
		n, err = fmt.Fprintf(w, " * %s\n", l)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprint(w, " */\n")
	total += n
	return total, err
}
