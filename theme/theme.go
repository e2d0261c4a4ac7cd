// Package theme loads theme files and gives gradient generator dotted path
// access to their content.
package theme

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"bgc/gradient"
)

// DefaultSeparator separates variant prefix from class name.
const DefaultSeparator = ":"

type document struct {
	Prefix    string    `yaml:"prefix"`
	Separator *string   `yaml:"separator"`
	Important bool      `yaml:"important"`
	Theme     yaml.Node `yaml:"theme"`
	Variants  yaml.Node `yaml:"variants"`
}

// Theme is a loaded theme file. It is read-only after load and implements
// gradient.Resolver.
type Theme struct {
	log *zap.Logger

	Prefix    string
	Separator string
	Important bool
	Screens   []Screen

	root     *yaml.Node
	variants *yaml.Node
}

var _ gradient.Resolver = (*Theme)(nil)

// Load reads and parses theme file.
func Load(path string, log *zap.Logger) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read theme: %w", err)
	}
	t, err := Parse(data, log)
	if err != nil {
		return nil, fmt.Errorf("unable to load theme '%s': %w", path, err)
	}
	return t, nil
}

// Parse builds theme from its YAML representation, resolving all references.
// Empty input results in theme with all defaults.
func Parse(data []byte, log *zap.Logger) (*Theme, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unable to decode theme: %w", err)
	}

	t := &Theme{
		log:       log.Named("theme"),
		Prefix:    doc.Prefix,
		Separator: DefaultSeparator,
		Important: doc.Important,
		root:      unalias(&doc.Theme),
		variants:  unalias(&doc.Variants),
	}
	if doc.Separator != nil {
		if len(*doc.Separator) == 0 {
			return nil, errors.New("variant separator could not be empty")
		}
		t.Separator = *doc.Separator
	}
	if !isEmpty(t.root) && t.root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("theme must be a mapping (line %d)", t.root.Line)
	}
	if !isEmpty(t.variants) && t.variants.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("variants must be a mapping (line %d)", t.variants.Line)
	}

	if err := link(t.root); err != nil {
		return nil, err
	}

	screens, err := t.screens()
	if err != nil {
		return nil, err
	}
	t.Screens = screens
	return t, nil
}

// Lookup returns theme node for dotted path or nil if path does not exist.
func (t *Theme) Lookup(path string) *yaml.Node {
	return lookup(t.root, path)
}

// Table implements gradient.Resolver. Keys and values of a mapping become
// table entries in document order.
func (t *Theme) Table(path string) (gradient.Table, bool) {
	n := t.Lookup(path)
	if isEmpty(n) {
		return nil, false
	}
	if n.Kind != yaml.MappingNode {
		t.log.Debug("Theme table is not a mapping, ignoring", zap.String("path", path), zap.Int("line", n.Line))
		return gradient.Table{}, true
	}

	table := make(gradient.Table, 0, len(n.Content)/2)
	for k, v := range pairs(n) {
		if v.Kind != yaml.ScalarNode {
			t.log.Debug("Theme table entry is not a scalar, ignoring", zap.String("path", path), zap.String("key", k.Value), zap.Int("line", v.Line))
			continue
		}
		table = append(table, gradient.Entry{Key: k.Value, Value: v.Value})
	}
	return table, true
}

// Palette implements gradient.Resolver. Entry value could be a single color,
// a list of color stops or a nested palette. Nested palettes are flattened
// joining keys with "-", nested "default" key stands for parent name.
func (t *Theme) Palette(path string) (gradient.Palette, bool) {
	n := t.Lookup(path)
	if isEmpty(n) {
		return nil, false
	}
	if n.Kind != yaml.MappingNode {
		t.log.Debug("Theme palette is not a mapping, ignoring", zap.String("path", path), zap.Int("line", n.Line))
		return gradient.Palette{}, true
	}
	return t.flatten(path, "", n, gradient.Palette{}), true
}

func (t *Theme) flatten(path, parent string, n *yaml.Node, out gradient.Palette) gradient.Palette {
	for k, v := range pairs(n) {
		key := k.Value
		switch {
		case parent != "" && (key == "default" || key == "DEFAULT"):
			key = parent
		case parent != "":
			key = parent + "-" + key
		}

		switch v.Kind {
		case yaml.ScalarNode:
			if isEmpty(v) || strings.TrimSpace(v.Value) == "" {
				t.log.Debug("Color is empty, ignoring", zap.String("path", path), zap.String("key", key), zap.Int("line", v.Line))
				continue
			}
			out = append(out, gradient.Swatch{Key: key, Stops: []string{v.Value}})
		case yaml.SequenceNode:
			stops := make([]string, 0, len(v.Content))
			for _, s := range v.Content {
				if s = unalias(s); s.Kind != yaml.ScalarNode {
					t.log.Debug("Color stop is not a scalar, ignoring", zap.String("path", path), zap.String("key", key), zap.Int("line", s.Line))
					continue
				}
				stops = append(stops, s.Value)
			}
			out = append(out, gradient.Swatch{Key: key, Stops: stops})
		case yaml.MappingNode:
			out = t.flatten(path, key, v, out)
		}
	}
	return out
}

// Variants implements gradient.Resolver.
func (t *Theme) Variants(section string) ([]string, bool) {
	n := lookup(t.variants, section)
	if isEmpty(n) {
		return nil, false
	}
	if n.Kind != yaml.SequenceNode {
		t.log.Debug("Variants are not a list, ignoring", zap.String("section", section), zap.Int("line", n.Line))
		return []string{}, true
	}
	out := make([]string, 0, len(n.Content))
	for _, v := range n.Content {
		if v = unalias(v); v.Kind == yaml.ScalarNode {
			out = append(out, strings.TrimSpace(v.Value))
		}
	}
	return out, true
}
