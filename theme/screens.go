package theme

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Screen is a named responsive breakpoint.
type Screen struct {
	Name string
	Min  string
	Max  string
}

// Query returns media query condition for the screen.
func (s Screen) Query() string {
	switch {
	case s.Min != "" && s.Max != "":
		return fmt.Sprintf("(min-width: %s) and (max-width: %s)", s.Min, s.Max)
	case s.Max != "":
		return fmt.Sprintf("(max-width: %s)", s.Max)
	default:
		return fmt.Sprintf("(min-width: %s)", s.Min)
	}
}

// DefaultScreens are used when theme does not define any.
func DefaultScreens() []Screen {
	return []Screen{
		{Name: "sm", Min: "640px"},
		{Name: "md", Min: "768px"},
		{Name: "lg", Min: "1024px"},
		{Name: "xl", Min: "1280px"},
	}
}

func (t *Theme) screens() ([]Screen, error) {
	n := t.Lookup("screens")
	if isEmpty(n) {
		return DefaultScreens(), nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("screens must be a mapping (line %d)", n.Line)
	}

	out := make([]Screen, 0, len(n.Content)/2)
	for k, v := range pairs(n) {
		s := Screen{Name: k.Value}
		switch v.Kind {
		case yaml.ScalarNode:
			s.Min = v.Value
		case yaml.MappingNode:
			var r struct {
				Min string `yaml:"min"`
				Max string `yaml:"max"`
			}
			if err := v.Decode(&r); err != nil {
				return nil, fmt.Errorf("bad screen '%s': %w", k.Value, err)
			}
			s.Min, s.Max = r.Min, r.Max
		default:
			return nil, fmt.Errorf("bad screen '%s' (line %d)", k.Value, v.Line)
		}
		if s.Min == "" && s.Max == "" {
			return nil, fmt.Errorf("screen '%s' has neither min nor max width (line %d)", k.Value, v.Line)
		}
		out = append(out, s)
	}
	return out, nil
}
