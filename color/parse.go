// Package color parses CSS color literals and prepares color stops for
// gradient values.
package color

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
	"unicode"

	colorful "github.com/lucasb-eyer/go-colorful"
	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"golang.org/x/image/colornames"
)

// ErrUnsupported is returned for values which are not CSS color literals,
// such as currentColor or var() references.
var ErrUnsupported = errors.New("unsupported color value")

// CSS Color Module Level 4 names missing from SVG 1.1 table.
var extraNames = map[string]color.RGBA{
	"rebeccapurple": {R: 0x66, G: 0x33, B: 0x99, A: 0xff},
}

// RGBA is a parsed color with alpha channel, all components are in [0, 1].
type RGBA struct {
	colorful.Color
	A float64
}

// String returns color in rgb()/rgba() notation.
func (c RGBA) String() string {
	r, g, b := c.Clamped().RGB255()
	if c.A >= 1 {
		return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// WithAlpha returns copy of the color with alpha channel replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = clamp(a)
	return c
}

type token struct {
	tt   css.TokenType
	data string
}

// tokenize splits value into significant CSS tokens dropping whitespace and
// comments.
func tokenize(s string) []token {
	l := css.NewLexer(parse.NewInputString(s))

	var out []token
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			return out
		case css.WhitespaceToken, css.CommentToken:
			continue
		}
		out = append(out, token{tt: tt, data: string(data)})
	}
}

// Parse parses CSS color literal: hex notation, rgb()/rgba(), hsl()/hsla()
// or named color (including transparent).
func Parse(s string) (RGBA, error) {
	toks := tokenize(strings.TrimSpace(s))
	if len(toks) == 0 {
		return RGBA{}, fmt.Errorf("%w: empty value", ErrUnsupported)
	}

	first := toks[0]
	switch first.tt {
	case css.HashToken:
		if len(toks) == 1 {
			return parseHex(strings.TrimPrefix(first.data, "#"), s)
		}
	case css.IdentToken:
		if len(toks) == 1 {
			return parseName(first.data, s)
		}
	case css.FunctionToken:
		if toks[len(toks)-1].tt != css.RightParenthesisToken {
			break
		}
		args, alpha, err := splitArgs(toks[1 : len(toks)-1])
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: %q: %w", ErrUnsupported, s, err)
		}
		switch strings.ToLower(strings.TrimSuffix(first.data, "(")) {
		case "rgb", "rgba":
			return parseRGB(args, alpha, s)
		case "hsl", "hsla":
			return parseHSL(args, alpha, s)
		}
	}
	return RGBA{}, fmt.Errorf("%w: %q", ErrUnsupported, s)
}

func parseHex(digits, src string) (RGBA, error) {
	for _, r := range digits {
		if !unicode.Is(unicode.ASCII_Hex_Digit, r) {
			return RGBA{}, fmt.Errorf("%w: %q", ErrUnsupported, src)
		}
	}

	var rgb, alpha string
	switch len(digits) {
	case 3, 6:
		rgb = digits
	case 4:
		rgb, alpha = digits[:3], strings.Repeat(digits[3:], 2)
	case 8:
		rgb, alpha = digits[:6], digits[6:]
	default:
		return RGBA{}, fmt.Errorf("%w: %q", ErrUnsupported, src)
	}

	c, err := colorful.Hex("#" + rgb)
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: %q: %w", ErrUnsupported, src, err)
	}
	res := RGBA{Color: c, A: 1}
	if len(alpha) > 0 {
		a, err := strconv.ParseUint(alpha, 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: %q: %w", ErrUnsupported, src, err)
		}
		res.A = float64(a) / 255
	}
	return res, nil
}

func parseName(name, src string) (RGBA, error) {
	name = strings.ToLower(name)
	if name == "transparent" {
		return RGBA{}, nil
	}

	rgba, ok := colornames.Map[name]
	if !ok {
		if rgba, ok = extraNames[name]; !ok {
			return RGBA{}, fmt.Errorf("%w: %q", ErrUnsupported, src)
		}
	}
	c, _ := colorful.MakeColor(rgba)
	return RGBA{Color: c, A: 1}, nil
}

// splitArgs accepts both legacy comma separated and modern space separated
// argument lists with optional "/ alpha" part.
func splitArgs(toks []token) ([]token, *token, error) {
	var (
		args  []token
		alpha *token
	)
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		switch t.tt {
		case css.CommaToken:
		case css.DelimToken:
			if t.data != "/" || i != len(toks)-2 {
				return nil, nil, fmt.Errorf("unexpected delimiter %q", t.data)
			}
			a := toks[i+1]
			alpha = &a
			i++
		case css.NumberToken, css.PercentageToken, css.DimensionToken:
			args = append(args, t)
		default:
			return nil, nil, fmt.Errorf("unexpected token %q", t.data)
		}
	}
	if len(args) == 4 && alpha == nil {
		alpha = &args[3]
		args = args[:3]
	}
	if len(args) != 3 {
		return nil, nil, fmt.Errorf("expected 3 color components, got %d", len(args))
	}
	return args, alpha, nil
}

func parseRGB(args []token, alpha *token, src string) (RGBA, error) {
	var ch [3]float64
	for i, t := range args {
		v, err := strconv.ParseFloat(strings.TrimSuffix(t.data, "%"), 64)
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: %q: %w", ErrUnsupported, src, err)
		}
		switch t.tt {
		case css.NumberToken:
			ch[i] = clamp(v / 255)
		case css.PercentageToken:
			ch[i] = clamp(v / 100)
		default:
			return RGBA{}, fmt.Errorf("%w: %q", ErrUnsupported, src)
		}
	}
	a, err := parseAlpha(alpha, src)
	if err != nil {
		return RGBA{}, err
	}
	return RGBA{Color: colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, A: a}, nil
}

func parseHSL(args []token, alpha *token, src string) (RGBA, error) {
	h, err := parseHue(args[0])
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: %q: %w", ErrUnsupported, src, err)
	}

	var sl [2]float64
	for i, t := range args[1:] {
		if t.tt == css.DimensionToken {
			return RGBA{}, fmt.Errorf("%w: %q", ErrUnsupported, src)
		}
		v, err := strconv.ParseFloat(strings.TrimSuffix(t.data, "%"), 64)
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: %q: %w", ErrUnsupported, src, err)
		}
		sl[i] = clamp(v / 100)
	}
	a, err := parseAlpha(alpha, src)
	if err != nil {
		return RGBA{}, err
	}
	return RGBA{Color: colorful.Hsl(h, sl[0], sl[1]), A: a}, nil
}

// parseHue returns hue in degrees normalized to [0, 360).
func parseHue(t token) (float64, error) {
	num, unit := splitDimension(t.data)
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, err
	}
	switch t.tt {
	case css.NumberToken:
	case css.DimensionToken:
		switch strings.ToLower(unit) {
		case "deg":
		case "rad":
			v = v * 180 / math.Pi
		case "grad":
			v = v * 360 / 400
		case "turn":
			v = v * 360
		default:
			return 0, fmt.Errorf("unknown angle unit %q", unit)
		}
	default:
		return 0, fmt.Errorf("unexpected hue %q", t.data)
	}
	v = math.Mod(v, 360)
	if v < 0 {
		v += 360
	}
	return v, nil
}

func parseAlpha(t *token, src string) (float64, error) {
	if t == nil {
		return 1, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(t.data, "%"), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrUnsupported, src, err)
	}
	switch t.tt {
	case css.NumberToken:
		return clamp(v), nil
	case css.PercentageToken:
		return clamp(v / 100), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupported, src)
}

// splitDimension separates numeric part of dimension token from its unit.
func splitDimension(s string) (string, string) {
	end := 0
	for i, r := range s {
		if unicode.IsDigit(r) || r == '.' || r == '-' || r == '+' {
			end = i + 1
		} else {
			break
		}
	}
	return s[:end], s[end:]
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
