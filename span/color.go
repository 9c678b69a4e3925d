package span

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"golang.org/x/image/colornames"
)

// Color is a non-premultiplied 0xAARRGGBB value.
type Color uint32

// ARGB packs channels into a Color.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// ColorOf converts any color.Color into a Color.
func ColorOf(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ARGB(n.A, n.R, n.G, n.B)
}

func (c Color) Alpha() uint8 { return uint8(c >> 24) }
func (c Color) Red() uint8   { return uint8(c >> 16) }
func (c Color) Green() uint8 { return uint8(c >> 8) }
func (c Color) Blue() uint8  { return uint8(c) }

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}.RGBA()
}

// String returns #RRGGBB for opaque colors and #AARRGGBB otherwise.
func (c Color) String() string {
	if c.Alpha() == 0xFF {
		return fmt.Sprintf("#%06X", uint32(c)&0xFFFFFF)
	}
	return fmt.Sprintf("#%08X", uint32(c))
}

// ParseColor converts a textual color specification into a Color. Accepted
// forms are #RGB, #RRGGBB, #AARRGGBB, CSS color names (including
// "transparent") and the rgb()/rgba() functional notations. Anything else
// fails with ErrInvalidColorFormat.
func ParseColor(spec string) (Color, error) {
	s := strings.TrimSpace(spec)
	if len(s) == 0 {
		return 0, fmt.Errorf("%w: empty specification", ErrInvalidColorFormat)
	}

	l := css.NewLexer(parse.NewInputString(s))

	var (
		c   Color
		err error
	)
	switch tt, data := l.Next(); tt {
	case css.HashToken:
		c, err = parseHexColor(string(data[1:]))
	case css.IdentToken:
		c, err = parseNamedColor(string(data))
	case css.FunctionToken:
		c, err = parseColorFunction(l, strings.ToLower(string(data)))
	default:
		err = fmt.Errorf("unexpected token %q", data)
	}
	if err == nil {
		if tt, data := nextSignificant(l); tt != css.ErrorToken {
			err = fmt.Errorf("trailing data %q", data)
		}
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidColorFormat, spec, err)
	}
	return c, nil
}

func nextSignificant(l *css.Lexer) (css.TokenType, []byte) {
	for {
		tt, data := l.Next()
		if tt != css.WhitespaceToken {
			return tt, data
		}
	}
}

func parseHexColor(h string) (Color, error) {
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, errors.New("not a hexadecimal value")
	}
	switch len(h) {
	case 3:
		r, g, b := uint8(v>>8&0xF), uint8(v>>4&0xF), uint8(v&0xF)
		return ARGB(0xFF, r<<4|r, g<<4|g, b<<4|b), nil
	case 6:
		return Color(0xFF000000 | uint32(v)), nil
	case 8:
		return Color(v), nil
	}
	return 0, fmt.Errorf("unsupported hexadecimal length %d", len(h))
}

func parseNamedColor(name string) (Color, error) {
	name = strings.ToLower(name)
	if name == "transparent" {
		return 0, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return ColorOf(c), nil
	}
	return 0, fmt.Errorf("unknown color name %q", name)
}

type colorArg struct {
	value   float64
	percent bool
}

func parseColorFunction(l *css.Lexer, name string) (Color, error) {
	if name != "rgb(" && name != "rgba(" {
		return 0, fmt.Errorf("unsupported function %q", name)
	}

	var args []colorArg
	for closed := false; !closed; {
		tt, data := l.Next()
		switch tt {
		case css.WhitespaceToken, css.CommaToken:
		case css.NumberToken, css.PercentageToken:
			arg := colorArg{percent: tt == css.PercentageToken}
			v, err := strconv.ParseFloat(strings.TrimSuffix(string(data), "%"), 64)
			if err != nil {
				return 0, fmt.Errorf("bad number %q", data)
			}
			arg.value = v
			args = append(args, arg)
		case css.RightParenthesisToken:
			closed = true
		default:
			return 0, fmt.Errorf("unexpected token %q in %s)", data, name)
		}
	}
	if len(args) != 3 && len(args) != 4 {
		return 0, fmt.Errorf("%s) expects 3 or 4 arguments, got %d", name, len(args))
	}

	var ch [3]uint8
	for i := range ch {
		v := args[i].value
		if args[i].percent {
			v = v * 255 / 100
		}
		if v < 0 || v > 255 {
			return 0, fmt.Errorf("channel %d out of range", i)
		}
		ch[i] = uint8(math.Round(v))
	}
	alpha := uint8(0xFF)
	if len(args) == 4 {
		a := args[3].value
		if args[3].percent {
			a /= 100
		}
		if a < 0 || a > 1 {
			return 0, errors.New("alpha out of range")
		}
		alpha = uint8(math.Round(a * 255))
	}
	return ARGB(alpha, ch[0], ch[1], ch[2]), nil
}
