package css

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"spt/span"
)

// ErrUnsupportedValue is returned for property values that cannot be mapped
// to text styles.
var ErrUnsupportedValue = errors.New("unsupported property value")

// TextOptions maps declarations to builder text options. Unknown properties
// are ignored. Options come out in a stable order so that later options
// (usually from the run itself) override them when applied after.
func (d Declarations) TextOptions() ([]span.TextOption, error) {
	var opts []span.TextOption

	fail := func(name string) error {
		return fmt.Errorf("%w: %s: %q", ErrUnsupportedValue, name, d[name].Raw)
	}

	if v, ok := d["color"]; ok {
		c, err := span.ParseColor(v.Raw)
		if err != nil {
			return nil, fmt.Errorf("color: %w", err)
		}
		opts = append(opts, span.WithColor(c))
	}
	for _, name := range []string{"background-color", "background"} {
		if v, ok := d[name]; ok {
			c, err := span.ParseColor(v.Raw)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			opts = append(opts, span.WithBackground(c))
			break
		}
	}

	if v, ok := d["font-size"]; ok {
		switch v.Unit {
		case "em":
			opts = append(opts, span.WithRelativeSize(v.Value))
		case "%":
			opts = append(opts, span.WithRelativeSize(v.Value/100))
		case "px", "dp", "dip":
			opts = append(opts, span.WithAbsoluteSize(int(v.Value)))
		default:
			return nil, fail("font-size")
		}
	}

	if v, ok := d["transform"]; ok {
		scale, err := scaleX(v.Raw)
		if err != nil {
			return nil, fmt.Errorf("%w: transform: %w", ErrUnsupportedValue, err)
		}
		opts = append(opts, span.WithScaleX(scale))
	}

	weight, hasWeight := d["font-weight"]
	slant, hasSlant := d["font-style"]
	if hasWeight || hasSlant {
		bold, italic := false, false
		if hasWeight {
			switch {
			case weight.Keyword == "bold" || weight.Keyword == "bolder":
				bold = true
			case weight.Keyword == "normal" || weight.Keyword == "lighter":
			case weight.IsNumeric() && weight.Unit == "":
				bold = weight.Value >= 600
			default:
				return nil, fail("font-weight")
			}
		}
		if hasSlant {
			switch slant.Keyword {
			case "italic", "oblique":
				italic = true
			case "normal":
			default:
				return nil, fail("font-style")
			}
		}
		tf := span.TypefaceNormal
		switch {
		case bold && italic:
			tf = span.TypefaceBoldItalic
		case bold:
			tf = span.TypefaceBold
		case italic:
			tf = span.TypefaceItalic
		}
		opts = append(opts, span.WithTypeface(tf))
	}

	if v, ok := d["text-decoration"]; ok {
		for _, word := range strings.Fields(strings.ToLower(v.Raw)) {
			switch word {
			case "underline":
				opts = append(opts, span.WithUnderline())
			case "line-through":
				opts = append(opts, span.WithStrikethrough())
			case "none":
			default:
				return nil, fail("text-decoration")
			}
		}
	}

	if v, ok := d["vertical-align"]; ok {
		switch v.Keyword {
		case "super":
			opts = append(opts, span.WithSuperscript())
		case "sub":
			opts = append(opts, span.WithSubscript())
		case "baseline":
		default:
			return nil, fail("vertical-align")
		}
	}
	return opts, nil
}

// scaleX accepts "scaleX(n)" and "scale(n)" where a single argument scales
// both axes.
func scaleX(raw string) (float64, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	var arg string
	switch {
	case strings.HasPrefix(s, "scalex(") && strings.HasSuffix(s, ")"):
		arg = s[len("scalex(") : len(s)-1]
	case strings.HasPrefix(s, "scale(") && strings.HasSuffix(s, ")"):
		arg = s[len("scale(") : len(s)-1]
		if first, _, found := strings.Cut(arg, ","); found {
			arg = first
		}
	default:
		return 0, fmt.Errorf("%q is not a horizontal scale", raw)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
	if err != nil {
		return 0, fmt.Errorf("bad scale %q", arg)
	}
	return v, nil
}
