package span

import (
	"go.uber.org/zap"
)

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger used for append diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(b *Builder) {
		if log != nil {
			b.log = log
		}
	}
}

// WithConverter sets the device independent unit converter used for image
// bounds and handed to rasterizers.
func WithConverter(conv UnitConverter) Option {
	return func(b *Builder) {
		if conv != nil {
			b.conv = conv
		}
	}
}

// TextOption selects one style for a text run. Options that are not given
// produce no attachment.
type TextOption func(*textOptions)

type textOptions struct {
	color       *Color
	colorSpec   string
	background  *Color
	onClick     func()
	link        string
	relSize     *float64
	absSize     *int
	scaleX      *float64
	typeface    *Typeface
	underline   bool
	strike      bool
	superscript bool
	superScale  *float64
	subscript   bool
	subScale    *float64
	flags       Flags
}

func WithColor(c Color) TextOption {
	return func(o *textOptions) { o.color = &c }
}

// WithColorString sets the text color from a textual specification (see
// ParseColor). It takes precedence over WithColor in the same call.
func WithColorString(spec string) TextOption {
	return func(o *textOptions) { o.colorSpec = spec }
}

func WithBackground(c Color) TextOption {
	return func(o *textOptions) { o.background = &c }
}

func WithClick(fn func()) TextOption {
	return func(o *textOptions) { o.onClick = fn }
}

func WithLink(url string) TextOption {
	return func(o *textOptions) { o.link = url }
}

func WithRelativeSize(scale float64) TextOption {
	return func(o *textOptions) { o.relSize = &scale }
}

// WithAbsoluteSize sets the text size in device independent units.
func WithAbsoluteSize(size int) TextOption {
	return func(o *textOptions) { o.absSize = &size }
}

func WithScaleX(scale float64) TextOption {
	return func(o *textOptions) { o.scaleX = &scale }
}

func WithTypeface(t Typeface) TextOption {
	return func(o *textOptions) { o.typeface = &t }
}

func WithUnderline() TextOption {
	return func(o *textOptions) { o.underline = true }
}

func WithStrikethrough() TextOption {
	return func(o *textOptions) { o.strike = true }
}

// WithSuperscript raises the run. An optional scale adds a relative size
// attachment over the same range.
func WithSuperscript(scale ...float64) TextOption {
	return func(o *textOptions) {
		o.superscript = true
		if len(scale) > 0 {
			o.superScale = &scale[0]
		}
	}
}

// WithSubscript lowers the run. An optional scale adds a relative size
// attachment over the same range.
func WithSubscript(scale ...float64) TextOption {
	return func(o *textOptions) {
		o.subscript = true
		if len(scale) > 0 {
			o.subScale = &scale[0]
		}
	}
}

func WithTextFlags(f Flags) TextOption {
	return func(o *textOptions) { o.flags = f }
}

// styles resolves options into descriptors in emission order. Color parsing
// happens here, before the builder is touched.
func (o *textOptions) styles() ([]Style, error) {
	var out []Style

	color := o.color
	if len(o.colorSpec) > 0 {
		c, err := ParseColor(o.colorSpec)
		if err != nil {
			return nil, err
		}
		color = &c
	}
	if color != nil {
		out = append(out, ForegroundColor{Color: *color})
	}
	if o.background != nil {
		out = append(out, BackgroundColor{Color: *o.background})
	}
	if o.onClick != nil {
		out = append(out, Clickable{OnClick: o.onClick})
	}
	if len(o.link) > 0 {
		out = append(out, Link{URL: o.link})
	}
	if o.relSize != nil {
		out = append(out, RelativeSize{Scale: *o.relSize})
	}
	if o.absSize != nil {
		out = append(out, AbsoluteSize{Size: *o.absSize, DIP: true})
	}
	if o.scaleX != nil {
		out = append(out, ScaleX{Scale: *o.scaleX})
	}
	if o.typeface != nil {
		out = append(out, TypefaceStyle{Typeface: *o.typeface})
	}
	if o.underline {
		out = append(out, Underline{})
	}
	if o.strike {
		out = append(out, Strikethrough{})
	}
	if o.superscript {
		if o.superScale != nil {
			out = append(out, RelativeSize{Scale: *o.superScale})
		}
		out = append(out, Superscript{})
	}
	if o.subscript {
		if o.subScale != nil {
			out = append(out, RelativeSize{Scale: *o.subScale})
		}
		out = append(out, Subscript{})
	}
	return out, nil
}

// ImageOption configures placement of an inline image.
type ImageOption func(*imageOptions)

type imageOptions struct {
	width, height *int
	marginStart   int
	marginTop     int
	pixels        bool
	align         Alignment
	flags         Flags
}

// WithWidth requests a display width. When only one of width and height is
// given the other follows the intrinsic aspect ratio.
func WithWidth(w int) ImageOption {
	return func(o *imageOptions) { o.width = &w }
}

func WithHeight(h int) ImageOption {
	return func(o *imageOptions) { o.height = &h }
}

// WithMargins offsets the image from the start and top of its slot. Margins
// only apply when a size is requested.
func WithMargins(start, top int) ImageOption {
	return func(o *imageOptions) { o.marginStart, o.marginTop = start, top }
}

// WithPixelUnits makes sizes and margins device pixels instead of device
// independent units.
func WithPixelUnits() ImageOption {
	return func(o *imageOptions) { o.pixels = true }
}

func WithAlign(a Alignment) ImageOption {
	return func(o *imageOptions) { o.align = a }
}

func WithImageFlags(f Flags) ImageOption {
	return func(o *imageOptions) { o.flags = f }
}
