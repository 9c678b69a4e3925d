// Package compose turns compose scripts into styled results and writes them
// out in the requested format.
package compose

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"spt/config"
	"spt/css"
	"spt/raster"
	"spt/span"
	"spt/state"
)

// Composer builds results for scripts using shared document settings.
type Composer struct {
	cfg          *config.DocumentConfig
	classes      css.Classes
	assets       Assets
	defaultLabel []byte
	join         bool
	log          *zap.Logger
}

// Option customizes Composer.
type Option func(*Composer)

// WithClasses sets classes available to every script.
func WithClasses(classes css.Classes) Option {
	return func(c *Composer) { c.classes = classes }
}

// WithAssets sets the resolver for image references.
func WithAssets(a Assets) Option {
	return func(c *Composer) {
		if a != nil {
			c.assets = a
		}
	}
}

// WithDefaultLabel sets SVG data used for the "default" label.
func WithDefaultLabel(data []byte) Option {
	return func(c *Composer) { c.defaultLabel = data }
}

// WithJoin makes every message extend the result of the previous one, so
// all messages end up in a single result.
func WithJoin(join bool) Option {
	return func(c *Composer) { c.join = join }
}

func NewComposer(cfg *config.DocumentConfig, log *zap.Logger, opts ...Option) *Composer {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Composer{cfg: cfg, assets: noAssets{}, log: log}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Outcome is what composing a script produced. Warnings are recovered
// conditions from builders, results are complete regardless.
type Outcome struct {
	Results  []*span.Result
	Warnings error
}

// Compose builds results for the script. Any append dropped by a builder, a
// missing asset or a bad class reference fails the whole script.
func (c *Composer) Compose(s *Script) (*Outcome, error) {
	classes := c.classes
	if len(s.Stylesheet) > 0 {
		local, warnings, err := css.NewParser(c.log).Parse([]byte(s.Stylesheet), "script")
		if err != nil {
			return nil, fmt.Errorf("unable to parse script stylesheet: %w", err)
		}
		for _, w := range warnings {
			c.log.Warn("Stylesheet rule ignored", zap.String("reason", w))
		}
		classes = classes.Merge(local)
	}

	var (
		out  Outcome
		errs error
	)
	collect := func(b *span.Builder) {
		errs = multierr.Append(errs, b.Err())
		out.Warnings = multierr.Append(out.Warnings, b.Warnings())
	}

	if len(s.Runs) > 0 {
		b := c.newBuilder(nil)
		for i := range s.Runs {
			if err := c.appendFragment(b, &s.Runs[i], classes); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("run %d: %w", i+1, err))
			}
		}
		collect(b)
		out.Results = append(out.Results, b.Build())
	}

	// joined messages each extend the result built so far
	var joined *span.Result
	for i := range s.Messages {
		b := c.newBuilder(joined)
		if joined != nil {
			b.AppendText("\n")
		}
		if err := c.appendMessage(b, &s.Messages[i]); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("message %d: %w", i+1, err))
		}
		collect(b)
		if c.join {
			joined = b.Build()
			continue
		}
		out.Results = append(out.Results, b.Build())
	}
	if joined != nil {
		out.Results = append(out.Results, joined)
	}

	if errs != nil {
		return nil, errs
	}
	return &out, nil
}

// newBuilder starts a builder seeded with prev, which may be nil.
func (c *Composer) newBuilder(prev *span.Result) *span.Builder {
	return span.From(prev, span.WithLogger(c.log), span.WithConverter(span.Density(c.cfg.Density)))
}

func (c *Composer) appendFragment(b *span.Builder, f *Fragment, classes css.Classes) error {
	if f.IsImage() {
		opts := []span.ImageOption{
			span.WithMargins(f.MarginStart, f.MarginTop),
			span.WithAlign(f.Align),
		}
		if f.Width > 0 {
			opts = append(opts, span.WithWidth(f.Width))
		}
		if f.Height > 0 {
			opts = append(opts, span.WithHeight(f.Height))
		}
		if f.Pixels {
			opts = append(opts, span.WithPixelUnits())
		}

		if len(f.SVG) > 0 {
			c.appendSVG(b, []byte(f.SVG), f.Width, f.Height, f.Pixels, opts)
			return nil
		}
		return c.appendAsset(b, f.Image, f.Width, f.Height, f.Pixels, opts)
	}

	opts, err := c.textOptions(f, classes)
	if err != nil {
		return err
	}
	b.AppendText(f.Text, opts...)
	return nil
}

// textOptions puts class options first so that run properties override them.
func (c *Composer) textOptions(f *Fragment, classes css.Classes) ([]span.TextOption, error) {
	var opts []span.TextOption
	for name := range strings.FieldsSeq(f.Class) {
		decl, ok := classes[name]
		if !ok {
			return nil, fmt.Errorf("unknown class %q", name)
		}
		copts, err := decl.TextOptions()
		if err != nil {
			return nil, fmt.Errorf("class %q: %w", name, err)
		}
		opts = append(opts, copts...)
	}

	if len(f.Color) > 0 {
		opts = append(opts, span.WithColorString(f.Color))
	}
	if len(f.Background) > 0 {
		bg, err := span.ParseColor(f.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		opts = append(opts, span.WithBackground(bg))
	}
	if len(f.Link) > 0 {
		opts = append(opts, span.WithLink(f.Link))
	}
	if f.RelativeSize > 0 {
		opts = append(opts, span.WithRelativeSize(f.RelativeSize))
	}
	if f.AbsoluteSize > 0 {
		opts = append(opts, span.WithAbsoluteSize(f.AbsoluteSize))
	}
	if f.ScaleX > 0 {
		opts = append(opts, span.WithScaleX(f.ScaleX))
	}
	if f.Style != nil {
		opts = append(opts, span.WithTypeface(*f.Style))
	}
	if f.Underline {
		opts = append(opts, span.WithUnderline())
	}
	if f.Strikethrough {
		opts = append(opts, span.WithStrikethrough())
	}
	if f.Superscript.Set {
		opts = append(opts, shift(span.WithSuperscript, f.Superscript))
	}
	if f.Subscript.Set {
		opts = append(opts, shift(span.WithSubscript, f.Subscript))
	}
	return opts, nil
}

func shift(with func(...float64) span.TextOption, s Shift) span.TextOption {
	if s.Scale > 0 {
		return with(s.Scale)
	}
	return with()
}

// appendMessage lays out a chat line: name, content, then the first label.
// Missing parts are skipped.
func (c *Composer) appendMessage(b *span.Builder, m *Message) error {
	chat := &c.cfg.Chat
	if len(m.User) > 0 {
		b.AppendText(m.User, span.WithColorString(chat.NameColor))
		if len(chat.Separator) > 0 {
			b.AppendText(chat.Separator, span.WithColorString(chat.NameColor))
		}
	}
	if len(m.Content) > 0 {
		b.AppendText(m.Content, span.WithColorString(chat.ContentColor))
	}
	if len(m.Labels) == 0 {
		return nil
	}
	if len(m.Labels) > 1 {
		c.log.Debug("Only first label is shown", zap.String("user", m.User), zap.Strings("labels", m.Labels))
	}

	label := &chat.Label
	align, err := span.ParseAlignment(label.Align)
	if err != nil {
		return err
	}
	opts := []span.ImageOption{
		span.WithWidth(label.Width),
		span.WithHeight(label.Height),
		span.WithMargins(label.MarginStart, label.MarginTop),
		span.WithAlign(align),
	}
	if m.Labels[0] == state.DefaultLabelName && len(c.defaultLabel) > 0 {
		c.appendSVG(b, c.defaultLabel, label.Width, label.Height, false, opts)
		return nil
	}
	return c.appendAsset(b, m.Labels[0], label.Width, label.Height, false, opts)
}

func (c *Composer) appendAsset(b *span.Builder, name string, width, height int, pixels bool, opts []span.ImageOption) error {
	data, err := c.assets.ReadAsset(name)
	if err != nil {
		return err
	}
	if raster.IsSVG(data) {
		c.appendSVG(b, data, width, height, pixels, opts)
		return nil
	}
	img, format, err := raster.Load(data)
	if err != nil {
		return fmt.Errorf("image %q: %w", name, err)
	}
	c.log.Debug("Image loaded", zap.String("name", name), zap.String("format", format), zap.Stringer("bounds", img.Bounds()))
	b.AppendImage(img, opts...)
	return nil
}

// appendSVG rasterizes vector data at the requested size so that the image
// is not scaled again when fitted to its bounds. Pixel sizes are converted
// back to units for the rasterizer.
func (c *Composer) appendSVG(b *span.Builder, data []byte, width, height int, pixels bool, opts []span.ImageOption) {
	region := raster.SVGRegion{
		Data:         data,
		Width:        float64(width),
		Height:       float64(height),
		StrokeFactor: c.cfg.Images.StrokeWidthFactor,
	}
	if pixels && c.cfg.Density > 0 {
		region.Width /= c.cfg.Density
		region.Height /= c.cfg.Density
	}
	b.AppendRegion(region, opts...)
}
