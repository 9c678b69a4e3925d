package span

import (
	"errors"
	"fmt"
	"image"
	"slices"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Builder accumulates runs and their style attachments. Every append method
// returns the receiver so calls can be chained. A failed append does not
// change the document: the failure is recorded (see Err) and chaining goes on.
//
// NOTE: Builder is not safe for concurrent use.
type Builder struct {
	units       []Unit
	attachments []Attachment

	// range of the most recent append
	start, end int

	conv UnitConverter
	log  *zap.Logger

	err      error
	warnings error
}

// New returns an empty builder.
func New(opts ...Option) *Builder {
	b := &Builder{
		conv: Density(1),
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// From returns a builder continuing the document of an existing result. The
// result itself is not modified.
func From(res *Result, opts ...Option) *Builder {
	b := New(opts...)
	if res != nil {
		b.units = slices.Clone(res.units)
		b.attachments = slices.Clone(res.attachments)
	}
	b.start, b.end = len(b.units), len(b.units)
	return b
}

// AppendText appends text as one run and attaches the selected styles to its
// range. Empty text appends nothing and collapses the cursor to the end of
// the document.
func (b *Builder) AppendText(text string, opts ...TextOption) *Builder {
	n := len(b.units)
	if len(text) == 0 {
		b.start, b.end = n, n
		return b
	}

	var to textOptions
	for _, opt := range opts {
		opt(&to)
	}
	styles, err := to.styles()
	if err != nil {
		b.fail(fmt.Errorf("unable to append text at %d: %w", n, err))
		return b
	}

	b.units = slices.Grow(b.units, utf8.RuneCountInString(text))
	for _, r := range text {
		b.units = append(b.units, Unit{Rune: r})
	}
	b.start, b.end = n, len(b.units)
	for _, s := range styles {
		b.attach(s, to.flags)
	}

	b.log.Debug("Text appended", zap.Int("start", b.start), zap.Int("end", b.end), zap.Int("styles", len(styles)))
	return b
}

// AppendImage appends a single placeholder unit with an inline image
// attachment. A nil image is ignored and leaves the cursor where it was.
func (b *Builder) AppendImage(img image.Image, opts ...ImageOption) *Builder {
	if img == nil {
		return b
	}

	var lo imageOptions
	for _, opt := range opts {
		opt(&lo)
	}

	size := img.Bounds().Size()
	bounds, intrinsic, err := lo.placement(size, b.conv)
	if err != nil {
		b.warn(fmt.Errorf("image at %d: %w", len(b.units), err))
	}

	id := newPlaceholderID()
	n := len(b.units)
	b.units = append(b.units, Unit{Placeholder: id})
	b.start, b.end = n, n+1
	b.attach(InlineImage{
		ID:        id,
		Image:     img,
		Bounds:    bounds,
		Intrinsic: intrinsic,
		Align:     lo.align,
	}, lo.flags)

	b.log.Debug("Image appended", zap.Int("start", b.start), zap.String("id", id), zap.Stringer("bounds", bounds), zap.Bool("intrinsic", intrinsic))
	return b
}

// AppendRegion rasterizes r and appends the resulting image the same way
// AppendImage does. When rasterization fails nothing is appended.
func (b *Builder) AppendRegion(r Rasterizer, opts ...ImageOption) *Builder {
	if r == nil {
		return b
	}

	img, err := r.Rasterize(b.conv)
	if err == nil && (img == nil || img.Bounds().Empty()) {
		err = errors.New("empty image")
	}
	if err != nil {
		if !errors.Is(err, ErrRasterizationFailed) {
			err = fmt.Errorf("%w: %w", ErrRasterizationFailed, err)
		}
		b.fail(fmt.Errorf("unable to append region at %d: %w", len(b.units), err))
		return b
	}
	return b.AppendImage(img, opts...)
}

// Build returns a snapshot of everything appended so far. The builder stays
// usable afterwards.
func (b *Builder) Build() *Result {
	return &Result{
		units:       slices.Clone(b.units),
		attachments: slices.Clone(b.attachments),
	}
}

// Len returns the current document length in units.
func (b *Builder) Len() int { return len(b.units) }

// Cursor returns the range produced by the most recent append.
func (b *Builder) Cursor() Range { return Range{Start: b.start, End: b.end} }

// Err returns all failures of appends that were dropped, or nil.
func (b *Builder) Err() error { return b.err }

// Warnings returns recovered conditions of appends that still happened, such
// as ErrDegenerateImageDimensions, or nil.
func (b *Builder) Warnings() error { return b.warnings }

func (b *Builder) attach(s Style, f Flags) {
	b.attachments = append(b.attachments, Attachment{
		Range: Range{Start: b.start, End: b.end},
		Style: s,
		Flags: f,
	})
}

func (b *Builder) fail(err error) {
	b.log.Warn("Append dropped", zap.Error(err))
	b.err = multierr.Append(b.err, err)
}

func (b *Builder) warn(err error) {
	b.log.Warn("Append recovered", zap.Error(err))
	b.warnings = multierr.Append(b.warnings, err)
}

func newPlaceholderID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
