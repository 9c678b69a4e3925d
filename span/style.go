package span

import (
	"image"
)

// Style is a style descriptor attached to a range of the document. The set of
// implementations is closed; switch on the concrete type or on Kind.
type Style interface {
	Kind() StyleKind
	// Params returns serializable parameters of the descriptor.
	Params() map[string]any
	sealed()
}

// Attachment binds a style descriptor to a half-open range.
type Attachment struct {
	Range
	Style Style
	Flags Flags
}

type (
	// ForegroundColor sets the text color.
	ForegroundColor struct{ Color Color }

	// BackgroundColor sets the color behind the text.
	BackgroundColor struct{ Color Color }

	// Clickable makes the range a click target.
	Clickable struct{ OnClick func() }

	// Link makes the range a hyperlink.
	Link struct{ URL string }

	// RelativeSize scales the text size.
	RelativeSize struct{ Scale float64 }

	// AbsoluteSize sets the text size, in device independent units when DIP
	// is set.
	AbsoluteSize struct {
		Size int
		DIP  bool
	}

	// ScaleX stretches glyphs horizontally.
	ScaleX struct{ Scale float64 }

	// TypefaceStyle sets weight and slant.
	TypefaceStyle struct{ Typeface Typeface }

	Underline     struct{}
	Strikethrough struct{}
	Superscript   struct{}
	Subscript     struct{}

	// InlineImage is drawn in place of a placeholder unit. Bounds are in
	// device pixels, Min carries the margins. Intrinsic is set when no size
	// was requested (or the request was degenerate) and Bounds is the natural
	// image size.
	InlineImage struct {
		ID        string
		Image     image.Image
		Bounds    image.Rectangle
		Intrinsic bool
		Align     Alignment
	}
)

func (ForegroundColor) Kind() StyleKind { return StyleKindForeground }
func (BackgroundColor) Kind() StyleKind { return StyleKindBackground }
func (Clickable) Kind() StyleKind       { return StyleKindClickable }
func (Link) Kind() StyleKind            { return StyleKindLink }
func (RelativeSize) Kind() StyleKind    { return StyleKindRelativeSize }
func (AbsoluteSize) Kind() StyleKind    { return StyleKindAbsoluteSize }
func (ScaleX) Kind() StyleKind          { return StyleKindScaleX }
func (TypefaceStyle) Kind() StyleKind   { return StyleKindTypeface }
func (Underline) Kind() StyleKind       { return StyleKindUnderline }
func (Strikethrough) Kind() StyleKind   { return StyleKindStrikethrough }
func (Superscript) Kind() StyleKind     { return StyleKindSuperscript }
func (Subscript) Kind() StyleKind       { return StyleKindSubscript }
func (InlineImage) Kind() StyleKind     { return StyleKindImage }

func (s ForegroundColor) Params() map[string]any {
	return map[string]any{"color": s.Color.String()}
}

func (s BackgroundColor) Params() map[string]any {
	return map[string]any{"color": s.Color.String()}
}

// Params of Clickable are empty, callbacks do not serialize.
func (Clickable) Params() map[string]any { return map[string]any{} }

func (s Link) Params() map[string]any {
	return map[string]any{"url": s.URL}
}

func (s RelativeSize) Params() map[string]any {
	return map[string]any{"scale": s.Scale}
}

func (s AbsoluteSize) Params() map[string]any {
	return map[string]any{"size": s.Size, "dip": s.DIP}
}

func (s ScaleX) Params() map[string]any {
	return map[string]any{"scale": s.Scale}
}

func (s TypefaceStyle) Params() map[string]any {
	return map[string]any{"typeface": s.Typeface.String()}
}

func (Underline) Params() map[string]any     { return map[string]any{} }
func (Strikethrough) Params() map[string]any { return map[string]any{} }
func (Superscript) Params() map[string]any   { return map[string]any{} }
func (Subscript) Params() map[string]any     { return map[string]any{} }

func (s InlineImage) Params() map[string]any {
	return map[string]any{
		"id":        s.ID,
		"left":      s.Bounds.Min.X,
		"top":       s.Bounds.Min.Y,
		"width":     s.Bounds.Dx(),
		"height":    s.Bounds.Dy(),
		"intrinsic": s.Intrinsic,
		"align":     s.Align.String(),
	}
}

func (ForegroundColor) sealed() {}
func (BackgroundColor) sealed() {}
func (Clickable) sealed()       {}
func (Link) sealed()            {}
func (RelativeSize) sealed()    {}
func (AbsoluteSize) sealed()    {}
func (ScaleX) sealed()          {}
func (TypefaceStyle) sealed()   {}
func (Underline) sealed()       {}
func (Strikethrough) sealed()   {}
func (Superscript) sealed()     {}
func (Subscript) sealed()       {}
func (InlineImage) sealed()     {}
