package span

import (
	"slices"
	"strings"

	"spt/utils/debug"
)

// PlaceholderRune stands for an inline image when a Result is flattened to
// plain text.
const PlaceholderRune = '\uFFFC'

// Unit is one document position: a code point of appended text or an inline
// image placeholder.
type Unit struct {
	Rune        rune
	Placeholder string
}

func (u Unit) IsPlaceholder() bool { return len(u.Placeholder) > 0 }

// Result is an immutable snapshot of a composed document.
type Result struct {
	units       []Unit
	attachments []Attachment
}

// Len returns the number of units.
func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.units)
}

// Text returns the document as a string with PlaceholderRune in place of
// every inline image.
func (r *Result) Text() string {
	if r == nil {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(r.units))
	for _, u := range r.units {
		if u.IsPlaceholder() {
			sb.WriteRune(PlaceholderRune)
			continue
		}
		sb.WriteRune(u.Rune)
	}
	return sb.String()
}

// Units returns a copy of the document units.
func (r *Result) Units() []Unit {
	if r == nil {
		return nil
	}
	return slices.Clone(r.units)
}

// Attachments returns a copy of the attachments in the order they were made.
func (r *Result) Attachments() []Attachment {
	if r == nil {
		return nil
	}
	return slices.Clone(r.attachments)
}

// Images returns inline image attachments keyed by placeholder id.
func (r *Result) Images() map[string]InlineImage {
	images := make(map[string]InlineImage)
	if r == nil {
		return images
	}
	for _, a := range r.attachments {
		if img, ok := a.Style.(InlineImage); ok {
			images[img.ID] = img
		}
	}
	return images
}

// Slice returns the text covered by rng, placeholders included.
func (r *Result) Slice(rng Range) string {
	if r == nil || !rng.ValidFor(len(r.units)) {
		return ""
	}
	var sb strings.Builder
	for _, u := range r.units[rng.Start:rng.End] {
		if u.IsPlaceholder() {
			sb.WriteRune(PlaceholderRune)
			continue
		}
		sb.WriteRune(u.Rune)
	}
	return sb.String()
}

// String dumps the result as an indented tree for debugging.
func (r *Result) String() string {
	tw := debug.NewTreeWriter()
	tw.Line(0, "Result units=%d attachments=%d", r.Len(), len(r.Attachments()))
	tw.TextBlock(1, "text", r.Text())
	for i, a := range r.Attachments() {
		tw.Line(1, "#%d %s %s flags=%s", i, a.Range, a.Style.Kind(), a.Flags)
		tw.TextBlock(2, "covers", r.Slice(a.Range))
		tw.Params(2, a.Style.Params())
	}
	return tw.String()
}
