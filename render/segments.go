// Package render turns composed results into output documents: XHTML pages,
// zip bundles with images, and YAML or Ion dumps of the serialized form.
package render

import (
	"slices"

	"spt/span"
)

// Segment is a maximal run of units sharing the same set of attachments.
type Segment struct {
	span.Range
	// Attachments active over the whole segment, in attachment order.
	Attachments []span.Attachment

	active []int
}

// Image returns the inline image drawn in this segment, if any.
func (s Segment) Image() (span.InlineImage, bool) {
	for _, a := range s.Attachments {
		if img, ok := a.Style.(span.InlineImage); ok {
			return img, true
		}
	}
	return span.InlineImage{}, false
}

// Segments splits a result into non-overlapping segments covering all of
// its units.
//
// The algorithm:
//  1. Collect boundary points: document ends plus start and end of every
//     non-empty attachment.
//  2. For every pair of consecutive points find attachments covering it.
//  3. Merge adjacent segments with the same attachments.
//
// Units not covered by any attachment form segments without attachments, so
// "Alice" in color followed by plain ": hi" gives [0,5) color and [5,9).
func Segments(res *span.Result) []Segment {
	n := res.Len()
	if n == 0 {
		return nil
	}
	attachments := res.Attachments()

	points := []int{0, n}
	for _, a := range attachments {
		if a.Empty() || !a.ValidFor(n) {
			continue
		}
		points = append(points, a.Start, a.End)
	}
	slices.Sort(points)
	points = slices.Compact(points)

	var result []Segment
	for i := 0; i < len(points)-1; i++ {
		start, end := points[i], points[i+1]

		var active []int
		for j, a := range attachments {
			if !a.Empty() && a.Start <= start && end <= a.End {
				active = append(active, j)
			}
		}

		if len(result) > 0 {
			prev := &result[len(result)-1]
			if prev.End == start && slices.Equal(prev.active, active) {
				prev.End = end
				continue
			}
		}

		seg := Segment{Range: span.Range{Start: start, End: end}, active: active}
		for _, j := range active {
			seg.Attachments = append(seg.Attachments, attachments[j])
		}
		result = append(result, seg)
	}
	return result
}
