// Package span composes styled text out of ordered runs.
//
// A Builder appends text runs and inline image placeholders to a growing
// document of units and attaches style descriptors to the exact range each
// append produced, so callers never compute offsets by hand:
//
//	res := span.New().
//		AppendText("Alice", span.WithColorString("#A4A9B3")).
//		AppendText(": hello", span.WithColorString("#181E25")).
//		AppendImage(icon, span.WithWidth(20), span.WithHeight(20)).
//		Build()
//
// Ranges are half-open and expressed in document units: one unit per code
// point of appended text and exactly one unit per placeholder. Every
// attachment of a Result satisfies 0 <= Start <= End <= Result.Len().
//
// A Builder is owned by a single goroutine. Results are immutable and safe to
// share.
package span
