package span

// Kind of the style descriptor attached to a range.
// ENUM(foreground, background, clickable, link, relativeSize, absoluteSize, scaleX, typeface, underline, strikethrough, superscript, subscript, image)
type StyleKind int

// Text weight and slant.
// ENUM(normal, bold, italic, boldItalic)
type Typeface int

// Vertical alignment of an inline image relative to the surrounding line.
// ENUM(baseline, bottom, center)
type Alignment int

// Span inclusion mode: whether text inserted at the range edges later by a
// consumer belongs to the range. Carried as is, never interpreted here.
// ENUM(exclusiveExclusive, exclusiveInclusive, inclusiveExclusive, inclusiveInclusive)
type Flags int
