package span

import "fmt"

// Range is a half-open interval [Start, End) of document units.
type Range struct {
	Start, End int
}

func (r Range) Len() int { return r.End - r.Start }

func (r Range) Empty() bool { return r.End <= r.Start }

// Overlaps reports whether both ranges share at least one unit.
func (r Range) Overlaps(o Range) bool {
	return r.Start < o.End && o.Start < r.End
}

// ValidFor reports whether r indexes into a document of n units.
func (r Range) ValidFor(n int) bool {
	return 0 <= r.Start && r.Start <= r.End && r.End <= n
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}
