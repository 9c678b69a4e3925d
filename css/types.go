package css

import (
	"maps"
	"slices"
	"strings"
	"unicode"
)

// Value is a parsed property value.
type Value struct {
	Raw     string  // original text, e.g. "1.2em", "bold", "#ff0000"
	Value   float64 // numeric part if any
	Unit    string  // "em", "px", "%" and such
	Keyword string  // lower-cased identifier or the raw text of complex values
}

// IsNumeric returns true if the value has a numeric component, explicit
// zero included.
func (v Value) IsNumeric() bool {
	if v.Unit != "" {
		return true
	}
	if v.Value != 0 && v.Keyword == "" {
		return true
	}
	if v.Raw != "" && v.Keyword == "" {
		first := rune(v.Raw[0])
		return unicode.IsDigit(first) || first == '.' || first == '-' || first == '+'
	}
	return false
}

// Declarations are the properties of one class.
type Declarations map[string]Value

// Classes maps class names (without leading dot) to their declarations.
type Classes map[string]Declarations

// Merge returns classes from c with declarations of other layered on top.
// Neither argument is modified.
func (c Classes) Merge(other Classes) Classes {
	out := make(Classes, len(c)+len(other))
	for name, decl := range c {
		out[name] = maps.Clone(decl)
	}
	for name, decl := range other {
		if cur, ok := out[name]; ok {
			maps.Copy(cur, decl)
			continue
		}
		out[name] = maps.Clone(decl)
	}
	return out
}

// Names returns class names in sorted order.
func (c Classes) Names() []string {
	return slices.Sorted(maps.Keys(c))
}

// String renders declarations as CSS text, properties sorted.
func (d Declarations) String() string {
	var sb strings.Builder
	for i, name := range slices.Sorted(maps.Keys(d)) {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(d[name].Raw)
	}
	return sb.String()
}
