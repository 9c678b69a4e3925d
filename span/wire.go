package span

import (
	"maps"
)

// WireUnit describes one unit in serialized form: either a single character
// or the id of a placeholder.
type WireUnit struct {
	Char        string `yaml:"char,omitempty" ion:"char,omitempty"`
	Placeholder string `yaml:"placeholder,omitempty" ion:"placeholder,omitempty"`
}

// WireAttachment is an attachment in serialized form.
type WireAttachment struct {
	Start  int            `yaml:"start" ion:"start"`
	End    int            `yaml:"end" ion:"end"`
	Kind   string         `yaml:"kind" ion:"kind"`
	Flags  string         `yaml:"flags" ion:"flags"`
	Params map[string]any `yaml:"params,omitempty" ion:"params,omitempty"`
}

// Wire is the serialized shape of a Result, independent of any encoding.
type Wire struct {
	Units       []WireUnit       `yaml:"units" ion:"units"`
	Attachments []WireAttachment `yaml:"attachments" ion:"attachments"`
}

// Wire converts the result into its serialized shape. Callbacks and pixel
// data do not survive the conversion.
func (r *Result) Wire() Wire {
	var w Wire
	if r == nil {
		return w
	}
	w.Units = make([]WireUnit, 0, len(r.units))
	for _, u := range r.units {
		if u.IsPlaceholder() {
			w.Units = append(w.Units, WireUnit{Placeholder: u.Placeholder})
			continue
		}
		w.Units = append(w.Units, WireUnit{Char: string(u.Rune)})
	}
	w.Attachments = make([]WireAttachment, 0, len(r.attachments))
	for _, a := range r.attachments {
		wa := WireAttachment{
			Start: a.Start,
			End:   a.End,
			Kind:  a.Style.Kind().String(),
			Flags: a.Flags.String(),
		}
		if p := a.Style.Params(); len(p) > 0 {
			wa.Params = maps.Clone(p)
		}
		w.Attachments = append(w.Attachments, wa)
	}
	return w
}
