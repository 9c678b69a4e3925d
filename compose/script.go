package compose

import (
	"errors"
	"fmt"
	"io"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"spt/span"
)

// Script is a single compose document. Runs are composed into one result,
// every message yields its own result (or extends the previous one when
// joining).
type Script struct {
	Title      string     `yaml:"title"`
	Stylesheet string     `yaml:"stylesheet"`
	Runs       []Fragment `yaml:"runs"`
	Messages   []Message  `yaml:"messages"`
}

// Fragment is one append: text when Image and SVG are empty, otherwise an
// inline image. Sizes are in device independent units unless Pixels is set.
type Fragment struct {
	Text          string         `yaml:"text"`
	Class         string         `yaml:"class"`
	Color         string         `yaml:"color"`
	Background    string         `yaml:"background"`
	Link          string         `yaml:"link"`
	Underline     bool           `yaml:"underline"`
	Strikethrough bool           `yaml:"strikethrough"`
	RelativeSize  float64        `yaml:"relative_size"`
	AbsoluteSize  int            `yaml:"absolute_size"`
	ScaleX        float64        `yaml:"scale_x"`
	Style         *span.Typeface `yaml:"style"`
	Superscript   Shift          `yaml:"superscript"`
	Subscript     Shift          `yaml:"subscript"`

	Image       string         `yaml:"image"`
	SVG         string         `yaml:"svg"`
	Width       int            `yaml:"width"`
	Height      int            `yaml:"height"`
	MarginStart int            `yaml:"margin_start"`
	MarginTop   int            `yaml:"margin_top"`
	Pixels      bool           `yaml:"pixels"`
	Align       span.Alignment `yaml:"align"`
}

// IsImage reports whether fragment describes an inline image.
func (f *Fragment) IsImage() bool {
	return len(f.Image) > 0 || len(f.SVG) > 0
}

// Message is one chat line: user name, content and optional user labels.
// Labels are asset paths, "default" selects the built-in badge.
type Message struct {
	User    string   `yaml:"user"`
	Labels  []string `yaml:"labels"`
	Content string   `yaml:"content"`
}

// Shift describes superscript or subscript. In YAML it is either a boolean
// or a positive number which also scales the text.
type Shift struct {
	Set   bool
	Scale float64
}

func (s *Shift) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: boolean or number expected", node.Line)
	}
	var b bool
	if err := node.Decode(&b); err == nil {
		*s = Shift{Set: b}
		return nil
	}
	var f float64
	if err := node.Decode(&f); err != nil {
		return fmt.Errorf("line %d: boolean or number expected: %w", node.Line, err)
	}
	if f < 0 {
		return fmt.Errorf("line %d: negative scale %g", node.Line, f)
	}
	*s = Shift{Set: f > 0, Scale: f}
	return nil
}

func (s Shift) MarshalYAML() (any, error) {
	if s.Scale > 0 {
		return s.Scale, nil
	}
	return s.Set, nil
}

// DecodeScript reads a compose script. Unknown fields are rejected.
func DecodeScript(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty script")
		}
		return nil, fmt.Errorf("unable to decode script: %w", err)
	}
	for i := range s.Runs {
		f := &s.Runs[i]
		if len(f.Image) > 0 && len(f.SVG) > 0 {
			return nil, fmt.Errorf("run %d: image and svg are mutually exclusive", i+1)
		}
		if f.IsImage() && len(f.Text) > 0 {
			return nil, fmt.Errorf("run %d: text cannot be combined with image", i+1)
		}
		f.Class = strings.TrimSpace(f.Class)
	}
	if len(s.Runs) == 0 && len(s.Messages) == 0 {
		return nil, errors.New("script has neither runs nor messages")
	}
	return &s, nil
}
