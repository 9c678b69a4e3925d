package render

import (
	"fmt"
	"io"

	"github.com/amazon-ion/ion-go/ion"
	yaml "gopkg.in/yaml.v3"

	"spt/span"
)

// Dump is the serialized form of all results of one script.
type Dump struct {
	Source  string      `yaml:"source,omitempty" ion:"source,omitempty"`
	Results []span.Wire `yaml:"results" ion:"results"`
}

func NewDump(source string, results []*span.Result) Dump {
	d := Dump{Source: source, Results: make([]span.Wire, 0, len(results))}
	for _, res := range results {
		d.Results = append(d.Results, res.Wire())
	}
	return d
}

// YAML writes the serialized form of results as a YAML document.
func YAML(w io.Writer, d Dump) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("unable to encode yaml: %w", err)
	}
	return enc.Close()
}

// Ion writes the serialized form of results in Ion text format.
func Ion(w io.Writer, d Dump) error {
	data, err := ion.MarshalText(d)
	if err != nil {
		return fmt.Errorf("unable to encode ion: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// ReadIon decodes a Dump written by Ion (text or binary).
func ReadIon(data []byte) (Dump, error) {
	var d Dump
	if err := ion.Unmarshal(data, &d); err != nil {
		return Dump{}, fmt.Errorf("unable to decode ion: %w", err)
	}
	return d, nil
}
