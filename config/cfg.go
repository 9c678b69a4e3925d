package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	// LabelConfig places label images after the user name in chat messages.
	// Sizes are in device independent units.
	LabelConfig struct {
		Width       int    `yaml:"width" validate:"min=1"`
		Height      int    `yaml:"height" validate:"min=1"`
		MarginStart int    `yaml:"margin_start" validate:"gte=0"`
		MarginTop   int    `yaml:"margin_top" validate:"gte=0"`
		Align       string `yaml:"align" validate:"oneof=baseline bottom center"`
	}

	ChatConfig struct {
		NameColor    string      `yaml:"name_color" validate:"required"`
		ContentColor string      `yaml:"content_color" validate:"required"`
		Separator    string      `yaml:"separator"`
		Label        LabelConfig `yaml:"label"`
	}

	ImagesConfig struct {
		Format             ImageFormat `yaml:"format" validate:"gte=0"`
		JPEGQuality        int         `yaml:"jpeg_quality_level" validate:"min=40,max=100"`
		Filter             ScaleFilter `yaml:"scale_filter" validate:"gte=0"`
		RemoveTransparency bool        `yaml:"remove_transparency"`
		StrokeWidthFactor  float64     `yaml:"svg_stroke_width_factor" validate:"gte=0.0"`
	}

	DocumentConfig struct {
		FixZip                bool         `yaml:"fix_zip"`
		Density               float64      `yaml:"density" validate:"gt=0.0"`
		StylesheetPath        string       `yaml:"stylesheet_path" sanitize:"assure_file_access"`
		OutputNameTemplate    string       `yaml:"output_name_template"`
		FileNameTransliterate bool         `yaml:"file_name_transliterate"`
		Images                ImagesConfig `yaml:"images"`
		Chat                  ChatConfig   `yaml:"chat"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Document  DocumentConfig `yaml:"document"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above, alternative is to use struct
	// field name and reflection which I want to avoid for now
	OutputNameTemplateFieldName TemplateFieldName = "output_name_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration expands the embedded template to get defaults, then
// superimposes values from the file at path (if any) and validates the result.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare expands the embedded configuration template.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
