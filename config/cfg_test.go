package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
}

func TestConfig_DefaultValues(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	doc := cfg.Document
	if doc.Density != 1.0 {
		t.Errorf("Density = %g, want 1", doc.Density)
	}
	if doc.Images.Format != ImageFormatPng {
		t.Errorf("Images.Format = %s, want png", doc.Images.Format)
	}
	if doc.Images.Filter != ScaleFilterLanczos {
		t.Errorf("Images.Filter = %s, want lanczos", doc.Images.Filter)
	}
	if doc.Images.JPEGQuality != 85 {
		t.Errorf("Images.JPEGQuality = %d, want 85", doc.Images.JPEGQuality)
	}
	if doc.Chat.NameColor != "#A4A9B3" || doc.Chat.ContentColor != "#181E25" {
		t.Errorf("Chat colors = %s/%s", doc.Chat.NameColor, doc.Chat.ContentColor)
	}
	label := doc.Chat.Label
	if label.Width != 20 || label.Height != 20 || label.MarginStart != 6 || label.MarginTop != 2 || label.Align != "baseline" {
		t.Errorf("Chat.Label = %+v", label)
	}
	if doc.OutputNameTemplate != "" {
		t.Errorf("OutputNameTemplate = %q, want empty", doc.OutputNameTemplate)
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Errorf("console level = %q, want normal", cfg.Logging.ConsoleLogger.Level)
	}
	if cfg.Logging.FileLogger.Level != "none" {
		t.Errorf("file level = %q, want none", cfg.Logging.FileLogger.Level)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	path := writeConfig(t, `version: 1
document:
  fix_zip: true
  density: 2.5
  output_name_template: "{{ .User }}/{{ .SourceFile }}"
  images:
    format: jpeg
    jpeg_quality_level: 70
    scale_filter: nearest
  chat:
    name_color: red
    label:
      width: 24
      height: 24
      align: center
logging:
  console:
    level: debug
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	doc := cfg.Document
	if !doc.FixZip {
		t.Error("Expected FixZip to be true")
	}
	if doc.Density != 2.5 {
		t.Errorf("Density = %g, want 2.5", doc.Density)
	}
	if doc.OutputNameTemplate != "{{ .User }}/{{ .SourceFile }}" {
		t.Errorf("OutputNameTemplate = %q, template must not be expanded", doc.OutputNameTemplate)
	}
	if doc.Images.Format != ImageFormatJpeg || doc.Images.JPEGQuality != 70 || doc.Images.Filter != ScaleFilterNearest {
		t.Errorf("Images = %+v", doc.Images)
	}
	if doc.Chat.NameColor != "red" {
		t.Errorf("NameColor = %q, want red", doc.Chat.NameColor)
	}
	// untouched values keep defaults
	if doc.Chat.ContentColor != "#181E25" {
		t.Errorf("ContentColor = %q, want default", doc.Chat.ContentColor)
	}
	if doc.Chat.Label.Width != 24 || doc.Chat.Label.MarginStart != 6 || doc.Chat.Label.Align != "center" {
		t.Errorf("Label = %+v", doc.Chat.Label)
	}
	if cfg.Logging.ConsoleLogger.Level != "debug" {
		t.Errorf("console level = %q, want debug", cfg.Logging.ConsoleLogger.Level)
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "invalid yaml",
			content: `version: 1
document:
  fix_zip: true
  invalid indent
`,
		},
		{
			name: "unknown field",
			content: `version: 1
unknown_field: value
`,
		},
		{
			name:    "wrong version",
			content: "version: 2\n",
		},
		{
			name: "zero density",
			content: `version: 1
document:
  density: 0
`,
		},
		{
			name: "jpeg quality out of range",
			content: `version: 1
document:
  images:
    jpeg_quality_level: 10
`,
		},
		{
			name: "unknown image format",
			content: `version: 1
document:
  images:
    format: gif
`,
		},
		{
			name: "bad label align",
			content: `version: 1
document:
  chat:
    label:
      align: top
`,
		},
		{
			name: "empty label width",
			content: `version: 1
document:
  chat:
    label:
      width: 0
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Prepare() returned empty data")
	}
	if _, err := unmarshalConfig(data, &Config{}, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	cfg.Document.Images.Format = ImageFormatJpeg

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(data), "format: jpeg") {
		t.Errorf("Dump() does not contain image format as text:\n%s", data)
	}

	cfg2, err := unmarshalConfig(data, &Config{}, false)
	if err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if cfg2.Document.Images.Format != ImageFormatJpeg {
		t.Errorf("Format after dump/load = %s", cfg2.Document.Images.Format)
	}
}

func TestOutputFmt(t *testing.T) {
	tests := []struct {
		name string
		ext  string
	}{
		{"xhtml", ".xhtml"},
		{"bundle", ".zip"},
		{"yaml", ".yaml"},
		{"ion", ".ion"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseOutputFmt(tt.name)
			if err != nil {
				t.Fatalf("ParseOutputFmt(%q) error = %v", tt.name, err)
			}
			if f.String() != tt.name {
				t.Errorf("String() = %q", f.String())
			}
			if f.Ext() != tt.ext {
				t.Errorf("Ext() = %q, want %q", f.Ext(), tt.ext)
			}
		})
	}

	if _, err := ParseOutputFmt("epub"); err == nil {
		t.Error("ParseOutputFmt(epub) expected error")
	}
	if n := len(OutputFmtNames()); n != 4 {
		t.Errorf("OutputFmtNames() has %d entries, want 4", n)
	}
}

func TestOutputFmt_Ext_Panic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for invalid format")
		}
	}()
	OutputFmt(42).Ext()
}

func TestImageFormat_Ext(t *testing.T) {
	if ImageFormatPng.Ext() != ".png" || ImageFormatJpeg.Ext() != ".jpg" {
		t.Errorf("Ext() = %s %s", ImageFormatPng.Ext(), ImageFormatJpeg.Ext())
	}
}

func TestCleanFileName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"chat", "chat"},
		{"a" + string(os.PathSeparator) + "b", "ab"},
		{"tab\there", "tabhere"},
		{"", "_unnamed_"},
	}
	for _, tt := range tests {
		if got := CleanFileName(tt.in); got != tt.want {
			t.Errorf("CleanFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
