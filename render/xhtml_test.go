package render

import (
	"bytes"
	"errors"
	"image"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"spt/config"
	"spt/span"
)

func testConfig() *config.DocumentConfig {
	return &config.DocumentConfig{
		Density: 1,
		Images: config.ImagesConfig{
			Format:      config.ImageFormatPng,
			JPEGQuality: 85,
			Filter:      config.ScaleFilterLanczos,
		},
	}
}

func render(t *testing.T, results []*span.Result, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	if err := WriteXHTML(&buf, results, opts); err != nil {
		t.Fatalf("WriteXHTML() error = %v", err)
	}
	return buf.String()
}

func TestXHTML_Text(t *testing.T) {
	res := span.New().
		AppendText("Alice", span.WithColorString("#A4A9B3"), span.WithTypeface(span.TypefaceBold)).
		AppendText(": ").
		AppendText("see", span.WithLink("https://example.com/?a=1&b=2")).
		AppendText(" ").
		AppendText("2", span.WithSuperscript(0.5)).
		AppendText("x", span.WithBackground(span.ARGB(0x80, 0, 0, 0)), span.WithUnderline(), span.WithStrikethrough()).
		AppendText("wide", span.WithScaleX(1.5), span.WithAbsoluteSize(14)).
		AppendText("go", span.WithClick(func() {})).
		Build()

	out := render(t, []*span.Result{res}, Options{Title: "chat <1>", Log: zaptest.NewLogger(t)})

	for _, want := range []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<title>chat &lt;1&gt;</title>`,
		`<p class="result" id="r1">`,
		`<span style="color: #A4A9B3; font-weight: bold">Alice</span>: `,
		`<a href="https://example.com/?a=1&amp;b=2">see</a> `,
		`<sup><span style="font-size: 0.5em">2</span></sup>`,
		`<span style="background-color: rgba(0, 0, 0, 0.502); text-decoration: underline line-through">x</span>`,
		`<span style="font-size: 14px; display: inline-block; transform: scaleX(1.5)">wide</span>`,
		`<span class="clickable">go</span>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestXHTML_Images(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	res := span.New(span.WithConverter(span.Density(2))).
		AppendText("Alice").
		AppendImage(img, span.WithWidth(20), span.WithHeight(20), span.WithMargins(6, 2), span.WithAlign(span.AlignmentCenter)).
		AppendImage(img).
		Build()

	var seen []span.InlineImage
	out := render(t, []*span.Result{res}, Options{
		Density: 2,
		Images: func(img span.InlineImage) (string, error) {
			seen = append(seen, img)
			return "images/" + img.ID, nil
		},
	})

	if len(seen) != 2 {
		t.Fatalf("image source called %d times, want 2", len(seen))
	}
	if !strings.Contains(out, `src="images/`+seen[0].ID+`"`) {
		t.Errorf("missing image reference:\n%s", out)
	}
	if !strings.Contains(out, `style="width: 20px; height: 20px; margin-left: 6px; margin-top: 2px; vertical-align: middle"`) {
		t.Errorf("unexpected sized image style:\n%s", out)
	}
	if !strings.Contains(out, `style="width: 5px; height: 5px; vertical-align: baseline"`) {
		t.Errorf("unexpected intrinsic image style:\n%s", out)
	}
}

func TestXHTML_ImageSourceError(t *testing.T) {
	res := span.New().AppendImage(image.NewRGBA(image.Rect(0, 0, 1, 1))).Build()
	boom := errors.New("boom")
	_, err := XHTML([]*span.Result{res}, Options{Images: func(span.InlineImage) (string, error) { return "", boom }})
	if !errors.Is(err, boom) {
		t.Fatalf("expected image source error, got %v", err)
	}
}

func TestXHTML_MultipleResults(t *testing.T) {
	a := span.New().AppendText("one").Build()
	b := span.New().AppendText("two").Build()
	out := render(t, []*span.Result{a, b, span.New().Build()}, Options{})
	for _, want := range []string{`id="r1">one</p>`, `id="r2">two</p>`, `id="r3"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestDataURIs(t *testing.T) {
	cfg := testConfig()
	res := span.New().AppendImage(image.NewRGBA(image.Rect(0, 0, 4, 4)), span.WithWidth(2)).Build()
	out := render(t, []*span.Result{res}, Options{Images: DataURIs(cfg, zaptest.NewLogger(t))})
	if !strings.Contains(out, `src="data:image/png;base64,`) {
		t.Errorf("expected png data uri:\n%s", out)
	}
}

func TestCSSColor(t *testing.T) {
	tests := []struct {
		c    span.Color
		want string
	}{
		{span.ARGB(0xFF, 0x18, 0x1E, 0x25), "#181E25"},
		{span.ARGB(0, 0, 0, 0), "rgba(0, 0, 0, 0.000)"},
		{span.ARGB(0xFF/2, 255, 0, 0), "rgba(255, 0, 0, 0.498)"},
	}
	for _, tt := range tests {
		if got := cssColor(tt.c); got != tt.want {
			t.Errorf("cssColor(%s) = %q, want %q", tt.c, got, tt.want)
		}
	}
}
