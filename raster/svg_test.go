package raster

import (
	"errors"
	"image/color"
	"strings"
	"testing"

	"spt/span"
)

const rectSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 50"><rect width="100" height="50" fill="black"/></svg>`

func TestSVGRegion_Rasterize(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		density       span.Density
		wantW, wantH  int
	}{
		{"intrinsic", 0, 0, 1, 100, 50},
		{"scale_by_width", 200, 0, 1, 200, 100},
		{"scale_by_height", 0, 200, 1, 400, 200},
		{"fit_box", 150, 150, 1, 150, 75},
		{"density", 20, 0, 2, 40, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := SVGRegion{Data: []byte(rectSVG), Width: tt.width, Height: tt.height}
			img, err := r.Rasterize(tt.density)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if img.Bounds().Dx() != tt.wantW || img.Bounds().Dy() != tt.wantH {
				t.Fatalf("unexpected bounds: %v", img.Bounds())
			}
		})
	}
}

func TestSVGRegion_Background(t *testing.T) {
	svg := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"></svg>`

	img, err := SVGRegion{Data: []byte(svg), Background: color.White}.Rasterize(span.Density(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, _, a := img.At(5, 5).RGBA(); a != 0xFFFF {
		t.Errorf("expected opaque background, alpha = %x", a)
	}

	img, err = SVGRegion{Data: []byte(svg)}.Rasterize(span.Density(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, _, a := img.At(5, 5).RGBA(); a != 0 {
		t.Errorf("expected transparent canvas, alpha = %x", a)
	}
}

func TestSVGRegion_ZeroSize(t *testing.T) {
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"><rect width="10" height="10"/></svg>`)

	t.Run("no request", func(t *testing.T) {
		_, err := SVGRegion{Data: svg}.Rasterize(span.Density(1))
		if !errors.Is(err, span.ErrRasterizationFailed) {
			t.Fatalf("expected ErrRasterizationFailed, got %v", err)
		}
	})

	t.Run("one dimension", func(t *testing.T) {
		_, err := SVGRegion{Data: svg, Width: 10}.Rasterize(span.Density(1))
		if !errors.Is(err, span.ErrRasterizationFailed) {
			t.Fatalf("expected ErrRasterizationFailed, got %v", err)
		}
	})

	t.Run("both dimensions", func(t *testing.T) {
		img, err := SVGRegion{Data: svg, Width: 12, Height: 8}.Rasterize(span.Density(1))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if img.Bounds().Dx() != 12 || img.Bounds().Dy() != 8 {
			t.Fatalf("unexpected bounds: %v", img.Bounds())
		}
	})
}

func TestSVGRegion_Malformed(t *testing.T) {
	_, err := SVGRegion{Data: []byte("<svg><g></svg>")}.Rasterize(span.Density(1))
	if !errors.Is(err, span.ErrRasterizationFailed) {
		t.Fatalf("expected ErrRasterizationFailed, got %v", err)
	}
}

func TestSVGRegion_Clamp(t *testing.T) {
	old := maxRasterDim
	maxRasterDim = 64
	t.Cleanup(func() { maxRasterDim = old })

	img, err := SVGRegion{Data: []byte(rectSVG), Width: 1000}.Rasterize(span.Density(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 32 {
		t.Fatalf("unexpected bounds: %v", img.Bounds())
	}
}

func TestScaleStrokeWidth(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		factor float64
		want   string
	}{
		{"attribute", `<path stroke-width="1.5"/>`, 2, `<path stroke-width="3"/>`},
		{"property", `style="stroke-width: 2"`, 1.5, `style="stroke-width: 3"`},
		{"identity", `<path stroke-width="1"/>`, 1, `<path stroke-width="1"/>`},
		{"negative", `<path stroke-width="1"/>`, -1, `<path stroke-width="1"/>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(ScaleStrokeWidth([]byte(tt.in), tt.factor))
			if got != tt.want {
				t.Errorf("ScaleStrokeWidth() = %q, want %q", got, tt.want)
			}
		})
	}

	// original data must stay intact
	in := []byte(strings.Repeat(`<path stroke-width="2"/>`, 2))
	orig := string(in)
	_ = ScaleStrokeWidth(in, 3)
	if string(in) != orig {
		t.Error("input modified in place")
	}
}
