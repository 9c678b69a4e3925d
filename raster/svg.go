// Package raster turns label assets and embedded SVG regions into pixels and
// encodes inline images for output bundles.
package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"regexp"
	"strconv"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"spt/span"
)

// maxRasterDim limits the pixel size of a rasterized region. Huge viewBox
// values would otherwise allocate gigabytes for the RGBA buffer.
var maxRasterDim = 8192

// strokeWidthRe matches stroke-width attributes and properties, capturing the
// numeric value.
var strokeWidthRe = regexp.MustCompile(`(stroke-width\s*[=:]\s*["']?)(\d+(?:\.\d+)?)(["']?)`)

// ScaleStrokeWidth multiplies every stroke-width value in SVG data by factor.
// Data is returned unchanged when factor is not positive or is 1.
func ScaleStrokeWidth(data []byte, factor float64) []byte {
	if factor <= 0 || factor == 1.0 {
		return data
	}

	return strokeWidthRe.ReplaceAllFunc(data, func(match []byte) []byte {
		sub := strokeWidthRe.FindSubmatch(match)
		if len(sub) < 4 {
			return match
		}
		value, err := strconv.ParseFloat(string(sub[2]), 64)
		if err != nil {
			return match
		}
		out := append([]byte{}, sub[1]...)
		out = append(out, strconv.FormatFloat(value*factor, 'f', -1, 64)...)
		return append(out, sub[3]...)
	})
}

// SVGRegion is an embedded vector region rasterized on demand. Width and
// Height are the requested display size in device independent units, zero
// means "not requested". With a single dimension the other one follows the
// viewBox aspect ratio, with both the drawing is fitted into the box.
type SVGRegion struct {
	Data          []byte
	Width, Height float64
	// StrokeFactor is applied to stroke widths before drawing, see
	// ScaleStrokeWidth.
	StrokeFactor float64
	// Background fills the canvas before drawing, nil leaves it transparent.
	Background color.Color
}

// Rasterize implements span.Rasterizer.
func (r SVGRegion) Rasterize(conv span.UnitConverter) (image.Image, error) {
	data := ScaleStrokeWidth(r.Data, r.StrokeFactor)

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", span.ErrRasterizationFailed, err)
	}

	var targetW, targetH int
	if r.Width > 0 {
		targetW = conv.ToPixels(r.Width)
	}
	if r.Height > 0 {
		targetH = conv.ToPixels(r.Height)
	}

	w, h, err := measure(icon.ViewBox.W, icon.ViewBox.H, targetW, targetH)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", span.ErrRasterizationFailed, err)
	}

	// drawing without viewBox is taken in canvas coordinates
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		icon.ViewBox.X, icon.ViewBox.Y = 0, 0
		icon.ViewBox.W, icon.ViewBox.H = float64(w), float64(h)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if r.Background != nil {
		draw.Draw(dst, dst.Bounds(), &image.Uniform{C: r.Background}, image.Point{}, draw.Src)
	}
	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	icon.Draw(dasher, 1.0)
	return dst, nil
}

// measure decides the pixel size of the canvas from the intrinsic viewBox and
// requested target sizes (zero when not requested).
func measure(vbW, vbH float64, targetW, targetH int) (int, int, error) {
	intrW := int(math.Ceil(vbW))
	intrH := int(math.Ceil(vbH))

	if intrW <= 0 || intrH <= 0 {
		// without intrinsic size only a complete request can be honored
		if targetW > 0 && targetH > 0 {
			return clamp(targetW, targetH)
		}
		return 0, 0, fmt.Errorf("region has zero size (viewBox %gx%g)", vbW, vbH)
	}

	w, h := intrW, intrH
	switch {
	case targetW <= 0 && targetH <= 0:
	case targetH <= 0:
		w = targetW
		h = int(math.Round(float64(w) * float64(intrH) / float64(intrW)))
	case targetW <= 0:
		h = targetH
		w = int(math.Round(float64(h) * float64(intrW) / float64(intrH)))
	default:
		scale := min(float64(targetW)/float64(intrW), float64(targetH)/float64(intrH))
		w = int(math.Round(float64(intrW) * scale))
		h = int(math.Round(float64(intrH) * scale))
	}
	return clamp(max(w, 1), max(h, 1))
}

func clamp(w, h int) (int, int, error) {
	if w > maxRasterDim || h > maxRasterDim {
		s := min(float64(maxRasterDim)/float64(w), float64(maxRasterDim)/float64(h))
		w = max(int(math.Round(float64(w)*s)), 1)
		h = max(int(math.Round(float64(h)*s)), 1)
	}
	return w, h, nil
}
