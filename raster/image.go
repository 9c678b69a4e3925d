package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"math"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"spt/config"
)

// baseDPI is the physical resolution of one device independent unit at
// density 1.
const baseDPI = 160

// IsSVG reports whether data looks like an SVG document. Vector assets go
// through SVGRegion rather than Load.
func IsSVG(data []byte) bool {
	head := data[:min(len(data), 1024)]
	return bytes.Contains(head, []byte("<svg"))
}

// Load sniffs and decodes a raster asset. It returns the decoded image and the
// detected format name.
func Load(data []byte) (image.Image, string, error) {
	kind, err := filetype.Match(data)
	if err != nil {
		return nil, "", fmt.Errorf("unable to detect asset type: %w", err)
	}
	if kind == filetype.Unknown || !filetype.IsImage(data) {
		return nil, "", fmt.Errorf("unsupported asset type (%s)", kind.MIME.Value)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("unable to decode %s asset: %w", kind.Extension, err)
	}
	return img, format, nil
}

func resampleFilter(f config.ScaleFilter) imaging.ResampleFilter {
	switch f {
	case config.ScaleFilterLinear:
		return imaging.Linear
	case config.ScaleFilterNearest:
		return imaging.NearestNeighbor
	default:
		return imaging.Lanczos
	}
}

// Fit scales img to the size of bounds. Images already of the right size are
// returned as is.
func Fit(img image.Image, bounds image.Rectangle, filter config.ScaleFilter) image.Image {
	size := bounds.Size()
	if size.X <= 0 || size.Y <= 0 || img.Bounds().Size() == size {
		return img
	}
	return imaging.Resize(img, size.X, size.Y, resampleFilter(filter))
}

func opaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	return true
}

// jfifDensity converts density to dots per inch for the JFIF header,
// saturating at the largest value the 16 bit field holds.
func jfifDensity(density float64) uint16 {
	dpi := math.Round(baseDPI * density)
	switch {
	case dpi >= math.MaxUint16:
		return math.MaxUint16
	case dpi < 1:
		return 1
	}
	return uint16(dpi)
}

// Encode encodes an inline image in the configured format. JPEG output gets a
// JFIF header with resolution derived from density.
func Encode(img image.Image, cfg *config.ImagesConfig, density float64, log *zap.Logger) ([]byte, error) {
	if cfg.RemoveTransparency && !opaque(img) {
		log.Debug("Removing transparency")
		flat := image.NewRGBA(img.Bounds())
		draw.Draw(flat, flat.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
		draw.Draw(flat, flat.Bounds(), img, img.Bounds().Min, draw.Over)
		img = flat
	}

	buf := new(bytes.Buffer)
	switch cfg.Format {
	case config.ImageFormatPng:
		if err := imaging.Encode(buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
			return nil, fmt.Errorf("unable to encode PNG: %w", err)
		}
		return buf.Bytes(), nil
	case config.ImageFormatJpeg:
		if err := imaging.Encode(buf, img, imaging.JPEG, imaging.JPEGQuality(cfg.JPEGQuality)); err != nil {
			return nil, fmt.Errorf("unable to encode JPEG: %w", err)
		}
		dpi := jfifDensity(density)
		data, added, err := EnsureJFIFAPP0(buf.Bytes(), DpiPxPerInch, dpi, dpi)
		if err != nil {
			return nil, fmt.Errorf("unable to set JPEG density: %w", err)
		}
		if added {
			log.Debug("Inserting jpeg JFIF APP0 marker segment", zap.Uint16("dpi", dpi))
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported image format %s", cfg.Format)
	}
}
