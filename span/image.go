package span

import (
	"fmt"
	"image"
	"math"
)

// maxPlacement bounds requested sizes and margins, in requested units, so
// that conversion to pixels stays well inside int range.
const maxPlacement = 1 << 24

// UnitConverter turns device independent units into device pixels.
type UnitConverter interface {
	ToPixels(dip float64) int
}

// Density is the number of device pixels per device independent unit.
type Density float64

// ToPixels truncates toward zero, matching how platform dimensions are
// converted to integer pixel sizes.
func (d Density) ToPixels(dip float64) int {
	return int(dip * float64(d))
}

// Rasterizer produces pixels for an embedded region. Implementations must
// return an error wrapping ErrRasterizationFailed when the region has no
// measurable size.
type Rasterizer interface {
	Rasterize(conv UnitConverter) (image.Image, error)
}

// placement computes image bounds for the requested layout. When nothing was
// requested or the request is degenerate (including one that converts to an
// empty pixel rectangle) the intrinsic rectangle is returned
// with intrinsic set; in the degenerate case err wraps
// ErrDegenerateImageDimensions and the caller goes on with intrinsic bounds.
func (o *imageOptions) placement(size image.Point, conv UnitConverter) (bounds image.Rectangle, intrinsic bool, err error) {
	natural := image.Rectangle{Max: size}
	if o.width == nil && o.height == nil {
		return natural, true, nil
	}

	degenerate := func(what string) (image.Rectangle, bool, error) {
		return natural, true, fmt.Errorf("%w: %s (intrinsic %dx%d)", ErrDegenerateImageDimensions, what, size.X, size.Y)
	}

	var w, h float64
	switch {
	case o.width != nil && o.height != nil:
		w, h = float64(*o.width), float64(*o.height)
	case o.width != nil:
		if size.X <= 0 || size.Y <= 0 {
			return degenerate("aspect ratio undefined")
		}
		w = float64(*o.width)
		h = w * float64(size.Y) / float64(size.X)
	default:
		if size.X <= 0 || size.Y <= 0 {
			return degenerate("aspect ratio undefined")
		}
		h = float64(*o.height)
		w = h * float64(size.X) / float64(size.Y)
	}
	if w <= 0 || h <= 0 {
		return degenerate(fmt.Sprintf("requested %gx%g", w, h))
	}

	ms, mt := float64(o.marginStart), float64(o.marginTop)
	for _, v := range []float64{ms, mt, w + ms, h + mt} {
		if math.Abs(v) > maxPlacement {
			return degenerate(fmt.Sprintf("requested %gx%g at %g,%g out of range", w, h, ms, mt))
		}
	}

	px := func(v float64) int { return int(v) }
	if !o.pixels {
		px = conv.ToPixels
	}
	r := image.Rectangle{Min: image.Pt(px(ms), px(mt)), Max: image.Pt(px(w+ms), px(h+mt))}
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return degenerate(fmt.Sprintf("requested %gx%g is %dx%d pixels", w, h, r.Dx(), r.Dy()))
	}
	return r, false, nil
}
