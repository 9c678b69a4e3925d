package span

import "errors"

var (
	// ErrInvalidColorFormat is returned when a textual color specification
	// cannot be parsed.
	ErrInvalidColorFormat = errors.New("invalid color format")

	// ErrDegenerateImageDimensions signals that image bounds could not be
	// scaled because a requested or intrinsic dimension is not positive. The
	// append still happens with intrinsic bounds.
	ErrDegenerateImageDimensions = errors.New("degenerate image dimensions")

	// ErrRasterizationFailed is returned when an embedded region could not be
	// turned into pixels.
	ErrRasterizationFailed = errors.New("rasterization failed")
)
