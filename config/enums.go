package config

// Specification of requested output type.
// ENUM(xhtml, bundle, yaml, ion)
type OutputFmt int

func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtXhtml:
		return ".xhtml"
	case OutputFmtBundle:
		return ".zip"
	case OutputFmtYaml:
		return ".yaml"
	case OutputFmtIon:
		return ".ion"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}

// Encoding of label images written into bundles.
// ENUM(png, jpeg)
type ImageFormat int

func (f ImageFormat) Ext() string {
	if f == ImageFormatJpeg {
		return ".jpg"
	}
	return ".png"
}

// Resampling filter used when images are fitted to their bounds.
// ENUM(lanczos, linear, nearest)
type ScaleFilter int
