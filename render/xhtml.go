package render

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"spt/config"
	"spt/raster"
	"spt/span"
)

// ImageSource returns the src reference for an inline image.
type ImageSource func(img span.InlineImage) (string, error)

// Options controls XHTML generation.
type Options struct {
	Title string
	// Density converts device pixels of image bounds back to CSS pixels.
	Density float64
	Images  ImageSource
	Log     *zap.Logger
}

func (o *Options) normalize() {
	if o.Density <= 0 {
		o.Density = 1
	}
	if o.Log == nil {
		o.Log = zap.NewNop()
	}
}

// DataURIs embeds images into the document, fitted to their bounds and
// encoded as configured.
func DataURIs(cfg *config.DocumentConfig, log *zap.Logger) ImageSource {
	mt := mime.TypeByExtension(cfg.Images.Format.Ext())
	return func(img span.InlineImage) (string, error) {
		data, err := encodeInline(img, cfg, log)
		if err != nil {
			return "", err
		}
		return "data:" + mt + ";base64," + base64.StdEncoding.EncodeToString(data), nil
	}
}

func encodeInline(img span.InlineImage, cfg *config.DocumentConfig, log *zap.Logger) ([]byte, error) {
	fitted := raster.Fit(img.Image, img.Bounds, cfg.Images.Filter)
	data, err := raster.Encode(fitted, &cfg.Images, cfg.Density, log.With(zap.String("id", img.ID)))
	if err != nil {
		return nil, fmt.Errorf("unable to encode image %s: %w", img.ID, err)
	}
	return data, nil
}

// XHTML renders results as one page, a paragraph per result.
func XHTML(results []*span.Result, opts Options) (*etree.Document, error) {
	opts.normalize()

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	html := doc.CreateElement("html")
	html.CreateAttr("xmlns", "http://www.w3.org/1999/xhtml")

	head := html.CreateElement("head")
	meta := head.CreateElement("meta")
	meta.CreateAttr("http-equiv", "Content-Type")
	meta.CreateAttr("content", "text/html; charset=utf-8")
	head.CreateElement("title").SetText(opts.Title)

	body := html.CreateElement("body")
	for i, res := range results {
		p := body.CreateElement("p")
		p.CreateAttr("class", "result")
		p.CreateAttr("id", fmt.Sprintf("r%d", i+1))
		if err := appendResult(p, res, &opts); err != nil {
			return nil, fmt.Errorf("result %d: %w", i+1, err)
		}
	}
	return doc, nil
}

// WriteXHTML renders results and writes the document to w.
func WriteXHTML(w io.Writer, results []*span.Result, opts Options) error {
	doc, err := XHTML(results, opts)
	if err != nil {
		return err
	}
	// no indentation, whitespace is significant in paragraphs
	_, err = doc.WriteTo(w)
	return err
}

func appendResult(parent *etree.Element, res *span.Result, opts *Options) error {
	for _, seg := range Segments(res) {
		if err := appendSegment(parent, res, seg, opts); err != nil {
			return err
		}
	}
	return nil
}

// appendSegment wraps segment content into a, sup/sub and span elements as
// required by its attachments, outermost first.
func appendSegment(parent *etree.Element, res *span.Result, seg Segment, opts *Options) error {
	var (
		link      string
		clickable bool
		vertical  string
		style     inlineStyle
	)
	for _, a := range seg.Attachments {
		switch s := a.Style.(type) {
		case span.Link:
			link = s.URL
		case span.Clickable:
			clickable = true
		case span.Superscript:
			vertical = "sup"
		case span.Subscript:
			vertical = "sub"
		default:
			style.add(s)
		}
	}

	cur := parent
	if len(link) > 0 {
		cur = cur.CreateElement("a")
		cur.CreateAttr("href", link)
	}
	if len(vertical) > 0 {
		cur = cur.CreateElement(vertical)
	}

	if img, ok := seg.Image(); ok {
		el, err := imageElement(img, opts)
		if err != nil {
			return err
		}
		if clickable {
			el.CreateAttr("class", "clickable")
		}
		cur.AddChild(el)
		return nil
	}

	text := res.Slice(seg.Range)
	if css := style.String(); len(css) > 0 || clickable {
		el := cur.CreateElement("span")
		if clickable {
			el.CreateAttr("class", "clickable")
		}
		if len(css) > 0 {
			el.CreateAttr("style", css)
		}
		el.SetText(text)
		return nil
	}
	if cur != parent {
		cur.SetText(text)
		return nil
	}
	parent.CreateText(text)
	return nil
}

func imageElement(img span.InlineImage, opts *Options) (*etree.Element, error) {
	el := etree.NewElement("img")
	if opts.Images != nil {
		src, err := opts.Images(img)
		if err != nil {
			return nil, err
		}
		el.CreateAttr("src", src)
	}
	el.CreateAttr("alt", "")

	px := func(v int) string {
		return strconv.FormatFloat(float64(v)/opts.Density, 'f', -1, 64) + "px"
	}
	decl := []string{
		"width: " + px(img.Bounds.Dx()),
		"height: " + px(img.Bounds.Dy()),
	}
	if img.Bounds.Min.X != 0 {
		decl = append(decl, "margin-left: "+px(img.Bounds.Min.X))
	}
	if img.Bounds.Min.Y != 0 {
		decl = append(decl, "margin-top: "+px(img.Bounds.Min.Y))
	}
	switch img.Align {
	case span.AlignmentBottom:
		decl = append(decl, "vertical-align: bottom")
	case span.AlignmentCenter:
		decl = append(decl, "vertical-align: middle")
	default:
		decl = append(decl, "vertical-align: baseline")
	}
	el.CreateAttr("style", strings.Join(decl, "; "))
	return el, nil
}

// inlineStyle accumulates CSS for text styles active over one segment.
type inlineStyle struct {
	color, background *span.Color
	relative          float64
	absolute          int
	scaleX            float64
	typeface          *span.Typeface
	underline, strike bool
}

func (st *inlineStyle) add(s span.Style) {
	switch s := s.(type) {
	case span.ForegroundColor:
		st.color = &s.Color
	case span.BackgroundColor:
		st.background = &s.Color
	case span.RelativeSize:
		// nested relative sizes compound
		if st.relative == 0 {
			st.relative = 1
		}
		st.relative *= s.Scale
	case span.AbsoluteSize:
		st.absolute = s.Size
	case span.ScaleX:
		st.scaleX = s.Scale
	case span.TypefaceStyle:
		st.typeface = &s.Typeface
	case span.Underline:
		st.underline = true
	case span.Strikethrough:
		st.strike = true
	}
}

func (st *inlineStyle) String() string {
	var decl []string
	if st.color != nil {
		decl = append(decl, "color: "+cssColor(*st.color))
	}
	if st.background != nil {
		decl = append(decl, "background-color: "+cssColor(*st.background))
	}
	switch {
	case st.absolute > 0:
		size := float64(st.absolute)
		if st.relative > 0 {
			size *= st.relative
		}
		decl = append(decl, "font-size: "+strconv.FormatFloat(size, 'f', -1, 64)+"px")
	case st.relative > 0:
		decl = append(decl, "font-size: "+strconv.FormatFloat(st.relative, 'f', -1, 64)+"em")
	}
	if st.typeface != nil {
		switch *st.typeface {
		case span.TypefaceBold:
			decl = append(decl, "font-weight: bold")
		case span.TypefaceItalic:
			decl = append(decl, "font-style: italic")
		case span.TypefaceBoldItalic:
			decl = append(decl, "font-weight: bold", "font-style: italic")
		default:
			decl = append(decl, "font-weight: normal", "font-style: normal")
		}
	}
	switch {
	case st.underline && st.strike:
		decl = append(decl, "text-decoration: underline line-through")
	case st.underline:
		decl = append(decl, "text-decoration: underline")
	case st.strike:
		decl = append(decl, "text-decoration: line-through")
	}
	if st.scaleX > 0 {
		decl = append(decl, "display: inline-block", "transform: scaleX("+strconv.FormatFloat(st.scaleX, 'f', -1, 64)+")")
	}
	return strings.Join(decl, "; ")
}

func cssColor(c span.Color) string {
	if c.Alpha() == 0xFF {
		return c.String()
	}
	a := strconv.FormatFloat(float64(c.Alpha())/255, 'f', 3, 64)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.Red(), c.Green(), c.Blue(), a)
}
