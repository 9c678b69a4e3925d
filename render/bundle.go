package render

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"

	fixzip "github.com/hidez8891/zip"
	"go.uber.org/zap"

	"spt/config"
	"spt/span"
)

const (
	bundleIndex = "index.xhtml"
	imagesDir   = "images"
)

// Bundle writes results as a zip archive: index.xhtml referencing images
// stored under images/ as separate files. Images are numbered in order of
// first appearance, a placeholder shared by several results is stored once.
func Bundle(w io.Writer, results []*span.Result, title string, cfg *config.DocumentConfig, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}

	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)

	ext := strings.TrimPrefix(cfg.Images.Format.Ext(), ".")
	names := make(map[string]string)
	images := func(img span.InlineImage) (string, error) {
		if name, ok := names[img.ID]; ok {
			return name, nil
		}
		data, err := encodeInline(img, cfg, log)
		if err != nil {
			return "", err
		}
		name := path.Join(imagesDir, fmt.Sprintf("img%05d.%s", len(names)+1, ext))
		if err := writeDataToZip(zw, name, data); err != nil {
			return "", fmt.Errorf("unable to store image %s: %w", img.ID, err)
		}
		log.Debug("Image stored", zap.String("id", img.ID), zap.String("name", name), zap.Int("bytes", len(data)))
		names[img.ID] = name
		return name, nil
	}

	doc, err := XHTML(results, Options{Title: title, Density: cfg.Density, Images: images, Log: log})
	if err != nil {
		return err
	}
	var page bytes.Buffer
	if _, err := doc.WriteTo(&page); err != nil {
		return err
	}
	if err := writeDataToZip(zw, bundleIndex, page.Bytes()); err != nil {
		return fmt.Errorf("unable to store %s: %w", bundleIndex, err)
	}

	// make sure buffers are flushed before continuing
	if err := zw.Close(); err != nil {
		return fmt.Errorf("unable to close bundle archive: %w", err)
	}

	if cfg.FixZip {
		return copyZipWithoutDataDescriptors(buf.Bytes(), w)
	}
	_, err = io.Copy(w, buf)
	return err
}

func writeDataToZip(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// copyZipWithoutDataDescriptors rewrites archive so that no entry uses data
// descriptors, some readers cannot handle them.
func copyZipWithoutDataDescriptors(data []byte, to io.Writer) error {
	r, err := fixzip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("unable to read bundle archive: %w", err)
	}

	w := fixzip.NewWriter(to)
	for _, file := range r.File {
		file.Flags &= ^fixzip.FlagDataDescriptor
		if err := w.CopyFile(file); err != nil {
			return fmt.Errorf("unable to copy bundle entry %s: %w", file.Name, err)
		}
	}
	return w.Close()
}
