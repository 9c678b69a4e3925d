package render

import (
	"archive/zip"
	"bytes"
	"image"
	"io"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"spt/span"
)

func openBundle(t *testing.T, data []byte) map[string]*zip.File {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("zip.NewReader: %v", err)
	}
	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[f.Name] = f
	}
	return files
}

func readEntry(t *testing.T, f *zip.File) string {
	t.Helper()
	rc, err := f.Open()
	if err != nil {
		t.Fatalf("open %s: %v", f.Name, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read %s: %v", f.Name, err)
	}
	return string(data)
}

func bundleResults() []*span.Result {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	b := span.New().AppendText("Alice").AppendImage(img, span.WithWidth(4))
	first := b.Build()
	// second result shares the first image placeholder
	second := span.From(first).AppendText(" again").Build()
	third := span.New().AppendImage(img).Build()
	return []*span.Result{first, second, third}
}

func TestBundle(t *testing.T) {
	var buf bytes.Buffer
	if err := Bundle(&buf, bundleResults(), "test", testConfig(), zaptest.NewLogger(t)); err != nil {
		t.Fatalf("Bundle() error = %v", err)
	}

	files := openBundle(t, buf.Bytes())
	if len(files) != 3 {
		names := make([]string, 0, len(files))
		for name := range files {
			names = append(names, name)
		}
		t.Fatalf("unexpected entries: %v", names)
	}
	for _, name := range []string{"index.xhtml", "images/img00001.png", "images/img00002.png"} {
		if _, ok := files[name]; !ok {
			t.Errorf("entry %s is missing", name)
		}
	}

	index := readEntry(t, files["index.xhtml"])
	if n := strings.Count(index, `src="images/img00001.png"`); n != 2 {
		t.Errorf("shared image referenced %d times, want 2", n)
	}
	if !strings.Contains(index, `src="images/img00002.png"`) {
		t.Error("second image is not referenced")
	}
	if !strings.HasPrefix(readEntry(t, files["images/img00001.png"]), "\x89PNG") {
		t.Error("image is not png encoded")
	}
}

func TestBundle_FixZip(t *testing.T) {
	cfg := testConfig()
	cfg.FixZip = true

	var buf bytes.Buffer
	if err := Bundle(&buf, bundleResults(), "test", cfg, zaptest.NewLogger(t)); err != nil {
		t.Fatalf("Bundle() error = %v", err)
	}
	files := openBundle(t, buf.Bytes())
	if len(files) != 3 {
		t.Fatalf("got %d entries, want 3", len(files))
	}
	for name, f := range files {
		if f.Flags&0x8 != 0 {
			t.Errorf("entry %s uses data descriptor", name)
		}
		_ = readEntry(t, f)
	}
}
