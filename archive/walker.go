// Package archive gives access to compose scripts and the assets they
// reference inside zip archives.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
)

// WalkFunc is called for each file in the archive visited by Walk. If an
// error is returned, processing stops.
type WalkFunc func(archive string, file *zip.File) error

// Reader is an open archive with entries indexed by name.
type Reader struct {
	path  string
	zr    *zip.ReadCloser
	index map[string]*zip.File
}

// Open opens archive and validates entry names. Archives with absolute paths
// or ".." components are rejected as a whole.
func Open(archive string) (*Reader, error) {
	zr, err := zip.OpenReader(archive)
	if err != nil {
		return nil, err
	}
	r := &Reader{path: archive, zr: zr, index: make(map[string]*zip.File, len(zr.File))}
	for _, f := range zr.File {
		name := f.FileHeader.Name
		if !isSafePath(name) {
			zr.Close()
			return nil, fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if !f.FileInfo().IsDir() {
			r.index[name] = f
		}
	}
	return r, nil
}

func (r *Reader) Close() error {
	return r.zr.Close()
}

// Path returns the archive location as given to Open.
func (r *Reader) Path() string {
	return r.path
}

// Walk calls walkFn for every regular entry whose name starts with prefix,
// in archive order.
func (r *Reader) Walk(prefix string, walkFn WalkFunc) error {
	for _, f := range r.zr.File {
		if _, ok := r.index[f.FileHeader.Name]; !ok {
			continue
		}
		if strings.HasPrefix(f.FileHeader.Name, prefix) {
			if err := walkFn(r.path, f); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReadFile returns content of the named entry. Names are slash separated and
// cleaned before lookup, escaping the archive root is an error.
func (r *Reader) ReadFile(name string) ([]byte, error) {
	name = path.Clean(name)
	if !isSafePath(name) {
		return nil, fmt.Errorf("asset %q: unsafe path", name)
	}
	f, ok := r.index[name]
	if !ok {
		return nil, fmt.Errorf("asset %q: %w", name, fs.ErrNotExist)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// Walk opens archive and walks all entries under prefix.
func Walk(archive, prefix string, walkFn WalkFunc) error {
	r, err := Open(archive)
	if err != nil {
		return err
	}
	defer r.Close()
	return r.Walk(prefix, walkFn)
}

// IsArchive reports whether file at path is a zip archive. Only files with
// .zip extension are looked at.
func IsArchive(file string) (bool, error) {
	if !strings.EqualFold(filepath.Ext(file), ".zip") {
		return false, nil
	}
	kind, err := filetype.MatchFile(file)
	if err != nil {
		return false, err
	}
	return kind == matchers.TypeZip, nil
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	for part := range strings.SplitSeq(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
