package compose

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"spt/archive"
)

// Assets resolves image references of a script. Names are slash separated
// and relative to the script location.
type Assets interface {
	ReadAsset(name string) ([]byte, error)
}

// dirAssets reads assets from the directory of a script file. Access is
// confined to that directory tree.
type dirAssets struct {
	dir string
}

func (a dirAssets) ReadAsset(name string) ([]byte, error) {
	root, err := os.OpenRoot(a.dir)
	if err != nil {
		return nil, err
	}
	defer root.Close()

	data, err := root.ReadFile(filepath.FromSlash(name))
	if err != nil {
		return nil, fmt.Errorf("unable to read asset: %w", err)
	}
	return data, nil
}

// zipAssets reads assets stored next to a script inside an archive.
type zipAssets struct {
	r   *archive.Reader
	dir string
}

func (a zipAssets) ReadAsset(name string) ([]byte, error) {
	data, err := a.r.ReadFile(path.Join(a.dir, name))
	if err != nil {
		return nil, fmt.Errorf("unable to read asset from %s: %w", a.r.Path(), err)
	}
	return data, nil
}

// noAssets is used for scripts read from streams without location.
type noAssets struct{}

func (noAssets) ReadAsset(name string) ([]byte, error) {
	return nil, fmt.Errorf("unable to read asset %q: script has no location", name)
}
