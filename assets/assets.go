// Package assets resolves image files for the sprite atlas. Images are read
// from a directory at runtime so the game can ship without them.
package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

type Loader struct {
	fsys fs.FS
}

// NewLoader reads assets from dir. An empty dir yields a loader that finds
// nothing.
func NewLoader(dir string) *Loader {
	if dir == "" {
		return &Loader{}
	}
	return &Loader{fsys: os.DirFS(dir)}
}

func NewLoaderFS(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadImage loads an asset by assets-relative path.
func (l *Loader) LoadImage(path string) (*ebiten.Image, error) {
	img, err := l.Decode(path)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// Decode reads and decodes an image without touching the GPU.
func (l *Loader) Decode(path string) (image.Image, error) {
	if l == nil || l.fsys == nil {
		return nil, fmt.Errorf("assets: load %q: %w", path, fs.ErrNotExist)
	}
	b, err := fs.ReadFile(l.fsys, cleanAssetPath(path))
	if err != nil {
		return nil, fmt.Errorf("assets: load %q: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %q: %w", path, err)
	}
	return img, nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if filepath.IsAbs(path) {
		if idx := strings.LastIndex(s, "/res/"); idx >= 0 {
			return s[idx+len("/res/"):]
		}
		return filepath.Base(path)
	}
	return strings.TrimPrefix(s, "res/")
}
