package assets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"testing"
	"testing/fstest"
)

func TestCleanAssetPath(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"gold.png", "gold.png"},
		{"res/gold.png", "gold.png"},
		{"/home/me/game/res/numbers.png", "numbers.png"},
		{"/tmp/rock.png", "rock.png"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			if got := cleanAssetPath(c.in); got != c.want {
				t.Fatalf("expected %q, got %q", c.want, got)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	src.Set(1, 1, color.White)
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("encode: %v", err)
	}

	l := NewLoaderFS(fstest.MapFS{"gold.png": {Data: buf.Bytes()}})

	img, err := l.Decode("res/gold.png")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}

	if _, err := l.Decode("rock.png"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not exist, got %v", err)
	}
	if _, err := NewLoader("").Decode("gold.png"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not exist from empty loader, got %v", err)
	}
}
