// Package texture decodes surface images and uploads them as OpenGL textures.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
)

// Decode decodes PNG, JPEG or BMP data. The extension of name picks BMP
// explicitly since Windows bitmaps are not always sniffable.
func Decode(data []byte, name string) (image.Image, error) {
	if strings.EqualFold(filepath.Ext(name), ".bmp") {
		img, err := bmp.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode bmp %s: %w", name, err)
		}
		return img, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

// Source supplies raw image bytes by name.
type Source interface {
	Load(name string) ([]byte, error)
}

// Load reads and decodes an image, then fits it within maxSize.
func Load(src Source, name string, maxSize int) (*image.RGBA, error) {
	data, err := src.Load(name)
	if err != nil {
		return nil, err
	}
	img, err := Decode(data, name)
	if err != nil {
		return nil, err
	}
	return Fit(img, maxSize), nil
}

// Fit converts img to RGBA, scaling it down so neither side exceeds
// maxSize. A non-positive maxSize disables scaling.
func Fit(img image.Image, maxSize int) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSize > 0 && (w > maxSize || h > maxSize) {
		if w >= h {
			w, h = maxSize, max(1, h*maxSize/w)
		} else {
			w, h = max(1, w*maxSize/h), maxSize
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	} else {
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	}
	return dst
}

// Placeholder returns a magenta and black checkerboard used when a texture
// fails to load.
func Placeholder(size, cell int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	magenta := color.RGBA{R: 255, B: 255, A: 255}
	black := color.RGBA{A: 255}
	for y := range size {
		for x := range size {
			c := black
			if (x/cell+y/cell)%2 == 0 {
				c = magenta
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// Solid returns a 1x1 image of one color, used as a neutral stand-in for
// optional material maps.
func Solid(c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, c)
	return img
}
