package texture

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/lathe-sim/internal/logger"
)

// Upload creates a mipmapped, repeating 2D texture from RGBA pixels.
func Upload(img *image.RGBA) uint32 {
	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(img.Bounds().Dx()), int32(img.Bounds().Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)

	return texID
}

// LoadOrPlaceholder uploads the named image. A missing or undecodable
// file is logged and replaced by a checkerboard so the run continues.
func LoadOrPlaceholder(src Source, name string, maxSize int) uint32 {
	return LoadOr(src, name, maxSize, Placeholder(64, 8))
}

// LoadOr uploads the named image, or fallback when it cannot be loaded.
// An empty name selects fallback without a warning.
func LoadOr(src Source, name string, maxSize int, fallback *image.RGBA) uint32 {
	if name == "" {
		return Upload(fallback)
	}
	img, err := Load(src, name, maxSize)
	if err != nil {
		logger.Warn("texture failed to load, using fallback",
			zap.String("name", name),
			zap.Error(err),
		)
		img = fallback
	}
	return Upload(img)
}

// Delete releases a texture.
func Delete(texID uint32) {
	if texID != 0 {
		gl.DeleteTextures(1, &texID)
	}
}
