package app

import (
	"image"
	"image/color"

	"github.com/Faultbox/lathe-sim/internal/config"
	"github.com/Faultbox/lathe-sim/internal/engine/renderer"
	"github.com/Faultbox/lathe-sim/internal/engine/texture"
)

// materialMaps lists the texture names of a material by map slot.
func materialMaps(m config.MaterialConfig) [renderer.MaterialMaps]string {
	var names [renderer.MaterialMaps]string
	names[renderer.MapAlbedo] = m.Albedo
	names[renderer.MapNormal] = m.Normal
	names[renderer.MapMetallic] = m.Metallic
	names[renderer.MapRoughness] = m.Roughness
	names[renderer.MapAO] = m.AO
	return names
}

// fallbackMap is used when a map is missing. A missing albedo shows the
// checkerboard; the other maps fall back to a flat, non-metallic surface.
func fallbackMap(slot int) *image.RGBA {
	switch slot {
	case renderer.MapNormal:
		return texture.Solid(color.RGBA{R: 128, G: 128, B: 255, A: 255})
	case renderer.MapMetallic:
		return texture.Solid(color.RGBA{A: 255})
	case renderer.MapRoughness:
		return texture.Solid(color.RGBA{R: 153, G: 153, B: 153, A: 255})
	case renderer.MapAO:
		return texture.Solid(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	default:
		return texture.Placeholder(64, 8)
	}
}

// uploadMaterial loads every map of m, substituting fallbacks.
func uploadMaterial(src texture.Source, m config.MaterialConfig, maxSize int) renderer.Material {
	var mat renderer.Material
	for slot, name := range materialMaps(m) {
		mat[slot] = texture.LoadOr(src, name, maxSize, fallbackMap(slot))
	}
	return mat
}
