// Package lathe implements the cylindrical workpiece and the cutting engine
// that carves it: profile storage, mesh generation, cut projection, profile
// updates, incremental mesh patching and the Bézier floor constraint.
package lathe

import (
	"errors"
	"math"
)

// Workpiece geometry. Lengths are in world units, which coincide with
// normalized device coordinates for the orthographic view used by the app.
const (
	CylinderRadius = 0.4
	CylinderLength = 1.6

	AngleStep  = 2     // degrees between angular slices
	LengthStep = 0.001 // world length of one axial section
	RadiusStep = 0.001 // world length of one radius quantum

	// ToolOriginX/Y is where the tool tip sits at zero depth: section 0 on
	// the X axis, the rotation axis on the Y axis.
	ToolOriginX = 0.62
	ToolOriginY = -0.2

	// CurveSamples is the number of points sampled from a committed Bézier curve.
	CurveSamples = 1001
)

// quantumEpsilon absorbs float error when dividing by a quantum, so that
// 0.1/0.001 = 99.99999999999997 quantizes to 100 and not 99.
const quantumEpsilon = 1e-6

// ErrInvalidGeometry is returned when a geometry has non-positive counts.
var ErrInvalidGeometry = errors.New("lathe: invalid geometry")

// Geometry holds the discrete dimensions of a workpiece.
type Geometry struct {
	Sections      int // axial sections; there are Sections+1 section rings
	Slices        int // angular slices; there are Slices+1 vertices per ring
	InitialRadius int // starting radius in radius quanta
}

// DefaultGeometry returns the geometry derived from the cylinder constants.
func DefaultGeometry() Geometry {
	return Geometry{
		Sections:      quantize(CylinderLength, LengthStep),
		Slices:        360 / AngleStep,
		InitialRadius: quantize(CylinderRadius, RadiusStep),
	}
}

// Validate reports whether the geometry can back a mesh.
func (g Geometry) Validate() error {
	if g.Sections <= 0 || g.Slices <= 0 || g.InitialRadius <= 0 {
		return ErrInvalidGeometry
	}
	return nil
}

// SectionToWorld converts a section index to its axial world distance.
func SectionToWorld(section int) float64 {
	return float64(section) * LengthStep
}

// WorldToSection converts an axial world distance to a section index.
func WorldToSection(d float64) int {
	return quantize(d, LengthStep)
}

// RadiusToWorld converts radius quanta to a world radius.
func RadiusToWorld(r int) float64 {
	return float64(r) * RadiusStep
}

// WorldToRadius converts a world radius to radius quanta.
func WorldToRadius(d float64) int {
	return quantize(d, RadiusStep)
}

// SliceAngle returns the angle of a slice in radians.
func SliceAngle(slice int) float64 {
	return float64(slice*AngleStep) * math.Pi / 180
}

// quantize floors d/step with a small tolerance. Negative inputs stay
// negative so that range checks downstream can reject them: a tip up to
// one section right of the tool origin maps to -1, not 0, and its stroke
// is discarded.
func quantize(d, step float64) int {
	return int(math.Floor(d/step + quantumEpsilon))
}
