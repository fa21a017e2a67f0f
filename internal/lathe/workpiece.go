package lathe

import (
	gomath "math"

	"github.com/Faultbox/lathe-sim/pkg/math"
)

// Mode selects what pointer input does.
type Mode int

const (
	// ModeCut moves the tool; strokes into the material remove it.
	ModeCut Mode = iota
	// ModeCurve places Bézier control points for the floor constraint.
	ModeCurve
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeCut:
		return "cut"
	case ModeCurve:
		return "curve"
	default:
		return "unknown"
	}
}

// ToolScale is the size of the tool marker model relative to its units.
const ToolScale = 0.02

// Stats counts pipeline activity since the workpiece was created.
type Stats struct {
	Moves           int // pointer moves received
	Projections     int // moves that produced a projection
	Cuts            int // projections that changed the profile
	PatchedVertices int // vertices rewritten in the mesh
}

// Workpiece owns all mutable cutting state: the profile with its floor, the
// mesh, the tool tip and the floor curve being entered. Every input event
// runs to completion before the next one, so the mesh is never observed
// half-patched.
type Workpiece struct {
	geom    Geometry
	profile *Profile
	mesh    *Mesh
	curve   CurveBuilder

	tip  Tip
	mode Mode

	stats Stats
}

// NewWorkpiece creates an uncut workpiece with the tool at its origin.
func NewWorkpiece(g Geometry) (*Workpiece, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	p := NewProfile(g)
	return &Workpiece{
		geom:    g,
		profile: p,
		mesh:    BuildMesh(p),
		tip:     OriginTip,
		mode:    ModeCut,
	}, nil
}

// Geometry returns the workpiece dimensions.
func (w *Workpiece) Geometry() Geometry { return w.geom }

// Profile returns the profile store.
func (w *Workpiece) Profile() *Profile { return w.profile }

// Mesh returns the mesh.
func (w *Workpiece) Mesh() *Mesh { return w.mesh }

// Tip returns the current tool tip.
func (w *Workpiece) Tip() Tip { return w.tip }

// Mode returns the active input mode.
func (w *Workpiece) Mode() Mode { return w.mode }

// SetMode switches the input mode.
func (w *Workpiece) SetMode(m Mode) { w.mode = m }

// Stats returns the pipeline counters.
func (w *Workpiece) Stats() Stats { return w.stats }

// ControlPoints returns the floor curve control points entered so far.
func (w *Workpiece) ControlPoints() []Tip { return w.curve.Points() }

// Curve returns the sampled floor curve, nil until it is complete.
func (w *Workpiece) Curve() []Tip { return w.curve.Curve() }

// MoveTo moves the tool tip. In cut mode the stroke from the previous tip
// is projected onto the profile and the affected mesh sections are
// patched. It returns the patches to upload, or nil when nothing changed.
func (w *Workpiece) MoveTo(tip Tip) []Patch {
	prev := w.tip
	w.tip = tip
	w.stats.Moves++

	if w.mode != ModeCut {
		return nil
	}

	pr, ok := Project(w.geom, prev, tip)
	if !ok {
		return nil
	}
	w.stats.Projections++

	ch := w.profile.Apply(pr)
	if !ch.Changed {
		return nil
	}
	w.stats.Cuts++

	patches := w.mesh.Patch(w.profile, ch)
	w.stats.PatchedVertices += PatchedVertices(patches)
	return patches
}

// Click adds a floor curve control point in curve mode. When the fourth
// point arrives the curve is committed to the floor. It reports whether the
// point was accepted.
func (w *Workpiece) Click(tip Tip) bool {
	if w.mode != ModeCurve {
		return false
	}
	if !w.curve.Add(tip) {
		return false
	}
	if w.curve.Complete() {
		w.profile.CommitFloor(w.curve.Curve())
	}
	return true
}

// ClearCurve drops the control points and the sampled curve. Floors that
// were already committed stay in place.
func (w *Workpiece) ClearCurve() {
	w.curve.Clear()
}

// Reset restores the uncut workpiece, clearing floors and the curve. It
// returns patches covering the whole mesh.
func (w *Workpiece) Reset() []Patch {
	w.profile.Reset()
	w.curve.Clear()
	w.tip = OriginTip
	return w.mesh.PatchAll(w.profile)
}

// ToolTransform places the tool marker model with its tip at the given
// tool tip.
func ToolTransform(tip Tip) math.Mat4 {
	return math.Translate(float32(tip.X), float32(tip.Y), 0).
		Mul(math.Scale(ToolScale, ToolScale, ToolScale))
}

// ModelTransform places the workpiece mesh so that section 0 lies under
// the tool origin and the axis runs along -X at the origin height, spun
// by spin degrees about its own axis.
func ModelTransform(spin float32) math.Mat4 {
	return math.Translate(ToolOriginX, ToolOriginY, 0).
		Mul(math.RotateX(math.Radians(spin))).
		Mul(math.RotateY(-gomath.Pi / 2))
}
