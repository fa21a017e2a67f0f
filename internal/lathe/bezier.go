package lathe

// MaxControlPoints is the number of control points of a floor curve.
const MaxControlPoints = 4

// CurveBuilder collects the control points of a cubic Bézier floor curve.
// The curve is sampled once the fourth point arrives and stays until Clear.
type CurveBuilder struct {
	points []Tip
	curve  []Tip
}

// Add appends a control point. It reports false when the set is already
// full or p repeats the previous point.
func (b *CurveBuilder) Add(p Tip) bool {
	if len(b.points) >= MaxControlPoints {
		return false
	}
	if n := len(b.points); n > 0 && b.points[n-1] == p {
		return false
	}
	b.points = append(b.points, p)
	if len(b.points) == MaxControlPoints {
		b.curve = SampleCubic([4]Tip(b.points), CurveSamples)
	}
	return true
}

// Points returns the control points entered so far.
func (b *CurveBuilder) Points() []Tip {
	return b.points
}

// Curve returns the sampled curve, or nil while fewer than four points exist.
func (b *CurveBuilder) Curve() []Tip {
	return b.curve
}

// Complete reports whether all four control points are present.
func (b *CurveBuilder) Complete() bool {
	return len(b.points) == MaxControlPoints
}

// Clear drops the control points and the sampled curve.
func (b *CurveBuilder) Clear() {
	b.points = b.points[:0]
	b.curve = nil
}

// EvalCubic evaluates a cubic Bézier curve at t in [0, 1].
func EvalCubic(c [4]Tip, t float64) Tip {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	d := 3 * mt * t * t
	e := t * t * t
	return Tip{
		X: a*c[0].X + b*c[1].X + d*c[2].X + e*c[3].X,
		Y: a*c[0].Y + b*c[1].Y + d*c[2].Y + e*c[3].Y,
	}
}

// SampleCubic evaluates n evenly spaced points including both end points.
func SampleCubic(c [4]Tip, n int) []Tip {
	if n < 2 {
		return []Tip{c[0]}
	}
	out := make([]Tip, n)
	for i := range out {
		out[i] = EvalCubic(c, float64(i)/float64(n-1))
	}
	return out
}

// CommitFloor rasterizes a sampled curve into the floor array. Consecutive
// samples are joined so no section inside the curve's span is skipped.
// Later samples overwrite earlier ones. Floors are clamped to
// [0, current radius], keeping floor <= radius. It returns the number of
// distinct sections written.
func (p *Profile) CommitFloor(curve []Tip) int {
	if len(curve) == 0 {
		return 0
	}

	written := make([]bool, len(p.floors))
	count := 0
	set := func(section, radius int) {
		if section < 0 || section > p.geom.Sections {
			return
		}
		radius = min(max(radius, 0), p.radii[section])
		p.floors[section] = radius
		if !written[section] {
			written[section] = true
			count++
		}
	}

	s0, r0 := curve[0].depth()
	set(s0, r0)
	for _, pt := range curve[1:] {
		s1, r1 := pt.depth()
		span := s1 - s0
		step := 1
		if span < 0 {
			span, step = -span, -1
		}
		for k := 1; k <= span; k++ {
			set(s0+k*step, r0+(r1-r0)*k/span)
		}
		if span == 0 {
			set(s1, r1)
		}
		s0, r0 = s1, r1
	}
	return count
}
