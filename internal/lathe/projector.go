package lathe

// Tip is a tool tip position in normalized device coordinates.
type Tip struct {
	X, Y float64
}

// OriginTip is where the tool rests before any input: zero depth on the axis.
var OriginTip = Tip{X: ToolOriginX, Y: ToolOriginY}

// ScreenToTip maps a pointer position in pixels to a tool tip. The tip is
// kept at or below the rotation axis.
func ScreenToTip(px, py float64, width, height int) Tip {
	t := Tip{
		X: px*2/float64(width-1) - 1,
		Y: -py*2/float64(height-1) + 1,
	}
	if t.Y > ToolOriginY {
		t.Y = ToolOriginY
	}
	return t
}

// depth returns the tip's axial section and radius in quanta, measured from
// the tool origin.
func (t Tip) depth() (section, radius int) {
	return WorldToSection(ToolOriginX - t.X), WorldToRadius(ToolOriginY - t.Y)
}

// Projection is the set of target radii a tool stroke proposes for the
// closed section range [Start, End]. Radii[i] belongs to section Start+i.
type Projection struct {
	Start, End int
	Radii      []int
}

// Target returns the proposed radius for a section inside the range.
func (pr Projection) Target(section int) int {
	return pr.Radii[section-pr.Start]
}

// Project converts a tool stroke from prev to next into target radii. It
// reports false when the stroke does not reach the material or leaves the
// workpiece envelope; nothing is proposed in that case.
func Project(g Geometry, prev, next Tip) (Projection, bool) {
	if next.X >= ToolOriginX && prev.X >= ToolOriginX {
		return Projection{}, false
	}

	// The right-most tip is the nearer end of the range.
	near, far := prev, next
	if next.X > prev.X {
		near, far = next, prev
	}

	zStart, rStart := near.depth()
	zEnd, rEnd := far.depth()
	zGap := zEnd - zStart
	rGap := rEnd - rStart

	if zStart < 0 || zStart > g.Sections || zEnd < 0 || zEnd > g.Sections || zGap < 0 || rStart < 0 {
		return Projection{}, false
	}

	pr := Projection{
		Start: zStart,
		End:   zEnd,
		Radii: make([]int, zGap+1),
	}
	for i := range pr.Radii {
		r := rStart
		if zGap != 0 {
			// Truncate the sum, not the quotient, so a shallowing stroke
			// rounds down like a deepening one.
			r = int(float64(rStart) + float64(rGap)*float64(i)/float64(zGap))
		}
		if r < 0 {
			r = 0
		}
		pr.Radii[i] = r
	}
	return pr, true
}
