package lathe

// Profile stores the workpiece silhouette as one integer radius per section
// ring, plus the floor radius each section may not be cut below.
//
// Only Apply writes radii and only CommitFloor writes floors.
type Profile struct {
	geom   Geometry
	radii  []int
	floors []int
}

// NewProfile creates a full-radius profile with no floor.
func NewProfile(g Geometry) *Profile {
	p := &Profile{
		geom:   g,
		radii:  make([]int, g.Sections+1),
		floors: make([]int, g.Sections+1),
	}
	p.Reset()
	return p
}

// Reset restores every section to the initial radius and clears the floor.
func (p *Profile) Reset() {
	for i := range p.radii {
		p.radii[i] = p.geom.InitialRadius
		p.floors[i] = 0
	}
}

// Geometry returns the geometry the profile was built for.
func (p *Profile) Geometry() Geometry {
	return p.geom
}

// Len returns the number of section rings.
func (p *Profile) Len() int {
	return len(p.radii)
}

// Radius returns the current radius of a section in quanta.
func (p *Profile) Radius(section int) int {
	return p.radii[section]
}

// Floor returns the minimum permitted radius of a section in quanta.
func (p *Profile) Floor(section int) int {
	return p.floors[section]
}

// Radii returns a copy of the radius array.
func (p *Profile) Radii() []int {
	return append([]int(nil), p.radii...)
}

// Floors returns a copy of the floor array.
func (p *Profile) Floors() []int {
	return append([]int(nil), p.floors...)
}
