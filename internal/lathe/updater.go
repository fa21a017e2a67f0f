package lathe

// Change describes the sections a projection actually modified.
type Change struct {
	Changed    bool
	Start, End int
}

// Apply removes material according to a projection. A section is cut only
// when the target is below the current radius and material remains above
// the floor; the stored value never drops below the floor. Radii therefore
// never grow between resets.
func (p *Profile) Apply(pr Projection) Change {
	var ch Change
	for i, target := range pr.Radii {
		section := pr.Start + i
		cur, floor := p.radii[section], p.floors[section]
		if target >= cur || cur <= floor {
			continue
		}
		p.radii[section] = max(target, floor)

		if !ch.Changed {
			ch = Change{Changed: true, Start: section}
		}
		ch.End = section
	}
	return ch
}
