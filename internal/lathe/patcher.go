package lathe

// Patch is a run of consecutive vertices that changed, starting at vertex
// index Offset.
type Patch struct {
	Offset   int
	Vertices []Vertex
}

// VertexWriter receives vertex runs for a persistent device buffer.
// Offsets are vertex indices, not bytes.
type VertexWriter interface {
	WriteVertices(offset int, vertices []Vertex)
}

// Patch recomputes the XY positions of every vertex in the changed section
// range from the profile, for the full angular sweep. Normals, texture
// coordinates and Z are left untouched. The returned patches alias the
// mesh's vertex table, one per slice.
func (m *Mesh) Patch(p *Profile, ch Change) []Patch {
	if !ch.Changed {
		return nil
	}

	g := m.Geometry
	patches := make([]Patch, 0, g.Slices+1)
	for slice := 0; slice <= g.Slices; slice++ {
		cos, sin := sliceDirection(slice)
		first := m.VertexIndex(slice, ch.Start)
		run := m.Vertices[first : first+ch.End-ch.Start+1]
		for i := range run {
			r := RadiusToWorld(p.Radius(ch.Start + i))
			run[i].Position[0] = float32(r * cos)
			run[i].Position[1] = float32(r * sin)
		}
		patches = append(patches, Patch{Offset: first, Vertices: run})
	}
	return patches
}

// PatchAll recomputes every section. Used after a reset.
func (m *Mesh) PatchAll(p *Profile) []Patch {
	return m.Patch(p, Change{Changed: true, Start: 0, End: m.Geometry.Sections})
}

// ApplyPatches writes patches to a device buffer.
func ApplyPatches(w VertexWriter, patches []Patch) {
	for _, pt := range patches {
		w.WriteVertices(pt.Offset, pt.Vertices)
	}
}

// PatchedVertices returns the total vertex count across patches.
func PatchedVertices(patches []Patch) int {
	n := 0
	for _, pt := range patches {
		n += len(pt.Vertices)
	}
	return n
}
