package lathe

import (
	"math"
	"unsafe"
)

// Vertex is one interleaved mesh vertex as uploaded to the GPU.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// VertexSize is the byte stride of Vertex in the vertex buffer.
const VertexSize = int(unsafe.Sizeof(Vertex{}))

// Mesh is the tessellated surface of the workpiece. Vertices form a grid of
// (Slices+1) rings around the axis by (Sections+1) sections along it, stored
// slice-major so the sections of one slice are contiguous.
type Mesh struct {
	Geometry Geometry
	Vertices []Vertex
	Indices  []uint32
}

// BuildMesh tessellates the surface described by a profile. The index table
// is computed once here and never changes afterwards.
func BuildMesh(p *Profile) *Mesh {
	g := p.Geometry()
	rows := g.Sections + 1

	m := &Mesh{
		Geometry: g,
		Vertices: make([]Vertex, (g.Slices+1)*rows),
		Indices:  make([]uint32, 0, g.Slices*g.Sections*6),
	}

	for slice := 0; slice <= g.Slices; slice++ {
		cos, sin := sliceDirection(slice)
		for section := 0; section <= g.Sections; section++ {
			r := RadiusToWorld(p.Radius(section))
			m.Vertices[slice*rows+section] = Vertex{
				Position: [3]float32{float32(r * cos), float32(r * sin), float32(SectionToWorld(section))},
				Normal:   [3]float32{float32(cos), float32(sin), 0},
				TexCoord: [2]float32{float32(slice) / float32(g.Slices), float32(section) / float32(g.Sections)},
			}

			if slice == g.Slices || section == g.Sections {
				continue
			}

			// Counter-clockwise seen from outside the cylinder.
			ld := uint32(slice*rows + section)
			lu := ld + 1
			rd := ld + uint32(rows)
			ru := rd + 1
			m.Indices = append(m.Indices,
				ld, ru, lu,
				ld, rd, ru,
			)
		}
	}

	return m
}

// VertexIndex returns the position of a grid vertex in Vertices.
func (m *Mesh) VertexIndex(slice, section int) int {
	return slice*(m.Geometry.Sections+1) + section
}

// Floats returns the vertex table as a flat float32 slice sharing memory
// with Vertices, suitable for a single buffer upload.
func (m *Mesh) Floats() []float32 {
	if len(m.Vertices) == 0 {
		return nil
	}
	n := len(m.Vertices) * VertexSize / 4
	return unsafe.Slice((*float32)(unsafe.Pointer(&m.Vertices[0])), n)
}

func sliceDirection(slice int) (cos, sin float64) {
	a := SliceAngle(slice)
	return math.Cos(a), math.Sin(a)
}
