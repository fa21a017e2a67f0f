package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/lathe-sim/internal/engine/shader"
	"github.com/Faultbox/lathe-sim/pkg/math"
)

// toolOutline is the cutter silhouette in model units with the cutting
// point at the origin, wound counter-clockwise. The body trails down and
// to the right of the tip.
var toolOutline = []math.Vec2{
	{X: 0, Y: 0},
	{X: 1, Y: -3},
	{X: 3, Y: -1},
}

// Tool draws the cutter marker at the tool tip.
type Tool struct {
	program *shader.Program
	vao     uint32
	vbo     uint32
}

// NewTool uploads the marker.
func NewTool() (*Tool, error) {
	prog, err := shader.New(flatVertexShader, flatFragmentShader, flatUniforms...)
	if err != nil {
		return nil, err
	}
	t := &Tool{program: prog}

	gl.GenVertexArrays(1, &t.vao)
	gl.BindVertexArray(t.vao)

	gl.GenBuffers(1, &t.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, t.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(toolOutline)*8, unsafe.Pointer(&toolOutline[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 8, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return t, nil
}

// Draw renders the marker with the given model matrix.
func (t *Tool) Draw(projection, model math.Mat4) {
	t.program.Use()
	gl.UniformMatrix4fv(t.program.Uniform("uProjection"), 1, false, projection.Ptr())
	gl.UniformMatrix4fv(t.program.Uniform("uModel"), 1, false, model.Ptr())
	gl.Uniform4f(t.program.Uniform("uColor"), 0.9, 0.75, 0.2, 1.0)

	gl.BindVertexArray(t.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(toolOutline)))
	gl.BindVertexArray(0)
}

// Close releases GPU resources.
func (t *Tool) Close() {
	if t.vao != 0 {
		gl.DeleteVertexArrays(1, &t.vao)
	}
	if t.vbo != 0 {
		gl.DeleteBuffers(1, &t.vbo)
	}
	t.program.Delete()
}
