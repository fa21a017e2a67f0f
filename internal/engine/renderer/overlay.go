package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/lathe-sim/internal/engine/shader"
	"github.com/Faultbox/lathe-sim/internal/lathe"
	"github.com/Faultbox/lathe-sim/pkg/math"
)

// overlayCapacity is the vertex capacity of the overlay buffer: the full
// sampled curve plus the control points.
const overlayCapacity = lathe.CurveSamples + lathe.MaxControlPoints

// Overlay draws the floor curve and its control points in screen space.
type Overlay struct {
	program *shader.Program
	vao     uint32
	vbo     uint32
	scratch []math.Vec2
}

// NewOverlay allocates the streaming vertex buffer.
func NewOverlay() (*Overlay, error) {
	prog, err := shader.New(flatVertexShader, flatFragmentShader, flatUniforms...)
	if err != nil {
		return nil, err
	}
	o := &Overlay{program: prog, scratch: make([]math.Vec2, 0, overlayCapacity)}

	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)

	gl.GenBuffers(1, &o.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, overlayCapacity*8, nil, gl.STREAM_DRAW)

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 8, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return o, nil
}

// tipsToVec2 appends tips to dst as float32 screen positions.
func tipsToVec2(dst []math.Vec2, tips []lathe.Tip) []math.Vec2 {
	for _, t := range tips {
		dst = append(dst, math.Vec2{X: float32(t.X), Y: float32(t.Y)})
	}
	return dst
}

// Draw renders the curve as a line strip and the control points as dots.
func (o *Overlay) Draw(projection math.Mat4, curve, points []lathe.Tip) {
	if len(curve) == 0 && len(points) == 0 {
		return
	}
	if len(curve) > lathe.CurveSamples {
		curve = curve[:lathe.CurveSamples]
	}
	if len(points) > lathe.MaxControlPoints {
		points = points[:lathe.MaxControlPoints]
	}

	o.scratch = tipsToVec2(o.scratch[:0], curve)
	o.scratch = tipsToVec2(o.scratch, points)

	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(o.scratch)*8, unsafe.Pointer(&o.scratch[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	identity := math.Identity()
	o.program.Use()
	gl.UniformMatrix4fv(o.program.Uniform("uProjection"), 1, false, projection.Ptr())
	gl.UniformMatrix4fv(o.program.Uniform("uModel"), 1, false, identity.Ptr())

	gl.BindVertexArray(o.vao)
	if len(curve) > 1 {
		gl.Uniform4f(o.program.Uniform("uColor"), 0.3, 0.9, 0.4, 1.0)
		gl.DrawArrays(gl.LINE_STRIP, 0, int32(len(curve)))
	}
	if len(points) > 0 {
		gl.Uniform4f(o.program.Uniform("uColor"), 1.0, 0.3, 0.3, 1.0)
		gl.Uniform1f(o.program.Uniform("uPointSize"), 8)
		gl.DrawArrays(gl.POINTS, int32(len(curve)), int32(len(points)))
	}
	gl.BindVertexArray(0)
}

// Close releases GPU resources.
func (o *Overlay) Close() {
	if o.vao != 0 {
		gl.DeleteVertexArrays(1, &o.vao)
	}
	if o.vbo != 0 {
		gl.DeleteBuffers(1, &o.vbo)
	}
	o.program.Delete()
}
