// Package renderer draws the workpiece, the tool marker and the floor curve
// overlay with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/lathe-sim/internal/lathe"
	"github.com/Faultbox/lathe-sim/internal/logger"
	"github.com/Faultbox/lathe-sim/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Frame is everything drawn in one frame.
type Frame struct {
	Spin          float32
	Tip           lathe.Tip
	ControlPoints []lathe.Tip
	Curve         []lathe.Tip
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config     Config
	projection math.Mat4

	cylinder *Cylinder
	tool     *Tool
	overlay  *Overlay
}

// New creates a renderer for the given mesh.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config, mesh *lathe.Mesh) (*Renderer, error) {
	r := &Renderer{
		config:     cfg,
		projection: math.Ortho(-1, 1, -1, 1, -1, 1),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)

	var err error
	if r.cylinder, err = NewCylinder(mesh); err != nil {
		r.Close()
		return nil, fmt.Errorf("cylinder: %w", err)
	}
	if r.tool, err = NewTool(); err != nil {
		r.Close()
		return nil, fmt.Errorf("tool: %w", err)
	}
	if r.overlay, err = NewOverlay(); err != nil {
		r.Close()
		return nil, fmt.Errorf("overlay: %w", err)
	}

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Cylinder returns the workpiece buffers, which accept mesh patches.
func (r *Renderer) Cylinder() *Cylinder {
	return r.cylinder
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.overlay != nil {
		r.overlay.Close()
	}
	if r.tool != nil {
		r.tool.Close()
	}
	if r.cylinder != nil {
		r.cylinder.Close()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Draw renders one frame.
func (r *Renderer) Draw(f Frame) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.cylinder.Draw(r.projection, lathe.ModelTransform(f.Spin))

	gl.Disable(gl.DEPTH_TEST)
	r.overlay.Draw(r.projection, f.Curve, f.ControlPoints)
	r.tool.Draw(r.projection, lathe.ToolTransform(f.Tip))
	gl.Enable(gl.DEPTH_TEST)
}
