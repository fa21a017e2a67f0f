package app

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/lathe-sim/internal/engine/input"
	"github.com/Faultbox/lathe-sim/internal/lathe"
	"github.com/Faultbox/lathe-sim/internal/logger"
)

// Effect reports what handling one event requires from the outer loop.
type Effect struct {
	Patches         []lathe.Patch // mesh regions to upload
	Cut             bool          // material was removed
	MaterialChanged bool
	Resized         bool
	Quit            bool
}

// Session maps input events onto the workpiece. It holds no GPU or audio
// state so it can run headless.
type Session struct {
	wp        *lathe.Workpiece
	width     int
	height    int
	materials []string
	material  int
}

// NewSession creates a session for a window of the given size.
func NewSession(wp *lathe.Workpiece, width, height int, materials []string, material int) *Session {
	if material < 0 || material >= len(materials) {
		material = 0
	}
	return &Session{
		wp:        wp,
		width:     width,
		height:    height,
		materials: materials,
		material:  material,
	}
}

// Workpiece returns the workpiece being cut.
func (s *Session) Workpiece() *lathe.Workpiece { return s.wp }

// Size returns the pointer coordinate space.
func (s *Session) Size() (int, int) { return s.width, s.height }

// Material returns the selected material index.
func (s *Session) Material() int { return s.material }

// MaterialName returns the selected material name, or "" when none are
// configured.
func (s *Session) MaterialName() string {
	if s.material >= len(s.materials) {
		return ""
	}
	return s.materials[s.material]
}

func (s *Session) tipAt(x, y float64) lathe.Tip {
	return lathe.ScreenToTip(x, y, s.width, s.height)
}

// Handle applies one input event.
func (s *Session) Handle(ev input.Event) Effect {
	switch ev.Type {
	case input.EventQuit:
		return Effect{Quit: true}

	case input.EventWindowResize:
		// A one pixel axis would divide by zero in ScreenToTip.
		if ev.Width < 2 || ev.Height < 2 {
			return Effect{}
		}
		s.width, s.height = ev.Width, ev.Height
		return Effect{Resized: true}

	case input.EventPointerMove:
		patches := s.wp.MoveTo(s.tipAt(ev.X, ev.Y))
		return Effect{Patches: patches, Cut: patches != nil}

	case input.EventPointerDown:
		if ev.Button != sdl.BUTTON_LEFT {
			return Effect{}
		}
		if s.wp.Click(s.tipAt(ev.X, ev.Y)) {
			n := len(s.wp.ControlPoints())
			logger.Debug("control point added", zap.Int("count", n))
			if n == lathe.MaxControlPoints {
				logger.Info("floor curve committed")
			}
		}

	case input.EventAction:
		return s.action(ev.Action)
	}
	return Effect{}
}

func (s *Session) action(a input.Action) Effect {
	switch a {
	case input.ActionQuit:
		return Effect{Quit: true}
	case input.ActionCutMode:
		s.setMode(lathe.ModeCut)
	case input.ActionCurveMode:
		s.setMode(lathe.ModeCurve)
	case input.ActionClearCurve:
		s.wp.ClearCurve()
		logger.Info("floor curve cleared")
	case input.ActionReset:
		logger.Info("workpiece reset")
		return Effect{Patches: s.wp.Reset()}
	case input.ActionMaterial1:
		return s.selectMaterial(0)
	case input.ActionMaterial2:
		return s.selectMaterial(1)
	}
	return Effect{}
}

func (s *Session) setMode(m lathe.Mode) {
	if s.wp.Mode() == m {
		return
	}
	s.wp.SetMode(m)
	logger.Info("mode changed", zap.Stringer("mode", m))
}

func (s *Session) selectMaterial(i int) Effect {
	if i >= len(s.materials) || i == s.material {
		return Effect{}
	}
	s.material = i
	logger.Info("material selected", zap.String("material", s.materials[i]))
	return Effect{MaterialChanged: true}
}
