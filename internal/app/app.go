// Package app runs the simulator loop: input drives the workpiece, whose
// patches feed the renderer and the cutting sound.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/lathe-sim/internal/assets"
	"github.com/Faultbox/lathe-sim/internal/config"
	"github.com/Faultbox/lathe-sim/internal/engine/audio"
	"github.com/Faultbox/lathe-sim/internal/engine/input"
	"github.com/Faultbox/lathe-sim/internal/engine/renderer"
	"github.com/Faultbox/lathe-sim/internal/engine/window"
	"github.com/Faultbox/lathe-sim/internal/lathe"
	"github.com/Faultbox/lathe-sim/internal/logger"
)

// App is the simulator instance.
type App struct {
	cfg     *config.Config
	log     *zap.Logger
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	textures *assets.Manager
	input    *input.Input
	audio    *audio.Manager
	cutSound *audio.Sound
	throttle *Throttle

	session       *Session
	startMaterial string
	spin          float32
	title         string
}

// New creates the window, uploads the workpiece and opens the speaker.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg:      cfg,
		log:      logger.Named("app"),
		textures: assets.NewManager(),
		throttle: NewThrottle(cfg.Audio.CutInterval),
	}

	if err := a.textures.AddDir(cfg.Assets.TextureDir); err != nil {
		a.log.Warn("texture directory unavailable", zap.Error(err))
	}

	a.log.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Bool("fullscreen", cfg.Graphics.Fullscreen),
	)

	wp, err := lathe.NewWorkpiece(lathe.DefaultGeometry())
	if err != nil {
		return nil, fmt.Errorf("failed to create workpiece: %w", err)
	}

	// Create window (this also creates OpenGL context)
	a.window, err = window.New(window.Config{
		Title:      AppName,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	dw, dh := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{Width: dw, Height: dh}, wp.Mesh())
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	names := make([]string, len(cfg.Assets.Materials))
	for i, m := range cfg.Assets.Materials {
		names[i] = m.Name
	}
	w, h := a.window.Size()
	a.session = NewSession(wp, w, h, names, cfg.MaterialIndex(cfg.Lathe.Material))
	a.startMaterial = a.session.MaterialName()
	a.loadMaterial()

	a.input = input.New()
	a.initAudio()

	a.log.Info("initialized",
		zap.Int("sections", wp.Geometry().Sections),
		zap.Int("slices", wp.Geometry().Slices),
		zap.Int("vertices", len(wp.Mesh().Vertices)),
	)
	return a, nil
}

// initAudio opens the speaker and decodes the cutting sound. Failures leave
// the simulator silent.
func (a *App) initAudio() {
	a.audio = audio.New()
	a.audio.SetMasterVolume(a.cfg.Audio.MasterVolume)
	a.audio.SetSFXVolume(a.cfg.Audio.SFXVolume)
	a.audio.SetMuted(a.cfg.Audio.Muted)

	if a.cfg.Audio.Muted || a.cfg.Audio.CutSound == "" {
		return
	}
	if err := a.audio.Init(); err != nil {
		a.log.Warn("audio unavailable", zap.Error(err))
		return
	}
	snd, err := a.audio.LoadSFXFile(a.cfg.Audio.CutSound)
	if err != nil {
		a.log.Warn("cut sound failed to load",
			zap.String("path", a.cfg.Audio.CutSound),
			zap.Error(err),
		)
		return
	}
	a.cutSound = snd
}

// loadMaterial uploads the maps of the selected material.
func (a *App) loadMaterial() {
	mats := a.cfg.Assets.Materials
	i := a.session.Material()

	var m config.MaterialConfig
	if i < len(mats) {
		m = mats[i]
	}
	a.renderer.Cylinder().SetMaterial(uploadMaterial(a.textures, m, a.cfg.Assets.MaxTextureSize))

	hits, misses := a.textures.Cache().Stats()
	a.log.Debug("material loaded",
		zap.String("material", m.Name),
		zap.Int("cache_hits", hits),
		zap.Int("cache_misses", misses),
	)
}

// Run starts the main loop.
func (a *App) Run() error {
	a.running = true

	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting main loop")

	for a.running {
		// 1. Process input
		if a.input.Update() {
			a.running = false
		}
		for _, ev := range a.input.Events() {
			a.apply(a.session.Handle(ev), time.Now())
		}

		// 2. Spin the workpiece
		a.spin += a.cfg.Lathe.SpindleSpeed
		if a.spin >= 360 {
			a.spin -= 360
		}

		// 3. Render
		wp := a.session.Workpiece()
		a.renderer.Draw(renderer.Frame{
			Spin:          a.spin,
			Tip:           wp.Tip(),
			ControlPoints: wp.ControlPoints(),
			Curve:         wp.Curve(),
		})
		a.updateTitle()

		// 4. Present (swap buffers)
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			if logger.Enabled(zap.DebugLevel) {
				stats := wp.Stats()
				a.log.Debug("frame stats",
					zap.Int("fps", frameCount),
					zap.Int("moves", stats.Moves),
					zap.Int("cuts", stats.Cuts),
					zap.Int("patched_vertices", stats.PatchedVertices),
				)
			}
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// apply carries out the side effects of one handled event.
func (a *App) apply(eff Effect, now time.Time) {
	if eff.Quit {
		a.running = false
	}
	if eff.Resized {
		a.renderer.Resize(a.window.DrawableSize())
	}
	if eff.Patches != nil {
		lathe.ApplyPatches(a.renderer.Cylinder(), eff.Patches)
	}
	if eff.Cut && a.cutSound != nil && a.throttle.Allow(now) {
		if err := a.audio.PlaySFX(a.cutSound); err != nil {
			a.log.Debug("cut sound", zap.Error(err))
		}
	}
	if eff.MaterialChanged {
		a.loadMaterial()
	}
}

// saveMaterial remembers a material switched to during the run.
func (a *App) saveMaterial() {
	if a.session == nil {
		return
	}
	name := a.session.MaterialName()
	if name == "" || name == a.startMaterial {
		return
	}
	if err := config.SaveMaterial(name); err != nil {
		a.log.Warn("failed to save material", zap.Error(err))
		return
	}
	a.log.Info("material saved", zap.String("material", name), zap.String("path", config.SavePath()))
}

func (a *App) updateTitle() {
	wp := a.session.Workpiece()
	t := Title(wp.Mode(), a.session.MaterialName(), len(wp.ControlPoints()), wp.Stats())
	if t != a.title {
		a.title = t
		a.window.SetTitle(t)
	}
}

// Close cleans up resources.
func (a *App) Close() {
	a.log.Info("closing")
	a.saveMaterial()

	if a.audio != nil {
		a.audio.Close()
	}
	a.textures.Close()
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
