// Package viewer implements the windowed head viewer and its frame loop.
package viewer

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/painscape/painscape/internal/assets"
	"github.com/painscape/painscape/internal/config"
	"github.com/painscape/painscape/internal/engine/audio"
	"github.com/painscape/painscape/internal/engine/camera"
	"github.com/painscape/painscape/internal/engine/input"
	"github.com/painscape/painscape/internal/engine/renderer"
	"github.com/painscape/painscape/internal/engine/window"
	"github.com/painscape/painscape/internal/logger"
	"github.com/painscape/painscape/internal/session"
	"github.com/painscape/painscape/internal/viewer/states"
)

// Viewer is the standalone head viewer application.
type Viewer struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	audio    *audio.Manager
	diary    *session.Store

	ctx     *states.Context
	manager *states.Manager
	showFPS bool
}

// New creates the viewer.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{cfg: cfg}

	var err error
	v.window, err = window.New(window.Config{
		Title:      "Painscape Viewer",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context the window created
	v.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.input = input.New()

	v.audio = audio.New()
	v.audio.SetVolume(float64(cfg.Audio.SFXVolume))
	v.audio.SetMuted(cfg.Audio.Muted)
	if err := v.audio.Init(); err != nil {
		// Sound is feedback only; the viewer works without it
		logger.Warn("audio unavailable", zap.Error(err))
	}

	v.diary, err = session.Open(cfg.DiaryPath())
	if err != nil {
		logger.Warn("pain diary unavailable, heatmap disabled", zap.Error(err))
	}

	v.ctx = states.NewContext()
	v.ctx.Renderer = v.renderer
	v.ctx.Camera = camera.NewOrbitCamera()
	v.ctx.Audio = v.audio
	v.ctx.Assets = assets.NewManager(cfg.Model.SearchDirs)
	v.ctx.Width = cfg.Graphics.Width
	v.ctx.Height = cfg.Graphics.Height
	v.ctx.ModelName = cfg.Model.File

	v.manager = states.NewManager()
	v.ctx.Manager = v.manager
	v.manager.Change(states.NewLoadingState(v.ctx))

	v.showFPS = cfg.Graphics.ShowFPS

	logger.Info("viewer initialized")
	return v, nil
}

// Run starts the frame loop.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting viewer loop")

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if v.input.Update() {
			v.running = false
			break
		}

		for _, event := range v.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				v.renderer.Resize(event.Width, event.Height)
				v.ctx.Width = event.Width
				v.ctx.Height = event.Height
			case input.EventKeyDown:
				v.handleKey(event.Key)
			}
			if err := v.manager.HandleInput(event); err != nil {
				return fmt.Errorf("input error: %w", err)
			}
		}

		// 2. Update state machine
		if err := v.manager.Update(dt); err != nil {
			return fmt.Errorf("update error: %w", err)
		}

		// 3. Render
		if err := v.manager.Render(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}

		// 4. Present
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			if v.showFPS {
				v.window.SetTitle(fmt.Sprintf("Painscape Viewer (%d fps)", frameCount))
			}
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (v *Viewer) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		v.running = false
	case sdl.SCANCODE_H:
		v.toggleHeatmap()
	case sdl.SCANCODE_C:
		v.ctx.Selected = v.ctx.Selected[:0]
	}
}

// toggleHeatmap switches between selection coloring and the weekly
// intensity summary.
func (v *Viewer) toggleHeatmap() {
	if v.ctx.Heatmap {
		v.ctx.Heatmap = false
		v.ctx.Intensities = nil
		return
	}
	if v.diary == nil {
		return
	}
	v.ctx.Intensities = v.diary.WeeklySummary(time.Now())
	v.ctx.Heatmap = true
	logger.Info("heatmap mode", zap.Int("regions", len(v.ctx.Intensities)))
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.audio != nil {
		v.audio.Close()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
