// Package app implements the Painscape desktop application: an ImGui shell
// with a pain diary sidebar around the interactive 3D head viewport.
package app

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/painscape/painscape/internal/assets"
	"github.com/painscape/painscape/internal/config"
	"github.com/painscape/painscape/internal/engine/audio"
	"github.com/painscape/painscape/internal/engine/camera"
	"github.com/painscape/painscape/internal/engine/framebuffer"
	"github.com/painscape/painscape/internal/engine/overlay"
	"github.com/painscape/painscape/internal/engine/renderer"
	"github.com/painscape/painscape/internal/engine/ui"
	"github.com/painscape/painscape/internal/logger"
	"github.com/painscape/painscape/internal/session"
	"github.com/painscape/painscape/pkg/mesh"
	"github.com/painscape/painscape/pkg/region"
)

func init() {
	// The ImGui backend and all GL calls must stay on the main thread
	runtime.LockOSThread()
}

// viewportMode tracks which head the 3D panel shows.
type viewportMode int

const (
	modeLoading viewportMode = iota
	modeDiagram
	modeFallback
)

const (
	sidebarWidth    = float32(320)
	statusBarHeight = float32(30)
	focusDuration   = float32(0.4)
)

// App is the desktop application state.
type App struct {
	backend *ui.Backend
	cfg     *config.Config

	assets *assets.Manager
	diary  *session.Store
	audio  *audio.Manager

	fb       *framebuffer.Framebuffer
	renderer *renderer.Renderer
	camera   *camera.OrbitCamera

	// Head state for the current viewport mode
	mode        viewportMode
	loadResult  <-chan assets.Result
	loadErr     error
	normalized  *mesh.Mesh
	anchors     []region.Anchor
	classes     []int
	head        *overlay.Head
	fallback    *region.FallbackHead
	fallbackGeo []*renderer.Geometry

	// Interaction state shared across modes
	selected    []region.Name
	interaction *region.Interaction
	visibility  *region.Engine
	heatmap     bool
	intensities []region.Intensity

	// UI state
	pendingMu        sync.Mutex
	pendingModelPath string // set from the file dialog goroutine, opened on main thread
	logIntensity     float32
	logNote          string
	statusMsg        string
	viewDragging     bool
	viewHovered      bool
	lastMouse        imgui.Vec2
	lastFrame        time.Time
}

// New creates the application.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg:          cfg,
		mode:         modeLoading,
		camera:       camera.NewOrbitCamera(),
		assets:       assets.NewManager(cfg.Model.SearchDirs),
		visibility:   region.NewEngine(region.Regions()),
		logIntensity: 5,
		lastFrame:    time.Now(),
	}
	a.interaction = region.NewInteraction(a.toggle)

	var err error
	a.backend, err = ui.NewBackend("Painscape", int32(cfg.Graphics.Width), int32(cfg.Graphics.Height))
	if err != nil {
		return nil, fmt.Errorf("failed to create UI backend: %w", err)
	}

	a.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.audio = audio.New()
	a.audio.SetVolume(float64(cfg.Audio.SFXVolume))
	a.audio.SetMuted(cfg.Audio.Muted)
	if err := a.audio.Init(); err != nil {
		logger.Warn("audio unavailable", zap.Error(err))
	}

	a.diary, err = session.Open(cfg.DiaryPath())
	if err != nil {
		logger.Warn("pain diary unavailable", zap.Error(err))
	}

	a.buildFallbackScene()
	a.loadResult = a.assets.LoadAsync(cfg.Model.File)

	logger.Info("application initialized")
	return a, nil
}

// Run starts the main loop.
func (a *App) Run() {
	a.backend.Run(a.render)
}

// Close persists settings and releases resources.
func (a *App) Close() {
	if err := a.cfg.Save(); err != nil {
		logger.Warn("failed to save config", zap.Error(err))
	}
	a.destroyHead()
	a.destroyFallbackScene()
	if a.fb != nil {
		a.fb.Destroy()
		a.fb = nil
	}
	if a.renderer != nil {
		a.renderer.Close()
		a.renderer = nil
	}
	if a.audio != nil {
		a.audio.Close()
		a.audio = nil
	}
	logger.Info("application closed")
}

// toggle flips a region in the selection set and plays audio feedback.
func (a *App) toggle(name region.Name) {
	for i, n := range a.selected {
		if n == name {
			a.selected = append(a.selected[:i], a.selected[i+1:]...)
			a.audio.PlayDeselect()
			return
		}
	}
	a.selected = append(a.selected, name)
	a.audio.PlaySelect()
}

// render is called each frame inside an active ImGui frame.
func (a *App) render() {
	now := time.Now()
	dt := float32(now.Sub(a.lastFrame).Seconds())
	a.lastFrame = now

	// Process pending file dialog result on the main thread
	if path := a.takePendingModel(); path != "" {
		a.openModel(path)
	}

	a.pollLoadResult()
	a.camera.Update(dt)

	// Main menu bar
	if imgui.BeginMainMenuBar() {
		if imgui.BeginMenu("File") {
			if imgui.MenuItemBool("Open Model...") {
				a.openFileDialog()
			}
			imgui.Separator()
			if imgui.MenuItemBool("Exit") {
				a.Close()
				os.Exit(0)
			}
			imgui.EndMenu()
		}
		if imgui.BeginMenu("View") {
			if imgui.MenuItemBool("Reset Camera") {
				a.camera.FocusOn(frontFacing, focusDuration)
			}
			heat := a.heatmap
			if imgui.Checkbox("Weekly Heatmap", &heat) {
				a.setHeatmap(heat)
			}
			imgui.EndMenu()
		}
		imgui.EndMainMenuBar()
	}

	viewport := imgui.MainViewport()
	workPos := viewport.WorkPos()
	workSize := viewport.WorkSize()
	contentHeight := workSize.Y - statusBarHeight

	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse

	// Left panel: regions and pain diary
	imgui.SetNextWindowPos(workPos)
	imgui.SetNextWindowSize(imgui.NewVec2(sidebarWidth, contentHeight))
	if imgui.BeginV("Pain Diary", nil, flags) {
		a.renderSidebar()
	}
	imgui.End()

	// Center panel: 3D head viewport
	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X+sidebarWidth, workPos.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(workSize.X-sidebarWidth, contentHeight))
	if imgui.BeginV("Head", nil, flags) {
		a.renderViewport()
	}
	imgui.End()

	// Status bar
	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X, workPos.Y+contentHeight))
	imgui.SetNextWindowSize(imgui.NewVec2(workSize.X, statusBarHeight))
	statusFlags := flags | imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoScrollbar
	if imgui.BeginV("##StatusBar", nil, statusFlags) {
		a.renderStatusBar()
	}
	imgui.End()
}

// openFileDialog shows a native dialog to pick a head model.
// NOTE: SDL/Cocoa window operations must happen on the main thread, so the
// goroutine only records the chosen path; render() opens it.
func (a *App) openFileDialog() {
	go func() {
		filename, err := dialog.File().
			Filter("Head Models", "obj", "stl").
			Filter("All Files", "*").
			Title("Open Head Model").
			Load()
		if err != nil {
			if err != dialog.ErrCancelled {
				logger.Warn("file dialog error", zap.Error(err))
			}
			return
		}
		a.setPendingModel(filename)
	}()
}

// setPendingModel records a dialog-chosen path for the render thread.
func (a *App) setPendingModel(path string) {
	a.pendingMu.Lock()
	a.pendingModelPath = path
	a.pendingMu.Unlock()
}

// takePendingModel returns and clears the pending path, if any.
func (a *App) takePendingModel() string {
	a.pendingMu.Lock()
	path := a.pendingModelPath
	a.pendingModelPath = ""
	a.pendingMu.Unlock()
	return path
}

// openModel starts an async load of a new head model.
func (a *App) openModel(path string) {
	logger.Info("opening head model", zap.String("path", path))
	a.statusMsg = "Loading " + path
	a.mode = modeLoading
	a.destroyHead()
	a.loadErr = nil
	a.loadResult = a.assets.LoadAsync(path)
}

// pollLoadResult checks the async load without blocking the frame.
func (a *App) pollLoadResult() {
	if a.loadResult == nil {
		return
	}
	select {
	case res := <-a.loadResult:
		a.loadResult = nil
		if res.Err != nil {
			logger.Warn("head model load failed, using fallback head", zap.Error(res.Err))
			a.loadErr = res.Err
			a.mode = modeFallback
			a.statusMsg = "Model load failed: " + res.Err.Error()
			return
		}
		if err := a.buildHead(res.Mesh); err != nil {
			logger.Error("head classification failed", zap.Error(err))
			a.loadErr = err
			a.mode = modeFallback
			a.statusMsg = "Model rejected: " + err.Error()
			return
		}
		a.mode = modeDiagram
		a.statusMsg = ""
	default:
	}
}

// buildHead normalizes, classifies and uploads a freshly loaded mesh.
func (a *App) buildHead(source *mesh.Mesh) error {
	a.destroyHead()

	a.normalized = mesh.Normalize(source)
	a.anchors = region.Anchors()

	classes, err := region.Classify(a.normalized.Positions, a.anchors)
	if err != nil {
		return fmt.Errorf("classifying head mesh: %w", err)
	}
	a.classes = classes

	subs := region.BuildSubMeshes(a.normalized, classes, a.anchors)
	head, err := overlay.Build(a.renderer, a.normalized, subs)
	if err != nil {
		return fmt.Errorf("building head overlays: %w", err)
	}
	a.head = head

	logger.Info("head diagram ready",
		zap.Int("vertices", a.normalized.VertexCount()),
		zap.Int("triangles", a.normalized.TriangleCount()),
		zap.Int("regions", len(subs)),
	)
	return nil
}

func (a *App) destroyHead() {
	if a.head != nil {
		a.head.Destroy()
		a.head = nil
	}
	a.normalized = nil
	a.classes = nil
	a.anchors = nil
}

func (a *App) buildFallbackScene() {
	a.fallback = region.BuildFallbackHead()
	a.fallbackGeo = make([]*renderer.Geometry, len(a.fallback.Shapes))
	for i, shape := range a.fallback.Shapes {
		g, err := a.renderer.Upload(shape.Mesh)
		if err != nil {
			logger.Error("failed to upload fallback shape", zap.Int("shape", i), zap.Error(err))
			continue
		}
		a.fallbackGeo[i] = g
	}
}

func (a *App) destroyFallbackScene() {
	for _, g := range a.fallbackGeo {
		if g != nil {
			g.Destroy()
		}
	}
	a.fallbackGeo = nil
	a.fallback = nil
}

// setHeatmap switches between selection coloring and the weekly summary.
func (a *App) setHeatmap(on bool) {
	if !on {
		a.heatmap = false
		a.intensities = nil
		return
	}
	if a.diary == nil {
		a.statusMsg = "Pain diary unavailable"
		return
	}
	a.intensities = a.diary.WeeklySummary(time.Now())
	a.heatmap = true
}

// overlayStates runs the per-frame visibility pass for the current mode.
func (a *App) overlayStates() []region.OverlayState {
	dir := a.camera.Direction()
	if a.heatmap {
		return a.visibility.UpdateHeatmap(dir, a.intensities)
	}
	return a.visibility.Update(dir, a.selected, a.interaction.Hovered())
}

// renderStatusBar shows the transient status and the selection summary.
func (a *App) renderStatusBar() {
	if a.statusMsg != "" {
		imgui.Text(a.statusMsg)
		imgui.SameLine()
		imgui.Text("|")
		imgui.SameLine()
	}
	switch a.mode {
	case modeLoading:
		imgui.Text("Loading head model...")
	case modeFallback:
		imgui.Text("Simplified head (model unavailable)")
	default:
		imgui.Text(fmt.Sprintf("%d regions selected", len(a.selected)))
	}
}
