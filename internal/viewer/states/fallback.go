package states

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/painscape/painscape/internal/assets"
	"github.com/painscape/painscape/internal/engine/input"
	"github.com/painscape/painscape/internal/engine/overlay"
	"github.com/painscape/painscape/internal/engine/picking"
	"github.com/painscape/painscape/internal/engine/renderer"
	"github.com/painscape/painscape/internal/logger"
	"github.com/painscape/painscape/pkg/region"
)

// primitiveScene renders and picks the procedural fallback head. Shared by
// the loading state (shown while the asset fetch is in flight) and the
// fallback state (shown permanently after a failed load).
type primitiveScene struct {
	ctx        *Context
	head       *region.FallbackHead
	geometries []*renderer.Geometry
}

func (sc *primitiveScene) build(ctx *Context) error {
	sc.ctx = ctx
	sc.head = region.BuildFallbackHead()
	sc.geometries = make([]*renderer.Geometry, len(sc.head.Shapes))
	for i, shape := range sc.head.Shapes {
		g, err := ctx.Renderer.Upload(shape.Mesh)
		if err != nil {
			return fmt.Errorf("uploading fallback shape %d: %w", i, err)
		}
		sc.geometries[i] = g
	}
	return nil
}

func (sc *primitiveScene) destroy() {
	for _, g := range sc.geometries {
		g.Destroy()
	}
	sc.geometries = nil
	sc.head = nil
}

// render draws each primitive shape and, over it, the stronger of its
// owning regions' overlay states. Shape-level tinting is coarser than the
// per-triangle overlays of the detailed mesh but keeps the same contract.
func (sc *primitiveScene) render() {
	r := sc.ctx.Renderer
	r.Begin(sc.ctx.Camera.ViewMatrix(), sc.ctx.ProjMatrix(), sc.ctx.Camera.Position())

	states := sc.ctx.OverlayStates()
	byName := make(map[region.Name]region.OverlayState, len(states))
	for _, st := range states {
		byName[st.Name] = st
	}

	for i, shape := range sc.head.Shapes {
		r.DrawLit(sc.geometries[i], overlay.SkinColor, 1.0)

		st, ok := byName[shape.Front]
		if back, okBack := byName[shape.Back]; okBack && (!ok || back.Opacity > st.Opacity) {
			st, ok = back, true
		}
		if ok && st.Visible {
			r.DrawFlat(sc.geometries[i], st.Color, st.Opacity)
		}
	}
	r.End()
}

// pick ray-tests every shape and resolves the nearest hit through the
// shape's own front/back ownership.
func (sc *primitiveScene) pick(x, y int) region.PickResult {
	ray := picking.ScreenToRay(float32(x), float32(y),
		float32(sc.ctx.Width), float32(sc.ctx.Height), sc.ctx.ViewProjInverse())

	bestT := float32(0)
	best := -1
	var bestHit picking.MeshHit
	for i, shape := range sc.head.Shapes {
		hit, ok := ray.IntersectMesh(shape.Mesh)
		if !ok {
			continue
		}
		if best < 0 || hit.T < bestT {
			best, bestT, bestHit = i, hit.T, hit
		}
	}
	if best < 0 {
		return region.Miss
	}
	return sc.head.Shapes[best].Resolve(bestHit.Point)
}

// LoadingState shows the fallback head while the detailed mesh loads in
// the background, then hands off to diagram or fallback.
type LoadingState struct {
	ctx    *Context
	scene  primitiveScene
	result <-chan assets.Result
	ptr    pointer
}

// NewLoadingState creates the loading state.
func NewLoadingState(ctx *Context) *LoadingState {
	return &LoadingState{ctx: ctx}
}

// Enter builds the placeholder scene and kicks off the async load.
func (s *LoadingState) Enter() error {
	logger.Info("loading head model", zap.String("model", s.ctx.ModelName))
	if err := s.scene.build(s.ctx); err != nil {
		return err
	}
	s.result = s.ctx.Assets.LoadAsync(s.ctx.ModelName)
	return nil
}

// Exit tears down the placeholder geometry.
func (s *LoadingState) Exit() error {
	s.scene.destroy()
	return nil
}

// Update polls the load result without blocking the frame loop.
func (s *LoadingState) Update(dt float64) error {
	s.ctx.Camera.Update(float32(dt))

	select {
	case res := <-s.result:
		if res.Err != nil {
			logger.Warn("head model load failed, staying on fallback head", zap.Error(res.Err))
			s.ctx.Manager.Change(NewFallbackState(s.ctx, res.Err))
			return nil
		}
		s.ctx.Manager.Change(NewDiagramState(s.ctx, res.Mesh))
	default:
	}
	return nil
}

// Render draws the placeholder head.
func (s *LoadingState) Render() error {
	s.scene.render()
	return nil
}

// HandleInput keeps the fallback head interactive while loading.
func (s *LoadingState) HandleInput(event input.Event) error {
	s.ptr.handle(s.ctx, event, s.scene.pick)
	return nil
}

// FallbackState is the permanent primitive-head view after a load failure.
type FallbackState struct {
	ctx     *Context
	scene   primitiveScene
	loadErr error
	ptr     pointer
}

// NewFallbackState creates the fallback state. loadErr records why the
// detailed mesh is unavailable.
func NewFallbackState(ctx *Context, loadErr error) *FallbackState {
	return &FallbackState{ctx: ctx, loadErr: loadErr}
}

// Enter builds the primitive scene.
func (s *FallbackState) Enter() error {
	return s.scene.build(s.ctx)
}

// Exit tears down the scene.
func (s *FallbackState) Exit() error {
	s.scene.destroy()
	return nil
}

// Update advances the camera.
func (s *FallbackState) Update(dt float64) error {
	s.ctx.Camera.Update(float32(dt))
	return nil
}

// Render draws the primitive head.
func (s *FallbackState) Render() error {
	s.scene.render()
	return nil
}

// HandleInput routes pointer events through the shared protocol.
func (s *FallbackState) HandleInput(event input.Event) error {
	s.ptr.handle(s.ctx, event, s.scene.pick)
	return nil
}
