package states

import (
	"github.com/painscape/painscape/internal/assets"
	"github.com/painscape/painscape/internal/engine/audio"
	"github.com/painscape/painscape/internal/engine/camera"
	"github.com/painscape/painscape/internal/engine/renderer"
	"github.com/painscape/painscape/pkg/math"
	"github.com/painscape/painscape/pkg/region"
)

// fieldOfView is the vertical FOV of the head viewport in radians.
const fieldOfView = 0.785398 // 45 degrees

// Context carries the services and interaction state shared by all viewer
// states. The selection set lives here so it survives state transitions
// (fallback selections carry over once the detailed mesh arrives).
type Context struct {
	Renderer *renderer.Renderer
	Camera   *camera.OrbitCamera
	Audio    *audio.Manager
	Assets   *assets.Manager
	Manager  *Manager

	Width  int
	Height int

	// ModelName is the configured head model, resolved by the asset manager.
	ModelName string

	// Selected is the ordered selection set, mutated only through Toggle.
	Selected    []region.Name
	Interaction *region.Interaction
	Visibility  *region.Engine

	// Heatmap mode replaces selection coloring with aggregated intensities.
	Heatmap     bool
	Intensities []region.Intensity
}

// NewContext wires the shared interaction state.
func NewContext() *Context {
	ctx := &Context{
		Visibility: region.NewEngine(region.Regions()),
	}
	ctx.Interaction = region.NewInteraction(ctx.Toggle)
	return ctx
}

// Toggle flips the region in the selection set and plays audio feedback.
func (ctx *Context) Toggle(name region.Name) {
	for i, n := range ctx.Selected {
		if n == name {
			ctx.Selected = append(ctx.Selected[:i], ctx.Selected[i+1:]...)
			if ctx.Audio != nil {
				ctx.Audio.PlayDeselect()
			}
			return
		}
	}
	ctx.Selected = append(ctx.Selected, name)
	if ctx.Audio != nil {
		ctx.Audio.PlaySelect()
	}
}

// OverlayStates runs the per-frame visibility pass for the current mode.
func (ctx *Context) OverlayStates() []region.OverlayState {
	dir := ctx.Camera.Direction()
	if ctx.Heatmap {
		return ctx.Visibility.UpdateHeatmap(dir, ctx.Intensities)
	}
	return ctx.Visibility.Update(dir, ctx.Selected, ctx.Interaction.Hovered())
}

// ProjMatrix returns the projection for the current viewport size.
func (ctx *Context) ProjMatrix() math.Mat4 {
	aspect := float32(ctx.Width) / float32(ctx.Height)
	return math.Perspective(fieldOfView, aspect, 0.1, 100)
}

// ViewProjInverse returns the inverse view-projection used for picking.
func (ctx *Context) ViewProjInverse() math.Mat4 {
	return ctx.ProjMatrix().Mul(ctx.Camera.ViewMatrix()).Inverse()
}
