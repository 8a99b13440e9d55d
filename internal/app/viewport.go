// 3D head viewport rendered offscreen and embedded as an ImGui image.
package app

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/painscape/painscape/internal/engine/framebuffer"
	"github.com/painscape/painscape/internal/engine/overlay"
	"github.com/painscape/painscape/internal/engine/picking"
	"github.com/painscape/painscape/internal/logger"
	"github.com/painscape/painscape/pkg/math"
	"github.com/painscape/painscape/pkg/region"
)

// fieldOfView is the vertical FOV of the head viewport in radians.
const fieldOfView = 0.785398 // 45 degrees

// frontFacing is the camera reset direction, straight at the face.
var frontFacing = math.Vec3{X: 0, Y: 0, Z: 1}

// renderViewport draws the offscreen head view into the current panel and
// routes pointer input over the image back to camera and selection.
func (a *App) renderViewport() {
	avail := imgui.ContentRegionAvail()
	w, h := int32(avail.X), int32(avail.Y)
	if w < 1 || h < 1 {
		return
	}

	if a.fb == nil {
		fb, err := framebuffer.New(w, h)
		if err != nil {
			logger.Error("failed to create viewport framebuffer", zap.Error(err))
			imgui.TextDisabled("Viewport unavailable")
			return
		}
		a.fb = fb
	}
	a.fb.Resize(w, h)

	a.renderScene(w, h)

	// The framebuffer matches the display size, so image-local coordinates
	// map 1:1 onto pick coordinates.
	imagePos := imgui.CursorScreenPos()
	texRef := imgui.NewTextureRefTextureID(imgui.TextureID(a.fb.ColorTexture()))
	imgui.ImageWithBgV(
		*texRef,
		avail,
		imgui.NewVec2(0, 1), // UV flipped for OpenGL origin
		imgui.NewVec2(1, 0),
		imgui.NewVec4(0.10, 0.10, 0.13, 1.0),
		imgui.NewVec4(1, 1, 1, 1),
	)

	a.handleViewportInput(imagePos, avail)
}

// renderScene renders the current head into the framebuffer.
func (a *App) renderScene(w, h int32) {
	restore := a.fb.BindWithViewport()
	defer restore()

	proj := math.Perspective(fieldOfView, float32(w)/float32(h), 0.1, 100)
	a.renderer.Begin(a.camera.ViewMatrix(), proj, a.camera.Position())

	states := a.overlayStates()
	if a.mode == modeDiagram && a.head != nil {
		a.head.Draw(a.renderer, states)
	} else {
		a.renderFallbackScene(states)
	}
	a.renderer.End()
}

// renderFallbackScene draws the primitive head, tinting each shape with the
// stronger of its owning regions' overlay states.
func (a *App) renderFallbackScene(states []region.OverlayState) {
	byName := make(map[region.Name]region.OverlayState, len(states))
	for _, st := range states {
		byName[st.Name] = st
	}
	for i, shape := range a.fallback.Shapes {
		g := a.fallbackGeo[i]
		if g == nil {
			continue
		}
		a.renderer.DrawLit(g, overlay.SkinColor, 1.0)

		st, ok := byName[shape.Front]
		if back, okBack := byName[shape.Back]; okBack && (!ok || back.Opacity > st.Opacity) {
			st, ok = back, true
		}
		if ok && st.Visible {
			a.renderer.DrawFlat(g, st.Color, st.Opacity)
		}
	}
}

// handleViewportInput implements the click-vs-drag protocol over the image:
// left drag orbits, a plain click toggles the region under the cursor,
// movement updates hover, the wheel zooms.
func (a *App) handleViewportInput(imagePos, size imgui.Vec2) {
	hovered := imgui.IsItemHovered()
	if !hovered {
		if a.viewHovered {
			a.viewHovered = false
			a.interaction.Leave()
		}
		if !imgui.IsMouseDragging(imgui.MouseButtonLeft) {
			a.viewDragging = false
		}
		return
	}
	a.viewHovered = true

	mousePos := imgui.MousePos()
	localX := int(mousePos.X - imagePos.X)
	localY := int(mousePos.Y - imagePos.Y)

	if imgui.IsMouseDragging(imgui.MouseButtonLeft) {
		a.viewDragging = true
		a.camera.HandleDrag(mousePos.X-a.lastMouse.X, mousePos.Y-a.lastMouse.Y)
	} else if imgui.IsMouseReleased(imgui.MouseButtonLeft) {
		if !a.viewDragging {
			a.interaction.Press(a.pick(localX, localY, size))
		}
		a.viewDragging = false
	} else if !a.viewDragging {
		a.interaction.Move(a.pick(localX, localY, size))
	}
	a.lastMouse = mousePos

	// ImGui resets the cursor every frame, so the hint must be reapplied
	// for as long as a clickable region is under the pointer.
	if !a.viewDragging {
		imgui.SetMouseCursor(hoverCursor(a.interaction.Hovered()))
	}

	if wheel := imgui.CurrentIO().MouseWheel(); wheel != 0 {
		a.camera.HandleZoom(wheel)
	}
}

// hoverCursor maps the hover state to the pointer shape: the hand over
// clickable regions, the arrow everywhere else.
func hoverCursor(hovered region.Name) imgui.MouseCursor {
	if hovered != region.None {
		return imgui.MouseCursorHand
	}
	return imgui.MouseCursorArrow
}

// pick resolves the region under an image-local position for the current mode.
func (a *App) pick(x, y int, size imgui.Vec2) region.PickResult {
	proj := math.Perspective(fieldOfView, size.X/size.Y, 0.1, 100)
	invVP := proj.Mul(a.camera.ViewMatrix()).Inverse()
	ray := picking.ScreenToRay(float32(x), float32(y), size.X, size.Y, invVP)

	if a.mode == modeDiagram && a.normalized != nil {
		hit, ok := ray.IntersectMesh(a.normalized)
		if !ok {
			return region.Miss
		}
		return region.ResolveTriangle(hit.Triangle, a.normalized.Indices, a.classes, a.anchors)
	}

	best := -1
	var bestHit picking.MeshHit
	for i, shape := range a.fallback.Shapes {
		hit, ok := ray.IntersectMesh(shape.Mesh)
		if !ok {
			continue
		}
		if best < 0 || hit.T < bestHit.T {
			best, bestHit = i, hit
		}
	}
	if best < 0 {
		return region.Miss
	}
	return a.fallback.Shapes[best].Resolve(bestHit.Point)
}
