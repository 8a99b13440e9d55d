// Package overlay keeps the classified head resident on the GPU and draws
// the translucent region overlays on top of the base mesh.
package overlay

import (
	"fmt"

	"github.com/painscape/painscape/internal/engine/renderer"
	"github.com/painscape/painscape/pkg/mesh"
	"github.com/painscape/painscape/pkg/region"
)

// SkinColor is the neutral base tint of the head surface.
var SkinColor = [3]float32{0.80, 0.70, 0.62}

// Head owns the GPU geometry for the base mesh and one overlay geometry per
// clickable region that received triangles.
type Head struct {
	base    *renderer.Geometry
	regions map[region.Name]*renderer.Geometry
}

// Build uploads the base mesh and the per-region sub-meshes. Regions absent
// from subs (no owned triangles on this model) simply have no overlay.
func Build(r *renderer.Renderer, base *mesh.Mesh, subs []region.SubMesh) (*Head, error) {
	h := &Head{
		regions: make(map[region.Name]*renderer.Geometry, len(subs)),
	}

	g, err := r.Upload(base)
	if err != nil {
		return nil, fmt.Errorf("uploading base head: %w", err)
	}
	h.base = g

	for _, sub := range subs {
		sm := &mesh.Mesh{Positions: sub.Positions, Normals: sub.Normals, Indices: sub.Indices}
		g, err := r.Upload(sm)
		if err != nil {
			return nil, fmt.Errorf("uploading overlay %s: %w", sub.Name, err)
		}
		h.regions[sub.Name] = g
	}
	return h, nil
}

// Draw renders the opaque base head and then every visible overlay from the
// per-frame state array. Hidden overlays are skipped entirely.
func (h *Head) Draw(r *renderer.Renderer, states []region.OverlayState) {
	r.DrawLit(h.base, SkinColor, 1.0)
	for _, st := range states {
		if !st.Visible {
			continue
		}
		g, ok := h.regions[st.Name]
		if !ok {
			continue
		}
		r.DrawFlat(g, st.Color, st.Opacity)
	}
}

// HasOverlay reports whether the region got any triangles on this model.
func (h *Head) HasOverlay(name region.Name) bool {
	_, ok := h.regions[name]
	return ok
}

// Destroy frees the GPU geometry.
func (h *Head) Destroy() {
	if h.base != nil {
		h.base.Destroy()
		h.base = nil
	}
	for _, g := range h.regions {
		g.Destroy()
	}
	h.regions = nil
}
