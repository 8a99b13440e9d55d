package region

import (
	"github.com/painscape/painscape/pkg/math"
)

// FacingDeadband is the dot-product window over which a region overlay ramps
// from hidden to fully visible. Overlays stay hidden until the region's
// outward normal starts facing the viewer, then ramp linearly over roughly a
// 15 degree window.
const FacingDeadband = 0.25

// Base overlay opacities by interaction state. Idle zones render a faint
// ghost so users can discover the clickable areas.
const (
	OpacitySelectedHovered = 0.75
	OpacitySelected        = 0.60
	OpacityHovered         = 0.40
	OpacityIdle            = 0.10

	// Heatmap overlays carry their meaning in the color ramp, so they use a
	// single flat base opacity.
	OpacityHeatmap = 0.65
)

// Visibility maps a camera-to-facing dot product to the [0, 1] overlay
// visibility factor: 0 at or behind the terminator, 1 from FacingDeadband on,
// linear in between.
func Visibility(dot float32) float32 {
	return math.Clamp(dot/FacingDeadband, 0, 1)
}

// OverlayState is the per-region render state recomputed every frame and
// pushed to the rendering layer. Visible=false means the overlay is skipped
// entirely, not drawn transparent.
type OverlayState struct {
	Name    Name
	Visible bool
	Color   [3]float32
	Opacity float32
}

// Engine computes per-region overlay states from the camera direction and
// the current interaction snapshot. It owns a fixed state array and performs
// no allocation per update, since it runs at render cadence.
type Engine struct {
	regions []Region
	facing  []math.Vec3 // normalized copies of the catalog facing vectors
	states  []OverlayState
}

// NewEngine creates a visibility engine over the given regions.
func NewEngine(regions []Region) *Engine {
	e := &Engine{
		regions: regions,
		facing:  make([]math.Vec3, len(regions)),
		states:  make([]OverlayState, len(regions)),
	}
	for i, r := range regions {
		e.facing[i] = r.Facing.Normalize()
		e.states[i].Name = r.Name
	}
	return e
}

// Update recomputes overlay states for selection-coloring mode. cameraDir is
// the direction from the model origin to the camera; selected and hovered
// are pass-by-value snapshots of the interaction state. The returned slice
// is owned by the engine and valid until the next update.
func (e *Engine) Update(cameraDir math.Vec3, selected []Name, hovered Name) []OverlayState {
	dir := cameraDir.Normalize()
	for i := range e.states {
		st := &e.states[i]
		vis := Visibility(dir.Dot(e.facing[i]))
		if vis <= 0 {
			st.Visible = false
			st.Opacity = 0
			continue
		}
		st.Visible = true
		st.Color = e.regions[i].Color
		st.Opacity = baseOpacity(containsName(selected, st.Name), hovered == st.Name) * vis
	}
	return e.states
}

// UpdateHeatmap recomputes overlay states for heatmap mode, which replaces
// selection coloring with the intensity ramp. Regions without a positive
// intensity render no overlay.
func (e *Engine) UpdateHeatmap(cameraDir math.Vec3, intensities []Intensity) []OverlayState {
	dir := cameraDir.Normalize()
	for i := range e.states {
		st := &e.states[i]
		value, ok := intensityFor(intensities, st.Name)
		if !ok || value <= 0 {
			st.Visible = false
			st.Opacity = 0
			continue
		}
		vis := Visibility(dir.Dot(e.facing[i]))
		if vis <= 0 {
			st.Visible = false
			st.Opacity = 0
			continue
		}
		st.Visible = true
		st.Color = HeatColor(value)
		st.Opacity = OpacityHeatmap * vis
	}
	return e.states
}

// States returns the engine's current state array without recomputing.
func (e *Engine) States() []OverlayState {
	return e.states
}

func baseOpacity(selected, hovered bool) float32 {
	switch {
	case selected && hovered:
		return OpacitySelectedHovered
	case selected:
		return OpacitySelected
	case hovered:
		return OpacityHovered
	default:
		return OpacityIdle
	}
}

func containsName(names []Name, name Name) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
