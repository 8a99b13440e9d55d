package region

import (
	"testing"

	"github.com/painscape/painscape/pkg/math"
)

func TestVisibilityRamp(t *testing.T) {
	tests := []struct {
		name string
		dot  float32
		want float32
	}{
		{"behind terminator", -1, 0},
		{"at terminator", 0, 0},
		{"half ramp", 0.125, 0.5},
		{"at deadband edge", 0.25, 1},
		{"fully facing", 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Visibility(tt.dot); got != tt.want {
				t.Errorf("Visibility(%v) = %v, want %v", tt.dot, got, tt.want)
			}
		})
	}
}

func TestVisibilityMonotonic(t *testing.T) {
	prev := Visibility(-1)
	for dot := float32(-1); dot <= 1; dot += 0.05 {
		v := Visibility(dot)
		if v < prev {
			t.Fatalf("Visibility(%v) = %v decreased from %v", dot, v, prev)
		}
		prev = v
	}
}

func TestOpacityOrdering(t *testing.T) {
	if !(OpacitySelectedHovered > OpacitySelected &&
		OpacitySelected > OpacityHovered &&
		OpacityHovered > OpacityIdle) {
		t.Errorf("opacity ordering broken: %v > %v > %v > %v",
			OpacitySelectedHovered, OpacitySelected, OpacityHovered, OpacityIdle)
	}
}

func engineStates(t *testing.T, cameraDir math.Vec3, selected []Name, hovered Name) map[Name]OverlayState {
	t.Helper()
	e := NewEngine(Regions())
	byName := make(map[Name]OverlayState)
	for _, st := range e.Update(cameraDir, selected, hovered) {
		byName[st.Name] = st
	}
	return byName
}

func TestEngineIdleFacingRegion(t *testing.T) {
	// Camera straight ahead: the front-facing orbital overlays render the
	// idle ghost at full visibility.
	states := engineStates(t, math.Vec3{Z: 1}, nil, None)

	st := states[OrbitalLeft]
	if !st.Visible {
		t.Fatal("front-facing region not visible with camera in front")
	}
	vis := Visibility(math.Vec3{Z: 1}.Dot(math.Vec3{X: -0.20, Z: 0.98}.Normalize()))
	want := OpacityIdle * vis
	if math.Abs(st.Opacity-want) > 1e-5 {
		t.Errorf("idle opacity = %v, want %v", st.Opacity, want)
	}
}

func TestEngineBackfacingHiddenEvenWhenSelected(t *testing.T) {
	states := engineStates(t, math.Vec3{Z: 1}, []Name{Occipital}, Occipital)

	st := states[Occipital]
	if st.Visible || st.Opacity != 0 {
		t.Errorf("back-facing region visible=%v opacity=%v, want hidden", st.Visible, st.Opacity)
	}
}

func TestEngineSelectionAndHoverScaleOpacity(t *testing.T) {
	cam := math.Vec3{Z: 1}
	idle := engineStates(t, cam, nil, None)[Frontal]
	hov := engineStates(t, cam, nil, Frontal)[Frontal]
	sel := engineStates(t, cam, []Name{Frontal}, None)[Frontal]
	both := engineStates(t, cam, []Name{Frontal}, Frontal)[Frontal]

	if !(both.Opacity > sel.Opacity && sel.Opacity > hov.Opacity && hov.Opacity > idle.Opacity) {
		t.Errorf("opacity ordering at equal visibility: both=%v sel=%v hov=%v idle=%v",
			both.Opacity, sel.Opacity, hov.Opacity, idle.Opacity)
	}
}

func TestEngineUsesCatalogColor(t *testing.T) {
	states := engineStates(t, math.Vec3{Z: 1}, nil, None)
	r, _ := ByName(Frontal)
	if states[Frontal].Color != r.Color {
		t.Errorf("overlay color = %v, want catalog color %v", states[Frontal].Color, r.Color)
	}
}

func TestEngineStateSliceReused(t *testing.T) {
	e := NewEngine(Regions())
	first := e.Update(math.Vec3{Z: 1}, nil, None)
	second := e.Update(math.Vec3{X: 1}, nil, None)
	if &first[0] != &second[0] {
		t.Error("Update allocated a new state slice")
	}
}

func TestEngineHeatmapNoIntensityHidden(t *testing.T) {
	e := NewEngine(Regions())
	for _, st := range e.UpdateHeatmap(math.Vec3{Z: 1}, nil) {
		if st.Visible {
			t.Errorf("region %s visible in heatmap mode with no intensities", st.Name)
		}
	}
}

func TestEngineHeatmapIntensity(t *testing.T) {
	e := NewEngine(Regions())
	intensities := []Intensity{
		{Region: Frontal, Value: 8},
		{Region: Maxillary, Value: 0},
	}
	states := e.UpdateHeatmap(math.Vec3{Z: 1}, intensities)

	byName := make(map[Name]OverlayState)
	for _, st := range states {
		byName[st.Name] = st
	}

	front := byName[Frontal]
	if !front.Visible {
		t.Fatal("region with positive intensity not visible")
	}
	if front.Color != HeatColor(8) {
		t.Errorf("heatmap color = %v, want %v", front.Color, HeatColor(8))
	}
	if byName[Maxillary].Visible {
		t.Error("zero-intensity region visible in heatmap mode")
	}
	// Selection state plays no role in heatmap opacity
	vis := Visibility(math.Vec3{Z: 1}.Dot(math.Vec3{Y: 0.24, Z: 0.97}.Normalize()))
	want := OpacityHeatmap * vis
	if math.Abs(front.Opacity-want) > 1e-5 {
		t.Errorf("heatmap opacity = %v, want %v", front.Opacity, want)
	}
}
