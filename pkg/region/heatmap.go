package region

import (
	"github.com/painscape/painscape/pkg/math"
)

// IntensityMax is the upper end of the pain intensity scale.
const IntensityMax = 10

// Intensity is an aggregated pain level for one region, used by the
// read-only heatmap view in place of live selection state.
type Intensity struct {
	Region Name
	Value  float32 // 0..IntensityMax
}

// heatStops is the color ramp for intensity values, one stop per quartile
// boundary: blue through green, yellow and orange to red.
var heatStops = [5][3]float32{
	{0.12, 0.30, 0.90}, // 0.0
	{0.15, 0.75, 0.30}, // 2.5
	{0.95, 0.90, 0.10}, // 5.0
	{0.95, 0.55, 0.10}, // 7.5
	{0.90, 0.12, 0.12}, // 10.0
}

// HeatColor maps an intensity value to the ramp color, interpolating
// linearly within each quartile band. Values outside [0, IntensityMax] are
// clamped.
func HeatColor(value float32) [3]float32 {
	v := math.Clamp(value, 0, IntensityMax)

	band := v * 4 / IntensityMax
	i := int(band)
	if i >= 4 {
		return heatStops[4]
	}
	t := band - float32(i)

	lo, hi := heatStops[i], heatStops[i+1]
	return [3]float32{
		math.Lerp(lo[0], hi[0], t),
		math.Lerp(lo[1], hi[1], t),
		math.Lerp(lo[2], hi[2], t),
	}
}

func intensityFor(intensities []Intensity, name Name) (float32, bool) {
	for _, it := range intensities {
		if it.Region == name {
			return it.Value, true
		}
	}
	return 0, false
}
