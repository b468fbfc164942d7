package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

func round2(n float64) float64 {
	return math.Round(n*100) / 100
}

// rgbToHSL returns hue in [0,360), saturation and lightness, each rounded to 2 decimals.
func rgbToHSL(rgb [3]uint8) [3]float64 {
	h, s, l := colorful.Color{
		R: float64(rgb[0]) / 255,
		G: float64(rgb[1]) / 255,
		B: float64(rgb[2]) / 255,
	}.Hsl()

	h = round2(h)
	if h >= 360 {
		h -= 360
	}

	return [3]float64{h, round2(s), round2(l)}
}

// hslToRGB converts HSL to the nearest bytes. Hue wraps around the circle;
// channels falling outside [0,1] saturate at 0 or 255. Any NaN or infinite
// component gives black.
func hslToRGB(h, s, l float64) [3]uint8 {
	if !finite(h) || !finite(s) || !finite(l) {
		return [3]uint8{}
	}

	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	c := colorful.Hsl(h, s, l).Clamped()
	return [3]uint8{toByte(c.R), toByte(c.G), toByte(c.B)}
}

func toByte(v float64) uint8 {
	return uint8(math.Round(v * 255))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
