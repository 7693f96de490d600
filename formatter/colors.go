package formatter

import (
	"fmt"
	"math"
)

// ColorFunc assigns a stroke color (hex "#rrggbb") to the trip at the
// given 0-based emission index. It is injected into Build so callers
// can swap the hue-distribution policy.
type ColorFunc func(index int) string

// DefaultPalette spreads hues evenly across [0,360) for the given trip
// count, at fixed 70% saturation and 50% lightness. Distinct indices in
// range receive visually distinct colors.
func DefaultPalette(total int) ColorFunc {
	if total <= 0 {
		total = 1
	}
	return func(index int) string {
		hue := float64(index%total) * 360 / float64(total)
		return hslToHex(hue, 0.70, 0.50)
	}
}

// hslToHex converts HSL (hue in degrees, s and l in [0,1]) to
// "#rrggbb".
func hslToHex(h, s, l float64) string {
	c := (1 - math.Abs(2*l-1)) * s
	hp := math.Mod(h, 360) / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	m := l - c/2
	return fmt.Sprintf("#%02x%02x%02x",
		int(math.Round((r+m)*255)),
		int(math.Round((g+m)*255)),
		int(math.Round((b+m)*255)))
}
