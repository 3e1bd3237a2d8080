package style

import (
	"fmt"
	"math"

	"github.com/figtreehq/figtree/figma"
)

// opaqueEpsilon is the alpha threshold at or above which a color is
// rendered in the 3-channel rgb() form.
const opaqueEpsilon = 0.999

// ColorToCSS converts a Figma color to a CSS color string. Channels are
// scaled to 0-255 and rounded half away from zero (math.Round); the
// effective alpha is the color's own alpha multiplied by opacity. Alpha
// at or above 0.999 yields "rgb(r, g, b)"; anything lower yields
// "rgba(r, g, b, a)" with the alpha formatted to exactly three decimal
// places. A nil color yields the empty string: no color is a normal
// input, not an error.
func ColorToCSS(color *figma.Color, opacity float64) string {
	if color == nil {
		return ""
	}

	r := int(math.Round(color.R * 255))
	g := int(math.Round(color.G * 255))
	b := int(math.Round(color.B * 255))
	a := color.Alpha() * opacity

	if a >= opaqueEpsilon {
		return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %.3f)", r, g, b, a)
}
