package export

import (
	"fmt"
	"os"
	"strings"
)

// HeartSVG renders one frame's screen-space outline as a filled SVG path.
// This is the vector fallback when no raster capability is present: the
// polygon that would have been drawn, dumped verbatim.
func HeartSVG(coords []float64, width, height int, bg, fill, glow string) string {
	if len(coords) < 6 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, bg))

	if glow != "" {
		writePath(&sb, coords, glow, 1.06, float64(width)/2, float64(height)/2)
	}
	writePath(&sb, coords, fill, 1.0, float64(width)/2, float64(height)/2)

	sb.WriteString("</svg>\n")
	return sb.String()
}

// writePath emits a closed path, optionally inflated about the center for
// the glow underlay.
func writePath(sb *strings.Builder, coords []float64, fill string, inflate, cx, cy float64) {
	sb.WriteString(fmt.Sprintf(`<path fill="%s" d="M`, fill))
	for i := 0; i+1 < len(coords); i += 2 {
		x := cx + (coords[i]-cx)*inflate
		y := cy + (coords[i+1]-cy)*inflate
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString(` Z"/>
`)
}

// WriteSVG saves a frame snapshot to path.
func WriteSVG(path string, coords []float64, width, height int, bg, fill, glow string) error {
	svg := HeartSVG(coords, width, height, bg, fill, glow)
	if svg == "" {
		return fmt.Errorf("empty outline, nothing to export")
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
