// Package export writes frame snapshots. The output format is decided once
// at startup: a raster capture when the renderer's framebuffer is readable,
// otherwise a vector SVG dump of the current outline.
package export

import (
	"fmt"
	"time"
)

// Format is the snapshot output format, resolved once at startup rather
// than discovered by catching failures per snapshot.
type Format int

const (
	FormatPNG Format = iota
	FormatSVG
)

func (f Format) Ext() string {
	if f == FormatPNG {
		return "png"
	}
	return "svg"
}

// BaseName builds the snapshot file stem from wall time at seconds
// resolution. Two snapshots within the same second collide and the later
// one wins; this mirrors the historical behavior and is deliberate.
func BaseName(t time.Time) string {
	return "pulse_" + t.Format("20060102_150405")
}

// FileName is BaseName plus the format's extension.
func FileName(t time.Time, f Format) string {
	return fmt.Sprintf("%s.%s", BaseName(t), f.Ext())
}
