// Package gui is the windowed renderer: a Raylib canvas showing the pulsing
// heart polygon with an optional glow underlay.
package gui

import (
	"fmt"
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/pulse/internal/anim"
	"github.com/san-kum/pulse/internal/config"
	"github.com/san-kum/pulse/internal/export"
	"github.com/san-kum/pulse/internal/heart"
	"github.com/san-kum/pulse/internal/palette"
)

const (
	helpText    = "[SPACE/CLICK] PAUSE   [S] SNAPSHOT   [ESC] EXIT"
	curveScale  = 12.0
	curveSteps  = 300
	glowInflate = 1.06
	pausedFPS   = 5 // ~200ms resume polling while paused
)

// ErrNoDisplay means the window never came up; windowed mode cannot run.
var ErrNoDisplay = fmt.Errorf("display unavailable")

// App drives the window. All mutation happens on the render thread; each
// frame's coordinates and colors are applied together before the next frame
// is scheduled.
type App struct {
	cfg      *config.Config
	animator *anim.Animator
	clock    anim.Clock

	phase      anim.Phase
	frame      anim.Frame
	snapFormat export.Format
	notice     string
	bg         rl.Color
}

// Run opens the window and blocks until the user closes it. Returns
// ErrNoDisplay when the display toolkit is unavailable.
func Run(cfg *config.Config, cycler *palette.Cycler, clock anim.Clock) error {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), "pulse ❤")
	if !rl.IsWindowReady() {
		return ErrNoDisplay
	}
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.FPS))
	rl.SetExitKey(0)

	base := heart.Points(curveScale, curveSteps)
	a := &App{
		cfg:      cfg,
		animator: anim.New(base, cycler, float64(cfg.Width)/2, float64(cfg.Height)/2),
		clock:    clock,
		phase:    anim.Running,
		bg:       parseHex(cfg.Background),
	}
	a.snapFormat = resolveSnapshotFormat()
	a.frame = a.animator.Frame(clock.Elapsed())

	for a.phase != anim.Closed {
		if rl.WindowShouldClose() {
			a.phase = a.phase.Close()
			break
		}
		a.update()
		a.draw()
	}
	return nil
}

// resolveSnapshotFormat probes the framebuffer once at startup. If the
// screen cannot be read back, snapshots fall back to a vector SVG dump.
func resolveSnapshotFormat() export.Format {
	probe := rl.LoadImageFromScreen()
	if probe == nil || probe.Width <= 0 {
		return export.FormatSVG
	}
	rl.UnloadImage(probe)
	return export.FormatPNG
}

func (a *App) update() {
	if rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyQ) {
		a.phase = a.phase.Close()
		return
	}
	if rl.IsKeyPressed(rl.KeySpace) || rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		a.phase = a.phase.Toggle()
		if a.phase == anim.Paused {
			rl.SetTargetFPS(pausedFPS)
		} else {
			rl.SetTargetFPS(int32(a.cfg.FPS))
		}
	}
	if rl.IsKeyPressed(rl.KeyS) {
		a.snapshot()
	}
	if a.phase == anim.Running {
		a.frame = a.animator.Frame(a.clock.Elapsed())
	}
}

func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(a.bg)

	if a.cfg.Glow {
		a.drawHeart(a.frame.Coords, glowInflate, toRaylib(a.frame.Glow, 170))
	}
	a.drawHeart(a.frame.Coords, 1.0, toRaylib(a.frame.Color, 255))

	a.drawHUD()
	rl.EndDrawing()
}

// drawHeart fills the outline as a triangle fan around the shape center.
// inflate > 1 grows the fan for the glow underlay.
func (a *App) drawHeart(coords []float64, inflate float64, col rl.Color) {
	if len(coords) < 6 {
		return
	}
	cx, cy := float64(a.cfg.Width)/2, float64(a.cfg.Height)/2
	fan := make([]rl.Vector2, 0, len(coords)/2+2)
	fan = append(fan, rl.NewVector2(float32(cx), float32(cy)))
	for i := 0; i+1 < len(coords); i += 2 {
		x := cx + (coords[i]-cx)*inflate
		y := cy + (coords[i+1]-cy)*inflate
		fan = append(fan, rl.NewVector2(float32(x), float32(y)))
	}
	fan = append(fan, fan[1]) // close the fan
	rl.DrawTriangleFan(fan, col)
}

func (a *App) drawHUD() {
	msg := helpText
	if a.phase == anim.Paused {
		msg = "PAUSED — SPACE OR CLICK TO RESUME"
	}
	rl.DrawText(msg, 10, 10, 12, rl.NewColor(255, 255, 255, 200))
	if a.notice != "" {
		rl.DrawText(a.notice, 10, int32(a.cfg.Height)-24, 12, rl.NewColor(180, 180, 180, 200))
	}
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), int32(a.cfg.Width)-70, 10, 12, rl.NewColor(140, 140, 140, 180))
}

// snapshot writes the current frame to a timestamped file in the working
// directory. Names have seconds resolution, so two snapshots within one
// second overwrite each other; that limitation is kept as-is. Failures are
// reported on the HUD and never stop the animation.
func (a *App) snapshot() {
	name := export.FileName(a.clock.Now(), a.snapFormat)
	switch a.snapFormat {
	case export.FormatPNG:
		rl.TakeScreenshot(name)
		a.notice = "saved " + name
	default:
		glow := ""
		if a.cfg.Glow {
			glow = a.frame.Glow.Hex()
		}
		err := export.WriteSVG(name, a.frame.Coords, a.cfg.Width, a.cfg.Height,
			a.cfg.Background, a.frame.Color.Hex(), glow)
		if err != nil {
			a.notice = "snapshot failed: " + err.Error()
			return
		}
		a.notice = "no raster capture, saved vector " + name
	}
}

func toRaylib(c palette.RGB, alpha uint8) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, alpha)
}

// parseHex reads #rgb or #rrggbb, falling back to near-black.
func parseHex(s string) rl.Color {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return rl.NewColor(17, 17, 17, 255)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return rl.NewColor(17, 17, 17, 255)
	}
	return rl.NewColor(uint8(v>>16), uint8(v>>8), uint8(v), 255)
}
