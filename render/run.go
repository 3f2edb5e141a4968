package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/shapedraw"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowFPS draws an FPS/TPS counter in the top-left corner.
	ShowFPS bool
	// OnUpdate runs after the plugin's Update each tick. Returning an error
	// stops the game loop; ebiten.Termination exits cleanly.
	OnUpdate func() error
}

// game adapts a Plugin and Renderer to ebiten.Game.
type game struct {
	plugin   *shapedraw.Plugin
	renderer *Renderer
	cfg      RunConfig

	fps        *ebiten.Image
	fpsElapsed float64
}

// Run opens a window and drives p and r until the window closes.
func Run(p *shapedraw.Plugin, r *Renderer, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 800, 600
	}
	if r.Camera != nil && (r.Camera.Viewport.Width <= 0 || r.Camera.Viewport.Height <= 0) {
		r.Camera.Viewport = shapedraw.Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)}
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&game{plugin: p, renderer: r, cfg: cfg})
}

func (g *game) Update() error {
	g.plugin.Update()
	if g.cfg.ShowFPS {
		g.updateFPS(1 / float64(ebiten.TPS()))
	}
	if g.cfg.OnUpdate != nil {
		return g.cfg.OnUpdate()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.plugin)
	if g.fps != nil {
		screen.DrawImage(g.fps, nil)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// updateFPS redraws the counter roughly every half second.
func (g *game) updateFPS(dt float64) {
	if g.fps == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		g.fps = ebiten.NewImage(100, 32)
		g.fpsElapsed = 0.5
	}
	g.fpsElapsed += dt
	if g.fpsElapsed < 0.5 {
		return
	}
	g.fpsElapsed = 0

	g.fps.Clear()
	g.fps.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(g.fps, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}
