package reveal

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	ShowDebug bool
}

// game adapts a Widget and its View to ebiten.Game.
type game struct {
	widget *Widget
	view   *View
}

func (g *game) Update() error {
	dt := time.Second / time.Duration(ebiten.TPS())
	g.view.Update(dt)
	g.widget.Update(dt)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.view.Draw(screen)
}

func (g *game) Layout(outsideW, outsideH int) (int, int) {
	if g.view.SetScreenSize(float64(outsideW), float64(outsideH)) {
		g.widget.Resize()
	}
	return outsideW, outsideH
}

// Run opens a resizable window and drives w and v until the window closes.
// The view's input is routed to w.
func Run(w *Widget, v *View, cfg RunConfig) error {
	if w == nil || v == nil {
		return fmt.Errorf("reveal: Run needs a widget and a view")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("reveal: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.ShowDebug {
		v.opts.ShowDebug = true
	}
	v.SetHandler(w)
	if v.SetScreenSize(float64(cfg.Width), float64(cfg.Height)) {
		w.Resize()
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(&game{widget: w, view: v})
}
