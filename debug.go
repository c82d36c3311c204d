package reveal

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// statusReporter is implemented by handlers that can describe their state
// for the debug overlay. *Widget implements it.
type statusReporter interface {
	Percent() float64
	ActiveSlide() int
	Dragging() bool
	Autoplay() *Autoplay
}

// debugStatus formats the overlay text.
func debugStatus(tps, fps float64, s statusReporter) string {
	msg := fmt.Sprintf("TPS: %.1f\nFPS: %.1f", tps, fps)
	if s == nil {
		return msg
	}
	ap := s.Autoplay()
	msg += fmt.Sprintf("\nslide: %d\npercent: %.1f\ndragging: %t\nautoplay: %s",
		s.ActiveSlide(), s.Percent(), s.Dragging(), ap.State())
	if ap.State() == AutoplayPaused {
		msg += fmt.Sprintf(" (%.1fs)", ap.CooldownRemaining().Seconds())
	}
	return msg
}

// drawDebug prints TPS/FPS and the handler's state in the top-left corner.
func (v *View) drawDebug(screen *ebiten.Image) {
	s, _ := v.handler.(statusReporter)
	msg := debugStatus(ebiten.ActualTPS(), ebiten.ActualFPS(), s)
	fillRect(screen, Rect{X: 0, Y: 0, Width: 180, Height: 96}, Color{A: 0.5})
	ebitenutil.DebugPrintAt(screen, msg, 4, 2)
}
