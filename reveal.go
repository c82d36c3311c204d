package reveal

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a premultiplied color.RGBA for Ebitengine calls.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// WhitePixel is a 1x1 white image used for solid color fills.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// EventType identifies a kind of widget event delivered to an EventStore.
type EventType uint8

const (
	EventPressStart       EventType = iota // a drag session began on the handle
	EventPressEnd                          // the drag session ended
	EventTap                               // the container was tapped away from the handle
	EventSlideSelected                     // a slide became active
	EventSlideReady                        // the active slide's before image is ready; divider reset
	EventAutoplayPaused                    // autoplay entered its temporary cooldown
	EventAutoplayResumed                   // autoplay restarted after the cooldown
	EventAutoplayDisabled                  // autoplay was permanently disabled by a manual interaction
)

var eventTypeNames = [...]string{
	EventPressStart:       "press_start",
	EventPressEnd:         "press_end",
	EventTap:              "tap",
	EventSlideSelected:    "slide_selected",
	EventSlideReady:       "slide_ready",
	EventAutoplayPaused:   "autoplay_paused",
	EventAutoplayResumed:  "autoplay_resumed",
	EventAutoplayDisabled: "autoplay_disabled",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}
