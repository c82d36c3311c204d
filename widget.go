package reveal

import (
	"log/slog"
	"time"
)

// Widget is one before/after comparison slider. It owns the catalog, the
// reveal percentage, the autoplay sweep, the drag state and the active slide.
// Widgets are single-threaded: call every method from the game loop.
type Widget struct {
	catalog *Catalog
	el      Elements
	logger  *slog.Logger
	store   EventStore

	percent  float64
	autoplay *Autoplay
	input    Interaction
	switcher Switcher
}

// Option configures a Widget.
type Option func(*Widget)

// WithAutoplay replaces the default sweep timings.
func WithAutoplay(cfg AutoplayConfig) Option {
	return func(w *Widget) { w.autoplay = NewAutoplay(cfg) }
}

// WithLogger sets the logger used for degraded operations.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Widget) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithEventStore forwards widget events to store.
func WithEventStore(store EventStore) Option {
	return func(w *Widget) { w.store = store }
}

// New creates a widget over catalog, shows slide 0 and starts the autoplay
// sweep. A nil or empty catalog yields a widget that never changes slides.
func New(catalog *Catalog, el Elements, opts ...Option) *Widget {
	w := &Widget{
		catalog: catalog,
		el:      el,
		logger:  slog.Default(),
		percent: midpointPercent,
	}
	w.input.w = w
	w.switcher = Switcher{w: w, active: -1}
	for _, opt := range opts {
		opt(w)
	}
	if w.autoplay == nil {
		w.autoplay = NewAutoplay(DefaultAutoplayConfig())
	}
	w.autoplay.OnPosition = func(p float64) {
		if w.autoplay.Active() {
			w.apply(p)
		}
	}
	w.autoplay.OnStateChange = w.autoplayStateChanged

	w.apply(w.percent)
	w.switcher.load(0)
	return w
}

// Percent returns the current reveal percentage.
func (w *Widget) Percent() float64 { return w.percent }

// ActiveSlide returns the active slide index, or -1 if nothing is loaded.
func (w *Widget) ActiveSlide() int { return w.switcher.Active() }

// Catalog returns the widget's catalog.
func (w *Widget) Catalog() *Catalog { return w.catalog }

// Autoplay returns the sweep driving the widget while untouched.
func (w *Widget) Autoplay() *Autoplay { return w.autoplay }

// Dragging reports whether a drag session is active.
func (w *Widget) Dragging() bool { return w.input.Dragging() }

// Update advances the autoplay sweep by dt.
func (w *Widget) Update(dt time.Duration) {
	w.autoplay.Step(dt)
}

// Resize re-applies the current percentage to the container's current bounds.
func (w *Widget) Resize() {
	w.apply(w.percent)
}

// PauseAutoplay pauses the sweep. A manual pause is permanent.
func (w *Widget) PauseAutoplay(manual bool) {
	w.autoplay.Pause(manual)
}

// PressStart begins a drag at pointerX. Autoplay is disabled permanently.
func (w *Widget) PressStart(pointerID int, pointerX float64) {
	w.input.PressStart(pointerID, pointerX)
}

// PressMove follows an active drag. It does nothing when no drag is active.
func (w *Widget) PressMove(pointerX float64) { w.input.PressMove(pointerX) }

// PressEnd ends the active drag.
func (w *Widget) PressEnd() { w.input.PressEnd() }

// DirectTap jumps the divider to pointerX. Autoplay is disabled permanently.
func (w *Widget) DirectTap(pointerX float64) { w.input.DirectTap(pointerX) }

// SelectSlide is a navigation action: it disables autoplay, then shows the
// slide at index. Invalid indices leave the slide, percentage and rendered
// content unchanged.
func (w *Widget) SelectSlide(index int) {
	w.autoplay.Pause(true)
	w.switcher.load(index)
}

// percentAt maps a pointer coordinate through the container bounds.
func (w *Widget) percentAt(pointerX float64) float64 {
	if w.el.Container == nil {
		return midpointPercent
	}
	return PercentFromPointer(pointerX, w.el.Container.Bounds())
}

// apply clamps p, stores it and pushes the resulting layout to the elements.
func (w *Widget) apply(p float64) {
	w.percent = ClampPercent(p)
	var bounds Rect
	if w.el.Container != nil {
		bounds = w.el.Container.Bounds()
	}
	l := ApplyPercent(w.percent, bounds)
	if w.el.BeforeLayer != nil {
		w.el.BeforeLayer.ApplyLayout(l)
	}
	if w.el.Handle != nil {
		w.el.Handle.ApplyLayout(l)
	}
}

func (w *Widget) autoplayStateChanged(from, to AutoplayState) {
	w.logger.Debug("autoplay state", "from", from.String(), "to", to.String())
	switch to {
	case AutoplayPaused:
		w.emit(EventAutoplayPaused, 0)
	case AutoplayDisabled:
		w.emit(EventAutoplayDisabled, 0)
	case AutoplayRunning:
		if from == AutoplayPaused {
			w.emit(EventAutoplayResumed, 0)
		}
	}
}

func (w *Widget) emit(t EventType, pointerID int) {
	if w.store == nil {
		return
	}
	w.store.EmitEvent(Event{
		Type:      t,
		Percent:   w.percent,
		Slide:     w.switcher.active,
		PointerID: pointerID,
	})
}
