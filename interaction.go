package reveal

// dragState tracks the pointer that owns the divider during a
// press-move-release sequence.
type dragState struct {
	active    bool
	pointerID int
}

// Interaction turns pointer input into reveal positions. Every entry point
// that moves the divider first disables autoplay, so the sweep and the user
// never write the reveal percentage at the same time.
type Interaction struct {
	w    *Widget
	drag dragState
}

// Dragging reports whether a drag session is active.
func (in *Interaction) Dragging() bool { return in.drag.active }

// PointerID returns the pointer owning the active drag, or -1.
func (in *Interaction) PointerID() int {
	if !in.drag.active {
		return -1
	}
	return in.drag.pointerID
}

// PressStart begins a drag session at pointerX.
func (in *Interaction) PressStart(pointerID int, pointerX float64) {
	w := in.w
	w.autoplay.Pause(true)
	in.drag = dragState{active: true, pointerID: pointerID}
	if c := w.el.Capturer; c != nil {
		if err := c.CapturePointer(pointerID); err != nil {
			w.logger.Debug("pointer capture failed", "pointer", pointerID, "error", err)
		}
	}
	w.apply(w.percentAt(pointerX))
	w.emit(EventPressStart, pointerID)
}

// PressMove follows the pointer while a drag session is active.
func (in *Interaction) PressMove(pointerX float64) {
	if !in.drag.active {
		return
	}
	w := in.w
	w.apply(w.percentAt(pointerX))
}

// PressEnd ends the drag session. Autoplay stays disabled.
func (in *Interaction) PressEnd() {
	if !in.drag.active {
		return
	}
	id := in.drag.pointerID
	in.drag = dragState{}
	w := in.w
	if c := w.el.Capturer; c != nil {
		if err := c.ReleasePointer(id); err != nil {
			w.logger.Debug("pointer release failed", "pointer", id, "error", err)
		}
	}
	w.emit(EventPressEnd, id)
}

// DirectTap moves the divider once to pointerX without starting a drag.
func (in *Interaction) DirectTap(pointerX float64) {
	w := in.w
	w.autoplay.Pause(true)
	w.apply(w.percentAt(pointerX))
	w.emit(EventTap, 0)
}
