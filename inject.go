package reveal

// syntheticPointerEvent is one queued pointer sample in screen coordinates,
// matching what a screenshot shows. Injected events always use the left
// button on pointer 0.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
	button           MouseButton
}

// inject appends one sample to the queue. processInput consumes one sample
// per frame and skips real mouse input for that frame.
func (v *View) inject(x, y float64, pressed bool) {
	v.injectQueue = append(v.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: pressed,
		button:  MouseButtonLeft,
	})
}

// InjectPress queues a press at screen (x, y).
func (v *View) InjectPress(x, y float64) { v.inject(x, y, true) }

// InjectMove queues a move with the button held. Use between InjectPress and
// InjectRelease.
func (v *View) InjectMove(x, y float64) { v.inject(x, y, true) }

// InjectRelease queues a release at screen (x, y).
func (v *View) InjectRelease(x, y float64) { v.inject(x, y, false) }

// InjectClick queues a press and a release at the same point (two frames).
func (v *View) InjectClick(x, y float64) {
	v.inject(x, y, true)
	v.inject(x, y, false)
}

// InjectDrag queues a press at (fromX, fromY), frames-2 evenly spaced moves
// and a release at (toX, toY). frames is raised to 2 when smaller.
func (v *View) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	frames = max(frames, 2)
	v.inject(fromX, fromY, true)
	for i := 1; i < frames-1; i++ {
		t := float64(i) / float64(frames-1)
		v.inject(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t, true)
	}
	v.inject(toX, toY, false)
}

// pointForPercent returns the screen point inside the comparison container
// that maps to percent, vertically centered.
func (v *View) pointForPercent(percent float64) (x, y float64) {
	c := v.container
	return c.X + c.Width*ClampPercent(percent)/100, c.Y + c.Height/2
}

// InjectTap queues a click on the container at the reveal percentage. A
// point on the handle becomes a zero-length drag; either way the divider
// ends at percent.
func (v *View) InjectTap(percent float64) {
	v.InjectClick(v.pointForPercent(percent))
}

// InjectHandleDrag queues a press on the handle at its current position,
// moves evenly spaced over moves frames ending at toPercent, and a release.
// A captured release does not move the divider, so the last move lands on
// the target. moves is raised to 1 when smaller.
func (v *View) InjectHandleDrag(toPercent float64, moves int) {
	moves = max(moves, 1)
	fromX, y := v.pointForPercent(v.handle.layout.Percent)
	toX, _ := v.pointForPercent(toPercent)
	v.inject(fromX, y, true)
	for i := 1; i <= moves; i++ {
		v.inject(fromX+(toX-fromX)*float64(i)/float64(moves), y, true)
	}
	v.inject(toX, y, false)
}

// InjectSelect queues a click on the navigation button for slide index. It
// reports false when no such button exists.
func (v *View) InjectSelect(index int) bool {
	if index < 0 || index >= len(v.buttons) {
		return false
	}
	r := v.buttons[index].rect
	v.InjectClick(r.X+r.Width/2, r.Y+r.Height/2)
	return true
}

// processInjectedInput feeds the oldest queued sample through processPointer
// as pointer 0. It reports whether a sample was consumed.
func (v *View) processInjectedInput() bool {
	if len(v.injectQueue) == 0 {
		return false
	}
	evt := v.injectQueue[0]
	v.injectQueue = append(v.injectQueue[:0], v.injectQueue[1:]...)
	v.processPointer(0, evt.screenX, evt.screenY, evt.pressed, evt.button)
	return true
}
