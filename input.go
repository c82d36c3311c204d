package reveal

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// hitKind identifies what a pointer landed on.
type hitKind uint8

const (
	hitNone hitKind = iota
	hitHandle
	hitContainer
	hitButton
)

// hitTarget is the result of a hit test against the view layout.
type hitTarget struct {
	kind   hitKind
	button int // slide index when kind == hitButton
}

// --- Per-pointer state ---

type pointerState struct {
	down   bool
	startX float64
	startY float64
	lastX  float64
	lastY  float64
	hit    hitTarget
	button MouseButton // button captured at press time
}

// hitTest returns the topmost target at (x, y). The handle's grab area wins
// over the container it overlaps.
func (v *View) hitTest(x, y float64) hitTarget {
	if b := v.buttonAt(x, y); b != nil {
		return hitTarget{kind: hitButton, button: b.index}
	}
	if v.container.Width > 0 && v.handleRect().Contains(x, y) {
		return hitTarget{kind: hitHandle}
	}
	if v.container.Contains(x, y) {
		return hitTarget{kind: hitContainer}
	}
	return hitTarget{}
}

// processInput reads mouse and touch state and feeds each pointer through
// processPointer. An injected event, when queued, replaces real mouse input
// for the frame.
func (v *View) processInput() {
	if v.processInjectedInput() {
		return
	}
	v.processMousePointer()
	v.processTouchPointers()
}

// processMousePointer handles mouse input (pointer 0).
func (v *View) processMousePointer() {
	mx, my := ebiten.CursorPosition()

	// Keep the button captured at press time so it cannot change
	// mid-interaction.
	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	if left || right || middle {
		pressed = true
		switch {
		case left:
			button = MouseButtonLeft
		case right:
			button = MouseButtonRight
		default:
			button = MouseButtonMiddle
		}
	}
	if ps := &v.pointers[0]; ps.down {
		button = ps.button
	}
	v.processPointer(0, float64(mx), float64(my), pressed, button)
}

// processTouchPointers handles touch input (pointers 1-9).
func (v *View) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(v.prevTouchIDs[:0])
	v.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := v.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		v.processPointer(slot, float64(tx), float64(ty), true, MouseButtonLeft)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if v.touchUsed[i] && !activeSlots[i] {
			ps := &v.pointers[i]
			if ps.down {
				v.processPointer(i, ps.lastX, ps.lastY, false, MouseButtonLeft)
			}
			v.touchUsed[i] = false
			v.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (v *View) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if v.touchUsed[i] && v.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !v.touchUsed[i] {
			v.touchUsed[i] = true
			v.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the pointer state machine for a single pointer.
// Only the left button (and touch) interacts with the widget.
func (v *View) processPointer(pointerID int, x, y float64, pressed bool, button MouseButton) {
	ps := &v.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		*ps = pointerState{
			down:   true,
			startX: x, startY: y,
			lastX: x, lastY: y,
			button: button,
		}
		if button != MouseButtonLeft {
			return
		}
		ps.hit = v.hitTest(x, y)
		if ps.hit.kind == hitHandle && v.captured < 0 && v.handler != nil {
			v.handler.PressStart(pointerID, x)
		}

	case !pressed && ps.down:
		ps.down = false
		ps.lastX, ps.lastY = x, y
		if ps.button != MouseButtonLeft {
			return
		}
		if v.captured == pointerID {
			if v.handler != nil {
				v.handler.PressEnd()
			} else {
				v.captured = -1
			}
			return
		}
		v.fireClick(ps.hit, v.hitTest(x, y), x)

	case pressed && ps.down:
		if x == ps.lastX && y == ps.lastY {
			return
		}
		ps.lastX, ps.lastY = x, y
		if v.captured == pointerID && v.handler != nil {
			v.handler.PressMove(x)
		}
	}
}

// fireClick dispatches a press and release that landed on the same target.
func (v *View) fireClick(pressed, released hitTarget, x float64) {
	if v.handler == nil || pressed != released {
		return
	}
	switch pressed.kind {
	case hitContainer:
		v.handler.DirectTap(x)
	case hitButton:
		v.handler.SelectSlide(pressed.button)
	}
}
