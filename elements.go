package reveal

// Container reports the on-screen bounds of the comparison area. Bounds may
// change between calls (window resize).
type Container interface {
	Bounds() Rect
}

// LayoutTarget receives the layout computed for a reveal percentage. The
// before layer uses BeforeWidth and ImageWidth; the handle uses HandleX.
type LayoutTarget interface {
	ApplyLayout(Layout)
}

// ImageSource is an image element whose source can be swapped. OnLoad
// registers a one-shot callback for the next load completion, replacing any
// previous one. Loaded reports whether the current source is already
// available, in which case no completion will fire for it.
type ImageSource interface {
	SetSource(ref string)
	Loaded() bool
	OnLoad(fn func())
}

// TextTarget displays a plain text string (the caption).
type TextTarget interface {
	SetText(text string)
}

// DescriptionTarget displays a slide's rich description.
type DescriptionTarget interface {
	SetDescription(d Description)
}

// Indicator is a navigation control tagged with the slide it selects.
type Indicator interface {
	SlideIndex() int
	SetActive(active bool)
}

// PointerCapturer routes a pointer exclusively to the handle for the duration
// of a drag. Failures are tolerated.
type PointerCapturer interface {
	CapturePointer(pointerID int) error
	ReleasePointer(pointerID int) error
}

// Elements is the set of rendering collaborators a Widget drives. Any field
// may be nil; operations that need a missing element become no-ops.
type Elements struct {
	Container   Container
	BeforeLayer LayoutTarget
	Handle      LayoutTarget
	BeforeImage ImageSource
	AfterImage  ImageSource
	Caption     TextTarget
	Description DescriptionTarget
	Indicators  []Indicator
	Capturer    PointerCapturer
}

// Event is a widget notification delivered to an EventStore.
type Event struct {
	Type      EventType
	Percent   float64 // reveal percentage after the event
	Slide     int     // active slide index (-1 before the first load)
	PointerID int     // pointer for press events, otherwise 0
}

// EventStore is the interface for optional event forwarding (for example
// into an ECS world, see the ecs submodule).
type EventStore interface {
	EmitEvent(event Event)
}
