package reveal

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // decoders for slide assets
	_ "image/png"
	"io/fs"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Theme holds the colors a View draws with.
type Theme struct {
	Background   Color
	Handle       Color
	Accent       Color // highlighted description runs and the active button
	Text         Color
	Button       Color
	ButtonActive Color
}

// DefaultTheme is a dark theme with a teal accent.
var DefaultTheme = Theme{
	Background:   Color{R: 0.07, G: 0.08, B: 0.10, A: 1},
	Handle:       Color{R: 1, G: 1, B: 1, A: 0.95},
	Accent:       Color{R: 0.18, G: 0.78, B: 0.72, A: 1},
	Text:         Color{R: 0.92, G: 0.93, B: 0.95, A: 1},
	Button:       Color{R: 0.18, G: 0.20, B: 0.24, A: 1},
	ButtonActive: Color{R: 0.18, G: 0.78, B: 0.72, A: 1},
}

// ViewOptions configures a View. Zero values select defaults.
type ViewOptions struct {
	Logger        *slog.Logger
	Theme         *Theme
	CaptionSize   float64 // caption font size (default 22)
	BodySize      float64 // description and button font size (default 15)
	FadeDuration  float32 // caption/description fade-in seconds (default 0.35)
	ShowDebug     bool    // draw the TPS/FPS and widget state overlay
	ScreenshotDir string  // directory for Screenshot output (default "screenshots")
}

const (
	viewMargin      = 24.0
	handleLineWidth = 3.0
	handleKnobSize  = 28.0
	handleGrabWidth = 32.0 // hit area around the divider line
	buttonHeight    = 34.0
	buttonGap       = 8.0
)

// InputHandler receives the interactions a View recognizes. *Widget
// implements it.
type InputHandler interface {
	PressStart(pointerID int, pointerX float64)
	PressMove(pointerX float64)
	PressEnd()
	DirectTap(pointerX float64)
	SelectSlide(index int)
}

// View is an Ebitengine rendering of a comparison widget: the after image
// across the container, the before image clipped to the divider, the handle,
// the caption, one navigation button per slide and the description panel.
// It also turns mouse and touch input into InputHandler calls.
type View struct {
	fsys   fs.FS
	logger *slog.Logger
	theme  Theme
	opts   ViewOptions

	screenW, screenH float64
	container        Rect
	captionArea      Rect
	descriptionArea  Rect

	cache       map[string]*ebiten.Image
	before      *imageLayer
	after       *imageLayer
	beforeLayer layoutSlot
	handle      layoutSlot
	caption     captionText
	description descriptionPanel
	buttons     []*navButton

	captionFace *text.GoTextFace
	bodyFace    *text.GoTextFace
	fades       []*Fade

	// Input state
	handler      InputHandler
	pointers     [maxPointers]pointerState
	captured     int // pointer routed to the handle, or -1
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	injectQueue  []syntheticPointerEvent

	testRunner      *TestRunner
	screenshotQueue []string
}

// NewView creates a view that resolves image references against fsys.
func NewView(fsys fs.FS, opts ViewOptions) (*View, error) {
	if fsys == nil {
		return nil, fmt.Errorf("reveal: view needs an asset filesystem")
	}
	if opts.CaptionSize <= 0 {
		opts.CaptionSize = 22
	}
	if opts.BodySize <= 0 {
		opts.BodySize = 15
	}
	if opts.FadeDuration <= 0 {
		opts.FadeDuration = 0.35
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = "screenshots"
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	theme := DefaultTheme
	if opts.Theme != nil {
		theme = *opts.Theme
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("reveal: failed to parse font: %w", err)
	}

	v := &View{
		fsys:        fsys,
		logger:      logger,
		theme:       theme,
		opts:        opts,
		cache:       make(map[string]*ebiten.Image),
		captured:    -1,
		captionFace: &text.GoTextFace{Source: source, Size: opts.CaptionSize},
		bodyFace:    &text.GoTextFace{Source: source, Size: opts.BodySize},
	}
	v.before = &imageLayer{view: v, name: "before"}
	v.after = &imageLayer{view: v, name: "after"}
	v.caption.alpha = 1
	v.description.alpha = 1
	return v, nil
}

// Elements returns the widget collaborators backed by this view, with one
// navigation button per catalog slide.
func (v *View) Elements(catalog *Catalog) Elements {
	v.buttons = v.buttons[:0]
	for i, rec := range catalog.Slides() {
		label := rec.Label()
		if label == "" {
			label = fmt.Sprintf("%d", i+1)
		}
		v.buttons = append(v.buttons, &navButton{index: i, label: label})
	}
	v.layoutButtons()

	inds := make([]Indicator, len(v.buttons))
	for i, b := range v.buttons {
		inds[i] = b
	}
	return Elements{
		Container:   v,
		BeforeLayer: &v.beforeLayer,
		Handle:      &v.handle,
		BeforeImage: v.before,
		AfterImage:  v.after,
		Caption:     &captionTextTarget{v},
		Description: &descriptionTarget{v},
		Indicators:  inds,
		Capturer:    v,
	}
}

// SetHandler sets the receiver of recognized interactions.
func (v *View) SetHandler(h InputHandler) {
	v.handler = h
}

// Bounds returns the comparison container in screen coordinates.
func (v *View) Bounds() Rect {
	return v.container
}

// SetScreenSize lays out the view for a screen of w×h pixels. It reports
// whether the container bounds changed.
func (v *View) SetScreenSize(w, h float64) bool {
	if w == v.screenW && h == v.screenH {
		return false
	}
	v.screenW, v.screenH = w, h
	old := v.container

	innerW := max(0, w-2*viewMargin)
	imgH := max(0, h*0.6-viewMargin)
	v.container = Rect{X: viewMargin, Y: viewMargin, Width: innerW, Height: imgH}
	y := v.container.Bottom() + 12
	v.captionArea = Rect{X: viewMargin, Y: y, Width: innerW, Height: v.opts.CaptionSize * 1.6}
	y = v.captionArea.Bottom() + 8
	v.layoutButtons()
	y += buttonHeight + 16
	v.descriptionArea = Rect{X: viewMargin, Y: y, Width: innerW, Height: max(0, h-y-viewMargin)}
	v.description.dirty = true

	return old != v.container
}

// layoutButtons spreads the navigation buttons evenly under the caption.
func (v *View) layoutButtons() {
	n := len(v.buttons)
	if n == 0 {
		return
	}
	y := v.captionArea.Bottom() + 8
	w := (v.captionArea.Width - buttonGap*float64(n-1)) / float64(n)
	for i, b := range v.buttons {
		b.rect = Rect{
			X:      v.captionArea.X + float64(i)*(w+buttonGap),
			Y:      y,
			Width:  max(0, w),
			Height: buttonHeight,
		}
	}
}

// Update resolves pending image loads, processes input and advances fades.
// Call once per frame before Widget.Update.
func (v *View) Update(dt time.Duration) {
	if v.testRunner != nil {
		v.testRunner.step(v)
	}
	v.before.resolve()
	v.after.resolve()
	v.processInput()

	sec := float32(dt.Seconds())
	live := v.fades[:0]
	for _, f := range v.fades {
		f.Update(sec)
		if !f.Done {
			live = append(live, f)
		}
	}
	for i := len(live); i < len(v.fades); i++ {
		v.fades[i] = nil
	}
	v.fades = live
}

// Draw renders the view onto screen.
func (v *View) Draw(screen *ebiten.Image) {
	screen.Fill(v.theme.Background.toRGBA())

	c := v.container
	if img := v.after.img; img != nil {
		drawFitted(screen, img, c)
	}
	bl := v.beforeLayer.layout
	if img := v.before.img; img != nil && bl.BeforeWidth >= 1 {
		clip := screen.SubImage(image.Rect(
			int(c.X), int(c.Y),
			int(c.X+bl.BeforeWidth+0.5), int(c.Bottom()),
		)).(*ebiten.Image)
		drawFitted(clip, img, Rect{X: c.X, Y: c.Y, Width: bl.ImageWidth, Height: c.Height})
	}

	hx := c.X + v.handle.layout.HandleX
	fillRect(screen, Rect{X: hx - handleLineWidth/2, Y: c.Y, Width: handleLineWidth, Height: c.Height}, v.theme.Handle)
	fillRect(screen, Rect{
		X: hx - handleKnobSize/2, Y: c.Y + c.Height/2 - handleKnobSize/2,
		Width: handleKnobSize, Height: handleKnobSize,
	}, v.theme.Handle)

	v.drawCaption(screen)
	v.drawButtons(screen)
	v.drawDescription(screen)

	if v.opts.ShowDebug {
		v.drawDebug(screen)
	}
	v.flushScreenshots(screen)
}

// handleRect is the grab area around the divider.
func (v *View) handleRect() Rect {
	c := v.container
	return Rect{
		X:      c.X + v.handle.layout.HandleX - handleGrabWidth/2,
		Y:      c.Y,
		Width:  handleGrabWidth,
		Height: c.Height,
	}
}

// CapturePointer routes pointerID's moves to the handle until released.
func (v *View) CapturePointer(pointerID int) error {
	if pointerID < 0 || pointerID >= maxPointers {
		return fmt.Errorf("capture pointer %d: out of range", pointerID)
	}
	v.captured = pointerID
	return nil
}

// ReleasePointer ends a capture started by CapturePointer.
func (v *View) ReleasePointer(pointerID int) error {
	if v.captured != pointerID {
		return fmt.Errorf("release pointer %d: not captured", pointerID)
	}
	v.captured = -1
	return nil
}

// --- Image layers ---

// imageLayer is an ImageSource backed by the view's asset cache. A new source
// is decoded on the next Update; cached sources are available immediately and
// fire no completion.
type imageLayer struct {
	view    *View
	name    string
	ref     string
	img     *ebiten.Image
	pending bool
	onLoad  func()
}

func (l *imageLayer) SetSource(ref string) {
	l.ref = ref
	if img, ok := l.view.cache[ref]; ok {
		l.img = img
		l.pending = false
		return
	}
	l.pending = true
}

func (l *imageLayer) Loaded() bool {
	return !l.pending && l.img != nil
}

func (l *imageLayer) OnLoad(fn func()) {
	l.onLoad = fn
}

// resolve decodes a pending source and fires the completion callback.
func (l *imageLayer) resolve() {
	if !l.pending {
		return
	}
	l.pending = false
	img, _, err := ebitenutil.NewImageFromFileSystem(l.view.fsys, l.ref)
	if err != nil {
		l.view.logger.Warn("image load failed", "layer", l.name, "ref", l.ref, "error", err)
		l.img = nil
		return
	}
	l.view.cache[l.ref] = img
	l.img = img
	if fn := l.onLoad; fn != nil {
		l.onLoad = nil
		fn()
	}
}

// --- Layout slots ---

// layoutSlot stores the most recent layout for the draw pass.
type layoutSlot struct {
	layout Layout
}

func (s *layoutSlot) ApplyLayout(l Layout) {
	s.layout = l
}

// --- Navigation buttons ---

type navButton struct {
	index  int
	label  string
	rect   Rect
	active bool
}

func (b *navButton) SlideIndex() int       { return b.index }
func (b *navButton) SetActive(active bool) { b.active = active }

// buttonAt returns the button containing (x, y), or nil.
func (v *View) buttonAt(x, y float64) *navButton {
	for _, b := range v.buttons {
		if b.rect.Contains(x, y) {
			return b
		}
	}
	return nil
}

func (v *View) drawButtons(screen *ebiten.Image) {
	for _, b := range v.buttons {
		bg := v.theme.Button
		if b.active {
			bg = v.theme.ButtonActive
		}
		fillRect(screen, b.rect, bg)

		op := &text.DrawOptions{}
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		op.GeoM.Translate(b.rect.X+b.rect.Width/2, b.rect.Y+b.rect.Height/2)
		op.ColorScale.ScaleWithColor(v.theme.Text.toRGBA())
		text.Draw(screen, b.label, v.bodyFace, op)
	}
}

// --- Drawing helpers ---

// drawFitted draws img scaled to fill r.
func drawFitted(dst, img *ebiten.Image, r Rect) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || r.Width <= 0 || r.Height <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Width/float64(b.Dx()), r.Height/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

// fillRect draws a solid rectangle using WhitePixel.
func fillRect(dst *ebiten.Image, r Rect, c Color) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleWithColor(c.toRGBA())
	dst.DrawImage(WhitePixel, op)
}
