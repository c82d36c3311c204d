package reveal

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screen 1000x800 gives a container at (24, 24) sized 952x456, so the divider
// starts at x=500 and each 9.52 px is one percent.
const (
	testScreenW = 1000
	testScreenH = 800
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Set(1, 1, color.NRGBA{R: 200, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// testAssets holds an image for every testCatalog reference, minus skip.
func testAssets(t *testing.T, skip ...string) fstest.MapFS {
	t.Helper()
	data := pngBytes(t)
	fsys := fstest.MapFS{}
	for _, rec := range testCatalog(t).Slides() {
		fsys[rec.Before] = &fstest.MapFile{Data: data}
		fsys[rec.After] = &fstest.MapFile{Data: data}
	}
	for _, s := range skip {
		delete(fsys, s)
	}
	return fsys
}

func newTestView(t *testing.T, fsys fstest.MapFS) (*View, *Widget, *recordingStore) {
	t.Helper()
	v, err := NewView(fsys, ViewOptions{Logger: discardLogger(), ScreenshotDir: t.TempDir()})
	if err != nil {
		t.Fatalf("NewView: %v", err)
	}
	c := testCatalog(t)
	el := v.Elements(c)
	v.SetScreenSize(testScreenW, testScreenH)
	store := &recordingStore{}
	w := New(c, el, WithEventStore(store), WithLogger(discardLogger()))
	v.SetHandler(w)
	return v, w, store
}

// settle resolves pending image loads.
func settle(v *View) {
	v.before.resolve()
	v.after.resolve()
}

// drain feeds every queued injected event through the pointer state machine.
func drain(v *View) {
	for v.processInjectedInput() {
	}
}

func countEvents(events []EventType, want EventType) int {
	n := 0
	for _, e := range events {
		if e == want {
			n++
		}
	}
	return n
}

func TestNewViewRequiresFS(t *testing.T) {
	if _, err := NewView(nil, ViewOptions{}); err == nil {
		t.Error("expected error for nil filesystem")
	}
}

func TestNewViewDefaults(t *testing.T) {
	v, err := NewView(fstest.MapFS{}, ViewOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if v.opts.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", v.opts.ScreenshotDir, "screenshots")
	}
	if v.opts.FadeDuration != 0.35 {
		t.Errorf("FadeDuration = %v, want 0.35", v.opts.FadeDuration)
	}
	if v.theme != DefaultTheme {
		t.Error("expected DefaultTheme")
	}
	if v.captured != -1 {
		t.Errorf("captured = %d, want -1", v.captured)
	}
}

func TestViewLayout(t *testing.T) {
	v, _, _ := newTestView(t, testAssets(t))

	want := Rect{X: 24, Y: 24, Width: 952, Height: 456}
	if got := v.Bounds(); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
	if v.SetScreenSize(testScreenW, testScreenH) {
		t.Error("same size should report no change")
	}
	if !v.SetScreenSize(800, 600) {
		t.Error("new size should report a change")
	}
	if got := v.Bounds().Width; got != 752 {
		t.Errorf("Width after resize = %v, want 752", got)
	}
}

func TestViewElementsButtons(t *testing.T) {
	v, _, _ := newTestView(t, testAssets(t))

	wantLabels := []string{"Lungs", "Spine", "Abdomen", "Heart", "Lungs", "Brain"}
	if len(v.buttons) != len(wantLabels) {
		t.Fatalf("buttons = %d, want %d", len(v.buttons), len(wantLabels))
	}
	for i, b := range v.buttons {
		if b.label != wantLabels[i] {
			t.Errorf("button %d label = %q, want %q", i, b.label, wantLabels[i])
		}
		if b.rect.Width != 152 {
			t.Errorf("button %d width = %v, want 152", i, b.rect.Width)
		}
		if b.active != (i == 0) {
			t.Errorf("button %d active = %v", i, b.active)
		}
	}
}

func TestViewImageLoadResetsDivider(t *testing.T) {
	v, w, store := newTestView(t, testAssets(t))

	if v.before.Loaded() {
		t.Fatal("before image should be pending until resolved")
	}
	w.DirectTap(24 + 952*0.8)
	if !approxEqual(w.Percent(), 80) {
		t.Fatalf("Percent() = %v, want 80", w.Percent())
	}

	settle(v)

	if !v.before.Loaded() || !v.after.Loaded() {
		t.Fatal("images should be loaded after resolve")
	}
	if w.Percent() != 50 {
		t.Errorf("Percent() = %v, want 50 after load", w.Percent())
	}
	if countEvents(store.types(), EventSlideReady) != 1 {
		t.Errorf("events = %v, want one slide_ready", store.types())
	}
	if len(v.cache) != 2 {
		t.Errorf("cache size = %d, want 2", len(v.cache))
	}
}

func TestViewImageLoadFailure(t *testing.T) {
	v, w, store := newTestView(t, testAssets(t, "before/lungs.jpg"))

	w.DirectTap(24 + 952*0.25)
	settle(v)

	if v.before.Loaded() {
		t.Error("missing image should not report loaded")
	}
	if !v.after.Loaded() {
		t.Error("after image should still load")
	}
	if countEvents(store.types(), EventSlideReady) != 0 {
		t.Error("failed load should not reset the divider")
	}
	if !approxEqual(w.Percent(), 25) {
		t.Errorf("Percent() = %v, want 25", w.Percent())
	}
}

func TestViewImageLoadFailureClearsPreviousSlide(t *testing.T) {
	v, w, store := newTestView(t, testAssets(t, "before/spine.png"))
	settle(v)
	if v.before.img == nil {
		t.Fatal("slide 0 before image should be loaded")
	}

	w.SelectSlide(1)
	settle(v)

	if v.before.img != nil {
		t.Error("failed load should leave the before layer empty, not show slide 0")
	}
	if v.before.Loaded() {
		t.Error("failed load should not report loaded")
	}
	if !v.after.Loaded() || v.after.ref != "after/spine.png" {
		t.Errorf("after layer = %q loaded=%v, want after/spine.png loaded", v.after.ref, v.after.Loaded())
	}
	if n := countEvents(store.types(), EventSlideReady); n != 1 {
		t.Errorf("slide_ready count = %d, want 1 (slide 0 only)", n)
	}
}

func TestViewCachedSourceResetsImmediately(t *testing.T) {
	v, w, store := newTestView(t, testAssets(t))
	settle(v)

	w.SelectSlide(1)
	settle(v)
	w.DirectTap(24 + 952*0.9)

	w.SelectSlide(0)
	if !v.before.Loaded() {
		t.Fatal("cached image should be loaded immediately")
	}
	if w.Percent() != 50 {
		t.Errorf("Percent() = %v, want 50", w.Percent())
	}
	if n := countEvents(store.types(), EventSlideReady); n != 3 {
		t.Errorf("slide_ready count = %d, want 3", n)
	}
}

func TestViewDragHandle(t *testing.T) {
	v, w, store := newTestView(t, testAssets(t))
	settle(v)

	v.InjectDrag(500, 200, 262, 200, 3)

	v.processInjectedInput()
	if !w.Dragging() {
		t.Fatal("press on the handle should start a drag")
	}
	if v.captured != 0 {
		t.Errorf("captured = %d, want 0", v.captured)
	}
	if w.Autoplay().State() != AutoplayDisabled {
		t.Errorf("autoplay = %v, want disabled", w.Autoplay().State())
	}

	v.processInjectedInput()
	if w.Percent() != 37.5 {
		t.Errorf("Percent() = %v, want 37.5", w.Percent())
	}

	v.processInjectedInput()
	if w.Dragging() {
		t.Error("release should end the drag")
	}
	if v.captured != -1 {
		t.Errorf("captured = %d, want -1 after release", v.captured)
	}
	got := store.types()
	if !containsEvent(got, EventPressStart) || !containsEvent(got, EventPressEnd) {
		t.Errorf("events = %v, want press_start and press_end", got)
	}
	if containsEvent(got, EventTap) {
		t.Error("a drag must not also fire a tap")
	}
}

func TestViewDragClampsOutsideContainer(t *testing.T) {
	v, w, _ := newTestView(t, testAssets(t))
	settle(v)

	v.InjectPress(500, 200)
	v.InjectMove(-300, 200)
	drain(v)
	if w.Percent() != 0 {
		t.Errorf("Percent() = %v, want 0", w.Percent())
	}
	v.InjectMove(5000, 900)
	drain(v)
	if w.Percent() != 100 {
		t.Errorf("Percent() = %v, want 100", w.Percent())
	}
	v.InjectRelease(5000, 900)
	drain(v)
	if w.Dragging() {
		t.Error("release outside the container should still end the drag")
	}
}

func TestViewTapContainer(t *testing.T) {
	v, w, store := newTestView(t, testAssets(t))
	settle(v)

	v.InjectClick(24+952*0.8, 200)
	v.processInjectedInput()
	if containsEvent(store.types(), EventTap) {
		t.Fatal("tap should not fire on the press frame")
	}
	v.processInjectedInput()

	if !approxEqual(w.Percent(), 80) {
		t.Errorf("Percent() = %v, want 80", w.Percent())
	}
	if !containsEvent(store.types(), EventTap) {
		t.Errorf("events = %v, want tap", store.types())
	}
	if w.Autoplay().State() != AutoplayDisabled {
		t.Errorf("autoplay = %v, want disabled", w.Autoplay().State())
	}
	if w.Dragging() {
		t.Error("a tap must not start a drag")
	}
}

func TestViewPressReleaseOnDifferentTargets(t *testing.T) {
	v, w, store := newTestView(t, testAssets(t))
	settle(v)

	b := v.buttons[2].rect
	v.InjectPress(24+952*0.8, 200)
	v.InjectRelease(b.X+1, b.Y+1)
	drain(v)

	if w.Percent() != 50 {
		t.Errorf("Percent() = %v, want 50", w.Percent())
	}
	if w.ActiveSlide() != 0 {
		t.Errorf("ActiveSlide() = %d, want 0", w.ActiveSlide())
	}
	if containsEvent(store.types(), EventTap) {
		t.Error("no tap expected")
	}
}

func TestViewSelectButton(t *testing.T) {
	v, w, _ := newTestView(t, testAssets(t))
	settle(v)

	b := v.buttons[3].rect
	v.InjectClick(b.X+b.Width/2, b.Y+b.Height/2)
	drain(v)

	if w.ActiveSlide() != 3 {
		t.Fatalf("ActiveSlide() = %d, want 3", w.ActiveSlide())
	}
	for i, btn := range v.buttons {
		if btn.active != (i == 3) {
			t.Errorf("button %d active = %v", i, btn.active)
		}
	}
	if v.caption.content != "Heart: Cardiac CT Enhancement" {
		t.Errorf("caption = %q", v.caption.content)
	}
	if !strings.Contains(v.description.desc.PlainText(), "Heart imaging") {
		t.Errorf("description = %q", v.description.desc.PlainText())
	}
	if v.before.ref != "before/heart.jpg" || v.after.ref != "after/heart.jpg" {
		t.Errorf("sources = %q, %q", v.before.ref, v.after.ref)
	}
	if w.Autoplay().State() != AutoplayDisabled {
		t.Errorf("autoplay = %v, want disabled", w.Autoplay().State())
	}
}

func TestViewSparseDescriptionKeepsPrevious(t *testing.T) {
	v, w, _ := newTestView(t, testAssets(t))
	settle(v)

	w.SelectSlide(1)
	if !strings.Contains(v.description.desc.PlainText(), "Lung scans") {
		t.Errorf("description = %q, want slide 0 text kept", v.description.desc.PlainText())
	}
}

func TestViewRightButtonIgnored(t *testing.T) {
	v, w, _ := newTestView(t, testAssets(t))
	settle(v)

	v.processPointer(0, 500, 200, true, MouseButtonRight)
	if w.Dragging() {
		t.Error("right button should not start a drag")
	}
	v.processPointer(0, 500, 200, false, MouseButtonRight)
	if w.Autoplay().State() != AutoplayRunning {
		t.Errorf("autoplay = %v, want running", w.Autoplay().State())
	}
}

func TestViewTouchDragSinglePointerOwnsHandle(t *testing.T) {
	v, w, _ := newTestView(t, testAssets(t))
	settle(v)

	v.processPointer(3, 500, 200, true, MouseButtonLeft)
	if !w.Dragging() || v.captured != 3 {
		t.Fatalf("dragging = %v, captured = %d, want true, 3", w.Dragging(), v.captured)
	}

	// A second finger on the handle does not steal the drag.
	v.processPointer(4, 500, 210, true, MouseButtonLeft)
	v.processPointer(4, 700, 210, true, MouseButtonLeft)
	if w.Percent() != 50 {
		t.Errorf("Percent() = %v, want 50", w.Percent())
	}
	v.processPointer(4, 700, 210, false, MouseButtonLeft)
	if !w.Dragging() {
		t.Fatal("second finger release should not end the drag")
	}

	v.processPointer(3, 381, 200, true, MouseButtonLeft)
	if w.Percent() != 37.5 {
		t.Errorf("Percent() = %v, want 37.5", w.Percent())
	}
	v.processPointer(3, 381, 200, false, MouseButtonLeft)
	if w.Dragging() || v.captured != -1 {
		t.Errorf("dragging = %v, captured = %d after release", w.Dragging(), v.captured)
	}
}

func TestViewResizeKeepsPercent(t *testing.T) {
	v, w, _ := newTestView(t, testAssets(t))
	settle(v)
	w.DirectTap(24 + 952*0.25)

	if v.SetScreenSize(500, 400) {
		w.Resize()
	}
	if !approxEqual(w.Percent(), 25) {
		t.Errorf("Percent() = %v, want 25", w.Percent())
	}
	if got, want := v.handle.layout.HandleX, 452*0.25; !approxEqual(got, want) {
		t.Errorf("HandleX = %v, want %v", got, want)
	}
	if got := v.beforeLayer.layout.ImageWidth; got != 452 {
		t.Errorf("ImageWidth = %v, want 452", got)
	}
}

func TestViewNoHandler(t *testing.T) {
	v, err := NewView(testAssets(t), ViewOptions{Logger: discardLogger()})
	if err != nil {
		t.Fatal(err)
	}
	v.Elements(testCatalog(t))
	v.SetScreenSize(testScreenW, testScreenH)

	v.InjectClick(500, 200)
	drain(v)
	if v.captured != -1 {
		t.Errorf("captured = %d, want -1", v.captured)
	}
}

func TestCapturePointer(t *testing.T) {
	v, err := NewView(fstest.MapFS{}, ViewOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if err := v.CapturePointer(-1); err == nil {
		t.Error("expected error for negative pointer")
	}
	if err := v.CapturePointer(maxPointers); err == nil {
		t.Error("expected error for out-of-range pointer")
	}
	if err := v.CapturePointer(2); err != nil {
		t.Fatalf("CapturePointer(2): %v", err)
	}
	if err := v.ReleasePointer(1); err == nil {
		t.Error("expected error releasing an uncaptured pointer")
	}
	if err := v.ReleasePointer(2); err != nil {
		t.Errorf("ReleasePointer(2): %v", err)
	}
	if v.captured != -1 {
		t.Errorf("captured = %d, want -1", v.captured)
	}
}

func TestTouchSlot(t *testing.T) {
	v, err := NewView(fstest.MapFS{}, ViewOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if got := v.touchSlot(7); got != 1 {
		t.Errorf("touchSlot(7) = %d, want 1", got)
	}
	if got := v.touchSlot(7); got != 1 {
		t.Errorf("touchSlot(7) again = %d, want 1", got)
	}
	if got := v.touchSlot(8); got != 2 {
		t.Errorf("touchSlot(8) = %d, want 2", got)
	}
	for id := 9; id < 16; id++ {
		v.touchSlot(ebiten.TouchID(id))
	}
	if got := v.touchSlot(99); got != -1 {
		t.Errorf("touchSlot when full = %d, want -1", got)
	}
}

func TestCaptionFadesIn(t *testing.T) {
	v, _, _ := newTestView(t, testAssets(t))

	if v.caption.alpha != 0 {
		t.Fatalf("caption alpha = %v, want 0 after a new caption", v.caption.alpha)
	}
	if len(v.fades) != 2 {
		t.Fatalf("fades = %d, want 2 (caption and description)", len(v.fades))
	}
	for _, f := range v.fades {
		f.Update(1)
	}
	if v.caption.alpha != 1 || v.description.alpha != 1 {
		t.Errorf("alpha = %v, %v, want 1, 1", v.caption.alpha, v.description.alpha)
	}
}
