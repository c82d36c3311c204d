package reveal

// Switcher loads catalog slides into the widget's elements. It is the only
// writer of the active slide index.
type Switcher struct {
	w          *Widget
	active     int
	generation uint64 // bumped per load; stale ready callbacks compare against it
}

// Active returns the active slide index, or -1 before the first load.
func (s *Switcher) Active() int { return s.active }

// load shows slide index. Out-of-range indices are ignored.
func (s *Switcher) load(index int) {
	w := s.w
	rec, ok := w.catalog.Slide(index)
	if !ok {
		w.logger.Debug("slide index out of range", "index", index, "slides", w.catalog.Len())
		return
	}
	s.active = index
	s.generation++
	gen := s.generation

	el := w.el
	if el.BeforeImage != nil {
		el.BeforeImage.SetSource(rec.Before)
	}
	if el.AfterImage != nil {
		el.AfterImage.SetSource(rec.After)
	}
	if el.Caption != nil {
		el.Caption.SetText(rec.Caption)
	}

	ready := func() {
		if gen != s.generation {
			return
		}
		w.apply(midpointPercent)
		w.emit(EventSlideReady, 0)
	}
	switch img := el.BeforeImage; {
	case img == nil:
		ready()
	case img.Loaded():
		img.OnLoad(nil)
		ready()
	default:
		img.OnLoad(ready)
	}

	for _, ind := range el.Indicators {
		if ind != nil {
			ind.SetActive(ind.SlideIndex() == index)
		}
	}

	if el.Description != nil {
		if d, ok := w.catalog.Description(index); ok {
			el.Description.SetDescription(d)
		}
	}
	w.emit(EventSlideSelected, 0)
}
