package reveal

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fade animates a single float64 field, typically an alpha value. Call
// Update(dt) each frame until Done.
type Fade struct {
	tween *gween.Tween
	field *float64
	Done  bool
}

// NewFade creates a fade that writes values from `from` to `to` into field
// over duration seconds. The field is set to `from` immediately.
func NewFade(field *float64, from, to float64, duration float32, fn ease.TweenFunc) *Fade {
	if fn == nil {
		fn = ease.OutQuad
	}
	*field = from
	return &Fade{
		tween: gween.New(float32(from), float32(to), duration, fn),
		field: field,
	}
}

// Update advances the fade by dt seconds and writes the value to the field.
func (f *Fade) Update(dt float32) {
	if f.Done {
		return
	}
	val, finished := f.tween.Update(dt)
	*f.field = float64(val)
	f.Done = finished
}

// fadeIn starts a fade of field from 0 to 1, replacing any running fade on
// the same field.
func (v *View) fadeIn(field *float64) {
	for i, f := range v.fades {
		if f.field == field {
			v.fades[i] = NewFade(field, 0, 1, v.opts.FadeDuration, ease.OutQuad)
			return
		}
	}
	v.fades = append(v.fades, NewFade(field, 0, 1, v.opts.FadeDuration, ease.OutQuad))
}
