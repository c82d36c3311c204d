package reveal

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// captionText holds the caption string and its fade alpha.
type captionText struct {
	content string
	alpha   float64
}

// captionTextTarget adapts the view's caption to TextTarget.
type captionTextTarget struct{ v *View }

func (t *captionTextTarget) SetText(s string) {
	c := &t.v.caption
	if c.content == s {
		return
	}
	c.content = s
	t.v.fadeIn(&c.alpha)
}

// descriptionPanel holds the active description and its cached line layout.
type descriptionPanel struct {
	desc  Description
	alpha float64
	words []placedWord
	dirty bool
}

// descriptionTarget adapts the view's description panel to DescriptionTarget.
type descriptionTarget struct{ v *View }

func (t *descriptionTarget) SetDescription(d Description) {
	p := &t.v.description
	p.desc = d
	p.dirty = true
	t.v.fadeIn(&p.alpha)
}

// placedWord is one word of a wrapped description, relative to the panel.
type placedWord struct {
	text      string
	x, y      float64
	highlight bool
}

// layoutRuns word-wraps runs into lines no wider than wrapWidth. measure
// returns the advance of a string; lineHeight is the distance between
// baselines. A word wider than wrapWidth gets a line of its own.
func layoutRuns(runs []TextRun, wrapWidth, lineHeight float64, measure func(string) float64) []placedWord {
	var out []placedWord
	space := measure(" ")
	var x, y float64
	for _, run := range runs {
		lines := strings.Split(run.Text, "\n")
		for li, line := range lines {
			if li > 0 {
				x = 0
				y += lineHeight
			}
			for _, word := range strings.Fields(line) {
				w := measure(word)
				if x > 0 && wrapWidth > 0 && x+space+w > wrapWidth {
					x = 0
					y += lineHeight
				}
				if x > 0 {
					x += space
				}
				out = append(out, placedWord{text: word, x: x, y: y, highlight: run.Highlight})
				x += w
			}
		}
	}
	return out
}

func (v *View) drawCaption(screen *ebiten.Image) {
	c := v.caption
	if c.content == "" || c.alpha <= 0 {
		return
	}
	a := v.captionArea
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(a.X+a.Width/2, a.Y+a.Height/2)
	op.ColorScale.ScaleWithColor(v.theme.Text.toRGBA())
	op.ColorScale.ScaleAlpha(float32(c.alpha))
	text.Draw(screen, c.content, v.captionFace, op)
}

func (v *View) drawDescription(screen *ebiten.Image) {
	p := &v.description
	if len(p.desc.Runs) == 0 || p.alpha <= 0 {
		return
	}
	lineHeight := v.opts.BodySize * 1.5
	if p.dirty {
		p.words = layoutRuns(p.desc.Runs, v.descriptionArea.Width, lineHeight, func(s string) float64 {
			return text.Advance(s, v.bodyFace)
		})
		p.dirty = false
	}
	area := v.descriptionArea
	for _, w := range p.words {
		if w.y+lineHeight > area.Height {
			break
		}
		col := v.theme.Text
		if w.highlight {
			col = v.theme.Accent
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(area.X+w.x, area.Y+w.y)
		op.ColorScale.ScaleWithColor(col.toRGBA())
		op.ColorScale.ScaleAlpha(float32(p.alpha))
		text.Draw(screen, w.text, v.bodyFace, op)
	}
}
