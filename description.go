package reveal

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

// HighlightClass marks a span whose text is drawn in the accent color.
const HighlightClass = "highlight-word"

// TextRun is a span of description text sharing one style.
type TextRun struct {
	Text      string
	Highlight bool
}

// Description is a sanitized HTML fragment and the styled runs parsed from it.
type Description struct {
	HTML string
	Runs []TextRun
}

// PlainText returns the description with styling removed.
func (d Description) PlainText() string {
	var b strings.Builder
	for _, r := range d.Runs {
		b.WriteString(r.Text)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// descriptionPolicy keeps inline emphasis and class-tagged spans only.
var descriptionPolicy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("span", "b", "strong", "em", "i", "br")
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^[a-zA-Z0-9_\- ]+$`)).OnElements("span")
	return p
}()

// ParseDescription sanitizes an HTML fragment and splits it into text runs.
// Spans carrying HighlightClass, and b/strong elements, produce highlighted
// runs. Adjacent runs with the same style are merged.
func ParseDescription(fragment string) (Description, error) {
	clean := descriptionPolicy.Sanitize(fragment)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<div>" + clean + "</div>"))
	if err != nil {
		return Description{}, fmt.Errorf("parse description: %w", err)
	}
	runs := collectRuns(doc.Find("body > div").First(), false, nil)
	return Description{HTML: clean, Runs: runs}, nil
}

func collectRuns(sel *goquery.Selection, highlight bool, runs []TextRun) []TextRun {
	sel.Contents().Each(func(_ int, s *goquery.Selection) {
		switch name := goquery.NodeName(s); name {
		case "#text":
			runs = appendRun(runs, s.Text(), highlight)
		case "br":
			runs = appendRun(runs, "\n", highlight)
		case "b", "strong":
			runs = collectRuns(s, true, runs)
		default:
			runs = collectRuns(s, highlight || s.HasClass(HighlightClass), runs)
		}
	})
	return runs
}

func appendRun(runs []TextRun, text string, highlight bool) []TextRun {
	if text == "" {
		return runs
	}
	if n := len(runs); n > 0 && runs[n-1].Highlight == highlight {
		runs[n-1].Text += text
		return runs
	}
	return append(runs, TextRun{Text: text, Highlight: highlight})
}
