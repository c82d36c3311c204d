package reveal

import (
	"fmt"
	"strings"
)

// SlideRecord is one before/after image pair with its caption.
type SlideRecord struct {
	Before  string // asset reference of the before image
	After   string // asset reference of the after image
	Caption string
}

// Catalog is the fixed, ordered set of slides a widget can show, plus a
// sparse mapping of slide index to description. Indices are stable for the
// catalog's lifetime. A Catalog is never mutated after construction.
type Catalog struct {
	slides       []SlideRecord
	descriptions map[int]Description
}

// NewCatalog copies slides and descriptions into an immutable catalog.
// Description values are HTML fragments; they are sanitized and parsed into
// text runs once here. Entries whose key is not a valid slide index are
// rejected, as are slides missing either image reference.
func NewCatalog(slides []SlideRecord, descriptions map[int]string) (*Catalog, error) {
	c := &Catalog{
		slides:       make([]SlideRecord, len(slides)),
		descriptions: make(map[int]Description, len(descriptions)),
	}
	for i, s := range slides {
		if strings.TrimSpace(s.Before) == "" || strings.TrimSpace(s.After) == "" {
			return nil, fmt.Errorf("slide %d: before and after images are required", i)
		}
		c.slides[i] = s
	}
	for idx, fragment := range descriptions {
		if idx < 0 || idx >= len(slides) {
			return nil, fmt.Errorf("description %d: no such slide (catalog has %d)", idx, len(slides))
		}
		d, err := ParseDescription(fragment)
		if err != nil {
			return nil, fmt.Errorf("description %d: %w", idx, err)
		}
		c.descriptions[idx] = d
	}
	return c, nil
}

// Len returns the number of slides.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.slides)
}

// Valid reports whether index addresses a slide.
func (c *Catalog) Valid(index int) bool {
	return index >= 0 && index < c.Len()
}

// Slide returns the slide at index. ok is false when index is out of range.
func (c *Catalog) Slide(index int) (rec SlideRecord, ok bool) {
	if !c.Valid(index) {
		return SlideRecord{}, false
	}
	return c.slides[index], true
}

// Description returns the description for index, if the slide has one.
func (c *Catalog) Description(index int) (Description, bool) {
	if c == nil {
		return Description{}, false
	}
	d, ok := c.descriptions[index]
	return d, ok
}

// Slides returns a copy of the slide list.
func (c *Catalog) Slides() []SlideRecord {
	if c == nil {
		return nil
	}
	out := make([]SlideRecord, len(c.slides))
	copy(out, c.slides)
	return out
}

// Label returns the short name of a slide: the caption text before the first
// colon, or the whole caption when there is none.
func (r SlideRecord) Label() string {
	head, _, _ := strings.Cut(r.Caption, ":")
	return strings.TrimSpace(head)
}
