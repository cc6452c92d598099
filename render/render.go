// seehuhn.de/go/cv - lay out résumés and export them as paginated PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package render lays out one virtual page of a résumé.
//
// [RenderPage] turns a page descriptor, produced by the paginator, into a
// [visual.Tree].  Rendering is a pure function of its arguments: the record
// and the decoded photo are only read, and the same input always gives the
// same tree.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"seehuhn.de/go/cv"
	"seehuhn.de/go/cv/boxes"
	"seehuhn.de/go/cv/font/gofont"
	"seehuhn.de/go/cv/layout"
	"seehuhn.de/go/cv/theme"
	"seehuhn.de/go/cv/visual"
)

// Mode selects the page layout.
type Mode int

// These are the supported page layouts.
const (
	// Desktop uses two columns on a 950×1200 canvas.
	Desktop Mode = iota

	// Narrow stacks all blocks in one column on a 480×1200 canvas.
	Narrow
)

// ErrUnknownMode is returned for layout modes which are not supported.
var ErrUnknownMode = errors.New("unknown layout mode")

func (m Mode) String() string {
	switch m {
	case Desktop:
		return "desktop"
	case Narrow:
		return "narrow"
	default:
		return fmt.Sprintf("render.Mode(%d)", int(m))
	}
}

// ParseMode converts a layout name, as returned by [Mode.String], back
// into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "desktop", "":
		return Desktop, nil
	case "narrow", "mobile":
		return Narrow, nil
	}
	return 0, fmt.Errorf("layout %q: %w", s, ErrUnknownMode)
}

// Size returns the canvas size of a page in virtual units.
func (m Mode) Size() (width, height float64) {
	switch m {
	case Narrow:
		return 480, 1200
	default:
		return 950, 1200
	}
}

// Options control the appearance of a rendered page.
type Options struct {
	Mode Mode

	// Locale selects the month names and section headings.
	// English is used for locales without dedicated support.
	Locale language.Tag

	// Photo is the decoded photo shown on the first page.  If this is nil,
	// a placeholder is shown instead.  The caller owns the image.
	Photo image.Image

	// PageCount is the total number of pages in the document.  If this is
	// set, page numbers are shown as "Page i / n".
	PageCount int
}

// metrics collects the sizes used in one layout mode.
type metrics struct {
	pad       float64 // page margin
	gutter    float64 // space between the columns
	photo     float64 // photo diameter
	border    float64 // width of the photo frame
	name      float64 // font sizes
	role      float64
	heading   float64
	body      float64
	small     float64
	icon      float64
	star      float64
	marker    float64 // diameter of the step markers
	section   float64 // vertical space between sections
	twoColumn bool
}

func (m Mode) metrics() (*metrics, error) {
	switch m {
	case Desktop:
		return &metrics{
			pad: 64, gutter: 32, photo: 258, border: 8,
			name: 20, role: 44, heading: 16, body: 14, small: 12,
			icon: 20, star: 20, marker: 32, section: 24,
			twoColumn: true,
		}, nil
	case Narrow:
		return &metrics{
			pad: 24, photo: 160, border: 5,
			name: 16, role: 28, heading: 14, body: 12, small: 11,
			icon: 16, star: 16, marker: 24, section: 18,
		}, nil
	default:
		return nil, fmt.Errorf("render: %w %d", ErrUnknownMode, int(m))
	}
}

// RenderPage lays out a single virtual page.
//
// The first page shows the personal details in full.  Later pages only
// repeat the name and desired role in a condensed header, followed by the
// entries assigned to the page.  If pal is nil, the default theme is used.
// Text which does not fit on the canvas is cut off at the page boundary.
func RenderPage(page *layout.Page, rec *cv.Record, pal *theme.Palette, opt *Options) (*visual.Tree, error) {
	if page == nil {
		return nil, errors.New("render: missing page descriptor")
	}
	if rec == nil {
		return nil, errors.New("render: missing record")
	}
	if opt == nil {
		opt = &Options{}
	}
	if pal == nil {
		var err error
		pal, err = theme.Lookup(theme.Default)
		if err != nil {
			return nil, err
		}
	}
	m, err := opt.Mode.metrics()
	if err != nil {
		return nil, err
	}

	w := wordsFor(opt.Locale)
	b := &builder{
		page:  page,
		rec:   rec,
		pal:   pal,
		opt:   opt,
		m:     m,
		w:     w,
		upper: cases.Upper(w.language),
		title: cases.Title(w.language),
		muted: fade(pal.BaseContent, 0xb3),
	}

	width, height := opt.Mode.Size()
	tree := &visual.Tree{
		Page:       page.Index,
		Width:      width,
		Height:     height,
		Background: pal.Base100,
		Root:       &visual.Group{Name: "page"},
	}
	if m.twoColumn {
		b.desktop(tree.Root, width)
	} else {
		b.narrow(tree.Root, width, height)
	}
	return tree, nil
}

type builder struct {
	page *layout.Page
	rec  *cv.Record
	pal  *theme.Palette
	opt  *Options
	m    *metrics
	w    *words

	upper, title cases.Caser
	muted        color.NRGBA
}

func (b *builder) desktop(root *visual.Group, width float64) {
	m := b.m
	inner := width - 2*m.pad
	leftWidth := inner / 3
	rightWidth := inner - leftWidth - m.gutter

	var left []boxes.Box
	if b.page.First {
		left = append(left, b.photo(leftWidth))
	}
	left = append(left, b.sidebar(leftWidth)...)
	root.Add(boxes.Ship("left", b.stack(m.section, left...), m.pad, m.pad))

	var right []boxes.Box
	if b.page.First {
		right = append(right, b.hero(rightWidth))
	} else {
		right = append(right, b.runningHeader(rightWidth, true))
	}
	right = append(right, b.entries(rightWidth))
	root.Add(boxes.Ship("right", b.stack(m.section, right...), m.pad+leftWidth+m.gutter, m.pad))
}

func (b *builder) narrow(root *visual.Group, width, height float64) {
	m := b.m
	inner := width - 2*m.pad

	var col []boxes.Box
	if b.page.First {
		col = append(col,
			boxes.HBoxTo(inner, boxes.Fill(), b.photo(m.photo), boxes.Fill()),
			b.hero(inner))
		col = append(col, b.sidebar(inner)...)
	} else {
		col = append(col, b.runningHeader(inner, false))
	}
	col = append(col, b.entries(inner))
	root.Add(boxes.Ship("column", b.stack(m.section, col...), m.pad, m.pad))

	label := boxes.Text(gofont.Regular, m.small, b.muted, b.pageLabel())
	footer := boxes.HBoxTo(inner, boxes.Fill(), label)
	root.Add(boxes.Ship("footer", footer, m.pad, height-m.pad))
}

// stack arranges the non-nil boxes in a column, separated by gap.
func (b *builder) stack(gap float64, items ...boxes.Box) boxes.Box {
	var col []boxes.Box
	for _, item := range items {
		if item == nil {
			continue
		}
		if len(col) > 0 {
			col = append(col, boxes.Kern(gap))
		}
		col = append(col, item)
	}
	if len(col) == 0 {
		return boxes.Kern(0)
	}
	p := &boxes.Parameters{}
	return p.VTop(col...)
}

// para returns a wrapped paragraph, or nil if text is blank.
func (b *builder) para(style *boxes.TextStyle, width float64, text string) boxes.Box {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return boxes.Paragraph(style, width, text)
}

func (b *builder) style(F gofont.Font, size float64, col color.NRGBA) *boxes.TextStyle {
	return &boxes.TextStyle{Font: F, Size: size, Color: col}
}

func (b *builder) heading(text string) boxes.Box {
	return boxes.Text(gofont.Bold, b.m.heading, b.pal.BaseContent, b.upper.String(text))
}

func (b *builder) pageLabel() string {
	label := b.w.page + " " + strconv.Itoa(b.page.Index+1)
	if b.opt.PageCount > 0 {
		label += " / " + strconv.Itoa(b.opt.PageCount)
	}
	return label
}

// photo returns the framed photo, or the placeholder if no photo is set.
func (b *builder) photo(d float64) boxes.Box {
	pal := b.pal
	src := b.opt.Photo
	border := b.m.border
	return boxes.Graphic(d, d, 0, func(g *visual.Group, x, y float64) {
		r := d / 2
		cx, cy := x+r, y-r
		g.Add(&visual.Circle{CX: cx, CY: cy, R: r, Fill: pal.Primary})
		ri := r - border
		if src != nil {
			g.Add(&visual.Image{
				X: cx - ri, Y: cy - ri, W: 2 * ri, H: 2 * ri,
				Src:  src,
				Clip: visual.ClipCircle,
			})
			return
		}
		g.Add(&visual.Circle{CX: cx, CY: cy, R: ri, Fill: pal.Base200})
		silhouette(g, cx, cy, ri, fade(pal.BaseContent, 0x66))
	})
}

// sidebar returns the contact, skills, languages and hobbies blocks.
func (b *builder) sidebar(width float64) []boxes.Box {
	m := b.m
	pal := b.pal
	body := b.style(gofont.Regular, m.body, pal.BaseContent)
	const headGap = 8

	var res []boxes.Box

	var contact []boxes.Box
	p := &b.rec.Personal
	for _, item := range []struct {
		ic    icon
		value string
	}{
		{phoneIcon, p.Phone},
		{mailIcon, p.Email},
		{pinIcon, p.Address},
	} {
		if strings.TrimSpace(item.value) == "" {
			continue
		}
		gap := m.icon / 2
		contact = append(contact, boxes.HBox(
			iconBox(item.ic, m.icon, pal.Primary, pal.Base100),
			boxes.Kern(gap),
			boxes.Paragraph(body, width-m.icon-gap, item.value),
		))
	}
	res = append(res, b.stack(headGap, b.heading(b.w.contact), b.stack(8, contact...)))

	if len(b.rec.Skills) > 0 {
		var tags []boxes.Box
		for _, s := range b.rec.Skills {
			padX := m.small * 0.75
			text := boxes.TextFit(gofont.Medium, m.small, pal.PrimaryContent, width-2*padX, b.upper.String(s.Name))
			tags = append(tags, boxes.Badge(text, padX, m.small*0.3, pal.Primary))
		}
		res = append(res, b.stack(headGap,
			b.heading(b.w.skills),
			boxes.Flow(width, 8, 8, tags...)))
	}

	if len(b.rec.Languages) > 0 {
		var langs []boxes.Box
		name := b.style(gofont.Bold, m.body, pal.BaseContent)
		for _, l := range b.rec.Languages {
			langs = append(langs, b.stack(8,
				b.para(name, width, b.title.String(l.Language)),
				starRow(Stars(l.Proficiency), m.star, m.star/5, pal.Primary, pal.Base300)))
		}
		res = append(res, b.stack(headGap, b.heading(b.w.langs), b.stack(8, langs...)))
	}

	if len(b.rec.Hobbies) > 0 {
		var hobbies []boxes.Box
		for _, h := range b.rec.Hobbies {
			hobbies = append(hobbies, b.para(body, width, b.title.String(h.Name)))
		}
		res = append(res, b.stack(headGap, b.heading(b.w.hobbies), b.stack(8, hobbies...)))
	}

	return res
}

// hero returns the full header of the first page.
func (b *builder) hero(width float64) boxes.Box {
	m := b.m
	pal := b.pal
	p := &b.rec.Personal
	return b.stack(16,
		b.para(b.style(gofont.Regular, m.name, pal.BaseContent), width, b.upper.String(p.FullName)),
		b.para(b.style(gofont.Bold, m.role, pal.Primary), width, b.upper.String(p.PostSeeking)),
		b.para(b.style(gofont.Regular, m.body, pal.BaseContent), width, p.Description),
	)
}

// runningHeader returns the condensed header used after the first page.
func (b *builder) runningHeader(width float64, withPage bool) boxes.Box {
	m := b.m
	pal := b.pal
	p := &b.rec.Personal

	nameWidth := width
	var label boxes.Box
	if withPage {
		label = boxes.Text(gofont.Regular, m.small, b.muted, b.pageLabel())
		nameWidth -= label.Extent().Width + 8
	}
	name := boxes.Paragraph(b.style(gofont.Bold, m.heading, pal.BaseContent), nameWidth, b.upper.String(p.FullName))
	top := []boxes.Box{name, boxes.Fill()}
	if label != nil {
		top = append(top, label)
	}
	return b.stack(6,
		boxes.HBoxTo(width, top...),
		b.para(b.style(gofont.Bold, m.body, pal.Primary), width, b.upper.String(p.PostSeeking)),
		boxes.Rule(width, 1, 0, pal.Base300),
	)
}

// entry is the common form of experiences and educations.
type entry struct {
	title, org, start, end, desc string
}

// entries returns the section listing the experiences or educations of
// the page, or nil if the page has neither.
func (b *builder) entries(width float64) boxes.Box {
	var heading string
	var ic icon
	var list []entry
	switch {
	case len(b.page.Experiences) > 0:
		heading, ic = b.w.exp, briefcaseIcon
		for _, e := range b.page.Experiences {
			list = append(list, entry{e.JobTitle, e.CompanyName, e.StartDate, e.EndDate, e.Description})
		}
	case len(b.page.Educations) > 0:
		heading, ic = b.w.edu, capIcon
		for _, e := range b.page.Educations {
			list = append(list, entry{e.Degree, e.School, e.StartDate, e.EndDate, e.Description})
		}
	default:
		return nil
	}

	const gap = 12
	cards := make([]boxes.Box, len(list))
	for i, e := range list {
		cards[i] = b.card(i, i == len(list)-1, width, gap, ic, e)
	}
	return b.stack(8, b.heading(heading), b.stack(gap, cards...))
}

// card returns one entry, preceded by a numbered step marker.  Markers of
// consecutive cards are joined by a line.
func (b *builder) card(i int, last bool, width, gap float64, ic icon, e entry) boxes.Box {
	m := b.m
	pal := b.pal
	const space = 16
	cw := width - m.marker - space

	titleStyle := b.style(gofont.Bold, m.heading, pal.BaseContent)
	title := boxes.HBox(
		iconBox(ic, m.icon, pal.BaseContent, pal.Base100),
		boxes.Kern(8),
		boxes.Paragraph(titleStyle, cw-m.icon-8, b.upper.String(e.title)),
	)

	var meta []boxes.Box
	if strings.TrimSpace(e.org) != "" {
		padX := m.small * 0.75
		org := boxes.TextFit(gofont.Medium, m.small, pal.PrimaryContent, cw-2*padX, e.org)
		meta = append(meta, boxes.Badge(org, padX, m.small*0.3, pal.Primary))
	}
	meta = append(meta, boxes.Text(gofont.Italic, m.small, b.muted, b.w.dateRange(e.start, e.end)))

	content := b.stack(8,
		title,
		boxes.Flow(cw, 8, 4, meta...),
		b.para(b.style(gofont.Regular, m.body, pal.BaseContent), cw, e.desc),
	)

	ext := content.Extent()
	d := m.marker
	span := max(ext.Height+ext.Depth, d) + gap
	number := strconv.Itoa(i + 1)
	numFace := gofont.Bold.MustFace()
	numWidth := numFace.Width(number, m.small)
	marker := boxes.Graphic(d, ext.Height, max(d-ext.Height, 0), func(g *visual.Group, x, y float64) {
		cx, cy := x+d/2, y-ext.Height+d/2
		if !last {
			lw := d / 6
			g.Add(&visual.Rect{X: cx - lw/2, Y: cy, W: lw, H: span, Fill: pal.Primary})
		}
		g.Add(&visual.Circle{CX: cx, CY: cy, R: d / 2, Fill: pal.Primary})
		g.Add(&visual.Text{
			X:     cx - numWidth/2,
			Y:     cy + (numFace.Ascent(m.small)-numFace.Descent(m.small))/2,
			Text:  number,
			Font:  gofont.Bold,
			Size:  m.small,
			Color: pal.PrimaryContent,
			Width: numWidth,
		})
	})

	return boxes.HBox(marker, boxes.Kern(space), content)
}

func fade(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = uint8(uint16(c.A) * uint16(alpha) / 255)
	return c
}
