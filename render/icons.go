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

package render

import (
	"image/color"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/cv"
	"seehuhn.de/go/cv/boxes"
	"seehuhn.de/go/cv/visual"
)

// MaxStars is the number of stars shown for each language.
const MaxStars = 5

// Stars returns the number of filled stars shown for a proficiency level.
func Stars(p cv.Proficiency) int {
	switch p {
	case cv.Beginner:
		return 1
	case cv.Intermediate:
		return 3
	case cv.Advanced:
		return 5
	default:
		return 0
	}
}

// starRow returns a row of MaxStars stars, the first n of which are filled.
func starRow(n int, size, gap float64, on, off color.NRGBA) boxes.Box {
	var row []boxes.Box
	for i := range MaxStars {
		col := off
		if i < n {
			col = on
		}
		if i > 0 {
			row = append(row, boxes.Kern(gap))
		}
		row = append(row, boxes.Graphic(size, size, 0, func(g *visual.Group, x, y float64) {
			g.Add(&visual.Star{CX: x + size/2, CY: y - size/2, R: size / 2, Fill: col})
		}))
	}
	return boxes.HBox(row...)
}

// icon is a small pictogram drawn into a square of the given size with
// its top-left corner at (x, y).
type icon func(g *visual.Group, x, y, size float64, fg, bg color.NRGBA)

// iconBox returns a box containing ic, with the bottom of the square on the
// baseline.
func iconBox(ic icon, size float64, fg, bg color.NRGBA) boxes.Box {
	return boxes.Graphic(size, size, 0, func(g *visual.Group, x, y float64) {
		ic(g, x, y-size, size, fg, bg)
	})
}

func phoneIcon(g *visual.Group, x, y, s float64, fg, bg color.NRGBA) {
	g.Add(
		&visual.Rect{X: x + 0.25*s, Y: y, W: 0.5 * s, H: s, Radius: 0.1 * s, Fill: fg},
		&visual.Rect{X: x + 0.32*s, Y: y + 0.1*s, W: 0.36 * s, H: 0.65 * s, Fill: bg},
		&visual.Circle{CX: x + 0.5*s, CY: y + 0.86*s, R: 0.06 * s, Fill: bg},
	)
}

func mailIcon(g *visual.Group, x, y, s float64, fg, bg color.NRGBA) {
	top, bottom := y+0.2*s, y+0.8*s
	g.Add(
		&visual.Rect{X: x, Y: top, W: s, H: bottom - top, Radius: 0.08 * s, Fill: fg},
		&visual.Polygon{
			Points: []vec.Vec2{
				{X: x + 0.08*s, Y: top + 0.06*s},
				{X: x + 0.92*s, Y: top + 0.06*s},
				{X: x + 0.5*s, Y: top + 0.36*s},
			},
			Fill: bg,
		},
	)
}

func pinIcon(g *visual.Group, x, y, s float64, fg, bg color.NRGBA) {
	cx, cy, r := x+0.5*s, y+0.38*s, 0.32*s
	g.Add(
		&visual.Polygon{
			Points: []vec.Vec2{
				{X: cx - 0.85*r, Y: cy + 0.5*r},
				{X: cx + 0.85*r, Y: cy + 0.5*r},
				{X: cx, Y: y + s},
			},
			Fill: fg,
		},
		&visual.Circle{CX: cx, CY: cy, R: r, Fill: fg},
		&visual.Circle{CX: cx, CY: cy, R: 0.4 * r, Fill: bg},
	)
}

func briefcaseIcon(g *visual.Group, x, y, s float64, fg, bg color.NRGBA) {
	g.Add(
		&visual.Rect{X: x + 0.32*s, Y: y + 0.1*s, W: 0.36 * s, H: 0.2 * s, Radius: 0.04 * s,
			Stroke: fg, LineWidth: 0.08 * s},
		&visual.Rect{X: x, Y: y + 0.28*s, W: s, H: 0.62 * s, Radius: 0.1 * s, Fill: fg},
		&visual.Rect{X: x, Y: y + 0.52*s, W: s, H: 0.06 * s, Fill: bg},
	)
}

func capIcon(g *visual.Group, x, y, s float64, fg, bg color.NRGBA) {
	g.Add(
		&visual.Rect{X: x + 0.22*s, Y: y + 0.45*s, W: 0.56 * s, H: 0.35 * s, Radius: 0.12 * s, Fill: fg},
		&visual.Polygon{
			Points: []vec.Vec2{
				{X: x, Y: y + 0.4*s},
				{X: x + 0.5*s, Y: y + 0.15*s},
				{X: x + s, Y: y + 0.4*s},
				{X: x + 0.5*s, Y: y + 0.65*s},
			},
			Fill: fg,
		},
		&visual.Rect{X: x + 0.88*s, Y: y + 0.4*s, W: 0.06 * s, H: 0.35 * s, Fill: fg},
	)
}

// silhouette draws the head-and-shoulders placeholder shown instead of a
// missing photo, inside the circle with centre (cx, cy) and radius r.
func silhouette(g *visual.Group, cx, cy, r float64, col color.NRGBA) {
	g.Add(&visual.Circle{CX: cx, CY: cy - 0.25*r, R: 0.32 * r, Fill: col})

	// shoulders: the upper half of an ellipse, cut off at the bottom of
	// the circle
	const n = 32
	ry := 0.55 * r
	base := cy + math.Sqrt(1-0.55*0.55)*r
	pts := make([]vec.Vec2, 0, n+1)
	for i := 0; i <= n; i++ {
		phi := math.Pi * float64(i) / n
		pts = append(pts, vec.Vec2{
			X: cx - 0.55*r*math.Cos(phi),
			Y: max(base-ry*math.Sin(phi), cy+0.15*r),
		})
	}
	g.Add(&visual.Polygon{Points: pts, Fill: col})
}
