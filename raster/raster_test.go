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

package raster

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/cv/font/gofont"
	"seehuhn.de/go/cv/visual"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	red   = color.NRGBA{R: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
)

func page(w, h float64, nodes ...visual.Node) *visual.Tree {
	return &visual.Tree{
		Page:   2,
		Width:  w,
		Height: h,
		Root:   &visual.Group{Name: "test", Children: nodes},
	}
}

func TestSize(t *testing.T) {
	cases := []struct {
		w, h, scale float64
		wantW       int
		wantH       int
	}{
		{10, 20, 0, 30, 60},
		{10, 20, 1, 10, 20},
		{3.3, 1, 2.5, 9, 3},
		{950, 1200, 3, 2850, 3600},
	}
	for _, c := range cases {
		img, err := Rasterize(context.Background(), page(c.w, c.h), &Options{Scale: c.scale})
		if err != nil {
			t.Fatal(err)
		}
		b := img.Bounds()
		if b.Dx() != c.wantW || b.Dy() != c.wantH {
			t.Errorf("%gx%g@%g: got %v", c.w, c.h, c.scale, b)
		}
	}
}

func TestWhiteBackground(t *testing.T) {
	img, err := Rasterize(context.Background(), page(5, 5), nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < len(img.Pix); i++ {
		if img.Pix[i] != 255 {
			t.Fatalf("pixel data %d is %d", i, img.Pix[i])
		}
	}

	tree := page(5, 5)
	tree.Background = blue
	img, err = Rasterize(context.Background(), tree, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(7, 7); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("background is %v", got)
	}
}

func TestShapes(t *testing.T) {
	tree := page(40, 20,
		&visual.Rect{X: 2, Y: 2, W: 8, H: 8, Fill: red},
		&visual.Circle{CX: 25, CY: 10, R: 5, Fill: blue},
		&visual.Star{CX: 35, CY: 10, R: 4, Fill: red},
	)
	for _, scale := range []float64{1, 3} {
		img, err := Rasterize(context.Background(), tree, &Options{Scale: scale})
		if err != nil {
			t.Fatal(err)
		}
		at := func(x, y float64) color.RGBA {
			return img.RGBAAt(int(x*scale), int(y*scale))
		}
		if got := at(5, 5); got != (color.RGBA{R: 255, A: 255}) {
			t.Errorf("scale %g: rectangle centre is %v", scale, got)
		}
		if got := at(0, 0); got != white {
			t.Errorf("scale %g: corner is %v", scale, got)
		}
		if got := at(25, 10); got != (color.RGBA{B: 255, A: 255}) {
			t.Errorf("scale %g: circle centre is %v", scale, got)
		}
		if got := at(20.5, 5.5); got != white {
			t.Errorf("scale %g: outside circle is %v", scale, got)
		}
		if got := at(35, 10); got != (color.RGBA{R: 255, A: 255}) {
			t.Errorf("scale %g: star centre is %v", scale, got)
		}
	}
}

func TestStroke(t *testing.T) {
	tree := page(20, 20, &visual.Rect{X: 0, Y: 0, W: 20, H: 20, Stroke: red, LineWidth: 4})
	img, err := Rasterize(context.Background(), tree, &Options{Scale: 1})
	if err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(1, 10); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("border is %v", got)
	}
	if got := img.RGBAAt(10, 10); got != white {
		t.Errorf("inside is %v", got)
	}
}

func TestText(t *testing.T) {
	text := &visual.Text{X: 5, Y: 30, Text: "Hello", Font: gofont.Bold, Size: 24, Color: color.NRGBA{A: 255}}
	face := gofont.Bold.MustFace()
	text.Width = face.Width(text.Text, text.Size)

	img, err := Rasterize(context.Background(), page(100, 40, text), &Options{Scale: 2})
	if err != nil {
		t.Fatal(err)
	}

	dark := 0
	b := text.Bounds()
	for y := 0; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			if img.RGBAAt(x, y).R < 128 {
				dark++
				fx, fy := float64(x)/2, float64(y)/2
				if fx < b.LLx-1 || fx > b.URx+1 || fy < b.LLy-1 || fy > b.URy+1 {
					t.Fatalf("ink at (%g, %g) outside of %v", fx, fy, b)
				}
			}
		}
	}
	if dark < 100 {
		t.Errorf("only %d dark pixels", dark)
	}
}

func TestImageCover(t *testing.T) {
	// left half red, right half blue
	src := image.NewNRGBA(image.Rect(0, 0, 40, 20))
	for y := range 20 {
		for x := range 40 {
			col := red
			if x >= 20 {
				col = blue
			}
			src.SetNRGBA(x, y, col)
		}
	}

	for _, clip := range []visual.Clip{visual.ClipNone, visual.ClipCircle} {
		im := &visual.Image{X: 10, Y: 10, W: 20, H: 20, Src: src, Clip: clip}
		img, err := Rasterize(context.Background(), page(40, 40, im), &Options{Scale: 1})
		if err != nil {
			t.Fatal(err)
		}

		// The image is scaled to a height of 20, so that only the middle
		// part is visible.
		if got := img.RGBAAt(14, 20); got != (color.RGBA{R: 255, A: 255}) {
			t.Errorf("clip %d: left is %v", clip, got)
		}
		if got := img.RGBAAt(26, 20); got != (color.RGBA{B: 255, A: 255}) {
			t.Errorf("clip %d: right is %v", clip, got)
		}
		for _, p := range []image.Point{{5, 20}, {35, 20}, {20, 5}, {20, 35}} {
			if got := img.RGBAAt(p.X, p.Y); got != white {
				t.Errorf("clip %d: image drawn outside its box at %v", clip, p)
			}
		}

		corner := img.RGBAAt(10, 10)
		if clip == visual.ClipCircle && corner != white {
			t.Errorf("corner is %v, want white", corner)
		} else if clip == visual.ClipNone && corner == white {
			t.Error("corner is white")
		}
	}
}

type strangeNode struct{}

func (strangeNode) Bounds() rect.Rect { return rect.Rect{} }

func TestErrors(t *testing.T) {
	ctx := context.Background()
	cancelled, cancel := context.WithCancel(ctx)
	cancel()

	cases := []struct {
		name string
		ctx  context.Context
		tree *visual.Tree
		opt  *Options
		want error
	}{
		{"no image", ctx, page(10, 10, &visual.Image{W: 5, H: 5}), nil, ErrNoImage},
		{"unknown", ctx, page(10, 10, strangeNode{}), nil, ErrUnknownNode},
		{"scale", ctx, page(10, 10), &Options{Scale: -1}, ErrScale},
		{"too large", ctx, page(100, 100), &Options{MaxPixels: 1000}, ErrTooLarge},
		{"cancelled", cancelled, page(10, 10), nil, context.Canceled},
	}
	for _, c := range cases {
		img, err := Rasterize(c.ctx, c.tree, c.opt)
		if img != nil {
			t.Errorf("%s: got a bitmap", c.name)
		}
		if !errors.Is(err, c.want) {
			t.Errorf("%s: got %v, want %v", c.name, err, c.want)
		}
		var rErr *Error
		if !errors.As(err, &rErr) || rErr.Page != 2 {
			t.Errorf("%s: page not reported: %v", c.name, err)
		}
	}

	_, err := Rasterize(ctx, nil, nil)
	if !errors.Is(err, ErrNoTree) {
		t.Errorf("unexpected error %v", err)
	}
}
