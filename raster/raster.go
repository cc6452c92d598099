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

// Package raster converts visual trees into bitmaps.
//
// Shapes and glyph outlines are filled using the anti-aliasing rasterizer
// from golang.org/x/image/vector.  Photos are resampled with bilinear
// interpolation.  The output always starts from an opaque white
// background.
package raster

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/cv/visual"
)

// DefaultScale is the number of device pixels per virtual unit, if no
// other scale is given.
const DefaultScale = 3

// DefaultMaxPixels limits the size of the generated bitmaps, if no other
// limit is given.
const DefaultMaxPixels = 64 << 20

// Options control the rasterization.
type Options struct {
	// Scale is the number of pixels per virtual unit.
	// If this is zero, DefaultScale is used.
	Scale float64

	// MaxPixels is the largest permitted number of pixels in the output.
	// If this is zero, DefaultMaxPixels is used.
	MaxPixels int
}

// These errors can be wrapped in an [*Error].
var (
	ErrScale       = errors.New("invalid scale factor")
	ErrTooLarge    = errors.New("bitmap too large")
	ErrNoImage     = errors.New("image node without image data")
	ErrUnknownNode = errors.New("unknown node type")
	ErrNoTree      = errors.New("missing visual tree")
)

// Error is returned when a page cannot be rasterized.
type Error struct {
	// Page is the 0-based index of the page.
	Page int
	Err  error
}

func (err *Error) Error() string {
	return fmt.Sprintf("rasterize page %d: %v", err.Page, err.Err)
}

func (err *Error) Unwrap() error {
	return err.Err
}

// Rasterize draws the visual tree into a new bitmap.
//
// The bitmap has ceil(tree.Width*scale) × ceil(tree.Height*scale) pixels.
// On error, no bitmap is returned and the error is of type [*Error].
func Rasterize(ctx context.Context, tree *visual.Tree, opt *Options) (*image.RGBA, error) {
	if tree == nil {
		return nil, &Error{Err: ErrNoTree}
	}
	img, err := rasterize(ctx, tree, opt)
	if err != nil {
		return nil, &Error{Page: tree.Page, Err: err}
	}
	return img, nil
}

func rasterize(ctx context.Context, tree *visual.Tree, opt *Options) (*image.RGBA, error) {
	if opt == nil {
		opt = &Options{}
	}
	scale := opt.Scale
	if scale == 0 {
		scale = DefaultScale
	}
	if !(scale > 0) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("%w %g", ErrScale, scale)
	}
	maxPixels := opt.MaxPixels
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}

	wf := math.Ceil(tree.Width * scale)
	hf := math.Ceil(tree.Height * scale)
	if !(wf >= 1 && hf >= 1) {
		return nil, fmt.Errorf("invalid page size %gx%g", tree.Width, tree.Height)
	}
	if wf*hf > float64(maxPixels) {
		return nil, fmt.Errorf("%w: %.0fx%.0f pixels", ErrTooLarge, wf, hf)
	}
	width, height := int(wf), int(hf)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	r := &renderer{
		img:   img,
		ras:   vector.NewRasterizer(0, 0),
		scale: scale,
	}
	if tree.Background.A > 0 {
		draw.Draw(img, img.Bounds(), image.NewUniform(tree.Background), image.Point{}, draw.Over)
	}

	err := visual.Walk(tree.Root, func(n visual.Node) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return r.node(n)
	})
	if err != nil {
		return nil, err
	}
	return img, nil
}

// renderer holds the state used while drawing one page.
type renderer struct {
	img   *image.RGBA
	ras   *vector.Rasterizer
	scale float64

	// m maps virtual coordinates to the coordinates of the current
	// rasterizer area.
	m matrix.Matrix
}

func (r *renderer) node(n visual.Node) error {
	switch n := n.(type) {
	case *visual.Group:
		// children are visited by the caller
	case *visual.Rect:
		r.drawRect(n)
	case *visual.Circle:
		r.drawCircle(n)
	case *visual.Star:
		r.drawStar(n)
	case *visual.Polygon:
		r.drawPolygon(n)
	case *visual.Text:
		return r.drawText(n)
	case *visual.Image:
		return r.drawImage(n)
	default:
		return fmt.Errorf("%w %T", ErrUnknownNode, n)
	}
	return nil
}

// device returns the pixel rectangle covering b, enlarged by margin
// virtual units and clipped to the bitmap.
func (r *renderer) device(b rect.Rect, margin float64) image.Rectangle {
	s := r.scale
	x0 := int(math.Floor((b.LLx - margin) * s))
	y0 := int(math.Floor((b.LLy - margin) * s))
	x1 := int(math.Ceil((b.URx + margin) * s))
	y1 := int(math.Ceil((b.URy + margin) * s))
	return image.Rect(x0, y0, x1, y1).Intersect(r.img.Bounds())
}

// begin prepares the rasterizer for a shape within b.  The return value
// is the affected pixel area; if this is empty, nothing needs to be drawn.
func (r *renderer) begin(b rect.Rect, margin float64) image.Rectangle {
	area := r.device(b, margin)
	if area.Empty() {
		return area
	}
	r.ras.Reset(area.Dx(), area.Dy())
	r.m = matrix.Scale(r.scale, r.scale).Mul(
		matrix.Translate(-float64(area.Min.X), -float64(area.Min.Y)))
	return area
}

// paint fills the current path with col.
func (r *renderer) paint(area image.Rectangle, col color.NRGBA) {
	if col.A == 0 {
		return
	}
	r.ras.Draw(r.img, area, image.NewUniform(col), image.Point{})
}
