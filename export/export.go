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

// Package export runs the complete pipeline which turns a résumé into a
// PDF file.
//
// The record is split into virtual pages, every page is rendered and
// rasterized, and the resulting bitmaps are assembled into a document.
// Pages are rasterized concurrently.  Output is only written once the
// whole document has been produced.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"seehuhn.de/go/cv"
	"seehuhn.de/go/cv/document"
	"seehuhn.de/go/cv/layout"
	"seehuhn.de/go/cv/photo"
	"seehuhn.de/go/cv/raster"
	"seehuhn.de/go/cv/render"
	"seehuhn.de/go/cv/theme"
	"seehuhn.de/go/cv/visual"
)

// ErrBusy is returned if an export is requested while another export of
// the same Exporter is still running.
var ErrBusy = errors.New("export already in progress")

// DefaultWorkers is the default number of pages rasterized in parallel.
const DefaultWorkers = 4

// Options control the appearance of the exported document.
type Options struct {
	Theme        string // palette name, see theme.Names
	ItemsPerPage int
	Mode         render.Mode
	Locale       language.Tag

	// Scale is the number of pixels per virtual unit.
	Scale float64

	Paper document.Size

	// Quality, if positive, selects JPEG compression for the page images.
	Quality int

	// Workers limits the number of pages rasterized concurrently.
	Workers int

	// AllowRemote allows photos to be fetched from http and https URLs.
	// This is set in DefaultOptions, clear it to use local photos only.
	AllowRemote bool
}

// DefaultOptions returns the settings used when nothing else is configured.
func DefaultOptions() *Options {
	return &Options{
		Theme:        theme.Default,
		ItemsPerPage: layout.DefaultItemsPerPage,
		Mode:         render.Desktop,
		Locale:       language.English,
		Scale:        raster.DefaultScale,
		Paper:        document.A4,
		Workers:      DefaultWorkers,
		AllowRemote:  true,
	}
}

// Rasterizer converts a visual tree into a bitmap.
type Rasterizer interface {
	Rasterize(ctx context.Context, tree *visual.Tree, opt *raster.Options) (*image.RGBA, error)
}

// RasterizerFunc adapts an ordinary function to the Rasterizer interface.
type RasterizerFunc func(ctx context.Context, tree *visual.Tree, opt *raster.Options) (*image.RGBA, error)

// Rasterize calls f(ctx, tree, opt).
func (f RasterizerFunc) Rasterize(ctx context.Context, tree *visual.Tree, opt *raster.Options) (*image.RGBA, error) {
	return f(ctx, tree, opt)
}

// Exporter produces PDF files from résumé records.
// An Exporter runs at most one export at a time.
// Exporters must be created using [New].
type Exporter struct {
	opt Options

	// Rasterizer is used to convert pages into bitmaps.
	// If this is nil, raster.Rasterize is used.
	Rasterizer Rasterizer

	// Photos is used to load the photo.  If this is nil, a loader
	// configured from the options is used.
	Photos *photo.Loader

	// Now returns the time recorded in the document metadata.
	Now func() time.Time

	log  *zap.Logger
	busy atomic.Bool
}

// New returns an Exporter with the given options.  If opt is nil,
// [DefaultOptions] is used.  If logger is nil, nothing is logged.
func New(opt *Options, logger *zap.Logger) *Exporter {
	if opt == nil {
		opt = DefaultOptions()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{
		opt: *opt,
		Now: time.Now,
		log: logger,
	}
}

// Options returns a copy of the options used by e.
func (e *Exporter) Options() Options {
	return e.opt
}

// Export writes the résumé rec as a PDF file to w.
//
// If another export is in progress, Export returns ErrBusy immediately.
// On failure, nothing is written to w.  Errors from rasterizing a page,
// including a failure to load the photo, are of type *raster.Error.
func (e *Exporter) Export(ctx context.Context, rec *cv.Record, w io.Writer) error {
	if !e.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer e.busy.Store(false)

	start := time.Now()
	doc, err := e.document(ctx, rec)
	if err != nil {
		e.log.Error("export failed", zap.Error(err))
		return err
	}

	buf := &bytes.Buffer{}
	_, err = doc.WriteTo(buf)
	if err != nil {
		e.log.Error("writing PDF failed", zap.Error(err))
		return fmt.Errorf("export: %w", err)
	}
	n, err := w.Write(buf.Bytes())
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	e.log.Info("export finished",
		zap.Int("pages", doc.NumPages()),
		zap.Int("bytes", n),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

// Bitmaps renders and rasterizes all pages of rec, without assembling
// them into a document.  Like Export, this returns ErrBusy if another
// export is in progress.
func (e *Exporter) Bitmaps(ctx context.Context, rec *cv.Record) ([]*image.RGBA, error) {
	if !e.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer e.busy.Store(false)

	return e.bitmaps(ctx, rec)
}

func (e *Exporter) document(ctx context.Context, rec *cv.Record) (*document.Document, error) {
	bitmaps, err := e.bitmaps(ctx, rec)
	if err != nil {
		return nil, err
	}

	paper := e.opt.Paper
	if paper == (document.Size{}) {
		paper = document.A4
	}
	doc, err := document.Assemble(bitmaps, paper)
	if err != nil {
		return nil, err
	}
	doc.Quality = e.opt.Quality
	doc.Info = &document.Info{
		Title:   rec.Personal.FullName,
		Author:  rec.Personal.FullName,
		Subject: rec.Personal.PostSeeking,
		Lang:    e.opt.Locale,
		Created: e.Now(),
	}
	return doc, nil
}

func (e *Exporter) bitmaps(ctx context.Context, rec *cv.Record) ([]*image.RGBA, error) {
	if rec == nil {
		return nil, errors.New("export: missing record")
	}

	name := e.opt.Theme
	if name == "" {
		name = theme.Default
	}
	pal, err := theme.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	pages, err := layout.Paginate(rec.Experiences, rec.Educations, e.opt.ItemsPerPage)
	if err != nil {
		return nil, err
	}
	e.log.Debug("paginated",
		zap.Int("pages", len(pages)),
		zap.Int("experiences", len(rec.Experiences)),
		zap.Int("educations", len(rec.Educations)))

	loader := e.Photos
	if loader == nil {
		loader = &photo.Loader{AllowRemote: e.opt.AllowRemote}
	}
	ph, err := loader.Load(ctx, rec.Personal.Photo)
	if err != nil {
		// The photo is shown on the first page.
		return nil, &raster.Error{Page: 0, Err: err}
	}
	defer ph.Release()

	renderOpt := &render.Options{
		Mode:      e.opt.Mode,
		Locale:    e.opt.Locale,
		PageCount: len(pages),
	}
	if ph != nil {
		renderOpt.Photo = ph.Image
	}
	trees := make([]*visual.Tree, len(pages))
	for i, p := range pages {
		trees[i], err = render.RenderPage(p, rec, pal, renderOpt)
		if err != nil {
			return nil, fmt.Errorf("export: page %d: %w", p.Index, err)
		}
	}

	return e.rasterize(ctx, trees)
}

func (e *Exporter) rasterize(ctx context.Context, trees []*visual.Tree) ([]*image.RGBA, error) {
	ras := e.Rasterizer
	if ras == nil {
		ras = RasterizerFunc(raster.Rasterize)
	}
	rasOpt := &raster.Options{Scale: e.opt.Scale}

	workers := e.opt.Workers
	if workers <= 0 {
		workers = 1
	}

	res := make([]*image.RGBA, len(trees))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, tree := range trees {
		g.Go(func() error {
			start := time.Now()
			img, err := ras.Rasterize(ctx, tree, rasOpt)
			if err != nil {
				var rErr *raster.Error
				if !errors.As(err, &rErr) {
					err = &raster.Error{Page: tree.Page, Err: err}
				}
				return err
			}
			res[i] = img
			e.log.Debug("page rasterized",
				zap.Int("page", tree.Page),
				zap.Duration("elapsed", time.Since(start)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
