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

package export

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"seehuhn.de/go/cv"
	"seehuhn.de/go/cv/layout"
	"seehuhn.de/go/cv/photo"
	"seehuhn.de/go/cv/raster"
	"seehuhn.de/go/cv/visual"
)

// labelled is a fake rasterizer which produces a small bitmap per page.
// The red channel of every pixel holds the page index.
func labelled(ctx context.Context, tree *visual.Tree, _ *raster.Options) (*image.RGBA, error) {
	time.Sleep(time.Duration(rand.IntN(5)) * time.Millisecond)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, 4, 5))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = uint8(tree.Page)
		img.Pix[i+3] = 255
	}
	return img, nil
}

func record(numExp, numEdu int) *cv.Record {
	rec := cv.Preset()
	rec.Experiences = nil
	rec.Educations = nil
	for range numExp {
		rec.Experiences = append(rec.Experiences, cv.Experience{JobTitle: "Job", StartDate: "2020-01-01"})
	}
	for range numEdu {
		rec.Educations = append(rec.Educations, cv.Education{School: "School"})
	}
	return rec
}

func writePhoto(t *testing.T, col color.NRGBA) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 8, 6))
	for y := range 6 {
		for x := range 8 {
			img.SetNRGBA(x, y, col)
		}
	}
	name := filepath.Join(t.TempDir(), "photo.png")
	fd, err := os.Create(name)
	if err != nil {
		t.Fatal(err)
	}
	defer fd.Close()
	if err := png.Encode(fd, img); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestPageOrder(t *testing.T) {
	opt := DefaultOptions()
	opt.Workers = 3
	e := New(opt, nil)
	e.Rasterizer = RasterizerFunc(labelled)

	bitmaps, err := e.Bitmaps(context.Background(), record(10, 4))
	if err != nil {
		t.Fatal(err)
	}
	var got []uint8
	for _, img := range bitmaps {
		got = append(got, img.Pix[0])
	}
	want := []uint8{0, 1, 2, 3, 4, 5}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("page order (-want +got):\n%s", d)
	}
}

func TestExport(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	e := New(nil, zap.New(core))
	e.Rasterizer = RasterizerFunc(labelled)
	e.Now = func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }

	buf := &bytes.Buffer{}
	err := e.Export(context.Background(), record(4, 1), buf)
	if err != nil {
		t.Fatal(err)
	}
	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Error("output is not a PDF file")
	}
	if !bytes.Contains(out, []byte("/Count 3")) {
		t.Error("wrong number of pages")
	}
	if !bytes.Contains(out, []byte("(John Doe)")) {
		t.Error("title missing")
	}

	if n := logs.FilterMessage("page rasterized").Len(); n != 3 {
		t.Errorf("%d pages logged", n)
	}
	done := logs.FilterMessage("export finished").All()
	if len(done) != 1 || done[0].ContextMap()["pages"] != int64(3) {
		t.Errorf("unexpected log entries %v", done)
	}
}

func TestExportRaster(t *testing.T) {
	opt := DefaultOptions()
	opt.Scale = 0.5
	e := New(opt, nil)

	buf := &bytes.Buffer{}
	err := e.Export(context.Background(), cv.Preset(), buf)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("/Width 475")) {
		t.Error("unexpected bitmap size")
	}
}

func TestBusy(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	e := New(nil, nil)
	e.Rasterizer = RasterizerFunc(func(ctx context.Context, tree *visual.Tree, opt *raster.Options) (*image.RGBA, error) {
		once.Do(func() { close(started) })
		<-release
		return labelled(ctx, tree, opt)
	})

	errc := make(chan error, 1)
	go func() {
		errc <- e.Export(context.Background(), record(1, 0), &bytes.Buffer{})
	}()
	<-started

	out := &bytes.Buffer{}
	if err := e.Export(context.Background(), record(1, 0), out); !errors.Is(err, ErrBusy) {
		t.Errorf("got %v, want ErrBusy", err)
	}
	if _, err := e.Bitmaps(context.Background(), record(1, 0)); !errors.Is(err, ErrBusy) {
		t.Errorf("got %v, want ErrBusy", err)
	}
	if out.Len() != 0 {
		t.Error("rejected export wrote output")
	}

	close(release)
	if err := <-errc; err != nil {
		t.Fatal(err)
	}

	// once the first export is done, the exporter can be used again
	if err := e.Export(context.Background(), record(1, 0), &bytes.Buffer{}); err != nil {
		t.Error(err)
	}
}

func TestRasterFailure(t *testing.T) {
	boom := errors.New("boom")
	e := New(nil, nil)
	e.Rasterizer = RasterizerFunc(func(ctx context.Context, tree *visual.Tree, opt *raster.Options) (*image.RGBA, error) {
		if tree.Page == 1 {
			return nil, boom
		}
		return labelled(ctx, tree, opt)
	})

	buf := &bytes.Buffer{}
	err := e.Export(context.Background(), record(9, 0), buf)
	var rErr *raster.Error
	if !errors.As(err, &rErr) || rErr.Page != 1 || !errors.Is(err, boom) {
		t.Errorf("unexpected error %v", err)
	}
	if buf.Len() != 0 {
		t.Error("partial output written")
	}
}

func TestCrossOrigin(t *testing.T) {
	name := writePhoto(t, color.NRGBA{B: 255, A: 255})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, name)
	}))
	defer srv.Close()

	rec := cv.Preset()
	rec.Personal.Photo = cv.PhotoRef(srv.URL + "/me.png")

	// remote photos are fetched by default
	var seen image.Image
	e := New(nil, nil)
	e.Rasterizer = RasterizerFunc(func(ctx context.Context, tree *visual.Tree, opt *raster.Options) (*image.RGBA, error) {
		visual.Walk(tree.Root, func(n visual.Node) error {
			if im, ok := n.(*visual.Image); ok && im.Src != nil {
				seen = im.Src
			}
			return nil
		})
		return labelled(ctx, tree, opt)
	})
	if err := e.Export(context.Background(), rec, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	if seen == nil || seen.Bounds().Dx() != 8 {
		t.Error("remote photo not passed to the renderer")
	}

	opt := DefaultOptions()
	opt.AllowRemote = false
	called := false
	e = New(opt, nil)
	e.Rasterizer = RasterizerFunc(func(ctx context.Context, tree *visual.Tree, opt *raster.Options) (*image.RGBA, error) {
		called = true
		return labelled(ctx, tree, opt)
	})

	buf := &bytes.Buffer{}
	err := e.Export(context.Background(), rec, buf)
	var rErr *raster.Error
	if !errors.As(err, &rErr) || rErr.Page != 0 {
		t.Errorf("unexpected error %v", err)
	}
	if !errors.Is(err, photo.ErrCrossOrigin) {
		t.Errorf("got %v, want ErrCrossOrigin", err)
	}
	if called {
		t.Error("pages were rasterized")
	}
	if buf.Len() != 0 {
		t.Error("output written")
	}
}

func TestInvalidOptions(t *testing.T) {
	opt := DefaultOptions()
	opt.ItemsPerPage = 0
	e := New(opt, nil)
	e.Rasterizer = RasterizerFunc(labelled)
	err := e.Export(context.Background(), cv.Preset(), &bytes.Buffer{})
	if !errors.Is(err, layout.ErrInvalidConfiguration) {
		t.Errorf("got %v, want ErrInvalidConfiguration", err)
	}

	opt = DefaultOptions()
	opt.Theme = "no-such-theme"
	e = New(opt, nil)
	if err := e.Export(context.Background(), cv.Preset(), &bytes.Buffer{}); err == nil {
		t.Error("unknown theme accepted")
	}

	if err := New(nil, nil).Export(context.Background(), nil, &bytes.Buffer{}); err == nil {
		t.Error("missing record accepted")
	}
}

func TestCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := New(nil, nil)
	e.Rasterizer = RasterizerFunc(labelled)
	err := e.Export(ctx, record(5, 5), &bytes.Buffer{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestPhoto(t *testing.T) {
	var seen image.Image
	e := New(nil, nil)
	e.Photos = &photo.Loader{}
	e.Rasterizer = RasterizerFunc(func(ctx context.Context, tree *visual.Tree, opt *raster.Options) (*image.RGBA, error) {
		visual.Walk(tree.Root, func(n visual.Node) error {
			if im, ok := n.(*visual.Image); ok && im.Src != nil {
				seen = im.Src
			}
			return nil
		})
		return labelled(ctx, tree, opt)
	})

	rec := record(1, 0)
	rec.Personal.Photo = cv.PhotoRef(writePhoto(t, color.NRGBA{G: 255, A: 255}))
	if err := e.Export(context.Background(), rec, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	if seen == nil || seen.Bounds().Dx() != 8 {
		t.Error("photo not passed to the renderer")
	}
}
