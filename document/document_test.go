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

package document

import (
	"bytes"
	"errors"
	"image"
	"math"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/text/language"
)

func bitmap(w, h int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestPlacement(t *testing.T) {
	cases := []struct {
		name string
		w, h int
		want Placement
	}{
		{"short", 950, 1200, Placement{Width: 210, Height: 1200 * 210.0 / 950}},
		{"exact", 210, 297, Placement{Width: 210, Height: 297}},
		{"tall", 480, 1200, Placement{
			X:      (210 - 480*297.0/1200) / 2,
			Width:  480 * 297.0 / 1200,
			Height: 297,
		}},
		{"wide", 3000, 100, Placement{Width: 210, Height: 7}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			doc, err := Assemble([]*image.RGBA{bitmap(c.w, c.h)}, A4)
			if err != nil {
				t.Fatal(err)
			}
			got := doc.Placements()
			if d := cmp.Diff([]Placement{c.want}, got, approx); d != "" {
				t.Error(d)
			}
			pl := got[0]
			if pl.X < 0 || pl.X+pl.Width > A4.Width+1e-9 || pl.Y+pl.Height > A4.Height+1e-9 {
				t.Errorf("placement %v exceeds the page", pl)
			}
		})
	}
}

func TestAspectRatio(t *testing.T) {
	for _, size := range []Size{A4, A5, Letter} {
		for _, dims := range [][2]int{{950, 1200}, {480, 1200}, {2850, 3600}, {1, 1000}} {
			doc, err := Assemble([]*image.RGBA{bitmap(dims[0], dims[1])}, size)
			if err != nil {
				t.Fatal(err)
			}
			pl := doc.Placements()[0]
			want := float64(dims[1]) / float64(dims[0])
			if got := pl.Height / pl.Width; math.Abs(got-want) > 1e-9*want {
				t.Errorf("%v %v: aspect ratio %g, want %g", size, dims, got, want)
			}
		}
	}
}

func TestOrder(t *testing.T) {
	var bitmaps []*image.RGBA
	for i := 1; i <= 5; i++ {
		bitmaps = append(bitmaps, bitmap(10*i, 10))
	}
	doc, err := Assemble(bitmaps, A4)
	if err != nil {
		t.Fatal(err)
	}
	if doc.NumPages() != 5 {
		t.Fatalf("got %d pages", doc.NumPages())
	}
	for i := range 5 {
		if doc.Bitmap(i) != bitmaps[i] {
			t.Errorf("page %d shows the wrong bitmap", i)
		}
	}

	buf := &bytes.Buffer{}
	if _, err := doc.WriteTo(buf); err != nil {
		t.Fatal(err)
	}
	var widths []string
	for _, m := range regexp.MustCompile(`/Width (\d+)`).FindAllStringSubmatch(buf.String(), -1) {
		widths = append(widths, m[1])
	}
	if d := cmp.Diff([]string{"10", "20", "30", "40", "50"}, widths); d != "" {
		t.Error(d)
	}
}

func TestEmpty(t *testing.T) {
	doc, err := Assemble(nil, A4)
	if err != nil {
		t.Fatal(err)
	}
	if doc.NumPages() != 0 || len(doc.Placements()) != 0 {
		t.Error("unexpected pages")
	}
	buf := &bytes.Buffer{}
	n, err := doc.WriteTo(buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo reported %d bytes, wrote %d", n, buf.Len())
	}
	if !strings.Contains(buf.String(), "/Count 0") {
		t.Error("page count missing")
	}
}

func TestAssemblyErrors(t *testing.T) {
	cases := []struct {
		name    string
		bitmaps []*image.RGBA
		size    Size
		page    int
	}{
		{"nil", []*image.RGBA{bitmap(1, 1), nil}, A4, 1},
		{"empty", []*image.RGBA{bitmap(0, 5)}, A4, 0},
		{"paper", nil, Size{Width: 210}, -1},
	}
	for _, c := range cases {
		doc, err := Assemble(c.bitmaps, c.size)
		if doc != nil {
			t.Errorf("%s: got a document", c.name)
		}
		var aErr *AssemblyError
		if !errors.As(err, &aErr) {
			t.Errorf("%s: got %v", c.name, err)
			continue
		}
		if aErr.Page != c.page {
			t.Errorf("%s: page %d, want %d", c.name, aErr.Page, c.page)
		}
	}
}

func TestWrite(t *testing.T) {
	doc, err := Assemble([]*image.RGBA{bitmap(950, 1200), bitmap(480, 1200)}, A4)
	if err != nil {
		t.Fatal(err)
	}
	doc.Info = &Info{
		Title:   "John Doe",
		Author:  "John Doe",
		Lang:    language.English,
		Created: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	buf1 := &bytes.Buffer{}
	if _, err := doc.WriteTo(buf1); err != nil {
		t.Fatal(err)
	}
	out := buf1.String()
	for _, want := range []string{
		"/Count 2",
		"/MediaBox [0 0 595.2756 841.8898]",
		"/OutputIntents",
		"/Metadata",
		"/Lang (en)",
		"/Title (John Doe)",
		"/ColorSpace [/ICCBased",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("%q missing from output", want)
		}
	}

	buf2 := &bytes.Buffer{}
	if _, err := doc.WriteTo(buf2); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf1.Bytes(), buf2.Bytes()) {
		t.Error("output is not deterministic")
	}
}

func TestContents(t *testing.T) {
	doc := &Document{Size: Size{Width: 25.4, Height: 50.8}}
	got := string(doc.contents(Placement{X: 0, Y: 0, Width: 25.4, Height: 25.4}))
	if want := "q 72 0 0 72 0 72 cm /Im0 Do Q"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseSize(t *testing.T) {
	for name, want := range map[string]Size{"A4": A4, "": A4, "letter": Letter, "a5": A5} {
		got, err := ParseSize(name)
		if err != nil || got != want {
			t.Errorf("%q: got %v, %v", name, got, err)
		}
	}
	if _, err := ParseSize("tabloid"); !errors.Is(err, ErrUnknownPaper) {
		t.Errorf("unexpected error %v", err)
	}
}
