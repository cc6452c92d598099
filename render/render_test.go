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
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"

	"seehuhn.de/go/cv"
	"seehuhn.de/go/cv/layout"
	"seehuhn.de/go/cv/theme"
	"seehuhn.de/go/cv/visual"
)

func TestFormatDate(t *testing.T) {
	cases := []struct {
		in   string
		tag  language.Tag
		want string
	}{
		{"2022-01-01", language.English, "01 Jan 2022"},
		{"2019-09-15", language.English, "15 Sep 2019"},
		{"2019-09", language.English, "01 Sep 2019"},
		{"2019", language.English, "01 Jan 2019"},
		{"2021-03-04T10:00:00Z", language.English, "04 Mar 2021"},
		{" 2022-01-01 ", language.English, "01 Jan 2022"},
		{"2022-02-01", language.French, "01 févr. 2022"},
		{"2022-08-31", language.MustParse("fr-CA"), "31 août 2022"},
		{"2022-05-01", language.Japanese, "01 May 2022"},
		{"2022-05-01", language.Und, "01 May 2022"},
		{"not-a-date", language.English, InvalidDate},
		{"", language.English, InvalidDate},
		{"2022-13-01", language.English, InvalidDate},
		{"", language.French, InvalidDate},
	}
	for _, c := range cases {
		got := FormatDate(c.in, c.tag)
		if got != c.want {
			t.Errorf("FormatDate(%q, %s) = %q, want %q", c.in, c.tag, got, c.want)
		}
	}
}

func TestStars(t *testing.T) {
	cases := []struct {
		in   cv.Proficiency
		want int
	}{
		{cv.Beginner, 1},
		{cv.Intermediate, 3},
		{cv.Advanced, 5},
		{"", 0},
		{"Expert", 0},
	}
	for _, c := range cases {
		if got := Stars(c.in); got != c.want {
			t.Errorf("Stars(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{Desktop, Narrow} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseMode("tablet"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("unexpected error %v", err)
	}
}

// texts returns the text of all text nodes in the tree, in painting order.
func texts(tree *visual.Tree) []string {
	var res []string
	visual.Walk(tree.Root, func(n visual.Node) error {
		if t, ok := n.(*visual.Text); ok {
			res = append(res, t.Text)
		}
		return nil
	})
	return res
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if strings.Contains(x, s) {
			return true
		}
	}
	return false
}

func renderAll(t *testing.T, rec *cv.Record, opt *Options) []*visual.Tree {
	t.Helper()
	pages, err := layout.Paginate(rec.Experiences, rec.Educations, layout.DefaultItemsPerPage)
	if err != nil {
		t.Fatal(err)
	}
	pal, err := theme.Lookup("dracula")
	if err != nil {
		t.Fatal(err)
	}
	var res []*visual.Tree
	for _, page := range pages {
		o := *opt
		o.PageCount = len(pages)
		tree, err := RenderPage(page, rec, pal, &o)
		if err != nil {
			t.Fatal(err)
		}
		if tree.Page != page.Index {
			t.Errorf("tree for page %d has index %d", page.Index, tree.Page)
		}
		res = append(res, tree)
	}
	return res
}

func TestPresetWithinCanvas(t *testing.T) {
	rec := cv.Preset()
	for _, mode := range []Mode{Desktop, Narrow} {
		trees := renderAll(t, rec, &Options{Mode: mode})
		w, h := mode.Size()
		for _, tree := range trees {
			if tree.Width != w || tree.Height != h {
				t.Errorf("%s: canvas %gx%g", mode, tree.Width, tree.Height)
			}
			visual.Walk(tree.Root, func(n visual.Node) error {
				b := n.Bounds()
				if b.LLx < -1e-6 || b.URx > w+1e-6 {
					t.Errorf("%s page %d: %T too wide: %v", mode, tree.Page, n, b)
				}
				// in narrow mode, long text may run off the bottom
				if mode == Desktop && (b.LLy < -1e-6 || b.URy > h+1e-6) {
					t.Errorf("%s page %d: %T outside canvas: %v", mode, tree.Page, n, b)
				}
				return nil
			})
		}
	}
}

func TestPageContents(t *testing.T) {
	rec := cv.Preset()
	rec.Experiences = nil
	for i := range 4 {
		rec.Experiences = append(rec.Experiences, cv.Experience{
			JobTitle:    "Job " + string(rune('A'+i)),
			CompanyName: "Company",
			StartDate:   "2020-01-01",
			EndDate:     "2021-06-30",
		})
	}

	trees := renderAll(t, rec, &Options{Mode: Desktop})
	if len(trees) != 3 {
		t.Fatalf("got %d pages, want 3", len(trees))
	}

	first := texts(trees[0])
	for _, s := range []string{"JOHN DOE", "JOB A", "JOB C", "01 Jan 2020 to 30 Jun 2021", "EXPERIENCE"} {
		if !contains(first, s) {
			t.Errorf("page 0 is missing %q", s)
		}
	}
	if contains(first, "JOB D") {
		t.Error("page 0 shows an entry of page 1")
	}

	second := texts(trees[1])
	if !contains(second, "JOB D") || !contains(second, "Page 2 / 3") {
		t.Errorf("unexpected page 1: %q", second)
	}

	third := texts(trees[2])
	if !contains(third, "EDUCATION") || contains(third, "EXPERIENCE") {
		t.Errorf("unexpected page 2: %q", third)
	}
}

func TestLongLabels(t *testing.T) {
	long := strings.Repeat("Verylongword", 30)
	rec := cv.Preset()
	rec.Personal.FullName = long + " " + long
	rec.Skills = []cv.Skill{{Name: long}, {Name: "Go"}}
	rec.Experiences = nil
	for range 4 {
		rec.Experiences = append(rec.Experiences, cv.Experience{
			JobTitle:    "Editor",
			CompanyName: long,
			StartDate:   "2020-01-01",
		})
	}

	for _, mode := range []Mode{Desktop, Narrow} {
		trees := renderAll(t, rec, &Options{Mode: mode})
		if len(trees) < 2 {
			t.Fatalf("%s: got %d pages", mode, len(trees))
		}
		w, _ := mode.Size()
		for _, tree := range trees {
			visual.Walk(tree.Root, func(n visual.Node) error {
				if b := n.Bounds(); b.URx > w+1e-6 {
					t.Errorf("%s page %d: %T too wide: %v", mode, tree.Page, n, b)
				}
				return nil
			})
		}
		if !contains(texts(trees[0]), "…") {
			t.Errorf("%s: long labels were not shortened", mode)
		}
		if !contains(texts(trees[1]), "VERYLONGWORD") {
			t.Errorf("%s: running header lost the name", mode)
		}
	}
}

func TestFrenchPage(t *testing.T) {
	rec := cv.Preset()
	rec.Experiences = []cv.Experience{{JobTitle: "Chef", StartDate: "2022-01-01", EndDate: "bientôt"}}
	rec.Educations = nil
	trees := renderAll(t, rec, &Options{Locale: language.French})
	got := texts(trees[0])
	if !contains(got, "01 janv. 2022 au Invalid Date") {
		t.Errorf("date range missing: %q", got)
	}
	if !contains(got, "EXPÉRIENCES") {
		t.Errorf("heading missing: %q", got)
	}
}

func TestEmptyRecord(t *testing.T) {
	rec := &cv.Record{}
	for _, mode := range []Mode{Desktop, Narrow} {
		trees := renderAll(t, rec, &Options{Mode: mode})
		if len(trees) != 1 {
			t.Fatalf("got %d pages", len(trees))
		}
		if contains(texts(trees[0]), "EXPERIENCE") {
			t.Error("empty record shows an experience section")
		}
	}
}

func TestContactIconsOnlyForPresentFields(t *testing.T) {
	rec := &cv.Record{Personal: cv.PersonalDetails{Email: "a@example.com"}}
	page := &layout.Page{First: true}
	tree, err := RenderPage(page, rec, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	got := texts(tree)
	if d := cmp.Diff([]string{"CONTACT", "a@example.com"}, got); d != "" {
		t.Error(d)
	}
}

func TestPhoto(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 40, 20))
	for x := range 40 {
		for y := range 20 {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, A: 255})
		}
	}

	rec := cv.Preset()
	pages, err := layout.Paginate(rec.Experiences, rec.Educations, 1)
	if err != nil {
		t.Fatal(err)
	}
	for _, page := range pages {
		tree, err := RenderPage(page, rec, nil, &Options{Photo: img})
		if err != nil {
			t.Fatal(err)
		}
		var images []*visual.Image
		visual.Walk(tree.Root, func(n visual.Node) error {
			if im, ok := n.(*visual.Image); ok {
				images = append(images, im)
			}
			return nil
		})
		if !page.First {
			if len(images) != 0 {
				t.Errorf("page %d shows the photo", page.Index)
			}
			continue
		}
		if len(images) != 1 {
			t.Fatalf("got %d images on the first page", len(images))
		}
		im := images[0]
		if im.Src != img || im.Clip != visual.ClipCircle || im.W != im.H {
			t.Errorf("unexpected image node %+v", im)
		}
	}
}

func TestRenderErrors(t *testing.T) {
	rec := cv.Preset()
	if _, err := RenderPage(nil, rec, nil, nil); err == nil {
		t.Error("missing page accepted")
	}
	if _, err := RenderPage(&layout.Page{First: true}, nil, nil, nil); err == nil {
		t.Error("missing record accepted")
	}
	_, err := RenderPage(&layout.Page{First: true}, rec, nil, &Options{Mode: Mode(7)})
	if !errors.Is(err, ErrUnknownMode) {
		t.Errorf("unexpected error %v", err)
	}
}

func TestDeterministic(t *testing.T) {
	rec := cv.Preset()
	page := &layout.Page{First: true, Experiences: rec.Experiences}
	a, err := RenderPage(page, rec, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := RenderPage(page, rec, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(a, b); d != "" {
		t.Error(d)
	}
}
