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

package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/cv"
)

func TestReadRecord(t *testing.T) {
	rec, err := readRecord("")
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(cv.Preset(), rec); d != "" {
		t.Errorf("preset differs (-want +got):\n%s", d)
	}

	name := filepath.Join(t.TempDir(), "jane.yaml")
	data := `personal:
  full_name: Jane Roe
  photo: me.jpg
experiences:
  - job_title: Editor
    company_name: Daily News
    start_date: "2019-03-01"
languages:
  - language: German
    proficiency: Intermediate
`
	if err := os.WriteFile(name, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	rec, err = readRecord(name)
	if err != nil {
		t.Fatal(err)
	}
	want := &cv.Record{
		Personal: cv.PersonalDetails{
			FullName: "Jane Roe",
			Photo:    cv.PhotoRef(filepath.Join(filepath.Dir(name), "me.jpg")),
		},
		Experiences: []cv.Experience{
			{JobTitle: "Editor", CompanyName: "Daily News", StartDate: "2019-03-01"},
		},
		Languages: []cv.Language{{Language: "German", Proficiency: cv.Intermediate}},
	}
	if d := cmp.Diff(want, rec); d != "" {
		t.Errorf("record differs (-want +got):\n%s", d)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "out.pdf")

	boom := errors.New("boom")
	err := writeFile(name, func(w io.Writer) error {
		io.WriteString(w, "partial")
		return boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("got %v", err)
	}
	if _, err := os.Stat(name); !errors.Is(err, os.ErrNotExist) {
		t.Error("output file created after failure")
	}

	err = writeFile(name, func(w io.Writer) error {
		_, err := io.WriteString(w, "%PDF-1.7")
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(name)
	if err != nil || string(got) != "%PDF-1.7" {
		t.Errorf("got %q, %v", got, err)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %d entries", len(entries))
	}
}
