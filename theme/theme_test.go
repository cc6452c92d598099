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

package theme

import (
	"errors"
	"slices"
	"testing"
)

func TestNames(t *testing.T) {
	names := Names()
	if len(names) <= 25 {
		t.Errorf("only %d themes", len(names))
	}
	if !slices.IsSorted(names) {
		t.Error("names are not sorted")
	}
	if !slices.Contains(names, Default) {
		t.Errorf("default theme %q missing", Default)
	}
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		p, err := Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		if p.Name != name {
			t.Errorf("got name %q, want %q", p.Name, name)
		}
		for _, c := range [...]uint8{p.Primary.A, p.Base100.A, p.BaseContent.A} {
			if c != 255 {
				t.Errorf("%s: palette colours must be opaque", name)
			}
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("no-such-theme")
	if !errors.Is(err, ErrUnknown) {
		t.Errorf("got %v, want ErrUnknown", err)
	}
}

// TestLookupReturnsCopy checks that callers cannot modify the registry.
func TestLookupReturnsCopy(t *testing.T) {
	p, err := Lookup(Default)
	if err != nil {
		t.Fatal(err)
	}
	orig := p.Primary
	p.Primary.R ^= 0xff
	q, _ := Lookup(Default)
	if q.Primary != orig {
		t.Error("registry was modified through a returned palette")
	}
}
