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

// Package theme provides the colour palettes which can be used to render a
// résumé.
//
// The palette names are those of the daisyUI theme collection.  Only the
// colours which are used for rendering are recorded.
package theme

import (
	"errors"
	"fmt"
	"image/color"
	"slices"

	"golang.org/x/exp/maps"
)

// Default is the name of the theme used when none is selected.
const Default = "cupcake"

// ErrUnknown is returned by [Lookup] for theme names which are not known.
var ErrUnknown = errors.New("unknown theme")

// Palette is a named set of colours.
type Palette struct {
	Name string

	Primary        color.NRGBA // accent colour: badges, stars, markers
	PrimaryContent color.NRGBA // text on Primary
	Base100        color.NRGBA // page background
	Base200        color.NRGBA // card background
	Base300        color.NRGBA // borders, unfilled stars
	BaseContent    color.NRGBA // body text
}

// Lookup returns the palette with the given name.
func Lookup(name string) (*Palette, error) {
	p, ok := palettes[name]
	if !ok {
		return nil, fmt.Errorf("theme %q: %w", name, ErrUnknown)
	}
	res := *p
	res.Name = name
	return &res, nil
}

// Names returns the names of all known themes, in alphabetical order.
func Names() []string {
	names := maps.Keys(palettes)
	slices.Sort(names)
	return names
}

func rgb(v uint32) color.NRGBA {
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

func pal(primary, primaryContent, base100, base200, base300, baseContent uint32) *Palette {
	return &Palette{
		Primary:        rgb(primary),
		PrimaryContent: rgb(primaryContent),
		Base100:        rgb(base100),
		Base200:        rgb(base200),
		Base300:        rgb(base300),
		BaseContent:    rgb(baseContent),
	}
}

var palettes = map[string]*Palette{
	"light":     pal(0x570df8, 0xe0d2fe, 0xffffff, 0xf2f2f2, 0xe5e6e6, 0x1f2937),
	"dark":      pal(0x7582ff, 0x050617, 0x1d232a, 0x191e24, 0x15191e, 0xa6adbb),
	"cupcake":   pal(0x65c3c8, 0x223d3e, 0xfaf7f5, 0xefeae6, 0xe7e2df, 0x291334),
	"bumblebee": pal(0xe0a82e, 0x120c02, 0xffffff, 0xf5f5f4, 0xe7e5e4, 0x181830),
	"emerald":   pal(0x66cc8a, 0x223d30, 0xffffff, 0xe8e8e8, 0xd1d1d1, 0x333c4d),
	"corporate": pal(0x4b6bfb, 0x03060f, 0xffffff, 0xe5e6e6, 0xd1d2d3, 0x181a2a),
	"synthwave": pal(0xe779c1, 0x130410, 0x1a103d, 0x150d31, 0x110a28, 0xf9f7fd),
	"retro":     pal(0xef9995, 0x282425, 0xece3ca, 0xe4d8b4, 0xdbca9a, 0x282425),
	"cyberpunk": pal(0xff7598, 0x160408, 0xffee00, 0xe8d800, 0xd1c300, 0x161500),
	"valentine": pal(0xe96d7b, 0x130405, 0xfae7f4, 0xefd7e6, 0xe4c7d8, 0x632c3b),
	"halloween": pal(0xf28c18, 0x140700, 0x212121, 0x1b1b1b, 0x151515, 0xd3d3d3),
	"garden":    pal(0x5c7f67, 0xe9e7e7, 0xe9e7e7, 0xd4d2d2, 0xbfbdbd, 0x100f0f),
	"forest":    pal(0x1eb854, 0x000c03, 0x171212, 0x140f0f, 0x110d0d, 0xcac9c9),
	"aqua":      pal(0x09ecf3, 0x005355, 0x345da7, 0x2f5597, 0x2a4c87, 0xc8d7f2),
	"lofi":      pal(0x0d0d0d, 0xffffff, 0xffffff, 0xf2f2f2, 0xe6e5e5, 0x000000),
	"pastel":    pal(0xd1c1d7, 0x100e11, 0xffffff, 0xf9fafb, 0xd1d5db, 0x161616),
	"fantasy":   pal(0x6e0b75, 0xe3d0e5, 0xffffff, 0xe8e8e8, 0xd1d1d1, 0x1f2937),
	"wireframe": pal(0xb8b8b8, 0x0d0d0d, 0xffffff, 0xeeeeee, 0xdddddd, 0x282828),
	"black":     pal(0x373737, 0xd7d7d7, 0x000000, 0x0d0d0d, 0x1a1919, 0xd6d6d6),
	"luxury":    pal(0xffffff, 0x161616, 0x09090b, 0x171618, 0x2e2d2f, 0xdca54c),
	"dracula":   pal(0xff79c6, 0x16050e, 0x282a36, 0x232530, 0x1f202a, 0xf8f8f2),
	"cmyk":      pal(0x45aeee, 0x020b14, 0xffffff, 0xe8e8e8, 0xd1d1d1, 0x1a1a1a),
	"autumn":    pal(0x8c0327, 0xf2d6d3, 0xf1f1f1, 0xdbdbdb, 0xc6c6c6, 0x141414),
	"business":  pal(0x1c4e80, 0xd0dbe7, 0x202020, 0x1c1c1c, 0x181818, 0xcdcdcd),
	"acid":      pal(0xff00ff, 0x160016, 0xfafafa, 0xe8e8e8, 0xd1d1d1, 0x151515),
	"lemonade":  pal(0x519903, 0xd2e8cb, 0xf8fdef, 0xe1e6d9, 0xcbd0c3, 0x151613),
	"night":     pal(0x38bdf8, 0x010d15, 0x0f172a, 0x0c1425, 0x0a1120, 0xc9cbd0),
	"coffee":    pal(0xdb924b, 0x110804, 0x20161f, 0x1c131b, 0x181017, 0x756e63),
	"winter":    pal(0x047aff, 0xd0e4ff, 0xffffff, 0xf2f7ff, 0xe3e9f4, 0x394e6a),
	"dim":       pal(0x9fe88d, 0x0a1307, 0x2a303c, 0x242933, 0x20252e, 0xb2ccd6),
	"nord":      pal(0x5e81ac, 0x03060b, 0xeceff4, 0xe5e9f0, 0xd8dee9, 0x2e3440),
	"sunset":    pal(0xff865b, 0x160603, 0x121c22, 0x0e171e, 0x09131a, 0x9fb9d0),
}
