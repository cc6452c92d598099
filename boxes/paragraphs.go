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

package boxes

import (
	"image/color"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"seehuhn.de/go/cv/font/gofont"
)

// TextStyle describes how a paragraph is typeset.
type TextStyle struct {
	Font  gofont.Font
	Size  float64
	Color color.NRGBA

	// Leading is the distance between consecutive baselines.
	// If zero, 1.4 times the font size is used.
	Leading float64
}

func (s *TextStyle) leading() float64 {
	if s.Leading > 0 {
		return s.Leading
	}
	return 1.4 * s.Size
}

// Paragraph breaks text into lines of at most width units and returns the
// lines stacked in a box.  The baseline of the result is the baseline of
// the first line.
//
// Lines are filled greedily.  Words wider than a full line are broken
// between characters.  Explicit newlines in the text start a new line.
func Paragraph(style *TextStyle, width float64, text string) Box {
	lines := BreakLines(style.Font.MustFace(), style.Size, width, text)

	p := &Parameters{BaseLineSkip: style.leading()}
	boxes := make([]Box, len(lines))
	for i, line := range lines {
		boxes[i] = Text(style.Font, style.Size, style.Color, line)
	}
	if len(boxes) == 0 {
		return Kern(0)
	}
	return p.VTop(boxes...)
}

// ellipsis is appended to text shortened by [TextFit].
const ellipsis = "…"

// TextFit returns a single line of text which is at most width units wide.
// Longer text is cut between characters and ends in an ellipsis.  If not
// even the ellipsis fits, the box is empty.
func TextFit(F gofont.Font, size float64, col color.NRGBA, width float64, text string) *TextBox {
	face := F.MustFace()
	text = norm.NFC.String(text)
	if face.Width(text, size) <= width {
		return Text(F, size, col, text)
	}

	avail := width - face.Width(ellipsis, size)
	if avail < 0 {
		return Text(F, size, col, "")
	}
	head := ""
	if avail > 0 && text != "" {
		head, _ = splitWord(face, size, avail, text)
		for head != "" && face.Width(head, size) > avail {
			_, l := utf8.DecodeLastRuneInString(head)
			head = head[:len(head)-l]
		}
	}
	return Text(F, size, col, strings.TrimRight(head, " ")+ellipsis)
}

// BreakLines splits text into lines which fit into the given width.
func BreakLines(face *gofont.Face, size, width float64, text string) []string {
	var res []string
	text = norm.NFC.String(text)
	space := face.Width(" ", size)
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			continue
		}

		var line strings.Builder
		lineWidth := 0.0
		flush := func() {
			if line.Len() > 0 {
				res = append(res, line.String())
				line.Reset()
				lineWidth = 0
			}
		}
		for _, word := range words {
			w := face.Width(word, size)
			if line.Len() > 0 && lineWidth+space+w <= width {
				line.WriteByte(' ')
				line.WriteString(word)
				lineWidth += space + w
				continue
			}
			flush()
			for w > width && utf8.RuneCountInString(word) > 1 {
				head, tail := splitWord(face, size, width, word)
				res = append(res, head)
				word = tail
				w = face.Width(word, size)
			}
			line.WriteString(word)
			lineWidth = w
		}
		flush()
	}
	return res
}

// splitWord returns the longest prefix of word (at least one rune) which
// fits into width, and the remainder.
func splitWord(face *gofont.Face, size, width float64, word string) (string, string) {
	gg := face.Layout(word, size)
	n := 1
	for n < len(gg) && gg[n].X+gg[n].Advance <= width {
		n++
	}
	// word is NFC normalised, so gg has one entry per rune.
	pos := 0
	for i := 0; i < n && pos < len(word); i++ {
		_, l := utf8.DecodeRuneInString(word[pos:])
		pos += l
	}
	return word[:pos], word[pos:]
}
