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

package pdf

import (
	"bytes"
	"fmt"
	"time"

	"golang.org/x/text/language"

	"seehuhn.de/go/icc"
	"seehuhn.de/go/xmp"
)

// Metadata describes a document.
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string // the application which created the content
	Producer string // the application which wrote the PDF file
	Lang     language.Tag
	Created  time.Time
}

// WriteInfo writes the document information dictionary.
func (pdf *Writer) WriteInfo(m *Metadata) (*Reference, error) {
	info := Dict{}
	set := func(key Name, val string) {
		if val != "" {
			info[key] = TextString(val)
		}
	}
	set("Title", m.Title)
	set("Author", m.Author)
	set("Subject", m.Subject)
	set("Keywords", m.Keywords)
	set("Creator", m.Creator)
	set("Producer", m.Producer)
	if !m.Created.IsZero() {
		info["CreationDate"] = Date(m.Created)
		info["ModDate"] = Date(m.Created)
	}
	return pdf.WriteIndirect(info, nil)
}

// pdfNamespace is the XMP namespace for PDF properties.
type pdfNamespace struct {
	_        xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_        xmp.Prefix    `xmp:"pdf"`
	Keywords xmp.Text
	Producer xmp.AgentName
}

// WriteXMP writes an XMP metadata stream which repeats the information
// from m.  The stream is not compressed, so that it can be found by tools
// which do not understand PDF.
func (pdf *Writer) WriteXMP(m *Metadata) (*Reference, error) {
	xDefault := language.MustParse("x-default")

	dc := &xmp.DublinCore{}
	if m.Title != "" {
		dc.Title.Set(xDefault, m.Title)
		if m.Lang != language.Und {
			dc.Title.Set(m.Lang, m.Title)
		}
	}
	if m.Author != "" {
		dc.Creator.Append(xmp.NewProperName(m.Author))
	}
	if m.Subject != "" {
		dc.Description.Set(xDefault, m.Subject)
	}

	basic := &xmp.Basic{}
	if !m.Created.IsZero() {
		basic.CreateDate = xmp.NewDate(m.Created)
		basic.ModifyDate = xmp.NewDate(m.Created)
	}

	ns := &pdfNamespace{}
	if m.Keywords != "" {
		ns.Keywords = xmp.NewText(m.Keywords)
	}
	if m.Producer != "" {
		ns.Producer = xmp.NewAgentName(m.Producer)
	}

	packet := xmp.NewPacket()
	packet.Set(dc, basic, ns)

	buf := &bytes.Buffer{}
	err := packet.Write(buf, &xmp.PacketOptions{Pretty: true})
	if err != nil {
		return nil, fmt.Errorf("pdf: XMP metadata: %w", err)
	}

	stm := &Stream{
		Dict: Dict{
			"Type":    Name("Metadata"),
			"Subtype": Name("XML"),
		},
		Data: buf.Bytes(),
	}
	return pdf.WriteIndirect(stm, nil)
}

// OutputIntentID is the output condition identifier used with the sRGB
// profile.
const OutputIntentID = "sRGB IEC61966-2.1"

// WriteSRGB writes the sRGB ICC profile as a stream and returns the
// reference to the stream, together with an ICCBased colour space which
// uses the profile.
func (pdf *Writer) WriteSRGB() (*Reference, Array, error) {
	profile := sRGBProfile()
	p, err := icc.Decode(profile)
	if err != nil {
		return nil, nil, fmt.Errorf("pdf: sRGB profile: %w", err)
	}
	if p.ColorSpace != icc.RGBSpace {
		return nil, nil, fmt.Errorf("pdf: sRGB profile has colour space %v", p.ColorSpace)
	}

	dict := Dict{
		"N":         Integer(p.ColorSpace.NumComponents()),
		"Alternate": Name("DeviceRGB"),
	}
	ref, err := pdf.WriteCompressed(dict, profile, nil)
	if err != nil {
		return nil, nil, err
	}
	return ref, Array{Name("ICCBased"), ref}, nil
}

// OutputIntent returns an output intent dictionary for the given ICC
// profile stream.
func OutputIntent(profile *Reference) Dict {
	return Dict{
		"Type":                      Name("OutputIntent"),
		"S":                         Name("GTS_PDFA1"),
		"OutputConditionIdentifier": TextString(OutputIntentID),
		"Info":                      TextString(OutputIntentID),
		"DestOutputProfile":         profile,
	}
}
