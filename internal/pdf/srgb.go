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
	"encoding/binary"
	"math"
	"sync"
)

// sRGBProfile returns an ICC version 2.1 display profile for the sRGB
// colour space.  The primaries are adapted to the D50 illuminant of the
// profile connection space, and the tone curves are sampled from the
// sRGB transfer function.
var sRGBProfile = sync.OnceValue(buildSRGB)

const (
	iccHeaderSize = 128
	trcSamples    = 1024
)

// D50 values for the media white point and the sRGB primaries, in the
// XYZ profile connection space.
var (
	iccWhite = [3]float64{0.9642, 1.0, 0.8249}
	iccRed   = [3]float64{0.4360747, 0.2225045, 0.0139322}
	iccGreen = [3]float64{0.3850649, 0.7168786, 0.0971045}
	iccBlue  = [3]float64{0.1430804, 0.0606169, 0.7141733}
)

type iccTag struct {
	sig  string
	data []byte
}

func buildSRGB() []byte {
	trc := curveTag()
	tags := []iccTag{
		{"desc", descTag("sRGB IEC61966-2.1")},
		{"cprt", textTag("No copyright, use freely")},
		{"wtpt", xyzTag(iccWhite)},
		{"rXYZ", xyzTag(iccRed)},
		{"gXYZ", xyzTag(iccGreen)},
		{"bXYZ", xyzTag(iccBlue)},
		{"rTRC", trc},
		{"gTRC", trc},
		{"bTRC", trc},
	}

	// tag data starts after the header and the tag table
	offsets := make([]int, len(tags))
	pos := iccHeaderSize + 4 + 12*len(tags)
	for i, tag := range tags {
		if i > 0 && bytes.Equal(tag.data, tags[i-1].data) {
			offsets[i] = offsets[i-1]
			continue
		}
		offsets[i] = pos
		pos += align4(len(tag.data))
	}
	size := pos

	buf := make([]byte, 0, size)
	be := binary.BigEndian

	buf = be.AppendUint32(buf, uint32(size))
	buf = be.AppendUint32(buf, 0) // preferred CMM
	buf = be.AppendUint32(buf, 0x02100000)
	buf = append(buf, "mntr"...)
	buf = append(buf, "RGB "...)
	buf = append(buf, "XYZ "...)
	for _, v := range []uint16{2026, 1, 1, 0, 0, 0} {
		buf = be.AppendUint16(buf, v)
	}
	buf = append(buf, "acsp"...)
	buf = append(buf, make([]byte, 64-len(buf))...) // platform up to attributes
	buf = be.AppendUint32(buf, 0)                   // perceptual rendering intent
	buf = appendXYZ(buf, iccWhite)
	buf = append(buf, make([]byte, iccHeaderSize-len(buf))...)

	buf = be.AppendUint32(buf, uint32(len(tags)))
	for i, tag := range tags {
		buf = append(buf, tag.sig...)
		buf = be.AppendUint32(buf, uint32(offsets[i]))
		buf = be.AppendUint32(buf, uint32(len(tag.data)))
	}
	for i, tag := range tags {
		if len(buf) != offsets[i] {
			continue
		}
		buf = append(buf, tag.data...)
		buf = append(buf, make([]byte, align4(len(tag.data))-len(tag.data))...)
	}
	return buf
}

func align4(n int) int {
	return (n + 3) &^ 3
}

func s15Fixed16(x float64) uint32 {
	return uint32(int32(math.Round(x * 65536)))
}

func appendXYZ(buf []byte, v [3]float64) []byte {
	for _, x := range v {
		buf = binary.BigEndian.AppendUint32(buf, s15Fixed16(x))
	}
	return buf
}

func xyzTag(v [3]float64) []byte {
	buf := append([]byte("XYZ "), 0, 0, 0, 0)
	return appendXYZ(buf, v)
}

func textTag(s string) []byte {
	buf := append([]byte("text"), 0, 0, 0, 0)
	buf = append(buf, s...)
	return append(buf, 0)
}

// descTag returns a textDescriptionType with an empty Unicode and
// ScriptCode part.
func descTag(s string) []byte {
	be := binary.BigEndian
	buf := append([]byte("desc"), 0, 0, 0, 0)
	buf = be.AppendUint32(buf, uint32(len(s)+1))
	buf = append(buf, s...)
	buf = append(buf, 0)
	buf = be.AppendUint32(buf, 0) // Unicode language code
	buf = be.AppendUint32(buf, 0) // Unicode count
	buf = be.AppendUint16(buf, 0) // ScriptCode code
	buf = append(buf, 0)          // ScriptCode count
	return append(buf, make([]byte, 67)...)
}

func curveTag() []byte {
	be := binary.BigEndian
	buf := append([]byte("curv"), 0, 0, 0, 0)
	buf = be.AppendUint32(buf, trcSamples)
	for i := range trcSamples {
		y := sRGBToLinear(float64(i) / (trcSamples - 1))
		buf = be.AppendUint16(buf, uint16(math.Round(y*65535)))
	}
	return buf
}

// sRGBToLinear is the sRGB transfer function from IEC 61966-2-1.
func sRGBToLinear(x float64) float64 {
	if x <= 0.04045 {
		return x / 12.92
	}
	return math.Pow((x+0.055)/1.055, 2.4)
}
