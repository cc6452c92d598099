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
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
)

// Encoding selects how image data is compressed.
type Encoding int

// These are the supported image encodings.
const (
	// Lossless stores the pixels using the FlateDecode filter with PNG
	// predictors.
	Lossless Encoding = iota

	// JPEG stores the pixels using lossy JPEG compression.
	JPEG
)

func (e Encoding) String() string {
	switch e {
	case Lossless:
		return "lossless"
	case JPEG:
		return "jpeg"
	default:
		return fmt.Sprintf("pdf.Encoding(%d)", int(e))
	}
}

// ImageOptions control how an image is embedded.
type ImageOptions struct {
	Encoding Encoding

	// Quality is the JPEG quality, from 1 to 100.
	// If this is zero, jpeg.DefaultQuality is used.
	Quality int

	// ColorSpace is the colour space of the image.
	// If this is nil, /DeviceRGB is used.
	ColorSpace Object
}

// EmbedImage writes src as an image XObject.  Transparency is ignored,
// images should be opaque.
func (pdf *Writer) EmbedImage(src image.Image, opt *ImageOptions) (*Reference, error) {
	if opt == nil {
		opt = &ImageOptions{}
	}
	if src == nil || src.Bounds().Empty() {
		return nil, errors.New("pdf: empty image")
	}
	img := toRGBA(src)
	b := img.Bounds()

	var cs Object = Name("DeviceRGB")
	if opt.ColorSpace != nil {
		cs = opt.ColorSpace
	}
	dict := Dict{
		"Type":             Name("XObject"),
		"Subtype":          Name("Image"),
		"Width":            Integer(b.Dx()),
		"Height":           Integer(b.Dy()),
		"ColorSpace":       cs,
		"BitsPerComponent": Integer(8),
	}

	switch opt.Encoding {
	case Lossless:
		dict["DecodeParms"] = Dict{
			"Predictor": Integer(15),
			"Colors":    Integer(3),
			"Columns":   Integer(b.Dx()),
		}
		return pdf.WriteCompressed(dict, pngRows(img), nil)

	case JPEG:
		quality := opt.Quality
		if quality == 0 {
			quality = jpeg.DefaultQuality
		}
		buf := &bytes.Buffer{}
		err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality})
		if err != nil {
			return nil, err
		}
		dict["Filter"] = Name("DCTDecode")
		return pdf.WriteIndirect(&Stream{Dict: dict, Data: buf.Bytes()}, nil)

	default:
		return nil, fmt.Errorf("pdf: unsupported image encoding %d", int(opt.Encoding))
	}
}

func toRGBA(src image.Image) *image.RGBA {
	if img, ok := src.(*image.RGBA); ok {
		return img
	}
	b := src.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Bounds(), src, b.Min, draw.Src)
	return img
}

// pngRows converts the image to RGB samples.  Each row is preceded by the
// PNG "Up" filter type and stores the difference to the previous row.
func pngRows(img *image.RGBA) []byte {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	rowLen := 3 * w

	res := make([]byte, 0, h*(rowLen+1))
	prev := make([]byte, rowLen)
	cur := make([]byte, rowLen)
	for y := 0; y < h; y++ {
		pix := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
		for x := 0; x < w; x++ {
			cur[3*x] = pix[4*x]
			cur[3*x+1] = pix[4*x+1]
			cur[3*x+2] = pix[4*x+2]
		}
		res = append(res, 2)
		for i, c := range cur {
			res = append(res, c-prev[i])
		}
		prev, cur = cur, prev
	}
	return res
}
