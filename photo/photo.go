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

// Package photo loads and decodes the photo shown on a résumé.
//
// Photos can be read from local files or, if explicitly allowed, fetched
// from http and https URLs.  JPEG, PNG, GIF, WebP and BMP images are
// supported.
package photo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register decoders
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"seehuhn.de/go/cv"
)

// DefaultMaxBytes is the size limit for photo files, if no other limit
// is set in the Loader.
const DefaultMaxBytes = 16 << 20

// DefaultMaxPixels is the limit for the number of pixels in a photo, if
// no other limit is set in the Loader.
const DefaultMaxPixels = 32 << 20

// ErrCrossOrigin is returned when a photo refers to a remote resource,
// but loading remote photos is not allowed.
var ErrCrossOrigin = errors.New("cross-origin photo not allowed")

// ErrTooLarge is returned for photo files above the size limit.
var ErrTooLarge = errors.New("photo file too large")

// ErrTooManyPixels is returned for photos whose dimensions exceed the
// pixel limit.  This is checked before the image is decoded.
var ErrTooManyPixels = errors.New("photo has too many pixels")

// Loader reads photos.  The zero value reads local files only.
type Loader struct {
	// AllowRemote enables fetching photos from http and https URLs.
	AllowRemote bool

	// Client is used for remote photos.  If nil, http.DefaultClient is
	// used.
	Client *http.Client

	// MaxBytes limits the size of photo files.  If this is zero,
	// DefaultMaxBytes is used.
	MaxBytes int64

	// MaxPixels limits the width times the height of photos.  If this is
	// zero, DefaultMaxPixels is used.
	MaxPixels int
}

// Handle gives access to a decoded photo.  The image must not be used
// after Release has been called.
type Handle struct {
	// Image is the decoded photo.
	Image image.Image

	// Format is the name of the image format, for example "jpeg".
	Format string

	once sync.Once
}

// Release drops the reference to the decoded image.
// It is safe to call Release more than once, and on a nil Handle.
func (h *Handle) Release() {
	if h == nil {
		return
	}
	h.once.Do(func() {
		h.Image = nil
	})
}

// IsRemote reports whether ref refers to an http or https URL.
func IsRemote(ref cv.PhotoRef) bool {
	s := strings.ToLower(string(ref))
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Resolve interprets a relative file name in ref relative to dir.
// URLs, absolute file names and empty references are returned unchanged.
func Resolve(ref cv.PhotoRef, dir string) cv.PhotoRef {
	name := string(ref)
	if ref == "" || IsRemote(ref) || filepath.IsAbs(name) {
		return ref
	}
	return cv.PhotoRef(filepath.Join(dir, name))
}

// Load reads and decodes the photo ref.  If ref is empty, Load returns
// (nil, nil).
func (l *Loader) Load(ctx context.Context, ref cv.PhotoRef) (*Handle, error) {
	if ref == "" {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var data []byte
	var err error
	if IsRemote(ref) {
		if !l.AllowRemote {
			return nil, fmt.Errorf("photo %q: %w", ref, ErrCrossOrigin)
		}
		data, err = l.fetch(ctx, string(ref))
	} else {
		data, err = l.readFile(string(ref))
	}
	if err != nil {
		return nil, fmt.Errorf("photo %q: %w", ref, err)
	}

	conf, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("photo %q: %w", ref, err)
	}
	if conf.Width <= 0 || conf.Height <= 0 ||
		int64(conf.Width)*int64(conf.Height) > int64(l.maxPixels()) {
		return nil, fmt.Errorf("photo %q: %dx%d: %w",
			ref, conf.Width, conf.Height, ErrTooManyPixels)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("photo %q: %w", ref, err)
	}
	return &Handle{Image: img, Format: format}, nil
}

func (l *Loader) maxBytes() int64 {
	if l.MaxBytes > 0 {
		return l.MaxBytes
	}
	return DefaultMaxBytes
}

func (l *Loader) maxPixels() int {
	if l.MaxPixels > 0 {
		return l.MaxPixels
	}
	return DefaultMaxPixels
}

func (l *Loader) readFile(name string) ([]byte, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return l.readAll(fd)
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return l.readAll(resp.Body)
}

func (l *Loader) readAll(r io.Reader) ([]byte, error) {
	limit := l.maxBytes()
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, ErrTooLarge
	}
	return data, nil
}
