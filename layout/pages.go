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

// Package layout distributes the entries of a résumé over virtual pages.
package layout

import (
	"errors"
	"strconv"

	"seehuhn.de/go/cv"
)

// DefaultItemsPerPage is the number of experience or education entries
// which fit on one virtual page.
const DefaultItemsPerPage = 3

// Page describes the contents of one virtual page.
type Page struct {
	// Index is the 0-based position of the page in the document.
	Index int

	// First is true for the page which carries the personal details
	// header and the photo.  This is always page 0.
	First bool

	Experiences []cv.Experience
	Educations  []cv.Education
}

// IsEmpty reports whether the page contains neither experience nor
// education entries.
func (p *Page) IsEmpty() bool {
	return len(p.Experiences) == 0 && len(p.Educations) == 0
}

// ErrInvalidConfiguration is matched by all errors which are caused by
// invalid pagination parameters.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ConfigError is returned by [Paginate] if the page capacity is not
// positive.
type ConfigError struct {
	ItemsPerPage int
}

func (err *ConfigError) Error() string {
	return "layout: items per page must be positive, got " +
		strconv.Itoa(err.ItemsPerPage)
}

// Is makes errors.Is(err, ErrInvalidConfiguration) report true.
func (err *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// Paginate breaks the experience and education lists into pages.
//
// Every page holds at most itemsPerPage entries of a single kind.  The
// experience pages come first, followed by the education pages.  The first
// page returned has First set.  If both lists are empty, a single empty
// page is returned.
//
// The entries of the returned pages share storage with exps and edus.
func Paginate(exps []cv.Experience, edus []cv.Education, itemsPerPage int) ([]*Page, error) {
	if itemsPerPage <= 0 {
		return nil, &ConfigError{ItemsPerPage: itemsPerPage}
	}

	numPages := chunks(len(exps), itemsPerPage) + chunks(len(edus), itemsPerPage)
	if numPages == 0 {
		return []*Page{{Index: 0, First: true}}, nil
	}

	res := make([]*Page, 0, numPages)
	flush := func(page *Page) {
		page.Index = len(res)
		page.First = page.Index == 0
		res = append(res, page)
	}
	for start := 0; start < len(exps); start += itemsPerPage {
		end := min(start+itemsPerPage, len(exps))
		flush(&Page{Experiences: exps[start:end:end]})
	}
	for start := 0; start < len(edus); start += itemsPerPage {
		end := min(start+itemsPerPage, len(edus))
		flush(&Page{Educations: edus[start:end:end]})
	}
	return res, nil
}

// chunks returns the number of chunks of size k needed to hold n items.
func chunks(n, k int) int {
	return (n + k - 1) / k
}
