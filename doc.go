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

// Package cv holds the data of a résumé.
//
// A [Record] is an immutable snapshot of everything which appears on a
// résumé: the personal details, ordered lists of experience and education
// entries, skills, languages and hobbies.  Records are produced by a [Store],
// which the form layer of an application mutates through append-only "add"
// operations and wholesale "reset" operations:
//
//	s := cv.NewStore(cv.Preset())
//	s.AddExperience(cv.Experience{JobTitle: "Engineer", CompanyName: "ACME"})
//	rec := s.Snapshot()
//
// The snapshot rec never changes, even if s is modified afterwards.  It can
// be passed to the packages [seehuhn.de/go/cv/layout],
// [seehuhn.de/go/cv/render] and [seehuhn.de/go/cv/export] to produce a
// PDF file.
package cv
