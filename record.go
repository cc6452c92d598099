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

package cv

// PhotoRef refers to the photo shown on the first page of a résumé.
// This is either the name of a local file, an http or https URL,
// or the empty string if no photo is used.
type PhotoRef string

// PersonalDetails contains the header information of a résumé.
// None of the fields is required; empty fields are simply not shown.
type PersonalDetails struct {
	FullName    string   `yaml:"full_name"`
	Email       string   `yaml:"email"`
	Phone       string   `yaml:"phone"`
	Address     string   `yaml:"address"`
	PostSeeking string   `yaml:"post_seeking"` // desired role
	Description string   `yaml:"description"`
	Photo       PhotoRef `yaml:"photo"`
}

// Experience is one entry in the list of previous positions.
// StartDate and EndDate are date strings, normally in the form 2006-01-02.
type Experience struct {
	JobTitle    string `yaml:"job_title"`
	CompanyName string `yaml:"company_name"`
	StartDate   string `yaml:"start_date"`
	EndDate     string `yaml:"end_date"`
	Description string `yaml:"description"`
}

// Education is one entry in the list of degrees.
type Education struct {
	School      string `yaml:"school"`
	Degree      string `yaml:"degree"`
	StartDate   string `yaml:"start_date"`
	EndDate     string `yaml:"end_date"`
	Description string `yaml:"description"`
}

// Skill is a short label, shown as a tag.
type Skill struct {
	Name string `yaml:"name"`
}

// Hobby is a short label, shown as a tag.
type Hobby struct {
	Name string `yaml:"name"`
}

// Proficiency describes how well a language is spoken.
// The zero value means that no proficiency has been given.
type Proficiency string

// These are the recognised proficiency levels.
const (
	Beginner     Proficiency = "Beginner"
	Intermediate Proficiency = "Intermediate"
	Advanced     Proficiency = "Advanced"
)

// Language is an entry in the list of spoken languages.
type Language struct {
	Language    string      `yaml:"language"`
	Proficiency Proficiency `yaml:"proficiency"`
}

// Record is a snapshot of all data shown on a résumé.
//
// The order of the entries in the lists is the display order.
// Records obtained from a [Store] must not be modified.
type Record struct {
	Personal    PersonalDetails `yaml:"personal"`
	Experiences []Experience    `yaml:"experiences"`
	Educations  []Education     `yaml:"educations"`
	Skills      []Skill         `yaml:"skills"`
	Languages   []Language      `yaml:"languages"`
	Hobbies     []Hobby         `yaml:"hobbies"`
}

// Clone returns a deep copy of r.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	return &Record{
		Personal:    r.Personal,
		Experiences: clone(r.Experiences),
		Educations:  clone(r.Educations),
		Skills:      clone(r.Skills),
		Languages:   clone(r.Languages),
		Hobbies:     clone(r.Hobbies),
	}
}

// clone returns a copy of s with its own backing array.
// Nil slices stay nil.
func clone[T any](s []T) []T {
	if s == nil {
		return nil
	}
	res := make([]T, len(s))
	copy(res, s)
	return res
}

// appendCopy returns a new slice containing the elements of s followed by
// x.  The backing array of s is never written to.
func appendCopy[T any](s []T, x T) []T {
	res := make([]T, len(s), len(s)+1)
	copy(res, s)
	return append(res, x)
}
