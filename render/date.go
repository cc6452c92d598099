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

package render

import (
	"strings"
	"time"

	"golang.org/x/text/language"
)

// InvalidDate is shown in place of dates which cannot be parsed.
const InvalidDate = "Invalid Date"

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01",
	"2006",
}

// words holds the locale dependent strings of a page.
type words struct {
	months   [12]string
	to       string // joins the two ends of a date range
	contact  string
	skills   string
	langs    string
	hobbies  string
	exp      string
	edu      string
	page     string
	language language.Tag
}

var english = &words{
	months: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	to:       "to",
	contact:  "Contact",
	skills:   "Skills",
	langs:    "Languages",
	hobbies:  "Hobbies",
	exp:      "Experience",
	edu:      "Education",
	page:     "Page",
	language: language.English,
}

var french = &words{
	months: [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin",
		"juil.", "août", "sept.", "oct.", "nov.", "déc."},
	to:       "au",
	contact:  "Contact",
	skills:   "Compétences",
	langs:    "Langues",
	hobbies:  "Loisirs",
	exp:      "Expériences",
	edu:      "Formations",
	page:     "Page",
	language: language.French,
}

var (
	supported = []*words{english, french}
	matcher   = language.NewMatcher([]language.Tag{language.English, language.French})
)

// wordsFor returns the strings for the supported locale which best matches
// tag.  Unknown locales fall back to English.
func wordsFor(tag language.Tag) *words {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return english
	}
	return supported[idx]
}

// FormatDate formats a date as "DD Mon YYYY", using the month
// abbreviations of the given locale.  Accepted inputs are full dates
// (2006-01-02), months (2006-01), years (2006) and RFC 3339 timestamps;
// missing parts default to the first month or day.  For all other
// strings, including the empty string, [InvalidDate] is returned.
func FormatDate(s string, tag language.Tag) string {
	t, ok := parseDate(s)
	if !ok {
		return InvalidDate
	}
	return wordsFor(tag).date(t)
}

func (w *words) date(t time.Time) string {
	return t.Format("02") + " " + w.months[t.Month()-1] + " " + t.Format("2006")
}

// dateRange formats the period from start to end.
func (w *words) dateRange(start, end string) string {
	return w.format(start) + " " + w.to + " " + w.format(end)
}

func (w *words) format(s string) string {
	t, ok := parseDate(s)
	if !ok {
		return InvalidDate
	}
	return w.date(t)
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
