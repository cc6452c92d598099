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

import "sync"

// Store holds the current state of a résumé being edited.
//
// All modifications are copy-on-write: a [Record] returned by
// [Store.Snapshot] is never affected by later calls.
// A Store is safe for concurrent use.
type Store struct {
	mu  sync.RWMutex
	rec Record
}

// NewStore returns a store initialised with a copy of initial.
// If initial is nil, the store starts empty.
func NewStore(initial *Record) *Store {
	s := &Store{}
	if initial != nil {
		s.rec = *initial.Clone()
	}
	return s
}

// Snapshot returns the current contents of the store.
func (s *Store) Snapshot() *Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// The slices are shared with the store.  This is safe, because the
	// store never writes to a backing array after it has been published.
	rec := s.rec
	return &rec
}

// SetPersonal replaces the personal details.
func (s *Store) SetPersonal(p PersonalDetails) {
	s.mu.Lock()
	s.rec.Personal = p
	s.mu.Unlock()
}

// SetPhoto sets the photo reference.  Use the empty string to remove the
// photo.
func (s *Store) SetPhoto(ref PhotoRef) {
	s.mu.Lock()
	s.rec.Personal.Photo = ref
	s.mu.Unlock()
}

// AddExperience appends an experience entry.
func (s *Store) AddExperience(e Experience) {
	s.mu.Lock()
	s.rec.Experiences = appendCopy(s.rec.Experiences, e)
	s.mu.Unlock()
}

// AddEducation appends an education entry.
func (s *Store) AddEducation(e Education) {
	s.mu.Lock()
	s.rec.Educations = appendCopy(s.rec.Educations, e)
	s.mu.Unlock()
}

// AddSkill appends a skill.
func (s *Store) AddSkill(sk Skill) {
	s.mu.Lock()
	s.rec.Skills = appendCopy(s.rec.Skills, sk)
	s.mu.Unlock()
}

// AddLanguage appends a language.
func (s *Store) AddLanguage(l Language) {
	s.mu.Lock()
	s.rec.Languages = appendCopy(s.rec.Languages, l)
	s.mu.Unlock()
}

// AddHobby appends a hobby.
func (s *Store) AddHobby(h Hobby) {
	s.mu.Lock()
	s.rec.Hobbies = appendCopy(s.rec.Hobbies, h)
	s.mu.Unlock()
}

// ResetPersonal clears all personal details, including the photo.
func (s *Store) ResetPersonal() {
	s.SetPersonal(PersonalDetails{})
}

// ResetExperiences removes all experience entries.
func (s *Store) ResetExperiences() {
	s.mu.Lock()
	s.rec.Experiences = nil
	s.mu.Unlock()
}

// ResetEducations removes all education entries.
func (s *Store) ResetEducations() {
	s.mu.Lock()
	s.rec.Educations = nil
	s.mu.Unlock()
}

// ResetSkills removes all skills.
func (s *Store) ResetSkills() {
	s.mu.Lock()
	s.rec.Skills = nil
	s.mu.Unlock()
}

// ResetLanguages removes all languages.
func (s *Store) ResetLanguages() {
	s.mu.Lock()
	s.rec.Languages = nil
	s.mu.Unlock()
}

// ResetHobbies removes all hobbies.
func (s *Store) ResetHobbies() {
	s.mu.Lock()
	s.rec.Hobbies = nil
	s.mu.Unlock()
}

// Reset replaces the whole contents of the store by a copy of rec.
// If rec is nil, the store is emptied.
func (s *Store) Reset(rec *Record) {
	var r Record
	if rec != nil {
		r = *rec.Clone()
	}
	s.mu.Lock()
	s.rec = r
	s.mu.Unlock()
}
