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

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestSnapshotIsolation checks that snapshots are not affected by later
// modifications of the store.
func TestSnapshotIsolation(t *testing.T) {
	s := NewStore(nil)
	s.AddExperience(Experience{JobTitle: "a"})
	s.AddExperience(Experience{JobTitle: "b"})

	before := s.Snapshot()
	want := before.Clone()

	s.AddExperience(Experience{JobTitle: "c"})
	s.AddSkill(Skill{Name: "Go"})
	s.SetPhoto("me.jpg")
	s.ResetEducations()

	if d := cmp.Diff(want, before); d != "" {
		t.Errorf("snapshot changed (-want +got):\n%s", d)
	}

	after := s.Snapshot()
	if len(after.Experiences) != 3 {
		t.Errorf("got %d experiences, want 3", len(after.Experiences))
	}
	if after.Personal.Photo != "me.jpg" {
		t.Errorf("photo = %q, want %q", after.Personal.Photo, "me.jpg")
	}
}

// TestAppendDoesNotAlias checks that two snapshots taken from the same
// prefix do not share appended elements.
func TestAppendDoesNotAlias(t *testing.T) {
	s := NewStore(nil)
	s.AddHobby(Hobby{Name: "x"})
	s1 := s.Snapshot()
	s.AddHobby(Hobby{Name: "y"})
	s.ResetHobbies()
	s.AddHobby(Hobby{Name: "z"})
	s2 := s.Snapshot()

	if d := cmp.Diff([]Hobby{{Name: "x"}}, s1.Hobbies); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff([]Hobby{{Name: "z"}}, s2.Hobbies); d != "" {
		t.Error(d)
	}
}

func TestPreservesInsertionOrder(t *testing.T) {
	s := NewStore(nil)
	for _, title := range []string{"2020", "2015", "2023"} {
		s.AddExperience(Experience{JobTitle: title})
	}
	var got []string
	for _, e := range s.Snapshot().Experiences {
		got = append(got, e.JobTitle)
	}
	if d := cmp.Diff([]string{"2020", "2015", "2023"}, got); d != "" {
		t.Error(d)
	}
}

func TestReset(t *testing.T) {
	preset := Preset()
	s := NewStore(preset)

	s.ResetPersonal()
	s.ResetExperiences()
	s.ResetEducations()
	s.ResetSkills()
	s.ResetLanguages()
	s.ResetHobbies()
	if d := cmp.Diff(&Record{}, s.Snapshot()); d != "" {
		t.Errorf("store not empty after reset:\n%s", d)
	}

	// The preset must not have been modified through the store.
	if d := cmp.Diff(Preset(), preset); d != "" {
		t.Errorf("preset modified:\n%s", d)
	}

	s.Reset(preset)
	if d := cmp.Diff(preset, s.Snapshot()); d != "" {
		t.Error(d)
	}
}

func TestConcurrentUse(t *testing.T) {
	s := NewStore(nil)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.AddSkill(Skill{Name: "s"})
				_ = s.Snapshot()
			}
		}()
	}
	wg.Wait()

	if n := len(s.Snapshot().Skills); n != 800 {
		t.Errorf("got %d skills, want 800", n)
	}
}
