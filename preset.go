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

// Preset returns the sample résumé which is shown before the user has
// entered any data.
func Preset() *Record {
	return &Record{
		Personal: PersonalDetails{
			FullName:    "John Doe",
			Email:       "johndoe@example.com",
			Phone:       "+123456789",
			Address:     "123, Avenue Example, Paris, France",
			PostSeeking: "Communications Officer",
			Description: "Lorem Ipsum is simply dummy text of the printing and typesetting industry. " +
				"Lorem Ipsum has been the industry's standard dummy text ever since the 1500s, " +
				"when an unknown printer took a galley of type and scrambled it to make a type specimen book.",
		},
		Experiences: []Experience{
			{
				JobTitle:    "Web Developer",
				CompanyName: "Tech Solutions",
				StartDate:   "2022-01-01",
				EndDate:     "2023-01-01",
				Description: "Development of web applications using React and Node.js.",
			},
			{
				JobTitle:    "Project Manager",
				CompanyName: "Innovatech",
				StartDate:   "2020-06-01",
				EndDate:     "2022-01-01",
				Description: "Management of technical projects, coordination of the development teams.",
			},
		},
		Educations: []Education{
			{
				School:      "Edu",
				Degree:      "Master in Computer Science",
				StartDate:   "2015-09-01",
				EndDate:     "2018-06-01",
				Description: "Specialisation in web development and databases.",
			},
		},
		Skills: []Skill{
			{Name: "React.js"},
			{Name: "Node.js"},
		},
		Languages: []Language{
			{Language: "English", Proficiency: Advanced},
			{Language: "French", Proficiency: Beginner},
		},
		Hobbies: []Hobby{
			{Name: "Travelling"},
			{Name: "Reading books"},
		},
	}
}
