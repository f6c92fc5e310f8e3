package models

// CourseCategory classifies a catalog course.
type CourseCategory string

const (
	CategoryCore     CourseCategory = "core"
	CategoryElective CourseCategory = "elective"
	CategoryGeneral  CourseCategory = "general"
)

// Course is a single catalog course within a major program.
type Course struct {
	ID            string         `json:"id"`
	Code          string         `json:"code"`
	Name          string         `json:"name"`
	NameAr        string         `json:"name_ar"`
	Credits       int            `json:"credits"`
	Prerequisites []string       `json:"prerequisites"`
	Category      CourseCategory `json:"category"`
	// Semester is the tier (3-8) used for bulk auto-completion of
	// major core courses. Zero for first-year groups.
	Semester int `json:"semester,omitempty"`
	// HourRequirement is a minimum of cumulative completed credit
	// hours gating registration independently of prerequisites
	// (practical training / internship courses).
	HourRequirement int `json:"hour_requirement,omitempty"`
}

// MajorProgram is the static catalog for one major: three disjoint
// course groups plus the degree credit target.
type MajorProgram struct {
	ID                     string   `json:"id"`
	Name                   string   `json:"name"`
	NameAr                 string   `json:"name_ar"`
	TotalCredits           int      `json:"total_credits"`
	UniversityRequirements []Course `json:"university_requirements"`
	SharedFirstYearCourses []Course `json:"shared_first_year_courses"`
	Courses                []Course `json:"courses"`
}

// AllCourses returns the program's courses across all three groups in
// group order.
func (p *MajorProgram) AllCourses() []Course {
	all := make([]Course, 0, len(p.UniversityRequirements)+len(p.SharedFirstYearCourses)+len(p.Courses))
	all = append(all, p.UniversityRequirements...)
	all = append(all, p.SharedFirstYearCourses...)
	all = append(all, p.Courses...)
	return all
}

// FindCourse looks a course up by id across all three groups.
func (p *MajorProgram) FindCourse(id string) (Course, bool) {
	for _, c := range p.AllCourses() {
		if c.ID == id {
			return c, true
		}
	}
	return Course{}, false
}

// CreditsFor sums the credit weights of the given course ids. Unknown
// ids contribute zero.
func (p *MajorProgram) CreditsFor(ids []string) int {
	total := 0
	for _, id := range ids {
		if c, ok := p.FindCourse(id); ok {
			total += c.Credits
		}
	}
	return total
}

// MajorRef is the lightweight catalog listing of a major.
type MajorRef struct {
	Slug   string `json:"slug"`
	Name   string `json:"name"`
	NameAr string `json:"name_ar"`
}

// College groups majors for the college selection page.
type College struct {
	Slug   string     `json:"slug"`
	Name   string     `json:"name"`
	NameAr string     `json:"name_ar"`
	Majors []MajorRef `json:"majors"`
}
