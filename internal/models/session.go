package models

import (
	"time"

	"github.com/lib/pq"
)

// PlannerSession aggregates one student's planning state for a major:
// questionnaire answers, completed-course sets, and the ordered term
// selection. It replaces the original's ambient browser state; every
// component receives it explicitly.
type PlannerSession struct {
	ID        string `db:"id" json:"id"`
	MajorSlug string `db:"major_slug" json:"major_slug"`
	Username  string `db:"username" json:"username"`
	StudentID string `db:"student_id" json:"student_id"`

	// FirstYearDone is tri-state: nil until the questionnaire answers
	// it. It gates which course groups the resolver considers.
	FirstYearDone *bool `db:"first_year_done" json:"first_year_done"`

	CompletedUniversity pq.StringArray `db:"completed_university" json:"completed_university"`
	CompletedShared     pq.StringArray `db:"completed_shared" json:"completed_shared"`
	CompletedMajor      pq.StringArray `db:"completed_major" json:"completed_major"`
	CompletedSemesters  int            `db:"completed_semesters" json:"completed_semesters"`

	// TermCourses is the ordered working set being assembled for the
	// next term, capped at the configured maximum.
	TermCourses pq.StringArray `db:"term_courses" json:"term_courses"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// CompletedIDs is the union of the three completed-course sets.
func (s *PlannerSession) CompletedIDs() []string {
	ids := make([]string, 0, len(s.CompletedUniversity)+len(s.CompletedShared)+len(s.CompletedMajor))
	ids = append(ids, s.CompletedUniversity...)
	ids = append(ids, s.CompletedShared...)
	ids = append(ids, s.CompletedMajor...)
	return ids
}

// HasCompleted reports whether the course id is in any completed set.
func (s *PlannerSession) HasCompleted(courseID string) bool {
	for _, id := range s.CompletedIDs() {
		if id == courseID {
			return true
		}
	}
	return false
}

// InTerm reports whether the course id is staged in the term
// selection. Membership is checked by id, never by reference.
func (s *PlannerSession) InTerm(courseID string) bool {
	for _, id := range s.TermCourses {
		if id == courseID {
			return true
		}
	}
	return false
}

// PlanStats are the derived statistics shown on the planner
// dashboard. Always recomputed from the session, never stored.
type PlanStats struct {
	CompletedCredits  int `json:"completed_credits"`
	RemainingCredits  int `json:"remaining_credits"`
	TotalCredits      int `json:"total_credits"`
	CompletedCourses  int `json:"completed_courses"`
	RemainingCourses  int `json:"remaining_courses"`
	TotalCourses      int `json:"total_courses"`
	TermCourseCount   int `json:"term_course_count"`
	TermCreditsStaged int `json:"term_credits_staged"`
}
