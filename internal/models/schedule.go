package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Day is one of the two fixed weekly meeting day-pairs.
type Day string

const (
	DaySundayTuesday   Day = "sunday-tuesday"
	DayMondayWednesday Day = "monday-wednesday"
)

// Valid reports whether the day-pair is one of the two known values.
func (d Day) Valid() bool {
	return d == DaySundayTuesday || d == DayMondayWednesday
}

// StartTimes is the fixed slot enumeration; each slot runs exactly 50
// minutes from its hour mark.
var StartTimes = []string{"3:00", "4:00", "5:00", "6:00", "7:00", "8:00", "9:00"}

// Draft values assigned when a course enters the term.
const (
	DefaultStart = "3:00"
	DefaultEnd   = "3:50"
)

// DeriveEnd computes the end time for a start slot: same hour, minute 50.
func DeriveEnd(start string) string {
	hour := start
	if i := strings.IndexByte(start, ':'); i >= 0 {
		hour = start[:i]
	}
	return hour + ":50"
}

// ValidStart reports whether the start time is one of the fixed slots.
func ValidStart(start string) bool {
	for _, s := range StartTimes {
		if s == start {
			return true
		}
	}
	return false
}

var crnPattern = regexp.MustCompile(`^\d{4,5}$`)

// ValidCRN reports whether the registration number is exactly 4 or 5
// decimal digits. The empty string means "not yet entered", which is
// distinct from invalid but still not export-ready.
func ValidCRN(crn string) bool {
	return crnPattern.MatchString(crn)
}

// ScheduleKey is the composite identity of a schedule entry. Entries
// are namespaced by session and major slug so identical course ids in
// two majors can never collide.
type ScheduleKey struct {
	SessionID string
	MajorSlug string
	CourseID  string
}

func (k ScheduleKey) String() string {
	return fmt.Sprintf("%s:%s:%s", k.SessionID, k.MajorSlug, k.CourseID)
}

// ScheduleEntry assigns a term course its meeting day-pair, time slot
// and registration number. Persisted last-write-wins per key.
type ScheduleEntry struct {
	SessionID string    `db:"session_id" json:"-"`
	MajorSlug string    `db:"major_slug" json:"-"`
	CourseID  string    `db:"course_id" json:"course_id"`
	Day       Day       `db:"day" json:"day"`
	Start     string    `db:"start_time" json:"start"`
	End       string    `db:"end_time" json:"end"`
	CRN       string    `db:"crn" json:"crn"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Key returns the entry's composite identity.
func (e *ScheduleEntry) Key() ScheduleKey {
	return ScheduleKey{SessionID: e.SessionID, MajorSlug: e.MajorSlug, CourseID: e.CourseID}
}

// DefaultScheduleEntry returns the Draft entry created when a course
// is added to the term.
func DefaultScheduleEntry(key ScheduleKey) ScheduleEntry {
	return ScheduleEntry{
		SessionID: key.SessionID,
		MajorSlug: key.MajorSlug,
		CourseID:  key.CourseID,
		Day:       DaySundayTuesday,
		Start:     DefaultStart,
		End:       DefaultEnd,
		CRN:       "",
	}
}

// Ready reports whether the entry has every field an export needs:
// day, start, end, and a valid CRN. Conflicts do not factor in.
func (e *ScheduleEntry) Ready() bool {
	return e.Day.Valid() && e.Start != "" && e.End != "" && ValidCRN(e.CRN)
}

// ConflictsWith reports whether two entries share a day-pair and have
// overlapping [start, end) intervals. An entry never conflicts with
// itself (compared by course id).
func (e *ScheduleEntry) ConflictsWith(other *ScheduleEntry) bool {
	if e.CourseID == other.CourseID {
		return false
	}
	if e.Day != other.Day {
		return false
	}
	a1, a2 := minuteOfDay(e.Start), minuteOfDay(e.End)
	b1, b2 := minuteOfDay(other.Start), minuteOfDay(other.End)
	return maxInt(a1, b1) < minInt(a2, b2)
}

func minuteOfDay(t string) int {
	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h*60 + m
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// ScheduleConflict describes one detected pairwise overlap.
type ScheduleConflict struct {
	CourseID      string `json:"course_id"`
	OtherCourseID string `json:"other_course_id"`
	Day           Day    `json:"day"`
	Start         string `json:"start"`
	End           string `json:"end"`
}
