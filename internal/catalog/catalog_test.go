package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/students-sa/planner-api/internal/models"
)

func TestProgramLookup(t *testing.T) {
	for _, slug := range []string{
		"information-technology",
		"data-science",
		"computer-science",
		"health-informatics",
		"public-health",
		"management",
	} {
		p, ok := Program(slug)
		require.True(t, ok, "program %s should exist", slug)
		assert.Equal(t, slug, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.NameAr)
	}

	_, ok := Program("e-commerce")
	assert.False(t, ok, "majors without a registered program resolve to nothing")
}

func TestProgramCoursesAreConsistent(t *testing.T) {
	for slug := range programs {
		p, _ := Program(slug)
		courses := p.AllCourses()
		seen := make(map[string]bool, len(courses))

		for _, c := range courses {
			assert.False(t, seen[c.ID], "%s: duplicate course id %s", slug, c.ID)
			seen[c.ID] = true
			assert.NotEmpty(t, c.Code, "%s: course %s missing code", slug, c.ID)
			assert.Greater(t, c.Credits, 0, "%s: course %s has no credits", slug, c.ID)
		}

		// Every prerequisite must reference a course within the same program.
		for _, c := range courses {
			for _, pre := range c.Prerequisites {
				assert.True(t, seen[pre], "%s: course %s references unknown prerequisite %s", slug, c.ID, pre)
			}
		}
	}
}

func TestUniversityRequirementsSharedAcrossMajors(t *testing.T) {
	it, _ := Program("information-technology")
	mgt, _ := Program("management")

	require.Len(t, it.UniversityRequirements, 6)
	assert.Equal(t, it.UniversityRequirements, mgt.UniversityRequirements)
}

func TestHourGatedCourses(t *testing.T) {
	cases := map[string]struct {
		courseID string
		hours    int
	}{
		"information-technology": {"it499", 86},
		"data-science":           {"ds499", 86},
		"computer-science":       {"cs499", 86},
		"management":             {"mgt430", 90},
	}

	for slug, tc := range cases {
		p, _ := Program(slug)
		c, ok := p.FindCourse(tc.courseID)
		require.True(t, ok, "%s: course %s should exist", slug, tc.courseID)
		assert.Equal(t, tc.hours, c.HourRequirement)
	}
}

func TestMajorsSortedBySlug(t *testing.T) {
	refs := Majors()
	require.Len(t, refs, 6)
	for i := 1; i < len(refs); i++ {
		assert.Less(t, refs[i-1].Slug, refs[i].Slug)
	}
}

func TestCollegesCoverEveryProgram(t *testing.T) {
	listed := make(map[string]bool)
	for _, col := range Colleges() {
		assert.NotEmpty(t, col.Slug)
		assert.NotEmpty(t, col.NameAr)
		for _, m := range col.Majors {
			listed[m.Slug] = true
		}
	}
	for slug := range programs {
		assert.True(t, listed[slug], "program %s missing from college listing", slug)
	}
}

func TestStatsCourseDiffersByMajor(t *testing.T) {
	findShared := func(p *models.MajorProgram, id string) bool {
		for _, c := range p.SharedFirstYearCourses {
			if c.ID == id {
				return true
			}
		}
		return false
	}

	it, _ := Program("information-technology")
	ds, _ := Program("data-science")
	assert.True(t, findShared(it, "stat101"))
	assert.True(t, findShared(ds, "stat201"))
	assert.False(t, findShared(ds, "stat101"))
}
