package service

import (
	"context"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/students-sa/planner-api/internal/catalog"
	"github.com/students-sa/planner-api/internal/models"
	appErrors "github.com/students-sa/planner-api/pkg/errors"
)

func boolPtr(v bool) *bool { return &v }

func itSession(id string, firstYearDone bool) *models.PlannerSession {
	return &models.PlannerSession{
		ID:                  id,
		MajorSlug:           "information-technology",
		Username:            "sara",
		StudentID:           "441001234",
		FirstYearDone:       boolPtr(firstYearDone),
		CompletedUniversity: pq.StringArray{},
		CompletedShared:     pq.StringArray{},
		CompletedMajor:      pq.StringArray{},
		TermCourses:         pq.StringArray{},
	}
}

func availableIDs(courses []models.Course) map[string]bool {
	ids := make(map[string]bool, len(courses))
	for _, c := range courses {
		ids[c.ID] = true
	}
	return ids
}

func TestAvailableCoursesFirstYearOnly(t *testing.T) {
	session := itSession("sess-1", false)
	svc := NewPlanService(newMockSessionRepo(session), newFakeCache(), time.Minute, nil)

	courses, err := svc.AvailableCourses(context.Background(), "sess-1")
	require.NoError(t, err)
	require.Len(t, courses, 6)
	for _, c := range courses {
		assert.Equal(t, models.CategoryGeneral, c.Category)
	}
}

func TestAvailableCoursesAfterFirstYear(t *testing.T) {
	program, _ := catalog.Program("information-technology")
	session := itSession("sess-1", true)
	for _, c := range program.UniversityRequirements {
		session.CompletedUniversity = append(session.CompletedUniversity, c.ID)
	}
	svc := NewPlanService(newMockSessionRepo(session), newFakeCache(), time.Minute, nil)

	courses, err := svc.AvailableCourses(context.Background(), "sess-1")
	require.NoError(t, err)
	ids := availableIDs(courses)

	// Unchained shared courses are open immediately.
	assert.True(t, ids["islm101"])
	assert.True(t, ids["islm102"])
	assert.True(t, ids["sci101"])
	assert.True(t, ids["math150"])
	assert.True(t, ids["stat101"])
	// Chained shared courses wait on their prerequisites.
	assert.False(t, ids["islm103"])
	assert.False(t, ids["islm104"])
	assert.False(t, ids["sci201"])
	assert.False(t, ids["math251"])
}

func TestEligibilityUnlocksWithPrerequisite(t *testing.T) {
	session := itSession("sess-1", true)
	repo := newMockSessionRepo(session)
	svc := NewPlanService(repo, newFakeCache(), time.Minute, nil)

	courses, err := svc.AvailableCourses(context.Background(), "sess-1")
	require.NoError(t, err)
	before := availableIDs(courses)
	assert.False(t, before["it245"], "data structure locked before OOP is completed")
	assert.False(t, before["it351"], "networks locked behind operating systems")

	session.CompletedMajor = pq.StringArray{"it232"}
	repo.sessions["sess-1"] = session

	courses, err = svc.AvailableCourses(context.Background(), "sess-1")
	require.NoError(t, err)
	after := availableIDs(courses)
	assert.True(t, after["it245"], "prerequisite met")
	assert.False(t, after["it351"], "it241 still missing")

	// Completing a course never revokes eligibility elsewhere.
	for id := range before {
		if id == "it232" {
			continue
		}
		assert.True(t, after[id], "course %s lost eligibility after completing it232", id)
	}
}

func TestHourGateIndependentOfPrerequisites(t *testing.T) {
	program, _ := catalog.Program("information-technology")
	session := itSession("sess-1", true)

	// Accumulate completed courses until just below the 86-hour gate.
	for _, c := range program.AllCourses() {
		if c.ID == "it499" {
			continue
		}
		next := append(session.CompletedIDs(), c.ID)
		if program.CreditsFor(next) > 85 {
			break
		}
		switch {
		case containsCourse(program.UniversityRequirements, c.ID):
			session.CompletedUniversity = append(session.CompletedUniversity, c.ID)
		case containsCourse(program.SharedFirstYearCourses, c.ID):
			session.CompletedShared = append(session.CompletedShared, c.ID)
		default:
			session.CompletedMajor = append(session.CompletedMajor, c.ID)
		}
	}
	require.Less(t, program.CreditsFor(session.CompletedIDs()), 86)

	repo := newMockSessionRepo(session)
	svc := NewPlanService(repo, newFakeCache(), time.Minute, nil)

	courses, err := svc.AvailableCourses(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.False(t, availableIDs(courses)["it499"], "practical training gated below 86 hours")

	// Push past the gate.
	for _, c := range program.Courses {
		if c.ID == "it499" || session.HasCompleted(c.ID) {
			continue
		}
		session.CompletedMajor = append(session.CompletedMajor, c.ID)
		if program.CreditsFor(session.CompletedIDs()) >= 86 {
			break
		}
	}
	require.GreaterOrEqual(t, program.CreditsFor(session.CompletedIDs()), 86)
	repo.sessions["sess-1"] = session

	courses, err = svc.AvailableCourses(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.True(t, availableIDs(courses)["it499"], "gate met")
}

func TestAvailableCoursesRequiresQuestionnaire(t *testing.T) {
	session := itSession("sess-1", true)
	session.FirstYearDone = nil
	svc := NewPlanService(newMockSessionRepo(session), newFakeCache(), time.Minute, nil)

	_, err := svc.AvailableCourses(context.Background(), "sess-1")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrPreconditionFailed.Code, appErr.Code)
}

func TestStatsComputation(t *testing.T) {
	program, _ := catalog.Program("information-technology")
	session := itSession("sess-1", true)
	session.CompletedUniversity = pq.StringArray{"eng001", "eng002"}
	session.TermCourses = pq.StringArray{"it232", "it231"}

	stats := ComputeStats(program, session)
	assert.Equal(t, 16, stats.CompletedCredits)
	assert.Equal(t, 2, stats.CompletedCourses)
	assert.Equal(t, 2, stats.TermCourseCount)
	assert.Equal(t, 6, stats.TermCreditsStaged)
	assert.Equal(t, stats.TotalCredits-stats.CompletedCredits, stats.RemainingCredits)
	assert.Equal(t, len(program.AllCourses()), stats.TotalCourses)
}

func TestStatsCachedAndInvalidated(t *testing.T) {
	session := itSession("sess-1", true)
	cache := newFakeCache()
	svc := NewPlanService(newMockSessionRepo(session), cache, time.Minute, nil)

	_, err := svc.Stats(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Contains(t, cache.values, statsCacheKey("sess-1", "information-technology"))

	require.NoError(t, svc.InvalidateStats(context.Background(), "sess-1"))
	assert.Contains(t, cache.invalidated, statsCachePattern("sess-1"))
}
