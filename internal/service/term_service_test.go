package service

import (
	"context"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/students-sa/planner-api/internal/models"
	appErrors "github.com/students-sa/planner-api/pkg/errors"
)

func newTermFixture(t *testing.T) (*TermService, *mockSessionRepo, *mockScheduleRepo) {
	t.Helper()
	session := itSession("sess-1", true)
	sessions := newMockSessionRepo(session)
	schedules := newMockScheduleRepo()
	svc := NewTermService(sessions, schedules, newFakeCache(), 6, nil)
	return svc, sessions, schedules
}

func TestTermAddIsIdempotent(t *testing.T) {
	svc, _, schedules := newTermFixture(t)
	ctx := context.Background()

	first, err := svc.Add(ctx, "sess-1", "it232")
	require.NoError(t, err)
	require.Equal(t, []string{"it232"}, []string(first.TermCourses))

	second, err := svc.Add(ctx, "sess-1", "it232")
	require.NoError(t, err)
	assert.Equal(t, []string{"it232"}, []string(second.TermCourses))
	assert.Len(t, schedules.entries, 1)
}

func TestTermAddCreatesDraftScheduleEntry(t *testing.T) {
	svc, _, schedules := newTermFixture(t)

	_, err := svc.Add(context.Background(), "sess-1", "it232")
	require.NoError(t, err)

	key := models.ScheduleKey{SessionID: "sess-1", MajorSlug: "information-technology", CourseID: "it232"}
	entry, ok := schedules.entries[key]
	require.True(t, ok)
	assert.Equal(t, models.DaySundayTuesday, entry.Day)
	assert.Equal(t, models.DefaultStart, entry.Start)
	assert.Equal(t, models.DefaultEnd, entry.End)
	assert.Empty(t, entry.CRN)
}

func TestTermNeverExceedsCapacity(t *testing.T) {
	svc, _, _ := newTermFixture(t)
	ctx := context.Background()

	courses := []string{"it231", "it232", "it233", "islm101", "islm102", "sci101", "math150", "eng103"}
	var last *models.PlannerSession
	var err error
	for _, id := range courses {
		last, err = svc.Add(ctx, "sess-1", id)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(last.TermCourses), 6)
	}
	assert.Len(t, last.TermCourses, 6)
	assert.NotContains(t, last.TermCourses, "math150")
	assert.NotContains(t, last.TermCourses, "eng103")
}

func TestTermAddSkipsCompletedCourse(t *testing.T) {
	session := itSession("sess-1", true)
	session.CompletedMajor = append(session.CompletedMajor, "it232")
	sessions := newMockSessionRepo(session)
	schedules := newMockScheduleRepo()
	svc := NewTermService(sessions, schedules, newFakeCache(), 6, nil)

	got, err := svc.Add(context.Background(), "sess-1", "it232")
	require.NoError(t, err)
	assert.NotContains(t, []string(got.TermCourses), "it232")
	assert.Empty(t, schedules.entries)
}

func TestTermAddUnknownCourse(t *testing.T) {
	svc, _, _ := newTermFixture(t)

	_, err := svc.Add(context.Background(), "sess-1", "phc101")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestTermRemoveDeletesScheduleEntry(t *testing.T) {
	svc, _, schedules := newTermFixture(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "sess-1", "it232")
	require.NoError(t, err)

	session, err := svc.Remove(ctx, "sess-1", "it232")
	require.NoError(t, err)
	assert.Empty(t, session.TermCourses)
	assert.Empty(t, schedules.entries)

	// Removing again is a no-op.
	session, err = svc.Remove(ctx, "sess-1", "it232")
	require.NoError(t, err)
	assert.Empty(t, session.TermCourses)
}

func TestMarkCompletedRequiresConfirmation(t *testing.T) {
	svc, sessions, _ := newTermFixture(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "sess-1", "it232")
	require.NoError(t, err)

	_, err = svc.MarkCompleted(ctx, "sess-1", "it232", false)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrPreconditionFailed.Code, appErrors.FromError(err).Code)

	stored, _ := sessions.FindByID(ctx, "sess-1")
	assert.Contains(t, []string(stored.TermCourses), "it232")
	assert.Empty(t, stored.CompletedMajor)
}

func TestMarkCompletedPlacesCourseByGroup(t *testing.T) {
	svc, _, schedules := newTermFixture(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "sess-1", "it232")
	require.NoError(t, err)

	session, err := svc.MarkCompleted(ctx, "sess-1", "it232", true)
	require.NoError(t, err)
	assert.Contains(t, []string(session.CompletedMajor), "it232")
	assert.NotContains(t, []string(session.TermCourses), "it232")
	assert.Empty(t, schedules.entries, "schedule entry evicted with the course")

	session, err = svc.MarkCompleted(ctx, "sess-1", "eng001", true)
	require.NoError(t, err)
	assert.Contains(t, []string(session.CompletedUniversity), "eng001")

	session, err = svc.MarkCompleted(ctx, "sess-1", "islm101", true)
	require.NoError(t, err)
	assert.Contains(t, []string(session.CompletedShared), "islm101")
}

func TestMarkCompletedTwiceIsNoOp(t *testing.T) {
	svc, _, _ := newTermFixture(t)
	ctx := context.Background()

	first, err := svc.MarkCompleted(ctx, "sess-1", "it231", true)
	require.NoError(t, err)
	second, err := svc.MarkCompleted(ctx, "sess-1", "it231", true)
	require.NoError(t, err)
	assert.Equal(t, []string(first.CompletedMajor), []string(second.CompletedMajor))
}

func TestTermRequiresQuestionnaire(t *testing.T) {
	session := &models.PlannerSession{ID: "sess-2", TermCourses: pq.StringArray{}}
	svc := NewTermService(newMockSessionRepo(session), newMockScheduleRepo(), newFakeCache(), 6, nil)

	_, err := svc.Add(context.Background(), "sess-2", "it232")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrPreconditionFailed.Code, appErrors.FromError(err).Code)
}
