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

func newScheduleFixture(t *testing.T, staged ...string) (*ScheduleService, *mockScheduleRepo) {
	t.Helper()
	session := itSession("sess-1", true)
	session.TermCourses = pq.StringArray(staged)
	schedules := newMockScheduleRepo()
	for _, id := range staged {
		entry := models.DefaultScheduleEntry(models.ScheduleKey{
			SessionID: "sess-1", MajorSlug: "information-technology", CourseID: id,
		})
		require.NoError(t, schedules.Upsert(context.Background(), &entry))
	}
	return NewScheduleService(newMockSessionRepo(session), schedules, nil, nil), schedules
}

func TestUpdateStartDerivesEnd(t *testing.T) {
	svc, _ := newScheduleFixture(t, "it232")

	view, err := svc.UpdateField(context.Background(), "sess-1", "it232", ScheduleFieldRequest{Field: ScheduleFieldStart, Value: "6:00"})
	require.NoError(t, err)
	assert.Equal(t, "6:00", view.Start)
	assert.Equal(t, "6:50", view.End)
}

func TestUpdateDayRejectsUnknownPair(t *testing.T) {
	svc, _ := newScheduleFixture(t, "it232")

	_, err := svc.UpdateField(context.Background(), "sess-1", "it232", ScheduleFieldRequest{Field: ScheduleFieldDay, Value: "friday-saturday"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	view, err := svc.UpdateField(context.Background(), "sess-1", "it232", ScheduleFieldRequest{Field: ScheduleFieldDay, Value: "monday-wednesday"})
	require.NoError(t, err)
	assert.Equal(t, models.DayMondayWednesday, view.Day)
}

func TestUpdateCRNStoresInvalidValues(t *testing.T) {
	svc, _ := newScheduleFixture(t, "it232")

	view, err := svc.UpdateField(context.Background(), "sess-1", "it232", ScheduleFieldRequest{Field: ScheduleFieldCRN, Value: "12a45"})
	require.NoError(t, err, "malformed CRN is stored, not rejected")
	assert.Equal(t, "12a45", view.CRN)
	assert.False(t, view.CRNValid)

	view, err = svc.UpdateField(context.Background(), "sess-1", "it232", ScheduleFieldRequest{Field: ScheduleFieldCRN, Value: "12345"})
	require.NoError(t, err)
	assert.True(t, view.CRNValid)
}

func TestUpdateFieldRequiresStagedCourse(t *testing.T) {
	svc, _ := newScheduleFixture(t, "it232")

	_, err := svc.UpdateField(context.Background(), "sess-1", "it231", ScheduleFieldRequest{Field: ScheduleFieldCRN, Value: "1234"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestOverviewReportsConflictsWithoutBlockingReadiness(t *testing.T) {
	svc, _ := newScheduleFixture(t, "it231", "it232")
	ctx := context.Background()

	// Both courses land on the same default slot with valid CRNs.
	for i, id := range []string{"it231", "it232"} {
		_, err := svc.UpdateField(ctx, "sess-1", id, ScheduleFieldRequest{Field: ScheduleFieldCRN, Value: []string{"1234", "12345"}[i]})
		require.NoError(t, err)
	}

	overview, err := svc.Overview(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, overview.Conflicts, 1)
	assert.True(t, overview.Ready, "conflicts are advisory and never gate export readiness")
	assert.Empty(t, overview.NotReady)

	// Moving one course clears the conflict.
	_, err = svc.UpdateField(ctx, "sess-1", "it232", ScheduleFieldRequest{Field: ScheduleFieldStart, Value: "4:00"})
	require.NoError(t, err)
	overview, err = svc.Overview(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, overview.Conflicts)
}

func TestOverviewReadinessNeedsValidCRNs(t *testing.T) {
	svc, _ := newScheduleFixture(t, "it231", "it232")
	ctx := context.Background()

	_, err := svc.UpdateField(ctx, "sess-1", "it231", ScheduleFieldRequest{Field: ScheduleFieldCRN, Value: "1234"})
	require.NoError(t, err)

	overview, err := svc.Overview(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, overview.Ready)
	assert.Equal(t, []string{"it232"}, overview.NotReady)
}

func TestCrossMajorEntriesNeverCollide(t *testing.T) {
	session := itSession("sess-1", true)
	session.TermCourses = pq.StringArray{"it244"}
	schedules := newMockScheduleRepo()

	// The same course id exists in another major's namespace with a
	// clashing slot; it must stay invisible to this major.
	foreign := models.DefaultScheduleEntry(models.ScheduleKey{
		SessionID: "sess-1", MajorSlug: "health-informatics", CourseID: "it244",
	})
	foreign.CRN = "99999"
	require.NoError(t, schedules.Upsert(context.Background(), &foreign))

	own := models.DefaultScheduleEntry(models.ScheduleKey{
		SessionID: "sess-1", MajorSlug: "information-technology", CourseID: "it244",
	})
	require.NoError(t, schedules.Upsert(context.Background(), &own))

	svc := NewScheduleService(newMockSessionRepo(session), schedules, nil, nil)
	overview, err := svc.Overview(context.Background(), "sess-1")
	require.NoError(t, err)
	require.Len(t, overview.Entries, 1)
	assert.Empty(t, overview.Entries[0].CRN, "the other major's entry must not leak in")
	assert.Empty(t, overview.Conflicts)
}
