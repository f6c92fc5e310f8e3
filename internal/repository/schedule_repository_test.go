package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/students-sa/planner-api/internal/models"
)

func newScheduleRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestScheduleRepositoryUpsert(t *testing.T) {
	db, mock, cleanup := newScheduleRepoMock(t)
	defer cleanup()
	repo := NewScheduleRepository(db)

	mock.ExpectExec("INSERT INTO schedule_entries").
		WillReturnResult(sqlmock.NewResult(0, 1))

	entry := models.DefaultScheduleEntry(models.ScheduleKey{
		SessionID: "sess-1", MajorSlug: "computer-science", CourseID: "cs101",
	})
	err := repo.Upsert(context.Background(), &entry)
	require.NoError(t, err)
	require.False(t, entry.UpdatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepositoryListBySession(t *testing.T) {
	db, mock, cleanup := newScheduleRepoMock(t)
	defer cleanup()
	repo := NewScheduleRepository(db)

	rows := sqlmock.NewRows([]string{"session_id", "major_slug", "course_id", "day", "start_time", "end_time", "crn", "updated_at"}).
		AddRow("sess-1", "computer-science", "cs101", models.DaySundayTuesday, "3:00", "3:50", "12345", time.Now()).
		AddRow("sess-1", "computer-science", "cs140", models.DayMondayWednesday, "4:00", "4:50", "", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT session_id, major_slug, course_id, day, start_time, end_time, crn, updated_at FROM schedule_entries WHERE session_id = $1 AND major_slug = $2 ORDER BY course_id")).
		WithArgs("sess-1", "computer-science").
		WillReturnRows(rows)

	entries, err := repo.ListBySession(context.Background(), "sess-1", "computer-science")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.True(t, entries[0].Ready())
	require.False(t, entries[1].Ready())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newScheduleRepoMock(t)
	defer cleanup()
	repo := NewScheduleRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM schedule_entries WHERE session_id = $1 AND major_slug = $2 AND course_id = $3")).
		WithArgs("sess-1", "computer-science", "cs101").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), models.ScheduleKey{
		SessionID: "sess-1", MajorSlug: "computer-science", CourseID: "cs101",
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
