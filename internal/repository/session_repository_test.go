package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/students-sa/planner-api/internal/models"
)

func newSessionRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestSessionRepositoryCreateDefaultsArrays(t *testing.T) {
	db, mock, cleanup := newSessionRepoMock(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	mock.ExpectExec("INSERT INTO planner_sessions").
		WillReturnResult(sqlmock.NewResult(0, 1))

	session := &models.PlannerSession{MajorSlug: "data-science", Username: "sara", StudentID: "441001234"}
	err := repo.Create(context.Background(), session)
	require.NoError(t, err)
	require.NotEmpty(t, session.ID)
	require.NotNil(t, session.CompletedUniversity)
	require.NotNil(t, session.TermCourses)
	require.False(t, session.UpdatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositoryFindByID(t *testing.T) {
	db, mock, cleanup := newSessionRepoMock(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	firstYear := true
	rows := sqlmock.NewRows([]string{
		"id", "major_slug", "username", "student_id", "first_year_done",
		"completed_university", "completed_shared", "completed_major", "completed_semesters", "term_courses",
		"created_at", "updated_at",
	}).AddRow(
		"sess-1", "information-technology", "sara", "441001234", firstYear,
		"{eng001,eng002}", "{islm101}", "{}", 0, "{it101}",
		time.Now(), time.Now(),
	)
	mock.ExpectQuery("SELECT (.+) FROM planner_sessions WHERE id = \\$1").
		WithArgs("sess-1").
		WillReturnRows(rows)

	session, err := repo.FindByID(context.Background(), "sess-1")
	require.NoError(t, err)
	require.Equal(t, "information-technology", session.MajorSlug)
	require.NotNil(t, session.FirstYearDone)
	require.True(t, *session.FirstYearDone)
	require.Equal(t, []string{"eng001", "eng002", "islm101"}, session.CompletedIDs())
	require.True(t, session.InTerm("it101"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositorySave(t *testing.T) {
	db, mock, cleanup := newSessionRepoMock(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	mock.ExpectExec("UPDATE planner_sessions SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	session := &models.PlannerSession{
		ID:                  "sess-1",
		MajorSlug:           "management",
		CompletedUniversity: pq.StringArray{"eng001"},
		CompletedShared:     pq.StringArray{},
		CompletedMajor:      pq.StringArray{"mgt101"},
		TermCourses:         pq.StringArray{"mgt201"},
	}
	err := repo.Save(context.Background(), session)
	require.NoError(t, err)
	require.False(t, session.UpdatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}
