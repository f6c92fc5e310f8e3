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

func newExportJobRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestExportJobRepositoryCreateDefaults(t *testing.T) {
	db, mock, cleanup := newExportJobRepoMock(t)
	defer cleanup()
	repo := NewExportJobRepository(db)

	mock.ExpectExec("INSERT INTO export_jobs").
		WillReturnResult(sqlmock.NewResult(0, 1))

	job := &models.ExportJob{
		SessionID: "sess-1",
		Params:    models.ExportJobParams{MajorSlug: "public-health", Format: models.ExportFormatPoster},
	}
	err := repo.Create(context.Background(), job)
	require.NoError(t, err)
	require.NotEmpty(t, job.ID)
	require.Equal(t, models.ExportStatusQueued, job.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportJobRepositoryFindByID(t *testing.T) {
	db, mock, cleanup := newExportJobRepoMock(t)
	defer cleanup()
	repo := NewExportJobRepository(db)

	rows := sqlmock.NewRows([]string{"id", "session_id", "params", "status", "result_path", "result_url", "created_at", "finished_at", "error_message"}).
		AddRow("job-1", "sess-1", []byte(`{"major_slug":"public-health","format":"poster"}`), models.ExportStatusQueued, nil, nil, time.Now(), nil, nil)
	mock.ExpectQuery("SELECT (.+) FROM export_jobs WHERE id = \\$1").
		WithArgs("job-1").
		WillReturnRows(rows)

	job, err := repo.FindByID(context.Background(), "job-1")
	require.NoError(t, err)
	require.Equal(t, models.ExportFormatPoster, job.Params.Format)
	require.Equal(t, "public-health", job.Params.MajorSlug)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportJobRepositoryMarkFinished(t *testing.T) {
	db, mock, cleanup := newExportJobRepoMock(t)
	defer cleanup()
	repo := NewExportJobRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE export_jobs SET status = $2, result_path = $3, result_url = $4, finished_at = $5 WHERE id = $1")).
		WithArgs("job-1", models.ExportStatusFinished, "/exports/schedule-20260115-0930.pdf", "http://example/dl", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkFinished(context.Background(), "job-1", "/exports/schedule-20260115-0930.pdf", "http://example/dl")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
