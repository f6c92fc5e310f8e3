package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/students-sa/planner-api/internal/catalog"
	"github.com/students-sa/planner-api/internal/models"
	appErrors "github.com/students-sa/planner-api/pkg/errors"
	"github.com/students-sa/planner-api/pkg/export"
	"github.com/students-sa/planner-api/pkg/jobs"
)

type exportJobRepository interface {
	Create(ctx context.Context, job *models.ExportJob) error
	FindByID(ctx context.Context, id string) (*models.ExportJob, error)
	MarkProcessing(ctx context.Context, id string) error
	MarkFinished(ctx context.Context, id, resultPath, resultURL string) error
	MarkFailed(ctx context.Context, id, reason string) error
	ListFinishedBefore(ctx context.Context, cutoff time.Time) ([]models.ExportJob, error)
	Delete(ctx context.Context, id string) error
}

type exportStorage interface {
	Save(filename string, data []byte) (string, error)
	Open(filename string) (*os.File, error)
	Delete(filename string) error
}

type urlSigner interface {
	Generate(jobID, relPath string) (string, time.Time, error)
	Parse(token string, allowExpired bool) (jobID, relPath string, expiresAt time.Time, err error)
}

type jobEnqueuer interface {
	Enqueue(job jobs.Job) error
}

// ExportJobType identifies schedule export jobs on the queue.
const ExportJobType = "schedule-export"

// ExportService renders the staged schedule into downloadable
// artifacts through the background queue.
type ExportService struct {
	exports   exportJobRepository
	sessions  sessionReader
	schedules scheduleRepository
	storage   exportStorage
	signer    urlSigner
	queue     jobEnqueuer
	metrics   *MetricsService
	resultTTL time.Duration
	logger    *zap.Logger
}

// NewExportService constructs an ExportService. The queue is attached
// after construction so the service can hand its Process method to the
// queue builder.
func NewExportService(exports exportJobRepository, sessions sessionReader, schedules scheduleRepository, store exportStorage, signer urlSigner, metrics *MetricsService, resultTTL time.Duration, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		exports:   exports,
		sessions:  sessions,
		schedules: schedules,
		storage:   store,
		signer:    signer,
		metrics:   metrics,
		resultTTL: resultTTL,
		logger:    logger,
	}
}

// AttachQueue wires the job queue used for asynchronous rendering.
func (s *ExportService) AttachQueue(queue jobEnqueuer) {
	s.queue = queue
}

// RequestExport validates readiness and queues an export job. A term
// with missing schedule fields or invalid CRNs cannot be exported;
// conflicts alone do not block.
func (s *ExportService) RequestExport(ctx context.Context, sessionID string, format models.ExportFormat) (*models.ExportJob, error) {
	if format != models.ExportFormatPoster && format != models.ExportFormatCSV {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported export format")
	}

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	entries, err := s.schedules.ListBySession(ctx, sessionID, session.MajorSlug)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list schedule entries")
	}
	overview := buildOverview(session, entries)
	if !overview.Ready {
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "schedule is not export-ready")
	}

	job := &models.ExportJob{
		SessionID: sessionID,
		Params:    models.ExportJobParams{MajorSlug: session.MajorSlug, Format: format},
	}
	if err := s.exports.Create(ctx, job); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create export job")
	}
	if err := s.queue.Enqueue(jobs.Job{ID: job.ID, Type: ExportJobType, Payload: job.ID}); err != nil {
		if markErr := s.exports.MarkFailed(ctx, job.ID, "queue rejected job"); markErr != nil {
			s.logger.Error("failed to mark export job failed", zap.Error(markErr))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to queue export job")
	}

	s.logger.Info("export queued",
		zap.String("job_id", job.ID),
		zap.String("session_id", sessionID),
		zap.String("format", string(format)))
	return job, nil
}

// Status returns the job's current lifecycle state.
func (s *ExportService) Status(ctx context.Context, jobID string) (*models.ExportJob, error) {
	job, err := s.exports.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "export job not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load export job")
	}
	return job, nil
}

// Process is the queue handler: it renders the artifact, stores it and
// records the signed download URL.
func (s *ExportService) Process(ctx context.Context, job jobs.Job) error {
	jobID, ok := job.Payload.(string)
	if !ok || jobID == "" {
		return fmt.Errorf("export job payload must be a job id")
	}

	record, err := s.exports.FindByID(ctx, jobID)
	if err != nil {
		return fmt.Errorf("load export job %s: %w", jobID, err)
	}
	if err := s.exports.MarkProcessing(ctx, jobID); err != nil {
		return fmt.Errorf("mark export job processing: %w", err)
	}

	data, filename, err := s.render(ctx, record)
	if err != nil {
		if markErr := s.exports.MarkFailed(ctx, jobID, err.Error()); markErr != nil {
			s.logger.Error("failed to mark export job failed", zap.Error(markErr))
		}
		s.metrics.RecordExport(record.Params.Format, "failed")
		return err
	}

	if _, err := s.storage.Save(filename, data); err != nil {
		if markErr := s.exports.MarkFailed(ctx, jobID, "failed to store artifact"); markErr != nil {
			s.logger.Error("failed to mark export job failed", zap.Error(markErr))
		}
		return fmt.Errorf("store export artifact: %w", err)
	}

	token, _, err := s.signer.Generate(jobID, filename)
	if err != nil {
		if markErr := s.exports.MarkFailed(ctx, jobID, "failed to sign download url"); markErr != nil {
			s.logger.Error("failed to mark export job failed", zap.Error(markErr))
		}
		return fmt.Errorf("sign download url: %w", err)
	}

	downloadURL := "/exports/download/" + token
	if err := s.exports.MarkFinished(ctx, jobID, filename, downloadURL); err != nil {
		return fmt.Errorf("mark export job finished: %w", err)
	}
	s.metrics.RecordExport(record.Params.Format, "finished")
	s.logger.Info("export finished", zap.String("job_id", jobID), zap.String("file", filename))
	return nil
}

// ResolveDownload validates a signed token and opens the artifact.
func (s *ExportService) ResolveDownload(ctx context.Context, token string) (*os.File, string, error) {
	jobID, relPath, _, err := s.signer.Parse(token, false)
	if err != nil {
		return nil, "", appErrors.Clone(appErrors.ErrForbidden, "invalid or expired download token")
	}
	job, err := s.exports.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", appErrors.Clone(appErrors.ErrNotFound, "export job not found")
		}
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load export job")
	}
	if job.Status != models.ExportStatusFinished || job.ResultPath == nil || *job.ResultPath != relPath {
		return nil, "", appErrors.Clone(appErrors.ErrNotFound, "export artifact not available")
	}
	file, err := s.storage.Open(relPath)
	if err != nil {
		return nil, "", appErrors.Clone(appErrors.ErrNotFound, "export artifact not available")
	}
	return file, relPath, nil
}

// CleanupExpired removes finished jobs whose artifacts have outlived
// the retention window.
func (s *ExportService) CleanupExpired(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-s.resultTTL)
	expired, err := s.exports.ListFinishedBefore(ctx, cutoff)
	if err != nil {
		return err
	}
	for _, job := range expired {
		if job.ResultPath != nil {
			if err := s.storage.Delete(*job.ResultPath); err != nil {
				s.logger.Warn("failed to delete export artifact", zap.String("job_id", job.ID), zap.Error(err))
			}
		}
		if err := s.exports.Delete(ctx, job.ID); err != nil {
			s.logger.Warn("failed to delete export job", zap.String("job_id", job.ID), zap.Error(err))
			continue
		}
		s.logger.Info("export artifact cleaned up", zap.String("job_id", job.ID))
	}
	return nil
}

func (s *ExportService) loadSession(ctx context.Context, sessionID string) (*models.PlannerSession, error) {
	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "planner session not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load planner session")
	}
	if session.MajorSlug == "" {
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "questionnaire not submitted")
	}
	return session, nil
}

func (s *ExportService) render(ctx context.Context, job *models.ExportJob) ([]byte, string, error) {
	program, ok := catalog.Program(job.Params.MajorSlug)
	if !ok {
		return nil, "", fmt.Errorf("unknown major %q", job.Params.MajorSlug)
	}
	session, err := s.sessions.FindByID(ctx, job.SessionID)
	if err != nil {
		return nil, "", fmt.Errorf("load session: %w", err)
	}
	entries, err := s.schedules.ListBySession(ctx, job.SessionID, job.Params.MajorSlug)
	if err != nil {
		return nil, "", fmt.Errorf("list schedule entries: %w", err)
	}

	// Artifacts are namespaced by job id; the timestamp alone is not
	// unique across jobs.
	stamp := time.Now().UTC().Format("20060102-1504")
	switch job.Params.Format {
	case models.ExportFormatCSV:
		data, err := renderScheduleCSV(program, entries)
		if err != nil {
			return nil, "", err
		}
		return data, fmt.Sprintf("%s/schedule-%s.csv", job.ID, stamp), nil
	case models.ExportFormatPoster:
		data, err := renderSchedulePoster(program, session, entries)
		if err != nil {
			return nil, "", err
		}
		return data, fmt.Sprintf("%s/schedule-%s.pdf", job.ID, stamp), nil
	default:
		return nil, "", fmt.Errorf("unsupported export format %q", job.Params.Format)
	}
}

func dayLabel(day models.Day) string {
	switch day {
	case models.DaySundayTuesday:
		return "Sunday / Tuesday"
	case models.DayMondayWednesday:
		return "Monday / Wednesday"
	default:
		return string(day)
	}
}

func renderScheduleCSV(program *models.MajorProgram, entries []models.ScheduleEntry) ([]byte, error) {
	dataset := export.Dataset{
		Headers: []string{"Code", "Course", "Course (Arabic)", "Credits", "Days", "Start", "End", "CRN"},
	}
	for _, entry := range entries {
		course, _ := program.FindCourse(entry.CourseID)
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Code":            course.Code,
			"Course":          course.Name,
			"Course (Arabic)": course.NameAr,
			"Credits":         fmt.Sprintf("%d", course.Credits),
			"Days":            dayLabel(entry.Day),
			"Start":           entry.Start,
			"End":             entry.End,
			"CRN":             entry.CRN,
		})
	}
	return export.NewCSVExporter().Render(dataset)
}

func renderSchedulePoster(program *models.MajorProgram, session *models.PlannerSession, entries []models.ScheduleEntry) ([]byte, error) {
	schedule := export.Schedule{
		Title:      program.Name,
		Subtitle:   fmt.Sprintf("%s (%s)", session.Username, session.StudentID),
		Days:       []string{dayLabel(models.DaySundayTuesday), dayLabel(models.DayMondayWednesday)},
		StartTimes: models.StartTimes,
	}
	for _, entry := range entries {
		course, _ := program.FindCourse(entry.CourseID)
		schedule.Cells = append(schedule.Cells, export.ScheduleCell{
			Code:  course.Code,
			Name:  course.Name,
			CRN:   entry.CRN,
			Day:   dayLabel(entry.Day),
			Start: entry.Start,
			End:   entry.End,
		})
	}
	return export.NewPosterExporter().Render(schedule)
}
