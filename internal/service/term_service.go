package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/students-sa/planner-api/internal/catalog"
	"github.com/students-sa/planner-api/internal/models"
	appErrors "github.com/students-sa/planner-api/pkg/errors"
)

type scheduleWriter interface {
	Upsert(ctx context.Context, entry *models.ScheduleEntry) error
	Delete(ctx context.Context, key models.ScheduleKey) error
}

// TermService manages the staged next-term selection. The selection
// is capped; adds beyond the cap and duplicate adds are silent no-ops
// that return the unchanged state.
type TermService struct {
	sessions   sessionRepository
	schedules  scheduleWriter
	cache      statsCache
	maxCourses int
	logger     *zap.Logger
}

// NewTermService constructs a TermService.
func NewTermService(sessions sessionRepository, schedules scheduleWriter, cache statsCache, maxCourses int, logger *zap.Logger) *TermService {
	if maxCourses <= 0 {
		maxCourses = 6
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TermService{sessions: sessions, schedules: schedules, cache: cache, maxCourses: maxCourses, logger: logger}
}

// Add stages a course for next term and creates its draft schedule
// entry. A full term, an already-staged course, or a course already
// marked completed leaves the state untouched.
func (s *TermService) Add(ctx context.Context, sessionID, courseID string) (*models.PlannerSession, error) {
	session, program, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if _, ok := program.FindCourse(courseID); !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not in major catalog")
	}
	if session.InTerm(courseID) || session.HasCompleted(courseID) || len(session.TermCourses) >= s.maxCourses {
		return session, nil
	}

	session.TermCourses = append(session.TermCourses, courseID)
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save planner session")
	}

	entry := models.DefaultScheduleEntry(models.ScheduleKey{
		SessionID: sessionID,
		MajorSlug: session.MajorSlug,
		CourseID:  courseID,
	})
	if err := s.schedules.Upsert(ctx, &entry); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create schedule entry")
	}
	s.invalidateStats(ctx, sessionID)
	return session, nil
}

// Remove drops a course from the term and deletes its schedule entry.
// Removing a course that is not staged is a no-op.
func (s *TermService) Remove(ctx context.Context, sessionID, courseID string) (*models.PlannerSession, error) {
	session, _, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.InTerm(courseID) {
		return session, nil
	}

	session.TermCourses = removeID(session.TermCourses, courseID)
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save planner session")
	}
	key := models.ScheduleKey{SessionID: sessionID, MajorSlug: session.MajorSlug, CourseID: courseID}
	if err := s.schedules.Delete(ctx, key); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete schedule entry")
	}
	s.invalidateStats(ctx, sessionID)
	return session, nil
}

// MarkCompleted records a course as passed. The caller must confirm;
// an unconfirmed request changes nothing. The course is evicted from
// the term and appended to the first group it belongs to, checked in
// university, shared, major order.
func (s *TermService) MarkCompleted(ctx context.Context, sessionID, courseID string, confirm bool) (*models.PlannerSession, error) {
	if !confirm {
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "completion requires confirmation")
	}
	session, program, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.HasCompleted(courseID) {
		return session, nil
	}

	switch {
	case containsCourse(program.UniversityRequirements, courseID):
		session.CompletedUniversity = append(session.CompletedUniversity, courseID)
	case containsCourse(program.SharedFirstYearCourses, courseID):
		session.CompletedShared = append(session.CompletedShared, courseID)
	case containsCourse(program.Courses, courseID):
		session.CompletedMajor = append(session.CompletedMajor, courseID)
	default:
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not in major catalog")
	}

	staged := session.InTerm(courseID)
	if staged {
		session.TermCourses = removeID(session.TermCourses, courseID)
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save planner session")
	}
	if staged {
		key := models.ScheduleKey{SessionID: sessionID, MajorSlug: session.MajorSlug, CourseID: courseID}
		if err := s.schedules.Delete(ctx, key); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete schedule entry")
		}
	}
	s.invalidateStats(ctx, sessionID)

	s.logger.Info("course completed",
		zap.String("session_id", sessionID),
		zap.String("course_id", courseID),
		zap.Bool("was_staged", staged))
	return session, nil
}

func (s *TermService) load(ctx context.Context, sessionID string) (*models.PlannerSession, *models.MajorProgram, error) {
	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "planner session not found")
		}
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load planner session")
	}
	if session.MajorSlug == "" {
		return nil, nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "questionnaire not submitted")
	}
	program, ok := catalog.Program(session.MajorSlug)
	if !ok {
		return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "unknown major")
	}
	return session, program, nil
}

func (s *TermService) invalidateStats(ctx context.Context, sessionID string) {
	if err := s.cache.Invalidate(ctx, statsCachePattern(sessionID)); err != nil {
		s.logger.Warn("failed to invalidate plan stats cache", zap.Error(err))
	}
}

func containsCourse(group []models.Course, id string) bool {
	for _, c := range group {
		if c.ID == id {
			return true
		}
	}
	return false
}

func removeID(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
