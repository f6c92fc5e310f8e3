package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/students-sa/planner-api/internal/catalog"
	"github.com/students-sa/planner-api/internal/models"
	appErrors "github.com/students-sa/planner-api/pkg/errors"
)

type sessionRepository interface {
	FindByID(ctx context.Context, id string) (*models.PlannerSession, error)
	Save(ctx context.Context, session *models.PlannerSession) error
}

type scheduleCleaner interface {
	DeleteBySession(ctx context.Context, sessionID, majorSlug string) error
}

type statsCache interface {
	Invalidate(ctx context.Context, pattern string) error
}

// QuestionnaireRequest seeds a session's completion state for a major
// in one submission.
type QuestionnaireRequest struct {
	FirstYearDone       *bool    `json:"first_year_done" validate:"required"`
	CompletedUniversity []string `json:"completed_university"`
	CompletedShared     []string `json:"completed_shared"`
	CompletedSemesters  int      `json:"completed_semesters" validate:"gte=0,lte=8"`
}

// SessionService owns the planner session lifecycle: questionnaire
// seeding, state reads and resets.
type SessionService struct {
	sessions  sessionRepository
	schedules scheduleCleaner
	cache     statsCache
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSessionService constructs a SessionService.
func NewSessionService(sessions sessionRepository, schedules scheduleCleaner, cache statsCache, validate *validator.Validate, logger *zap.Logger) *SessionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionService{sessions: sessions, schedules: schedules, cache: cache, validator: validate, logger: logger}
}

// Get loads the session state. A missing row yields the default empty
// state rather than an error.
func (s *SessionService) Get(ctx context.Context, sessionID string) (*models.PlannerSession, error) {
	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return emptySession(sessionID), nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load planner session")
	}
	return session, nil
}

// SubmitQuestionnaire replaces the session's seeded completion state
// for the major. Resubmission overwrites the previous answers; the
// staged term and its schedule entries are cleared.
func (s *SessionService) SubmitQuestionnaire(ctx context.Context, sessionID, majorSlug string, req QuestionnaireRequest) (*models.PlannerSession, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid questionnaire payload")
	}
	program, ok := catalog.Program(majorSlug)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "unknown major")
	}

	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "planner session not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load planner session")
	}

	firstYearDone := *req.FirstYearDone
	session.MajorSlug = majorSlug
	session.FirstYearDone = &firstYearDone
	session.TermCourses = pq.StringArray{}

	if !firstYearDone {
		session.CompletedUniversity = filterKnown(req.CompletedUniversity, program.UniversityRequirements)
		session.CompletedShared = pq.StringArray{}
		session.CompletedMajor = pq.StringArray{}
		session.CompletedSemesters = 0
	} else {
		session.CompletedUniversity = courseIDs(program.UniversityRequirements)
		session.CompletedShared = filterKnown(req.CompletedShared, program.SharedFirstYearCourses)
		session.CompletedSemesters = req.CompletedSemesters
		if req.CompletedSemesters >= 3 {
			session.CompletedMajor = CoursesCompletedThroughSemester(program, req.CompletedSemesters)
		} else {
			session.CompletedMajor = pq.StringArray{}
		}
	}

	if err := s.schedules.DeleteBySession(ctx, sessionID, majorSlug); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to clear schedule entries")
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save planner session")
	}
	if err := s.cache.Invalidate(ctx, statsCachePattern(sessionID)); err != nil {
		s.logger.Warn("failed to invalidate plan stats cache", zap.Error(err))
	}

	s.logger.Info("questionnaire submitted",
		zap.String("session_id", sessionID),
		zap.String("major", majorSlug),
		zap.Bool("first_year_done", firstYearDone),
		zap.Int("completed_semesters", session.CompletedSemesters))

	return session, nil
}

// Reset clears the seeded state and staged term for the session's
// current major.
func (s *SessionService) Reset(ctx context.Context, sessionID string) (*models.PlannerSession, error) {
	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "planner session not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load planner session")
	}

	majorSlug := session.MajorSlug
	session.FirstYearDone = nil
	session.CompletedUniversity = pq.StringArray{}
	session.CompletedShared = pq.StringArray{}
	session.CompletedMajor = pq.StringArray{}
	session.CompletedSemesters = 0
	session.TermCourses = pq.StringArray{}

	if majorSlug != "" {
		if err := s.schedules.DeleteBySession(ctx, sessionID, majorSlug); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to clear schedule entries")
		}
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save planner session")
	}
	if err := s.cache.Invalidate(ctx, statsCachePattern(sessionID)); err != nil {
		s.logger.Warn("failed to invalidate plan stats cache", zap.Error(err))
	}
	return session, nil
}

func emptySession(id string) *models.PlannerSession {
	return &models.PlannerSession{
		ID:                  id,
		CompletedUniversity: pq.StringArray{},
		CompletedShared:     pq.StringArray{},
		CompletedMajor:      pq.StringArray{},
		TermCourses:         pq.StringArray{},
	}
}

// filterKnown keeps only ids that name a course in the group,
// preserving submission order and dropping duplicates.
func filterKnown(ids []string, group []models.Course) pq.StringArray {
	known := make(map[string]bool, len(group))
	for _, c := range group {
		known[c.ID] = true
	}
	out := pq.StringArray{}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if known[id] && !seen[id] {
			out = append(out, id)
			seen[id] = true
		}
	}
	return out
}

func courseIDs(group []models.Course) pq.StringArray {
	ids := make(pq.StringArray, 0, len(group))
	for _, c := range group {
		ids = append(ids, c.ID)
	}
	return ids
}
