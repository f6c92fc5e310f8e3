package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/students-sa/planner-api/internal/catalog"
	"github.com/students-sa/planner-api/internal/models"
	appErrors "github.com/students-sa/planner-api/pkg/errors"
)

type sessionReader interface {
	FindByID(ctx context.Context, id string) (*models.PlannerSession, error)
}

type planCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Invalidate(ctx context.Context, pattern string) error
}

func statsCacheKey(sessionID, majorSlug string) string {
	return fmt.Sprintf("plan:stats:%s:%s", sessionID, majorSlug)
}

func statsCachePattern(sessionID string) string {
	return fmt.Sprintf("plan:stats:%s:*", sessionID)
}

// PlanService answers eligibility questions and derives plan
// statistics for a session's major.
type PlanService struct {
	sessions sessionReader
	cache    planCache
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewPlanService constructs a PlanService.
func NewPlanService(sessions sessionReader, cache planCache, cacheTTL time.Duration, logger *zap.Logger) *PlanService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlanService{sessions: sessions, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// AvailableCourses resolves what the session may stage next term.
func (s *PlanService) AvailableCourses(ctx context.Context, sessionID string) ([]models.Course, error) {
	session, program, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return ResolveAvailable(program, session), nil
}

// Stats computes the dashboard statistics, served from cache when warm.
func (s *PlanService) Stats(ctx context.Context, sessionID string) (*models.PlanStats, error) {
	session, program, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	key := statsCacheKey(sessionID, session.MajorSlug)
	var cached models.PlanStats
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return &cached, nil
	}

	stats := ComputeStats(program, session)
	if err := s.cache.Set(ctx, key, stats, s.cacheTTL); err != nil {
		s.logger.Warn("plan stats cache write failed", zap.Error(err))
	}
	return stats, nil
}

// InvalidateStats drops every cached stats payload of the session.
func (s *PlanService) InvalidateStats(ctx context.Context, sessionID string) error {
	return s.cache.Invalidate(ctx, statsCachePattern(sessionID))
}

func (s *PlanService) load(ctx context.Context, sessionID string) (*models.PlannerSession, *models.MajorProgram, error) {
	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "planner session not found")
		}
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load planner session")
	}
	if session.MajorSlug == "" || session.FirstYearDone == nil {
		return nil, nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "questionnaire not submitted")
	}
	program, ok := catalog.Program(session.MajorSlug)
	if !ok {
		return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "unknown major")
	}
	return session, program, nil
}

// ResolveAvailable lists the courses the session may still stage:
// first-year students see uncompleted university requirements only;
// otherwise shared then major courses whose prerequisites are all
// completed and whose hour gate, if any, is met by completed credits.
// Completed and already-staged courses never appear.
func ResolveAvailable(program *models.MajorProgram, session *models.PlannerSession) []models.Course {
	available := []models.Course{}

	if session.FirstYearDone != nil && !*session.FirstYearDone {
		for _, c := range program.UniversityRequirements {
			if !session.HasCompleted(c.ID) && !session.InTerm(c.ID) {
				available = append(available, c)
			}
		}
		return available
	}

	completed := make(map[string]bool)
	for _, id := range session.CompletedIDs() {
		completed[id] = true
	}
	completedCredits := program.CreditsFor(session.CompletedIDs())

	groups := [][]models.Course{program.SharedFirstYearCourses, program.Courses}
	for _, group := range groups {
		for _, c := range group {
			if completed[c.ID] || session.InTerm(c.ID) {
				continue
			}
			if !prerequisitesMet(c, completed) {
				continue
			}
			if c.HourRequirement > 0 && completedCredits < c.HourRequirement {
				continue
			}
			available = append(available, c)
		}
	}
	return available
}

func prerequisitesMet(c models.Course, completed map[string]bool) bool {
	for _, pre := range c.Prerequisites {
		if !completed[pre] {
			return false
		}
	}
	return true
}

// CoursesCompletedThroughSemester returns the core major course ids
// with semester tags in [3, through]. Electives are never bulk
// completed.
func CoursesCompletedThroughSemester(program *models.MajorProgram, through int) pq.StringArray {
	ids := pq.StringArray{}
	for _, c := range program.Courses {
		if c.Category == models.CategoryCore && c.Semester >= 3 && c.Semester <= through {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// ComputeStats derives the dashboard numbers from the session state.
func ComputeStats(program *models.MajorProgram, session *models.PlannerSession) *models.PlanStats {
	all := program.AllCourses()
	completedIDs := session.CompletedIDs()
	completedCredits := program.CreditsFor(completedIDs)

	total := program.TotalCredits
	if total == 0 {
		for _, c := range all {
			total += c.Credits
		}
	}
	remaining := total - completedCredits
	if remaining < 0 {
		remaining = 0
	}

	return &models.PlanStats{
		CompletedCredits:  completedCredits,
		RemainingCredits:  remaining,
		TotalCredits:      total,
		CompletedCourses:  len(completedIDs),
		RemainingCourses:  len(all) - len(completedIDs),
		TotalCourses:      len(all),
		TermCourseCount:   len(session.TermCourses),
		TermCreditsStaged: program.CreditsFor(session.TermCourses),
	}
}
