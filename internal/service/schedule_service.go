package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/students-sa/planner-api/internal/models"
	appErrors "github.com/students-sa/planner-api/pkg/errors"
)

type scheduleRepository interface {
	Find(ctx context.Context, key models.ScheduleKey) (*models.ScheduleEntry, error)
	Upsert(ctx context.Context, entry *models.ScheduleEntry) error
	ListBySession(ctx context.Context, sessionID, majorSlug string) ([]models.ScheduleEntry, error)
}

// Patchable schedule fields.
const (
	ScheduleFieldDay   = "day"
	ScheduleFieldStart = "start"
	ScheduleFieldCRN   = "crn"
)

// ScheduleFieldRequest patches one field of a course's schedule entry.
type ScheduleFieldRequest struct {
	Field string `json:"field" validate:"required,oneof=day start crn"`
	Value string `json:"value"`
}

// ScheduleEntryView is a schedule entry with its derived CRN validity.
type ScheduleEntryView struct {
	models.ScheduleEntry
	CRNValid bool `json:"crn_valid"`
}

// ScheduleOverview is the full picture of a session's term schedule:
// every entry, the pairwise conflicts, and export readiness. Conflicts
// are advisory and never affect readiness.
type ScheduleOverview struct {
	Entries   []ScheduleEntryView       `json:"entries"`
	Conflicts []models.ScheduleConflict `json:"conflicts"`
	Ready     bool                      `json:"ready"`
	NotReady  []string                  `json:"not_ready"`
}

// ScheduleService maintains per-course schedule entries and derives
// conflicts and readiness over the session's staged term.
type ScheduleService struct {
	sessions  sessionReader
	schedules scheduleRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewScheduleService constructs a ScheduleService.
func NewScheduleService(sessions sessionReader, schedules scheduleRepository, validate *validator.Validate, logger *zap.Logger) *ScheduleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{sessions: sessions, schedules: schedules, validator: validate, logger: logger}
}

// UpdateField patches one schedule field for a staged course. A start
// patch recomputes the end time; a CRN patch stores the raw value and
// reports validity rather than rejecting malformed input.
func (s *ScheduleService) UpdateField(ctx context.Context, sessionID, courseID string, req ScheduleFieldRequest) (*ScheduleEntryView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule patch")
	}
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.InTerm(courseID) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course is not staged for next term")
	}

	key := models.ScheduleKey{SessionID: sessionID, MajorSlug: session.MajorSlug, CourseID: courseID}
	entry, err := s.schedules.Find(ctx, key)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load schedule entry")
		}
		fresh := models.DefaultScheduleEntry(key)
		entry = &fresh
	}

	switch req.Field {
	case ScheduleFieldDay:
		day := models.Day(req.Value)
		if !day.Valid() {
			return nil, appErrors.Clone(appErrors.ErrValidation, "unknown day pair")
		}
		entry.Day = day
	case ScheduleFieldStart:
		if !models.ValidStart(req.Value) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "unknown start slot")
		}
		entry.Start = req.Value
		entry.End = models.DeriveEnd(req.Value)
	case ScheduleFieldCRN:
		entry.CRN = req.Value
	}

	if err := s.schedules.Upsert(ctx, entry); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save schedule entry")
	}
	return &ScheduleEntryView{ScheduleEntry: *entry, CRNValid: models.ValidCRN(entry.CRN)}, nil
}

// Overview lists the session's schedule with conflicts and readiness.
func (s *ScheduleService) Overview(ctx context.Context, sessionID string) (*ScheduleOverview, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	entries, err := s.schedules.ListBySession(ctx, sessionID, session.MajorSlug)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list schedule entries")
	}
	return buildOverview(session, entries), nil
}

func (s *ScheduleService) loadSession(ctx context.Context, sessionID string) (*models.PlannerSession, error) {
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

// buildOverview derives conflicts and readiness. Readiness requires
// every staged course to have a complete entry with a valid CRN;
// conflicts are reported alongside but never block.
func buildOverview(session *models.PlannerSession, entries []models.ScheduleEntry) *ScheduleOverview {
	byCourse := make(map[string]*models.ScheduleEntry, len(entries))
	views := make([]ScheduleEntryView, 0, len(entries))
	for i := range entries {
		byCourse[entries[i].CourseID] = &entries[i]
		views = append(views, ScheduleEntryView{
			ScheduleEntry: entries[i],
			CRNValid:      models.ValidCRN(entries[i].CRN),
		})
	}

	conflicts := []models.ScheduleConflict{}
	for i := range entries {
		for j := i + 1; j < len(entries); j++ {
			if entries[i].ConflictsWith(&entries[j]) {
				conflicts = append(conflicts, models.ScheduleConflict{
					CourseID:      entries[i].CourseID,
					OtherCourseID: entries[j].CourseID,
					Day:           entries[i].Day,
					Start:         entries[i].Start,
					End:           entries[i].End,
				})
			}
		}
	}

	notReady := []string{}
	for _, courseID := range session.TermCourses {
		entry, ok := byCourse[courseID]
		if !ok || !entry.Ready() {
			notReady = append(notReady, courseID)
		}
	}

	return &ScheduleOverview{
		Entries:   views,
		Conflicts: conflicts,
		Ready:     len(session.TermCourses) > 0 && len(notReady) == 0,
		NotReady:  notReady,
	}
}
