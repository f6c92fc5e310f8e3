package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/students-sa/planner-api/internal/models"
)

// SessionRepository manages persistence for planner sessions.
type SessionRepository struct {
	db *sqlx.DB
}

// NewSessionRepository constructs a SessionRepository.
func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a new planner session.
func (r *SessionRepository) Create(ctx context.Context, session *models.PlannerSession) error {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	session.UpdatedAt = now
	if session.CompletedUniversity == nil {
		session.CompletedUniversity = []string{}
	}
	if session.CompletedShared == nil {
		session.CompletedShared = []string{}
	}
	if session.CompletedMajor == nil {
		session.CompletedMajor = []string{}
	}
	if session.TermCourses == nil {
		session.TermCourses = []string{}
	}
	const query = `INSERT INTO planner_sessions (id, major_slug, username, student_id, first_year_done,
        completed_university, completed_shared, completed_major, completed_semesters, term_courses, created_at, updated_at)
        VALUES (:id, :major_slug, :username, :student_id, :first_year_done,
        :completed_university, :completed_shared, :completed_major, :completed_semesters, :term_courses, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, session); err != nil {
		return fmt.Errorf("create planner session: %w", err)
	}
	return nil
}

// FindByID fetches a planner session by ID.
func (r *SessionRepository) FindByID(ctx context.Context, id string) (*models.PlannerSession, error) {
	const query = `SELECT id, major_slug, username, student_id, first_year_done,
        completed_university, completed_shared, completed_major, completed_semesters, term_courses, created_at, updated_at
        FROM planner_sessions WHERE id = $1`
	var session models.PlannerSession
	if err := r.db.GetContext(ctx, &session, query, id); err != nil {
		return nil, err
	}
	return &session, nil
}

// Save persists the full session aggregate. Completed sets and the
// term selection are replaced wholesale.
func (r *SessionRepository) Save(ctx context.Context, session *models.PlannerSession) error {
	session.UpdatedAt = time.Now().UTC()
	const query = `UPDATE planner_sessions SET major_slug = :major_slug, first_year_done = :first_year_done,
        completed_university = :completed_university, completed_shared = :completed_shared, completed_major = :completed_major,
        completed_semesters = :completed_semesters, term_courses = :term_courses, updated_at = :updated_at
        WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, session); err != nil {
		return fmt.Errorf("save planner session: %w", err)
	}
	return nil
}
