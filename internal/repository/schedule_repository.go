package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/students-sa/planner-api/internal/models"
)

// ScheduleRepository manages persisted schedule entries keyed by
// session, major and course. Writes are last-write-wins upserts.
type ScheduleRepository struct {
	db *sqlx.DB
}

// NewScheduleRepository constructs a ScheduleRepository.
func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// Upsert inserts or replaces the schedule entry for its key.
func (r *ScheduleRepository) Upsert(ctx context.Context, entry *models.ScheduleEntry) error {
	entry.UpdatedAt = time.Now().UTC()
	const query = `INSERT INTO schedule_entries (session_id, major_slug, course_id, day, start_time, end_time, crn, updated_at)
        VALUES (:session_id, :major_slug, :course_id, :day, :start_time, :end_time, :crn, :updated_at)
        ON CONFLICT (session_id, major_slug, course_id) DO UPDATE SET
        day = EXCLUDED.day, start_time = EXCLUDED.start_time, end_time = EXCLUDED.end_time,
        crn = EXCLUDED.crn, updated_at = EXCLUDED.updated_at`
	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("upsert schedule entry %s: %w", entry.Key().String(), err)
	}
	return nil
}

// Find fetches a single schedule entry by key.
func (r *ScheduleRepository) Find(ctx context.Context, key models.ScheduleKey) (*models.ScheduleEntry, error) {
	const query = `SELECT session_id, major_slug, course_id, day, start_time, end_time, crn, updated_at
        FROM schedule_entries WHERE session_id = $1 AND major_slug = $2 AND course_id = $3`
	var entry models.ScheduleEntry
	if err := r.db.GetContext(ctx, &entry, query, key.SessionID, key.MajorSlug, key.CourseID); err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListBySession returns every schedule entry of a session's major,
// ordered by course id for stable rendering.
func (r *ScheduleRepository) ListBySession(ctx context.Context, sessionID, majorSlug string) ([]models.ScheduleEntry, error) {
	const query = `SELECT session_id, major_slug, course_id, day, start_time, end_time, crn, updated_at
        FROM schedule_entries WHERE session_id = $1 AND major_slug = $2 ORDER BY course_id`
	var entries []models.ScheduleEntry
	if err := r.db.SelectContext(ctx, &entries, query, sessionID, majorSlug); err != nil {
		return nil, fmt.Errorf("list schedule entries: %w", err)
	}
	return entries, nil
}

// Delete removes the entry for the key. Removing a missing entry is
// not an error.
func (r *ScheduleRepository) Delete(ctx context.Context, key models.ScheduleKey) error {
	const query = `DELETE FROM schedule_entries WHERE session_id = $1 AND major_slug = $2 AND course_id = $3`
	if _, err := r.db.ExecContext(ctx, query, key.SessionID, key.MajorSlug, key.CourseID); err != nil {
		return fmt.Errorf("delete schedule entry %s: %w", key.String(), err)
	}
	return nil
}

// DeleteBySession drops all schedule entries of a session's major.
// Used when the planner is reset.
func (r *ScheduleRepository) DeleteBySession(ctx context.Context, sessionID, majorSlug string) error {
	const query = `DELETE FROM schedule_entries WHERE session_id = $1 AND major_slug = $2`
	if _, err := r.db.ExecContext(ctx, query, sessionID, majorSlug); err != nil {
		return fmt.Errorf("delete schedule entries for session %s: %w", sessionID, err)
	}
	return nil
}
