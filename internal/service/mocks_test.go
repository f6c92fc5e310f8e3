package service

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/students-sa/planner-api/internal/models"
	"github.com/students-sa/planner-api/pkg/jobs"
)

type mockSessionRepo struct {
	sessions map[string]*models.PlannerSession
	saves    int
}

func newMockSessionRepo(sessions ...*models.PlannerSession) *mockSessionRepo {
	m := &mockSessionRepo{sessions: make(map[string]*models.PlannerSession)}
	for _, s := range sessions {
		m.sessions[s.ID] = s
	}
	return m
}

func (m *mockSessionRepo) Create(ctx context.Context, session *models.PlannerSession) error {
	if session.ID == "" {
		session.ID = fmt.Sprintf("sess-%d", len(m.sessions)+1)
	}
	m.sessions[session.ID] = session
	return nil
}

func (m *mockSessionRepo) FindByID(ctx context.Context, id string) (*models.PlannerSession, error) {
	if s, ok := m.sessions[id]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockSessionRepo) Save(ctx context.Context, session *models.PlannerSession) error {
	m.sessions[session.ID] = session
	m.saves++
	return nil
}

type mockScheduleRepo struct {
	entries map[models.ScheduleKey]models.ScheduleEntry
}

func newMockScheduleRepo() *mockScheduleRepo {
	return &mockScheduleRepo{entries: make(map[models.ScheduleKey]models.ScheduleEntry)}
}

func (m *mockScheduleRepo) Upsert(ctx context.Context, entry *models.ScheduleEntry) error {
	entry.UpdatedAt = time.Now().UTC()
	m.entries[entry.Key()] = *entry
	return nil
}

func (m *mockScheduleRepo) Find(ctx context.Context, key models.ScheduleKey) (*models.ScheduleEntry, error) {
	if e, ok := m.entries[key]; ok {
		return &e, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockScheduleRepo) ListBySession(ctx context.Context, sessionID, majorSlug string) ([]models.ScheduleEntry, error) {
	var out []models.ScheduleEntry
	for key, e := range m.entries {
		if key.SessionID == sessionID && key.MajorSlug == majorSlug {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CourseID < out[j].CourseID })
	return out, nil
}

func (m *mockScheduleRepo) Delete(ctx context.Context, key models.ScheduleKey) error {
	delete(m.entries, key)
	return nil
}

func (m *mockScheduleRepo) DeleteBySession(ctx context.Context, sessionID, majorSlug string) error {
	for key := range m.entries {
		if key.SessionID == sessionID && key.MajorSlug == majorSlug {
			delete(m.entries, key)
		}
	}
	return nil
}

type fakeCache struct {
	values      map[string][]byte
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string][]byte)}
}

func (c *fakeCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	c.values[key] = nil
	return nil
}

func (c *fakeCache) Invalidate(ctx context.Context, pattern string) error {
	c.invalidated = append(c.invalidated, pattern)
	return nil
}

type mockExportJobRepo struct {
	jobs map[string]*models.ExportJob
}

func newMockExportJobRepo() *mockExportJobRepo {
	return &mockExportJobRepo{jobs: make(map[string]*models.ExportJob)}
}

func (m *mockExportJobRepo) Create(ctx context.Context, job *models.ExportJob) error {
	if job.ID == "" {
		job.ID = fmt.Sprintf("job-%d", len(m.jobs)+1)
	}
	if job.Status == "" {
		job.Status = models.ExportStatusQueued
	}
	job.CreatedAt = time.Now().UTC()
	m.jobs[job.ID] = job
	return nil
}

func (m *mockExportJobRepo) FindByID(ctx context.Context, id string) (*models.ExportJob, error) {
	if j, ok := m.jobs[id]; ok {
		copied := *j
		return &copied, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockExportJobRepo) MarkProcessing(ctx context.Context, id string) error {
	m.jobs[id].Status = models.ExportStatusProcessing
	return nil
}

func (m *mockExportJobRepo) MarkFinished(ctx context.Context, id, resultPath, resultURL string) error {
	now := time.Now().UTC()
	job := m.jobs[id]
	job.Status = models.ExportStatusFinished
	job.ResultPath = &resultPath
	job.ResultURL = &resultURL
	job.FinishedAt = &now
	return nil
}

func (m *mockExportJobRepo) MarkFailed(ctx context.Context, id, reason string) error {
	now := time.Now().UTC()
	job := m.jobs[id]
	job.Status = models.ExportStatusFailed
	job.ErrorMessage = &reason
	job.FinishedAt = &now
	return nil
}

func (m *mockExportJobRepo) ListFinishedBefore(ctx context.Context, cutoff time.Time) ([]models.ExportJob, error) {
	var out []models.ExportJob
	for _, j := range m.jobs {
		if j.Status == models.ExportStatusFinished && j.FinishedAt != nil && j.FinishedAt.Before(cutoff) {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (m *mockExportJobRepo) Delete(ctx context.Context, id string) error {
	delete(m.jobs, id)
	return nil
}

type memoryStorage struct {
	files map[string][]byte
	dir   string
}

func newMemoryStorage(dir string) *memoryStorage {
	return &memoryStorage{files: make(map[string][]byte), dir: dir}
}

func (s *memoryStorage) Save(filename string, data []byte) (string, error) {
	s.files[filename] = data
	path := filepath.Join(s.dir, filename)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return filename, nil
}

func (s *memoryStorage) Open(filename string) (*os.File, error) {
	if _, ok := s.files[filename]; !ok {
		return nil, os.ErrNotExist
	}
	return os.Open(filepath.Join(s.dir, filename))
}

func (s *memoryStorage) Delete(filename string) error {
	delete(s.files, filename)
	return os.Remove(filepath.Join(s.dir, filename))
}

type mockQueue struct {
	enqueued []jobs.Job
	fail     bool
}

func (q *mockQueue) Enqueue(job jobs.Job) error {
	if q.fail {
		return fmt.Errorf("queue full")
	}
	q.enqueued = append(q.enqueued, job)
	return nil
}
