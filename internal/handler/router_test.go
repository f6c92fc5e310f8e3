package handler

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/students-sa/planner-api/internal/middleware"
	"github.com/students-sa/planner-api/internal/models"
	"github.com/students-sa/planner-api/internal/service"
	"github.com/students-sa/planner-api/pkg/jobs"
	"github.com/students-sa/planner-api/pkg/storage"
)

type memSessionRepo struct {
	sessions map[string]models.PlannerSession
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: map[string]models.PlannerSession{}}
}

func (r *memSessionRepo) Create(_ context.Context, session *models.PlannerSession) error {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	r.sessions[session.ID] = *session
	return nil
}

func (r *memSessionRepo) FindByID(_ context.Context, id string) (*models.PlannerSession, error) {
	session, ok := r.sessions[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := session
	return &copied, nil
}

func (r *memSessionRepo) Save(_ context.Context, session *models.PlannerSession) error {
	r.sessions[session.ID] = *session
	return nil
}

type memScheduleRepo struct {
	entries map[models.ScheduleKey]models.ScheduleEntry
}

func newMemScheduleRepo() *memScheduleRepo {
	return &memScheduleRepo{entries: map[models.ScheduleKey]models.ScheduleEntry{}}
}

func (r *memScheduleRepo) Upsert(_ context.Context, entry *models.ScheduleEntry) error {
	r.entries[entry.Key()] = *entry
	return nil
}

func (r *memScheduleRepo) Find(_ context.Context, key models.ScheduleKey) (*models.ScheduleEntry, error) {
	entry, ok := r.entries[key]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := entry
	return &copied, nil
}

func (r *memScheduleRepo) ListBySession(_ context.Context, sessionID, majorSlug string) ([]models.ScheduleEntry, error) {
	var entries []models.ScheduleEntry
	for key, entry := range r.entries {
		if key.SessionID == sessionID && key.MajorSlug == majorSlug {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].CourseID < entries[j].CourseID })
	return entries, nil
}

func (r *memScheduleRepo) Delete(_ context.Context, key models.ScheduleKey) error {
	delete(r.entries, key)
	return nil
}

func (r *memScheduleRepo) DeleteBySession(_ context.Context, sessionID, majorSlug string) error {
	for key := range r.entries {
		if key.SessionID == sessionID && key.MajorSlug == majorSlug {
			delete(r.entries, key)
		}
	}
	return nil
}

type noopCache struct{}

func (noopCache) Get(context.Context, string, interface{}) (bool, error) { return false, nil }
func (noopCache) Set(context.Context, string, interface{}, time.Duration) error {
	return nil
}
func (noopCache) Invalidate(context.Context, string) error { return nil }

type memExportRepo struct {
	jobs map[string]models.ExportJob
}

func newMemExportRepo() *memExportRepo {
	return &memExportRepo{jobs: map[string]models.ExportJob{}}
}

func (r *memExportRepo) Create(_ context.Context, job *models.ExportJob) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	job.Status = models.ExportStatusQueued
	job.CreatedAt = time.Now().UTC()
	r.jobs[job.ID] = *job
	return nil
}

func (r *memExportRepo) FindByID(_ context.Context, id string) (*models.ExportJob, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := job
	return &copied, nil
}

func (r *memExportRepo) MarkProcessing(_ context.Context, id string) error {
	job := r.jobs[id]
	job.Status = models.ExportStatusProcessing
	r.jobs[id] = job
	return nil
}

func (r *memExportRepo) MarkFinished(_ context.Context, id, resultPath, resultURL string) error {
	job := r.jobs[id]
	job.Status = models.ExportStatusFinished
	job.ResultPath = &resultPath
	job.ResultURL = &resultURL
	now := time.Now().UTC()
	job.FinishedAt = &now
	r.jobs[id] = job
	return nil
}

func (r *memExportRepo) MarkFailed(_ context.Context, id, reason string) error {
	job := r.jobs[id]
	job.Status = models.ExportStatusFailed
	job.ErrorMessage = &reason
	r.jobs[id] = job
	return nil
}

func (r *memExportRepo) ListFinishedBefore(_ context.Context, cutoff time.Time) ([]models.ExportJob, error) {
	var expired []models.ExportJob
	for _, job := range r.jobs {
		if job.Status == models.ExportStatusFinished && job.FinishedAt != nil && job.FinishedAt.Before(cutoff) {
			expired = append(expired, job)
		}
	}
	return expired, nil
}

func (r *memExportRepo) Delete(_ context.Context, id string) error {
	delete(r.jobs, id)
	return nil
}

// syncQueue runs export jobs inline so tests observe finished jobs
// without racing a worker pool.
type syncQueue struct {
	process func(ctx context.Context, job jobs.Job) error
}

func (q *syncQueue) Enqueue(job jobs.Job) error {
	return q.process(context.Background(), job)
}

func buildPlannerRouter(t *testing.T) (*gin.Engine, *memSessionRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	validate := validator.New()
	sessionRepo := newMemSessionRepo()
	scheduleRepo := newMemScheduleRepo()
	exportRepo := newMemExportRepo()
	cache := noopCache{}

	store, err := storage.NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("local storage: %v", err)
	}
	signer := storage.NewSignedURLSigner("test-secret", time.Hour)

	authService := service.NewAuthService(sessionRepo, validate, nil, service.AuthConfig{
		TokenSecret: "test-secret",
		TokenExpiry: time.Hour,
		Issuer:      "planner-api-test",
	})
	sessionService := service.NewSessionService(sessionRepo, scheduleRepo, cache, validate, nil)
	planService := service.NewPlanService(sessionRepo, cache, time.Minute, nil)
	termService := service.NewTermService(sessionRepo, scheduleRepo, cache, 6, nil)
	scheduleService := service.NewScheduleService(sessionRepo, scheduleRepo, validate, nil)
	exportService := service.NewExportService(exportRepo, sessionRepo, scheduleRepo, store, signer, nil, time.Hour, nil)
	exportService.AttachQueue(&syncQueue{process: exportService.Process})

	router := gin.New()
	router.Use(func(c *gin.Context) {
		if sid := c.GetHeader("X-Session-ID"); sid != "" {
			c.Set(middleware.ContextSessionKey, &models.SessionClaims{
				SessionID: sid,
				Username:  "leen",
				StudentID: "441002200",
			})
		}
		c.Next()
	})

	authHandler := NewAuthHandler(authService)
	catalogHandler := NewCatalogHandler()
	sessionHandler := NewSessionHandler(sessionService)
	planHandler := NewPlanHandler(planService)
	termHandler := NewTermHandler(termService)
	scheduleHandler := NewScheduleHandler(scheduleService)
	exportHandler := NewExportHandler(exportService)

	router.POST("/auth/sign-in", authHandler.SignIn)
	router.GET("/catalog/colleges", catalogHandler.Colleges)
	router.GET("/catalog/majors", catalogHandler.Majors)
	router.GET("/catalog/majors/:slug", catalogHandler.Major)
	router.GET("/session", sessionHandler.Get)
	router.POST("/session/majors/:slug/questionnaire", sessionHandler.SubmitQuestionnaire)
	router.POST("/session/reset", sessionHandler.Reset)
	router.GET("/plan/available-courses", planHandler.AvailableCourses)
	router.GET("/plan/stats", planHandler.Stats)
	router.POST("/term/courses", termHandler.Add)
	router.DELETE("/term/courses/:courseId", termHandler.Remove)
	router.POST("/term/courses/:courseId/complete", termHandler.MarkCompleted)
	router.PATCH("/schedule/courses/:courseId", scheduleHandler.UpdateField)
	router.GET("/schedule", scheduleHandler.Overview)
	router.POST("/exports", exportHandler.Request)
	router.GET("/exports/:id", exportHandler.Status)
	router.GET("/exports/download/:token", exportHandler.Download)
	return router, sessionRepo
}

func performRequest(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}
