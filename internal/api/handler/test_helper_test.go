package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sietse/jobboard/internal/api/dto"
	"github.com/sietse/jobboard/internal/api/middleware"
	"github.com/sietse/jobboard/internal/core/repository"
	"github.com/sietse/jobboard/internal/core/service"
	"github.com/sietse/jobboard/internal/infrastructure/sqlite"
	"github.com/sietse/jobboard/internal/infrastructure/storage"
)

// testEnv holds all test dependencies
type testEnv struct {
	db           *sqlite.DB
	router       *gin.Engine
	userRepo     repository.UserRepository
	employerRepo repository.EmployerRepository
	jobRepo      repository.JobRepository
	tagRepo      repository.TagRepository
	sessionRepo  repository.SessionRepository
	authService  *service.AuthService
	jobService   *service.JobService
}

// setupTestEnv creates a full router over an in-memory SQLite database
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	userRepo := sqlite.NewUserRepository(db)
	employerRepo := sqlite.NewEmployerRepository(db)
	accountRepo := sqlite.NewAccountRepository(db)
	jobRepo := sqlite.NewJobRepository(db)
	tagRepo := sqlite.NewTagRepository(db)
	sessionRepo := sqlite.NewSessionRepository(db)

	logoStore := storage.NewLogoStore(t.TempDir())

	authService := service.NewAuthService(userRepo, sessionRepo, "test-secret", "HS256")
	accountService := service.NewAccountService(accountRepo, userRepo, logoStore, authService)
	jobService := service.NewJobService(jobRepo, employerRepo, tagRepo)

	jobHandler := NewJobHandler(jobService)
	sessionHandler := NewSessionHandler(authService, false)
	registrationHandler := NewRegistrationHandler(accountService, authService, false)
	tagHandler := NewTagHandler(jobService)
	searchHandler := NewSearchHandler(jobService)

	authMiddleware := middleware.AuthMiddleware(authService)
	guestMiddleware := middleware.GuestMiddleware(authService)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.GET("/", jobHandler.ListJobs)
	router.GET("/search", searchHandler.Search)
	router.GET("/tags/:name", tagHandler.ShowTag)

	router.GET("/register", guestMiddleware, registrationHandler.CreateForm)
	router.POST("/register", guestMiddleware, registrationHandler.Store)
	router.GET("/login", guestMiddleware, sessionHandler.CreateForm)
	router.POST("/login", guestMiddleware, sessionHandler.Store)
	router.DELETE("/logout", authMiddleware, sessionHandler.Destroy)

	router.GET("/jobs", jobHandler.ListJobs)
	router.GET("/jobs/create", authMiddleware, jobHandler.CreateForm)
	router.POST("/jobs", authMiddleware, jobHandler.StoreJob)
	router.GET("/jobs/:id", jobHandler.ShowJob)
	router.GET("/jobs/:id/edit", authMiddleware, jobHandler.EditForm)
	router.PUT("/jobs/:id", authMiddleware, jobHandler.UpdateJob)
	router.DELETE("/jobs/:id", authMiddleware, jobHandler.DestroyJob)

	return &testEnv{
		db:           db,
		router:       router,
		userRepo:     userRepo,
		employerRepo: employerRepo,
		jobRepo:      jobRepo,
		tagRepo:      tagRepo,
		sessionRepo:  sessionRepo,
		authService:  authService,
		jobService:   jobService,
	}
}

// pngBytes is a minimal PNG header, enough for content sniffing.
func pngBytes() []byte {
	return []byte{
		0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a,
		0x00, 0x00, 0x00, 0x0d, 'I', 'H', 'D', 'R',
		0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
		0x08, 0x02, 0x00, 0x00, 0x00,
	}
}

// registrationForm builds the multipart registration body.
func registrationForm(t *testing.T, fields map[string]string, logo []byte) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			t.Fatalf("WriteField %s: %v", name, err)
		}
	}
	if logo != nil {
		fileWriter, err := writer.CreateFormFile("logo", "logo.png")
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		if _, err := fileWriter.Write(logo); err != nil {
			t.Fatalf("write logo: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("writer.Close: %v", err)
	}
	return &body, writer.FormDataContentType()
}

func defaultRegistration(email string) map[string]string {
	return map[string]string{
		"name":                  "Jane Doe",
		"email":                 email,
		"password":              "password123",
		"password_confirmation": "password123",
		"employer":              "Acme B.V.",
	}
}

// register creates an account through the HTTP surface and returns
// the session token from the response body.
func (env *testEnv) register(t *testing.T, email string) string {
	t.Helper()

	body, contentType := registrationForm(t, defaultRegistration(email), pngBytes())
	req := httptest.NewRequest(http.MethodPost, "/register", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("registration failed: status %d, body %s", w.Code, w.Body.String())
	}

	var resp dto.SessionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse registration response: %v", err)
	}
	return resp.Token
}

// request performs an HTTP request with an optional JSON body and
// bearer session token.
func (env *testEnv) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// createJob posts a valid job and returns its response.
func (env *testEnv) createJob(t *testing.T, token string, overrides map[string]interface{}) dto.JobResponse {
	t.Helper()

	payload := map[string]interface{}{
		"title":    "Backend Developer",
		"salary":   "$90,000 USD",
		"location": "Remote",
		"schedule": "Full-time",
		"url":      "https://example.com/jobs/1",
		"featured": false,
	}
	for key, value := range overrides {
		payload[key] = value
	}

	w := env.request(t, http.MethodPost, "/jobs", token, payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("job creation failed: status %d, body %s", w.Code, w.Body.String())
	}

	var resp dto.JobResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse job response: %v", err)
	}
	return resp
}

func parseValidationResponse(t *testing.T, w *httptest.ResponseRecorder) dto.ValidationErrorResponse {
	t.Helper()

	var resp dto.ValidationErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse validation response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

func parseJobListResponse(t *testing.T, w *httptest.ResponseRecorder) dto.JobListResponse {
	t.Helper()

	var resp dto.JobListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse job list response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

// countRows is a bare row count over one table.
func (env *testEnv) countRows(t *testing.T, table string) int {
	t.Helper()

	var count int
	if err := env.db.Get(&count, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)); err != nil {
		t.Fatalf("failed to count %s rows: %v", table, err)
	}
	return count
}

// ptr is a helper to create a pointer to a value
func ptr[T any](v T) *T {
	return &v
}
