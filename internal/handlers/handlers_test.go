package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/examai/exam-service/internal/config"
	"github.com/examai/exam-service/internal/models"
	"github.com/examai/exam-service/internal/repositories"
	"github.com/examai/exam-service/internal/services"
	"github.com/examai/exam-service/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAssessmentService is a mock implementation of services.AssessmentService
type MockAssessmentService struct {
	mock.Mock
}

func (m *MockAssessmentService) Create(ctx context.Context, req *services.CreateAssessmentRequest) (*models.Assessment, error) {
	args := m.Called(ctx, req)
	if a := args.Get(0); a != nil {
		return a.(*models.Assessment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAssessmentService) CreateFromUpload(ctx context.Context, req *services.UploadAssessmentRequest) (*models.Assessment, error) {
	args := m.Called(ctx, req)
	if a := args.Get(0); a != nil {
		return a.(*models.Assessment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAssessmentService) GetByID(ctx context.Context, id string) (*models.Assessment, error) {
	args := m.Called(ctx, id)
	if a := args.Get(0); a != nil {
		return a.(*models.Assessment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAssessmentService) List(ctx context.Context) ([]*models.Assessment, error) {
	args := m.Called(ctx)
	if a := args.Get(0); a != nil {
		return a.([]*models.Assessment), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockSubmissionService is a mock implementation of services.SubmissionService
type MockSubmissionService struct {
	mock.Mock
}

func (m *MockSubmissionService) Create(ctx context.Context, req *services.CreateSubmissionRequest) (*models.Submission, error) {
	args := m.Called(ctx, req)
	if s := args.Get(0); s != nil {
		return s.(*models.Submission), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSubmissionService) Grade(ctx context.Context, id string) (*models.GradeResult, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*models.GradeResult), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockLessonService is a mock implementation of services.LessonService
type MockLessonService struct {
	mock.Mock
}

func (m *MockLessonService) Create(ctx context.Context, req *services.CreateLessonRequest) (*models.Lesson, error) {
	args := m.Called(ctx, req)
	if l := args.Get(0); l != nil {
		return l.(*models.Lesson), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLessonService) List(ctx context.Context) ([]*models.Lesson, error) {
	args := m.Called(ctx)
	if l := args.Get(0); l != nil {
		return l.([]*models.Lesson), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockServiceManager struct {
	assessment *MockAssessmentService
	submission *MockSubmissionService
	lesson     *MockLessonService
}

func newMockServiceManager() *mockServiceManager {
	return &mockServiceManager{
		assessment: new(MockAssessmentService),
		submission: new(MockSubmissionService),
		lesson:     new(MockLessonService),
	}
}

func (m *mockServiceManager) Assessment() services.AssessmentService { return m.assessment }
func (m *mockServiceManager) Submission() services.SubmissionService { return m.submission }
func (m *mockServiceManager) Lesson() services.LessonService         { return m.lesson }

// fakeRepo backs the connectivity endpoint in tests; the typed accessors are
// never reached because handlers only use Ping and CollectionNames.
type fakeRepo struct {
	pingErr     error
	collections []string
}

func (r *fakeRepo) Assessment() repositories.AssessmentRepository { return nil }
func (r *fakeRepo) Submission() repositories.SubmissionRepository { return nil }
func (r *fakeRepo) Lesson() repositories.LessonRepository         { return nil }

func (r *fakeRepo) Ping(ctx context.Context) error { return r.pingErr }

func (r *fakeRepo) CollectionNames(ctx context.Context) ([]string, error) {
	return r.collections, nil
}

func newTestRouter(manager services.ServiceManager) *gin.Engine {
	return newTestRouterWithRepo(manager, &fakeRepo{collections: []string{"assessment"}})
}

func newTestRouterWithRepo(manager services.ServiceManager, repo repositories.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := utils.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	hm := NewHandlerManager(manager, repo, &config.Config{}, logger)
	hm.SetupRoutes(router)
	return router
}

func performRequest(router *gin.Engine, method, path string, body []byte, contentType string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRootEndpoint(t *testing.T) {
	router := newTestRouter(newMockServiceManager())

	w := performRequest(router, http.MethodGet, "/", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ExamAi backend running")
}

func TestStoreDiagnostic(t *testing.T) {
	router := newTestRouter(newMockServiceManager())

	w := performRequest(router, http.MethodGet, "/test", nil, "")

	require.Equal(t, http.StatusOK, w.Code)

	var info map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "running", info["backend"])
	assert.Equal(t, "connected", info["connection_status"])
}

func TestStoreDiagnosticTruncatesErrorsOnRuneBoundary(t *testing.T) {
	// One ASCII byte followed by 3-byte runes puts the 60-byte cap in the
	// middle of a rune.
	pingErr := errors.New("x" + strings.Repeat("接", 30))
	router := newTestRouterWithRepo(newMockServiceManager(), &fakeRepo{pingErr: pingErr})

	w := performRequest(router, http.MethodGet, "/test", nil, "")

	require.Equal(t, http.StatusOK, w.Code)

	var info map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "not connected", info["connection_status"])

	database, ok := info["database"].(string)
	require.True(t, ok)
	assert.True(t, utf8.ValidString(database))
	// 60 bytes would split the 20th CJK rune; the cut backs up to 58 bytes.
	assert.Equal(t, "error: x"+strings.Repeat("接", 19), database)
}

func TestCreateAssessment(t *testing.T) {
	manager := newMockServiceManager()
	router := newTestRouter(manager)

	manager.assessment.On("Create", mock.Anything, mock.AnythingOfType("*services.CreateAssessmentRequest")).
		Return(&models.Assessment{Title: "Quiz"}, nil)

	body := []byte(`{"title":"Quiz","questions":[{"prompt":"Who?","type":"short_answer"}]}`)
	w := performRequest(router, http.MethodPost, "/assessments", body, "application/json")

	assert.Equal(t, http.StatusCreated, w.Code)
	manager.assessment.AssertExpectations(t)
}

func TestCreateAssessmentMalformedBody(t *testing.T) {
	manager := newMockServiceManager()
	router := newTestRouter(manager)

	w := performRequest(router, http.MethodPost, "/assessments", []byte(`{not json`), "application/json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	manager.assessment.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetAssessmentNotFound(t *testing.T) {
	manager := newMockServiceManager()
	router := newTestRouter(manager)

	manager.assessment.On("GetByID", mock.Anything, "deadbeef").Return(nil, services.ErrAssessmentNotFound)

	w := performRequest(router, http.MethodGet, "/assessments/deadbeef", nil, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "assessment not found")
}

func TestCreateAssessmentFromUpload(t *testing.T) {
	manager := newMockServiceManager()
	router := newTestRouter(manager)

	manager.assessment.On("CreateFromUpload", mock.Anything, mock.MatchedBy(func(req *services.UploadAssessmentRequest) bool {
		return req.Filename == "notes.txt" &&
			req.Title == "Generated Assessment" &&
			req.SourceType == "file" &&
			string(req.Data) == "file body"
	})).Return(&models.Assessment{Title: "Generated Assessment"}, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "notes.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("file body"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w := performRequest(router, http.MethodPost, "/assessments/from-upload", buf.Bytes(), mw.FormDataContentType())

	assert.Equal(t, http.StatusCreated, w.Code)
	manager.assessment.AssertExpectations(t)
}

func TestCreateAssessmentFromUploadMissingFile(t *testing.T) {
	router := newTestRouter(newMockServiceManager())

	w := performRequest(router, http.MethodPost, "/assessments/from-upload", nil, "application/json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateSubmissionMissingAssessment(t *testing.T) {
	manager := newMockServiceManager()
	router := newTestRouter(manager)

	manager.submission.On("Create", mock.Anything, mock.Anything).Return(nil, services.ErrAssessmentNotFound)

	body := []byte(`{"assessment_id":"gone","answers":[]}`)
	w := performRequest(router, http.MethodPost, "/submissions", body, "application/json")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGradeSubmission(t *testing.T) {
	manager := newMockServiceManager()
	router := newTestRouter(manager)

	manager.submission.On("Grade", mock.Anything, "s1").Return(&models.GradeResult{
		Graded:      true,
		TotalPoints: 13,
		Score:       46.15,
	}, nil)

	w := performRequest(router, http.MethodPost, "/submissions/s1/grade", nil, "")

	require.Equal(t, http.StatusOK, w.Code)

	var result models.GradeResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Graded)
	assert.Equal(t, 13, result.TotalPoints)
	assert.Equal(t, 46.15, result.Score)
}

func TestGradeSubmissionNotFound(t *testing.T) {
	manager := newMockServiceManager()
	router := newTestRouter(manager)

	manager.submission.On("Grade", mock.Anything, "missing").Return(nil, services.ErrSubmissionNotFound)

	w := performRequest(router, http.MethodPost, "/submissions/missing/grade", nil, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "submission not found")
}

func TestCreateAndListLessons(t *testing.T) {
	manager := newMockServiceManager()
	router := newTestRouter(manager)

	manager.lesson.On("Create", mock.Anything, mock.Anything).Return(&models.Lesson{Title: "Cells"}, nil)
	manager.lesson.On("List", mock.Anything).Return([]*models.Lesson{{Title: "Cells"}}, nil)

	body := []byte(`{"title":"Cells","content_blocks":[{"kind":"text","content":{"body":"intro"}}]}`)
	created := performRequest(router, http.MethodPost, "/lessons", body, "application/json")
	assert.Equal(t, http.StatusCreated, created.Code)

	listed := performRequest(router, http.MethodGet, "/lessons", nil, "")
	assert.Equal(t, http.StatusOK, listed.Code)
	assert.Contains(t, listed.Body.String(), "Cells")
}
