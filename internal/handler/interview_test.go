package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"interview-byte/internal/domain"
	"interview-byte/internal/dto"
	"interview-byte/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- MockInterviewService ---
type MockInterviewService struct {
	mock.Mock
}

func (m *MockInterviewService) CreateSession(ctx context.Context, req *dto.CreateInterviewRequest) (*dto.CreateInterviewResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CreateInterviewResponse), args.Error(1)
}

func (m *MockInterviewService) StartInterview(ctx context.Context, sessionID, userID string) (*dto.StartInterviewResponse, error) {
	args := m.Called(ctx, sessionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StartInterviewResponse), args.Error(1)
}

func (m *MockInterviewService) CompleteInterview(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockInterviewService) GetReport(ctx context.Context, sessionID, userID string) (*dto.ReportResponse, error) {
	args := m.Called(ctx, sessionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReportResponse), args.Error(1)
}

func (m *MockInterviewService) ListHistory(ctx context.Context, userID string, page, limit int) (*dto.InterviewHistoryResponse, error) {
	args := m.Called(ctx, userID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.InterviewHistoryResponse), args.Error(1)
}

func newTestApp(svc *MockInterviewService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	h := NewInterviewHandler(svc)

	// test stand-in for the JWT middleware
	authStub := func(c *fiber.Ctx) error {
		c.Locals(middleware.UserIDKey, "user-1")
		return c.Next()
	}

	api := app.Group("/api", authStub)
	api.Post("/interviews", h.CreateInterview)
	api.Get("/interviews", h.ListHistory)
	api.Post("/interviews/:id/start", h.StartInterview)
	api.Post("/interviews/:id/complete", h.CompleteInterview)
	api.Get("/interviews/:id/report", h.GetReport)
	return app
}

func TestCreateInterview_Success(t *testing.T) {
	svc := new(MockInterviewService)
	app := newTestApp(svc)

	svc.On("CreateSession", mock.Anything, mock.MatchedBy(func(req *dto.CreateInterviewRequest) bool {
		return req.UserID == "user-1" && req.Track == "javascript" && req.Difficulty == "medium"
	})).Return(&dto.CreateInterviewResponse{
		SessionID:                "01HSESSION",
		Pricing:                  dto.PricingResponse{UserPrice: 149, CostPrice: 1296, Margin: -1147, Currency: "INR"},
		EstimatedDurationMinutes: 20,
	}, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"track":       "javascript",
		"difficulty":  "medium",
		"focus_areas": []string{"closures"},
	})
	req := httptest.NewRequest("POST", "/api/interviews", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var parsed dto.CreateInterviewResponse
	raw, _ := io.ReadAll(resp.Body)
	assert.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Equal(t, "01HSESSION", parsed.SessionID)
	assert.Equal(t, 20, parsed.EstimatedDurationMinutes)
	assert.Equal(t, -1147, parsed.Pricing.Margin)
	svc.AssertExpectations(t)
}

func TestCreateInterview_ValidationError(t *testing.T) {
	svc := new(MockInterviewService)
	app := newTestApp(svc)

	svc.On("CreateSession", mock.Anything, mock.Anything).
		Return(nil, domain.NewValidationError("track is required", nil))

	req := httptest.NewRequest("POST", "/api/interviews", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestStartInterview_PaymentRequired(t *testing.T) {
	svc := new(MockInterviewService)
	app := newTestApp(svc)

	svc.On("StartInterview", mock.Anything, "01HSESSION", "user-1").
		Return(nil, domain.NewPaymentRequiredError("01HSESSION"))

	resp, err := app.Test(httptest.NewRequest("POST", "/api/interviews/01HSESSION/start", nil))

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusPaymentRequired, resp.StatusCode)
}

func TestStartInterview_Success(t *testing.T) {
	svc := new(MockInterviewService)
	app := newTestApp(svc)

	svc.On("StartInterview", mock.Anything, "01HSESSION", "user-1").
		Return(&dto.StartInterviewResponse{CallID: "call-9", Status: "IN_PROGRESS"}, nil)

	resp, err := app.Test(httptest.NewRequest("POST", "/api/interviews/01HSESSION/start", nil))

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var parsed dto.StartInterviewResponse
	raw, _ := io.ReadAll(resp.Body)
	assert.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Equal(t, "call-9", parsed.CallID)
}

func TestCompleteInterview_NotStarted(t *testing.T) {
	svc := new(MockInterviewService)
	app := newTestApp(svc)

	svc.On("CompleteInterview", mock.Anything, "01HSESSION").
		Return(domain.NewSessionNotStartedError("01HSESSION"))

	resp, err := app.Test(httptest.NewRequest("POST", "/api/interviews/01HSESSION/complete", nil))

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestCompleteInterview_Success(t *testing.T) {
	svc := new(MockInterviewService)
	app := newTestApp(svc)

	svc.On("CompleteInterview", mock.Anything, "01HSESSION").Return(nil)

	resp, err := app.Test(httptest.NewRequest("POST", "/api/interviews/01HSESSION/complete", nil))

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestGetReport_NotReady(t *testing.T) {
	svc := new(MockInterviewService)
	app := newTestApp(svc)

	svc.On("GetReport", mock.Anything, "01HSESSION", "user-1").
		Return(nil, domain.NewReportNotReadyError("01HSESSION"))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/interviews/01HSESSION/report", nil))

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var parsed middleware.ErrorResponse
	raw, _ := io.ReadAll(resp.Body)
	assert.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Equal(t, "REPORT_NOT_READY", parsed.Code)
}

func TestGetReport_Unauthorized(t *testing.T) {
	svc := new(MockInterviewService)
	app := newTestApp(svc)

	svc.On("GetReport", mock.Anything, "01HSESSION", "user-1").
		Return(nil, domain.NewUnauthorizedError("You do not own this interview session"))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/interviews/01HSESSION/report", nil))

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestListHistory_QueryDefaults(t *testing.T) {
	svc := new(MockInterviewService)
	app := newTestApp(svc)

	svc.On("ListHistory", mock.Anything, "user-1", 1, 20).
		Return(&dto.InterviewHistoryResponse{Interviews: []dto.InterviewHistoryItem{}, Page: 1}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/interviews", nil))

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	svc.AssertExpectations(t)
}

func TestListHistory_ExplicitPaging(t *testing.T) {
	svc := new(MockInterviewService)
	app := newTestApp(svc)

	svc.On("ListHistory", mock.Anything, "user-1", 3, 5).
		Return(&dto.InterviewHistoryResponse{Interviews: []dto.InterviewHistoryItem{}, Page: 3}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/interviews?page=3&limit=5", nil))

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	svc.AssertExpectations(t)
}
