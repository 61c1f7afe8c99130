package service

import (
	"context"
	"time"

	"interview-byte/internal/domain"
	"interview-byte/internal/dto"

	"github.com/stretchr/testify/mock"
)

// --- MockSessionRepository ---
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *domain.InterviewSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) GetByID(ctx context.Context, id string) (*domain.InterviewSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InterviewSession), args.Error(1)
}

func (m *MockSessionRepository) Update(ctx context.Context, session *domain.InterviewSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) ListByUserID(ctx context.Context, userID string, offset, limit int) ([]domain.SessionSummary, int, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.SessionSummary), args.Int(1), args.Error(2)
}

// --- MockTranscriptRepository ---
type MockTranscriptRepository struct {
	mock.Mock
}

func (m *MockTranscriptRepository) Create(ctx context.Context, transcript *domain.Transcript) error {
	args := m.Called(ctx, transcript)
	return args.Error(0)
}

func (m *MockTranscriptRepository) GetBySessionID(ctx context.Context, sessionID string) (*domain.Transcript, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transcript), args.Error(1)
}

// --- MockReportRepository ---
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Create(ctx context.Context, report *domain.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepository) GetBySessionID(ctx context.Context, sessionID string) (*domain.Report, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

// --- MockStatsRepository ---
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) GetByUserID(ctx context.Context, userID string) (*domain.UserInterviewStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserInterviewStats), args.Error(1)
}

func (m *MockStatsRepository) Upsert(ctx context.Context, stats *domain.UserInterviewStats) error {
	args := m.Called(ctx, stats)
	return args.Error(0)
}

// --- MockTextGenerator ---
type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Generate(ctx context.Context, prompt string, opts domain.GenerationOptions) (string, error) {
	args := m.Called(ctx, prompt, opts)
	return args.String(0), args.Error(1)
}

// --- MockVoiceProvider ---
type MockVoiceProvider struct {
	mock.Mock
}

func (m *MockVoiceProvider) InitiateCall(ctx context.Context, assistant domain.AssistantConfig, metadata map[string]string) (*domain.CallInfo, error) {
	args := m.Called(ctx, assistant, metadata)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CallInfo), args.Error(1)
}

func (m *MockVoiceProvider) GetCallDetails(ctx context.Context, callID string) (*domain.CallDetails, error) {
	args := m.Called(ctx, callID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CallDetails), args.Error(1)
}

func (m *MockVoiceProvider) EndCall(ctx context.Context, callID string) error {
	args := m.Called(ctx, callID)
	return args.Error(0)
}

// --- MockQuestionService ---
type MockQuestionService struct {
	mock.Mock
}

func (m *MockQuestionService) GenerateQuestions(ctx context.Context, track, difficulty string, cfg domain.SessionConfig) []domain.Question {
	args := m.Called(ctx, track, difficulty, cfg)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Question)
}

// --- MockReportService ---
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) GenerateReport(ctx context.Context, session *domain.InterviewSession, rawTranscript string) *domain.Report {
	args := m.Called(ctx, session, rawTranscript)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.Report)
}

// --- MockVoiceOrchestrator ---
type MockVoiceOrchestrator struct {
	mock.Mock
}

func (m *MockVoiceOrchestrator) Start(ctx context.Context, session *domain.InterviewSession) (*domain.CallInfo, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CallInfo), args.Error(1)
}

func (m *MockVoiceOrchestrator) FetchTranscript(ctx context.Context, callID string) (string, error) {
	args := m.Called(ctx, callID)
	return args.String(0), args.Error(1)
}

func (m *MockVoiceOrchestrator) End(ctx context.Context, callID string) {
	m.Called(ctx, callID)
}

// --- MockStatsService ---
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) Record(ctx context.Context, userID string, score int, track string) error {
	args := m.Called(ctx, userID, score, track)
	return args.Error(0)
}

func (m *MockStatsService) GetByUserID(ctx context.Context, userID string) (*domain.UserInterviewStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserInterviewStats), args.Error(1)
}

// --- MockReportCacheService ---
type MockReportCacheService struct {
	mock.Mock
}

func (m *MockReportCacheService) GetReport(ctx context.Context, sessionID string) *dto.ReportResponse {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*dto.ReportResponse)
}

func (m *MockReportCacheService) PutReport(ctx context.Context, sessionID string, report *dto.ReportResponse) {
	m.Called(ctx, sessionID, report)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
