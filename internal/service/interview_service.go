package service

import (
	"context"
	"strings"
	"time"

	"interview-byte/internal/domain"
	"interview-byte/internal/dto"
	"interview-byte/internal/logger"
	"interview-byte/internal/pricing"
	"interview-byte/internal/transcript"
	"interview-byte/internal/util"

	"go.uber.org/zap"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 50
)

// InterviewService owns the session lifecycle state machine and sequences the
// pricing, question-generation, voice and report stages around it. All status
// mutations go through this service.
type InterviewService interface {
	CreateSession(ctx context.Context, req *dto.CreateInterviewRequest) (*dto.CreateInterviewResponse, error)
	StartInterview(ctx context.Context, sessionID, userID string) (*dto.StartInterviewResponse, error)
	CompleteInterview(ctx context.Context, sessionID string) error
	GetReport(ctx context.Context, sessionID, userID string) (*dto.ReportResponse, error)
	ListHistory(ctx context.Context, userID string, page, limit int) (*dto.InterviewHistoryResponse, error)
}

type interviewService struct {
	sessions    domain.SessionRepository
	transcripts domain.TranscriptRepository
	reports     domain.ReportRepository
	questions   QuestionService
	reportGen   ReportService
	voice       VoiceOrchestrator
	stats       StatsService
	reportCache ReportCacheService
}

// NewInterviewService creates a new instance of interviewService
func NewInterviewService(
	sessions domain.SessionRepository,
	transcripts domain.TranscriptRepository,
	reports domain.ReportRepository,
	questions QuestionService,
	reportGen ReportService,
	voice VoiceOrchestrator,
	stats StatsService,
	reportCache ReportCacheService,
) InterviewService {
	return &interviewService{
		sessions:    sessions,
		transcripts: transcripts,
		reports:     reports,
		questions:   questions,
		reportGen:   reportGen,
		voice:       voice,
		stats:       stats,
		reportCache: reportCache,
	}
}

func (s *interviewService) CreateSession(ctx context.Context, req *dto.CreateInterviewRequest) (*dto.CreateInterviewResponse, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return nil, domain.NewValidationError("user id is required", nil)
	}
	if strings.TrimSpace(req.Track) == "" {
		return nil, domain.NewValidationError("track is required", nil)
	}

	duration := req.DurationMinutes
	if duration <= 0 {
		duration = pricing.DurationForDifficulty(req.Difficulty)
	}

	quote := pricing.Quote(req.Difficulty, duration)

	cfg := domain.SessionConfig{
		FocusAreas:           req.FocusAreas,
		SpecificRequirements: req.SpecificRequirements,
		DurationMinutes:      duration,
	}
	questions := s.questions.GenerateQuestions(ctx, req.Track, req.Difficulty, cfg)

	now := time.Now()
	session := &domain.InterviewSession{
		ID:            util.NewULID(),
		UserID:        req.UserID,
		Track:         req.Track,
		Difficulty:    req.Difficulty,
		Status:        domain.StatusSetup,
		Config:        cfg,
		Questions:     questions,
		Pricing:       quote,
		PaymentStatus: "PENDING",
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, domain.NewInternalError("Failed to persist interview session", err)
	}

	logger.Get().Info("Interview session created",
		zap.String("sessionID", session.ID),
		zap.String("userID", session.UserID),
		zap.String("track", session.Track),
		zap.Int("questions", len(questions)))

	return &dto.CreateInterviewResponse{
		SessionID: session.ID,
		Questions: dto.NewQuestionResponses(questions),
		Pricing: dto.PricingResponse{
			UserPrice: quote.UserPrice,
			CostPrice: quote.CostPrice,
			Margin:    quote.Margin,
			Currency:  quote.Currency,
		},
		EstimatedDurationMinutes: duration,
	}, nil
}

func (s *interviewService) StartInterview(ctx context.Context, sessionID, userID string) (*dto.StartInterviewResponse, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load interview session", err)
	}
	if session == nil {
		return nil, domain.NewSessionNotFoundError(sessionID)
	}
	if session.UserID != userID {
		return nil, domain.NewUnauthorizedError("You do not own this interview session")
	}
	if session.PaymentStatus != domain.PaymentCaptured {
		return nil, domain.NewPaymentRequiredError(sessionID)
	}
	if !session.Status.CanTransitionTo(domain.StatusInProgress) {
		return nil, domain.NewInvalidTransitionError(session.Status, domain.StatusInProgress)
	}

	info, err := s.voice.Start(ctx, session)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session.ExternalCallID = info.ID
	session.Status = domain.StatusInProgress
	session.StartedAt = &now
	session.UpdatedAt = now

	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, domain.NewInternalError("Failed to persist started session", err)
	}

	return &dto.StartInterviewResponse{
		CallID: info.ID,
		Status: string(session.Status),
	}, nil
}

func (s *interviewService) CompleteInterview(ctx context.Context, sessionID string) error {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return domain.NewInternalError("Failed to load interview session", err)
	}
	if session == nil {
		return domain.NewSessionNotFoundError(sessionID)
	}
	if session.ExternalCallID == "" {
		return domain.NewSessionNotStartedError(sessionID)
	}
	if !session.Status.CanTransitionTo(domain.StatusCompleted) {
		return domain.NewInvalidTransitionError(session.Status, domain.StatusCompleted)
	}

	// Ending the call is cleanup; a failure here must not block completion.
	s.voice.End(ctx, session.ExternalCallID)

	rawText, err := s.voice.FetchTranscript(ctx, session.ExternalCallID)
	if err != nil {
		return err
	}

	parsed := transcript.Parse(rawText)
	record := &domain.Transcript{
		ID:              util.NewULID(),
		SessionID:       session.ID,
		RawText:         rawText,
		Segments:        parsed.Segments,
		ConfidenceScore: parsed.ConfidenceScore,
		CreatedAt:       time.Now(),
	}
	if err := s.transcripts.Create(ctx, record); err != nil {
		return domain.NewInternalError("Failed to persist transcript", err)
	}

	report := s.reportGen.GenerateReport(ctx, session, rawText)
	if err := s.reports.Create(ctx, report); err != nil {
		return domain.NewInternalError("Failed to persist report", err)
	}

	now := time.Now()
	session.Status = domain.StatusCompleted
	session.EndedAt = &now
	session.ReportGenerated = true
	session.UpdatedAt = now
	if err := s.sessions.Update(ctx, session); err != nil {
		return domain.NewInternalError("Failed to persist completed session", err)
	}

	// Statistics are best-effort: a completed interview is never reported as
	// failed because the rollup could not be updated.
	if err := s.stats.Record(ctx, session.UserID, report.OverallScore, session.Track); err != nil {
		logger.Get().Error("Failed to update interview statistics",
			zap.Error(err),
			zap.String("sessionID", session.ID),
			zap.String("userID", session.UserID))
	}

	if s.reportCache != nil {
		s.reportCache.PutReport(ctx, session.ID, dto.NewReportResponse(report))
	}

	logger.Get().Info("Interview session completed",
		zap.String("sessionID", session.ID),
		zap.Int("overallScore", report.OverallScore),
		zap.Bool("fallbackReport", report.Fallback))
	return nil
}

func (s *interviewService) GetReport(ctx context.Context, sessionID, userID string) (*dto.ReportResponse, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load interview session", err)
	}
	if session == nil {
		return nil, domain.NewSessionNotFoundError(sessionID)
	}
	if session.UserID != userID {
		return nil, domain.NewUnauthorizedError("You do not own this interview session")
	}

	if s.reportCache != nil {
		if cached := s.reportCache.GetReport(ctx, sessionID); cached != nil {
			return cached, nil
		}
	}

	report, err := s.reports.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load report", err)
	}
	if report == nil {
		return nil, domain.NewReportNotReadyError(sessionID)
	}

	resp := dto.NewReportResponse(report)
	if s.reportCache != nil {
		s.reportCache.PutReport(ctx, sessionID, resp)
	}
	return resp, nil
}

func (s *interviewService) ListHistory(ctx context.Context, userID string, page, limit int) (*dto.InterviewHistoryResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	offset := (page - 1) * limit
	summaries, total, err := s.sessions.ListByUserID(ctx, userID, offset, limit)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list interview history", err)
	}

	items := make([]dto.InterviewHistoryItem, 0, len(summaries))
	for _, sm := range summaries {
		items = append(items, dto.InterviewHistoryItem{
			SessionID:    sm.ID,
			Track:        sm.Track,
			Difficulty:   sm.Difficulty,
			Status:       string(sm.Status),
			OverallScore: sm.OverallScore,
			CreatedAt:    sm.CreatedAt,
			EndedAt:      sm.EndedAt,
		})
	}

	totalPages := (total + limit - 1) / limit

	return &dto.InterviewHistoryResponse{
		Interviews: items,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}
