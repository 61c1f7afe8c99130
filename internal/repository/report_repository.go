package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"interview-byte/internal/domain"
	"interview-byte/internal/repository/models"
	"interview-byte/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxReportRepository implements domain.ReportRepository using sqlx.
type sqlxReportRepository struct {
	db *sqlx.DB
}

// NewSQLXReportRepository creates a new instance of sqlxReportRepository.
func NewSQLXReportRepository(db *sqlx.DB) domain.ReportRepository {
	return &sqlxReportRepository{db: db}
}

func (r *sqlxReportRepository) Create(ctx context.Context, report *domain.Report) error {
	analysesJSON, err := json.Marshal(report.QuestionAnalyses)
	if err != nil {
		return fmt.Errorf("failed to marshal question analyses: %w", err)
	}

	model := &models.InterviewReport{
		ID:                      report.ID,
		SessionID:               report.SessionID,
		OverallScore:            report.OverallScore,
		ScoreBreakdown:          models.IntMap(report.ScoreBreakdown),
		Summary:                 report.Summary,
		QuestionAnalyses:        string(analysesJSON),
		Strengths:               models.StringSlice(report.Strengths),
		Weaknesses:              models.StringSlice(report.Weaknesses),
		Recommendations:         models.StringSlice(report.Recommendations),
		ComparisonToStandards:   util.StringToNullString(report.ComparisonToStandards),
		NextSteps:               models.StringSlice(report.NextSteps),
		NextInterviewSuggestion: util.StringToNullString(report.NextInterviewSuggestion),
		CreatedAt:               report.CreatedAt,
	}
	if report.Fallback {
		model.IsFallback = 1
	}

	query := `INSERT INTO interview_reports (id, session_id, overall_score, score_breakdown, summary, question_analyses, strengths, weaknesses, recommendations, comparison_to_standards, next_steps, next_interview_suggestion, is_fallback, created_at)
	          VALUES (:id, :session_id, :overall_score, :score_breakdown, :summary, :question_analyses, :strengths, :weaknesses, :recommendations, :comparison_to_standards, :next_steps, :next_interview_suggestion, :is_fallback, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

func (r *sqlxReportRepository) GetBySessionID(ctx context.Context, sessionID string) (*domain.Report, error) {
	var model models.InterviewReport
	query := `SELECT * FROM interview_reports WHERE session_id = :1`

	if err := r.db.GetContext(ctx, &model, query, sessionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report by session id: %w", err)
	}

	var analyses []domain.QuestionAnalysis
	if model.QuestionAnalyses != "" {
		if err := json.Unmarshal([]byte(model.QuestionAnalyses), &analyses); err != nil {
			return nil, fmt.Errorf("failed to unmarshal question analyses: %w", err)
		}
	}

	return &domain.Report{
		ID:                      model.ID,
		SessionID:               model.SessionID,
		OverallScore:            model.OverallScore,
		ScoreBreakdown:          model.ScoreBreakdown,
		Summary:                 model.Summary,
		QuestionAnalyses:        analyses,
		Strengths:               model.Strengths,
		Weaknesses:              model.Weaknesses,
		Recommendations:         model.Recommendations,
		ComparisonToStandards:   model.ComparisonToStandards.String,
		NextSteps:               model.NextSteps,
		NextInterviewSuggestion: model.NextInterviewSuggestion.String,
		Fallback:                model.IsFallback == 1,
		CreatedAt:               model.CreatedAt,
	}, nil
}
