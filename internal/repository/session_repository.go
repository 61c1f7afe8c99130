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

// sqlxSessionRepository implements domain.SessionRepository using sqlx.
type sqlxSessionRepository struct {
	db *sqlx.DB
}

// NewSQLXSessionRepository creates a new instance of sqlxSessionRepository.
func NewSQLXSessionRepository(db *sqlx.DB) domain.SessionRepository {
	return &sqlxSessionRepository{db: db}
}

func sessionToModel(session *domain.InterviewSession) (*models.InterviewSession, error) {
	questionsJSON, err := json.Marshal(session.Questions)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session questions: %w", err)
	}

	model := &models.InterviewSession{
		ID:                   session.ID,
		UserID:               session.UserID,
		Track:                session.Track,
		Difficulty:           session.Difficulty,
		Status:               string(session.Status),
		FocusAreas:           models.StringSlice(session.Config.FocusAreas),
		SpecificRequirements: util.StringToNullString(session.Config.SpecificRequirements),
		DurationMinutes:      session.Config.DurationMinutes,
		Questions:            string(questionsJSON),
		UserPrice:            session.Pricing.UserPrice,
		CostPrice:            session.Pricing.CostPrice,
		Margin:               session.Pricing.Margin,
		Currency:             session.Pricing.Currency,
		PaymentStatus:        session.PaymentStatus,
		ExternalCallID:       util.StringToNullString(session.ExternalCallID),
		StartedAt:            util.TimePtrToNullTime(session.StartedAt),
		EndedAt:              util.TimePtrToNullTime(session.EndedAt),
		CreatedAt:            session.CreatedAt,
		UpdatedAt:            session.UpdatedAt,
	}
	if session.ReportGenerated {
		model.ReportGenerated = 1
	}
	return model, nil
}

func sessionToDomain(model *models.InterviewSession) (*domain.InterviewSession, error) {
	var questions []domain.Question
	if model.Questions != "" {
		if err := json.Unmarshal([]byte(model.Questions), &questions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal session questions: %w", err)
		}
	}

	session := &domain.InterviewSession{
		ID:         model.ID,
		UserID:     model.UserID,
		Track:      model.Track,
		Difficulty: model.Difficulty,
		Status:     domain.SessionStatus(model.Status),
		Config: domain.SessionConfig{
			FocusAreas:           model.FocusAreas,
			SpecificRequirements: model.SpecificRequirements.String,
			DurationMinutes:      model.DurationMinutes,
		},
		Questions: questions,
		Pricing: domain.PricingQuote{
			UserPrice: model.UserPrice,
			CostPrice: model.CostPrice,
			Margin:    model.Margin,
			Currency:  model.Currency,
		},
		PaymentStatus:   model.PaymentStatus,
		ExternalCallID:  model.ExternalCallID.String,
		ReportGenerated: model.ReportGenerated == 1,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
	if model.StartedAt.Valid {
		startedAt := model.StartedAt.Time
		session.StartedAt = &startedAt
	}
	if model.EndedAt.Valid {
		endedAt := model.EndedAt.Time
		session.EndedAt = &endedAt
	}
	return session, nil
}

func (r *sqlxSessionRepository) Create(ctx context.Context, session *domain.InterviewSession) error {
	model, err := sessionToModel(session)
	if err != nil {
		return err
	}

	query := `INSERT INTO interview_sessions (id, user_id, track, difficulty, status, focus_areas, specific_requirements, duration_minutes, questions, user_price, cost_price, margin, currency, payment_status, external_call_id, started_at, ended_at, report_generated, created_at, updated_at)
	          VALUES (:id, :user_id, :track, :difficulty, :status, :focus_areas, :specific_requirements, :duration_minutes, :questions, :user_price, :cost_price, :margin, :currency, :payment_status, :external_call_id, :started_at, :ended_at, :report_generated, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to create interview session: %w", err)
	}
	return nil
}

func (r *sqlxSessionRepository) GetByID(ctx context.Context, id string) (*domain.InterviewSession, error) {
	var model models.InterviewSession
	query := `SELECT * FROM interview_sessions WHERE id = :1`

	if err := r.db.GetContext(ctx, &model, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get interview session by id: %w", err)
	}
	return sessionToDomain(&model)
}

func (r *sqlxSessionRepository) Update(ctx context.Context, session *domain.InterviewSession) error {
	model, err := sessionToModel(session)
	if err != nil {
		return err
	}

	query := `UPDATE interview_sessions SET
	          status = :status,
	          payment_status = :payment_status,
	          external_call_id = :external_call_id,
	          started_at = :started_at,
	          ended_at = :ended_at,
	          report_generated = :report_generated,
	          updated_at = :updated_at
	          WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update interview session: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return fmt.Errorf("interview session %s not found for update", session.ID)
	}
	return nil
}

// sessionSummaryRow is the scan target for ListByUserID, which joins the
// report table for the score and carries the ROW_NUMBER column.
type sessionSummaryRow struct {
	ID           string        `db:"id"`
	Track        string        `db:"track"`
	Difficulty   string        `db:"difficulty"`
	Status       string        `db:"status"`
	OverallScore sql.NullInt64 `db:"overall_score"`
	CreatedAt    sql.NullTime  `db:"created_at"`
	EndedAt      sql.NullTime  `db:"ended_at"`
	RN           int           `db:"rn"`
}

func (r *sqlxSessionRepository) ListByUserID(ctx context.Context, userID string, offset, limit int) ([]domain.SessionSummary, int, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	// Oracle compatibility: ROW_NUMBER() pagination with positional binds.
	innerQuery := `SELECT s.id, s.track, s.difficulty, s.status, r.overall_score, s.created_at, s.ended_at,
	               ROW_NUMBER() OVER (ORDER BY s.created_at DESC) as rn
	               FROM interview_sessions s
	               LEFT JOIN interview_reports r ON r.session_id = s.id
	               WHERE s.user_id = :1`
	resultsQuery := fmt.Sprintf("SELECT * FROM (%s) WHERE rn > %d AND rn <= %d", innerQuery, offset, offset+limit)

	var rows []sessionSummaryRow
	if err := r.db.SelectContext(ctx, &rows, resultsQuery, userID); err != nil {
		return nil, 0, fmt.Errorf("failed to list interview sessions: %w", err)
	}

	countQuery := `SELECT COUNT(*) FROM interview_sessions WHERE user_id = :1`
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, userID); err != nil {
		return nil, 0, fmt.Errorf("failed to count interview sessions: %w", err)
	}

	summaries := make([]domain.SessionSummary, 0, len(rows))
	for _, row := range rows {
		summary := domain.SessionSummary{
			ID:         row.ID,
			Track:      row.Track,
			Difficulty: row.Difficulty,
			Status:     domain.SessionStatus(row.Status),
			CreatedAt:  row.CreatedAt.Time,
		}
		if row.OverallScore.Valid {
			score := int(row.OverallScore.Int64)
			summary.OverallScore = &score
		}
		if row.EndedAt.Valid {
			endedAt := row.EndedAt.Time
			summary.EndedAt = &endedAt
		}
		summaries = append(summaries, summary)
	}
	return summaries, total, nil
}
