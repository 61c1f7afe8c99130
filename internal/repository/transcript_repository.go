package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"interview-byte/internal/domain"
	"interview-byte/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// sqlxTranscriptRepository implements domain.TranscriptRepository using sqlx.
type sqlxTranscriptRepository struct {
	db *sqlx.DB
}

// NewSQLXTranscriptRepository creates a new instance of sqlxTranscriptRepository.
func NewSQLXTranscriptRepository(db *sqlx.DB) domain.TranscriptRepository {
	return &sqlxTranscriptRepository{db: db}
}

func (r *sqlxTranscriptRepository) Create(ctx context.Context, transcript *domain.Transcript) error {
	segmentsJSON, err := json.Marshal(transcript.Segments)
	if err != nil {
		return fmt.Errorf("failed to marshal transcript segments: %w", err)
	}

	model := &models.InterviewTranscript{
		ID:              transcript.ID,
		SessionID:       transcript.SessionID,
		RawText:         transcript.RawText,
		Segments:        string(segmentsJSON),
		ConfidenceScore: transcript.ConfidenceScore,
		CreatedAt:       transcript.CreatedAt,
	}

	query := `INSERT INTO interview_transcripts (id, session_id, raw_text, segments, confidence_score, created_at)
	          VALUES (:id, :session_id, :raw_text, :segments, :confidence_score, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to create transcript: %w", err)
	}
	return nil
}

func (r *sqlxTranscriptRepository) GetBySessionID(ctx context.Context, sessionID string) (*domain.Transcript, error) {
	var model models.InterviewTranscript
	query := `SELECT * FROM interview_transcripts WHERE session_id = :1`

	if err := r.db.GetContext(ctx, &model, query, sessionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transcript by session id: %w", err)
	}

	var segments []domain.QASegment
	if model.Segments != "" {
		if err := json.Unmarshal([]byte(model.Segments), &segments); err != nil {
			return nil, fmt.Errorf("failed to unmarshal transcript segments: %w", err)
		}
	}

	return &domain.Transcript{
		ID:              model.ID,
		SessionID:       model.SessionID,
		RawText:         model.RawText,
		Segments:        segments,
		ConfidenceScore: model.ConfidenceScore,
		CreatedAt:       model.CreatedAt,
	}, nil
}
