package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"interview-byte/internal/domain"
	"interview-byte/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// sqlxStatsRepository implements domain.StatsRepository using sqlx.
type sqlxStatsRepository struct {
	db *sqlx.DB
}

// NewSQLXStatsRepository creates a new instance of sqlxStatsRepository.
func NewSQLXStatsRepository(db *sqlx.DB) domain.StatsRepository {
	return &sqlxStatsRepository{db: db}
}

func (r *sqlxStatsRepository) GetByUserID(ctx context.Context, userID string) (*domain.UserInterviewStats, error) {
	var model models.UserInterviewStats
	query := `SELECT * FROM user_interview_stats WHERE user_id = :1`

	if err := r.db.GetContext(ctx, &model, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get interview stats by user id: %w", err)
	}

	return &domain.UserInterviewStats{
		UserID:          model.UserID,
		TotalInterviews: model.TotalInterviews,
		AverageScore:    model.AverageScore,
		PerTrackCounts:  model.PerTrackCounts,
		LastInterviewAt: model.LastInterviewAt,
		BestScore:       model.BestScore,
		UpdatedAt:       model.UpdatedAt,
	}, nil
}

// Upsert writes the full stats row atomically with an Oracle MERGE so a
// concurrent first-completion for the same user cannot produce two rows.
func (r *sqlxStatsRepository) Upsert(ctx context.Context, stats *domain.UserInterviewStats) error {
	model := &models.UserInterviewStats{
		UserID:          stats.UserID,
		TotalInterviews: stats.TotalInterviews,
		AverageScore:    stats.AverageScore,
		PerTrackCounts:  models.IntMap(stats.PerTrackCounts),
		LastInterviewAt: stats.LastInterviewAt,
		BestScore:       stats.BestScore,
		UpdatedAt:       stats.UpdatedAt,
	}

	query := `MERGE INTO user_interview_stats t
	          USING (SELECT :user_id AS user_id FROM dual) s
	          ON (t.user_id = s.user_id)
	          WHEN MATCHED THEN UPDATE SET
	              t.total_interviews = :total_interviews,
	              t.average_score = :average_score,
	              t.per_track_counts = :per_track_counts,
	              t.last_interview_at = :last_interview_at,
	              t.best_score = :best_score,
	              t.updated_at = :updated_at
	          WHEN NOT MATCHED THEN INSERT (user_id, total_interviews, average_score, per_track_counts, last_interview_at, best_score, updated_at)
	          VALUES (:user_id, :total_interviews, :average_score, :per_track_counts, :last_interview_at, :best_score, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to upsert interview stats: %w", err)
	}
	return nil
}
