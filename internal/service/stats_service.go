package service

import (
	"context"
	"math"
	"sync"
	"time"

	"interview-byte/internal/domain"
)

// StatsService maintains the per-user running interview statistics. Record
// returns an error so the caller can log it, but the caller must never let a
// statistics failure fail the parent operation.
type StatsService interface {
	Record(ctx context.Context, userID string, score int, track string) error
	GetByUserID(ctx context.Context, userID string) (*domain.UserInterviewStats, error)
}

type statsService struct {
	repo domain.StatsRepository

	// userLocks serializes the read-modify-write per user so that two
	// interviews for the same user completing concurrently cannot lose an
	// update. Different users never contend.
	userLocks sync.Map
}

// NewStatsService creates a new instance of statsService
func NewStatsService(repo domain.StatsRepository) StatsService {
	return &statsService{repo: repo}
}

func (s *statsService) lockFor(userID string) *sync.Mutex {
	lock, _ := s.userLocks.LoadOrStore(userID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

func (s *statsService) Record(ctx context.Context, userID string, score int, track string) error {
	lock := s.lockFor(userID)
	lock.Lock()
	defer lock.Unlock()

	now := time.Now()

	stats, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	if stats == nil {
		stats = &domain.UserInterviewStats{
			UserID:          userID,
			TotalInterviews: 1,
			AverageScore:    score,
			PerTrackCounts:  map[string]int{track: 1},
			LastInterviewAt: now,
			BestScore:       score,
			UpdatedAt:       now,
		}
		return s.repo.Upsert(ctx, stats)
	}

	oldCount := stats.TotalInterviews
	stats.TotalInterviews = oldCount + 1
	stats.AverageScore = int(math.Round(float64(stats.AverageScore*oldCount+score) / float64(oldCount+1)))
	if stats.PerTrackCounts == nil {
		stats.PerTrackCounts = make(map[string]int)
	}
	stats.PerTrackCounts[track]++
	stats.LastInterviewAt = now
	if score > stats.BestScore {
		stats.BestScore = score
	}
	stats.UpdatedAt = now

	return s.repo.Upsert(ctx, stats)
}

func (s *statsService) GetByUserID(ctx context.Context, userID string) (*domain.UserInterviewStats, error) {
	return s.repo.GetByUserID(ctx, userID)
}
