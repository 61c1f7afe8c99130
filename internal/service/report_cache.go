package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"interview-byte/internal/cache"
	"interview-byte/internal/domain"
	"interview-byte/internal/dto"
	"interview-byte/internal/logger"

	"go.uber.org/zap"
)

const reportCacheTTL = 24 * time.Hour

// ReportCacheService is a cache-aside layer for finished reports. Reports are
// immutable once written, so entries never need invalidation beyond TTL.
// All cache failures are logged and treated as misses.
type ReportCacheService interface {
	GetReport(ctx context.Context, sessionID string) *dto.ReportResponse
	PutReport(ctx context.Context, sessionID string, report *dto.ReportResponse)
}

type reportCacheService struct {
	cache domain.Cache
}

// NewReportCacheService creates a new instance of reportCacheService
func NewReportCacheService(c domain.Cache) ReportCacheService {
	return &reportCacheService{cache: c}
}

func reportCacheKey(sessionID string) string {
	return cache.GenerateCacheKey("report", "session", sessionID)
}

func (s *reportCacheService) GetReport(ctx context.Context, sessionID string) *dto.ReportResponse {
	if s.cache == nil {
		return nil
	}

	value, err := s.cache.Get(ctx, reportCacheKey(sessionID))
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Error("Failed to read report from cache",
				zap.Error(err),
				zap.String("sessionID", sessionID))
		}
		return nil
	}

	var report dto.ReportResponse
	if err := json.Unmarshal([]byte(value), &report); err != nil {
		logger.Get().Error("Failed to unmarshal cached report, treating as miss",
			zap.Error(err),
			zap.String("sessionID", sessionID))
		return nil
	}
	return &report
}

func (s *reportCacheService) PutReport(ctx context.Context, sessionID string, report *dto.ReportResponse) {
	if s.cache == nil || report == nil {
		return
	}

	payload, err := json.Marshal(report)
	if err != nil {
		logger.Get().Error("Failed to marshal report for caching",
			zap.Error(err),
			zap.String("sessionID", sessionID))
		return
	}

	if err := s.cache.Set(ctx, reportCacheKey(sessionID), string(payload), reportCacheTTL); err != nil {
		logger.Get().Error("Failed to cache report",
			zap.Error(err),
			zap.String("sessionID", sessionID))
	}
}
