package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"interview-byte/internal/domain"
	"interview-byte/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReportCache_RoundTrip(t *testing.T) {
	c := new(MockCache)
	svc := NewReportCacheService(c)
	report := &dto.ReportResponse{SessionID: "01HSESSION", OverallScore: 88, Summary: "Strong showing"}
	payload, _ := json.Marshal(report)
	key := reportCacheKey("01HSESSION")

	c.On("Set", mock.Anything, key, string(payload), reportCacheTTL).Return(nil)
	c.On("Get", mock.Anything, key).Return(string(payload), nil)

	svc.PutReport(context.Background(), "01HSESSION", report)
	got := svc.GetReport(context.Background(), "01HSESSION")

	assert.NotNil(t, got)
	assert.Equal(t, 88, got.OverallScore)
	assert.Equal(t, "Strong showing", got.Summary)
	c.AssertExpectations(t)
}

func TestReportCache_Miss(t *testing.T) {
	c := new(MockCache)
	svc := NewReportCacheService(c)

	c.On("Get", mock.Anything, mock.Anything).Return("", domain.ErrCacheMiss)

	assert.Nil(t, svc.GetReport(context.Background(), "01HSESSION"))
}

func TestReportCache_BackendError_TreatedAsMiss(t *testing.T) {
	c := new(MockCache)
	svc := NewReportCacheService(c)

	c.On("Get", mock.Anything, mock.Anything).Return("", errors.New("redis down"))

	assert.Nil(t, svc.GetReport(context.Background(), "01HSESSION"))
}

func TestReportCache_CorruptEntry_TreatedAsMiss(t *testing.T) {
	c := new(MockCache)
	svc := NewReportCacheService(c)

	c.On("Get", mock.Anything, mock.Anything).Return("{not json", nil)

	assert.Nil(t, svc.GetReport(context.Background(), "01HSESSION"))
}

func TestReportCache_SetFailure_DoesNotPanic(t *testing.T) {
	c := new(MockCache)
	svc := NewReportCacheService(c)

	c.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("redis down"))

	assert.NotPanics(t, func() {
		svc.PutReport(context.Background(), "01HSESSION", &dto.ReportResponse{SessionID: "01HSESSION"})
	})
}

func TestReportCache_NilCache_NoOps(t *testing.T) {
	svc := NewReportCacheService(nil)

	assert.Nil(t, svc.GetReport(context.Background(), "01HSESSION"))
	assert.NotPanics(t, func() {
		svc.PutReport(context.Background(), "01HSESSION", &dto.ReportResponse{})
	})
}
