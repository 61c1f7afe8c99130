package domain

import "context"

// SessionRepository persists interview sessions. Lookups return (nil, nil)
// when no row exists.
type SessionRepository interface {
	Create(ctx context.Context, session *InterviewSession) error
	GetByID(ctx context.Context, id string) (*InterviewSession, error)
	Update(ctx context.Context, session *InterviewSession) error
	ListByUserID(ctx context.Context, userID string, offset, limit int) ([]SessionSummary, int, error)
}

// TranscriptRepository persists call transcripts, one per session.
type TranscriptRepository interface {
	Create(ctx context.Context, transcript *Transcript) error
	GetBySessionID(ctx context.Context, sessionID string) (*Transcript, error)
}

// ReportRepository persists interview reports, one per session.
type ReportRepository interface {
	Create(ctx context.Context, report *Report) error
	GetBySessionID(ctx context.Context, sessionID string) (*Report, error)
}

// StatsRepository persists per-user interview statistics. Upsert must be
// atomic at the row level; callers additionally serialize per user.
type StatsRepository interface {
	GetByUserID(ctx context.Context, userID string) (*UserInterviewStats, error)
	Upsert(ctx context.Context, stats *UserInterviewStats) error
}
