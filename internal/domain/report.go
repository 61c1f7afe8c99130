package domain

import "time"

// QASegment is one question/answer pair extracted from a raw transcript.
type QASegment struct {
	QuestionText string `json:"question_text"`
	AnswerText   string `json:"answer_text"`
}

// Transcript is the parsed record of an interview call. Created exactly once,
// at completion time.
type Transcript struct {
	ID              string
	SessionID       string
	RawText         string
	Segments        []QASegment
	ConfidenceScore float64
	CreatedAt       time.Time
}

// QuestionAnalysis is the per-question evaluation inside a report.
type QuestionAnalysis struct {
	QuestionID string `json:"question_id"`
	Score      int    `json:"score"`
	Feedback   string `json:"feedback"`
}

// Report is the scored evaluation of a completed interview. Created exactly
// once, immutable thereafter. Fallback marks reports produced by the local
// heuristic instead of the text-generation provider.
type Report struct {
	ID                      string
	SessionID               string
	OverallScore            int
	ScoreBreakdown          map[string]int
	Summary                 string
	QuestionAnalyses        []QuestionAnalysis
	Strengths               []string
	Weaknesses              []string
	Recommendations         []string
	ComparisonToStandards   string
	NextSteps               []string
	NextInterviewSuggestion string
	Fallback                bool
	CreatedAt               time.Time
}

// UserInterviewStats is the running per-user aggregate, one record per user.
// AverageScore is integer-rounded and always consistent with TotalInterviews
// and the implied running sum.
type UserInterviewStats struct {
	UserID          string
	TotalInterviews int
	AverageScore    int
	PerTrackCounts  map[string]int
	LastInterviewAt time.Time
	BestScore       int
	UpdatedAt       time.Time
}
