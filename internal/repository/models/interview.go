package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StringSlice stores a string list as a JSON array in a CLOB column.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("StringSlice Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = StringSlice{}
		return nil
	}
	return json.Unmarshal(bytesToParse, s)
}

// IntMap stores a string-to-int map as a JSON object in a CLOB column.
type IntMap map[string]int

// Value implements the driver.Valuer interface
func (m IntMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	jsonData, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (m *IntMap) Scan(value interface{}) error {
	if value == nil {
		*m = IntMap{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("IntMap Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*m = IntMap{}
		return nil
	}
	return json.Unmarshal(bytesToParse, m)
}

// InterviewSession maps the interview_sessions table. Questions holds the
// generated question list as a JSON array; report_generated is a NUMBER(1)
// flag since Oracle has no boolean column type.
type InterviewSession struct {
	ID                   string         `db:"id"`
	UserID               string         `db:"user_id"`
	Track                string         `db:"track"`
	Difficulty           string         `db:"difficulty"`
	Status               string         `db:"status"`
	FocusAreas           StringSlice    `db:"focus_areas"`
	SpecificRequirements sql.NullString `db:"specific_requirements"`
	DurationMinutes      int            `db:"duration_minutes"`
	Questions            string         `db:"questions"`
	UserPrice            int            `db:"user_price"`
	CostPrice            int            `db:"cost_price"`
	Margin               int            `db:"margin"`
	Currency             string         `db:"currency"`
	PaymentStatus        string         `db:"payment_status"`
	ExternalCallID       sql.NullString `db:"external_call_id"`
	StartedAt            sql.NullTime   `db:"started_at"`
	EndedAt              sql.NullTime   `db:"ended_at"`
	ReportGenerated      int            `db:"report_generated"`
	CreatedAt            time.Time      `db:"created_at"`
	UpdatedAt            time.Time      `db:"updated_at"`
}

func (InterviewSession) TableName() string {
	return "interview_sessions"
}

// InterviewTranscript maps the interview_transcripts table. Segments holds
// the parsed question/answer pairs as a JSON array.
type InterviewTranscript struct {
	ID              string    `db:"id"`
	SessionID       string    `db:"session_id"`
	RawText         string    `db:"raw_text"`
	Segments        string    `db:"segments"`
	ConfidenceScore float64   `db:"confidence_score"`
	CreatedAt       time.Time `db:"created_at"`
}

func (InterviewTranscript) TableName() string {
	return "interview_transcripts"
}

// InterviewReport maps the interview_reports table.
type InterviewReport struct {
	ID                      string         `db:"id"`
	SessionID               string         `db:"session_id"`
	OverallScore            int            `db:"overall_score"`
	ScoreBreakdown          IntMap         `db:"score_breakdown"`
	Summary                 string         `db:"summary"`
	QuestionAnalyses        string         `db:"question_analyses"`
	Strengths               StringSlice    `db:"strengths"`
	Weaknesses              StringSlice    `db:"weaknesses"`
	Recommendations         StringSlice    `db:"recommendations"`
	ComparisonToStandards   sql.NullString `db:"comparison_to_standards"`
	NextSteps               StringSlice    `db:"next_steps"`
	NextInterviewSuggestion sql.NullString `db:"next_interview_suggestion"`
	IsFallback              int            `db:"is_fallback"`
	CreatedAt               time.Time      `db:"created_at"`
}

func (InterviewReport) TableName() string {
	return "interview_reports"
}

// UserInterviewStats maps the user_interview_stats table, one row per user.
type UserInterviewStats struct {
	UserID          string    `db:"user_id"`
	TotalInterviews int       `db:"total_interviews"`
	AverageScore    int       `db:"average_score"`
	PerTrackCounts  IntMap    `db:"per_track_counts"`
	LastInterviewAt time.Time `db:"last_interview_at"`
	BestScore       int       `db:"best_score"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (UserInterviewStats) TableName() string {
	return "user_interview_stats"
}
