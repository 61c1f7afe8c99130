package validation

import (
	"fmt"
	"strings"

	"interview-byte/internal/domain"
	"interview-byte/internal/dto"
)

const (
	maxSessionIDLength    = 64
	maxTrackLength        = 100
	maxFocusAreas         = 10
	maxFocusAreaLength    = 100
	maxRequirementsLength = 2000
	maxDurationMinutes    = 180
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCreateInterviewRequest checks structural limits on a create request.
// Difficulty is deliberately not validated: unknown values fall back to the
// medium tier downstream.
func (v *Validator) ValidateCreateInterviewRequest(req *dto.CreateInterviewRequest) error {
	if strings.TrimSpace(req.Track) == "" {
		return domain.NewValidationError("track is required", nil)
	}
	if len(req.Track) > maxTrackLength {
		return domain.NewValidationError(fmt.Sprintf("track must be at most %d characters", maxTrackLength), nil)
	}
	if len(req.FocusAreas) > maxFocusAreas {
		return domain.NewValidationError(fmt.Sprintf("at most %d focus areas are allowed", maxFocusAreas), nil)
	}
	for _, area := range req.FocusAreas {
		if len(area) > maxFocusAreaLength {
			return domain.NewValidationError(fmt.Sprintf("focus area %q is too long", area), nil)
		}
	}
	if len(req.SpecificRequirements) > maxRequirementsLength {
		return domain.NewValidationError(fmt.Sprintf("specific requirements must be at most %d characters", maxRequirementsLength), nil)
	}
	if req.DurationMinutes < 0 || req.DurationMinutes > maxDurationMinutes {
		return domain.NewValidationError(fmt.Sprintf("duration must be between 0 and %d minutes", maxDurationMinutes), nil)
	}
	return nil
}

// ValidateSessionID checks that a path parameter looks like a session id.
func (v *Validator) ValidateSessionID(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return domain.NewValidationError("session id is required", nil)
	}
	if len(sessionID) > maxSessionIDLength {
		return domain.NewValidationError("session id is not a valid identifier", nil)
	}
	return nil
}
