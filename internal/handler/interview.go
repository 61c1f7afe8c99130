package handler

import (
	"interview-byte/internal/domain"
	"interview-byte/internal/dto"
	"interview-byte/internal/middleware"
	"interview-byte/internal/service"
	"interview-byte/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// InterviewHandler handles interview session HTTP requests
type InterviewHandler struct {
	service   service.InterviewService
	validator *validation.Validator
}

// NewInterviewHandler creates a new InterviewHandler instance
func NewInterviewHandler(service service.InterviewService) *InterviewHandler {
	return &InterviewHandler{service: service, validator: validation.NewValidator()}
}

func callerUserID(c *fiber.Ctx) string {
	userID, _ := c.Locals(middleware.UserIDKey).(string)
	return userID
}

// CreateInterview godoc
// @Summary Create an interview session
// @Description Quotes pricing, generates questions and persists a new SETUP session
// @Tags interviews
// @Accept json
// @Produce json
// @Param request body dto.CreateInterviewRequest true "Interview configuration"
// @Success 201 {object} dto.CreateInterviewResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /interviews [post]
func (h *InterviewHandler) CreateInterview(c *fiber.Ctx) error {
	var req dto.CreateInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewValidationError("Invalid request body", err)
	}
	if err := h.validator.ValidateCreateInterviewRequest(&req); err != nil {
		return err
	}
	req.UserID = callerUserID(c)

	resp, err := h.service.CreateSession(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// StartInterview godoc
// @Summary Start an interview
// @Description Enforces the payment gate and initiates the voice call
// @Tags interviews
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.StartInterviewResponse
// @Failure 402 {object} middleware.ErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /interviews/{id}/start [post]
func (h *InterviewHandler) StartInterview(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if err := h.validator.ValidateSessionID(sessionID); err != nil {
		return err
	}
	resp, err := h.service.StartInterview(c.Context(), sessionID, callerUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CompleteInterview godoc
// @Summary Complete an interview
// @Description Fetches the transcript, generates the report and closes the session
// @Tags interviews
// @Produce json
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /interviews/{id}/complete [post]
func (h *InterviewHandler) CompleteInterview(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if err := h.validator.ValidateSessionID(sessionID); err != nil {
		return err
	}
	if err := h.service.CompleteInterview(c.Context(), sessionID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetReport godoc
// @Summary Get the interview report
// @Tags interviews
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.ReportResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /interviews/{id}/report [get]
func (h *InterviewHandler) GetReport(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if err := h.validator.ValidateSessionID(sessionID); err != nil {
		return err
	}
	resp, err := h.service.GetReport(c.Context(), sessionID, callerUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListHistory godoc
// @Summary List the caller's interview history
// @Tags interviews
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} dto.InterviewHistoryResponse
// @Security BearerAuth
// @Router /interviews [get]
func (h *InterviewHandler) ListHistory(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	resp, err := h.service.ListHistory(c.Context(), callerUserID(c), page, limit)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
