package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/agenciaflow/backoffice/internal/api/dto"
	"github.com/agenciaflow/backoffice/internal/service"
	apperrors "github.com/agenciaflow/backoffice/pkg/util"
)

// ReportsHandler manages report schedule endpoints.
type ReportsHandler struct {
	reports *service.ReportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reports *service.ReportService) *ReportsHandler {
	return &ReportsHandler{reports: reports}
}

// CreateSchedule POST /reports/schedules.
func (h *ReportsHandler) CreateSchedule(c *fiber.Ctx) error {
	var req dto.ReportScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.AccountID == "" || req.RecipientEmail == "" {
		return apperrors.NewValidationError("conta_id and email_destinatario required", nil)
	}
	input := service.ScheduleInput{
		AccountID:      req.AccountID,
		Frequency:      req.Frequency,
		RecipientEmail: req.RecipientEmail,
		Active:         true,
	}
	if req.NextRunAt != nil {
		input.NextRunAt = *req.NextRunAt
	}
	schedule, err := h.reports.CreateSchedule(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewReportScheduleResponse(schedule)})
}

// UpdateSchedule PUT /reports/schedules/:id.
func (h *ReportsHandler) UpdateSchedule(c *fiber.Ctx) error {
	var req dto.ReportScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	input := service.ScheduleInput{
		AccountID:      req.AccountID,
		Frequency:      req.Frequency,
		RecipientEmail: req.RecipientEmail,
		Active:         req.Active,
	}
	if req.NextRunAt != nil {
		input.NextRunAt = *req.NextRunAt
	}
	schedule, err := h.reports.UpdateSchedule(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewReportScheduleResponse(schedule)})
}

// ListByAccount GET /reports/schedules.
func (h *ReportsHandler) ListByAccount(c *fiber.Ctx) error {
	accountID := c.Query("conta_id")
	if accountID == "" {
		return apperrors.NewValidationError("conta_id required", nil)
	}
	schedules, err := h.reports.ListByAccount(c.UserContext(), accountID)
	if err != nil {
		return err
	}
	items := make([]dto.ReportScheduleResponse, 0, len(schedules))
	for i := range schedules {
		items = append(items, dto.NewReportScheduleResponse(&schedules[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// DispatchNow POST /reports/dispatch. Admin maintenance hook to flush
// due schedules without waiting for the worker tick.
func (h *ReportsHandler) DispatchNow(c *fiber.Ctx) error {
	count, err := h.reports.DispatchDue(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"dispatched": count,
		"ran_at":     time.Now().UTC().Format(time.RFC3339),
	}})
}
