package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/agenciaflow/backoffice/internal/api/dto"
	"github.com/agenciaflow/backoffice/internal/auth"
	"github.com/agenciaflow/backoffice/internal/domain"
	"github.com/agenciaflow/backoffice/internal/repository"
	"github.com/agenciaflow/backoffice/internal/service"
	apperrors "github.com/agenciaflow/backoffice/pkg/util"
)

// LeadsHandler manages lead listing, feedback writes, stats and export.
type LeadsHandler struct {
	feedback *service.FeedbackService
	managers *service.ManagerService
}

// NewLeadsHandler constructs handler.
func NewLeadsHandler(feedback *service.FeedbackService, managers *service.ManagerService) *LeadsHandler {
	return &LeadsHandler{feedback: feedback, managers: managers}
}

// ListLeads GET /leads.
func (h *LeadsHandler) ListLeads(c *fiber.Ctx) error {
	filter := parseLeadFilter(c)
	leads, err := h.feedback.ListLeads(c.UserContext(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.LeadSummary, 0, len(leads))
	for i := range leads {
		name := h.managers.DisplayName(c.UserContext(), leads[i].ResponsibleID)
		items = append(items, dto.NewLeadSummary(&leads[i], name))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetLead GET /leads/:id.
func (h *LeadsHandler) GetLead(c *fiber.Ctx) error {
	lead, err := h.feedback.GetLead(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	name := h.managers.DisplayName(c.UserContext(), lead.ResponsibleID)
	return c.JSON(fiber.Map{"data": dto.NewLeadSummary(lead, name)})
}

// UpdateFeedback PUT /leads/:id/feedback.
func (h *LeadsHandler) UpdateFeedback(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Manager == nil {
		return apperrors.NewUnauthorized("manager required")
	}
	var req dto.UpdateFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	payload := domain.FeedbackPayload{
		Status:      req.Status,
		Reasons:     req.Reasons,
		Stage:       req.Stage,
		Rating:      req.Rating,
		Tags:        req.Tags,
		Comment:     req.Comment,
		Attachments: req.Attachments,
	}
	lead, err := h.feedback.UpdateFeedback(c.UserContext(), c.Params("id"), payload, principal.Manager.ID)
	if err != nil {
		return err
	}
	name := h.managers.DisplayName(c.UserContext(), lead.ResponsibleID)
	return c.JSON(fiber.Map{"data": dto.NewLeadSummary(lead, name)})
}

// GetStats GET /leads/stats.
func (h *LeadsHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.feedback.GetStats(c.UserContext(), parseLeadFilter(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": stats})
}

// ExportCSV GET /leads/export.
func (h *LeadsHandler) ExportCSV(c *fiber.Ctx) error {
	payload, err := h.feedback.ExportCSV(c.UserContext(), parseLeadFilter(c))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="leads.csv"`)
	return c.Status(http.StatusOK).Send(payload)
}

// parseLeadFilter builds a filter from query params. The selector
// sentinels "all"/"todos" mean "no constraint", same as absence.
func parseLeadFilter(c *fiber.Ctx) repository.LeadFilter {
	filter := repository.LeadFilter{}
	if search := strings.TrimSpace(c.Query("busca")); search != "" {
		filter.Search = &search
	}
	if account := filterValue(c.Query("conta_id")); account != nil {
		filter.AccountID = account
	}
	if status := filterValue(c.Query("status")); status != nil {
		s := domain.LeadStatus(*status)
		filter.Status = &s
	}
	if origin := filterValue(c.Query("origem")); origin != nil {
		o := domain.LeadOrigin(*origin)
		filter.Origin = &o
	}
	if responsible := filterValue(c.Query("responsavel_id")); responsible != nil {
		filter.ResponsibleID = responsible
	}
	return filter
}

func filterValue(raw string) *string {
	val := strings.TrimSpace(raw)
	if val == "" || strings.EqualFold(val, "all") || strings.EqualFold(val, "todos") {
		return nil
	}
	return &val
}
