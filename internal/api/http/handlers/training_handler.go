package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/agenciaflow/backoffice/internal/api/dto"
	"github.com/agenciaflow/backoffice/internal/auth"
	"github.com/agenciaflow/backoffice/internal/domain"
	"github.com/agenciaflow/backoffice/internal/service"
	apperrors "github.com/agenciaflow/backoffice/pkg/util"
)

// TrainingHandler manages training content endpoints.
type TrainingHandler struct {
	training *service.TrainingService
}

// NewTrainingHandler constructs handler.
func NewTrainingHandler(training *service.TrainingService) *TrainingHandler {
	return &TrainingHandler{training: training}
}

// CreateContent POST /training.
func (h *TrainingHandler) CreateContent(c *fiber.Ctx) error {
	var req dto.TrainingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	content, err := h.training.CreateContent(c.UserContext(), service.TrainingInput{
		Title:       req.Title,
		Category:    req.Category,
		VideoURL:    req.VideoURL,
		Description: req.Description,
		Published:   req.Published,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewTrainingResponse(content)})
}

// UpdateContent PUT /training/:id.
func (h *TrainingHandler) UpdateContent(c *fiber.Ctx) error {
	var req dto.TrainingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	content, err := h.training.UpdateContent(c.UserContext(), c.Params("id"), service.TrainingInput{
		Title:       req.Title,
		Category:    req.Category,
		VideoURL:    req.VideoURL,
		Description: req.Description,
		Published:   req.Published,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTrainingResponse(content)})
}

// ListContents GET /training. Non-admin callers only see published items.
func (h *TrainingHandler) ListContents(c *fiber.Ctx) error {
	publishedOnly := true
	if principal, ok := auth.PrincipalFromContext(c); ok && principal.Role == domain.RoleAdmin {
		publishedOnly = false
	}
	contents, err := h.training.ListContents(c.UserContext(), publishedOnly)
	if err != nil {
		return err
	}
	items := make([]dto.TrainingResponse, 0, len(contents))
	for i := range contents {
		items = append(items, dto.NewTrainingResponse(&contents[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}
