package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/servicehub/internal/api/dto"
	"github.com/spec-kit/servicehub/internal/auth"
	"github.com/spec-kit/servicehub/internal/domain"
	"github.com/spec-kit/servicehub/internal/service"
	apperrors "github.com/spec-kit/servicehub/pkg/util"
)

// RequestsHandler manages the service request lifecycle endpoints.
type RequestsHandler struct {
	service *service.RequestService
}

// NewRequestsHandler constructs handler.
func NewRequestsHandler(requestService *service.RequestService) *RequestsHandler {
	return &RequestsHandler{service: requestService}
}

// CreateRequest POST /requests.
func (h *RequestsHandler) CreateRequest(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Category == "" || req.Description == "" {
		return apperrors.NewValidationError("category, description required", nil)
	}

	input := service.RequestCreateInput{
		Category:    req.Category,
		Description: req.Description,
		Location:    req.Location,
		Price:       req.Price,
	}
	request, err := h.service.CreateRequest(c.Context(), principal.User, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": requestSummary(request)})
}

// ListRequests GET /requests.
func (h *RequestsHandler) ListRequests(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	requests, err := h.service.ListForUser(c.Context(), principal.User)
	if err != nil {
		return err
	}
	items := make([]dto.RequestSummary, 0, len(requests))
	for i := range requests {
		items = append(items, requestSummary(&requests[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetRequest GET /requests/:id.
func (h *RequestsHandler) GetRequest(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	request, err := h.service.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": requestDetail(request)})
}

// AcceptRequest PUT /requests/:id/accept.
func (h *RequestsHandler) AcceptRequest(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	request, err := h.service.Accept(c.Context(), principal.User, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": requestSummary(request)})
}

// CompleteRequest PUT /requests/:id/complete.
func (h *RequestsHandler) CompleteRequest(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	request, err := h.service.Complete(c.Context(), principal.User, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": requestDetail(request)})
}

// CancelRequest PUT /requests/:id/cancel.
func (h *RequestsHandler) CancelRequest(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	request, err := h.service.Cancel(c.Context(), principal.User, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": requestSummary(request)})
}

func requestSummary(request *domain.ServiceRequest) dto.RequestSummary {
	return dto.RequestSummary{
		ID:                request.ID,
		ExternalKey:       request.ExternalKey,
		CustomerID:        request.CustomerID,
		ProfessionalID:    request.ProfessionalID,
		Category:          request.Category,
		Location:          request.Location,
		Price:             request.Price,
		Status:            request.Status,
		ResponseTimeHours: request.ResponseTimeHours,
		CreatedAt:         request.CreatedAt,
		UpdatedAt:         request.UpdatedAt,
	}
}

func requestDetail(request *domain.ServiceRequest) dto.RequestDetailResponse {
	return dto.RequestDetailResponse{
		ID:                request.ID,
		ExternalKey:       request.ExternalKey,
		CustomerID:        request.CustomerID,
		ProfessionalID:    request.ProfessionalID,
		Category:          request.Category,
		Description:       request.Description,
		Location:          request.Location,
		Price:             request.Price,
		Status:            request.Status,
		ResponseTimeHours: request.ResponseTimeHours,
		CompletedAt:       request.CompletedAt,
		CreatedAt:         request.CreatedAt,
		UpdatedAt:         request.UpdatedAt,
	}
}
