package handlers

import (
	"math"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/servicehub/internal/api/dto"
	"github.com/spec-kit/servicehub/internal/auth"
	"github.com/spec-kit/servicehub/internal/domain"
	"github.com/spec-kit/servicehub/internal/service"
	apperrors "github.com/spec-kit/servicehub/pkg/util"
)

// ProfessionalsHandler exposes the professional directory and rating endpoints.
type ProfessionalsHandler struct {
	ratings   *service.RatingService
	discovery *service.DiscoveryService
	presence  *service.PresenceService
}

// NewProfessionalsHandler constructs handler.
func NewProfessionalsHandler(ratings *service.RatingService, discovery *service.DiscoveryService, presence *service.PresenceService) *ProfessionalsHandler {
	return &ProfessionalsHandler{ratings: ratings, discovery: discovery, presence: presence}
}

// Search GET /professionals.
func (h *ProfessionalsHandler) Search(c *fiber.Ctx) error {
	filter := service.DiscoveryFilter{
		ServiceType: c.Query("service_type"),
		Location:    c.Query("location"),
		FreeText:    c.Query("q"),
		Limit:       parseInt(c.Query("page_size"), 20),
	}
	page := parseInt(c.Query("page"), 1)
	filter.Offset = (page - 1) * filter.Limit

	professionals, err := h.discovery.SearchProfessionals(c.Context(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.ProfessionalSummary, 0, len(professionals))
	for i := range professionals {
		p := &professionals[i]
		items = append(items, dto.ProfessionalSummary{
			ID:            p.ID,
			Name:          p.Name,
			Headline:      p.Headline,
			ServiceType:   p.ServiceType,
			Picture:       p.Picture,
			AverageRating: roundRating(p.AverageRating),
			Online:        h.presence.IsOnline(c.Context(), p.ID),
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetProfessional GET /professionals/:id.
func (h *ProfessionalsHandler) GetProfessional(c *fiber.Ctx) error {
	professional, ratings, err := h.ratings.GetProfessional(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": professionalDetail(professional, ratings, h.presence.IsOnline(c.Context(), professional.ID))})
}

// SubmitRating POST /professionals/:id/rate.
func (h *ProfessionalsHandler) SubmitRating(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.SubmitRatingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	rating, err := h.ratings.Submit(c.Context(), principal.User, c.Params("id"), req.Score, req.Comment)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ratingResponse(rating)})
}

func professionalDetail(professional *domain.User, ratings []domain.Rating, online bool) dto.ProfessionalDetailResponse {
	history := make([]dto.RatingResponse, 0, len(ratings))
	for i := range ratings {
		history = append(history, ratingResponse(&ratings[i]))
	}
	return dto.ProfessionalDetailResponse{
		ID:            professional.ID,
		Name:          professional.Name,
		Headline:      professional.Headline,
		ServiceType:   professional.ServiceType,
		VideoURL:      professional.VideoURL,
		Picture:       professional.Picture,
		Portfolio:     professional.Portfolio,
		Links:         professional.Links,
		Contact:       professional.Contact,
		AverageRating: roundRating(professional.AverageRating),
		Online:        online,
		Ratings:       history,
	}
}

func ratingResponse(rating *domain.Rating) dto.RatingResponse {
	return dto.RatingResponse{
		ID:         rating.ID,
		CustomerID: rating.CustomerID,
		Score:      rating.Score,
		Comment:    rating.Comment,
		CreatedAt:  rating.CreatedAt,
	}
}

// roundRating trims the stored average to one decimal for display. The full
// precision value stays in the store.
func roundRating(v float64) float64 {
	return math.Round(v*10) / 10
}
