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

// UsersHandler exposes auth and profile endpoints.
type UsersHandler struct {
	auth     *service.AuthService
	profiles *service.ProfileService
	presence *service.PresenceService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService, profileService *service.ProfileService, presenceService *service.PresenceService) *UsersHandler {
	return &UsersHandler{auth: authService, profiles: profileService, presence: presenceService}
}

// Register handles POST /auth/register.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, token, exp, err := h.auth.Register(c.Context(), service.RegisterInput{
		Name:              req.Name,
		Email:             req.Email,
		Password:          req.Password,
		Role:              req.Role,
		Headline:          req.Headline,
		ServiceType:       req.ServiceType,
		BusinessRegNumber: req.BusinessRegNumber,
		VideoURL:          req.VideoURL,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"user": userProfile(user),
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Login handles POST /auth/login. A successful login marks the user online.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	user, token, exp, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	h.presence.SetOnline(c.Context(), user.ID)

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user": userProfile(user),
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Logout handles POST /auth/logout by clearing the online flag.
func (h *UsersHandler) Logout(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	h.presence.SetOffline(c.Context(), principal.User.ID)
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "logged_out"}})
}

// GetProfile handles GET /users/me.
func (h *UsersHandler) GetProfile(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	user, err := h.profiles.GetProfile(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": userProfile(user)})
}

// UpdateProfile handles PUT /users/me.
func (h *UsersHandler) UpdateProfile(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, err := h.profiles.UpdateProfile(c.Context(), principal.User.ID, service.ProfileUpdateInput{
		Headline:          req.Headline,
		ServiceType:       req.ServiceType,
		BusinessRegNumber: req.BusinessRegNumber,
		VideoURL:          req.VideoURL,
		Portfolio:         req.Portfolio,
		Links:             req.Links,
		Contact:           req.Contact,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": userProfile(user)})
}

func userProfile(user *domain.User) dto.UserProfileResponse {
	return dto.UserProfileResponse{
		ID:                user.ID,
		Name:              user.Name,
		Email:             user.Email,
		Role:              user.Role,
		Headline:          user.Headline,
		ServiceType:       user.ServiceType,
		BusinessRegNumber: user.BusinessRegNumber,
		VideoURL:          user.VideoURL,
		Picture:           user.Picture,
		Portfolio:         user.Portfolio,
		Links:             user.Links,
		Contact:           user.Contact,
		AverageRating:     roundRating(user.AverageRating),
		CreatedAt:         user.CreatedAt,
	}
}
