package dto

import (
	"time"

	"github.com/spec-kit/servicehub/internal/domain"
)

// RegisterRequest payload for account creation.
type RegisterRequest struct {
	Name              string                 `json:"name"`
	Email             string                 `json:"email"`
	Password          string                 `json:"password"`
	Role              domain.Role            `json:"role"`
	Headline          string                 `json:"headline"`
	ServiceType       domain.ServiceCategory `json:"service_type"`
	BusinessRegNumber string                 `json:"business_reg_number"`
	VideoURL          string                 `json:"video_url"`
}

// LoginRequest payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse wraps an issued token.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UpdateProfileRequest carries partial profile edits.
type UpdateProfileRequest struct {
	Headline          *string                 `json:"headline"`
	ServiceType       *domain.ServiceCategory `json:"service_type"`
	BusinessRegNumber *string                 `json:"business_reg_number"`
	VideoURL          *string                 `json:"video_url"`
	Portfolio         []domain.PortfolioItem  `json:"portfolio"`
	Links             *domain.Links           `json:"links"`
	Contact           *domain.Contact         `json:"contact"`
}

// UserProfileResponse is the caller's own profile view.
type UserProfileResponse struct {
	ID                string                 `json:"id"`
	Name              string                 `json:"name"`
	Email             string                 `json:"email"`
	Role              domain.Role            `json:"role"`
	Headline          string                 `json:"headline,omitempty"`
	ServiceType       domain.ServiceCategory `json:"service_type,omitempty"`
	BusinessRegNumber string                 `json:"business_reg_number,omitempty"`
	VideoURL          string                 `json:"video_url,omitempty"`
	Picture           string                 `json:"picture,omitempty"`
	Portfolio         []domain.PortfolioItem `json:"portfolio,omitempty"`
	Links             domain.Links           `json:"links"`
	Contact           domain.Contact         `json:"contact"`
	AverageRating     float64                `json:"average_rating"`
	CreatedAt         time.Time              `json:"created_at"`
}
