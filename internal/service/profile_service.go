package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/servicehub/internal/domain"
	"github.com/spec-kit/servicehub/internal/repository"
	apperrors "github.com/spec-kit/servicehub/pkg/util"
)

// ProfileUpdateInput carries the editable profile fields. Nil pointers leave
// the current value untouched.
type ProfileUpdateInput struct {
	Headline          *string
	ServiceType       *domain.ServiceCategory
	BusinessRegNumber *string
	VideoURL          *string
	Portfolio         []domain.PortfolioItem
	Links             *domain.Links
	Contact           *domain.Contact
}

// ProfileService manages participant profiles.
type ProfileService struct {
	users repository.UserRepository
}

// NewProfileService constructs the service.
func NewProfileService(users repository.UserRepository) *ProfileService {
	return &ProfileService{users: users}
}

// GetProfile returns the caller's own profile.
func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"user_id": userID})
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// UpdateProfile applies partial profile changes. Professional-only fields are
// rejected for customers; the portfolio is capped at MaxPortfolioItems.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID string, input ProfileUpdateInput) (*domain.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.ServiceType != nil || input.BusinessRegNumber != nil || input.VideoURL != nil || len(input.Portfolio) > 0 {
		if !user.IsProfessional() {
			return nil, apperrors.NewForbidden("professional profile fields require a professional account")
		}
	}
	if len(input.Portfolio) > domain.MaxPortfolioItems {
		return nil, apperrors.NewValidationError("portfolio exceeds maximum items", map[string]any{"max": domain.MaxPortfolioItems})
	}
	if input.ServiceType != nil && !input.ServiceType.Valid() {
		return nil, apperrors.NewValidationError("unrecognized service type", map[string]any{"service_type": *input.ServiceType})
	}

	if input.Headline != nil {
		user.Headline = strings.TrimSpace(*input.Headline)
	}
	if input.ServiceType != nil {
		user.ServiceType = *input.ServiceType
	}
	if input.BusinessRegNumber != nil {
		user.BusinessRegNumber = strings.TrimSpace(*input.BusinessRegNumber)
	}
	if input.VideoURL != nil {
		user.VideoURL = strings.TrimSpace(*input.VideoURL)
	}
	if len(input.Portfolio) > 0 {
		user.Portfolio = input.Portfolio
	}
	if input.Links != nil {
		user.Links = *input.Links
	}
	if input.Contact != nil {
		user.Contact = *input.Contact
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}
	return user, nil
}
