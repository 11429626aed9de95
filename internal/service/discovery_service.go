package service

import (
	"context"
	"strings"

	"github.com/spec-kit/servicehub/internal/domain"
	"github.com/spec-kit/servicehub/internal/repository"
	apperrors "github.com/spec-kit/servicehub/pkg/util"
)

// DiscoveryFilter describes a professional search.
type DiscoveryFilter struct {
	ServiceType string
	Location    string
	FreeText    string
	Limit       int
	Offset      int
}

// DiscoveryService is the read-side professional search. It only composes the
// directory predicate; it never mutates anything.
type DiscoveryService struct {
	directory repository.ProfessionalRepository
}

// NewDiscoveryService constructs the service.
func NewDiscoveryService(directory repository.ProfessionalRepository) *DiscoveryService {
	return &DiscoveryService{directory: directory}
}

// SearchProfessionals lists professionals matching the combined predicate:
// exact service type, substring on the contact address, and free text over
// name or headline.
func (s *DiscoveryService) SearchProfessionals(ctx context.Context, filter DiscoveryFilter) ([]domain.User, error) {
	repoFilter := repository.ProfessionalFilter{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}
	if trimmed := strings.TrimSpace(filter.ServiceType); trimmed != "" {
		category := domain.ServiceCategory(trimmed)
		if !category.Valid() {
			return nil, apperrors.NewValidationError("unrecognized service type", map[string]any{"service_type": trimmed})
		}
		repoFilter.ServiceType = &category
	}
	if trimmed := strings.TrimSpace(filter.Location); trimmed != "" {
		repoFilter.Location = &trimmed
	}
	if trimmed := strings.TrimSpace(filter.FreeText); trimmed != "" {
		repoFilter.FreeText = &trimmed
	}

	professionals, err := s.directory.Search(ctx, repoFilter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return professionals, nil
}
