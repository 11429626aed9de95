package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/servicehub/internal/domain"
	"github.com/spec-kit/servicehub/internal/repository"
	"github.com/spec-kit/servicehub/internal/service/mocks"
)

func TestSearchProfessionals(t *testing.T) {
	ctx := context.Background()

	t.Run("all filters compose", func(t *testing.T) {
		repo := &mocks.MockProfessionalRepository{
			SearchFunc: func(ctx context.Context, filter repository.ProfessionalFilter) ([]domain.User, error) {
				require.NotNil(t, filter.ServiceType)
				assert.Equal(t, domain.CategoryPlumbing, *filter.ServiceType)
				require.NotNil(t, filter.Location)
				assert.Equal(t, "Accra", *filter.Location)
				require.NotNil(t, filter.FreeText)
				assert.Equal(t, "emergency", *filter.FreeText)
				return []domain.User{{ID: "pro-1", Role: domain.RoleProfessional}}, nil
			},
		}
		svc := NewDiscoveryService(repo)

		results, err := svc.SearchProfessionals(ctx, DiscoveryFilter{
			ServiceType: "Plumbing",
			Location:    "Accra",
			FreeText:    "emergency",
		})

		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("blank filters are omitted", func(t *testing.T) {
		repo := &mocks.MockProfessionalRepository{
			SearchFunc: func(ctx context.Context, filter repository.ProfessionalFilter) ([]domain.User, error) {
				assert.Nil(t, filter.ServiceType)
				assert.Nil(t, filter.Location)
				assert.Nil(t, filter.FreeText)
				return nil, nil
			},
		}
		svc := NewDiscoveryService(repo)

		_, err := svc.SearchProfessionals(ctx, DiscoveryFilter{
			ServiceType: "  ",
			Location:    "",
		})

		require.NoError(t, err)
	})

	t.Run("unrecognized service type rejected", func(t *testing.T) {
		svc := NewDiscoveryService(&mocks.MockProfessionalRepository{})

		_, err := svc.SearchProfessionals(ctx, DiscoveryFilter{ServiceType: "Wizardry"})

		assertDomainCode(t, err, "VALIDATION_FAILED")
	})
}
