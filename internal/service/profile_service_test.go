package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/servicehub/internal/domain"
	"github.com/spec-kit/servicehub/internal/service/mocks"
)

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("headline update persists", func(t *testing.T) {
		updated := false
		users := &mocks.MockUserRepository{
			GetByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
				return &domain.User{ID: id, Role: domain.RoleCustomer, Headline: "old"}, nil
			},
			UpdateFunc: func(ctx context.Context, user *domain.User) error {
				updated = true
				assert.Equal(t, "new headline", user.Headline)
				return nil
			},
		}
		svc := NewProfileService(users)
		headline := "  new headline  "

		user, err := svc.UpdateProfile(ctx, "user-1", ProfileUpdateInput{Headline: &headline})

		require.NoError(t, err)
		assert.True(t, updated)
		assert.Equal(t, "new headline", user.Headline)
	})

	t.Run("customer cannot set professional fields", func(t *testing.T) {
		users := &mocks.MockUserRepository{
			GetByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
				return &domain.User{ID: id, Role: domain.RoleCustomer}, nil
			},
		}
		svc := NewProfileService(users)
		category := domain.CategoryPlumbing

		_, err := svc.UpdateProfile(ctx, "user-1", ProfileUpdateInput{ServiceType: &category})

		assertDomainCode(t, err, "FORBIDDEN")
	})

	t.Run("portfolio capped", func(t *testing.T) {
		users := &mocks.MockUserRepository{
			GetByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
				return &domain.User{ID: id, Role: domain.RoleProfessional}, nil
			},
		}
		svc := NewProfileService(users)

		oversized := make([]domain.PortfolioItem, domain.MaxPortfolioItems+1)
		_, err := svc.UpdateProfile(ctx, "pro-1", ProfileUpdateInput{Portfolio: oversized})

		assertDomainCode(t, err, "VALIDATION_FAILED")
	})

	t.Run("unrecognized service type rejected", func(t *testing.T) {
		users := &mocks.MockUserRepository{
			GetByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
				return &domain.User{ID: id, Role: domain.RoleProfessional}, nil
			},
		}
		svc := NewProfileService(users)
		category := domain.ServiceCategory("Wizardry")

		_, err := svc.UpdateProfile(ctx, "pro-1", ProfileUpdateInput{ServiceType: &category})

		assertDomainCode(t, err, "VALIDATION_FAILED")
	})
}
