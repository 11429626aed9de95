package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/servicehub/internal/domain"
	"github.com/spec-kit/servicehub/internal/repository"
	"github.com/spec-kit/servicehub/internal/service/mocks"
)

func TestSubmitRating(t *testing.T) {
	ctx := context.Background()

	t.Run("valid scores are appended", func(t *testing.T) {
		for score := domain.MinRatingScore; score <= domain.MaxRatingScore; score++ {
			appended := false
			repo := &mocks.MockProfessionalRepository{
				AppendRatingFunc: func(ctx context.Context, rating *domain.Rating) error {
					appended = true
					assert.Equal(t, "pro-1", rating.ProfessionalID)
					assert.Equal(t, "cust-1", rating.CustomerID)
					rating.ID = "rating-1"
					return nil
				},
			}
			svc := NewRatingService(repo, nil)

			rating, err := svc.Submit(ctx, customerActor(), "pro-1", score, "great work")

			require.NoError(t, err)
			assert.True(t, appended)
			assert.Equal(t, score, rating.Score)
		}
	})

	t.Run("score out of range rejected before persistence", func(t *testing.T) {
		appended := false
		repo := &mocks.MockProfessionalRepository{
			AppendRatingFunc: func(ctx context.Context, rating *domain.Rating) error {
				appended = true
				return nil
			},
		}
		svc := NewRatingService(repo, nil)

		for _, score := range []int{0, 6, -1, 100} {
			_, err := svc.Submit(ctx, customerActor(), "pro-1", score, "")
			assertDomainCode(t, err, "VALIDATION_FAILED")
		}
		assert.False(t, appended)
	})

	t.Run("duplicate submission rejected", func(t *testing.T) {
		repo := &mocks.MockProfessionalRepository{
			AppendRatingFunc: func(ctx context.Context, rating *domain.Rating) error {
				return repository.ErrDuplicateRating
			},
		}
		svc := NewRatingService(repo, nil)

		_, err := svc.Submit(ctx, customerActor(), "pro-1", 4, "")

		assertDomainCode(t, err, "DUPLICATE_RATING")
	})

	t.Run("unknown professional reports not found", func(t *testing.T) {
		repo := &mocks.MockProfessionalRepository{
			AppendRatingFunc: func(ctx context.Context, rating *domain.Rating) error {
				return pgx.ErrNoRows
			},
		}
		svc := NewRatingService(repo, nil)

		_, err := svc.Submit(ctx, customerActor(), "ghost", 4, "")

		assertDomainCode(t, err, "NOT_FOUND")
	})
}

func TestGetProfessionalWithRatings(t *testing.T) {
	ctx := context.Background()

	t.Run("profile carries the full history", func(t *testing.T) {
		repo := &mocks.MockProfessionalRepository{
			GetProfessionalFunc: func(ctx context.Context, id string) (*domain.User, error) {
				return &domain.User{ID: id, Role: domain.RoleProfessional, AverageRating: 4.5}, nil
			},
			ListRatingsFunc: func(ctx context.Context, professionalID string) ([]domain.Rating, error) {
				return []domain.Rating{
					{ID: "r1", Score: 4},
					{ID: "r2", Score: 5},
				}, nil
			},
		}
		svc := NewRatingService(repo, nil)

		professional, ratings, err := svc.GetProfessional(ctx, "pro-1")

		require.NoError(t, err)
		assert.Equal(t, 4.5, professional.AverageRating)
		assert.Len(t, ratings, 2)
		assert.Equal(t, 4.5, domain.AverageScore(ratings))
	})

	t.Run("unknown professional reports not found", func(t *testing.T) {
		repo := &mocks.MockProfessionalRepository{
			GetProfessionalFunc: func(ctx context.Context, id string) (*domain.User, error) {
				return nil, pgx.ErrNoRows
			},
		}
		svc := NewRatingService(repo, nil)

		_, _, err := svc.GetProfessional(ctx, "ghost")

		assertDomainCode(t, err, "NOT_FOUND")
	})
}
