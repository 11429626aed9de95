package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/servicehub/internal/auth"
	"github.com/spec-kit/servicehub/internal/domain"
	"github.com/spec-kit/servicehub/internal/service"
	"github.com/spec-kit/servicehub/internal/service/mocks"
)

func TestSubmitRatingResponds200(t *testing.T) {
	directory := &mocks.MockProfessionalRepository{
		AppendRatingFunc: func(ctx context.Context, rating *domain.Rating) error {
			rating.ID = "rating-1"
			return nil
		},
	}
	users := &mocks.MockUserRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, Role: domain.RoleCustomer}, nil
		},
	}

	tokens := auth.NewTokenManager("test-secret", 30)
	token, _, err := tokens.GenerateToken("cust-1", domain.RoleCustomer)
	require.NoError(t, err)

	handler := NewProfessionalsHandler(
		service.NewRatingService(directory, nil),
		service.NewDiscoveryService(directory),
		service.NewPresenceService(nil, 0, nil),
	)

	app := fiber.New()
	app.Post("/professionals/:id/rate", auth.NewAuthMiddleware(tokens, users).Handle, handler.SubmitRating)

	req := httptest.NewRequest(http.MethodPost, "/professionals/pro-1/rate", strings.NewReader(`{"score":5,"comment":"great"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
