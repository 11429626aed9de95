package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/servicehub/internal/config"
	"github.com/spec-kit/servicehub/internal/domain"
	"github.com/spec-kit/servicehub/internal/service/mocks"
)

func testAuthConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 60,
			BcryptCost:            bcrypt.MinCost,
		},
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("customer registration issues a token", func(t *testing.T) {
		users := &mocks.MockUserRepository{
			GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
				return nil, pgx.ErrNoRows
			},
			CreateFunc: func(ctx context.Context, user *domain.User) error {
				assert.Equal(t, "ada@example.com", user.Email)
				assert.NotEqual(t, "secret", user.PasswordHash)
				user.ID = "user-1"
				return nil
			},
		}
		svc := NewAuthService(testAuthConfig(), users)

		user, token, exp, err := svc.Register(ctx, RegisterInput{
			Name:     "Ada",
			Email:    "Ada@Example.com",
			Password: "secret",
			Role:     domain.RoleCustomer,
		})

		require.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
		assert.NotEmpty(t, token)
		assert.False(t, exp.IsZero())
	})

	t.Run("professional fields only kept for professionals", func(t *testing.T) {
		users := &mocks.MockUserRepository{
			GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
				return nil, pgx.ErrNoRows
			},
			CreateFunc: func(ctx context.Context, user *domain.User) error {
				assert.Empty(t, user.ServiceType)
				assert.Empty(t, user.BusinessRegNumber)
				user.ID = "user-2"
				return nil
			},
		}
		svc := NewAuthService(testAuthConfig(), users)

		_, _, _, err := svc.Register(ctx, RegisterInput{
			Name:              "Ada",
			Email:             "ada@example.com",
			Password:          "secret",
			Role:              domain.RoleCustomer,
			ServiceType:       domain.CategoryPlumbing,
			BusinessRegNumber: "BRN-1",
		})

		require.NoError(t, err)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		users := &mocks.MockUserRepository{
			GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
				return &domain.User{ID: "existing", Email: email}, nil
			},
		}
		svc := NewAuthService(testAuthConfig(), users)

		_, _, _, err := svc.Register(ctx, RegisterInput{
			Name:     "Ada",
			Email:    "ada@example.com",
			Password: "secret",
			Role:     domain.RoleCustomer,
		})

		assertDomainCode(t, err, "VALIDATION_FAILED")
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		svc := NewAuthService(testAuthConfig(), &mocks.MockUserRepository{})

		_, _, _, err := svc.Register(ctx, RegisterInput{
			Name:     "Ada",
			Email:    "ada@example.com",
			Password: "secret",
			Role:     "ADMIN",
		})

		assertDomainCode(t, err, "VALIDATION_FAILED")
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("valid credentials issue a token", func(t *testing.T) {
		users := &mocks.MockUserRepository{
			GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
				return &domain.User{ID: "user-1", Email: email, PasswordHash: string(hashed), Role: domain.RoleCustomer}, nil
			},
		}
		svc := NewAuthService(testAuthConfig(), users)

		user, token, _, err := svc.Login(ctx, "ada@example.com", "secret")

		require.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)

		claims, err := svc.TokenManager().ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, domain.RoleCustomer, claims.Role)
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		users := &mocks.MockUserRepository{
			GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
				return &domain.User{ID: "user-1", PasswordHash: string(hashed)}, nil
			},
		}
		svc := NewAuthService(testAuthConfig(), users)

		_, _, _, err := svc.Login(ctx, "ada@example.com", "wrong")

		assertDomainCode(t, err, "UNAUTHORIZED")
	})

	t.Run("unknown email rejected without detail", func(t *testing.T) {
		users := &mocks.MockUserRepository{
			GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
				return nil, pgx.ErrNoRows
			},
		}
		svc := NewAuthService(testAuthConfig(), users)

		_, _, _, err := svc.Login(ctx, "ghost@example.com", "secret")

		assertDomainCode(t, err, "UNAUTHORIZED")
	})
}
