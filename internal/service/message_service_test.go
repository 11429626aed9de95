package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/servicehub/internal/domain"
	"github.com/spec-kit/servicehub/internal/service/mocks"
)

func TestSendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("message delivered to known recipient", func(t *testing.T) {
		messages := &mocks.MockMessageRepository{
			CreateFunc: func(ctx context.Context, message *domain.DirectMessage) error {
				assert.Equal(t, "cust-1", message.SenderID)
				assert.Equal(t, "pro-1", message.RecipientID)
				assert.Equal(t, "hello there", message.Content)
				message.ID = "msg-1"
				return nil
			},
		}
		users := &mocks.MockUserRepository{
			GetByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
				return &domain.User{ID: id}, nil
			},
		}
		svc := NewMessageService(messages, users)

		message, err := svc.Send(ctx, customerActor(), "pro-1", "  hello there  ")

		require.NoError(t, err)
		assert.Equal(t, "msg-1", message.ID)
	})

	t.Run("blank content rejected", func(t *testing.T) {
		svc := NewMessageService(&mocks.MockMessageRepository{}, &mocks.MockUserRepository{})

		_, err := svc.Send(ctx, customerActor(), "pro-1", "   ")

		assertDomainCode(t, err, "VALIDATION_FAILED")
	})

	t.Run("unknown recipient rejected", func(t *testing.T) {
		users := &mocks.MockUserRepository{
			GetByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
				return nil, pgx.ErrNoRows
			},
		}
		svc := NewMessageService(&mocks.MockMessageRepository{}, users)

		_, err := svc.Send(ctx, customerActor(), "ghost", "hello")

		assertDomainCode(t, err, "NOT_FOUND")
	})
}

func TestListMessages(t *testing.T) {
	ctx := context.Background()

	t.Run("returns both directions", func(t *testing.T) {
		messages := &mocks.MockMessageRepository{
			ListForUserFunc: func(ctx context.Context, userID string) ([]domain.DirectMessage, error) {
				assert.Equal(t, "cust-1", userID)
				return []domain.DirectMessage{
					{ID: "m2", SenderID: "pro-1", RecipientID: "cust-1"},
					{ID: "m1", SenderID: "cust-1", RecipientID: "pro-1"},
				}, nil
			},
		}
		svc := NewMessageService(messages, &mocks.MockUserRepository{})

		result, err := svc.ListForUser(ctx, customerActor())

		require.NoError(t, err)
		assert.Len(t, result, 2)
	})
}
