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

// MessageService handles direct messages between participants.
type MessageService struct {
	messages repository.MessageRepository
	users    repository.UserRepository
}

// NewMessageService constructs the service.
func NewMessageService(messages repository.MessageRepository, users repository.UserRepository) *MessageService {
	return &MessageService{messages: messages, users: users}
}

// Send delivers a message from the actor to the recipient.
func (s *MessageService) Send(ctx context.Context, actor *domain.User, recipientID, content string) (*domain.DirectMessage, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.NewValidationError("content required", nil)
	}
	if _, err := s.users.GetByID(ctx, recipientID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("recipient", map[string]any{"recipient_id": recipientID})
		}
		return nil, apperrors.MapError(err)
	}

	message := &domain.DirectMessage{
		SenderID:    actor.ID,
		RecipientID: recipientID,
		Content:     strings.TrimSpace(content),
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, apperrors.MapError(err)
	}
	return message, nil
}

// ListForUser returns the caller's sent and received messages, newest first.
func (s *MessageService) ListForUser(ctx context.Context, actor *domain.User) ([]domain.DirectMessage, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	messages, err := s.messages.ListForUser(ctx, actor.ID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return messages, nil
}
