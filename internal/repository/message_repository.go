package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/servicehub/internal/domain"
)

// MessageRepository encapsulates direct message persistence.
type MessageRepository interface {
	Create(ctx context.Context, message *domain.DirectMessage) error
	ListForUser(ctx context.Context, userID string) ([]domain.DirectMessage, error)
}

type messageRepository struct {
	pool *pgxpool.Pool
}

// NewMessageRepository instantiates repository.
func NewMessageRepository(pool *pgxpool.Pool) MessageRepository {
	return &messageRepository{pool: pool}
}

func (r *messageRepository) Create(ctx context.Context, message *domain.DirectMessage) error {
	const query = `
        INSERT INTO messages (sender_id, recipient_id, content)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		message.SenderID,
		message.RecipientID,
		message.Content,
	).Scan(&message.ID, &message.CreatedAt)
}

// ListForUser returns messages the user sent or received, newest first.
func (r *messageRepository) ListForUser(ctx context.Context, userID string) ([]domain.DirectMessage, error) {
	const query = `
        SELECT id, sender_id, recipient_id, content, created_at
        FROM messages WHERE sender_id=$1 OR recipient_id=$1
        ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.DirectMessage
	for rows.Next() {
		var message domain.DirectMessage
		if err := rows.Scan(
			&message.ID,
			&message.SenderID,
			&message.RecipientID,
			&message.Content,
			&message.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, message)
	}
	return result, rows.Err()
}
