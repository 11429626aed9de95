package domain

import "time"

// DirectMessage is a one-to-one message between two marketplace participants.
type DirectMessage struct {
	ID          string
	SenderID    string
	RecipientID string
	Content     string
	CreatedAt   time.Time
}
