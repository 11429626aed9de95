package events

import (
	"time"

	"github.com/spec-kit/servicehub/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventRequestCreated   EventType = "request_created"
	EventRequestAccepted  EventType = "request_accepted"
	EventRequestCompleted EventType = "request_completed"
	EventRequestCancelled EventType = "request_cancelled"
	EventRatingSubmitted  EventType = "rating_submitted"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	UserID string      `json:"user_id"`
	Role   domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// RequestCreatedPayload payload.
type RequestCreatedPayload struct {
	Category    domain.ServiceCategory `json:"category"`
	Location    string                 `json:"location,omitempty"`
	Price       *float64               `json:"price,omitempty"`
	Description string                 `json:"description"`
}

// RequestAcceptedPayload payload.
type RequestAcceptedPayload struct {
	CustomerID     string `json:"customer_id"`
	ProfessionalID string `json:"professional_id"`
}

// RequestCompletedPayload payload.
type RequestCompletedPayload struct {
	ProfessionalID    string  `json:"professional_id"`
	ResponseTimeHours float64 `json:"response_time_hours"`
}

// RequestCancelledPayload payload.
type RequestCancelledPayload struct {
	PriorStatus domain.RequestStatus `json:"prior_status"`
}

// RatingSubmittedPayload payload.
type RatingSubmittedPayload struct {
	ProfessionalID string  `json:"professional_id"`
	Score          int     `json:"score"`
	AverageRating  float64 `json:"average_rating"`
}
