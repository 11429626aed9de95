package dto

import (
	"time"

	"github.com/spec-kit/servicehub/internal/domain"
)

// SubmitRatingRequest payload.
type SubmitRatingRequest struct {
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

// RatingResponse is one ledger entry.
type RatingResponse struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Score      int       `json:"score"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ProfessionalSummary is a directory search result row.
type ProfessionalSummary struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Headline      string                 `json:"headline,omitempty"`
	ServiceType   domain.ServiceCategory `json:"service_type,omitempty"`
	Picture       string                 `json:"picture,omitempty"`
	AverageRating float64                `json:"average_rating"`
	Online        bool                   `json:"online"`
}

// ProfessionalDetailResponse is the public profile with the rating history.
type ProfessionalDetailResponse struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Headline      string                 `json:"headline,omitempty"`
	ServiceType   domain.ServiceCategory `json:"service_type,omitempty"`
	VideoURL      string                 `json:"video_url,omitempty"`
	Picture       string                 `json:"picture,omitempty"`
	Portfolio     []domain.PortfolioItem `json:"portfolio,omitempty"`
	Links         domain.Links           `json:"links"`
	Contact       domain.Contact         `json:"contact"`
	AverageRating float64                `json:"average_rating"`
	Online        bool                   `json:"online"`
	Ratings       []RatingResponse       `json:"ratings"`
}
