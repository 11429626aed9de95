package dto

import (
	"time"

	"github.com/spec-kit/servicehub/internal/domain"
)

// CreateRequestRequest payload.
type CreateRequestRequest struct {
	Category    domain.ServiceCategory `json:"category"`
	Description string                 `json:"description"`
	Location    string                 `json:"location"`
	Price       *float64               `json:"price"`
}

// RequestSummary response.
type RequestSummary struct {
	ID                string                 `json:"id"`
	ExternalKey       string                 `json:"external_key"`
	CustomerID        string                 `json:"customer_id"`
	ProfessionalID    *string                `json:"professional_id"`
	Category          domain.ServiceCategory `json:"category"`
	Location          string                 `json:"location"`
	Price             *float64               `json:"price"`
	Status            domain.RequestStatus   `json:"status"`
	ResponseTimeHours *float64               `json:"response_time_hours"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
}

// RequestDetailResponse provides full request info.
type RequestDetailResponse struct {
	ID                string                 `json:"id"`
	ExternalKey       string                 `json:"external_key"`
	CustomerID        string                 `json:"customer_id"`
	ProfessionalID    *string                `json:"professional_id"`
	Category          domain.ServiceCategory `json:"category"`
	Description       string                 `json:"description"`
	Location          string                 `json:"location"`
	Price             *float64               `json:"price"`
	Status            domain.RequestStatus   `json:"status"`
	ResponseTimeHours *float64               `json:"response_time_hours"`
	CompletedAt       *time.Time             `json:"completed_at"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
}
