package domain

import "time"

// RequestStatus enumerates lifecycle states for service requests.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "PENDING"
	RequestStatusActive    RequestStatus = "ACTIVE"
	RequestStatusCompleted RequestStatus = "COMPLETED"
	RequestStatusCancelled RequestStatus = "CANCELLED"
)

// Valid reports whether the status is a recognized lifecycle state.
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusPending, RequestStatusActive, RequestStatusCompleted, RequestStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are possible.
func (s RequestStatus) Terminal() bool {
	return s == RequestStatusCompleted || s == RequestStatusCancelled
}

// ServiceCategory is the fixed set of service types offered on the marketplace.
type ServiceCategory string

const (
	CategoryPlumbing         ServiceCategory = "Plumbing"
	CategoryTutoring         ServiceCategory = "Tutoring"
	CategoryCleaning         ServiceCategory = "Cleaning"
	CategoryElectrical       ServiceCategory = "Electrical"
	CategoryCarpentry        ServiceCategory = "Carpentry"
	CategoryHaircut          ServiceCategory = "Haircut"
	CategoryGardening        ServiceCategory = "Gardening"
	CategoryFashionDesigning ServiceCategory = "Fashion Designing"
	CategoryMoving           ServiceCategory = "Moving"
	CategoryPhotography      ServiceCategory = "Photography"
	CategoryCatering         ServiceCategory = "Catering"
	CategoryPersonalTraining ServiceCategory = "Personal Training"
	CategoryAccounting       ServiceCategory = "Accounting"
)

// ServiceCategories lists every recognized category.
var ServiceCategories = []ServiceCategory{
	CategoryPlumbing,
	CategoryTutoring,
	CategoryCleaning,
	CategoryElectrical,
	CategoryCarpentry,
	CategoryHaircut,
	CategoryGardening,
	CategoryFashionDesigning,
	CategoryMoving,
	CategoryPhotography,
	CategoryCatering,
	CategoryPersonalTraining,
	CategoryAccounting,
}

// Valid reports whether the category is recognized.
func (c ServiceCategory) Valid() bool {
	for _, known := range ServiceCategories {
		if c == known {
			return true
		}
	}
	return false
}

// ServiceRequest is the aggregate for a customer's posted need. It is created
// in PENDING and never physically deleted; terminal records are retained for
// dashboard history.
//
// Invariants: ProfessionalID is set iff status is ACTIVE or COMPLETED;
// CompletedAt and ResponseTimeHours are set iff status is COMPLETED.
type ServiceRequest struct {
	ID                string
	ExternalKey       string
	CustomerID        string
	ProfessionalID    *string
	Category          ServiceCategory
	Description       string
	Location          string
	Price             *float64
	Status            RequestStatus
	ResponseTimeHours *float64
	CompletedAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// AssignedTo reports whether the request is assigned to the given professional.
func (r *ServiceRequest) AssignedTo(professionalID string) bool {
	return r.ProfessionalID != nil && *r.ProfessionalID == professionalID
}
