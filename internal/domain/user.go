package domain

import "time"

// Role differentiates the two marketplace participant types.
type Role string

const (
	RoleCustomer     Role = "CUSTOMER"
	RoleProfessional Role = "PROFESSIONAL"
)

// Valid reports whether the role is one of the recognized values.
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleProfessional
}

// Contact holds reachable details shown on a profile.
type Contact struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// SocialLinks groups external social media references.
type SocialLinks struct {
	Twitter   string `json:"twitter"`
	LinkedIn  string `json:"linkedin"`
	Instagram string `json:"instagram"`
}

// Links groups a profile's outbound references.
type Links struct {
	Portfolio   string      `json:"portfolio"`
	SocialMedia SocialLinks `json:"social_media"`
	Email       string      `json:"email"`
}

// PortfolioItem is a single showcased work sample.
type PortfolioItem struct {
	Title       string `json:"title"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// MaxPortfolioItems caps the number of showcased work samples per profile.
const MaxPortfolioItems = 2

// User is the domain model for marketplace participants. Professional-only
// fields (ServiceType, AverageRating, portfolio data) stay zero-valued for
// customers.
type User struct {
	ID                string
	Name              string
	Email             string
	PasswordHash      string
	Role              Role
	Headline          string
	ServiceType       ServiceCategory
	BusinessRegNumber string
	VideoURL          string
	Picture           string
	Portfolio         []PortfolioItem
	Links             Links
	Contact           Contact
	AverageRating     float64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsProfessional reports whether the user can accept requests and be rated.
func (u *User) IsProfessional() bool {
	return u != nil && u.Role == RoleProfessional
}
