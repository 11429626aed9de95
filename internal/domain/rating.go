package domain

import "time"

// Rating score bounds.
const (
	MinRatingScore = 1
	MaxRatingScore = 5
)

// Rating is a customer's score for a professional. At most one rating exists
// per (professional, customer) pair; ratings are never updated or deleted.
type Rating struct {
	ID             string
	ProfessionalID string
	CustomerID     string
	Score          int
	Comment        string
	CreatedAt      time.Time
}

// ValidScore reports whether score is an integer within [1,5].
func ValidScore(score int) bool {
	return score >= MinRatingScore && score <= MaxRatingScore
}

// AverageScore returns the arithmetic mean of the given ratings, or 0 when
// the slice is empty.
func AverageScore(ratings []Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	total := 0
	for _, r := range ratings {
		total += r.Score
	}
	return float64(total) / float64(len(ratings))
}
