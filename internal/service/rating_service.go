package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/servicehub/internal/domain"
	"github.com/spec-kit/servicehub/internal/events"
	"github.com/spec-kit/servicehub/internal/repository"
	apperrors "github.com/spec-kit/servicehub/pkg/util"
)

// RatingService is the write path of the rating ledger. Ratings are
// append-only: a second submission from the same customer is rejected, never
// overwritten.
type RatingService struct {
	directory  repository.ProfessionalRepository
	dispatcher events.Dispatcher
}

// NewRatingService constructs the service.
func NewRatingService(directory repository.ProfessionalRepository, dispatcher events.Dispatcher) *RatingService {
	return &RatingService{directory: directory, dispatcher: dispatcher}
}

// Submit appends a rating for a professional and recomputes the stored
// average inside the same atomic unit. Validation and the duplicate check run
// before anything is persisted, so a rejected submission leaves the ledger
// and the average untouched.
func (s *RatingService) Submit(ctx context.Context, actor *domain.User, professionalID string, score int, comment string) (*domain.Rating, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	if !domain.ValidScore(score) {
		return nil, apperrors.NewValidationError("score must be between 1 and 5", map[string]any{"score": score})
	}

	rating := &domain.Rating{
		ProfessionalID: professionalID,
		CustomerID:     actor.ID,
		Score:          score,
		Comment:        strings.TrimSpace(comment),
	}

	if err := s.directory.AppendRating(ctx, rating); err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, apperrors.NewNotFound("professional", map[string]any{"professional_id": professionalID})
		case errors.Is(err, repository.ErrDuplicateRating):
			return nil, apperrors.NewDuplicateRating(map[string]any{"professional_id": professionalID})
		default:
			return nil, apperrors.MapError(err)
		}
	}

	s.publishRatingEvent(ctx, actor, rating)
	return rating, nil
}

// GetProfessional returns directory data with the rating history and the
// current average for display.
func (s *RatingService) GetProfessional(ctx context.Context, professionalID string) (*domain.User, []domain.Rating, error) {
	professional, err := s.directory.GetProfessional(ctx, professionalID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.NewNotFound("professional", map[string]any{"professional_id": professionalID})
		}
		return nil, nil, apperrors.MapError(err)
	}
	ratings, err := s.directory.ListRatings(ctx, professionalID)
	if err != nil {
		return nil, nil, apperrors.MapError(err)
	}
	return professional, ratings, nil
}

func (s *RatingService) publishRatingEvent(ctx context.Context, actor *domain.User, rating *domain.Rating) {
	if s.dispatcher == nil {
		return
	}
	average := 0.0
	if professional, err := s.directory.GetProfessional(ctx, rating.ProfessionalID); err == nil {
		average = professional.AverageRating
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventRatingSubmitted,
		SubjectID: rating.ProfessionalID,
		Actor:     events.Actor{UserID: actor.ID, Role: actor.Role},
		Timestamp: time.Now(),
		Payload: events.RatingSubmittedPayload{
			ProfessionalID: rating.ProfessionalID,
			Score:          rating.Score,
			AverageRating:  average,
		},
	})
}
