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

// RequestService coordinates the service request lifecycle. All transitions go
// through conditional repository updates keyed on the expected prior status,
// so two concurrent callers racing for the same transition resolve to a single
// winner without locks held across calls.
type RequestService struct {
	requests   repository.RequestRepository
	dispatcher events.Dispatcher
}

// RequestDependencies bundles repositories for the request service.
type RequestDependencies struct {
	RequestRepo repository.RequestRepository
	Dispatcher  events.Dispatcher
}

// RequestCreateInput describes request creation payload.
type RequestCreateInput struct {
	Category    domain.ServiceCategory
	Description string
	Location    string
	Price       *float64
}

// NewRequestService constructs the service.
func NewRequestService(deps RequestDependencies) *RequestService {
	return &RequestService{
		requests:   deps.RequestRepo,
		dispatcher: deps.Dispatcher,
	}
}

// CreateRequest posts a new service request for a customer. The request starts
// in PENDING with no professional assigned.
func (s *RequestService) CreateRequest(ctx context.Context, actor *domain.User, input RequestCreateInput) (*domain.ServiceRequest, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	if actor.Role != domain.RoleCustomer {
		return nil, apperrors.NewForbidden("only customers can post requests")
	}
	if !input.Category.Valid() {
		return nil, apperrors.NewValidationError("unrecognized category", map[string]any{"category": input.Category})
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, apperrors.NewValidationError("description required", nil)
	}
	if input.Price != nil && *input.Price < 0 {
		return nil, apperrors.NewValidationError("price must not be negative", map[string]any{"price": *input.Price})
	}

	request := &domain.ServiceRequest{
		ExternalKey: generateRequestKey(),
		CustomerID:  actor.ID,
		Category:    input.Category,
		Description: strings.TrimSpace(input.Description),
		Location:    strings.TrimSpace(input.Location),
		Price:       input.Price,
		Status:      domain.RequestStatusPending,
	}

	if err := s.requests.Create(ctx, request); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:      events.EventRequestCreated,
		SubjectID: request.ID,
		Actor:     events.Actor{UserID: actor.ID, Role: actor.Role},
		Payload: events.RequestCreatedPayload{
			Category:    request.Category,
			Location:    request.Location,
			Price:       request.Price,
			Description: request.Description,
		},
	})
	return request, nil
}

// Accept assigns a pending request to the acting professional. The transition
// is exactly-once: when two professionals race for the same request, the
// conditional update lets one through and the other gets InvalidTransition.
func (s *RequestService) Accept(ctx context.Context, actor *domain.User, requestID string) (*domain.ServiceRequest, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	if !actor.IsProfessional() {
		return nil, apperrors.NewForbidden("only professionals can accept requests")
	}

	request, err := s.requests.AcceptPending(ctx, requestID, actor.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, s.explainFailedTransition(ctx, requestID, domain.RequestStatusPending)
		}
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventRequestAccepted,
		SubjectID: request.ID,
		Actor:     events.Actor{UserID: actor.ID, Role: actor.Role},
		Payload: events.RequestAcceptedPayload{
			CustomerID:     request.CustomerID,
			ProfessionalID: actor.ID,
		},
	})
	return request, nil
}

// Complete finishes an active request. Only the assigned professional may
// complete; completed_at and the derived response time are written by the
// same conditional update that checks the status.
func (s *RequestService) Complete(ctx context.Context, actor *domain.User, requestID string) (*domain.ServiceRequest, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	if !actor.IsProfessional() {
		return nil, apperrors.NewForbidden("only professionals can complete requests")
	}

	request, err := s.requests.CompleteActive(ctx, requestID, actor.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, s.explainFailedComplete(ctx, requestID, actor.ID)
		}
		return nil, apperrors.MapError(err)
	}

	responseHours := 0.0
	if request.ResponseTimeHours != nil {
		responseHours = *request.ResponseTimeHours
	}
	s.publishEvent(ctx, events.Event{
		Type:      events.EventRequestCompleted,
		SubjectID: request.ID,
		Actor:     events.Actor{UserID: actor.ID, Role: actor.Role},
		Payload: events.RequestCompletedPayload{
			ProfessionalID:    actor.ID,
			ResponseTimeHours: responseHours,
		},
	})
	return request, nil
}

// Cancel withdraws a request from PENDING or ACTIVE. Only the creating
// customer or the assigned professional may cancel.
func (s *RequestService) Cancel(ctx context.Context, actor *domain.User, requestID string) (*domain.ServiceRequest, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}

	current, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("request", map[string]any{"request_id": requestID})
		}
		return nil, apperrors.MapError(err)
	}
	if current.CustomerID != actor.ID && !current.AssignedTo(actor.ID) {
		return nil, apperrors.NewForbidden("only the creating customer or assigned professional can cancel")
	}
	if current.Status.Terminal() {
		return nil, apperrors.NewInvalidTransition("request already closed", map[string]any{"status": current.Status})
	}

	request, err := s.requests.CancelOpen(ctx, requestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// lost a race against a concurrent terminal transition
			return nil, apperrors.NewInvalidTransition("request already closed", map[string]any{"request_id": requestID})
		}
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventRequestCancelled,
		SubjectID: request.ID,
		Actor:     events.Actor{UserID: actor.ID, Role: actor.Role},
		Payload:   events.RequestCancelledPayload{PriorStatus: current.Status},
	})
	return request, nil
}

// ListForUser returns requests where the user is creator or assignee; for
// professionals the open marketplace listing (PENDING requests) is included.
func (s *RequestService) ListForUser(ctx context.Context, actor *domain.User) ([]domain.ServiceRequest, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	requests, err := s.requests.ListForUser(ctx, actor.ID, actor.IsProfessional())
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return requests, nil
}

// GetByID fetches a single request.
func (s *RequestService) GetByID(ctx context.Context, requestID string) (*domain.ServiceRequest, error) {
	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("request", map[string]any{"request_id": requestID})
		}
		return nil, apperrors.MapError(err)
	}
	return request, nil
}

// explainFailedTransition distinguishes a missing request from one in the
// wrong state after a conditional update matched nothing.
func (s *RequestService) explainFailedTransition(ctx context.Context, requestID string, expected domain.RequestStatus) error {
	current, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("request", map[string]any{"request_id": requestID})
		}
		return apperrors.MapError(err)
	}
	return apperrors.NewInvalidTransition("request not in expected status", map[string]any{
		"status":   current.Status,
		"expected": expected,
	})
}

func (s *RequestService) explainFailedComplete(ctx context.Context, requestID, professionalID string) error {
	current, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("request", map[string]any{"request_id": requestID})
		}
		return apperrors.MapError(err)
	}
	if current.Status != domain.RequestStatusActive {
		return apperrors.NewInvalidTransition("request not active", map[string]any{"status": current.Status})
	}
	if !current.AssignedTo(professionalID) {
		return apperrors.NewForbidden("only the assigned professional can complete")
	}
	return apperrors.NewInvalidTransition("request not in expected status", map[string]any{"status": current.Status})
}

func generateRequestKey() string {
	return "REQ-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func (s *RequestService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
