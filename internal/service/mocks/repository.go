package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/spec-kit/servicehub/internal/domain"
	"github.com/spec-kit/servicehub/internal/repository"
)

// MockRequestRepository is a mock implementation of the RequestRepository
// interface for testing the service layer.
type MockRequestRepository struct {
	CreateFunc           func(ctx context.Context, request *domain.ServiceRequest) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.ServiceRequest, error)
	ListForUserFunc      func(ctx context.Context, userID string, includeOpen bool) ([]domain.ServiceRequest, error)
	ListWithFilterFunc   func(ctx context.Context, filter repository.RequestFilter) ([]domain.ServiceRequest, error)
	AcceptPendingFunc    func(ctx context.Context, id, professionalID string) (*domain.ServiceRequest, error)
	CompleteActiveFunc   func(ctx context.Context, id, professionalID string) (*domain.ServiceRequest, error)
	CancelOpenFunc       func(ctx context.Context, id string) (*domain.ServiceRequest, error)
	AggregateMetricsFunc func(ctx context.Context, filter repository.RequestFilter) (*repository.RequestMetrics, error)
}

func (m *MockRequestRepository) Create(ctx context.Context, request *domain.ServiceRequest) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, request)
	}
	return errors.New("CreateFunc not implemented")
}

func (m *MockRequestRepository) GetByID(ctx context.Context, id string) (*domain.ServiceRequest, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented")
}

func (m *MockRequestRepository) ListForUser(ctx context.Context, userID string, includeOpen bool) ([]domain.ServiceRequest, error) {
	if m.ListForUserFunc != nil {
		return m.ListForUserFunc(ctx, userID, includeOpen)
	}
	return nil, errors.New("ListForUserFunc not implemented")
}

func (m *MockRequestRepository) ListWithFilter(ctx context.Context, filter repository.RequestFilter) ([]domain.ServiceRequest, error) {
	if m.ListWithFilterFunc != nil {
		return m.ListWithFilterFunc(ctx, filter)
	}
	return nil, errors.New("ListWithFilterFunc not implemented")
}

func (m *MockRequestRepository) AcceptPending(ctx context.Context, id, professionalID string) (*domain.ServiceRequest, error) {
	if m.AcceptPendingFunc != nil {
		return m.AcceptPendingFunc(ctx, id, professionalID)
	}
	return nil, errors.New("AcceptPendingFunc not implemented")
}

func (m *MockRequestRepository) CompleteActive(ctx context.Context, id, professionalID string) (*domain.ServiceRequest, error) {
	if m.CompleteActiveFunc != nil {
		return m.CompleteActiveFunc(ctx, id, professionalID)
	}
	return nil, errors.New("CompleteActiveFunc not implemented")
}

func (m *MockRequestRepository) CancelOpen(ctx context.Context, id string) (*domain.ServiceRequest, error) {
	if m.CancelOpenFunc != nil {
		return m.CancelOpenFunc(ctx, id)
	}
	return nil, errors.New("CancelOpenFunc not implemented")
}

func (m *MockRequestRepository) AggregateMetrics(ctx context.Context, filter repository.RequestFilter) (*repository.RequestMetrics, error) {
	if m.AggregateMetricsFunc != nil {
		return m.AggregateMetricsFunc(ctx, filter)
	}
	return nil, errors.New("AggregateMetricsFunc not implemented")
}

// MockProfessionalRepository is a mock implementation of the
// ProfessionalRepository interface.
type MockProfessionalRepository struct {
	GetProfessionalFunc func(ctx context.Context, id string) (*domain.User, error)
	ListRatingsFunc     func(ctx context.Context, professionalID string) ([]domain.Rating, error)
	AppendRatingFunc    func(ctx context.Context, rating *domain.Rating) error
	SearchFunc          func(ctx context.Context, filter repository.ProfessionalFilter) ([]domain.User, error)
}

func (m *MockProfessionalRepository) GetProfessional(ctx context.Context, id string) (*domain.User, error) {
	if m.GetProfessionalFunc != nil {
		return m.GetProfessionalFunc(ctx, id)
	}
	return nil, errors.New("GetProfessionalFunc not implemented")
}

func (m *MockProfessionalRepository) ListRatings(ctx context.Context, professionalID string) ([]domain.Rating, error) {
	if m.ListRatingsFunc != nil {
		return m.ListRatingsFunc(ctx, professionalID)
	}
	return nil, errors.New("ListRatingsFunc not implemented")
}

func (m *MockProfessionalRepository) AppendRating(ctx context.Context, rating *domain.Rating) error {
	if m.AppendRatingFunc != nil {
		return m.AppendRatingFunc(ctx, rating)
	}
	return errors.New("AppendRatingFunc not implemented")
}

func (m *MockProfessionalRepository) Search(ctx context.Context, filter repository.ProfessionalFilter) ([]domain.User, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, filter)
	}
	return nil, errors.New("SearchFunc not implemented")
}

// MockUserRepository is a mock implementation of the UserRepository interface.
type MockUserRepository struct {
	CreateFunc     func(ctx context.Context, user *domain.User) error
	UpdateFunc     func(ctx context.Context, user *domain.User) error
	GetByIDFunc    func(ctx context.Context, id string) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return errors.New("CreateFunc not implemented")
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return errors.New("UpdateFunc not implemented")
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented")
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, errors.New("GetByEmailFunc not implemented")
}

// MockMessageRepository is a mock implementation of the MessageRepository
// interface.
type MockMessageRepository struct {
	CreateFunc      func(ctx context.Context, message *domain.DirectMessage) error
	ListForUserFunc func(ctx context.Context, userID string) ([]domain.DirectMessage, error)
}

func (m *MockMessageRepository) Create(ctx context.Context, message *domain.DirectMessage) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, message)
	}
	return errors.New("CreateFunc not implemented")
}

func (m *MockMessageRepository) ListForUser(ctx context.Context, userID string) ([]domain.DirectMessage, error) {
	if m.ListForUserFunc != nil {
		return m.ListForUserFunc(ctx, userID)
	}
	return nil, errors.New("ListForUserFunc not implemented")
}

// MockMetricsCache is an in-memory metrics cache for dashboard tests.
type MockMetricsCache struct {
	GetFunc func(ctx context.Context, key string) (string, error)
	SetFunc func(ctx context.Context, key, value string, ttl time.Duration) error
}

func (m *MockMetricsCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return "", errors.New("GetFunc not implemented")
}

func (m *MockMetricsCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	return errors.New("SetFunc not implemented")
}
