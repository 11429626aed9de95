package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/servicehub/internal/domain"
)

// RequestFilter captures dashboard listing parameters.
type RequestFilter struct {
	ProfessionalID *string
	CustomerID     *string
	Statuses       []domain.RequestStatus
	CreatedFrom    *time.Time
	SearchTerm     *string
	Limit          int
}

// RequestMetrics is the raw aggregate row computed by the store.
type RequestMetrics struct {
	RequestCount     int64
	AvgResponseHours float64
	CompletedCount   int64
	TotalEarnings    float64
}

// RequestRepository encapsulates service request persistence. The conditional
// transition methods are the atomicity contract for the lifecycle: each one
// updates the row only when the expected prior status still holds and reports
// pgx.ErrNoRows when it does not.
type RequestRepository interface {
	Create(ctx context.Context, request *domain.ServiceRequest) error
	GetByID(ctx context.Context, id string) (*domain.ServiceRequest, error)
	ListForUser(ctx context.Context, userID string, includeOpen bool) ([]domain.ServiceRequest, error)
	ListWithFilter(ctx context.Context, filter RequestFilter) ([]domain.ServiceRequest, error)
	AcceptPending(ctx context.Context, id, professionalID string) (*domain.ServiceRequest, error)
	CompleteActive(ctx context.Context, id, professionalID string) (*domain.ServiceRequest, error)
	CancelOpen(ctx context.Context, id string) (*domain.ServiceRequest, error)
	AggregateMetrics(ctx context.Context, filter RequestFilter) (*RequestMetrics, error)
}

type requestRepository struct {
	pool *pgxpool.Pool
}

// NewRequestRepository instantiates repository.
func NewRequestRepository(pool *pgxpool.Pool) RequestRepository {
	return &requestRepository{pool: pool}
}

const requestColumns = `id, external_key, customer_id, professional_id, category, description,
               location, price, status, response_time_hours, completed_at, created_at, updated_at`

func (r *requestRepository) Create(ctx context.Context, request *domain.ServiceRequest) error {
	const query = `
        INSERT INTO requests (external_key, customer_id, category, description, location, price, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		request.ExternalKey,
		request.CustomerID,
		request.Category,
		request.Description,
		request.Location,
		request.Price,
		request.Status,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
}

func (r *requestRepository) GetByID(ctx context.Context, id string) (*domain.ServiceRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

// AcceptPending assigns the request to a professional only while it is still
// PENDING. Exactly one of any set of concurrent callers wins; losers see
// pgx.ErrNoRows.
func (r *requestRepository) AcceptPending(ctx context.Context, id, professionalID string) (*domain.ServiceRequest, error) {
	query := `
        UPDATE requests SET professional_id=$2, status=$3, updated_at=NOW()
        WHERE id=$1 AND status=$4
        RETURNING ` + requestColumns
	return r.scanRow(r.pool.QueryRow(ctx, query, id, professionalID, domain.RequestStatusActive, domain.RequestStatusPending))
}

// CompleteActive finishes the request only while it is ACTIVE and assigned to
// the acting professional. completed_at and response_time_hours derive from the
// same statement so the derived fields always agree with the stored timestamps.
func (r *requestRepository) CompleteActive(ctx context.Context, id, professionalID string) (*domain.ServiceRequest, error) {
	query := `
        UPDATE requests SET status=$3, completed_at=NOW(),
            response_time_hours=EXTRACT(EPOCH FROM (NOW() - created_at))/3600.0,
            updated_at=NOW()
        WHERE id=$1 AND professional_id=$2 AND status=$4
        RETURNING ` + requestColumns
	return r.scanRow(r.pool.QueryRow(ctx, query, id, professionalID, domain.RequestStatusCompleted, domain.RequestStatusActive))
}

// CancelOpen cancels the request only while it is PENDING or ACTIVE. The
// assignment is cleared in the same statement so only ACTIVE and COMPLETED
// rows ever carry a professional.
func (r *requestRepository) CancelOpen(ctx context.Context, id string) (*domain.ServiceRequest, error) {
	query := `
        UPDATE requests SET status=$2, professional_id=NULL, updated_at=NOW()
        WHERE id=$1 AND status IN ($3,$4)
        RETURNING ` + requestColumns
	return r.scanRow(r.pool.QueryRow(ctx, query, id,
		domain.RequestStatusCancelled, domain.RequestStatusPending, domain.RequestStatusActive))
}

// ListForUser returns requests where the user is creator or assignee; when
// includeOpen is set the open marketplace listing (status PENDING) is included.
func (r *requestRepository) ListForUser(ctx context.Context, userID string, includeOpen bool) ([]domain.ServiceRequest, error) {
	clause := `customer_id=$1 OR professional_id=$1`
	if includeOpen {
		clause += ` OR status='` + string(domain.RequestStatusPending) + `'`
	}
	query := `SELECT ` + requestColumns + ` FROM requests WHERE ` + clause + ` ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRequests(rows)
}

func (r *requestRepository) ListWithFilter(ctx context.Context, filter RequestFilter) ([]domain.ServiceRequest, error) {
	clauses, args := buildRequestClauses(filter)

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	query := fmt.Sprintf(`SELECT %s FROM requests WHERE %s ORDER BY created_at DESC LIMIT %d`,
		requestColumns, strings.Join(clauses, " AND "), limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRequests(rows)
}

// AggregateMetrics computes dashboard counters in a single pass over the
// filtered set. Requests without a response time are excluded from the average
// and a missing price counts as zero.
func (r *requestRepository) AggregateMetrics(ctx context.Context, filter RequestFilter) (*RequestMetrics, error) {
	clauses, args := buildRequestClauses(filter)

	query := fmt.Sprintf(`
        SELECT COUNT(*),
               COALESCE(AVG(response_time_hours), 0),
               COUNT(*) FILTER (WHERE status='%s'),
               COALESCE(SUM(price), 0)
        FROM requests WHERE %s`,
		domain.RequestStatusCompleted, strings.Join(clauses, " AND "))

	var metrics RequestMetrics
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&metrics.RequestCount,
		&metrics.AvgResponseHours,
		&metrics.CompletedCount,
		&metrics.TotalEarnings,
	); err != nil {
		return nil, err
	}
	return &metrics, nil
}

func buildRequestClauses(filter RequestFilter) ([]string, []any) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.ProfessionalID != nil {
		args = append(args, *filter.ProfessionalID)
		clauses = append(clauses, fmt.Sprintf("professional_id=$%d", len(args)))
	}
	if filter.CustomerID != nil {
		args = append(args, *filter.CustomerID)
		clauses = append(clauses, fmt.Sprintf("customer_id=$%d", len(args)))
	}
	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			args = append(args, status)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ",")))
	}
	if filter.CreatedFrom != nil {
		args = append(args, *filter.CreatedFrom)
		clauses = append(clauses, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(*filter.SearchTerm)) + "%"
		args = append(args, search)
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf("(LOWER(category) LIKE %s OR LOWER(location) LIKE %s)", placeholder, placeholder))
	}
	return clauses, args
}

func (r *requestRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.ServiceRequest, error) {
	return r.scanRow(r.pool.QueryRow(ctx, query, arg))
}

func (r *requestRepository) scanRow(row pgx.Row) (*domain.ServiceRequest, error) {
	var request domain.ServiceRequest
	if err := row.Scan(
		&request.ID,
		&request.ExternalKey,
		&request.CustomerID,
		&request.ProfessionalID,
		&request.Category,
		&request.Description,
		&request.Location,
		&request.Price,
		&request.Status,
		&request.ResponseTimeHours,
		&request.CompletedAt,
		&request.CreatedAt,
		&request.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &request, nil
}

func scanRequests(rows pgx.Rows) ([]domain.ServiceRequest, error) {
	var result []domain.ServiceRequest
	for rows.Next() {
		var request domain.ServiceRequest
		if err := rows.Scan(
			&request.ID,
			&request.ExternalKey,
			&request.CustomerID,
			&request.ProfessionalID,
			&request.Category,
			&request.Description,
			&request.Location,
			&request.Price,
			&request.Status,
			&request.ResponseTimeHours,
			&request.CompletedAt,
			&request.CreatedAt,
			&request.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, request)
	}
	return result, rows.Err()
}
