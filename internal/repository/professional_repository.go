package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/servicehub/internal/domain"
)

// ErrDuplicateRating reports that the customer already rated the professional.
var ErrDuplicateRating = errors.New("duplicate rating")

// ProfessionalFilter captures discovery search parameters.
type ProfessionalFilter struct {
	ServiceType *domain.ServiceCategory
	Location    *string
	FreeText    *string
	Limit       int
	Offset      int
}

// ProfessionalRepository owns the professional directory: profile reads,
// discovery search, and the rating ledger writes.
type ProfessionalRepository interface {
	GetProfessional(ctx context.Context, id string) (*domain.User, error)
	ListRatings(ctx context.Context, professionalID string) ([]domain.Rating, error)
	AppendRating(ctx context.Context, rating *domain.Rating) error
	Search(ctx context.Context, filter ProfessionalFilter) ([]domain.User, error)
}

type professionalRepository struct {
	pool *pgxpool.Pool
}

// NewProfessionalRepository instantiates repository.
func NewProfessionalRepository(pool *pgxpool.Pool) ProfessionalRepository {
	return &professionalRepository{pool: pool}
}

const profileColumns = `id, name, email, password_hash, role, headline, service_type,
               business_reg_number, video_url, picture, portfolio, links, contact,
               average_rating, created_at, updated_at`

// GetProfessional returns the directory record for a professional-role user.
func (r *professionalRepository) GetProfessional(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + profileColumns + ` FROM users WHERE id=$1 AND role=$2`
	return scanUser(r.pool.QueryRow(ctx, query, id, domain.RoleProfessional))
}

func (r *professionalRepository) ListRatings(ctx context.Context, professionalID string) ([]domain.Rating, error) {
	const query = `
        SELECT id, professional_id, customer_id, score, comment, created_at
        FROM ratings WHERE professional_id=$1 ORDER BY created_at ASC, id ASC`
	rows, err := r.pool.Query(ctx, query, professionalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Rating
	for rows.Next() {
		var rating domain.Rating
		if err := rows.Scan(
			&rating.ID,
			&rating.ProfessionalID,
			&rating.CustomerID,
			&rating.Score,
			&rating.Comment,
			&rating.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, rating)
	}
	return result, rows.Err()
}

// AppendRating appends the rating and recomputes average_rating as one atomic
// unit. The professional row is locked for the duration of the transaction:
// that lock is the per-professional serialization point, so a concurrent
// duplicate from the same customer waits, observes the insert, and fails with
// ErrDuplicateRating; the average never derives from a stale rating set.
// Returns pgx.ErrNoRows when the id does not resolve to a professional.
func (r *professionalRepository) AppendRating(ctx context.Context, rating *domain.Rating) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var role domain.Role
	err = tx.QueryRow(ctx, `SELECT role FROM users WHERE id=$1 AND role=$2 FOR UPDATE`,
		rating.ProfessionalID, domain.RoleProfessional).Scan(&role)
	if err != nil {
		return err
	}

	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM ratings WHERE professional_id=$1 AND customer_id=$2)`,
		rating.ProfessionalID, rating.CustomerID).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateRating
	}

	err = tx.QueryRow(ctx, `
        INSERT INTO ratings (professional_id, customer_id, score, comment)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at`,
		rating.ProfessionalID, rating.CustomerID, rating.Score, rating.Comment,
	).Scan(&rating.ID, &rating.CreatedAt)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
        UPDATE users SET average_rating=(SELECT AVG(score)::float8 FROM ratings WHERE professional_id=$1),
            updated_at=NOW()
        WHERE id=$1`, rating.ProfessionalID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Search lists professionals matching the discovery predicate: exact service
// type, substring on contact address, free-text OR over name and headline.
// Results carry no implicit order beyond a stable id tiebreak.
func (r *professionalRepository) Search(ctx context.Context, filter ProfessionalFilter) ([]domain.User, error) {
	clauses := []string{"role=$1"}
	args := []any{domain.RoleProfessional}

	if filter.ServiceType != nil {
		args = append(args, *filter.ServiceType)
		clauses = append(clauses, fmt.Sprintf("service_type=$%d", len(args)))
	}
	if filter.Location != nil && strings.TrimSpace(*filter.Location) != "" {
		args = append(args, "%"+strings.ToLower(strings.TrimSpace(*filter.Location))+"%")
		clauses = append(clauses, fmt.Sprintf("LOWER(contact->>'address') LIKE $%d", len(args)))
	}
	if filter.FreeText != nil && strings.TrimSpace(*filter.FreeText) != "" {
		args = append(args, "%"+strings.ToLower(strings.TrimSpace(*filter.FreeText))+"%")
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf("(LOWER(name) LIKE %s OR LOWER(headline) LIKE %s)", placeholder, placeholder))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s ORDER BY id LIMIT %d OFFSET %d`,
		profileColumns, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.User
	for rows.Next() {
		user, err := scanUserFromRows(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *user)
	}
	return result, rows.Err()
}
