package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/servicehub/internal/domain"
)

// UserRepository defines persistence access for marketplace participants.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (name, email, password_hash, role, headline, service_type,
            business_reg_number, video_url, picture, portfolio, links, contact)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.Headline,
		user.ServiceType,
		user.BusinessRegNumber,
		user.VideoURL,
		user.Picture,
		user.Portfolio,
		user.Links,
		user.Contact,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

// Update persists profile fields. average_rating is excluded: only the rating
// ledger may touch it.
func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	const query = `
        UPDATE users SET name=$1, email=$2, password_hash=$3, headline=$4, service_type=$5,
            business_reg_number=$6, video_url=$7, picture=$8, portfolio=$9, links=$10,
            contact=$11, updated_at=NOW()
        WHERE id=$12`

	cmd, err := r.pool.Exec(ctx, query,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Headline,
		user.ServiceType,
		user.BusinessRegNumber,
		user.VideoURL,
		user.Picture,
		user.Portfolio,
		user.Links,
		user.Contact,
		user.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + profileColumns + ` FROM users WHERE id=$1`
	return scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + profileColumns + ` FROM users WHERE email=$1`
	return scanUser(r.pool.QueryRow(ctx, query, email))
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.Headline,
		&user.ServiceType,
		&user.BusinessRegNumber,
		&user.VideoURL,
		&user.Picture,
		&user.Portfolio,
		&user.Links,
		&user.Contact,
		&user.AverageRating,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

func scanUserFromRows(rows pgx.Rows) (*domain.User, error) {
	return scanUser(rows)
}
