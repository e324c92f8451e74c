package repo

import (
	"context"

	dom "github.com/Aruntata-2001/task-manager/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepo provides user persistence.
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (dom.User, error)
	Create(ctx context.Context, email, passwordHash string) (dom.User, error)
}

// PGUserRepo implements UserRepo with Postgres. Email uniqueness is a
// UNIQUE constraint; a duplicate insert fails atomically with 23505.
type PGUserRepo struct {
	db *pgxpool.Pool
}

// NewPGUserRepo returns a new PGUserRepo.
func NewPGUserRepo(db *pgxpool.Pool) *PGUserRepo {
	return &PGUserRepo{db: db}
}

// GetByEmail returns the user by email, matched case-sensitively.
func (r *PGUserRepo) GetByEmail(ctx context.Context, email string) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, created_at FROM users WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	return u, err
}

// Create inserts a new user and returns it.
func (r *PGUserRepo) Create(ctx context.Context, email, passwordHash string) (dom.User, error) {
	query := `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING id, email, password_hash, created_at`
	var u dom.User
	err := r.db.QueryRow(ctx, query, email, passwordHash).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt,
	)
	return u, err
}
