package repo

import (
	"context"

	dom "github.com/Aruntata-2001/task-manager/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// UserTextRepo persists free-text notes. Append-only: no update, no delete.
type UserTextRepo interface {
	Create(ctx context.Context, userID int64, text string) (dom.UserText, error)
	ListByUser(ctx context.Context, userID int64) ([]dom.UserText, error)
}

// PGUserTextRepo implements UserTextRepo with Postgres.
type PGUserTextRepo struct {
	db *pgxpool.Pool
}

func NewPGUserTextRepo(db *pgxpool.Pool) *PGUserTextRepo {
	return &PGUserTextRepo{db: db}
}

func (r *PGUserTextRepo) Create(ctx context.Context, userID int64, text string) (dom.UserText, error) {
	query := `
		INSERT INTO user_texts (user_id, text)
		VALUES ($1, $2)
		RETURNING id, user_id, text, created_at`
	var t dom.UserText
	err := r.db.QueryRow(ctx, query, userID, text).Scan(&t.ID, &t.UserID, &t.Text, &t.CreatedAt)
	return t, err
}

func (r *PGUserTextRepo) ListByUser(ctx context.Context, userID int64) ([]dom.UserText, error) {
	query := `
		SELECT id, user_id, text, created_at
		FROM user_texts WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.UserText
	for rows.Next() {
		var t dom.UserText
		if err := rows.Scan(&t.ID, &t.UserID, &t.Text, &t.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
