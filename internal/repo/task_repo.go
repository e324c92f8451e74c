package repo

import (
	"context"
	"fmt"
	"strings"

	dom "github.com/Aruntata-2001/task-manager/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TaskFilter narrows a listing. Zero values mean "no constraint".
type TaskFilter struct {
	Status   dom.Status // exact match
	Category string     // exact match
	Search   string     // case-insensitive substring on title
}

// IsZero reports whether the filter constrains nothing.
func (f TaskFilter) IsZero() bool {
	return f.Status == "" && f.Category == "" && f.Search == ""
}

// TaskRepo provides owner-scoped task persistence. Every query carries the
// owner id; a task of another user behaves exactly like a missing row.
type TaskRepo interface {
	Create(ctx context.Context, t dom.Task) (dom.Task, error)
	GetByID(ctx context.Context, userID, id int64) (dom.Task, error)
	List(ctx context.Context, userID int64, f TaskFilter) ([]dom.Task, error)
	Update(ctx context.Context, userID, id int64, patch dom.Task) (dom.Task, error)
	Delete(ctx context.Context, userID, id int64) error
	Toggle(ctx context.Context, userID, id int64) (dom.Task, error)
}

const taskColumns = `id, user_id, title, description, category, tags, due_date, status, created_at, updated_at`

// PGTaskRepo implements TaskRepo with Postgres.
type PGTaskRepo struct {
	db *pgxpool.Pool
}

func NewPGTaskRepo(db *pgxpool.Pool) *PGTaskRepo {
	return &PGTaskRepo{db: db}
}

func scanTask(row pgx.Row) (dom.Task, error) {
	var t dom.Task
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Category,
		&t.Tags, &t.DueDate, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *PGTaskRepo) Create(ctx context.Context, t dom.Task) (dom.Task, error) {
	if t.Tags == nil {
		t.Tags = []string{}
	}
	query := `
		INSERT INTO tasks (user_id, title, description, category, tags, due_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + taskColumns
	return scanTask(r.db.QueryRow(ctx, query,
		t.UserID, t.Title, t.Description, t.Category, t.Tags, t.DueDate, t.Status))
}

func (r *PGTaskRepo) GetByID(ctx context.Context, userID, id int64) (dom.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND user_id = $2`
	return scanTask(r.db.QueryRow(ctx, query, id, userID))
}

func (r *PGTaskRepo) List(ctx context.Context, userID int64, f TaskFilter) ([]dom.Task, error) {
	conds := []string{"user_id = $1"}
	args := []any{userID}
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		conds = append(conds, fmt.Sprintf("title ILIKE $%d", len(args)))
	}
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE ` + strings.Join(conds, " AND ") +
		` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTaskRepo) Update(ctx context.Context, userID, id int64, patch dom.Task) (dom.Task, error) {
	query := `
		UPDATE tasks
		SET title = $3, description = $4, category = $5, tags = $6, due_date = $7, status = $8, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + taskColumns
	return scanTask(r.db.QueryRow(ctx, query, id, userID,
		patch.Title, patch.Description, patch.Category, patch.Tags, patch.DueDate, patch.Status))
}

func (r *PGTaskRepo) Delete(ctx context.Context, userID, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Toggle flips pending<->completed in a single document write.
func (r *PGTaskRepo) Toggle(ctx context.Context, userID, id int64) (dom.Task, error) {
	query := `
		UPDATE tasks
		SET status = CASE WHEN status = 'pending' THEN 'completed' ELSE 'pending' END,
		    updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + taskColumns
	return scanTask(r.db.QueryRow(ctx, query, id, userID))
}
