package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	dom "github.com/Aruntata-2001/task-manager/internal/domain"
	"github.com/Aruntata-2001/task-manager/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"

	"github.com/Aruntata-2001/task-manager/internal/cache"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrEmptyTitle    = errors.New("title is required")
	ErrInvalidStatus = errors.New("status must be pending or completed")
)

// CreateTaskParams are the fields accepted on create. Status defaults to
// pending when empty.
type CreateTaskParams struct {
	Title       string
	Description string
	Category    string
	Tags        []string
	DueDate     *time.Time
	Status      dom.Status
}

// TaskPatch is a partial update. Nil fields are left unchanged.
type TaskPatch struct {
	Title       *string
	Description *string
	Category    *string
	Tags        *[]string
	DueDate     *time.Time
	Status      *dom.Status
}

// TaskService implements owner-scoped task CRUD and the status toggle.
type TaskService struct {
	repo  repo.TaskRepo
	cache *cache.TaskCache
	sf    singleflight.Group
}

// NewTaskService creates a TaskService. If c is nil, caching is disabled.
func NewTaskService(r repo.TaskRepo, c *cache.TaskCache) *TaskService {
	return &TaskService{repo: r, cache: c}
}

func (s *TaskService) Create(ctx context.Context, userID int64, p CreateTaskParams) (dom.Task, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return dom.Task{}, ErrEmptyTitle
	}
	status := p.Status
	if status == "" {
		status = dom.StatusPending
	}
	if !status.Valid() {
		return dom.Task{}, ErrInvalidStatus
	}

	t, err := s.repo.Create(ctx, dom.Task{
		UserID:      userID,
		Title:       title,
		Description: strings.TrimSpace(p.Description),
		Category:    strings.TrimSpace(p.Category),
		Tags:        p.Tags,
		DueDate:     p.DueDate,
		Status:      status,
	})
	if err != nil {
		return dom.Task{}, err
	}
	s.invalidateCache(ctx, userID)
	return t, nil
}

// List returns the owner's tasks, newest first. The unfiltered listing is
// served from cache when possible, with concurrent misses collapsed.
func (s *TaskService) List(ctx context.Context, userID int64, f repo.TaskFilter) ([]dom.Task, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	if !f.IsZero() || s.cache == nil {
		return s.repo.List(ctx, userID, f)
	}

	key := "list:" + strconv.FormatInt(userID, 10)
	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		if list, err := s.cache.GetList(ctx, userID); err == nil && list != nil {
			return list, nil
		}
		list, err := s.repo.List(ctx, userID, repo.TaskFilter{})
		if err != nil {
			return nil, err
		}
		_ = s.cache.SetList(ctx, userID, list)
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]dom.Task), nil
}

func (s *TaskService) GetByID(ctx context.Context, userID, id int64) (dom.Task, error) {
	t, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	return t, nil
}

func (s *TaskService) Update(ctx context.Context, userID, id int64, p TaskPatch) (dom.Task, error) {
	existing, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	patch := existing
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			return dom.Task{}, ErrEmptyTitle
		}
		patch.Title = title
	}
	if p.Description != nil {
		patch.Description = strings.TrimSpace(*p.Description)
	}
	if p.Category != nil {
		patch.Category = strings.TrimSpace(*p.Category)
	}
	if p.Tags != nil {
		patch.Tags = *p.Tags
	}
	if p.DueDate != nil {
		patch.DueDate = p.DueDate
	}
	if p.Status != nil {
		if !p.Status.Valid() {
			return dom.Task{}, ErrInvalidStatus
		}
		patch.Status = *p.Status
	}
	t, err := s.repo.Update(ctx, userID, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	s.invalidateCache(ctx, userID)
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	s.invalidateCache(ctx, userID)
	return nil
}

// Toggle flips pending<->completed. Applying it twice returns the task to
// its original status.
func (s *TaskService) Toggle(ctx context.Context, userID, id int64) (dom.Task, error) {
	t, err := s.repo.Toggle(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	s.invalidateCache(ctx, userID)
	return t, nil
}

func (s *TaskService) invalidateCache(ctx context.Context, userID int64) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, userID)
	}
}
