package service

import (
	"context"
	"errors"
	"strings"

	dom "github.com/Aruntata-2001/task-manager/internal/domain"
	"github.com/Aruntata-2001/task-manager/internal/repo"
)

var ErrEmptyText = errors.New("text is required")

// UserTextService handles the append-only notes feature.
type UserTextService struct {
	repo repo.UserTextRepo
}

// NewUserTextService returns a new UserTextService.
func NewUserTextService(repo repo.UserTextRepo) *UserTextService {
	return &UserTextService{repo: repo}
}

// Save persists a note for the owner. Whitespace-only text is rejected.
func (s *UserTextService) Save(ctx context.Context, userID int64, text string) (dom.UserText, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return dom.UserText{}, ErrEmptyText
	}
	return s.repo.Create(ctx, userID, text)
}

// List returns the owner's notes, newest first.
func (s *UserTextService) List(ctx context.Context, userID int64) ([]dom.UserText, error) {
	return s.repo.ListByUser(ctx, userID)
}
