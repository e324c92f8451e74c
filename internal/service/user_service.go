package service

import (
	"context"
	"errors"
	"strings"

	dom "github.com/Aruntata-2001/task-manager/internal/domain"
	"github.com/Aruntata-2001/task-manager/internal/repo"
	"github.com/Aruntata-2001/task-manager/internal/utils"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken      = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrBadCredentials  = errors.New("email and password required")
)

// UserService handles registration and login. Passwords are stored only as
// bcrypt hashes and verified with bcrypt's constant-time comparison.
type UserService struct {
	repo repo.UserRepo
}

// NewUserService returns a new UserService.
func NewUserService(repo repo.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// Register creates a new user. Email is kept case-sensitive as given;
// uniqueness is enforced by the store, so a concurrent duplicate insert
// fails atomically rather than racing a pre-check.
func (s *UserService) Register(ctx context.Context, email, password string) (dom.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return dom.User{}, ErrBadCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return dom.User{}, err
	}
	u, err := s.repo.Create(ctx, email, string(hash))
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.User{}, ErrEmailTaken
		}
		return dom.User{}, err
	}
	return u, nil
}

// Login checks email and password and returns the user if valid.
func (s *UserService) Login(ctx context.Context, email, password string) (dom.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return dom.User{}, ErrBadCredentials
	}
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrUserNotFound
		}
		return dom.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return dom.User{}, ErrInvalidPassword
	}
	return u, nil
}
