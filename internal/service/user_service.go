package service

import (
	"context"
	"errors"
	"strings"

	dom "github.com/rithvikm007/Todo/internal/domain"
	"github.com/rithvikm007/Todo/internal/repo"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput       = errors.New("username and password required")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
)

const bcryptCost = 10

// UserService handles user registration and credential checks.
type UserService struct {
	repo repo.UserRepo
}

// NewUserService returns a new UserService.
func NewUserService(repo repo.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// Register creates a new user with a hashed password. The hash is derived
// before the store is touched, so the expensive bcrypt step never runs
// under the collection lock.
func (s *UserService) Register(ctx context.Context, username, password string) (dom.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return dom.User{}, ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return dom.User{}, err
	}
	u, err := s.repo.Create(ctx, username, string(hash))
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateUsername) {
			return dom.User{}, ErrUsernameTaken
		}
		return dom.User{}, err
	}
	return u, nil
}

// ValidateCredentials checks username and password; returns the user if
// valid. Unknown username and wrong password are indistinguishable on
// purpose, and the bcrypt comparison never touches plaintext storage.
func (s *UserService) ValidateCredentials(ctx context.Context, username, password string) (dom.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return dom.User{}, ErrInvalidInput
	}
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return dom.User{}, ErrInvalidCredentials
		}
		return dom.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return dom.User{}, ErrInvalidCredentials
	}
	return u, nil
}
