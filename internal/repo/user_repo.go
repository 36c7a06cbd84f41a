package repo

import (
	"context"
	"errors"
	"sync"
	"time"

	dom "github.com/rithvikm007/Todo/internal/domain"
)

var (
	// ErrNotFound is returned when a record does not exist in the store.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateUsername is returned when a username is already taken.
	ErrDuplicateUsername = errors.New("username already exists")
)

// UserRepo provides user storage.
type UserRepo interface {
	GetByUsername(ctx context.Context, username string) (dom.User, error)
	Create(ctx context.Context, username, passwordHash string) (dom.User, error)
}

// MemoryUserRepo implements UserRepo with process-lifetime in-memory state.
// Users are indexed by id and by username; usernames are unique and ids
// grow monotonically, never reused.
type MemoryUserRepo struct {
	mu         sync.Mutex
	byID       map[int64]dom.User
	byUsername map[string]int64
	nextID     int64
}

// NewMemoryUserRepo returns an empty MemoryUserRepo.
func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{
		byID:       make(map[int64]dom.User),
		byUsername: make(map[string]int64),
		nextID:     1,
	}
}

// GetByUsername returns the user by username, or ErrNotFound.
func (r *MemoryUserRepo) GetByUsername(_ context.Context, username string) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byUsername[username]
	if !ok {
		return dom.User{}, ErrNotFound
	}
	return r.byID[id], nil
}

// Create inserts a new user and returns it. The uniqueness check and the
// insert happen under one lock, so two concurrent registrations of the
// same username cannot both succeed.
func (r *MemoryUserRepo) Create(_ context.Context, username, passwordHash string) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byUsername[username]; exists {
		return dom.User{}, ErrDuplicateUsername
	}
	u := dom.User{
		ID:           r.nextID,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	r.nextID++
	r.byID[u.ID] = u
	r.byUsername[u.Username] = u.ID
	return u, nil
}
