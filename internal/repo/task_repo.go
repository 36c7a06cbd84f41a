package repo

import (
	"context"
	"sync"
	"time"

	dom "github.com/rithvikm007/Todo/internal/domain"
)

// TaskPatch carries a partial update for a task. nil = keep the current
// value; a non-nil pointer overwrites, even with an empty string.
type TaskPatch struct {
	Title *string
	Body  *string
}

// TaskRepo provides task storage. Every operation is scoped to an owner:
// a task that exists but belongs to someone else is reported exactly like
// a task that does not exist.
type TaskRepo interface {
	Create(ctx context.Context, t dom.Task) (dom.Task, error)
	GetByID(ctx context.Context, ownerID, id int64) (dom.Task, error)
	List(ctx context.Context, ownerID int64) ([]dom.Task, error)
	Update(ctx context.Context, ownerID, id int64, patch TaskPatch) (dom.Task, error)
	Delete(ctx context.Context, ownerID, id int64) (dom.Task, error)
}

// MemoryTaskRepo implements TaskRepo with process-lifetime in-memory state.
// Tasks live in an id-indexed map; a separate id slice keeps insertion
// order for List. All read-check-then-write sequences run under one mutex.
type MemoryTaskRepo struct {
	mu     sync.Mutex
	byID   map[int64]dom.Task
	order  []int64
	nextID int64
}

// NewMemoryTaskRepo returns an empty MemoryTaskRepo.
func NewMemoryTaskRepo() *MemoryTaskRepo {
	return &MemoryTaskRepo{
		byID:   make(map[int64]dom.Task),
		nextID: 1,
	}
}

func (r *MemoryTaskRepo) Create(_ context.Context, t dom.Task) (dom.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t.ID = r.nextID
	r.nextID++
	t.CreatedAt = time.Now().UTC()
	t.UpdatedAt = nil
	r.byID[t.ID] = t
	r.order = append(r.order, t.ID)
	return t, nil
}

func (r *MemoryTaskRepo) GetByID(_ context.Context, ownerID, id int64) (dom.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.byID[id]
	if !ok || t.OwnerID != ownerID {
		return dom.Task{}, ErrNotFound
	}
	return t, nil
}

func (r *MemoryTaskRepo) List(_ context.Context, ownerID int64) ([]dom.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := make([]dom.Task, 0)
	for _, id := range r.order {
		if t := r.byID[id]; t.OwnerID == ownerID {
			list = append(list, t)
		}
	}
	return list, nil
}

func (r *MemoryTaskRepo) Update(_ context.Context, ownerID, id int64, patch TaskPatch) (dom.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.byID[id]
	if !ok || t.OwnerID != ownerID {
		return dom.Task{}, ErrNotFound
	}
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Body != nil {
		t.Body = *patch.Body
	}
	now := time.Now().UTC()
	t.UpdatedAt = &now
	r.byID[id] = t
	return t, nil
}

func (r *MemoryTaskRepo) Delete(_ context.Context, ownerID, id int64) (dom.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.byID[id]
	if !ok || t.OwnerID != ownerID {
		return dom.Task{}, ErrNotFound
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return t, nil
}
