package service

import (
	"context"
	"errors"
	"strings"

	dom "github.com/rithvikm007/Todo/internal/domain"
	"github.com/rithvikm007/Todo/internal/repo"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrTitleEmpty = errors.New("title required")
)

// TaskService handles task CRUD. Every operation takes the caller's user
// id resolved by the auth middleware; a task owned by someone else is
// treated exactly like a missing one.
type TaskService struct {
	repo repo.TaskRepo
}

// NewTaskService returns a new TaskService.
func NewTaskService(r repo.TaskRepo) *TaskService {
	return &TaskService{repo: r}
}

func (s *TaskService) Create(ctx context.Context, callerID int64, title, body string) (dom.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return dom.Task{}, ErrTitleEmpty
	}
	return s.repo.Create(ctx, dom.Task{
		OwnerID: callerID,
		Title:   title,
		Body:    body,
	})
}

func (s *TaskService) List(ctx context.Context, callerID int64) ([]dom.Task, error) {
	return s.repo.List(ctx, callerID)
}

func (s *TaskService) GetByID(ctx context.Context, callerID, id int64) (dom.Task, error) {
	t, err := s.repo.GetByID(ctx, callerID, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	return t, nil
}

// Update applies only the supplied fields; a present empty string still
// overwrites. The patch is applied atomically inside the store.
func (s *TaskService) Update(ctx context.Context, callerID, id int64, title *string, body *string) (dom.Task, error) {
	t, err := s.repo.Update(ctx, callerID, id, repo.TaskPatch{Title: title, Body: body})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	return t, nil
}

// Delete removes the task and returns the removed record.
func (s *TaskService) Delete(ctx context.Context, callerID, id int64) (dom.Task, error) {
	t, err := s.repo.Delete(ctx, callerID, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	return t, nil
}
