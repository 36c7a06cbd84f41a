package service

import (
	"context"
	"testing"

	"github.com/rithvikm007/Todo/internal/repo"

	"github.com/stretchr/testify/require"
)

func TestTaskService_CreateValidation(t *testing.T) {
	t.Parallel()

	svc := NewTaskService(repo.NewMemoryTaskRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, "", "body")
	require.ErrorIs(t, err, ErrTitleEmpty)

	_, err = svc.Create(ctx, 1, "   ", "body")
	require.ErrorIs(t, err, ErrTitleEmpty)

	task, err := svc.Create(ctx, 1, "buy milk", "")
	require.NoError(t, err)
	require.Equal(t, int64(1), task.ID)
	require.Equal(t, int64(1), task.OwnerID)
	require.Equal(t, "buy milk", task.Title)
	require.Equal(t, "", task.Body)
}

func TestTaskService_OwnershipScoping(t *testing.T) {
	t.Parallel()

	svc := NewTaskService(repo.NewMemoryTaskRepo())
	ctx := context.Background()

	mine, err := svc.Create(ctx, 1, "mine", "")
	require.NoError(t, err)

	// another caller can neither see nor touch it, and cannot tell it exists
	_, foreignErr := svc.GetByID(ctx, 2, mine.ID)
	_, missingErr := svc.GetByID(ctx, 2, 999)
	require.ErrorIs(t, foreignErr, ErrNotFound)
	require.Equal(t, missingErr, foreignErr)

	title := "hijacked"
	_, err = svc.Update(ctx, 2, mine.ID, &title, nil)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Delete(ctx, 2, mine.ID)
	require.ErrorIs(t, err, ErrNotFound)

	list, err := svc.List(ctx, 2)
	require.NoError(t, err)
	require.Empty(t, list)

	got, err := svc.GetByID(ctx, 1, mine.ID)
	require.NoError(t, err)
	require.Equal(t, "mine", got.Title)
}

func TestTaskService_PartialUpdate(t *testing.T) {
	t.Parallel()

	svc := NewTaskService(repo.NewMemoryTaskRepo())
	ctx := context.Background()

	task, err := svc.Create(ctx, 1, "title", "body")
	require.NoError(t, err)
	require.Nil(t, task.UpdatedAt)

	body := "new body"
	updated, err := svc.Update(ctx, 1, task.ID, nil, &body)
	require.NoError(t, err)
	require.Equal(t, "title", updated.Title)
	require.Equal(t, "new body", updated.Body)
	require.NotNil(t, updated.UpdatedAt)

	// a subsequent get reflects exactly that delta
	got, err := svc.GetByID(ctx, 1, task.ID)
	require.NoError(t, err)
	require.Equal(t, updated, got)
}

func TestTaskService_ListInsertionOrder(t *testing.T) {
	t.Parallel()

	svc := NewTaskService(repo.NewMemoryTaskRepo())
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		_, err := svc.Create(ctx, 1, title, "")
		require.NoError(t, err)
	}

	list, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "first", list[0].Title)
	require.Equal(t, "third", list[2].Title)
}

func TestTaskService_DeleteReturnsRemoved(t *testing.T) {
	t.Parallel()

	svc := NewTaskService(repo.NewMemoryTaskRepo())
	ctx := context.Background()

	task, err := svc.Create(ctx, 1, "gone soon", "")
	require.NoError(t, err)

	removed, err := svc.Delete(ctx, 1, task.ID)
	require.NoError(t, err)
	require.Equal(t, task.ID, removed.ID)

	_, err = svc.Delete(ctx, 1, task.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
