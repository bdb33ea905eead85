package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jaekwang-park/todo-cloud/internal/model"
	"github.com/jaekwang-park/todo-cloud/internal/store"
	"github.com/jaekwang-park/todo-cloud/internal/validate"
)

// BatchMetrics records batch-delete outcomes. A nil BatchMetrics is
// treated as a no-op.
type BatchMetrics interface {
	RecordBatchDelete(deleted, failed int)
}

type TodoService struct {
	store   store.TodoStore
	metrics BatchMetrics
}

func NewTodoService(st store.TodoStore, metrics BatchMetrics) *TodoService {
	return &TodoService{store: st, metrics: metrics}
}

func (s *TodoService) List(ctx context.Context, userID string) ([]model.Todo, error) {
	todos, err := s.store.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}

func (s *TodoService) Create(ctx context.Context, userID string, req validate.CreateTodoRequest) (model.Todo, error) {
	if err := validate.CreateTodo(req); err != nil {
		return model.Todo{}, err
	}

	created, err := s.store.Create(ctx, userID, model.CreateTodoData{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return model.Todo{}, fmt.Errorf("failed to create todo: %w", err)
	}
	return created, nil
}

func (s *TodoService) Update(ctx context.Context, userID, todoID string, req validate.UpdateTodoRequest) (model.Todo, error) {
	if err := validate.UpdateTodo(req); err != nil {
		return model.Todo{}, err
	}

	updated, err := s.store.Update(ctx, userID, todoID, req.UpdateData())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.Todo{}, ErrNotFound
		}
		return model.Todo{}, fmt.Errorf("failed to update todo: %w", err)
	}
	return updated, nil
}

func (s *TodoService) Delete(ctx context.Context, userID, todoID string) error {
	err := s.store.Delete(ctx, userID, todoID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	return nil
}

// BatchDelete removes many todos at once and reports the per-id split.
// Partial failure of the underlying store is a normal outcome here; only
// validation problems surface as errors.
func (s *TodoService) BatchDelete(ctx context.Context, userID string, req validate.BatchDeleteRequest) (model.BatchResult, error) {
	if err := validate.BatchDelete(req); err != nil {
		return model.BatchResult{}, err
	}

	result, err := s.store.BatchDelete(ctx, userID, req.TodoIDs)
	if err != nil {
		return model.BatchResult{}, fmt.Errorf("failed to batch delete todos: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordBatchDelete(len(result.Deleted), len(result.Failed))
	}
	return result, nil
}
