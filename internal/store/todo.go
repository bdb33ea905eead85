package store

import (
	"context"
	"errors"

	"github.com/jaekwang-park/todo-cloud/internal/model"
)

// ErrNotFound is returned when a todo does not exist or is not owned
// by the requesting user. The two cases are deliberately not
// distinguished.
var ErrNotFound = errors.New("todo not found")

// TodoStore is the persistence interface for todos. Every operation is
// scoped by the owner's user ID; implementations must never read or
// write outside that partition.
type TodoStore interface {
	List(ctx context.Context, userID string) ([]model.Todo, error)
	Get(ctx context.Context, userID, todoID string) (model.Todo, error)
	Create(ctx context.Context, userID string, data model.CreateTodoData) (model.Todo, error)
	Update(ctx context.Context, userID, todoID string, patch model.UpdateTodoData) (model.Todo, error)
	Delete(ctx context.Context, userID, todoID string) error
	BatchDelete(ctx context.Context, userID string, todoIDs []string) (model.BatchResult, error)
}
