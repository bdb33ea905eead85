package model

import "time"

// Todo is a single to-do record. Every todo belongs to exactly one owner
// and is only ever read or written through that owner's partition.
type Todo struct {
	TodoID      string    `json:"todoId" dynamodbav:"todoId"`
	UserID      string    `json:"userId" dynamodbav:"userId"`
	Title       string    `json:"title" dynamodbav:"title"`
	Description string    `json:"description,omitempty" dynamodbav:"description"`
	Completed   bool      `json:"completed" dynamodbav:"completed"`
	CreatedAt   time.Time `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" dynamodbav:"updatedAt"`
}

// CreateTodoData carries the caller-supplied fields for a new todo.
type CreateTodoData struct {
	Title       string
	Description string
}

// UpdateTodoData carries a partial update. Nil fields are left untouched.
type UpdateTodoData struct {
	Title       *string
	Description *string
	Completed   *bool
}

// IsEmpty reports whether the patch carries no fields at all.
func (d UpdateTodoData) IsEmpty() bool {
	return d.Title == nil && d.Description == nil && d.Completed == nil
}

// BatchResult describes the outcome of one batch-delete invocation.
// Deleted and Failed are disjoint and together cover the input ids.
type BatchResult struct {
	Deleted []string `json:"deleted"`
	Failed  []string `json:"failed"`
}
