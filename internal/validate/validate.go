// Package validate checks inbound request payloads against fixed
// constraints before any upstream call is made. Validation collects
// every violated constraint rather than stopping at the first.
package validate

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jaekwang-park/todo-cloud/internal/model"
)

const (
	UsernameMinLen    = 3
	UsernameMaxLen    = 50
	PasswordMinLen    = 8
	TitleMaxLen       = 100
	DescriptionMaxLen = 500
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Error reports one or more violated constraints.
type Error struct {
	Violations []string
}

func (e *Error) Error() string {
	return "validation error: " + strings.Join(e.Violations, "; ")
}

// errorOrNil returns nil when no constraints were violated.
func errorOrNil(violations []string) error {
	if len(violations) == 0 {
		return nil
	}
	return &Error{Violations: violations}
}

type SignUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func SignUp(req SignUpRequest) error {
	var v []string
	switch {
	case req.Username == "":
		v = append(v, "username is required")
	case len(req.Username) < UsernameMinLen:
		v = append(v, "username must be at least 3 characters long")
	case len(req.Username) > UsernameMaxLen:
		v = append(v, "username cannot exceed 50 characters")
	}
	switch {
	case req.Email == "":
		v = append(v, "email is required")
	case !emailRe.MatchString(req.Email):
		v = append(v, "email must be a valid email address")
	}
	switch {
	case req.Password == "":
		v = append(v, "password is required")
	case len(req.Password) < PasswordMinLen:
		v = append(v, "password must be at least 8 characters long")
	case !hasPasswordClasses(req.Password):
		v = append(v, "password must contain at least one uppercase letter, one lowercase letter, and one number")
	}
	return errorOrNil(v)
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func Login(req LoginRequest) error {
	var v []string
	if req.Username == "" {
		v = append(v, "username is required")
	}
	if req.Password == "" {
		v = append(v, "password is required")
	}
	return errorOrNil(v)
}

type CreateTodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func CreateTodo(req CreateTodoRequest) error {
	var v []string
	switch {
	case req.Title == "":
		v = append(v, "title is required")
	case len(req.Title) > TitleMaxLen:
		v = append(v, "title cannot exceed 100 characters")
	}
	if len(req.Description) > DescriptionMaxLen {
		v = append(v, "description cannot exceed 500 characters")
	}
	return errorOrNil(v)
}

type UpdateTodoRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

func UpdateTodo(req UpdateTodoRequest) error {
	var v []string
	if req.Title == nil && req.Description == nil && req.Completed == nil {
		v = append(v, "at least one field must be provided for update")
	}
	if req.Title != nil {
		switch {
		case *req.Title == "":
			v = append(v, "title cannot be empty")
		case len(*req.Title) > TitleMaxLen:
			v = append(v, "title cannot exceed 100 characters")
		}
	}
	if req.Description != nil && len(*req.Description) > DescriptionMaxLen {
		v = append(v, "description cannot exceed 500 characters")
	}
	return errorOrNil(v)
}

type BatchDeleteRequest struct {
	TodoIDs []string `json:"todoIds"`
}

func BatchDelete(req BatchDeleteRequest) error {
	var v []string
	if len(req.TodoIDs) == 0 {
		v = append(v, "at least one todo ID must be provided")
	}
	for _, id := range req.TodoIDs {
		if id == "" {
			v = append(v, "todo IDs cannot be empty")
			break
		}
	}
	return errorOrNil(v)
}

// UpdateData converts a validated update request into a store patch.
func (r UpdateTodoRequest) UpdateData() model.UpdateTodoData {
	return model.UpdateTodoData{
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
	}
}

func hasPasswordClasses(password string) bool {
	var lower, upper, digit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}
