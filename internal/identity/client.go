package identity

import (
	"context"

	"github.com/jaekwang-park/todo-cloud/internal/model"
)

// Client defines the interface for identity-provider operations.
// Each operation is a single upstream round-trip; retries are the
// caller's concern.
type Client interface {
	SignUp(ctx context.Context, input SignUpInput) (model.Account, error)
	Login(ctx context.Context, input LoginInput) (model.TokenPair, error)
	// LookupByUsername returns (nil, nil) when no such user exists,
	// distinguishing absence from a lookup failure.
	LookupByUsername(ctx context.Context, username string) (*model.Account, error)
}

// SignUpInput contains the parameters for registering a new user.
type SignUpInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput contains the parameters for authenticating a user.
type LoginInput struct {
	Username string
	Password string
}
