package service

import (
	"context"
	"fmt"

	"github.com/jaekwang-park/todo-cloud/internal/identity"
	"github.com/jaekwang-park/todo-cloud/internal/model"
	"github.com/jaekwang-park/todo-cloud/internal/validate"
)

// AuthService handles signup and login against the identity provider.
type AuthService struct {
	idp identity.Client
}

func NewAuthService(idp identity.Client) *AuthService {
	return &AuthService{idp: idp}
}

// SignUp registers a new account. The username is pre-checked for
// uniqueness so a duplicate is reported as a conflict before the
// provider's own create call can race on it.
func (s *AuthService) SignUp(ctx context.Context, req validate.SignUpRequest) (model.Account, error) {
	if err := validate.SignUp(req); err != nil {
		return model.Account{}, err
	}

	existing, err := s.idp.LookupByUsername(ctx, req.Username)
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return model.Account{}, fmt.Errorf("signup: %w", identity.ErrUsernameTaken)
	}

	account, err := s.idp.SignUp(ctx, identity.SignUpInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return model.Account{}, err
	}
	return account, nil
}

func (s *AuthService) Login(ctx context.Context, req validate.LoginRequest) (model.TokenPair, error) {
	if err := validate.Login(req); err != nil {
		return model.TokenPair{}, err
	}

	pair, err := s.idp.Login(ctx, identity.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return model.TokenPair{}, err
	}
	return pair, nil
}
