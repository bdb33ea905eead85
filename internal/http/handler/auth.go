package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jaekwang-park/todo-cloud/internal/identity"
	"github.com/jaekwang-park/todo-cloud/internal/service"
	"github.com/jaekwang-park/todo-cloud/internal/validate"
)

const maxAuthBodySize = 1 << 20 // 1 MB

// AuthHandler handles signup and login HTTP requests.
type AuthHandler struct {
	svc *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// ServeHTTP routes /auth/* requests.
func (h *AuthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/auth/")
	path = strings.TrimRight(path, "/")

	switch path {
	case "signup":
		h.requirePost(w, r, h.handleSignUp)
	case "login":
		h.requirePost(w, r, h.handleLogin)
	default:
		WriteError(w, http.StatusNotFound, "NOT_FOUND", "endpoint not found")
	}
}

func (h *AuthHandler) requirePost(w http.ResponseWriter, r *http.Request, handler func(http.ResponseWriter, *http.Request)) {
	if r.Method != http.MethodPost {
		WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxAuthBodySize)
	handler(w, r)
}

type signUpResponse struct {
	Message string `json:"message"`
	User    any    `json:"user"`
}

func (h *AuthHandler) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req validate.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	account, err := h.svc.SignUp(r.Context(), req)
	if err != nil {
		handleAuthError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, signUpResponse{
		Message: "User registered successfully",
		User:    account,
	})
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req validate.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	pair, err := h.svc.Login(r.Context(), req)
	if err != nil {
		handleAuthError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, pair)
}

// handleAuthError maps identity sentinel errors and validation errors to
// HTTP responses. Uses fixed messages to avoid leaking provider error
// details to clients; the actual error is logged server-side.
func handleAuthError(w http.ResponseWriter, err error) {
	var verr *validate.Error
	if errors.As(err, &verr) {
		WriteError(w, http.StatusBadRequest, "VALIDATION_ERROR", verr.Error())
		return
	}

	if info, ok := identity.LookupError(err); ok {
		slog.Error("auth error", "code", info.Code, "detail", err.Error())
		WriteError(w, info.Status, info.Code, identityErrorMessage(info.Code))
		return
	}

	slog.Error("auth internal error", "error", err.Error())
	WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// identityErrorMessage returns a safe, user-facing message for each
// identity error code. Invalid-credential responses deliberately do not
// say whether the username or the password was wrong.
func identityErrorMessage(code string) string {
	messages := map[string]string{
		"USERNAME_TAKEN":      "username is already taken",
		"USER_NOT_FOUND":      "user not found",
		"WEAK_PASSWORD":       "password does not meet complexity requirements",
		"INVALID_CREDENTIALS": "invalid username or password",
		"TOO_MANY_ATTEMPTS":   "too many login attempts, please try again later",
		"INVALID_PARAMETER":   "invalid request parameter",
	}
	if msg, ok := messages[code]; ok {
		return msg
	}
	return "an error occurred"
}
