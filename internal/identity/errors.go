package identity

import "errors"

// Sentinel errors for identity-provider operations. Provider-specific
// error codes are mapped onto this closed set at the adapter boundary;
// nothing downstream inspects upstream error strings.
var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrWeakPassword       = errors.New("password does not meet requirements")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTooManyAttempts    = errors.New("too many attempts")
	ErrInvalidParameter   = errors.New("invalid parameter")
)

// ErrorInfo maps a sentinel error to its HTTP status and error code.
type ErrorInfo struct {
	Status int
	Code   string
}

var errorMap = map[error]ErrorInfo{
	ErrUsernameTaken:      {Status: 409, Code: "USERNAME_TAKEN"},
	ErrUserNotFound:       {Status: 404, Code: "USER_NOT_FOUND"},
	ErrWeakPassword:       {Status: 400, Code: "WEAK_PASSWORD"},
	ErrInvalidCredentials: {Status: 401, Code: "INVALID_CREDENTIALS"},
	ErrTooManyAttempts:    {Status: 429, Code: "TOO_MANY_ATTEMPTS"},
	ErrInvalidParameter:   {Status: 400, Code: "INVALID_PARAMETER"},
}

// LookupError checks if the given error matches any known identity sentinel
// error and returns the corresponding ErrorInfo. Returns false if no match.
func LookupError(err error) (ErrorInfo, bool) {
	for sentinel, info := range errorMap {
		if errors.Is(err, sentinel) {
			return info, true
		}
	}
	return ErrorInfo{}, false
}
