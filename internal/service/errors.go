package service

import "errors"

// ErrNotFound is returned when the requested todo does not exist for the
// requesting user.
var ErrNotFound = errors.New("not found")
