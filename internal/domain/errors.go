package domain

import "errors"

// Sentinel errors for the page state layer. These provide consistent, checkable
// errors for handlers to map onto HTTP responses.
var (
	ErrInstanceNotFound  = errors.New("page instance not found")
	ErrInvalidInstanceID = errors.New("invalid page instance id")
)
