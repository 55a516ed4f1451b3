package clients

import "errors"

var (
	ErrInvalidInput = errors.New("invalid client input")
	ErrBadDocument  = errors.New("document failed checksum validation")
	ErrUserNotFound = errors.New("owning user does not exist")
	ErrNotFound     = errors.New("client not found")
	ErrForbidden    = errors.New("client owned by another user")
)
