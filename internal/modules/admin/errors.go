package admin

import "errors"

var (
	ErrInvalidInput = errors.New("invalid user input")
	ErrEmailExists  = errors.New("email already in use")
	ErrNotFound     = errors.New("user not found")
)
