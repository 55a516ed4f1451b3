package orders

import "errors"

var (
	ErrInvalidInput = errors.New("invalid order input")
	ErrNotFound     = errors.New("order not found")
	ErrForbidden    = errors.New("order owned by another user")
)
