package catalog

import "errors"

var (
	ErrInvalidInput = errors.New("invalid product input")
	ErrNotFound     = errors.New("product not found")
)
