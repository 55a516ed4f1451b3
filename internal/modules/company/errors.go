package company

import "errors"

var ErrNotFound = errors.New("company info not found")
