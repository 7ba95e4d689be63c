package model

import "errors"

var (
	ErrValidation  = errors.New("model: validation failed")
	ErrNotFound    = errors.New("model: not found")
	ErrAlreadyDone = errors.New("model: mood already chosen today")
)
