package domain

import "errors"

var (
	ErrPersonaNotFound   = errors.New("persona not found")
	ErrTodoNotFound      = errors.New("todo not found")
	ErrInvalidTodoStatus = errors.New("invalid todo status")
)
