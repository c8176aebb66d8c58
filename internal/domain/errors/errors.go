package errors

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidPerson = errors.New("invalid person")
)
