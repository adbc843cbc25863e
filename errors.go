package hraccess

import "errors"

// Custom errors
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrAccessDenied     = errors.New("access denied")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrUnknownRole      = errors.New("unknown role")
	ErrNotFound         = errors.New("resource not found")
	ErrAlreadyExists    = errors.New("resource already exists")
)
