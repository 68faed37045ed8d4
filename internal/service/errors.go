package service

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrReferenceNotFound = errors.New("reference not found")
	ErrInvalidInput      = errors.New("invalid input")
)
