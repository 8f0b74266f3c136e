package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrUserExists        = errors.New("user already exists")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrTokenInvalid      = errors.New("token invalid")
	ErrInvalidInput      = errors.New("invalid input")
	ErrStoreUnavailable  = errors.New("storage unavailable")
	ErrSearchUnavailable = errors.New("search provider unavailable")
)
