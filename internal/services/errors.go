package services

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrNoActiveProfile      = errors.New("no active profile")
	ErrCorruptPersistedData = errors.New("corrupt persisted data")
)
