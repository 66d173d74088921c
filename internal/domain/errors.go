package domain

import "errors"

var (
	ErrUnknownShape      = errors.New("unknown shape")
	ErrInvalidDifficulty = errors.New("difficulty must be easy, medium or hard")
	ErrInvalidCanvas     = errors.New("canvas dimensions must be positive")
)
