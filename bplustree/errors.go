package bplus

import "errors"

var (
	// ErrInvalidOrder is returned by New when order < MinOrder. No tree is
	// created in that case.
	ErrInvalidOrder = errors.New("b+ tree order must be at least 3")
)
