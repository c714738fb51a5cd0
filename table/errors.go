package table

import "errors"

var (
	ErrInvalidRole   = errors.New("invalid role")
	ErrInvalidColumn = errors.New("invalid column")
	ErrInvalidRange  = errors.New("range min exceeds max")
	ErrUnknownKind   = errors.New("unknown index kind")
)
