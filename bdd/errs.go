package bdd

import (
	"errors"
)

var (
	ErrUnknownVariable = errors.New("unknown variable")
	ErrOutOfRange      = errors.New("node ref out of range")
	ErrOrdering        = errors.New("bad variable ordering")
	ErrBadOp           = errors.New("bad operator")
)
