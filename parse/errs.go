package parse

import (
	"errors"
)

var (
	ErrUnexpectedToken = errors.New("unexpected token")
)
