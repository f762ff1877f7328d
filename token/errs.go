package token

import (
	"errors"
)

var (
	ErrUnknownRune = errors.New("unknown rune")
)
