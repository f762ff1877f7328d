package parse

import (
	"github.com/signadot/robdd/token"
)

type parseOpts struct {
	strict bool
}

func (o *parseOpts) tokenOpts() []token.TokenOpt {
	if o.strict {
		return []token.TokenOpt{token.Strict()}
	}
	return nil
}

type ParseOption func(*parseOpts)

// Strict rejects formulas containing runes that start no token.  The
// default silently drops them.
func Strict() ParseOption {
	return func(o *parseOpts) { o.strict = true }
}
