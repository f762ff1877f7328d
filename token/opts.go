package token

type tokenOpts struct {
	strict bool
}

type TokenOpt func(*tokenOpts)

// Strict makes Tokenize fail on runes that start no token instead of
// silently discarding them.
func Strict() TokenOpt {
	return func(o *tokenOpts) { o.strict = true }
}
