package token

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

var singleRunes = map[rune]TokenType{
	'(': TLParen,
	')': TRParen,
	'&': TAnd,
	'|': TOr,
	'~': TNot,
	'^': TXor,
}

// Tokenize scans src into a flat token slice.  Whitespace separates
// tokens and is discarded.  By default runes that start no token are
// discarded too, so Tokenize cannot fail; with Strict they produce
// ErrUnknownRune.
//
// "<->" is matched before "->", so "a<->b" never lexes as an implies.
func Tokenize(src string, opts ...TokenOpt) ([]Token, error) {
	o := &tokenOpts{}
	for _, f := range opts {
		f(o)
	}
	var dst []Token
	i := 0
	for i < len(src) {
		r, w := utf8.DecodeRuneInString(src[i:])
		if unicode.IsSpace(r) {
			i += w
			continue
		}
		if tt, ok := singleRunes[r]; ok {
			dst = append(dst, Token{Type: tt, Text: string(r), Off: i})
			i += w
			continue
		}
		switch {
		case strings.HasPrefix(src[i:], "<->"):
			dst = append(dst, Token{Type: TIff, Text: "<->", Off: i})
			i += 3
		case strings.HasPrefix(src[i:], "->"):
			dst = append(dst, Token{Type: TImplies, Text: "->", Off: i})
			i += 2
		case isIdentRune(r):
			j := i + w
			for j < len(src) {
				r2, w2 := utf8.DecodeRuneInString(src[j:])
				if !isIdentRune(r2) {
					break
				}
				j += w2
			}
			dst = append(dst, Token{Type: TIdent, Text: src[i:j], Off: i})
			i = j
		default:
			if o.strict {
				return nil, fmt.Errorf("%w %q at offset %d", ErrUnknownRune, r, i)
			}
			i += w
		}
	}
	return dst, nil
}

// isIdentRune reports whether r may appear in an identifier.  The first
// rune of an identifier is not special: "3x" and "_a" are identifiers.
func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
