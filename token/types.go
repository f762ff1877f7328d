package token

import (
	"fmt"
)

type TokenType int

const (
	TIdent TokenType = iota
	TNot
	TAnd
	TOr
	TXor
	TImplies
	TIff
	TLParen
	TRParen
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TIdent:   "TIdent",
		TNot:     "TNot",
		TAnd:     "TAnd",
		TOr:      "TOr",
		TXor:     "TXor",
		TImplies: "TImplies",
		TIff:     "TIff",
		TLParen:  "TLParen",
		TRParen:  "TRParen",
	}[t]
}

// Token is one lexical element of a formula.  Off is the byte offset of
// the token's first rune in the input string.
type Token struct {
	Type TokenType
	Text string
	Off  int
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %q at offset %d", t.Type, t.Text, t.Off)
}

func (t *Token) String() string {
	return t.Text
}
