package token

import (
	"slices"

	"golang.org/x/exp/maps"
)

// reservedKeywords is read-only after package initialization and safe for
// concurrent lookups.
var reservedKeywords = map[string]TokenType{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"for":    FOR,
	"fun":    FUN,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}

// LookupKeyword reports the keyword token type for identifier, if any.
func LookupKeyword(identifier string) (tokenType TokenType, ok bool) {
	tokenType, ok = reservedKeywords[identifier]
	return
}

// Keywords returns the reserved words in lexical order.
func Keywords() []string {
	keywords := maps.Keys(reservedKeywords)
	slices.Sort(keywords)
	return keywords
}
