// Package parser implements the surface grammar of the tuneshell command
// language. The lexer turns one input line into positioned tokens and the
// parser builds a parse tree, rejecting malformed input before any semantic
// work happens downstream.
package parser

import "fmt"

// TokenType represents the type of a lexed token.
type TokenType int

const (
	// EOF marks the end of the input line.
	EOF TokenType = iota
	// ILLEGAL marks a character the lexer cannot classify.
	ILLEGAL

	// WORD covers keywords and bare identifiers (play, volume, shuffle, …).
	WORD
	// STRING is a double-quoted free-text literal.
	STRING
	// NUMBER is a numeric literal, optionally signed, optionally fractional.
	NUMBER
	// URI is a colon-delimited canonical identifier (ns:kind:id).
	URI
)

var tokenNames = [...]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",
	WORD:    "WORD",
	STRING:  "STRING",
	NUMBER:  "NUMBER",
	URI:     "URI",
}

func (t TokenType) String() string {
	if int(t) < len(tokenNames) && int(t) >= 0 {
		return tokenNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Position is a location in the input line. Column is 1-based, Offset is the
// 0-based byte offset.
type Position struct {
	Column int
	Offset int
}

// Token is one lexed token with its source position. For STRING tokens Lit
// holds the unquoted contents.
type Token struct {
	Type TokenType
	Lit  string
	Pos  Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d", t.Type, t.Lit, t.Pos.Column)
}
