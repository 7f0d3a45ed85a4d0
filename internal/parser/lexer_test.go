package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lex(input string) []Token {
	return newLexer(input).tokenize()
}

func TestLexer_Words(t *testing.T) {
	tokens := lex("play pause resume")
	require.Len(t, tokens, 4)
	assert.Equal(t, WORD, tokens[0].Type)
	assert.Equal(t, "play", tokens[0].Lit)
	assert.Equal(t, WORD, tokens[1].Type)
	assert.Equal(t, WORD, tokens[2].Type)
	assert.Equal(t, EOF, tokens[3].Type)
}

func TestLexer_QuotedString(t *testing.T) {
	tokens := lex(`play "Bohemian Rhapsody"`)
	require.Len(t, tokens, 3)
	assert.Equal(t, STRING, tokens[1].Type)
	assert.Equal(t, "Bohemian Rhapsody", tokens[1].Lit)
}

func TestLexer_EmptyString(t *testing.T) {
	tokens := lex(`search ""`)
	require.Len(t, tokens, 3)
	assert.Equal(t, STRING, tokens[1].Type)
	assert.Equal(t, "", tokens[1].Lit)
}

func TestLexer_UnterminatedString(t *testing.T) {
	tokens := lex(`play "Bohemian`)
	require.Len(t, tokens, 3)
	assert.Equal(t, ILLEGAL, tokens[1].Type)
}

func TestLexer_URI(t *testing.T) {
	tokens := lex("play spotify:track:6rqhFgbbKwnb9MLmUQDhG6")
	require.Len(t, tokens, 3)
	assert.Equal(t, URI, tokens[1].Type)
	assert.Equal(t, "spotify:track:6rqhFgbbKwnb9MLmUQDhG6", tokens[1].Lit)
}

func TestLexer_Numbers(t *testing.T) {
	tokens := lex("skip -2")
	require.Len(t, tokens, 3)
	assert.Equal(t, NUMBER, tokens[1].Type)
	assert.Equal(t, "-2", tokens[1].Lit)

	tokens = lex("volume 0.7")
	require.Len(t, tokens, 3)
	assert.Equal(t, NUMBER, tokens[1].Type)
	assert.Equal(t, "0.7", tokens[1].Lit)
}

func TestLexer_Positions(t *testing.T) {
	tokens := lex(`play "jazz"`)
	assert.Equal(t, 1, tokens[0].Pos.Column)
	assert.Equal(t, 6, tokens[1].Pos.Column)
}

func TestLexer_IllegalCharacter(t *testing.T) {
	tokens := lex("play $")
	require.Len(t, tokens, 3)
	assert.Equal(t, ILLEGAL, tokens[1].Type)
	assert.Equal(t, "$", tokens[1].Lit)
}
