package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenTypeNames(t *testing.T) {
	expected := map[TokenType]string{
		LeftParen:    "LEFT_PAREN",
		RightParen:   "RIGHT_PAREN",
		LeftBrace:    "LEFT_BRACE",
		RightBrace:   "RIGHT_BRACE",
		Comma:        "COMMA",
		Dot:          "DOT",
		Minus:        "MINUS",
		Plus:         "PLUS",
		Semicolon:    "SEMICOLON",
		Star:         "STAR",
		Equal:        "EQUAL",
		EqualEqual:   "EQUAL_EQUAL",
		Bang:         "BANG",
		BangEqual:    "BANG_EQUAL",
		Less:         "LESS",
		LessEqual:    "LESS_EQUAL",
		Greater:      "GREATER",
		GreaterEqual: "GREATER_EQUAL",
		EOF:          "EOF",
	}
	for typ, name := range expected {
		require.Equal(t, typ.String(), name)
	}
}

func TestTokenStringWithoutLiteral(t *testing.T) {
	tok := Token{Type: LeftParen, Lexeme: "(", Line: 1}
	require.Equal(t, tok.String(), "LEFT_PAREN ( null")
}

func TestEOFTokenString(t *testing.T) {
	tok := Token{Type: EOF, Line: 1}
	require.Equal(t, tok.String(), "EOF  null")
}

func TestLexErrorString(t *testing.T) {
	err := unexpectedChar(4, '@')
	require.Equal(t, err.Error(), "[line 4] Error: Unexpected character: @")
}
