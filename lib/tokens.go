package lib

import "fmt"

// TokenType classifies a single lexeme.
type TokenType int

const (
	LeftParen TokenType = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Star
	Equal
	EqualEqual
	Bang
	BangEqual
	Less
	LessEqual
	Greater
	GreaterEqual
	EOF
)

func (t TokenType) String() string {
	switch t {
	case LeftParen:
		return "LEFT_PAREN"
	case RightParen:
		return "RIGHT_PAREN"
	case LeftBrace:
		return "LEFT_BRACE"
	case RightBrace:
		return "RIGHT_BRACE"
	case Comma:
		return "COMMA"
	case Dot:
		return "DOT"
	case Minus:
		return "MINUS"
	case Plus:
		return "PLUS"
	case Semicolon:
		return "SEMICOLON"
	case Star:
		return "STAR"
	case Equal:
		return "EQUAL"
	case EqualEqual:
		return "EQUAL_EQUAL"
	case Bang:
		return "BANG"
	case BangEqual:
		return "BANG_EQUAL"
	case Less:
		return "LESS"
	case LessEqual:
		return "LESS_EQUAL"
	case Greater:
		return "GREATER"
	case GreaterEqual:
		return "GREATER_EQUAL"
	case EOF:
		return "EOF"
	}
	return "UNKNOWN"
}

// Token is one classified lexeme. Lexeme is the exact source text that
// produced it (empty for EOF) and Line is the 1-based line where it
// started. Literal holds a decoded value for literal-bearing types; none
// of the types above carry one, so it is normally empty.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal string
	Line    int
}

// String renders the token in the line format consumed by downstream
// tooling: "<TYPE> <lexeme> <literal>", with the literal string "null"
// standing in when no literal exists.
func (t Token) String() string {
	literal := t.Literal
	if literal == "" {
		literal = "null"
	}
	return fmt.Sprintf("%s %s %s", t.Type, t.Lexeme, literal)
}
