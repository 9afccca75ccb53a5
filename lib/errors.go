package lib

import "fmt"

// LexError is a recoverable lexical error. The scanner never stops on
// one; errors accumulate during the pass and are reported afterwards in
// the order encountered.
type LexError struct {
	Line    int
	Message string
}

func (e LexError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

func unexpectedChar(line int, ch rune) LexError {
	return LexError{
		Line:    line,
		Message: fmt.Sprintf("Unexpected character: %c", ch),
	}
}
