package lib

import (
	"fmt"
	"io"
)

// RenderTokens writes one line per token to w in the order produced.
func RenderTokens(w io.Writer, tokens []Token) error {
	for _, tok := range tokens {
		if _, err := fmt.Fprintln(w, tok); err != nil {
			return err
		}
	}
	return nil
}

// RenderErrors writes one line per error to w in the order encountered.
// Errors never suppress token output; callers render both.
func RenderErrors(w io.Writer, errs []LexError) error {
	for _, e := range errs {
		if _, err := fmt.Fprintln(w, e); err != nil {
			return err
		}
	}
	return nil
}
