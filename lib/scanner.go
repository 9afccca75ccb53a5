package lib

// Scanner walks a source string left to right, producing an ordered,
// EOF-terminated token sequence and accumulating lexical errors without
// ever aborting the pass. A Scanner is single-use: construct one per
// source string and call Scan exactly once. Instances are not safe for
// concurrent use, but independent instances are.
type Scanner struct {
	source  []rune
	start   int
	current int
	line    int
	tokens  []Token
	errors  []LexError
}

// NewScanner constructs a scanner over the full contents of a source
// file. It does no I/O and never fails.
func NewScanner(source string) *Scanner {
	return &Scanner{
		source: []rune(source),
		line:   1,
	}
}

// Scan performs the full pass. Results are read through Tokens, Errors
// and HasErrors. The token sequence always ends with exactly one EOF
// token with an empty lexeme, even for empty input.
func (s *Scanner) Scan() {
	for !s.isAtEnd() {
		s.start = s.current
		s.scanToken()
	}
	s.tokens = append(s.tokens, Token{Type: EOF, Line: s.line})
}

func (s *Scanner) scanToken() {
	ch := s.advance()
	switch ch {
	case '(':
		s.addToken(LeftParen)
	case ')':
		s.addToken(RightParen)
	case '{':
		s.addToken(LeftBrace)
	case '}':
		s.addToken(RightBrace)
	case ',':
		s.addToken(Comma)
	case '.':
		s.addToken(Dot)
	case '-':
		s.addToken(Minus)
	case '+':
		s.addToken(Plus)
	case ';':
		s.addToken(Semicolon)
	case '*':
		s.addToken(Star)
	case '=':
		if s.match('=') {
			s.addToken(EqualEqual)
		} else {
			s.addToken(Equal)
		}
	case '!':
		if s.match('=') {
			s.addToken(BangEqual)
		} else {
			s.addToken(Bang)
		}
	case '<':
		if s.match('=') {
			s.addToken(LessEqual)
		} else {
			s.addToken(Less)
		}
	case '>':
		if s.match('=') {
			s.addToken(GreaterEqual)
		} else {
			s.addToken(Greater)
		}
	case ' ', '\t', '\r':
		// whitespace produces no token
	case '\n':
		s.line++
	default:
		s.errors = append(s.errors, unexpectedChar(s.line, ch))
	}
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) advance() rune {
	ch := s.source[s.current]
	s.current++
	return ch
}

// match consumes the next rune only when it equals expected. On a
// mismatch the cursor stays put so the rune is scanned fresh.
func (s *Scanner) match(expected rune) bool {
	if s.isAtEnd() {
		return false
	}
	if s.source[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) addToken(typ TokenType) {
	s.tokens = append(s.tokens, Token{
		Type:   typ,
		Lexeme: string(s.source[s.start:s.current]),
		Line:   s.line,
	})
}

// HasErrors reports whether any lexical error was recorded. Before Scan
// it is always false.
func (s *Scanner) HasErrors() bool {
	return len(s.errors) > 0
}

// Tokens returns the token sequence produced by Scan.
func (s *Scanner) Tokens() []Token {
	return s.tokens
}

// Errors returns the lexical errors in the order encountered.
func (s *Scanner) Errors() []LexError {
	return s.errors
}
