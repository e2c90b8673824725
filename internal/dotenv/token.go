package dotenv

// TokenKind classifies a single input character.
type TokenKind int

const (
	// TokenLiteral is any character without special meaning. The rune is
	// carried in Token.Char.
	TokenLiteral TokenKind = iota
	// TokenAssign is the '=' assignment operator.
	TokenAssign
	// TokenNewline is a '\n' line terminator.
	TokenNewline
	// TokenEOF marks the end of the input. Emitted exactly once, as the
	// final token of every tokenized sequence.
	TokenEOF
	// TokenComment is the '#' comment marker.
	TokenComment
	// TokenDoubleQuote is the '"' quote mark.
	TokenDoubleQuote
	// TokenSingleQuote is the '\'' quote mark.
	TokenSingleQuote
	// TokenWhitespace is a single space character.
	TokenWhitespace
)

// String returns a human-readable name for the token kind, used in error
// messages and test output.
func (k TokenKind) String() string {
	switch k {
	case TokenLiteral:
		return "literal"
	case TokenAssign:
		return "assignment operator"
	case TokenNewline:
		return "new line"
	case TokenEOF:
		return "end of input"
	case TokenComment:
		return "comment symbol"
	case TokenDoubleQuote:
		return "double quote mark"
	case TokenSingleQuote:
		return "single quote mark"
	case TokenWhitespace:
		return "whitespace"
	default:
		return "unknown"
	}
}

// Token is one classified input character. Only TokenLiteral tokens carry
// a meaningful Char.
type Token struct {
	Kind TokenKind
	Char rune
}

// Tokenize classifies every character of text into a Token and appends a
// trailing TokenEOF marker. Classification is a pure per-character lookup
// and never fails; all input characters are representable.
func Tokenize(text string) []Token {
	tokens := make([]Token, 0, len(text)+1)
	for _, c := range text {
		switch c {
		case '=':
			tokens = append(tokens, Token{Kind: TokenAssign})
		case ' ':
			tokens = append(tokens, Token{Kind: TokenWhitespace})
		case '#':
			tokens = append(tokens, Token{Kind: TokenComment})
		case '\n':
			tokens = append(tokens, Token{Kind: TokenNewline})
		case '"':
			tokens = append(tokens, Token{Kind: TokenDoubleQuote})
		case '\'':
			tokens = append(tokens, Token{Kind: TokenSingleQuote})
		default:
			tokens = append(tokens, Token{Kind: TokenLiteral, Char: c})
		}
	}
	return append(tokens, Token{Kind: TokenEOF})
}
