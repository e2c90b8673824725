package dotenv

import "strings"

// Mapping is the key-unique result of a successful parse. When a key
// appears on more than one line, the last occurrence wins.
type Mapping map[string]string

// state is the parser's single explicit state. Exactly one state is
// active at any time, so illegal flag combinations (such as being inside
// both quote kinds at once) cannot be represented.
type state int

const (
	// stateKey accumulates the key of the current line. Initial state.
	stateKey state = iota
	// stateValue accumulates an unquoted value, entered after '='.
	stateValue
	// stateSingleQuote accumulates a single-quoted value; every character
	// except the closing quote is taken literally.
	stateSingleQuote
	// stateDoubleQuote accumulates a double-quoted value.
	stateDoubleQuote
	// stateAfterValue means the value has been terminated (by whitespace
	// or a closing quote) but the line is not finished yet.
	stateAfterValue
	// stateComment discards everything up to the next newline.
	stateComment
)

// parser holds the transient state of a single Parse call. A fresh parser
// is built per call and discarded on completion, so concurrent parses of
// different inputs never share anything.
type parser struct {
	state     state
	line      int
	column    int
	key       strings.Builder
	value     strings.Builder
	sawAssign bool
	result    Mapping
}

// Parse consumes the token sequence in order and returns the completed
// Mapping, or the first malformed construct as a positioned error. Parsing
// is single-pass with no backtracking and no error recovery: one bad line
// aborts the whole parse.
func Parse(tokens []Token) (Mapping, error) {
	p := &parser{line: 1, result: Mapping{}}

	for _, tok := range tokens {
		var err error
		switch tok.Kind {
		case TokenLiteral:
			err = p.consumeLiteral(tok.Char)
		case TokenAssign:
			err = p.consumeAssign()
		case TokenWhitespace:
			err = p.consumeWhitespace()
		case TokenComment:
			p.consumeComment()
		case TokenSingleQuote:
			err = p.consumeQuote(stateSingleQuote)
		case TokenDoubleQuote:
			err = p.consumeQuote(stateDoubleQuote)
		case TokenNewline:
			err = p.consumeNewline()
		case TokenEOF:
			return p.finish()
		}
		if err != nil {
			return nil, err
		}
	}

	// Tokenize always appends a TokenEOF, so a well-formed sequence never
	// gets here. Treat a truncated sequence as ending anyway.
	return p.finish()
}

// Process tokenizes and parses text in one call.
func Process(text string) (Mapping, error) {
	return Parse(Tokenize(text))
}

// inQuote reports whether a quoted value is currently open.
func (p *parser) inQuote() bool {
	return p.state == stateSingleQuote || p.state == stateDoubleQuote
}

func (p *parser) consumeLiteral(c rune) error {
	p.column++
	switch p.state {
	case stateKey:
		p.key.WriteRune(c)
	case stateValue, stateSingleQuote, stateDoubleQuote:
		p.value.WriteRune(c)
	case stateComment:
		// discarded
	case stateAfterValue:
		return &UnexpectedTokenError{
			Expected: "comment or new line",
			Found:    string(c),
			Line:     p.line,
			Column:   p.column,
		}
	}
	return nil
}

func (p *parser) consumeAssign() error {
	p.column++
	switch p.state {
	case stateSingleQuote, stateDoubleQuote:
		p.value.WriteRune('=')
	case stateComment:
		// discarded
	case stateKey:
		// Valid even with an empty key; the missing key is reported when
		// the line is finalized.
		p.sawAssign = true
		p.state = stateValue
	case stateValue, stateAfterValue:
		// A second '=' outside quotes, whether mid-value or after the
		// value was terminated, is malformed. A value containing '=' must
		// be quoted.
		return &ExpectedValueFoundAssignmentError{Line: p.line, Column: p.column}
	}
	return nil
}

func (p *parser) consumeWhitespace() error {
	p.column++
	switch p.state {
	case stateSingleQuote, stateDoubleQuote:
		p.value.WriteRune(' ')
	case stateComment, stateAfterValue:
		// discarded
	case stateKey:
		// Keys may not contain or be preceded by whitespace.
		return &UnexpectedTokenError{
			Expected: "key or comment symbol",
			Found:    " ",
			Line:     p.line,
			Column:   p.column,
		}
	case stateValue:
		// Whitespace terminates an unquoted value.
		p.state = stateAfterValue
	}
	return nil
}

func (p *parser) consumeComment() {
	p.column++
	switch p.state {
	case stateSingleQuote, stateDoubleQuote:
		p.value.WriteRune('#')
	case stateComment:
		// already discarding
	default:
		// A comment may start anywhere outside quotes: before a key, after
		// a completed pair, or mid-line. Whatever has accumulated so far is
		// kept and finalized at the newline.
		p.state = stateComment
	}
}

func (p *parser) consumeQuote(q state) error {
	p.column++
	other := stateSingleQuote
	if q == stateSingleQuote {
		other = stateDoubleQuote
	}

	switch p.state {
	case other:
		// Inside the opposite quote kind the mark is literal.
		if q == stateSingleQuote {
			p.value.WriteRune('\'')
		} else {
			p.value.WriteRune('"')
		}
	case q:
		// Matching quote closes the value.
		p.state = stateAfterValue
	case stateComment:
		// discarded
	case stateKey:
		// Keys may never be quoted.
		return &UnexpectedTokenError{
			Expected: "key or assignment operator",
			Found:    quoteName(q),
			Line:     p.line,
			Column:   p.column,
		}
	case stateValue, stateAfterValue:
		if p.value.Len() > 0 {
			// Opening a quote after unquoted characters were already
			// written into the value is malformed.
			return &UnexpectedTokenError{
				Expected: "value, whitespace, newline, or comment",
				Found:    quoteName(q),
				Line:     p.line,
				Column:   p.column,
			}
		}
		p.state = q
	}
	return nil
}

func (p *parser) consumeNewline() error {
	if p.inQuote() {
		// A quoted value may span physical lines; the newline is part of
		// the value. The line counter deliberately stays on the opening
		// line so an unclosed quote is reported where it was opened.
		p.value.WriteRune('\n')
		return nil
	}
	if err := p.finalizeLine(); err != nil {
		return err
	}
	p.line++
	p.column = 0
	return nil
}

// finalizeLine commits or rejects whatever the current line accumulated,
// then resets the per-line state.
func (p *parser) finalizeLine() error {
	key, value := p.key.String(), p.value.String()

	switch {
	case key == "" && value == "" && !p.sawAssign:
		// Blank or comment-only line.
	case p.sawAssign && key == "":
		return &MissingKeyError{Line: p.line}
	case p.sawAssign && value == "":
		return &MissingValueError{Line: p.line}
	case key != "" && value == "" && !p.sawAssign:
		return &FoundOnlyKeyError{Line: p.line}
	case key == "":
		// A value with no key should be unreachable given the rules
		// above; rejected defensively.
		return &MissingKeyError{Line: p.line}
	default:
		p.result[key] = value
	}

	p.state = stateKey
	p.key.Reset()
	p.value.Reset()
	p.sawAssign = false
	return nil
}

// finish handles the end of input, which acts as a final implicit newline.
func (p *parser) finish() (Mapping, error) {
	if p.inQuote() {
		return nil, &UnclosedValueError{Line: p.line}
	}

	key, value := p.key.String(), p.value.String()
	switch {
	case key != "" && value != "":
		p.result[key] = value
	case key == "" && value != "":
		return nil, &MissingKeyError{Line: p.line}
	case key != "" && value == "":
		return nil, &MissingValueError{Line: p.line}
	}
	return p.result, nil
}

func quoteName(q state) string {
	if q == stateSingleQuote {
		return "single quote mark"
	}
	return "double quote mark"
}
