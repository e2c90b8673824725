package dotenv

import "fmt"

// Parse errors form a closed set of failure kinds, each carrying the
// 1-based line (and, where meaningful, column) of the offending token.
// They are intended to be matched programmatically with errors.As, not
// just displayed.

// UnexpectedTokenError reports a token that is illegal in the parser's
// current position, such as whitespace before a key or text after a
// closed quote.
type UnexpectedTokenError struct {
	Expected string
	Found    string
	Line     int
	Column   int
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected token: expected %s but found '%s' at line %d, character %d",
		e.Expected, e.Found, e.Line, e.Column)
}

// MissingAssignmentError reports a key that is not followed by an '='.
// Reserved: the current grammar surfaces this condition as FoundOnlyKeyError
// at the end of the line instead, but the kind is kept so callers matching
// on it stay source-compatible if the parser ever reports it earlier.
type MissingAssignmentError struct {
	Key    string
	Line   int
	Column int
}

func (e *MissingAssignmentError) Error() string {
	return fmt.Sprintf("missing assignment operator for key '%s' on line %d, character %d",
		e.Key, e.Line, e.Column)
}

// ExpectedValueFoundAssignmentError reports an '=' where a value was
// expected, e.g. "KEY==" or a second '=' inside an unquoted value.
type ExpectedValueFoundAssignmentError struct {
	Line   int
	Column int
}

func (e *ExpectedValueFoundAssignmentError) Error() string {
	return fmt.Sprintf("expected value but found assignment operator at line %d, character %d",
		e.Line, e.Column)
}

// MissingKeyError reports a line that has an assignment or value but no key.
type MissingKeyError struct {
	Line int
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("key missing on line %d", e.Line)
}

// MissingValueError reports a line that has a key and assignment but no
// value. An explicitly empty quoted value (KEY='') also reports this.
type MissingValueError struct {
	Line int
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("value missing on line %d", e.Line)
}

// FoundOnlyKeyError reports a line holding a bare key with no assignment.
type FoundOnlyKeyError struct {
	Line int
}

func (e *FoundOnlyKeyError) Error() string {
	return fmt.Sprintf("only found key on line %d, expected assignment operator and value", e.Line)
}

// UnclosedValueError reports a quoted value that is still open when the
// input ends. Line is the line the quote was opened on, not the line of
// the end of input.
type UnclosedValueError struct {
	Line int
}

func (e *UnclosedValueError) Error() string {
	return fmt.Sprintf("key or value was not closed from line %d", e.Line)
}
