package csvreader

import (
	"errors"
	"fmt"
)

// Predefined errors. A *ParseError wraps one of them, so callers can match
// the kind of failure with errors.Is.
var (
	// ErrUnescapedQuote is returned when a raw quote appears inside an unquoted field
	ErrUnescapedQuote = errors.New("csvreader: unescaped quote in unquoted field")

	// ErrUnexpectedAfterQuote is returned when a non-whitespace character follows a closing quote
	ErrUnexpectedAfterQuote = errors.New("csvreader: unexpected character after quoted field")

	// ErrUnterminatedQuote is returned when the stream ends inside a quoted field
	ErrUnterminatedQuote = errors.New("csvreader: unterminated quoted field")

	// ErrDanglingCR is returned when a carriage return outside quotes is not followed by a line feed
	ErrDanglingCR = errors.New("csvreader: carriage return not followed by line feed")

	// ErrMissingHeader is returned when the stream is empty where the header is expected
	ErrMissingHeader = errors.New("csvreader: missing header")

	// ErrFieldCount is returned when a data row and the header differ in length
	ErrFieldCount = errors.New("csvreader: row length does not match header")
)

// ParseError reports malformed input together with the 1-based line on which
// it was detected. Expected and Got are only set for ErrFieldCount.
type ParseError struct {
	Line     int
	Expected int
	Got      int
	Err      error
}

// Error returns a formatted error message with position information.
func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrFieldCount) {
		return fmt.Sprintf("line %d: %v: expected %d fields, got %d", e.Line, e.Err, e.Expected, e.Got)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(line int, err error) *ParseError {
	return &ParseError{Line: line, Err: err}
}
