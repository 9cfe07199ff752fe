package csvreader

import (
	"bufio"
	"errors"
	"io"
)

// state is the position of the tokenizer inside the row being read.
type state int

const (
	// stateStartField is at the first character of a new field
	stateStartField state = iota
	// stateUnquotedField is inside a field that did not open with a quote
	stateUnquotedField
	// stateQuotedField is inside a field that opened with a quote
	stateQuotedField
	// stateEndQuotedField has just seen a quote inside a quoted field; the next
	// character decides between a closing quote and an escaped one
	stateEndQuotedField
	// stateAfterLoneCR has seen a carriage return outside quotes and waits for
	// the line feed that completes the terminator
	stateAfterLoneCR
)

// String returns the name of the state.
func (s state) String() string {
	switch s {
	case stateStartField:
		return "start-field"
	case stateUnquotedField:
		return "unquoted-field"
	case stateQuotedField:
		return "quoted-field"
	case stateEndQuotedField:
		return "end-quoted-field"
	case stateAfterLoneCR:
		return "after-lone-cr"
	default:
		return "unknown"
	}
}

// Tokenizer splits a character stream into rows of fields.
//
// Delimiters, quotes and terminators are all ASCII, so the stream is consumed
// byte by byte and multi-byte UTF-8 sequences pass through untouched.
// The zero value is not usable; create one with NewTokenizer.
type Tokenizer struct {
	r     *bufio.Reader
	state state
	// line is the 1-based line counter, advanced once per consumed terminator
	line int
	// rowLine is the line on which the row being read (or last returned) started
	rowLine int
	row     []string
	field   []byte
	eof     bool
	err     error
}

// NewTokenizer creates a tokenizer reading from r.
func NewTokenizer(r io.Reader) *Tokenizer {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Tokenizer{
		r:       br,
		state:   stateStartField,
		line:    1,
		rowLine: 1,
	}
}

// Line returns the current 1-based line counter.
func (t *Tokenizer) Line() int {
	return t.line
}

// RowLine returns the line on which the most recently returned row started.
func (t *Tokenizer) RowLine() int {
	return t.rowLine
}

// NextRow reads one row. It returns io.EOF when the stream is exhausted and
// keeps returning io.EOF afterwards. Malformed input yields a *ParseError;
// once an error has been returned, every later call returns the same error.
func (t *Tokenizer) NextRow() ([]string, error) {
	if t.err != nil {
		return nil, t.err
	}
	if t.eof {
		return nil, io.EOF
	}

	t.row = nil
	t.field = t.field[:0]
	t.rowLine = t.line

	for {
		c, err := t.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return t.finish()
			}
			return nil, t.fail(err)
		}

		switch t.state {
		case stateStartField:
			switch c {
			case '"':
				t.state = stateQuotedField
			case ',':
				t.emitField()
			case '\n', '\r':
				if t.pending() {
					return t.endRow(c), nil
				}
				t.skipBlankLine(c)
			case ' ', '\t':
				t.field = append(t.field, c)
			default:
				t.field = append(t.field, c)
				t.state = stateUnquotedField
			}

		case stateUnquotedField:
			switch c {
			case ',':
				t.emitField()
				t.state = stateStartField
			case '"':
				return nil, t.fail(newParseError(t.line, ErrUnescapedQuote))
			case '\n', '\r':
				return t.endRow(c), nil
			default:
				t.field = append(t.field, c)
			}

		case stateQuotedField:
			if c == '"' {
				t.state = stateEndQuotedField
			} else {
				t.field = append(t.field, c)
			}

		case stateEndQuotedField:
			switch c {
			case '"':
				t.field = append(t.field, '"')
				t.state = stateQuotedField
			case ',':
				t.emitField()
				t.state = stateStartField
			case '\n', '\r':
				return t.endRow(c), nil
			case ' ', '\t':
				// padding after the closing quote
			default:
				return nil, t.fail(newParseError(t.line, ErrUnexpectedAfterQuote))
			}

		case stateAfterLoneCR:
			if c != '\n' {
				return nil, t.fail(newParseError(t.line, ErrDanglingCR))
			}
			t.line++
			t.rowLine = t.line
			t.state = stateStartField
		}
	}
}

// finish resolves the pending state once the source is exhausted.
func (t *Tokenizer) finish() ([]string, error) {
	t.eof = true

	switch t.state {
	case stateQuotedField:
		return nil, t.fail(newParseError(t.line, ErrUnterminatedQuote))
	case stateAfterLoneCR:
		return nil, t.fail(newParseError(t.line, ErrDanglingCR))
	case stateEndQuotedField:
		t.emitField()
	default:
		if !t.pending() {
			return nil, io.EOF
		}
		t.emitField()
	}

	row := t.row
	t.row = nil
	t.state = stateStartField
	return row, nil
}

// pending reports whether anything has been accumulated for the current row.
func (t *Tokenizer) pending() bool {
	return len(t.row) > 0 || len(t.field) > 0
}

// emitField appends the field being built to the row and starts a new one.
func (t *Tokenizer) emitField() {
	t.row = append(t.row, string(t.field))
	t.field = t.field[:0]
}

// endRow completes the row on terminator c. A line feed ends the terminator
// here; a carriage return leaves the tokenizer waiting for its line feed.
func (t *Tokenizer) endRow(c byte) []string {
	t.emitField()
	row := t.row
	t.row = nil
	if c == '\n' {
		t.line++
		t.state = stateStartField
	} else {
		t.state = stateAfterLoneCR
	}
	return row
}

// skipBlankLine consumes a terminator that ends an empty line.
func (t *Tokenizer) skipBlankLine(c byte) {
	if c == '\n' {
		t.line++
		t.rowLine = t.line
		return
	}
	t.state = stateAfterLoneCR
}

// fail records err so that later calls report it again.
func (t *Tokenizer) fail(err error) error {
	t.err = err
	return err
}
