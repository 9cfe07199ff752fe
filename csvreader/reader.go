package csvreader

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Record maps header names to the field values of one data row.
type Record map[string]string

// Reader reads header-keyed records. The first row of the stream is the
// header; every following row must have the same number of fields.
type Reader struct {
	src    io.Reader
	tok    *Tokenizer
	header []string
}

// NewReader creates a Reader and reads the header row from r.
// An empty stream yields ErrMissingHeader. The Reader takes ownership of r:
// Close closes it when it implements io.Closer.
func NewReader(r io.Reader) (*Reader, error) {
	tok := NewTokenizer(r)
	header, err := tok.NextRow()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrMissingHeader
		}
		return nil, err
	}
	return &Reader{
		src:    r,
		tok:    tok,
		header: header,
	}, nil
}

// Open opens the file at path and creates a Reader on it.
// The file is closed if the header cannot be read.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path) //nolint:gosec // reading user-provided data files is the purpose of this package
	if err != nil {
		return nil, fmt.Errorf("csvreader: %w", err)
	}
	r, err := NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return r, nil
}

// Header returns a copy of the header row.
func (r *Reader) Header() []string {
	h := make([]string, len(r.header))
	copy(h, r.header)
	return h
}

// Line returns the line on which the most recently read row started.
func (r *Reader) Line() int {
	return r.tok.RowLine()
}

// NextRow reads the next data row as positional fields. It returns io.EOF at
// the end of the stream, and a *ParseError wrapping ErrFieldCount when the
// row and the header differ in length.
func (r *Reader) NextRow() ([]string, error) {
	row, err := r.tok.NextRow()
	if err != nil {
		return nil, err
	}
	if len(row) != len(r.header) {
		return nil, &ParseError{
			Line:     r.tok.RowLine(),
			Expected: len(r.header),
			Got:      len(row),
			Err:      ErrFieldCount,
		}
	}
	return row, nil
}

// NextRecord reads the next data row and keys its fields by header name.
// When the header repeats a name, the value of the last such column wins.
func (r *Reader) NextRecord() (Record, error) {
	row, err := r.NextRow()
	if err != nil {
		return nil, err
	}
	rec := make(Record, len(r.header))
	for i, name := range r.header {
		rec[name] = row[i]
	}
	return rec, nil
}

// Close releases the underlying source.
func (r *Reader) Close() error {
	if c, ok := r.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
