package csvreader

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trackingCloser records whether Close was called.
type trackingCloser struct {
	io.Reader
	closed bool
}

func (c *trackingCloser) Close() error {
	c.closed = true
	return nil
}

func TestNewReader(t *testing.T) {
	t.Parallel()

	t.Run("Header is read eagerly", func(t *testing.T) {
		t.Parallel()

		r, err := NewReader(strings.NewReader("id,name\n1,\"Smith, John\"\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"id", "name"}, r.Header())

		rec, err := r.NextRecord()
		require.NoError(t, err)
		assert.Equal(t, Record{"id": "1", "name": "Smith, John"}, rec)

		_, err = r.NextRecord()
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("Empty input", func(t *testing.T) {
		t.Parallel()

		_, err := NewReader(strings.NewReader(""))
		assert.ErrorIs(t, err, ErrMissingHeader)
	})

	t.Run("Blank lines only", func(t *testing.T) {
		t.Parallel()

		_, err := NewReader(strings.NewReader("\n\r\n"))
		assert.ErrorIs(t, err, ErrMissingHeader)
	})

	t.Run("Malformed header", func(t *testing.T) {
		t.Parallel()

		_, err := NewReader(strings.NewReader("a,\"b\n"))
		assert.ErrorIs(t, err, ErrUnterminatedQuote)
	})

	t.Run("Header-only input", func(t *testing.T) {
		t.Parallel()

		r, err := NewReader(strings.NewReader("a,b\n"))
		require.NoError(t, err)
		_, err = r.NextRecord()
		assert.ErrorIs(t, err, io.EOF)
	})
}

func TestReader_Header(t *testing.T) {
	t.Parallel()

	r, err := NewReader(strings.NewReader("a,b\n1,2\n"))
	require.NoError(t, err)

	h := r.Header()
	h[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, r.Header())
}

func TestReader_NextRecord(t *testing.T) {
	t.Parallel()

	t.Run("Row length mismatch", func(t *testing.T) {
		t.Parallel()

		r, err := NewReader(strings.NewReader("a,b\n1,2,3\n"))
		require.NoError(t, err)

		_, err = r.NextRecord()
		require.ErrorIs(t, err, ErrFieldCount)

		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, 2, parseErr.Line)
		assert.Equal(t, 2, parseErr.Expected)
		assert.Equal(t, 3, parseErr.Got)
	})

	t.Run("Short row", func(t *testing.T) {
		t.Parallel()

		r, err := NewReader(strings.NewReader("a,b,c\n1,2,3\n\n4\n"))
		require.NoError(t, err)

		_, err = r.NextRecord()
		require.NoError(t, err)

		_, err = r.NextRecord()
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, 4, parseErr.Line)
		assert.Equal(t, 3, parseErr.Expected)
		assert.Equal(t, 1, parseErr.Got)
	})

	t.Run("Duplicate header names keep the last column", func(t *testing.T) {
		t.Parallel()

		r, err := NewReader(strings.NewReader("k,k,v\n1,2,3\n"))
		require.NoError(t, err)

		rec, err := r.NextRecord()
		require.NoError(t, err)
		assert.Equal(t, Record{"k": "2", "v": "3"}, rec)
	})

	t.Run("Unterminated quote reports its line", func(t *testing.T) {
		t.Parallel()

		r, err := NewReader(strings.NewReader("id,val\n1,\"abc"))
		require.NoError(t, err)

		_, err = r.NextRecord()
		require.ErrorIs(t, err, ErrUnterminatedQuote)

		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, 2, parseErr.Line)
	})

	t.Run("End of stream is idempotent", func(t *testing.T) {
		t.Parallel()

		r, err := NewReader(strings.NewReader("a\r\n1\r\n\r\n"))
		require.NoError(t, err)

		rec, err := r.NextRecord()
		require.NoError(t, err)
		assert.Equal(t, Record{"a": "1"}, rec)

		for i := 0; i < 3; i++ {
			rec, err = r.NextRecord()
			assert.Nil(t, rec)
			assert.ErrorIs(t, err, io.EOF)
		}
	})
}

func TestReader_NextRow(t *testing.T) {
	t.Parallel()

	r, err := NewReader(strings.NewReader("x,y\n\" 1 \",2\n"))
	require.NoError(t, err)

	row, err := r.NextRow()
	require.NoError(t, err)
	assert.Equal(t, []string{" 1 ", "2"}, row)
	assert.Equal(t, 2, r.Line())
}

func TestReader_Close(t *testing.T) {
	t.Parallel()

	t.Run("Closes the source", func(t *testing.T) {
		t.Parallel()

		src := &trackingCloser{Reader: strings.NewReader("a\n1\n")}
		r, err := NewReader(src)
		require.NoError(t, err)
		require.NoError(t, r.Close())
		assert.True(t, src.closed)
	})

	t.Run("Plain reader", func(t *testing.T) {
		t.Parallel()

		r, err := NewReader(strings.NewReader("a\n"))
		require.NoError(t, err)
		assert.NoError(t, r.Close())
	})
}

func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("Existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "population.csv")
		require.NoError(t, os.WriteFile(path, []byte("zip_code,population\r\n19103,24006\r\n"), 0o600))

		r, err := Open(path)
		require.NoError(t, err)
		defer r.Close()

		rec, err := r.NextRecord()
		require.NoError(t, err)
		assert.Equal(t, Record{"zip_code": "19103", "population": "24006"}, rec)
	})

	t.Run("Missing file", func(t *testing.T) {
		t.Parallel()

		_, err := Open(filepath.Join(t.TempDir(), "missing.csv"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("Empty file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "empty.csv")
		require.NoError(t, os.WriteFile(path, nil, 0o600))

		_, err := Open(path)
		assert.ErrorIs(t, err, ErrMissingHeader)
	})
}
