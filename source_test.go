package zipstat

import (
	"errors"
	"io"
	"testing"

	"github.com/nao1215/zipstat/csvreader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, src RecordSource) []csvreader.Record {
	t.Helper()
	var out []csvreader.Record
	for {
		rec, err := src.NextRecord()
		if errors.Is(err, io.EOF) {
			return out
		}
		require.NoError(t, err)
		out = append(out, rec)
	}
}

func TestOpenRecordSource_CSV(t *testing.T) {
	t.Parallel()

	content := []byte("zip_code,population\n19104,51808\n19103,24316\n")
	want := []csvreader.Record{
		{"zip_code": "19104", "population": "51808"},
		{"zip_code": "19103", "population": "24316"},
	}

	tests := []struct {
		name string
		file string
		data []byte
	}{
		{"plain", "population.csv", content},
		{"gzip", "population.csv.gz", gzipBytes(t, content)},
		{"xz", "population.csv.xz", xzBytes(t, content)},
		{"zstd", "population.csv.zst", zstdBytes(t, content)},
		{"lz4", "population.csv.lz4", lz4Bytes(t, content)},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src, err := OpenRecordSource(writeFile(t, tt.file, tt.data))
			require.NoError(t, err)
			defer func() {
				assert.NoError(t, src.Close())
			}()

			assert.Equal(t, []string{"zip_code", "population"}, src.Header())
			assert.Equal(t, want, readAll(t, src))
		})
	}
}

func TestOpenRecordSource_Errors(t *testing.T) {
	t.Parallel()

	t.Run("unsupported extension", func(t *testing.T) {
		t.Parallel()
		_, err := OpenRecordSource(writeFile(t, "population.txt", []byte("a\n")))
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("json is not a record source", func(t *testing.T) {
		t.Parallel()
		_, err := OpenRecordSource(writeFile(t, "covid.json", []byte("[]")))
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("empty csv", func(t *testing.T) {
		t.Parallel()
		_, err := OpenRecordSource(writeFile(t, "population.csv", nil))
		assert.ErrorIs(t, err, csvreader.ErrMissingHeader)
	})

	t.Run("field count mismatch", func(t *testing.T) {
		t.Parallel()
		src, err := OpenRecordSource(writeFile(t, "population.csv", []byte("a,b\n1,2,3\n")))
		require.NoError(t, err)
		defer src.Close() //nolint:errcheck

		_, err = src.NextRecord()
		var perr *csvreader.ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, 2, perr.Line)
		assert.ErrorIs(t, err, csvreader.ErrFieldCount)
	})
}

func TestOpenRecordSource_XLSX(t *testing.T) {
	t.Parallel()

	t.Run("rows keyed by header", func(t *testing.T) {
		t.Parallel()

		path := writeXLSX(t, "population.xlsx", [][]any{
			{"zip_code", "population"},
			{"19104", "51808"},
			{},
			{"19103"},
		})
		src, err := OpenRecordSource(path)
		require.NoError(t, err)
		defer src.Close() //nolint:errcheck

		assert.Equal(t, []string{"zip_code", "population"}, src.Header())
		assert.Equal(t, []csvreader.Record{
			{"zip_code": "19104", "population": "51808"},
			{"zip_code": "19103", "population": ""},
		}, readAll(t, src))
	})

	t.Run("long row", func(t *testing.T) {
		t.Parallel()

		path := writeXLSX(t, "population.xlsx", [][]any{
			{"zip_code", "population"},
			{"19104", "51808", "extra"},
		})
		src, err := OpenRecordSource(path)
		require.NoError(t, err)
		defer src.Close() //nolint:errcheck

		_, err = src.NextRecord()
		var perr *csvreader.ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, 2, perr.Line)
		assert.Equal(t, 2, perr.Expected)
		assert.Equal(t, 3, perr.Got)
	})

	t.Run("empty workbook", func(t *testing.T) {
		t.Parallel()

		path := writeXLSX(t, "population.xlsx", nil)
		_, err := OpenRecordSource(path)
		assert.ErrorIs(t, err, csvreader.ErrMissingHeader)
	})

	t.Run("not a workbook", func(t *testing.T) {
		t.Parallel()

		_, err := OpenRecordSource(writeFile(t, "population.xlsx", []byte("zip_code\n")))
		assert.Error(t, err)
	})
}
