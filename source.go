package zipstat

import (
	"fmt"
	"io"

	"github.com/nao1215/zipstat/csvreader"
	"github.com/nao1215/zipstat/domain/model"
	"github.com/xuri/excelize/v2"
)

// RecordSource yields header-keyed records from one input file.
// *csvreader.Reader satisfies it for CSV input.
type RecordSource interface {
	// Header returns the column names.
	Header() []string
	// NextRecord returns the next record, or io.EOF after the last one.
	NextRecord() (csvreader.Record, error)
	// Line returns the line (or sheet row) of the most recently read record.
	Line() int
	// Close releases the underlying file.
	Close() error
}

// OpenRecordSource opens a CSV or XLSX file, decompressing it when the path
// carries a compression suffix.
func OpenRecordSource(path string) (RecordSource, error) {
	file := model.NewFile(path)
	switch file.Type() {
	case model.FileTypeCSV, model.FileTypeXLSX:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	reader, cleanup, err := NewCompressionFactory().CreateReaderForFile(path)
	if err != nil {
		return nil, err
	}

	if file.Type() == model.FileTypeXLSX {
		// excelize loads the whole workbook, so the file can be released right away
		src, err := newXLSXSource(reader)
		closeErr := cleanup()
		if err != nil {
			return nil, err
		}
		if closeErr != nil {
			return nil, closeErr
		}
		return src, nil
	}

	r, err := csvreader.NewReader(reader)
	if err != nil {
		_ = cleanup()
		return nil, err
	}
	return &csvSource{Reader: r, cleanup: cleanup}, nil
}

// csvSource is a csvreader.Reader whose Close also releases the decompressor
// and the file beneath it.
type csvSource struct {
	*csvreader.Reader
	cleanup func() error
}

// Close releases the decompressor and the file.
func (s *csvSource) Close() error {
	return s.cleanup()
}

// xlsxSource serves records from the first sheet of a workbook. Spreadsheet
// rows drop trailing empty cells, so short rows are padded; rows longer than
// the header are rejected like malformed CSV rows.
type xlsxSource struct {
	header []string
	rows   [][]string
	next   int
}

func newXLSXSource(r io.Reader) (*xlsxSource, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() {
		_ = workbook.Close() // Ignore close error
	}()

	sheetNames := workbook.GetSheetList()
	if len(sheetNames) == 0 {
		return nil, ErrEmptySheet
	}
	rows, err := workbook.GetRows(sheetNames[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheetNames[0], err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, csvreader.ErrMissingHeader
	}

	return &xlsxSource{header: rows[0], rows: rows[1:]}, nil
}

// Header returns a copy of the header row.
func (s *xlsxSource) Header() []string {
	h := make([]string, len(s.header))
	copy(h, s.header)
	return h
}

// Line returns the sheet row of the most recently read record.
func (s *xlsxSource) Line() int {
	return s.next + 1
}

// NextRecord returns the next non-empty row keyed by header name.
func (s *xlsxSource) NextRecord() (csvreader.Record, error) {
	for s.next < len(s.rows) {
		row := s.rows[s.next]
		s.next++
		if len(row) == 0 {
			continue
		}
		if len(row) > len(s.header) {
			return nil, &csvreader.ParseError{
				Line:     s.Line(),
				Expected: len(s.header),
				Got:      len(row),
				Err:      csvreader.ErrFieldCount,
			}
		}

		rec := make(csvreader.Record, len(s.header))
		for i, name := range s.header {
			if i < len(row) {
				rec[name] = row[i]
			} else {
				rec[name] = "" // Pad with empty string if row is shorter
			}
		}
		return rec, nil
	}
	return nil, io.EOF
}

// Close is a no-op; the workbook was released when the source was opened.
func (s *xlsxSource) Close() error {
	return nil
}
