package zipstat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/nao1215/zipstat/csvreader"
	"github.com/nao1215/zipstat/domain/model"
)

// ReadPopulations loads population records from a CSV or XLSX file.
// Records with a malformed ZIP code or population are skipped and logged.
func ReadPopulations(ctx context.Context, path string, logger Logger) ([]model.Population, error) {
	return readRecords(ctx, path, logger, model.PopulationFromRecord)
}

// ReadVaccinations loads COVID reports from a CSV, XLSX or JSON file.
// Records with a malformed ZIP code or timestamp are skipped and logged.
func ReadVaccinations(ctx context.Context, path string, logger Logger) ([]model.Vaccination, error) {
	if model.NewFile(path).Type() == model.FileTypeJSON {
		return readVaccinationsJSON(ctx, path, logger)
	}
	return readRecords(ctx, path, logger, model.VaccinationFromRecord)
}

// ReadProperties loads property assessments from a CSV or XLSX file.
// Records without a usable ZIP code are skipped and logged.
func ReadProperties(ctx context.Context, path string, logger Logger) ([]model.Property, error) {
	return readRecords(ctx, path, logger, model.PropertyFromRecord)
}

// readRecords converts every record of a RecordSource. A format error in the
// file aborts the read; a record that fails conversion is skipped.
func readRecords[T any](ctx context.Context, path string, logger Logger, convert func(map[string]string) (T, error)) ([]T, error) {
	if logger == nil {
		logger = NopLogger()
	}

	src, err := OpenRecordSource(path)
	if err != nil {
		return nil, NewErrorContext("read", path).Error(err)
	}
	defer func() {
		_ = src.Close() // Ignore close error
	}()

	var (
		out     []T
		skipped int
	)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rec, err := src.NextRecord()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			logger.Error("failed to read input", "file", path, "error", err)
			return nil, NewErrorContext("read", path).Error(err)
		}

		v, err := convert(rec)
		if err != nil {
			skipped++
			logger.Warn("skipping record", "file", path, "line", src.Line(), "error", err)
			continue
		}
		out = append(out, v)
	}

	logger.Info("loaded file", "file", path, "records", len(out), "skipped", skipped)
	return out, nil
}

// readVaccinationsJSON loads a JSON array of report objects. Values are
// converted to their textual form and validated like CSV fields.
func readVaccinationsJSON(ctx context.Context, path string, logger Logger) ([]model.Vaccination, error) {
	if logger == nil {
		logger = NopLogger()
	}

	reader, cleanup, err := NewCompressionFactory().CreateReaderForFile(path)
	if err != nil {
		return nil, NewErrorContext("read", path).Error(err)
	}
	defer func() {
		_ = cleanup() // Ignore close error
	}()

	var objects []map[string]any
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	if err := decoder.Decode(&objects); err != nil {
		logger.Error("failed to decode json", "file", path, "error", err)
		return nil, NewErrorContext("read", path).Error(fmt.Errorf("%w: %w", ErrInvalidJSON, err))
	}

	var (
		out     []model.Vaccination
		skipped int
	)
	for i, obj := range objects {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		v, err := model.VaccinationFromRecord(jsonRecord(obj))
		if err != nil {
			skipped++
			logger.Warn("skipping record", "file", path, "index", i, "error", err)
			continue
		}
		out = append(out, v)
	}

	logger.Info("loaded file", "file", path, "records", len(out), "skipped", skipped)
	return out, nil
}

// jsonRecord flattens a decoded JSON object into a header-keyed record.
// Null members are treated as absent values.
func jsonRecord(obj map[string]any) csvreader.Record {
	rec := make(csvreader.Record, len(obj))
	for key, value := range obj {
		switch v := value.(type) {
		case nil:
			rec[key] = ""
		case string:
			rec[key] = v
		case json.Number:
			rec[key] = v.String()
		case bool:
			rec[key] = strconv.FormatBool(v)
		case float64:
			rec[key] = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			rec[key] = fmt.Sprint(v)
		}
	}
	return rec
}
