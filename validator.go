package zipstat

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/nao1215/zipstat/domain/model"
)

// validator checks builder inputs before any file is read.
type validator struct{}

// newValidator creates a new validator instance
func newValidator() *validator {
	return &validator{}
}

// allowedTypes returns the file types a dataset may be read from.
func (v *validator) allowedTypes(kind DatasetKind) []model.FileType {
	if kind == DatasetVaccination {
		return []model.FileType{model.FileTypeCSV, model.FileTypeJSON, model.FileTypeXLSX}
	}
	return []model.FileType{model.FileTypeCSV, model.FileTypeXLSX}
}

// validatePath validates the input file of one dataset.
func (v *validator) validatePath(kind DatasetKind, path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("path cannot be empty")
	}

	fileType := model.NewFile(path).Type()
	if !slices.Contains(v.allowedTypes(kind), fileType) {
		return fmt.Errorf("%w for %s data: %s", ErrUnsupportedFormat, kind, path)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("failed to load file: path does not exist: %s", path)
		}
		return fmt.Errorf("failed to stat path %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("path is a directory: %s", path)
	}
	return nil
}

// validateInputsAvailable checks that at least one dataset was configured.
func (v *validator) validateInputsAvailable(paths map[DatasetKind]string) error {
	if len(paths) == 0 {
		return ErrNoInput
	}
	return nil
}
