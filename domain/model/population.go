package model

import (
	"strconv"
	"strings"
)

// Population is the number of residents of one ZIP code.
type Population struct {
	ZipCode    string
	Population int
}

// PopulationFromRecord builds a Population from a header-keyed record.
func PopulationFromRecord(rec map[string]string) (Population, error) {
	zip, err := column(rec, ColumnZipCode)
	if err != nil {
		return Population{}, err
	}
	raw, err := column(rec, ColumnPopulation)
	if err != nil {
		return Population{}, err
	}

	zip = strings.TrimSpace(zip)
	if !IsZipCode(zip) {
		return Population{}, ErrInvalidZipCode
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return Population{}, ErrInvalidPopulation
	}
	return Population{ZipCode: zip, Population: n}, nil
}
