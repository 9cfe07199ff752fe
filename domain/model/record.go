package model

import "fmt"

// Column names used by the input files.
const (
	ColumnZipCode             = "zip_code"
	ColumnPopulation          = "population"
	ColumnNegative            = "NEG"
	ColumnPositive            = "POS"
	ColumnDeaths              = "deaths"
	ColumnHospitalized        = "hospitalized"
	ColumnPartiallyVaccinated = "partially_vaccinated"
	ColumnFullyVaccinated     = "fully_vaccinated"
	ColumnBoosted             = "boosted"
	ColumnTimestamp           = "etl_timestamp"
	ColumnMarketValue         = "market_value"
	ColumnTotalLivableArea    = "total_livable_area"
)

// column returns the value of name in rec.
func column(rec map[string]string, name string) (string, error) {
	v, ok := rec[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingColumn, name)
	}
	return v, nil
}
