package model

import "math"

// Property is one assessed property. An unknown measure is NaN.
type Property struct {
	ZipCode          string
	MarketValue      float64
	TotalLivableArea float64
}

// HasMarketValue reports whether the market value is known.
func (p Property) HasMarketValue() bool {
	return !math.IsNaN(p.MarketValue)
}

// HasLivableArea reports whether the total livable area is known.
func (p Property) HasLivableArea() bool {
	return !math.IsNaN(p.TotalLivableArea)
}

// PropertyFromRecord builds a Property from a header-keyed record.
func PropertyFromRecord(rec map[string]string) (Property, error) {
	rawZip, err := column(rec, ColumnZipCode)
	if err != nil {
		return Property{}, err
	}
	zip, err := PropertyZipCode(rawZip)
	if err != nil {
		return Property{}, err
	}
	value, err := column(rec, ColumnMarketValue)
	if err != nil {
		return Property{}, err
	}
	area, err := column(rec, ColumnTotalLivableArea)
	if err != nil {
		return Property{}, err
	}

	return Property{
		ZipCode:          zip,
		MarketValue:      ParseMeasure(value),
		TotalLivableArea: ParseMeasure(area),
	}, nil
}
