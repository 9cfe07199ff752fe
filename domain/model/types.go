package model

import "math"

// ColumnType represents the SQL column type
type ColumnType int

const (
	// ColumnTypeText represents TEXT column type
	ColumnTypeText ColumnType = iota
	// ColumnTypeInteger represents INTEGER column type
	ColumnTypeInteger
	// ColumnTypeReal represents REAL column type
	ColumnTypeReal
	// ColumnTypeDatetime represents datetime stored as TEXT in ISO8601 format
	ColumnTypeDatetime
)

const (
	sqlTypeText    = "TEXT"
	sqlTypeInteger = "INTEGER"
	sqlTypeReal    = "REAL"
)

// String returns the SQL column type string
func (ct ColumnType) String() string {
	switch ct {
	case ColumnTypeInteger:
		return sqlTypeInteger
	case ColumnTypeReal:
		return sqlTypeReal
	case ColumnTypeText, ColumnTypeDatetime:
		return sqlTypeText // SQLite stores datetime as TEXT in ISO8601 format
	default:
		return sqlTypeText
	}
}

// ColumnInfo represents a column with name and type
type ColumnInfo struct {
	Name string
	Type ColumnType
}

// Schema describes the SQL table a dataset is stored in.
type Schema struct {
	Table   string
	Columns []ColumnInfo
}

// PopulationSchema is the table layout of population records.
var PopulationSchema = Schema{
	Table: "population",
	Columns: []ColumnInfo{
		{Name: ColumnZipCode, Type: ColumnTypeText},
		{Name: ColumnPopulation, Type: ColumnTypeInteger},
	},
}

// VaccinationSchema is the table layout of vaccination records.
var VaccinationSchema = Schema{
	Table: "vaccination",
	Columns: []ColumnInfo{
		{Name: ColumnZipCode, Type: ColumnTypeText},
		{Name: "negative", Type: ColumnTypeInteger},
		{Name: "positive", Type: ColumnTypeInteger},
		{Name: ColumnDeaths, Type: ColumnTypeInteger},
		{Name: ColumnHospitalized, Type: ColumnTypeInteger},
		{Name: ColumnPartiallyVaccinated, Type: ColumnTypeInteger},
		{Name: ColumnFullyVaccinated, Type: ColumnTypeInteger},
		{Name: ColumnBoosted, Type: ColumnTypeInteger},
		{Name: ColumnTimestamp, Type: ColumnTypeDatetime},
	},
}

// PropertySchema is the table layout of property records.
var PropertySchema = Schema{
	Table: "property",
	Columns: []ColumnInfo{
		{Name: ColumnZipCode, Type: ColumnTypeText},
		{Name: ColumnMarketValue, Type: ColumnTypeReal},
		{Name: ColumnTotalLivableArea, Type: ColumnTypeReal},
	},
}

// Values returns the column values of p in PopulationSchema order.
func (p Population) Values() []any {
	return []any{p.ZipCode, p.Population}
}

// Values returns the column values of v in VaccinationSchema order.
func (v Vaccination) Values() []any {
	return []any{
		v.ZipCode, v.Negative, v.Positive, v.Deaths, v.Hospitalized,
		v.PartiallyVaccinated, v.FullyVaccinated, v.Boosted,
		v.Timestamp.Format(TimestampLayout),
	}
}

// Values returns the column values of p in PropertySchema order. Unknown
// measures are stored as NULL.
func (p Property) Values() []any {
	return []any{p.ZipCode, nullableMeasure(p.MarketValue), nullableMeasure(p.TotalLivableArea)}
}

func nullableMeasure(v float64) any {
	if math.IsNaN(v) {
		return nil
	}
	return v
}
