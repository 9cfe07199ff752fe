package model

import (
	"strings"
	"time"
)

// VaccinationKind selects which vaccination count a query is about.
type VaccinationKind int

const (
	// VaccinationPartial counts people with a first dose only
	VaccinationPartial VaccinationKind = iota
	// VaccinationFull counts people with a completed series
	VaccinationFull
)

// String returns the string representation of VaccinationKind.
func (k VaccinationKind) String() string {
	switch k {
	case VaccinationPartial:
		return "partial"
	case VaccinationFull:
		return "full"
	default:
		return "unknown"
	}
}

// ParseVaccinationKind parses "partial" or "full", ignoring case and
// surrounding whitespace.
func ParseVaccinationKind(s string) (VaccinationKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "partial":
		return VaccinationPartial, nil
	case "full":
		return VaccinationFull, nil
	default:
		return 0, ErrUnknownVaccinationKind
	}
}

// Vaccination is one COVID report for a ZIP code.
type Vaccination struct {
	ZipCode             string
	Negative            int
	Positive            int
	Deaths              int
	Hospitalized        int
	PartiallyVaccinated int
	FullyVaccinated     int
	Boosted             int
	Timestamp           time.Time
}

// Count returns the vaccination count of the given kind.
func (v Vaccination) Count(kind VaccinationKind) int {
	if kind == VaccinationFull {
		return v.FullyVaccinated
	}
	return v.PartiallyVaccinated
}

// Date returns the report date in "YYYY-MM-DD" form.
func (v Vaccination) Date() string {
	return v.Timestamp.Format(DateLayout)
}

// VaccinationFromRecord builds a Vaccination from a header-keyed record.
// Missing or malformed counts are zero; the ZIP code and timestamp are required.
func VaccinationFromRecord(rec map[string]string) (Vaccination, error) {
	zip, err := column(rec, ColumnZipCode)
	if err != nil {
		return Vaccination{}, err
	}
	zip = strings.TrimSpace(zip)
	if !IsZipCode(zip) {
		return Vaccination{}, ErrInvalidZipCode
	}

	raw, err := column(rec, ColumnTimestamp)
	if err != nil {
		return Vaccination{}, err
	}
	ts, err := ParseTimestamp(raw)
	if err != nil {
		return Vaccination{}, err
	}

	return Vaccination{
		ZipCode:             zip,
		Negative:            ParseCount(rec[ColumnNegative]),
		Positive:            ParseCount(rec[ColumnPositive]),
		Deaths:              ParseCount(rec[ColumnDeaths]),
		Hospitalized:        ParseCount(rec[ColumnHospitalized]),
		PartiallyVaccinated: ParseCount(rec[ColumnPartiallyVaccinated]),
		FullyVaccinated:     ParseCount(rec[ColumnFullyVaccinated]),
		Boosted:             ParseCount(rec[ColumnBoosted]),
		Timestamp:           ts,
	}, nil
}
