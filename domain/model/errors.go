// Package model provides the domain model for zipstat: population,
// vaccination and property records and the rules that validate them.
package model

import "errors"

var (
	// ErrInvalidZipCode is returned when a ZIP code is not five digits
	ErrInvalidZipCode = errors.New("invalid zip code")

	// ErrInvalidTimestamp is returned when a timestamp is not in "YYYY-MM-DD hh:mm:ss" form
	ErrInvalidTimestamp = errors.New("invalid timestamp")

	// ErrInvalidDate is returned when a date is not in "YYYY-MM-DD" form
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidPopulation is returned when a population is not a non-negative integer
	ErrInvalidPopulation = errors.New("invalid population")

	// ErrMissingColumn is returned when a record lacks a required column
	ErrMissingColumn = errors.New("missing column")

	// ErrUnknownVaccinationKind is returned for a vaccination kind other than partial or full
	ErrUnknownVaccinationKind = errors.New("unknown vaccination kind")
)
