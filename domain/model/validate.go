package model

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// TimestampLayout is the layout of vaccination report timestamps
	TimestampLayout = "2006-01-02 15:04:05"
	// DateLayout is the layout of dates entered by users
	DateLayout = "2006-01-02"
	// zipCodeLength is the number of digits in a ZIP code
	zipCodeLength = 5
)

// measurePattern matches the numeric measures found in property data.
var measurePattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// IsZipCode reports whether s is exactly five ASCII digits.
func IsZipCode(s string) bool {
	return len(s) == zipCodeLength && isDigits(s)
}

// PropertyZipCode extracts the five-digit ZIP code from a property record's
// zip field, which may carry a ZIP+4 suffix ("191031234").
func PropertyZipCode(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) < zipCodeLength || !isDigits(s) {
		return "", ErrInvalidZipCode
	}
	return s[:zipCodeLength], nil
}

// ParseTimestamp parses a "YYYY-MM-DD hh:mm:ss" timestamp.
func ParseTimestamp(s string) (time.Time, error) {
	ts, err := time.Parse(TimestampLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidTimestamp
	}
	return ts, nil
}

// ParseDate parses a "YYYY-MM-DD" date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// ParseCount parses an integer count. Empty or malformed values count as zero.
func ParseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// ParseMeasure parses a decimal measure such as a market value. Values that
// are not plain decimals yield NaN, which marks the measure as unknown.
func ParseMeasure(s string) float64 {
	s = strings.TrimSpace(s)
	if !measurePattern.MatchString(s) {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
