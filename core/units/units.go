// Package units - byte unit and time period enumerations
package units

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ByteUnit represents a decimal byte unit (powers of 1000)
type ByteUnit string

const (
	Byte      ByteUnit = "B"
	Kilobyte  ByteUnit = "KB"
	Megabyte  ByteUnit = "MB"
	Gigabyte  ByteUnit = "GB"
	Terabyte  ByteUnit = "TB"
	Petabyte  ByteUnit = "PB"
	Exabyte   ByteUnit = "EB"
	Zettabyte ByteUnit = "ZB"
	Yottabyte ByteUnit = "YB"
)

// ByteUnits lists all units in ascending order of magnitude
var ByteUnits = []ByteUnit{
	Byte, Kilobyte, Megabyte, Gigabyte, Terabyte,
	Petabyte, Exabyte, Zettabyte, Yottabyte,
}

// String returns the string representation
func (u ByteUnit) String() string {
	return string(u)
}

// Multiplier returns how many bytes one of this unit is (B=1, KB=1000, ...)
func (u ByteUnit) Multiplier() decimal.Decimal {
	for i, candidate := range ByteUnits {
		if candidate == u {
			// 1000^i == 10^(3i)
			return decimal.New(1, int32(3*i))
		}
	}
	return decimal.New(1, 0)
}

// ParseByteUnit matches a token case-insensitively against the known units
func ParseByteUnit(token string) (ByteUnit, bool) {
	for _, u := range ByteUnits {
		if strings.EqualFold(token, string(u)) {
			return u, true
		}
	}
	return "", false
}

// AcceptedUnits returns the space-separated list of recognized unit names
func AcceptedUnits() string {
	names := make([]string, len(ByteUnits))
	for i, u := range ByteUnits {
		names[i] = string(u)
	}
	return strings.Join(names, " ")
}

// Period represents a time span over which a rate is expressed
type Period string

const (
	Second Period = "sec"
	Minute Period = "min"
	Hour   Period = "hour"
	Day    Period = "day"
	Week   Period = "week"
	Month  Period = "month"
	Year   Period = "year"
)

// Periods lists all periods in ascending order of length
var Periods = []Period{Second, Minute, Hour, Day, Week, Month, Year}

// Period lengths in seconds. Month and year are the 30-day and 365-day
// approximations, not calendar months.
var periodSeconds = map[Period]int64{
	Second: 1,
	Minute: 60,
	Hour:   60 * 60,
	Day:    24 * 60 * 60,
	Week:   7 * 24 * 60 * 60,
	Month:  30 * 24 * 60 * 60,
	Year:   365 * 24 * 60 * 60,
}

// Spelling variants accepted on input, mapped to their canonical period
var periodAliases = map[string]Period{
	"s": Second, "sec": Second, "second": Second,
	"m": Minute, "min": Minute, "minute": Minute,
	"h": Hour, "hr": Hour, "hour": Hour,
	"d": Day, "day": Day,
	"w": Week, "wk": Week, "week": Week,
	"mon": Month, "month": Month,
	"y": Year, "yr": Year, "year": Year,
}

// String returns the canonical display name
func (p Period) String() string {
	return string(p)
}

// Seconds returns the length of the period in seconds
func (p Period) Seconds() decimal.Decimal {
	return decimal.NewFromInt(periodSeconds[p])
}

// ParsePeriod matches a token case-insensitively against the period names
// and their accepted spelling variants
func ParsePeriod(token string) (Period, bool) {
	p, ok := periodAliases[strings.ToLower(token)]
	return p, ok
}

// AcceptedPeriods returns the space-separated list of canonical period names
func AcceptedPeriods() string {
	names := make([]string, len(Periods))
	for i, p := range Periods {
		names[i] = string(p)
	}
	return strings.Join(names, " ")
}
