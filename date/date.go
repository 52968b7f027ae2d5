// Package date implements the day-granularity dates used by the expense
// ledger, with a lenient day-first parser for user input and a single
// canonical textual form.
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// Format is the canonical format used to represent dates as strings, both in
// the store and in reports.
const Format = "02/01/2006" // write date format, always zero-padded

// readFormats are the permissive layouts accepted from user input, tried in
// order. Day always comes first; years may have two or four digits.
var readFormats = []string{
	"2/1/2006",
	"2-1-2006",
	"2.1.2006",
	"2 1 2006",
	"2/1/06",
	"2-1-06",
	"2.1.06",
	"2 1 06",
	"2006-1-2", // ISO-ish input is unambiguous, accept it last
}

// Date represents a date with no lower than day granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Compare compares d and x chronologically, returning -1, 0 or +1. The
// comparison is on year, then month, then day, never on the textual form.
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }

// String formats the date in its canonical form.
func (d Date) String() string { return d.time().Format(Format) }

// FormatError reports a user-supplied date that none of the accepted layouts
// could parse.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid date format %q", e.Input)
}

// Parse parses a Date from a string. It is lenient: it accepts "/", "-", "."
// or a space between day, month and year, single-digit days and months, and
// two-digit years expanded per time.Parse rules. The day always comes first.
//
// An empty string is not a default: it fails like any other unparseable input.
func Parse(str string) (Date, error) {
	for _, layout := range readFormats {
		on, err := time.Parse(layout, str)
		if err == nil {
			return New(on.Date()), nil
		}
	}
	return Date{}, &FormatError{Input: str}
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
