package gedcom

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a possibly partial calendar date. A zero Year means the date is
// absent; Month and Day may each be zero when unknown. Partial dates
// compare only on the components both sides have, and an absent date never
// satisfies an ordering check.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

var monthNames = map[string]time.Month{
	"JAN": time.January, "FEB": time.February, "MAR": time.March,
	"APR": time.April, "MAY": time.May, "JUN": time.June,
	"JUL": time.July, "AUG": time.August, "SEP": time.September,
	"OCT": time.October, "NOV": time.November, "DEC": time.December,
}

// dateQualifiers are GEDCOM approximation/range keywords dropped during
// best-effort parsing (the remaining tokens are still used).
var dateQualifiers = map[string]bool{
	"ABT": true, "EST": true, "CAL": true, "BEF": true, "AFT": true,
	"FROM": true, "TO": true, "BET": true, "AND": true, "INT": true,
}

// ParseDate parses a GEDCOM date value into a Date. Parsing is
// best-effort: unrecognized tokens are skipped and an unparseable value
// yields an absent Date, never an error.
func ParseDate(value string) Date {
	var d Date

	for _, tok := range strings.Fields(strings.ToUpper(value)) {
		if dateQualifiers[tok] {
			continue
		}
		if m, ok := monthNames[tok]; ok {
			if d.Month == 0 {
				d.Month = m
			}
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			continue
		}
		switch {
		case n > 31 && d.Year == 0:
			d.Year = n
		case n >= 1 && n <= 31 && d.Day == 0:
			d.Day = n
		}
	}

	// A date without a year carries no ordering information.
	if d.Year == 0 {
		return Date{}
	}
	// Only year and year-month partials are meaningful.
	if d.Month == 0 {
		d.Day = 0
	}
	return d
}

// IsZero reports whether the date is absent.
func (d Date) IsZero() bool {
	return d.Year == 0
}

// Compare orders d against other on the components both have.
// The second return value is false when either date is absent, meaning no
// ordering check can be satisfied. When the shared components are equal
// the result is 0: the dates are not known to differ.
func (d Date) Compare(other Date) (int, bool) {
	if d.IsZero() || other.IsZero() {
		return 0, false
	}
	if d.Year != other.Year {
		return sign(d.Year - other.Year), true
	}
	if d.Month != 0 && other.Month != 0 && d.Month != other.Month {
		return sign(int(d.Month) - int(other.Month)), true
	}
	if d.Month == other.Month && d.Day != 0 && other.Day != 0 && d.Day != other.Day {
		return sign(d.Day - other.Day), true
	}
	return 0, true
}

// Before reports whether d is known to precede other.
func (d Date) Before(other Date) bool {
	c, ok := d.Compare(other)
	return ok && c < 0
}

// After reports whether d is known to follow other.
func (d Date) After(other Date) bool {
	c, ok := d.Compare(other)
	return ok && c > 0
}

// String renders the date as YYYY, YYYY-MM or YYYY-MM-DD depending on
// which components are present. Absent dates render as an empty string.
func (d Date) String() string {
	switch {
	case d.IsZero():
		return ""
	case d.Month == 0:
		return strconv.Itoa(d.Year)
	case d.Day == 0:
		return fmt.Sprintf("%04d-%02d", d.Year, int(d.Month))
	default:
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
