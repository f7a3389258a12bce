package gedcom

import (
	"testing"
	"time"
)

func TestParseDate_Full(t *testing.T) {
	d := ParseDate("2 JAN 1900")
	if d.Year != 1900 || d.Month != time.January || d.Day != 2 {
		t.Errorf("expected 1900-01-02, got %s", d)
	}
}

func TestParseDate_Partial(t *testing.T) {
	tests := []struct {
		input string
		want  Date
	}{
		{"1900", Date{Year: 1900}},
		{"JAN 1900", Date{Year: 1900, Month: time.January}},
		{"ABT 1850", Date{Year: 1850}},
		{"EST MAR 1920", Date{Year: 1920, Month: time.March}},
		{"BEF 12 DEC 1880", Date{Year: 1880, Month: time.December, Day: 12}},
	}

	for _, tt := range tests {
		got := ParseDate(tt.input)
		if got != tt.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseDate_Malformed(t *testing.T) {
	for _, input := range []string{"", "UNKNOWN", "SOMEDAY SOON", "JAN"} {
		if d := ParseDate(input); !d.IsZero() {
			t.Errorf("ParseDate(%q) = %v, want absent", input, d)
		}
	}
}

func TestParseDate_DayWithoutMonthDropped(t *testing.T) {
	d := ParseDate("12 1900")
	if d.Year != 1900 || d.Month != 0 || d.Day != 0 {
		t.Errorf("expected year-only date, got %+v", d)
	}
}

func TestDate_Compare_FullDates(t *testing.T) {
	a := Date{Year: 1900, Month: time.January, Day: 2}
	b := Date{Year: 1900, Month: time.March, Day: 1}

	c, ok := a.Compare(b)
	if !ok || c >= 0 {
		t.Errorf("expected a < b, got c=%d ok=%v", c, ok)
	}
	if !a.Before(b) || !b.After(a) {
		t.Error("Before/After disagree with Compare")
	}
}

func TestDate_Compare_AbsentNeverComparable(t *testing.T) {
	a := Date{Year: 1900}
	var absent Date

	if _, ok := a.Compare(absent); ok {
		t.Error("comparison against absent date should not be ok")
	}
	if _, ok := absent.Compare(a); ok {
		t.Error("comparison from absent date should not be ok")
	}
	if absent.Before(a) || absent.After(a) {
		t.Error("absent date must never satisfy an ordering check")
	}
}

func TestDate_Compare_PartialOnSharedComponents(t *testing.T) {
	yearOnly := Date{Year: 1900}
	full := Date{Year: 1900, Month: time.June, Day: 15}

	// Same year, month unknown on one side: not known to differ.
	c, ok := yearOnly.Compare(full)
	if !ok || c != 0 {
		t.Errorf("expected equal-on-shared, got c=%d ok=%v", c, ok)
	}

	later := Date{Year: 1901}
	if !later.After(full) {
		t.Error("1901 should be after 1900-06-15")
	}
}

func TestDate_String(t *testing.T) {
	tests := []struct {
		date Date
		want string
	}{
		{Date{}, ""},
		{Date{Year: 1900}, "1900"},
		{Date{Year: 1900, Month: time.February}, "1900-02"},
		{Date{Year: 1900, Month: time.February, Day: 3}, "1900-02-03"},
	}

	for _, tt := range tests {
		if got := tt.date.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
