package core

import (
	"fmt"
	"strconv"
	"strings"
)

// YearMonth is a calendar month with no day component, the simulation's time
// unit.
type YearMonth struct {
	Year  int
	Month int
}

func NewYearMonth(year, month int) YearMonth {
	return YearMonth{Year: year, Month: month}
}

// Plus returns the month n months after ym, carrying the year.
func (ym YearMonth) Plus(n int) YearMonth {
	total := ym.Year*12 + ym.Month - 1 + n
	return YearMonth{Year: total / 12, Month: total%12 + 1}
}

func (ym YearMonth) After(other YearMonth) bool {
	return ym.Year > other.Year || (ym.Year == other.Year && ym.Month > other.Month)
}

func (ym YearMonth) Before(other YearMonth) bool {
	return other.After(ym)
}

// String formats the month as MM/YYYY, the planning report header format.
func (ym YearMonth) String() string {
	return fmt.Sprintf("%02d/%d", ym.Month, ym.Year)
}

// ParseDateMonth extracts the year-month from a dd/mm/yyyy date string. The
// day is validated for shape only and then discarded.
func ParseDateMonth(s string) (YearMonth, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return YearMonth{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil || day < 1 || day > 31 {
		return YearMonth{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return YearMonth{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil || year < 1 {
		return YearMonth{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return YearMonth{Year: year, Month: month}, nil
}
