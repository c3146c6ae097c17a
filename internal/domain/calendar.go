package domain

import (
	"fmt"
)

// Date is a civil calendar date with no time zone. Under the simple leap rule
// it can name days such as 1900-02-29 that time.Time would normalize away.
type Date struct {
	Year  int
	Month int
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Before reports whether d is earlier than o.
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	var d Date
	if _, err := fmt.Sscanf(s, "%d-%d-%d", &d.Year, &d.Month, &d.Day); err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return d, nil
}

// Calendar decides month lengths and walks daily sequences.
type Calendar struct {
	name string
	leap func(year int) bool
}

var (
	// SimpleCalendar treats every year divisible by 4 as a leap year.
	SimpleCalendar = Calendar{name: "simple", leap: func(y int) bool { return y%4 == 0 }}

	// GregorianCalendar applies the full rule, so 1900 is not a leap year and 2000 is.
	GregorianCalendar = Calendar{name: "gregorian", leap: func(y int) bool {
		return y%4 == 0 && (y%100 != 0 || y%400 == 0)
	}}
)

// CalendarByName returns the calendar named "simple" or "gregorian".
func CalendarByName(name string) (Calendar, error) {
	switch name {
	case "", SimpleCalendar.name:
		return SimpleCalendar, nil
	case GregorianCalendar.name:
		return GregorianCalendar, nil
	default:
		return Calendar{}, fmt.Errorf("unknown calendar %q", name)
	}
}

// Name returns the calendar's configuration name.
func (c Calendar) Name() string {
	return c.name
}

// DaysInMonth returns the last day of the month.
func (c Calendar) DaysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if c.leap(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// MonthStart returns day 1 of the month.
func (c Calendar) MonthStart(year, month int) Date {
	return Date{Year: year, Month: month, Day: 1}
}

// MonthEnd returns the last day of the month.
func (c Calendar) MonthEnd(year, month int) Date {
	return Date{Year: year, Month: month, Day: c.DaysInMonth(year, month)}
}

// Next returns the day after d.
func (c Calendar) Next(d Date) Date {
	if d.Day < c.DaysInMonth(d.Year, d.Month) {
		return Date{Year: d.Year, Month: d.Month, Day: d.Day + 1}
	}
	if d.Month < 12 {
		return Date{Year: d.Year, Month: d.Month + 1, Day: 1}
	}
	return Date{Year: d.Year + 1, Month: 1, Day: 1}
}

// Range returns every day from start through end inclusive. It is empty when
// end is before start.
func (c Calendar) Range(start, end Date) []Date {
	var days []Date
	for d := start; !end.Before(d); d = c.Next(d) {
		days = append(days, d)
	}
	return days
}
