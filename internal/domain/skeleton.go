package domain

import (
	"fmt"
)

// Observation is one day of an element series.
type Observation struct {
	Date  Date
	Value int
	QFlag string
	MFlag string
	SFlag string
}

// ElementSeries is the daily series of one element at one station. Rows form a
// contiguous, gap-free run of calendar days.
type ElementSeries struct {
	StationID string
	Element   string
	Rows      []Observation
}

// Start returns the first date of the series and false if it has no rows.
func (s ElementSeries) Start() (Date, bool) {
	if len(s.Rows) == 0 {
		return Date{}, false
	}
	return s.Rows[0].Date, true
}

// End returns the last date of the series and false if it has no rows.
func (s ElementSeries) End() (Date, bool) {
	if len(s.Rows) == 0 {
		return Date{}, false
	}
	return s.Rows[len(s.Rows)-1].Date, true
}

// NoRecordDays counts the days filled with the no-record sentinel. The flag is
// checked rather than the value because -99 is also a valid observation.
func (s ElementSeries) NoRecordDays() int {
	n := 0
	for _, row := range s.Rows {
		if row.QFlag == NoRecordFlag {
			n++
		}
	}
	return n
}

// Skeletons is the builder output: empty series plus the requested elements
// that were skipped.
type Skeletons struct {
	Series      []ElementSeries
	Unsupported []string
}

// Warnings returns one error per skipped element.
func (s Skeletons) Warnings() []error {
	if len(s.Unsupported) == 0 {
		return nil
	}
	out := make([]error, len(s.Unsupported))
	for i, code := range s.Unsupported {
		out[i] = &UnsupportedElementError{Element: code}
	}
	return out
}

// ResolveElements picks the elements to reshape. With no request it returns
// the elements present in the table. Otherwise it keeps the requested codes
// found in the vocabulary, once each, and returns the rest as unsupported.
func ResolveElements(table Table, requested []string) (elements, unsupported []string) {
	if len(requested) == 0 {
		return table.Elements(), nil
	}
	seen := make(map[string]struct{}, len(requested))
	for _, code := range requested {
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		if !Supported(code) {
			unsupported = append(unsupported, code)
			continue
		}
		elements = append(elements, code)
	}
	return elements, unsupported
}

// DateRange returns the first day of the first record's month and the last day
// of the last record's month. Table order is used as-is.
func DateRange(table Table, cal Calendar) (start, end Date, err error) {
	if len(table) == 0 {
		return Date{}, Date{}, ErrEmptyInput
	}
	first, last := table[0], table[len(table)-1]
	return cal.MonthStart(first.Year, first.Month), cal.MonthEnd(last.Year, last.Month), nil
}

// BuildSkeletons lays out one empty series per resolved element over the
// table's full date range. The table must hold a single station.
func BuildSkeletons(table Table, requested []string, cal Calendar) (Skeletons, error) {
	start, end, err := DateRange(table, cal)
	if err != nil {
		return Skeletons{}, err
	}
	stations := table.Stations()
	if len(stations) > 1 {
		return Skeletons{}, fmt.Errorf("%w: %d station IDs", ErrMultipleStations, len(stations))
	}

	elements, unsupported := ResolveElements(table, requested)
	dates := cal.Range(start, end)

	out := Skeletons{
		Series:      make([]ElementSeries, 0, len(elements)),
		Unsupported: unsupported,
	}
	for _, element := range elements {
		rows := make([]Observation, len(dates))
		for i, d := range dates {
			rows[i].Date = d
		}
		out.Series = append(out.Series, ElementSeries{
			StationID: stations[0],
			Element:   element,
			Rows:      rows,
		})
	}
	return out, nil
}
