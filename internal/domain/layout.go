package domain

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	headerFields    = 4
	slotFields      = 4
	slotWidth       = 8
	valueWidth      = 5
	firstSlotOffset = 21

	// LayoutColumns is the number of columns in a GHCN-Daily record:
	// four header fields plus four fields per day-slot.
	LayoutColumns = headerFields + DaysPerRecord*slotFields
)

// ColumnSpec is a [Start, End) character range within a record line.
type ColumnSpec struct {
	Start int
	End   int
}

// Layout pairs column names with their character ranges. Columns are read by
// position: the four header fields first, then VALUE, MFLAG, QFLAG, SFLAG for
// each day in turn.
type Layout struct {
	Names []string
	Specs []ColumnSpec
}

// GHCNLayout returns the GHCN-Daily .dly record layout.
func GHCNLayout() Layout {
	l := Layout{
		Names: []string{"ID", "YEAR", "MONTH", "ELEMENT"},
		Specs: []ColumnSpec{{0, 11}, {11, 15}, {15, 17}, {17, 21}},
	}
	for day := 1; day <= DaysPerRecord; day++ {
		start := firstSlotOffset + (day-1)*slotWidth
		end := start + valueWidth
		d := strconv.Itoa(day)
		l.Names = append(l.Names, "VALUE"+d, "MFLAG"+d, "QFLAG"+d, "SFLAG"+d)
		l.Specs = append(l.Specs,
			ColumnSpec{start, end},
			ColumnSpec{end, end + 1},
			ColumnSpec{end + 1, end + 2},
			ColumnSpec{end + 2, end + 3},
		)
	}
	return l
}

// Validate checks that every named field has exactly one column slot and that
// the layout covers the full record.
func (l Layout) Validate() error {
	if len(l.Names) != len(l.Specs) {
		return fmt.Errorf("%w: %d field names for %d column slots", ErrLayoutMismatch, len(l.Names), len(l.Specs))
	}
	if len(l.Specs) != LayoutColumns {
		return fmt.Errorf("%w: %d column slots, want %d", ErrLayoutMismatch, len(l.Specs), LayoutColumns)
	}
	return nil
}

// Width returns the line length the layout spans.
func (l Layout) Width() int {
	width := 0
	for _, s := range l.Specs {
		if s.End > width {
			width = s.End
		}
	}
	return width
}

// Decode parses GHCN-Daily text with the standard layout.
func Decode(r io.Reader) (Table, error) {
	return GHCNLayout().Decode(r)
}

// Decode validates the layout, then parses one record per non-blank line.
// Nothing is read from r when the layout is invalid.
func (l Layout) Decode(r io.Reader) (Table, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	width := l.Width()
	scanner := bufio.NewScanner(r)
	var table Table
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := l.parseLine(line, width)
		if err != nil {
			return nil, fmt.Errorf("decode line %d: %w", lineNo, err)
		}
		table = append(table, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	return table, nil
}

// parseLine slices the line by character, not byte, so decoded Latin-1 text
// keeps its offsets.
func (l Layout) parseLine(line string, width int) (RawRecord, error) {
	chars := []rune(line)
	for len(chars) < width {
		chars = append(chars, ' ')
	}
	field := func(i int) string {
		s := l.Specs[i]
		return strings.TrimSpace(string(chars[s.Start:s.End]))
	}

	var rec RawRecord
	rec.ID = field(0)

	year, err := strconv.Atoi(field(1))
	if err != nil {
		return RawRecord{}, fmt.Errorf("%w: year %q", ErrMalformedRecord, field(1))
	}
	month, err := strconv.Atoi(field(2))
	if err != nil || month < 1 || month > 12 {
		return RawRecord{}, fmt.Errorf("%w: month %q", ErrMalformedRecord, field(2))
	}
	rec.Year = year
	rec.Month = month
	rec.Element = field(3)

	for day := 1; day <= DaysPerRecord; day++ {
		base := headerFields + (day-1)*slotFields
		value, err := parseValue(field(base))
		if err != nil {
			return RawRecord{}, fmt.Errorf("%w: VALUE%d %q", ErrMalformedRecord, day, field(base))
		}
		rec.Days[day-1] = DaySlot{
			Value: value,
			MFlag: field(base + 1),
			QFlag: field(base + 2),
			SFlag: field(base + 3),
		}
	}
	return rec, nil
}

func parseValue(s string) (int, error) {
	if s == "" {
		return MissingValue, nil
	}
	return strconv.Atoi(s)
}

// Format encodes a record as one fixed-width line. Values are right-aligned,
// text fields left-aligned, and blank flags become spaces.
func (l Layout) Format(rec RawRecord) (string, error) {
	if err := l.Validate(); err != nil {
		return "", err
	}

	line := []rune(strings.Repeat(" ", l.Width()))
	put := func(i int, value string, right bool) {
		s := l.Specs[i]
		n := s.End - s.Start
		v := []rune(value)
		if len(v) > n {
			v = v[:n]
		}
		offset := s.Start
		if right {
			offset = s.End - len(v)
		}
		copy(line[offset:], v)
	}

	put(0, rec.ID, false)
	put(1, fmt.Sprintf("%04d", rec.Year), true)
	put(2, fmt.Sprintf("%02d", rec.Month), true)
	put(3, rec.Element, false)
	for day := 1; day <= DaysPerRecord; day++ {
		base := headerFields + (day-1)*slotFields
		slot := rec.Days[day-1]
		put(base, strconv.Itoa(slot.Value), true)
		put(base+1, slot.MFlag, false)
		put(base+2, slot.QFlag, false)
		put(base+3, slot.SFlag, false)
	}
	return string(line), nil
}
