package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testStation = "USC00000001"
	testOther   = "USW00094728"
)

// makeRecord builds a record whose day d holds value(d). Slots past the end
// of the month carry the raw missing sentinel.
func makeRecord(id string, year, month int, element string, value func(day int) int) RawRecord {
	rec := RawRecord{ID: id, Year: year, Month: month, Element: element}
	last := SimpleCalendar.DaysInMonth(year, month)
	for day := 1; day <= DaysPerRecord; day++ {
		if day > last {
			rec.Days[day-1] = DaySlot{Value: MissingValue}
			continue
		}
		rec.Days[day-1] = DaySlot{Value: value(day), SFlag: "7"}
	}
	return rec
}

func tenTimesDay(day int) int { return day * 10 }

// encode renders records as .dly text with the standard layout.
func encode(t *testing.T, recs ...RawRecord) string {
	t.Helper()
	layout := GHCNLayout()
	lines := make([]string, 0, len(recs))
	for _, rec := range recs {
		line, err := layout.Format(rec)
		require.NoError(t, err)
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n") + "\n"
}
