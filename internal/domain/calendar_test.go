package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendar_DaysInMonth(t *testing.T) {
	tests := []struct {
		name     string
		cal      Calendar
		year     int
		month    int
		expected int
	}{
		{"january", SimpleCalendar, 2021, 1, 31},
		{"april", SimpleCalendar, 2021, 4, 30},
		{"december", SimpleCalendar, 2021, 12, 31},
		{"february leap", SimpleCalendar, 2020, 2, 29},
		{"february common", SimpleCalendar, 2021, 2, 28},
		{"february 1900 simple rule", SimpleCalendar, 1900, 2, 29},
		{"february 1900 gregorian", GregorianCalendar, 1900, 2, 28},
		{"february 2000 gregorian", GregorianCalendar, 2000, 2, 29},
		{"invalid month", SimpleCalendar, 2021, 13, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cal.DaysInMonth(tt.year, tt.month))
		})
	}
}

func TestCalendar_Range(t *testing.T) {
	t.Run("matches day count between boundaries", func(t *testing.T) {
		pairs := []struct{ start, end Date }{
			{Date{2020, 1, 1}, Date{2020, 1, 31}},
			{Date{2019, 11, 1}, Date{2021, 3, 31}},
			{Date{2020, 2, 1}, Date{2020, 2, 29}},
			{Date{1999, 12, 1}, Date{2004, 2, 29}},
		}
		for _, p := range pairs {
			days := GregorianCalendar.Range(p.start, p.end)
			simple := SimpleCalendar.Range(p.start, p.end)

			from := time.Date(p.start.Year, time.Month(p.start.Month), p.start.Day, 0, 0, 0, 0, time.UTC)
			to := time.Date(p.end.Year, time.Month(p.end.Month), p.end.Day, 0, 0, 0, 0, time.UTC)
			want := int(to.Sub(from).Hours()/24) + 1

			assert.Len(t, days, want, "%s..%s", p.start, p.end)
			assert.Len(t, simple, want, "%s..%s", p.start, p.end)
		}
	})

	t.Run("contiguous and unique", func(t *testing.T) {
		days := SimpleCalendar.Range(Date{2019, 12, 1}, Date{2021, 1, 31})
		require.NotEmpty(t, days)
		seen := make(map[Date]bool, len(days))
		for i, d := range days {
			assert.False(t, seen[d], "duplicate %s", d)
			seen[d] = true
			if i > 0 {
				assert.Equal(t, SimpleCalendar.Next(days[i-1]), d)
			}
		}
		assert.Equal(t, Date{2019, 12, 1}, days[0])
		assert.Equal(t, Date{2021, 1, 31}, days[len(days)-1])
	})

	t.Run("simple rule keeps 1900-02-29", func(t *testing.T) {
		days := SimpleCalendar.Range(Date{1900, 2, 1}, Date{1900, 3, 1})
		assert.Len(t, days, 30)
		assert.Contains(t, days, Date{1900, 2, 29})

		days = GregorianCalendar.Range(Date{1900, 2, 1}, Date{1900, 3, 1})
		assert.Len(t, days, 29)
		assert.NotContains(t, days, Date{1900, 2, 29})
	})

	t.Run("end before start", func(t *testing.T) {
		assert.Empty(t, SimpleCalendar.Range(Date{2021, 1, 1}, Date{2020, 12, 31}))
	})

	t.Run("single day", func(t *testing.T) {
		assert.Equal(t, []Date{{2020, 5, 5}}, SimpleCalendar.Range(Date{2020, 5, 5}, Date{2020, 5, 5}))
	})
}

func TestCalendarByName(t *testing.T) {
	cal, err := CalendarByName("")
	require.NoError(t, err)
	assert.Equal(t, "simple", cal.Name())

	cal, err = CalendarByName("gregorian")
	require.NoError(t, err)
	assert.Equal(t, "gregorian", cal.Name())

	_, err = CalendarByName("julian")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "julian")
}

func TestDate(t *testing.T) {
	d := Date{1900, 2, 29}
	assert.Equal(t, "1900-02-29", d.String())

	parsed, err := ParseDate("1900-02-29")
	require.NoError(t, err)
	assert.Equal(t, d, parsed)

	_, err = ParseDate("not-a-date")
	require.Error(t, err)

	assert.True(t, Date{2020, 1, 31}.Before(Date{2020, 2, 1}))
	assert.False(t, Date{2020, 2, 1}.Before(Date{2020, 2, 1}))
	assert.False(t, Date{2021, 1, 1}.Before(Date{2020, 12, 31}))
}
