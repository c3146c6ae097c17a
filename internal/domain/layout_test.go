package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleLine is a real-format PRCP line with a trace flag on day 2 and
// missing days 30-31.
const sampleLine = "USC00000001202001PRCP   10  7    0T 7  -15  7 9999  7    0  7    0  7    0  7    0  7    0  7    0  7    0  7    0  7    0  7    0  7    0  7    0  7    0  7    0  7    0  7    0  7    0  7    0  7    0  7    0  7    0  7    0  7    0  7    0  7    0  7-9999   -9999   "

// failingReader fails the test if anything reads from it.
type failingReader struct{ t *testing.T }

func (r failingReader) Read([]byte) (int, error) {
	r.t.Fatal("reader must not be consumed")
	return 0, nil
}

func TestGHCNLayout(t *testing.T) {
	l := GHCNLayout()

	require.NoError(t, l.Validate())
	assert.Len(t, l.Names, 132)
	assert.Equal(t, 269, l.Width())

	assert.Equal(t, ColumnSpec{0, 11}, l.Specs[0])
	assert.Equal(t, ColumnSpec{11, 15}, l.Specs[1])
	assert.Equal(t, ColumnSpec{15, 17}, l.Specs[2])
	assert.Equal(t, ColumnSpec{17, 21}, l.Specs[3])

	assert.Equal(t, "VALUE1", l.Names[4])
	assert.Equal(t, ColumnSpec{21, 26}, l.Specs[4])
	assert.Equal(t, ColumnSpec{26, 27}, l.Specs[5])
	assert.Equal(t, ColumnSpec{27, 28}, l.Specs[6])
	assert.Equal(t, ColumnSpec{28, 29}, l.Specs[7])

	assert.Equal(t, "SFLAG31", l.Names[131])
	assert.Equal(t, ColumnSpec{268, 269}, l.Specs[131])
}

func TestLayout_Validate(t *testing.T) {
	full := GHCNLayout()

	tests := []struct {
		name   string
		layout Layout
	}{
		{"truncated slots", Layout{Names: full.Names, Specs: full.Specs[:131]}},
		{"extended slots", Layout{Names: full.Names, Specs: append(append([]ColumnSpec(nil), full.Specs...), ColumnSpec{269, 270})}},
		{"truncated names", Layout{Names: full.Names[:100], Specs: full.Specs}},
		{"both short", Layout{Names: full.Names[:128], Specs: full.Specs[:128]}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.layout.Validate()
			require.ErrorIs(t, err, ErrLayoutMismatch)

			_, err = tt.layout.Decode(failingReader{t})
			require.ErrorIs(t, err, ErrLayoutMismatch)
		})
	}
}

func TestDecode(t *testing.T) {
	t.Run("real-format line", func(t *testing.T) {
		table, err := Decode(strings.NewReader(sampleLine + "\n"))
		require.NoError(t, err)
		require.Len(t, table, 1)

		rec := table[0]
		assert.Equal(t, testStation, rec.ID)
		assert.Equal(t, 2020, rec.Year)
		assert.Equal(t, 1, rec.Month)
		assert.Equal(t, "PRCP", rec.Element)

		assert.Equal(t, DaySlot{Value: 10, SFlag: "7"}, rec.Slot(1))
		assert.Equal(t, DaySlot{Value: 0, MFlag: "T", SFlag: "7"}, rec.Slot(2))
		assert.Equal(t, -15, rec.Slot(3).Value)
		assert.Equal(t, 9999, rec.Slot(4).Value)
		assert.Equal(t, DaySlot{Value: MissingValue}, rec.Slot(30))
		assert.Equal(t, DaySlot{Value: MissingValue}, rec.Slot(31))
	})

	t.Run("blank value keeps raw sentinel", func(t *testing.T) {
		line := sampleLine[:21] + strings.Repeat(" ", 8) + sampleLine[29:]
		table, err := Decode(strings.NewReader(line))
		require.NoError(t, err)
		assert.Equal(t, DaySlot{Value: MissingValue}, table[0].Slot(1))
	})

	t.Run("short line is padded", func(t *testing.T) {
		table, err := Decode(strings.NewReader(sampleLine[:29]))
		require.NoError(t, err)
		require.Len(t, table, 1)
		assert.Equal(t, 10, table[0].Slot(1).Value)
		assert.Equal(t, MissingValue, table[0].Slot(2).Value)
		assert.Empty(t, table[0].Slot(2).SFlag)
	})

	t.Run("one row per line in input order", func(t *testing.T) {
		input := encode(t,
			makeRecord(testStation, 2020, 3, "TMAX", tenTimesDay),
			makeRecord(testStation, 2020, 1, "TMAX", tenTimesDay),
			makeRecord(testStation, 2020, 1, "TMAX", tenTimesDay),
		)
		table, err := Decode(strings.NewReader(input + "\n\n"))
		require.NoError(t, err)
		require.Len(t, table, 3)
		assert.Equal(t, 3, table[0].Month)
		assert.Equal(t, 1, table[1].Month)
		assert.Equal(t, 1, table[2].Month)
	})

	t.Run("CRLF line endings", func(t *testing.T) {
		table, err := Decode(strings.NewReader(sampleLine + "\r\n" + sampleLine + "\r\n"))
		require.NoError(t, err)
		require.Len(t, table, 2)
		assert.Equal(t, DaySlot{Value: MissingValue}, table[1].Slot(31))
	})

	t.Run("empty input", func(t *testing.T) {
		table, err := Decode(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, table)
	})
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		field string
	}{
		{"bad year", sampleLine[:11] + "20X0" + sampleLine[15:], "year"},
		{"bad month", sampleLine[:15] + "13" + sampleLine[17:], "month"},
		{"bad value", sampleLine[:21] + "  1a0" + sampleLine[26:], "VALUE1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(sampleLine + "\n" + tt.line + "\n"))
			require.ErrorIs(t, err, ErrMalformedRecord)
			assert.Contains(t, err.Error(), "decode line 2")
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestLayout_Format(t *testing.T) {
	t.Run("matches real-format line", func(t *testing.T) {
		table, err := Decode(strings.NewReader(sampleLine))
		require.NoError(t, err)

		line, err := GHCNLayout().Format(table[0])
		require.NoError(t, err)
		assert.Equal(t, sampleLine, line)
	})

	t.Run("decodes back to the same record", func(t *testing.T) {
		rec := makeRecord(testStation, 2021, 2, "SNWD", func(day int) int { return -day })
		rec.Days[4].QFlag = "I"
		rec.Days[4].MFlag = "B"

		table, err := Decode(strings.NewReader(encode(t, rec)))
		require.NoError(t, err)
		require.Len(t, table, 1)
		assert.Equal(t, rec, table[0])
	})

	t.Run("invalid layout", func(t *testing.T) {
		l := GHCNLayout()
		l.Names = l.Names[:10]
		_, err := l.Format(RawRecord{})
		require.ErrorIs(t, err, ErrLayoutMismatch)
	})
}
