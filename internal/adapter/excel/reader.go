package excel

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/couchcryptid/ghcn-daily-etl/internal/domain"
	"github.com/xuri/excelize/v2"
)

// ReadSeries loads a workbook written by Writer. The element is taken from
// the sheet name.
func ReadSeries(path string) (domain.ElementSeries, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return domain.ElementSeries{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return domain.ElementSeries{}, fmt.Errorf("no sheets found in %s", path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return domain.ElementSeries{}, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return domain.ElementSeries{}, fmt.Errorf("missing header row in %s", path)
	}
	for i, h := range Header {
		if i >= len(rows[0]) || strings.TrimSpace(rows[0][i]) != h {
			return domain.ElementSeries{}, fmt.Errorf("unexpected header %v in %s", rows[0], path)
		}
	}

	s := domain.ElementSeries{Element: sheet, Rows: make([]domain.Observation, 0, len(rows)-1)}
	for i, row := range rows[1:] {
		// GetRows drops trailing empty cells, so blank flags shorten the row.
		cells := make([]string, len(Header))
		copy(cells, row)

		if s.StationID == "" {
			s.StationID = cells[0]
		}
		date, err := domain.ParseDate(cells[1])
		if err != nil {
			return domain.ElementSeries{}, fmt.Errorf("row %d: %w", i+2, err)
		}
		value, err := strconv.Atoi(cells[2])
		if err != nil {
			return domain.ElementSeries{}, fmt.Errorf("row %d: value %q: %w", i+2, cells[2], err)
		}
		s.Rows = append(s.Rows, domain.Observation{
			Date:  date,
			Value: value,
			QFlag: cells[3],
			MFlag: cells[4],
			SFlag: cells[5],
		})
	}
	return s, nil
}

// ReadSummary loads a station summary written by Writer.
func ReadSummary(path string) (domain.Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("read summary: %w", err)
	}
	var s domain.Summary
	if err := json.Unmarshal(data, &s); err != nil {
		return domain.Summary{}, fmt.Errorf("parse summary: %w", err)
	}
	return s, nil
}
