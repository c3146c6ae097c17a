package excel

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/couchcryptid/ghcn-daily-etl/internal/domain"
	"github.com/xuri/excelize/v2"
)

// Header is the column order of every exported sheet.
var Header = []string{"ID", "DATE", "VALUE", "QFLAG", "MFLAG", "SFLAG"}

var columnWidths = []float64{14, 12, 10, 8, 8, 8}

// Writer exports station batches as one workbook per element under a
// per-station directory. It implements pipeline.BatchLoader.
type Writer struct {
	dir    string
	logger *slog.Logger
}

// NewWriter creates a writer rooted at dir.
func NewWriter(dir string, logger *slog.Logger) *Writer {
	return &Writer{dir: dir, logger: logger}
}

// StationDir returns the directory holding a station's workbooks.
func StationDir(root, stationID string) string {
	return filepath.Join(root, stationID)
}

// SeriesPath returns the workbook path for one station element.
func SeriesPath(root, stationID, element string) string {
	return filepath.Join(StationDir(root, stationID), stationID+"_"+element+".xlsx")
}

// SummaryPath returns the path of a station's run summary.
func SummaryPath(root, stationID string) string {
	return filepath.Join(StationDir(root, stationID), stationID+"_summary.json")
}

// LoadBatch writes every series of the batch and then the summary. The
// station directory is created if absent.
func (w *Writer) LoadBatch(ctx context.Context, batch domain.StationBatch) error {
	if err := os.MkdirAll(StationDir(w.dir, batch.StationID), 0o755); err != nil {
		return fmt.Errorf("create station dir: %w", err)
	}

	for _, s := range batch.Series {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := SeriesPath(w.dir, batch.StationID, s.Element)
		if err := writeSeries(path, s); err != nil {
			return fmt.Errorf("export %s %s: %w", batch.StationID, s.Element, err)
		}
		w.logger.Info("series exported",
			"station", batch.StationID,
			"element", s.Element,
			"rows", len(s.Rows),
			"path", path,
		)
	}

	return writeSummary(SummaryPath(w.dir, batch.StationID), batch.Summary)
}

// writeSeries streams the series into a single-sheet workbook named after the element.
func writeSeries(path string, s domain.ElementSeries) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := s.Element
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return fmt.Errorf("stream writer: %w", err)
	}
	for i, width := range columnWidths {
		if err := sw.SetColWidth(i+1, i+1, width); err != nil {
			return fmt.Errorf("column width: %w", err)
		}
	}

	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := sw.SetRow("A1", header, excelize.RowOpts{StyleID: bold}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, row := range s.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{s.StationID, row.Date.String(), row.Value, row.QFlag, row.MFlag, row.SFlag}
		if err := sw.SetRow(cell, values); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

func writeSummary(path string, s domain.Summary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize summary: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
