package domain

import "time"

// ElementSummary describes one exported series.
type ElementSummary struct {
	Element      string `json:"element"`
	Start        string `json:"start,omitempty"`
	End          string `json:"end,omitempty"`
	Days         int    `json:"days"`
	NoRecordDays int    `json:"no_record_days"`
}

// Summary describes the reshape of one station.
type Summary struct {
	StationID   string           `json:"station_id"`
	Source      string           `json:"source"`
	Records     int              `json:"records"`
	Calendar    string           `json:"calendar"`
	Elements    []ElementSummary `json:"elements"`
	Unsupported []string         `json:"unsupported_elements,omitempty"`
	ProcessedAt time.Time        `json:"processed_at"`
}

// StationBatch is everything the exporter needs for one station.
type StationBatch struct {
	StationID string
	Series    []ElementSeries
	Summary   Summary
}

// Summarize builds the summary for filled series of one station.
func Summarize(source string, table Table, sk Skeletons, filled []ElementSeries, cal Calendar) Summary {
	s := Summary{
		Source:      source,
		Records:     len(table),
		Calendar:    cal.Name(),
		Elements:    make([]ElementSummary, 0, len(filled)),
		Unsupported: sk.Unsupported,
		ProcessedAt: clock.Now().UTC(),
	}
	if ids := table.Stations(); len(ids) > 0 {
		s.StationID = ids[0]
	}
	for _, series := range filled {
		es := ElementSummary{
			Element:      series.Element,
			Days:         len(series.Rows),
			NoRecordDays: series.NoRecordDays(),
		}
		if d, ok := series.Start(); ok {
			es.Start = d.String()
		}
		if d, ok := series.End(); ok {
			es.End = d.String()
		}
		s.Elements = append(s.Elements, es)
	}
	return s
}
