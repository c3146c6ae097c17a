package domain

const (
	// DaysPerRecord is the number of day-slots in every monthly record.
	DaysPerRecord = 31

	// MissingValue is the raw-format sentinel for an absent value.
	MissingValue = -9999

	// NoRecordValue marks output days whose month has no record for the element.
	NoRecordValue = -99

	// NoRecordFlag is written to all three flags alongside NoRecordValue.
	NoRecordFlag = "-99"
)

// DaySlot holds one day's value and its measurement, quality and source flags.
// Blank flags are empty strings.
type DaySlot struct {
	Value int
	MFlag string
	QFlag string
	SFlag string
}

// RawRecord is one station-month-element line of a .dly file.
type RawRecord struct {
	ID      string
	Year    int
	Month   int
	Element string
	Days    [DaysPerRecord]DaySlot
}

// Slot returns the slot for a 1-based day of month.
func (r RawRecord) Slot(day int) DaySlot {
	return r.Days[day-1]
}

// Table is a decoded file in input line order. It is not modified after decoding.
type Table []RawRecord

// Stations returns the distinct station IDs in first-seen order.
func (t Table) Stations() []string {
	return distinct(t, func(r RawRecord) string { return r.ID })
}

// Elements returns the distinct element codes in first-seen order.
func (t Table) Elements() []string {
	return distinct(t, func(r RawRecord) string { return r.Element })
}

// PartitionByStation splits the table into one table per station, keeping
// stations in first-seen order and records in input order.
func (t Table) PartitionByStation() []Table {
	order := t.Stations()
	parts := make(map[string]Table, len(order))
	for _, rec := range t {
		parts[rec.ID] = append(parts[rec.ID], rec)
	}
	out := make([]Table, 0, len(order))
	for _, id := range order {
		out = append(out, parts[id])
	}
	return out
}

func distinct(t Table, key func(RawRecord) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, rec := range t {
		k := key(rec)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
