package domain

type monthKey struct {
	year    int
	month   int
	element string
}

// DuplicateKey is a (year, month, element) shared by more than one record.
type DuplicateKey struct {
	Year    int
	Month   int
	Element string
	Count   int
}

// Index looks up monthly records by (year, month, element). When a key
// repeats, the first record in table order wins. An Index is read-only after
// construction and safe for concurrent use.
type Index struct {
	table  Table
	first  map[monthKey]int
	counts map[monthKey]int
	order  []monthKey
}

// NewIndex indexes the table.
func NewIndex(table Table) *Index {
	ix := &Index{
		table:  table,
		first:  make(map[monthKey]int, len(table)),
		counts: make(map[monthKey]int, len(table)),
	}
	for i, rec := range table {
		k := monthKey{rec.Year, rec.Month, rec.Element}
		if _, ok := ix.first[k]; !ok {
			ix.first[k] = i
			ix.order = append(ix.order, k)
		}
		ix.counts[k]++
	}
	return ix
}

// Lookup returns the record for the key, if any.
func (ix *Index) Lookup(year, month int, element string) (RawRecord, bool) {
	i, ok := ix.first[monthKey{year, month, element}]
	if !ok {
		return RawRecord{}, false
	}
	return ix.table[i], true
}

// Duplicates lists repeated keys in the order they first appear.
func (ix *Index) Duplicates() []DuplicateKey {
	var out []DuplicateKey
	for _, k := range ix.order {
		if n := ix.counts[k]; n > 1 {
			out = append(out, DuplicateKey{Year: k.year, Month: k.month, Element: k.element, Count: n})
		}
	}
	return out
}

// Fill returns a copy of the skeleton with every row populated from the
// matching record. Days whose month has no record get the no-record sentinel.
// The skeleton's dates are trusted as-is.
func (ix *Index) Fill(skeleton ElementSeries) ElementSeries {
	filled := ElementSeries{
		StationID: skeleton.StationID,
		Element:   skeleton.Element,
		Rows:      make([]Observation, len(skeleton.Rows)),
	}

	var (
		cur   monthKey
		rec   RawRecord
		found bool
	)
	for i, row := range skeleton.Rows {
		d := row.Date
		k := monthKey{d.Year, d.Month, skeleton.Element}
		if i == 0 || k != cur {
			cur = k
			rec, found = ix.Lookup(d.Year, d.Month, skeleton.Element)
		}

		if !found {
			filled.Rows[i] = Observation{
				Date:  d,
				Value: NoRecordValue,
				QFlag: NoRecordFlag,
				MFlag: NoRecordFlag,
				SFlag: NoRecordFlag,
			}
			continue
		}

		slot := rec.Slot(d.Day)
		filled.Rows[i] = Observation{
			Date:  d,
			Value: slot.Value,
			QFlag: slot.QFlag,
			MFlag: slot.MFlag,
			SFlag: slot.SFlag,
		}
	}
	return filled
}

// Fill populates one skeleton from the table.
func Fill(table Table, skeleton ElementSeries) ElementSeries {
	return NewIndex(table).Fill(skeleton)
}
