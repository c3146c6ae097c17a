// Package domain models GHCN-Daily station records and reshapes them into
// per-day element series.
//
// # Data Source
//
// GHCN-Daily (Global Historical Climatology Network, daily) station files are
// published by NOAA NCEI at https://www.ncei.noaa.gov/pub/data/ghcn/daily/.
// Each station has one ".dly" file; each line holds one month of one element.
//
// # Record Layout
//
// Character offsets are 0-indexed and end-exclusive:
//
//	ID       [0,11)   station identifier, e.g. "USC00000001"
//	YEAR     [11,15)  four-digit year
//	MONTH    [15,17)  month 01-12
//	ELEMENT  [17,21)  element code, e.g. "PRCP", "TMAX"
//
// followed by 31 day-slots of 8 characters each, starting at offset 21:
//
//	VALUE    5 chars  integer in element units (tenths of mm, tenths of °C, ...)
//	MFLAG    1 char   measurement flag
//	QFLAG    1 char   quality flag
//	SFLAG    1 char   source flag
//
// Slots for days that do not exist in the month are still present in the line.
//
// # Sentinels
//
// Two "no data" markers are kept apart on purpose:
//
//	-9999  raw-format missing value, as written by NCEI (also used for blank fields)
//	-99    output marker for a day whose month has no record for the element;
//	       the three flags carry the string "-99" in that case
//
// # Calendar
//
// Month lengths follow the simple rule: February has 29 days when the year is
// divisible by 4. Century years such as 1900 are therefore treated as leap
// years. [GregorianCalendar] applies the full rule when a caller asks for it.
//
// # Reshape
//
// [Decode] turns a file into a [Table]. [BuildSkeletons] resolves the requested
// elements and lays out one empty [ElementSeries] per element covering the
// table's date range. [Index.Fill] copies each day's value and flags from the
// matching monthly record.
package domain
