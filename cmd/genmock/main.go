// Command genmock writes a synthetic GHCN-Daily .dly file for tests and
// demos. Records are encoded with the same layout the decoder uses, so the
// output round-trips through the reshape pipeline.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -station USC00000001 \
//	  -start 1999-11 -months 6 \
//	  -elements PRCP,SNOW,TMAX \
//	  -gap-every 3 -missing-rate 0.05 \
//	  -out testdata/USC00000001.dly
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/couchcryptid/ghcn-daily-etl/internal/config"
	"github.com/couchcryptid/ghcn-daily-etl/internal/domain"
)

// options controls the generated file.
type options struct {
	station     string
	startYear   int
	startMonth  int
	months      int
	elements    []string
	gapEvery    int     // drop every Nth month of the second element onwards, 0 for none
	missingRate float64 // share of in-month days written as -9999
	seed        uint64
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	station := flag.String("station", "USC00000001", "11-character station ID")
	start := flag.String("start", "2020-01", "first month, YYYY-MM")
	months := flag.Int("months", 12, "number of consecutive months")
	elements := flag.String("elements", "PRCP,SNOW,SNWD,TMAX,TMIN", "comma-separated element codes")
	gapEvery := flag.Int("gap-every", 0, "omit every Nth month for all but the first element")
	missingRate := flag.Float64("missing-rate", 0, "fraction of days written as -9999")
	seed := flag.Uint64("seed", 1, "random seed")
	out := flag.String("out", "", "output .dly path")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}

	opts := options{
		station:     *station,
		months:      *months,
		elements:    config.ParseElements(*elements),
		gapEvery:    *gapEvery,
		missingRate: *missingRate,
		seed:        *seed,
	}
	if _, err := fmt.Sscanf(*start, "%d-%d", &opts.startYear, &opts.startMonth); err != nil {
		return fmt.Errorf("invalid -start %q: %w", *start, err)
	}
	if err := opts.validate(); err != nil {
		return err
	}

	recs := generate(opts)
	if err := writeDLY(*out, recs); err != nil {
		return fmt.Errorf("writing %s: %w", *out, err)
	}
	log.Printf("wrote %d records to %s", len(recs), *out)

	printStats(opts, recs)
	return nil
}

func (o options) validate() error {
	if len(o.station) != 11 {
		return fmt.Errorf("station ID %q must be 11 characters", o.station)
	}
	if o.startMonth < 1 || o.startMonth > 12 {
		return fmt.Errorf("start month %d out of range", o.startMonth)
	}
	if o.months < 1 {
		return fmt.Errorf("months must be positive")
	}
	if len(o.elements) == 0 {
		return fmt.Errorf("no elements")
	}
	for _, el := range o.elements {
		if len(el) != 4 {
			return fmt.Errorf("element %q must be 4 characters", el)
		}
	}
	if o.missingRate < 0 || o.missingRate > 1 {
		return fmt.Errorf("missing-rate must be within [0,1]")
	}
	return nil
}

// generate emits records month by month, elements in the given order within
// each month, as NOAA files are laid out.
func generate(o options) []domain.RawRecord {
	rng := rand.New(rand.NewPCG(o.seed, o.seed^0x9e3779b97f4a7c15))
	cal := domain.GregorianCalendar

	var recs []domain.RawRecord
	year, month := o.startYear, o.startMonth
	for i := 0; i < o.months; i++ {
		for j, el := range o.elements {
			if j > 0 && o.gapEvery > 0 && (i+1)%o.gapEvery == 0 {
				continue
			}
			rec := domain.RawRecord{ID: o.station, Year: year, Month: month, Element: el}
			last := cal.DaysInMonth(year, month)
			for day := 1; day <= domain.DaysPerRecord; day++ {
				if day > last || rng.Float64() < o.missingRate {
					rec.Days[day-1] = domain.DaySlot{Value: domain.MissingValue}
					continue
				}
				rec.Days[day-1] = synthSlot(rng, el)
			}
			recs = append(recs, rec)
		}
		month++
		if month > 12 {
			year, month = year+1, 1
		}
	}
	return recs
}

// synthSlot returns a plausible value for the element in GHCN units.
func synthSlot(rng *rand.Rand, element string) domain.DaySlot {
	slot := domain.DaySlot{SFlag: "7"}
	switch element {
	case "PRCP":
		if rng.IntN(3) == 0 {
			slot.Value = rng.IntN(400)
		}
		if slot.Value == 0 && rng.IntN(10) == 0 {
			slot.MFlag = "T"
		}
	case "SNOW", "SNWD":
		if rng.IntN(5) == 0 {
			slot.Value = rng.IntN(300)
		}
	case "TMAX":
		slot.Value = 100 + rng.IntN(250)
	case "TMIN":
		slot.Value = -100 + rng.IntN(200)
	default:
		slot.Value = rng.IntN(1000)
	}
	if rng.IntN(200) == 0 {
		slot.QFlag = "I"
	}
	return slot
}

func writeDLY(path string, recs []domain.RawRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	layout := domain.GHCNLayout()
	var b strings.Builder
	for _, rec := range recs {
		line, err := layout.Format(rec)
		if err != nil {
			return err
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0o600)
}

func printStats(o options, recs []domain.RawRecord) {
	perElement := map[string]int{}
	missing := 0
	for _, rec := range recs {
		perElement[rec.Element]++
		for _, slot := range rec.Days {
			if slot.Value == domain.MissingValue {
				missing++
			}
		}
	}

	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Station: %s\n", o.station)
	fmt.Printf("Months: %d starting %04d-%02d\n", o.months, o.startYear, o.startMonth)
	fmt.Printf("Records: %d\n", len(recs))
	fmt.Print("By element:")
	for _, el := range o.elements {
		fmt.Printf(" %s=%d", el, perElement[el])
	}
	fmt.Println()
	fmt.Printf("Slots at -9999 (including past month end): %d\n", missing)
}
